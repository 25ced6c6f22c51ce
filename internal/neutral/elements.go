package neutral

import (
	"strconv"

	"github.com/notargets/femapvtk/internal/diagnostics"
)

const elementStride = 7

// ExtractElements walks Block 404 in 7-line records: field 0 is the element
// ID, field 2 the property ID, field 4 the topology code; the next two
// lines each yield up to 10 integers (zeros dropped), concatenated into the
// node list.
func ExtractElements(blocks map[int][]Block, diag *diagnostics.Log) []Element {
	lines := Lines(blocks, 404)

	var out []Element
	for i := 0; i+elementStride <= len(lines); {
		e, ok := parseElementRecord(lines[i : i+elementStride])
		if !ok {
			if diag != nil {
				diag.Record(diagnostics.KindMalformedRecord, "", "block 404: short or unparsable element record")
			}
			i++
			continue
		}
		out = append(out, e)
		i += elementStride
	}
	return out
}

func parseElementRecord(rec []string) (Element, bool) {
	fields := SplitRecord(rec[0])
	if len(fields) < 5 {
		return Element{}, false
	}
	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return Element{}, false
	}
	propID, err := strconv.Atoi(fields[2])
	if err != nil {
		return Element{}, false
	}
	topo, err := strconv.Atoi(fields[4])
	if err != nil {
		return Element{}, false
	}

	var nodes []int
	if len(rec) > 1 {
		nodes = append(nodes, nonZeroInts(rec[1])...)
	}
	if len(rec) > 2 {
		nodes = append(nodes, nonZeroInts(rec[2])...)
	}

	return Element{ID: id, PropID: propID, Topology: topo, Nodes: nodes}, true
}

// nonZeroInts parses every whitespace/comma-separated integer field on the
// line, dropping zeros and unparsable tokens.
func nonZeroInts(line string) []int {
	fields := SplitRecord(line)
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil || v == 0 {
			continue
		}
		out = append(out, v)
	}
	return out
}
