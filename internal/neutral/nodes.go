package neutral

import (
	"strconv"

	"github.com/notargets/femapvtk/internal/diagnostics"
)

// ExtractNodes walks Block 403 one line per record: field 0 is the external
// ID, fields 11-13 are x, y, z. A malformed line is logged and skipped by
// advancing one line, not the full stride.
func ExtractNodes(blocks map[int][]Block, diag *diagnostics.Log) []Node {
	lines := Lines(blocks, 403)
	var nodes []Node
	for i := 0; i < len(lines); i++ {
		n, ok := parseNodeLine(lines[i])
		if !ok {
			if diag != nil {
				diag.Record(diagnostics.KindMalformedRecord, "", "block 403: short or unparsable node record")
			}
			continue
		}
		nodes = append(nodes, n)
	}
	return nodes
}

func parseNodeLine(line string) (Node, bool) {
	fields := SplitRecord(line)
	if len(fields) < 14 {
		return Node{}, false
	}
	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return Node{}, false
	}
	x, err := strconv.ParseFloat(fields[11], 64)
	if err != nil {
		return Node{}, false
	}
	y, err := strconv.ParseFloat(fields[12], 64)
	if err != nil {
		return Node{}, false
	}
	z, err := strconv.ParseFloat(fields[13], 64)
	if err != nil {
		return Node{}, false
	}
	return Node{ID: id, X: x, Y: y, Z: z}, true
}
