package neutral

import (
	"strconv"

	"github.com/notargets/femapvtk/internal/diagnostics"
)

const propertyStride = 7

// ExtractProperties walks Block 402 in 7-line records: field 0 is the
// property ID, field 2 the material ID, and the second line is the title.
// Repeated property IDs overwrite earlier entries (last wins), so the
// result is returned in first-record order but reflects final values.
func ExtractProperties(blocks map[int][]Block, diag *diagnostics.Log) []Property {
	lines := Lines(blocks, 402)

	byID := make(map[int]Property)
	var order []int

	for i := 0; i+propertyStride <= len(lines); {
		p, ok := parsePropertyRecord(lines[i : i+propertyStride])
		if !ok {
			if diag != nil {
				diag.Record(diagnostics.KindMalformedRecord, "", "block 402: short or unparsable property record")
			}
			i++
			continue
		}
		if _, seen := byID[p.ID]; !seen {
			order = append(order, p.ID)
		}
		byID[p.ID] = p
		i += propertyStride
	}

	out := make([]Property, 0, len(order))
	for _, id := range order {
		out = append(out, byID[id])
	}
	return out
}

func parsePropertyRecord(rec []string) (Property, bool) {
	fields := SplitRecord(rec[0])
	if len(fields) < 3 {
		return Property{}, false
	}
	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return Property{}, false
	}
	matID, err := strconv.Atoi(fields[2])
	if err != nil {
		return Property{}, false
	}
	title := ""
	if len(rec) > 1 {
		title = NormalizeNull(rec[1])
	}
	return Property{ID: id, MaterialID: matID, Title: title}, true
}
