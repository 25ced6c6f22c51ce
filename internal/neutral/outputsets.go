package neutral

import (
	"strconv"

	"github.com/notargets/femapvtk/internal/diagnostics"
)

const outputSetStride = 6

// ExtractOutputSets walks Block 450 in 6-line records: field 0 of the first
// line is the set ID, the second line is the title, and field 0 of the
// fifth line (three lines past the title) is the f64 step value.
func ExtractOutputSets(blocks map[int][]Block, diag *diagnostics.Log) []OutputSet {
	lines := Lines(blocks, 450)

	var out []OutputSet
	for i := 0; i+outputSetStride <= len(lines); {
		s, ok := parseOutputSetRecord(lines[i : i+outputSetStride])
		if !ok {
			if diag != nil {
				diag.Record(diagnostics.KindMalformedRecord, "", "block 450: short or unparsable output set record")
			}
			i++
			continue
		}
		out = append(out, s)
		i += outputSetStride
	}
	return out
}

func parseOutputSetRecord(rec []string) (OutputSet, bool) {
	idFields := SplitRecord(rec[0])
	if len(idFields) < 1 {
		return OutputSet{}, false
	}
	id, err := strconv.Atoi(idFields[0])
	if err != nil {
		return OutputSet{}, false
	}
	title := NormalizeNull(rec[1])

	valFields := SplitRecord(rec[4])
	if len(valFields) < 1 {
		return OutputSet{}, false
	}
	val, err := strconv.ParseFloat(valFields[0], 64)
	if err != nil {
		return OutputSet{}, false
	}
	return OutputSet{ID: id, Title: title, Value: val}, true
}
