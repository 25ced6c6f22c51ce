package neutral

import (
	"strconv"

	"github.com/notargets/femapvtk/internal/diagnostics"
)

const outputVectorHeaderStride = 7

// ExtractOutputVectors walks Block 1051: a 7-line record header followed by
// a variable-length run of result records terminated by a line whose first
// two fields are exactly -1 and 0. Malformed headers advance one line and
// resume; malformed result records are dropped individually.
func ExtractOutputVectors(blocks map[int][]Block, diag *diagnostics.Log) []OutputVector {
	lines := Lines(blocks, 1051)

	var out []OutputVector
	i := 0
	for i+outputVectorHeaderStride <= len(lines) {
		header, ok := parseVectorHeader(lines[i : i+outputVectorHeaderStride])
		if !ok {
			if diag != nil {
				diag.Record(diagnostics.KindMalformedRecord, "", "block 1051: short or unparsable vector header")
			}
			i++
			continue
		}
		i += outputVectorHeaderStride

		results := make(map[int]float64)
		i = readVectorResults(lines, i, results, diag)

		header.Results = results
		out = append(out, header)
	}
	return out
}

func parseVectorHeader(rec []string) (OutputVector, bool) {
	first := SplitRecord(rec[0])
	if len(first) < 3 {
		return OutputVector{}, false
	}
	setID, err := strconv.Atoi(first[0])
	if err != nil {
		return OutputVector{}, false
	}
	vecID, err := strconv.Atoi(first[1])
	if err != nil {
		return OutputVector{}, false
	}
	title := NormalizeNull(rec[1])

	entFields := SplitRecord(rec[5])
	if len(entFields) < 4 {
		return OutputVector{}, false
	}
	entType, err := strconv.Atoi(entFields[3])
	if err != nil {
		return OutputVector{}, false
	}

	return OutputVector{SetID: setID, VecID: vecID, Title: title, EntType: entType}, true
}

// isTerminator reports whether fields is the -1 / 0. sentinel that closes a
// result-record run, tolerating numeric formatting variants of "0.".
func isTerminator(fields []string) bool {
	if len(fields) < 2 {
		return false
	}
	first, err := strconv.Atoi(fields[0])
	if err != nil || first != -1 {
		return false
	}
	val, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return false
	}
	return val == 0
}

// readVectorResults consumes result records starting at lines[i] until the
// terminator is seen or the line buffer is exhausted, writing entity->value
// pairs into results. Returns the index just past the terminator.
func readVectorResults(lines []string, i int, results map[int]float64, diag *diagnostics.Log) int {
	for i < len(lines) {
		fields := SplitRecord(lines[i])
		if isTerminator(fields) {
			i++
			return i
		}
		switch {
		case len(fields) == 2:
			// Format 1 (sparse): (entity_id, value).
			id, err1 := strconv.Atoi(fields[0])
			val, err2 := strconv.ParseFloat(fields[1], 64)
			if err1 != nil || err2 != nil {
				if diag != nil {
					diag.Record(diagnostics.KindMalformedRecord, "", "block 1051: unparsable sparse result record")
				}
				i++
				continue
			}
			results[id] = val
			i++

		case len(fields) > 2:
			// Format 2 (run): start_id, end_id, then a value stream that may
			// continue onto subsequent lines.
			start, err1 := strconv.Atoi(fields[0])
			end, err2 := strconv.Atoi(fields[1])
			if err1 != nil || err2 != nil {
				if diag != nil {
					diag.Record(diagnostics.KindMalformedRecord, "", "block 1051: unparsable run result record")
				}
				i++
				continue
			}
			expected := end - start + 1
			if expected < 0 {
				expected = 0
			}
			values := parseFloats(fields[2:])
			i++
			for len(values) < expected && i < len(lines) {
				cont := SplitRecord(lines[i])
				if isTerminator(cont) {
					break
				}
				values = append(values, parseFloats(cont)...)
				i++
			}
			n := len(values)
			if expected < n {
				n = expected
			}
			for k := 0; k < n; k++ {
				results[start+k] = values[k]
			}

		default:
			if diag != nil {
				diag.Record(diagnostics.KindMalformedRecord, "", "block 1051: empty result record")
			}
			i++
		}
	}
	return i
}

// parseFloats converts every parseable field to a float64, skipping tokens
// that don't parse (defensive against stray non-numeric continuation noise).
func parseFloats(fields []string) []float64 {
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			continue
		}
		out = append(out, v)
	}
	return out
}
