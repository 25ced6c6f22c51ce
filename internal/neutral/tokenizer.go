package neutral

import "strings"

// NullSentinel is the text-field placeholder for an empty string.
const NullSentinel = "<NULL>"

// SplitRecord splits one record line into fields per §4.1: a trailing comma
// and surrounding whitespace are trimmed first; if the remainder contains a
// comma, fields are comma-separated (empty fragments dropped after
// trimming); otherwise fields are separated by runs of whitespace.
func SplitRecord(line string) []string {
	trimmed := strings.TrimSpace(line)
	trimmed = strings.TrimSuffix(trimmed, ",")
	trimmed = strings.TrimSpace(trimmed)
	if trimmed == "" {
		return nil
	}
	if strings.Contains(trimmed, ",") {
		raw := strings.Split(trimmed, ",")
		fields := make([]string, 0, len(raw))
		for _, f := range raw {
			f = strings.TrimSpace(f)
			if f == "" {
				continue
			}
			fields = append(fields, f)
		}
		return fields
	}
	return strings.Fields(trimmed)
}

// NormalizeNull converts the <NULL> sentinel to an empty string; any other
// value passes through unchanged.
func NormalizeNull(s string) string {
	if strings.TrimSpace(s) == NullSentinel {
		return ""
	}
	return s
}
