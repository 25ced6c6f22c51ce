package neutral

import "strings"

// forbidden holds the filesystem-forbidden characters that must be replaced
// before a title is used as a path component.
const forbidden = `<>:"/\|?*`

// SanitizeTitle replaces every character in the forbidden set with a single
// underscore placeholder. Idempotent: applying it twice equals applying it
// once, since the placeholder itself is not in the forbidden set.
func SanitizeTitle(title string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(forbidden, r) {
			return '_'
		}
		return r
	}, title)
}
