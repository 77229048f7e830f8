package utils

import "strings"

// Slugify lowercases a product name and collapses everything that is not a
// letter or digit into single hyphens, e.g. "Air Max 90" -> "air-max-90".
func Slugify(name string) string {
	var b strings.Builder
	lastHyphen := true // trim leading hyphens
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}
