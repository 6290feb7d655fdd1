package course

import "strings"

// slugify lowercases and reduces a name to letters, digits and single
// hyphens, so "Data Structures & Algorithms" + "Y1" becomes
// "data-structures-algorithms-y1".
func slugify(s string) string {
	s = strings.ToLower(s)

	var b strings.Builder
	pending := false
	for _, r := range s {
		isAlnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !isAlnum {
			pending = b.Len() > 0
			continue
		}
		if pending {
			b.WriteByte('-')
			pending = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
