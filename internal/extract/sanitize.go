// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import "strings"

// invalidFilenameChars are the characters that cannot appear in file
// names on common filesystems.
const invalidFilenameChars = `\/*?:"<>|`

// Sanitize returns title with every character illegal in file names
// replaced by replacement. Titles without illegal characters pass
// through unchanged.
func Sanitize(title, replacement string) string {
	if !strings.ContainsAny(title, invalidFilenameChars) {
		return title
	}
	var b strings.Builder
	b.Grow(len(title))
	for _, r := range title {
		if strings.ContainsRune(invalidFilenameChars, r) {
			b.WriteString(replacement)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
