package buffer

import "strings"

// replaceLine replaces up to limit occurrences of search in s, scanning left
// to right. Each search resumes just past the inserted replacement, so a
// replacement that itself contains search is never matched again.
// A negative limit means no limit.
func replaceLine(s, search, replace string, limit int) (string, int) {
	if limit == 0 || !strings.Contains(s, search) {
		return s, 0
	}

	var b strings.Builder
	b.Grow(len(s))
	n := 0
	rest := s
	for limit < 0 || n < limit {
		i := strings.Index(rest, search)
		if i < 0 {
			break
		}
		b.WriteString(rest[:i])
		b.WriteString(replace)
		rest = rest[i+len(search):]
		n++
	}
	b.WriteString(rest)
	return b.String(), n
}
