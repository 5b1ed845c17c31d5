package pac

import (
	"bytes"
	"regexp"
)

// ShExpMatch tests whether the whole of subject matches a shell expression,
// where '*' matches any run of characters and '?' exactly one.
// Other regular expression syntax in pattern keeps its meaning; a pattern
// that does not compile matches nothing.
func ShExpMatch(subject, pattern string) bool {
	re, err := compileShExp(pattern)
	if err != nil {
		return false
	}
	return re.MatchString(subject)
}

func compileShExp(pattern string) (*regexp.Regexp, error) {
	buf := bytes.NewBufferString("^")
	for _, r := range pattern {
		switch r {
		case '.':
			buf.WriteString(`\.`)
		case '*':
			buf.WriteString(".*")
		case '?':
			buf.WriteString(".")
		default:
			buf.WriteRune(r)
		}
	}
	buf.WriteString("$")
	return regexp.Compile(buf.String())
}
