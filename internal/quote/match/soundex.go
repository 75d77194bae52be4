package match

import (
	"strings"
	"unicode"
)

// Soundex returns a 4-character phonetic code: the uppercased first rune
// followed by consonant-class digits, collapsing a digit equal to the last
// appended one, right-padded with '0'. Pure and total; "" yields "0000".
func Soundex(s string) string {
	r := []rune(s)

	var b strings.Builder
	n := 0
	var prev byte
	if len(r) > 0 {
		b.WriteRune(unicode.ToUpper(r[0]))
		n = 1
		prev = soundexDigit(r[0])
	}
	for i := 1; i < len(r) && n < 4; i++ {
		d := soundexDigit(r[i])
		if d != 0 && d != prev {
			b.WriteByte(d)
			n++
			prev = d
		}
	}
	for ; n < 4; n++ {
		b.WriteByte('0')
	}
	return b.String()
}

// soundexDigit groups similar-sounding consonants; vowels, h, w, y and
// anything non-alphabetic yield no digit.
func soundexDigit(r rune) byte {
	switch unicode.ToLower(r) {
	case 'b', 'f', 'p', 'v':
		return '1'
	case 'c', 'g', 'j', 'k', 'q', 's', 'x', 'z':
		return '2'
	case 'd', 't':
		return '3'
	case 'l':
		return '4'
	case 'm', 'n':
		return '5'
	case 'r':
		return '6'
	default:
		return 0
	}
}
