package text

import (
	"strings"

	"github.com/sandertv/gophertunnel/minecraft/text"
)

// formattingCodes holds every code that may follow the § section sign.
const formattingCodes = "0123456789abcdefghijklmnopqrstu"

// TranslateAlternate translates alternate formatting codes prefixed with an
// ampersand (&a, &l) into section sign codes (§a, §l). Ampersands not
// followed by a valid code are kept.
func TranslateAlternate(s string) string {
	if !strings.Contains(s, "&") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '&' && i+1 < len(s) {
			code := lowerASCII(s[i+1])
			if strings.IndexByte(formattingCodes, code) >= 0 {
				b.WriteString("§")
				b.WriteByte(code)
				i++
				continue
			}
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func lowerASCII(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// StripColour removes all section sign formatting codes from s.
func StripColour(s string) string {
	return text.Clean(s)
}

// Sanitise translates alternate codes and then strips all formatting codes,
// so that neither § nor & codes survive in user supplied input.
func Sanitise(s string) string {
	return StripColour(TranslateAlternate(s))
}

// ContainsColour reports if s holds any formatting codes, translated or not.
func ContainsColour(s string) bool {
	return s != Sanitise(s)
}

// IsOnlyColourCodes reports if s consists of nothing but formatting codes and
// whitespace.
func IsOnlyColourCodes(s string) bool {
	return strings.TrimSpace(Sanitise(s)) == ""
}
