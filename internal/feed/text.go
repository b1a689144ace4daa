package feed

import (
	"encoding/xml"
	"regexp"
	"strings"
	"unicode"
)

var (
	tagPattern = regexp.MustCompile(`<[^>]*>`)

	xmlEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&apos;",
	)
)

// StripHTML replaces every tag with a single space, collapses Unicode
// whitespace runs (no-break spaces included) and trims the result.
// StripHTML(StripHTML(s)) == StripHTML(s).
func StripHTML(s string) string {
	s = tagPattern.ReplaceAllString(s, " ")
	return strings.Join(strings.FieldsFunc(s, isSpace), " ")
}

// isSpace extends unicode.IsSpace with U+FEFF (zero-width no-break space).
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}

// EscapeXML replaces the five XML special characters with their entities.
// Ampersands are replaced first so produced entities are never re-escaped.
func EscapeXML(s string) string {
	return xmlEscaper.Replace(s)
}

// Text is character data of a feed element. It is always written through
// EscapeXML, with characters that XML 1.0 forbids removed first.
type Text string

func (t Text) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return e.EncodeElement(struct {
		Inner string `xml:",innerxml"`
	}{
		Inner: EscapeXML(stripInvalidXMLChars(string(t))),
	}, start)
}

func stripInvalidXMLChars(s string) string {
	return strings.Map(func(r rune) rune {
		if isXMLChar(r) {
			return r
		}
		return -1
	}, s)
}

func isXMLChar(r rune) bool {
	switch {
	case r == '\t', r == '\n', r == '\r':
		return true
	case r >= 0x20 && r <= 0xD7FF:
		return true
	case r >= 0xE000 && r <= 0xFFFD:
		return true
	case r >= 0x10000 && r <= 0x10FFFF:
		return true
	default:
		return false
	}
}
