// Package normalizer turns raw scraped values into clean text, ISO 8601
// dates, and normalized records.
package normalizer

import (
	"encoding/json"
	"fmt"
	"html"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// htmlTagPattern matches HTML/XML tags left over from scraping.
var htmlTagPattern = regexp.MustCompile(`<[^>]+>`)

// droppedRune reports whether r is a control or format character that must
// not survive normalization. Newline and tab stay so they can separate
// words during the whitespace collapse.
func droppedRune(r rune) bool {
	return r != '\n' && r != '\t' && unicode.Is(unicode.C, r)
}

// cleanTransform builds the rune pipeline: fold compatibility forms
// (NFKC), map non-breaking spaces to plain spaces, drop control and
// format characters. A fresh transformer is built per call because
// chained transformers carry internal state.
func cleanTransform() transform.Transformer {
	return transform.Chain(
		norm.NFKC,
		runes.Map(func(r rune) rune {
			if r == '\u00a0' {
				return ' '
			}

			return r
		}),
		runes.Remove(runes.Predicate(droppedRune)),
	)
}

// toText coerces an arbitrary decoded value to a string. Byte slices with
// broken encoding are converted lossily, numbers keep their literal form,
// nil becomes the empty string.
func toText(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return strings.ToValidUTF8(string(v), "�")
	case json.Number:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// NormalizeText converts a raw value into clean text: HTML entities are
// unescaped, compatible character variants folded into canonical forms,
// invisible and control characters stripped, and every whitespace run
// collapsed into a single space with the ends trimmed. It accepts any
// value and never fails.
func NormalizeText(value any) string {
	s := toText(value)
	s = html.UnescapeString(s)
	s, _, _ = transform.String(cleanTransform(), s)

	return strings.Join(strings.Fields(s), " ")
}

// RemoveHTMLArtifacts strips HTML tags from a value and normalizes what
// remains. Tags are replaced with spaces so adjacent words do not fuse.
func RemoveHTMLArtifacts(value any) string {
	s := toText(value)
	s = html.UnescapeString(s)
	s = htmlTagPattern.ReplaceAllString(s, " ")

	return NormalizeText(s)
}
