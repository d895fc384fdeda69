package parser

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// chainPool hands out NFC + width-fold chains; a transform.Transformer is
// stateful and must be reset between uses.
var chainPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFC,
			runes.Remove(runes.In(unicode.Cf)), // zero-width spaces from chat clients
			width.Fold,                         // fullwidth ～ － ０ to ASCII
		)
	},
}

var punctReplacer = strings.NewReplacer(
	"〜", "~", // wave dash, not covered by width folding
	"–", "-",
	"—", "-",
	"\u00a0", " ",
)

// normalizeText makes visually equivalent input byte-equivalent before
// matching.
func normalizeText(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ToValidUTF8(s, "")

	tr := chainPool.Get().(transform.Transformer)
	out, _, err := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)
	if err != nil {
		out = s
	}

	return strings.TrimSpace(punctReplacer.Replace(out))
}

// SplitLines splits a message body into trimmed, non-empty lines.
func SplitLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
