package speech

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// splitText breaks text into pieces of at most maxBytes, cutting between
// sentences where possible, then between words, and only inside a word
// when a single word is too long.
func splitText(text string, maxBytes int) []string {
	var pieces []string
	var cur strings.Builder

	flush := func() {
		if cur.Len() > 0 {
			pieces = append(pieces, cur.String())
			cur.Reset()
		}
	}
	add := func(part string) {
		if cur.Len() > 0 && cur.Len()+1+len(part) > maxBytes {
			flush()
		}
		if cur.Len() > 0 {
			cur.WriteByte(' ')
		}
		cur.WriteString(part)
	}

	for _, sentence := range sentences(text) {
		if len(sentence) <= maxBytes {
			add(sentence)
			continue
		}
		for _, word := range strings.Fields(sentence) {
			for _, part := range splitWord(word, maxBytes) {
				add(part)
			}
		}
	}
	flush()
	return pieces
}

// sentences splits after '.', '!', '?' or a newline that is followed by
// whitespace or the end of the text. Pieces are trimmed and never empty.
func sentences(text string) []string {
	var out []string
	start := 0
	for i, r := range text {
		if r != '.' && r != '!' && r != '?' && r != '\n' {
			continue
		}
		end := i + utf8.RuneLen(r)
		if end < len(text) {
			next, _ := utf8.DecodeRuneInString(text[end:])
			if !unicode.IsSpace(next) {
				continue
			}
		}
		if s := strings.TrimSpace(text[start:end]); s != "" {
			out = append(out, s)
		}
		start = end
	}
	if s := strings.TrimSpace(text[start:]); s != "" {
		out = append(out, s)
	}
	return out
}

func splitWord(word string, maxBytes int) []string {
	var parts []string
	for len(word) > maxBytes {
		cut := maxBytes
		for cut > 0 && !utf8.RuneStart(word[cut]) {
			cut--
		}
		if cut == 0 {
			_, cut = utf8.DecodeRuneInString(word)
		}
		parts = append(parts, word[:cut])
		word = word[cut:]
	}
	return append(parts, word)
}
