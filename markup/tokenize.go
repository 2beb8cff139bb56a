package markup

import (
	"unicode"
	"unicode/utf8"

	"github.com/go-text/typesetting/segmenter"
)

type runeClass uint8

const (
	classText runeClass = iota
	classSpace
	classTab
	classNewline
)

func isNonBreakingSpace(r rune) bool {
	return r == '\u00a0' || r == '\u202f' || r == '\u2007'
}

func classify(r rune, opts ParserOptions) runeClass {
	switch {
	case r == '\n' || r == '\r' || r == '\v' || r == '\f' || r == '\u0085' || r == '\u2028' || r == '\u2029':
		return classNewline
	case r == '\t':
		return classTab
	case isNonBreakingSpace(r):
		if opts.Has(OptionNonBreakingSpaces) {
			return classText
		}
		return classSpace
	case unicode.IsSpace(r):
		return classSpace
	}
	return classText
}

// Tokenize splits plain text into text, whitespace, tab and newline tokens.
// Every byte of src is covered by exactly one token. A "\r\n" pair is a
// single newline token.
func Tokenize(src string, opts ParserOptions) *TokenStream {
	ts := NewTokenStream(src, opts)
	var breaks map[int]bool
	if opts.Has(OptionBreakOpportunities) && src != "" {
		breaks = lineBreaks(src)
	}

	for i := 0; i < len(src); {
		r, size := utf8.DecodeRuneInString(src[i:])
		switch classify(r, opts) {
		case classNewline:
			if r == '\r' && i+1 < len(src) && src[i+1] == '\n' {
				size = 2
			}
			ts.Append(Token{Type: TokenNewline, Text: Segment{src, i, size}, SourceOffset: i, SourceLength: size})
			i += size

		case classTab:
			ts.Append(Token{Type: TokenTab, Text: Segment{src, i, size}, SourceOffset: i, SourceLength: size})
			i += size

		case classSpace:
			end := scan(src, i, classSpace, opts)
			text := Segment{src, i, end - i}
			if opts.Has(OptionCollapseWhitespace) {
				text = Segment{" ", 0, 1}
			}
			ts.Append(Token{Type: TokenWhitespace, Text: text, SourceOffset: i, SourceLength: end - i})
			i = end

		default:
			end := scan(src, i, classText, opts)
			appendWords(ts, src, i, end, breaks)
			i = end
		}
	}
	return ts
}

// scan returns the end of the run of class c starting at i.
func scan(src string, i int, c runeClass, opts ParserOptions) int {
	for i < len(src) {
		r, size := utf8.DecodeRuneInString(src[i:])
		if classify(r, opts) != c {
			break
		}
		i += size
	}
	return i
}

// appendWords appends src[start:end] as text tokens, split at the byte
// offsets in breaks.
func appendWords(ts *TokenStream, src string, start, end int, breaks map[int]bool) {
	word := start
	for i := start; i < end; {
		_, size := utf8.DecodeRuneInString(src[i:])
		i += size
		if i < end && breaks[i] {
			ts.Append(newWord(src, word, i))
			word = i
		}
	}
	ts.Append(newWord(src, word, end))
}

func newWord(src string, start, end int) Token {
	tok := Token{Type: TokenText, Text: Segment{src, start, end - start}, SourceOffset: start, SourceLength: end - start}
	for _, r := range src[start:end] {
		if isNonBreakingSpace(r) {
			tok.NonBreaking = true
			break
		}
	}
	return tok
}

// lineBreaks returns the byte offsets at which UAX #14 allows a line break.
func lineBreaks(src string) map[int]bool {
	runes := make([]rune, 0, len(src))
	byteOffset := make([]int, 0, len(src)+1)
	for i, r := range src {
		runes = append(runes, r)
		byteOffset = append(byteOffset, i)
	}
	byteOffset = append(byteOffset, len(src))

	var seg segmenter.Segmenter
	seg.Init(runes)
	breaks := make(map[int]bool)
	it := seg.LineIterator()
	for it.Next() {
		line := it.Line()
		breaks[byteOffset[line.Offset+len(line.Text)]] = true
	}
	return breaks
}
