package markup

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/gogpu/richtext"
)

// TokenStream is an editable sequence of tokens together with the source
// and options that produced them.
//
// TokenStream is not safe for concurrent use.
type TokenStream struct {
	Source  string
	Options ParserOptions

	tokens []Token
}

// NewTokenStream creates an empty stream for source.
func NewTokenStream(source string, opts ParserOptions) *TokenStream {
	return &TokenStream{Source: source, Options: opts}
}

// Len returns the number of tokens.
func (ts *TokenStream) Len() int {
	return len(ts.tokens)
}

// At returns the token at index i.
func (ts *TokenStream) At(i int) (Token, error) {
	if err := richtext.CheckIndex("TokenStream.At", i, len(ts.tokens)); err != nil {
		return Token{}, err
	}
	return ts.tokens[i], nil
}

// Set replaces the token at index i.
func (ts *TokenStream) Set(i int, tok Token) error {
	if err := richtext.CheckIndex("TokenStream.Set", i, len(ts.tokens)); err != nil {
		return err
	}
	ts.tokens[i] = tok
	return nil
}

// Append adds tokens at the end.
func (ts *TokenStream) Append(toks ...Token) {
	ts.tokens = append(ts.tokens, toks...)
}

// Insert inserts tokens before index i. i may equal Len.
func (ts *TokenStream) Insert(i int, toks ...Token) error {
	if i < 0 || i > len(ts.tokens) {
		return &richtext.RangeError{Op: "TokenStream.Insert", Index: i, Len: len(ts.tokens) + 1}
	}
	ts.tokens = slices.Insert(ts.tokens, i, toks...)
	return nil
}

// RemoveRange removes count tokens starting at start.
func (ts *TokenStream) RemoveRange(start, count int) error {
	if err := richtext.CheckRange("TokenStream.RemoveRange", start, count, len(ts.tokens)); err != nil {
		return err
	}
	ts.tokens = slices.Delete(ts.tokens, start, start+count)
	return nil
}

// All iterates over the tokens with their indices.
func (ts *TokenStream) All() iter.Seq2[int, Token] {
	return func(yield func(int, Token) bool) {
		for i, tok := range ts.tokens {
			if !yield(i, tok) {
				return
			}
		}
	}
}

// Reset removes all tokens and replaces the source and options.
// The token storage is kept.
func (ts *TokenStream) Reset(source string, opts ParserOptions) {
	ts.Source = source
	ts.Options = opts
	ts.tokens = ts.tokens[:0]
}

// Text concatenates the text of all tokens.
func (ts *TokenStream) Text() string {
	var sb strings.Builder
	for _, tok := range ts.tokens {
		sb.WriteString(tok.Text.String())
	}
	return sb.String()
}

// CheckOffsets verifies that every token lies inside Source and that
// tokens do not go backwards.
func (ts *TokenStream) CheckOffsets() error {
	prev := 0
	for i, tok := range ts.tokens {
		if tok.SourceOffset < prev || tok.SourceLength < 0 || tok.SourceEnd() > len(ts.Source) {
			return fmt.Errorf("markup: token %d %v outside source [%d:%d]: %w",
				i, tok, prev, len(ts.Source), richtext.ErrMalformed)
		}
		prev = tok.SourceOffset
	}
	return nil
}
