package markup

// ParserOptions are bit flags recording how a token stream was produced.
type ParserOptions uint32

const (
	// OptionBreakOpportunities splits text runs at Unicode line-break
	// opportunities (UAX #14), not only at whitespace.
	OptionBreakOpportunities ParserOptions = 1 << iota

	// OptionCollapseWhitespace turns each whitespace run into a single
	// space token. The token's source span still covers the whole run.
	OptionCollapseWhitespace

	// OptionNonBreakingSpaces keeps U+00A0, U+2007 and U+202F inside text tokens
	// and marks those tokens NonBreaking. Without it they are whitespace.
	OptionNonBreakingSpaces
)

// Has reports whether all flags of o are set.
func (p ParserOptions) Has(o ParserOptions) bool {
	return p&o == o
}
