// Package markup defines the token stream that a markup parser hands to the
// layout pass, and a plain-text tokenizer producing it.
//
// Tokens never copy text: Token.Text is a Segment, a view into a string,
// and SourceOffset/SourceLength locate the token in the parsed source in
// bytes. The two differ for tokens whose text is synthesized, such as a
// collapsed whitespace run.
//
//	ts := markup.Tokenize("Hello,\tworld\n", markup.OptionBreakOpportunities)
//	for i, tok := range ts.All() {
//	    fmt.Println(i, tok.Type, tok.Text)
//	}
package markup
