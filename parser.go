package scillasurface

import (
	internallexer "github.com/arjunm/scillasurface/internal/lexer"
)

// parser drives internallexer.Lexer through the contract-surface and
// type-expression grammars. One parser is created per Parse/ParseFile
// call and discarded afterward; it holds no state beyond the lexer and
// its one-token lookahead.
type parser struct {
	lex *internallexer.Lexer
}

func newParser(filename, src string) *parser {
	return &parser{lex: internallexer.New(filename, src)}
}

func (p *parser) peekTok() (internallexer.Token, error) {
	tok, err := p.lex.Peek()
	if err != nil {
		return internallexer.Token{}, fromLexError(err)
	}
	return tok, nil
}

func (p *parser) nextTok() (internallexer.Token, error) {
	tok, err := p.lex.Next()
	if err != nil {
		return internallexer.Token{}, fromLexError(err)
	}
	return tok, nil
}

// expectKeyword consumes the next token, requiring it to be the keyword
// word. It is the "consume a keyword" operation of the lexical layer's
// interface (spec §4.1).
func (p *parser) expectKeyword(word string) (internallexer.Token, error) {
	tok, err := p.nextTok()
	if err != nil {
		return tok, err
	}
	if tok.Kind == internallexer.EOF {
		return tok, unexpectedEOF(tok.Pos, "'"+word+"'")
	}
	if tok.Kind != internallexer.Keyword || tok.Value != word {
		return tok, unexpectedToken(tok, "'"+word+"'")
	}
	return tok, nil
}

// expectIdent consumes any non-keyword identifier. It is the "consume
// any identifier" operation of the lexical layer's interface.
func (p *parser) expectIdent() (internallexer.Token, error) {
	tok, err := p.nextTok()
	if err != nil {
		return tok, err
	}
	if tok.Kind == internallexer.EOF {
		return tok, unexpectedEOF(tok.Pos, "an identifier")
	}
	if tok.Kind != internallexer.Ident {
		return tok, unexpectedToken(tok, "an identifier")
	}
	return tok, nil
}

// expectKind consumes a token of a specific kind, failing otherwise. It
// is the "consume expecting a specific kind" operation of the lexical
// layer's interface.
func (p *parser) expectKind(kind internallexer.Kind, desc string) (internallexer.Token, error) {
	tok, err := p.nextTok()
	if err != nil {
		return tok, err
	}
	if tok.Kind == internallexer.EOF {
		return tok, unexpectedEOF(tok.Pos, desc)
	}
	if tok.Kind != kind {
		return tok, unexpectedToken(tok, desc)
	}
	return tok, nil
}

// isKeyword reports whether tok is the keyword-tagged token spelled word.
func isKeyword(tok internallexer.Token, word string) bool {
	return tok.Kind == internallexer.Keyword && tok.Value == word
}
