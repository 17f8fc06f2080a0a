package scillasurface

import (
	internallexer "github.com/arjunm/scillasurface/internal/lexer"
)

// The contract-surface parser never builds an AST for initializer
// expressions or transition/procedure bodies (spec §9 "skipping vs
// parsing"). It only needs to advance past them, tracking enough nesting
// to know where they end. skipUntil implements the balanced scanner of
// spec §4.3: match and ByStr20-with are openers closed by end, let is an
// opener closed by in, and ( / { are closed by their usual partners.
type skipDecision int

const (
	skipContinue skipDecision = iota
	skipStopLeave
	skipStopConsume
)

// skipUntil advances the token stream until atZero reports a stop at
// nesting depth 0, tracking depth via the opener/closer set spec §4.3
// assigns. It never inspects what the tokens mean beyond that.
func (p *parser) skipUntil(atZero func(tok internallexer.Token) skipDecision) error {
	depth := 0
	for {
		tok, err := p.peekTok()
		if err != nil {
			return err
		}

		if depth == 0 {
			switch atZero(tok) {
			case skipStopLeave:
				return nil
			case skipStopConsume:
				p.nextTok()
				return nil
			}
		}
		if tok.Kind == internallexer.EOF {
			return nil
		}

		p.nextTok()
		switch {
		case isKeyword(tok, "match"), isKeyword(tok, "let"),
			tok.Kind == internallexer.LParen, tok.Kind == internallexer.LBrace:
			depth++

		case isByStr20(tok):
			next, err := p.peekTok()
			if err != nil {
				return err
			}
			if isKeyword(next, "with") {
				p.nextTok()
				depth++
			}

		case isKeyword(tok, "in"), isKeyword(tok, "end"),
			tok.Kind == internallexer.RParen, tok.Kind == internallexer.RBrace:
			if depth > 0 {
				depth--
			}
		}
	}
}

func isByStr20(tok internallexer.Token) bool {
	return tok.Kind == internallexer.Keyword && tok.Value == "ByStr20"
}

// skipInitializer skips a field's "= <expr>" initializer, stopping as
// soon as it sees (without consuming) the start of the next top-level
// declaration or end of input.
func (p *parser) skipInitializer() error {
	return p.skipUntil(func(tok internallexer.Token) skipDecision {
		if tok.Kind == internallexer.EOF {
			return skipStopLeave
		}
		if isKeyword(tok, "field") || isKeyword(tok, "transition") ||
			isKeyword(tok, "procedure") || isKeyword(tok, "end") {
			return skipStopLeave
		}
		return skipContinue
	})
}

// skipDeclBody skips a transition or procedure body up to and including
// its own closing "end".
func (p *parser) skipDeclBody() error {
	sawEnd := false
	err := p.skipUntil(func(tok internallexer.Token) skipDecision {
		if tok.Kind == internallexer.EOF {
			return skipStopLeave
		}
		if isKeyword(tok, "end") {
			sawEnd = true
			return skipStopConsume
		}
		return skipContinue
	})
	if err != nil {
		return err
	}
	if !sawEnd {
		tok, _ := p.peekTok()
		return unexpectedEOF(tok.Pos, "'end'")
	}
	return nil
}
