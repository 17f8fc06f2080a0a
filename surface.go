package scillasurface

import (
	"strconv"

	internallexer "github.com/arjunm/scillasurface/internal/lexer"
)

// parseContract drives the token stream through the fixed skeleton of a
// contract file (spec §4.3): version line, imports, optional library
// block, contract header, then a body of fields, transitions, and
// procedures until end of input.
func parseContract(p *parser) (*Contract, error) {
	c := &Contract{}

	if err := p.parseVersionLine(c); err != nil {
		return nil, err
	}
	if err := p.parseImports(c); err != nil {
		return nil, err
	}
	if err := p.parseLibraryBlock(c); err != nil {
		return nil, err
	}
	if err := p.parseContractHeader(c); err != nil {
		return nil, err
	}
	if err := p.parseBody(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (p *parser) parseVersionLine(c *Contract) error {
	tok, err := p.peekTok()
	if err != nil {
		return err
	}
	if !isKeyword(tok, "scilla_version") {
		return nil
	}
	p.nextTok()

	numTok, err := p.expectKind(internallexer.Int, "an integer")
	if err != nil {
		return err
	}
	n, convErr := strconv.Atoi(numTok.Value)
	if convErr != nil {
		return unexpectedToken(numTok, "an integer")
	}
	c.Version = n
	return nil
}

func (p *parser) parseImports(c *Contract) error {
	tok, err := p.peekTok()
	if err != nil {
		return err
	}
	if !isKeyword(tok, "import") {
		return nil
	}
	p.nextTok()

	for {
		tok, err := p.peekTok()
		if err != nil {
			return err
		}
		if tok.Kind != internallexer.Ident {
			break
		}
		p.nextTok()
		c.Imports = append(c.Imports, tok.Value)
	}
	return nil
}

// parseLibraryBlock skips an optional "library Ident <declarations>"
// block, stopping at the first "contract" keyword seen at nesting depth
// zero (spec §4.3 point 3).
func (p *parser) parseLibraryBlock(c *Contract) error {
	tok, err := p.peekTok()
	if err != nil {
		return err
	}
	if !isKeyword(tok, "library") {
		return nil
	}
	p.nextTok()

	nameTok, err := p.expectIdent()
	if err != nil {
		return err
	}
	name := nameTok.Value
	c.LibraryName = &name

	return p.skipLibraryBody()
}

func (p *parser) skipLibraryBody() error {
	return p.skipUntil(func(tok internallexer.Token) skipDecision {
		if tok.Kind == internallexer.EOF {
			return skipStopLeave
		}
		if isKeyword(tok, "contract") {
			return skipStopLeave
		}
		return skipContinue
	})
}

func (p *parser) parseContractHeader(c *Contract) error {
	if _, err := p.expectKeyword("contract"); err != nil {
		return err
	}
	nameTok, err := p.expectIdent()
	if err != nil {
		return err
	}
	c.Name = nameTok.Value

	params, err := p.parseOptionalParamList()
	if err != nil {
		return err
	}
	c.InitParams = params
	return nil
}

// parseOptionalParamList parses "( ParamList )" if present, or treats a
// missing parameter list as zero parameters (spec §4.3 "Param-list
// semantics": a bare transition name with no parentheses is zero
// parameters; a bare contract header follows the same convention — the
// end-to-end example "contract HelloWorld" has no parentheses at all).
func (p *parser) parseOptionalParamList() ([]Field, error) {
	tok, err := p.peekTok()
	if err != nil {
		return nil, err
	}
	if tok.Kind != internallexer.LParen {
		return nil, nil
	}
	p.nextTok()
	return p.parseParamList()
}

// parseParamList parses a comma-separated, possibly empty list of
// "Ident : Type" pairs, having already consumed the opening '('.
func (p *parser) parseParamList() ([]Field, error) {
	tok, err := p.peekTok()
	if err != nil {
		return nil, err
	}
	if tok.Kind == internallexer.RParen {
		p.nextTok()
		return nil, nil
	}

	var params []Field
	for {
		nameTok, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		if _, err := p.expectKind(internallexer.Colon, "':'"); err != nil {
			return nil, err
		}
		typ, err := p.parseType()
		if err != nil {
			return nil, err
		}
		params = append(params, NewField(nameTok.Value, typ))

		sep, err := p.nextTok()
		if err != nil {
			return nil, err
		}
		switch {
		case sep.Kind == internallexer.Comma:
			continue
		case sep.Kind == internallexer.RParen:
			return params, nil
		default:
			return nil, unexpectedToken(sep, "',' or ')'")
		}
	}
}

// parseBody parses the sequence of field, transition, and procedure
// declarations making up the contract body (spec §4.3 point 5), in
// source order, until end of input.
func (p *parser) parseBody(c *Contract) error {
	for {
		tok, err := p.peekTok()
		if err != nil {
			return err
		}

		switch {
		case tok.Kind == internallexer.EOF:
			return nil

		case isKeyword(tok, "field"):
			f, err := p.parseContractField()
			if err != nil {
				return err
			}
			c.Fields = append(c.Fields, f)

		case isKeyword(tok, "transition"):
			name, params, err := p.parseDeclHeader("transition")
			if err != nil {
				return err
			}
			if err := p.skipDeclBody(); err != nil {
				return err
			}
			c.Transitions = append(c.Transitions, NewTransitionWithParams(name, params))

		case isKeyword(tok, "procedure"):
			if _, _, err := p.parseDeclHeader("procedure"); err != nil {
				return err
			}
			if err := p.skipDeclBody(); err != nil {
				return err
			}

		default:
			return unexpectedToken(tok, "'field', 'transition', 'procedure', or end of input")
		}
	}
}

// parseContractField parses "field Ident : Type = <expr>", skipping the
// initializer expression without building an AST for it.
func (p *parser) parseContractField() (Field, error) {
	f, err := p.parseFieldDecl()
	if err != nil {
		return Field{}, err
	}
	if _, err := p.expectKind(internallexer.Equals, "'='"); err != nil {
		return Field{}, err
	}
	if err := p.skipInitializer(); err != nil {
		return Field{}, err
	}
	return f, nil
}

// parseDeclHeader parses "keyword Ident" optionally followed by
// "( ParamList )"; a bare name with no parentheses yields zero params.
func (p *parser) parseDeclHeader(keyword string) (string, []Field, error) {
	if _, err := p.expectKeyword(keyword); err != nil {
		return "", nil, err
	}
	nameTok, err := p.expectIdent()
	if err != nil {
		return "", nil, err
	}
	params, err := p.parseOptionalParamList()
	if err != nil {
		return "", nil, err
	}
	return nameTok.Value, params, nil
}
