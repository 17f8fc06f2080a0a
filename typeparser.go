package scillasurface

import (
	internallexer "github.com/arjunm/scillasurface/internal/lexer"
)

// primitiveByName maps the capitalized identifier spellings of the
// zero-argument scalar types to their Kind. These are ordinary Ident
// tokens at the lexical layer (spec §4.1 does not list them among the
// distinguished keywords) and are recognized here, in the type parser,
// by comparing the identifier's text — exactly the way an unrecognized
// capitalized identifier falls through to Custom (spec §4.2 design note
// 6 / §9 design notes).
var primitiveByName = map[string]Kind{
	"Int32":   KindInt32,
	"Int64":   KindInt64,
	"Int128":  KindInt128,
	"Int256":  KindInt256,
	"Uint32":  KindUint32,
	"Uint64":  KindUint64,
	"Uint128": KindUint128,
	"Uint256": KindUint256,
	"String":  KindString,
	"BNum":    KindBNum,
	"Bool":    KindBool,
	"Message": KindMessage,
	"Event":   KindEvent,
}

// adtArity is the number of AtomType arguments each parameterized ADT
// head consumes via juxtaposition (spec §4.2 point 1).
var adtArity = map[string]int{
	"Map":    2,
	"List":   1,
	"Option": 1,
	"Pair":   2,
}

// atomHead is the result of parsing one AtomType. Most atoms resolve
// directly to a Type; Map/List/Option/Pair resolve only to their bare
// name, because grammar production "Type := AtomType (TypeArg*)" is the
// only place application happens — an ADT name used as a TypeArg (an
// argument to an enclosing application) is itself just an AtomType with
// no further arguments consumed, so a nested Map/List/Option/Pair must be
// parenthesized to be "resolved" before it can serve as an argument.
type atomHead struct {
	adtName string // "" if resolved
	typ     Type
}

// parseType parses one full type expression: an AtomType head, followed
// by exactly as many juxtaposed AtomType arguments as that head's arity
// demands (spec §4.2).
func (p *parser) parseType() (Type, error) {
	head, err := p.parseAtomType()
	if err != nil {
		return Type{}, err
	}
	if head.adtName == "" {
		return head.typ, nil
	}

	arity := adtArity[head.adtName]
	args := make([]Type, arity)
	for i := 0; i < arity; i++ {
		args[i], err = p.parseTypeArg()
		if err != nil {
			return Type{}, err
		}
	}

	switch head.adtName {
	case "Map":
		return MapType(args[0], args[1]), nil
	case "List":
		return ListType(args[0]), nil
	case "Option":
		return OptionType(args[0]), nil
	case "Pair":
		return PairType(args[0], args[1]), nil
	default:
		// unreachable: adtArity only contains the four names above
		return Type{}, nil
	}
}

// parseTypeArg parses a single juxtaposed argument to an ADT head. Per
// the grammar, an argument is exactly one AtomType: a bare, unapplied
// Map/List/Option/Pair here is a malformed application (it must be
// parenthesized to carry its own arguments).
func (p *parser) parseTypeArg() (Type, error) {
	tok, err := p.peekTok()
	if err != nil {
		return Type{}, err
	}
	head, err := p.parseAtomType()
	if err != nil {
		return Type{}, err
	}
	if head.adtName != "" {
		return Type{}, unexpectedToken(tok, "a type argument (parenthesize "+head.adtName+" if it takes its own arguments)")
	}
	return head.typ, nil
}

// parseAtomType parses one AtomType: a primitive, an address type, a
// parenthesized type, a custom name, or a bare parameterized-ADT head
// awaiting its arguments.
func (p *parser) parseAtomType() (atomHead, error) {
	tok, err := p.peekTok()
	if err != nil {
		return atomHead{}, err
	}

	switch tok.Kind {
	case internallexer.LParen:
		p.nextTok()
		inner, err := p.parseType()
		if err != nil {
			return atomHead{}, err
		}
		if _, err := p.expectKind(internallexer.RParen, "')'"); err != nil {
			return atomHead{}, err
		}
		return atomHead{typ: inner}, nil

	case internallexer.Keyword:
		return p.parseKeywordAtom(tok)

	case internallexer.Ident:
		p.nextTok()
		if !isCapitalized(tok.Value) {
			return atomHead{}, unknownType(tok)
		}
		if kind, ok := primitiveByName[tok.Value]; ok {
			return atomHead{typ: primitive(kind)}, nil
		}
		return atomHead{typ: CustomType(tok.Value)}, nil

	case internallexer.EOF:
		return atomHead{}, unexpectedEOF(tok.Pos, "a type")

	default:
		return atomHead{}, unknownType(tok)
	}
}

func (p *parser) parseKeywordAtom(tok internallexer.Token) (atomHead, error) {
	if _, ok := adtArity[tok.Value]; ok {
		p.nextTok()
		return atomHead{adtName: tok.Value}, nil
	}

	if tok.Value == "ByStr" {
		p.nextTok()
		return atomHead{typ: ByStrType()}, nil
	}

	if n, ok := byStrLen(tok.Value); ok {
		p.nextTok()
		if n == 20 {
			next, err := p.peekTok()
			if err != nil {
				return atomHead{}, err
			}
			if isKeyword(next, "with") {
				p.nextTok()
				addr, err := p.parseAddressRefine()
				if err != nil {
					return atomHead{}, err
				}
				return atomHead{typ: addr}, nil
			}
		}
		return atomHead{typ: ByStrNType(n)}, nil
	}

	// Any other keyword (with, end, let, in, match, fun, tfun, forall,
	// type, of, True, False, and the declaration keywords) cannot begin
	// a type.
	return atomHead{}, unknownType(tok)
}

// parseAddressRefine parses the refinement after a "ByStr20 with" has
// already been consumed: either "library end" or "contract
// FieldDecl,...end" (possibly empty).
func (p *parser) parseAddressRefine() (Type, error) {
	tok, err := p.nextTok()
	if err != nil {
		return Type{}, err
	}

	switch {
	case isKeyword(tok, "library"):
		if _, err := p.expectKeyword("end"); err != nil {
			return Type{}, err
		}
		return LibraryAddressType(), nil

	case isKeyword(tok, "contract"):
		fields, err := p.parseAddressFieldList()
		if err != nil {
			return Type{}, err
		}
		return ContractAddressType(fields), nil

	default:
		return Type{}, malformedAddressRefinement(tok)
	}
}

// parseAddressFieldList parses the comma-separated, "end"-terminated
// field list of a contract refinement. A trailing comma before "end" is
// not accepted (spec §4.2 point 4).
func (p *parser) parseAddressFieldList() ([]Field, error) {
	tok, err := p.peekTok()
	if err != nil {
		return nil, err
	}
	if isKeyword(tok, "end") {
		p.nextTok()
		return nil, nil
	}

	var fields []Field
	for {
		f, err := p.parseFieldDecl()
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)

		sep, err := p.nextTok()
		if err != nil {
			return nil, err
		}
		switch {
		case sep.Kind == internallexer.Comma:
			continue
		case isKeyword(sep, "end"):
			return fields, nil
		default:
			return nil, unexpectedToken(sep, "',' or 'end'")
		}
	}
}

// parseFieldDecl parses "field Ident : Type", reentering parseType for
// the annotation — the only place arbitrary nesting of address
// refinements comes from (spec §4.2 point 4).
func (p *parser) parseFieldDecl() (Field, error) {
	if _, err := p.expectKeyword("field"); err != nil {
		return Field{}, err
	}
	name, err := p.expectIdent()
	if err != nil {
		return Field{}, err
	}
	if _, err := p.expectKind(internallexer.Colon, "':'"); err != nil {
		return Field{}, err
	}
	typ, err := p.parseType()
	if err != nil {
		return Field{}, err
	}
	return NewField(name.Value, typ), nil
}

func isCapitalized(s string) bool {
	if s == "" {
		return false
	}
	r := rune(s[0])
	return r >= 'A' && r <= 'Z'
}

// byStrLen reports whether value is "ByStr" followed by digits, and if
// so, the integer those digits spell. The lexer has already validated
// the shape (see internal/lexer.isByStrN); this just extracts n.
func byStrLen(value string) (int, bool) {
	const prefix = "ByStr"
	if len(value) <= len(prefix) || value[:len(prefix)] != prefix {
		return 0, false
	}
	n := 0
	for _, r := range value[len(prefix):] {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
	}
	if n < 1 {
		return 0, false
	}
	return n, true
}
