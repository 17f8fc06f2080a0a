// Package lexer turns Scilla source text into a stream of tokens. It knows
// nothing about the contract-surface or type-expression grammars built on
// top of it; it only recognizes identifiers, keywords, literals, comments,
// and punctuation.
package lexer

import "github.com/alecthomas/participle/v2/lexer"

// Kind discriminates the lexical class of a Token.
type Kind int

const (
	EOF Kind = iota
	Ident
	Keyword
	Int
	Hex
	String
	LParen
	RParen
	LBrace
	RBrace
	LBracket
	RBracket
	Comma
	Colon
	Semicolon
	Equals
	FatArrow
	Pipe
	// Operator covers any other punctuation rune encountered outside a
	// comment or string (e.g. the arithmetic and store/fetch operators
	// that appear inside initializer expressions and transition bodies,
	// which the contract-surface parser skips rather than parses).
	Operator
)

func (k Kind) String() string {
	switch k {
	case EOF:
		return "EOF"
	case Ident:
		return "identifier"
	case Keyword:
		return "keyword"
	case Int:
		return "integer literal"
	case Hex:
		return "hex literal"
	case String:
		return "string literal"
	case LParen:
		return "'('"
	case RParen:
		return "')'"
	case LBrace:
		return "'{'"
	case RBrace:
		return "'}'"
	case LBracket:
		return "'['"
	case RBracket:
		return "']'"
	case Comma:
		return "','"
	case Colon:
		return "':'"
	case Semicolon:
		return "';'"
	case Equals:
		return "'='"
	case FatArrow:
		return "'=>'"
	case Pipe:
		return "'|'"
	case Operator:
		return "operator"
	default:
		return "unknown"
	}
}

// Token is one lexeme together with its source position.
type Token struct {
	Kind  Kind
	Value string
	Pos   lexer.Position
}

func (t Token) String() string {
	if t.Value == "" {
		return t.Kind.String()
	}
	return t.Value
}

// Keywords is the distinguished subset of identifier-shaped lexemes that
// are tagged Keyword instead of Ident. "ByStr" followed immediately by
// digits (ByStr20, ByStr32, ...) is handled separately in Lexer.scanIdentOrKeyword,
// since it is not a fixed set of spellings.
var Keywords = map[string]bool{
	"contract":       true,
	"field":          true,
	"transition":     true,
	"procedure":      true,
	"library":        true,
	"import":         true,
	"scilla_version": true,
	"with":           true,
	"end":            true,
	"let":            true,
	"in":             true,
	"match":          true,
	"fun":            true,
	"tfun":           true,
	"forall":         true,
	"type":           true,
	"of":             true,
	"True":           true,
	"False":          true,
	"Map":            true,
	"List":           true,
	"Option":         true,
	"Pair":           true,
	"ByStr":          true,
}
