package scillasurface

import (
	"fmt"

	"github.com/alecthomas/participle/v2/lexer"

	internallexer "github.com/arjunm/scillasurface/internal/lexer"
)

// ErrorKind discriminates the reason a parse failed. It does not include
// IoError: a failure to read a file surfaces as a plain wrapped error
// from ParseFile, kept distinct from ParseError so a caller can always
// tell "couldn't read the file" from "read it fine, couldn't parse it".
type ErrorKind int

const (
	ErrLex ErrorKind = iota
	ErrUnexpectedToken
	ErrUnexpectedEndOfInput
	ErrUnknownType
	ErrMalformedAddressRefinement
)

func (k ErrorKind) String() string {
	switch k {
	case ErrLex:
		return "LexError"
	case ErrUnexpectedToken:
		return "UnexpectedToken"
	case ErrUnexpectedEndOfInput:
		return "UnexpectedEndOfInput"
	case ErrUnknownType:
		return "UnknownType"
	case ErrMalformedAddressRefinement:
		return "MalformedAddressRefinement"
	default:
		return "unknown"
	}
}

// ParseError is the error type Parse returns for anything short of a
// successful Contract. ParseFile returns it for the same failures, but
// reports a file it cannot read, or that is not valid UTF-8, with a plain
// wrapped error instead. Kind says which of the taxonomy's cases applies;
// Offset and Pos locate it in the source.
type ParseError struct {
	Kind    ErrorKind
	Offset  int
	Pos     lexer.Position
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Pos, e.Kind, e.Message)
}

func newParseError(kind ErrorKind, pos lexer.Position, format string, args ...any) *ParseError {
	return &ParseError{Kind: kind, Offset: pos.Offset, Pos: pos, Message: fmt.Sprintf(format, args...)}
}

// fromLexError converts the lexer's own error type (unterminated comment
// or string, unexpected character) into the public taxonomy's LexError.
func fromLexError(err error) *ParseError {
	if le, ok := err.(*internallexer.Error); ok {
		return &ParseError{Kind: ErrLex, Offset: le.Offset, Pos: le.Pos, Message: le.Message}
	}
	return &ParseError{Kind: ErrLex, Message: err.Error()}
}

func unexpectedToken(tok internallexer.Token, expected string) *ParseError {
	return newParseError(ErrUnexpectedToken, tok.Pos, "expected %s, found %s", expected, describeToken(tok))
}

func unexpectedEOF(pos lexer.Position, expected string) *ParseError {
	return newParseError(ErrUnexpectedEndOfInput, pos, "expected %s, found end of input", expected)
}

func unknownType(tok internallexer.Token) *ParseError {
	return newParseError(ErrUnknownType, tok.Pos, "%s cannot begin a type", describeToken(tok))
}

func malformedAddressRefinement(tok internallexer.Token) *ParseError {
	return newParseError(ErrMalformedAddressRefinement, tok.Pos,
		"'with' must be followed by 'library' or 'contract'; found %s",
		describeToken(tok))
}

func describeToken(tok internallexer.Token) string {
	if tok.Kind == internallexer.EOF {
		return "end of input"
	}
	return fmt.Sprintf("%q", tok.Value)
}
