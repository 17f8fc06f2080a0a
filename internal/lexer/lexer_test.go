package lexer

import "testing"

func collect(t *testing.T, src string) []Token {
	t.Helper()
	lx := New("test.scilla", src)
	var toks []Token
	for {
		tok, err := lx.Next()
		if err != nil {
			t.Fatalf("unexpected lex error: %v", err)
		}
		toks = append(toks, tok)
		if tok.Kind == EOF {
			return toks
		}
	}
}

func TestIdentifiersAndKeywords(t *testing.T) {
	toks := collect(t, "contract Foo field x transition")
	want := []Kind{Keyword, Ident, Keyword, Ident, Keyword, EOF}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %+v", len(toks), len(want), toks)
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Errorf("token %d: got kind %s, want %s", i, toks[i].Kind, k)
		}
	}
}

func TestByStrNIsAKeyword(t *testing.T) {
	toks := collect(t, "ByStr20 ByStr ByStr32 Bystr20")
	if toks[0].Kind != Keyword || toks[0].Value != "ByStr20" {
		t.Errorf("ByStr20: got %+v", toks[0])
	}
	if toks[1].Kind != Keyword || toks[1].Value != "ByStr" {
		t.Errorf("ByStr: got %+v", toks[1])
	}
	if toks[2].Kind != Keyword || toks[2].Value != "ByStr32" {
		t.Errorf("ByStr32: got %+v", toks[2])
	}
	// Wrong case is just an ordinary identifier, not a keyword.
	if toks[3].Kind != Ident || toks[3].Value != "Bystr20" {
		t.Errorf("Bystr20: got %+v", toks[3])
	}
}

func TestPrimitiveTypeNamesAreIdentifiers(t *testing.T) {
	// Int32, Uint128, String, etc. are not in the lexer's keyword set
	// (spec §4.1): the type parser recognizes them by name.
	toks := collect(t, "Int32 Uint128 String BNum Bool Message Event")
	for _, tok := range toks[:len(toks)-1] {
		if tok.Kind != Ident {
			t.Errorf("%s: got kind %s, want Ident", tok.Value, tok.Kind)
		}
	}
}

func TestNestedBlockComments(t *testing.T) {
	toks := collect(t, "field (* outer (* inner *) still outer *) x")
	want := []Kind{Keyword, Ident, EOF}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %+v", len(toks), len(want), toks)
	}
}

func TestUnterminatedBlockCommentIsLexError(t *testing.T) {
	lx := New("test.scilla", "field (* never closed")
	for i := 0; i < 10; i++ {
		tok, err := lx.Next()
		if err != nil {
			return
		}
		if tok.Kind == EOF {
			t.Fatal("expected a lex error before EOF")
		}
	}
	t.Fatal("expected a lex error within a few tokens")
}

func TestUnterminatedStringIsLexError(t *testing.T) {
	lx := New("test.scilla", `"never closed`)
	_, err := lx.Next()
	if err == nil {
		t.Fatal("expected a lex error")
	}
}

func TestHexLiteral(t *testing.T) {
	toks := collect(t, "0x1234abcdEF")
	if toks[0].Kind != Hex || toks[0].Value != "0x1234abcdEF" {
		t.Errorf("got %+v", toks[0])
	}
}

func TestPunctuation(t *testing.T) {
	toks := collect(t, "(){}[],:;=|=>")
	want := []Kind{LParen, RParen, LBrace, RBrace, LBracket, RBracket, Comma, Colon, Semicolon, Equals, Pipe, FatArrow, EOF}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %+v", len(toks), len(want), toks)
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Errorf("token %d: got %s, want %s", i, toks[i].Kind, k)
		}
	}
}

func TestOperatorsInsideExpressionsDoNotError(t *testing.T) {
	// The skip-scanner has to tokenize through arbitrary initializer and
	// transition-body text; symbols with no grammar meaning are still
	// lexed, just as a catch-all Operator kind.
	toks := collect(t, "a <- b; c := d + e")
	for _, tok := range toks {
		if tok.Kind == EOF {
			break
		}
		if tok.Value == "" {
			t.Errorf("empty token value: %+v", tok)
		}
	}
}

func TestByteOffsetsAdvance(t *testing.T) {
	toks := collect(t, "ab cd")
	if toks[0].Pos.Offset != 0 {
		t.Errorf("first token offset = %d, want 0", toks[0].Pos.Offset)
	}
	if toks[1].Pos.Offset != 3 {
		t.Errorf("second token offset = %d, want 3", toks[1].Pos.Offset)
	}
}

func TestLeadingBOMIsStripped(t *testing.T) {
	toks := collect(t, "\xEF\xBB\xBFcontract")
	if toks[0].Kind != Keyword || toks[0].Value != "contract" {
		t.Errorf("got %+v", toks[0])
	}
}
