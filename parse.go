package scillasurface

import (
	"fmt"
	"os"
	"unicode/utf8"
)

// Parse parses a single Scilla contract source buffer into a Contract.
// filename is used only for position information in errors; it may be
// empty. Parse performs no I/O.
func Parse(filename, src string) (*Contract, error) {
	p := newParser(filename, src)
	return parseContract(p)
}

// ParseFile reads path as UTF-8 and parses it with Parse. A failure to
// read the file is returned as-is (wrapped with the path), distinct from
// any *ParseError Parse itself might return, so a caller can always tell
// "couldn't read it" from "read it fine, couldn't parse it" (spec §4.5,
// §6, §7).
func ParseFile(path string) (*Contract, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scillasurface: reading %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("scillasurface: %s is not valid UTF-8", path)
	}
	return Parse(path, string(data))
}
