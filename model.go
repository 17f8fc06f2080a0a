// Package scillasurface parses the declarative surface of a Scilla smart
// contract — its name, init parameters, mutable fields, and transitions —
// without evaluating or type-checking the expressions inside it. It is a
// pure function of its input: one call parses one buffer (or one file)
// into an immutable Contract and does no I/O beyond that single read.
package scillasurface

// Contract is the result of parsing one Scilla source file. It is built
// once by Parse or ParseFile and is read-only thereafter.
type Contract struct {
	Name        string
	InitParams  []Field
	Fields      []Field
	Transitions []Transition

	// Version, Imports, and LibraryName are supplemental: the Scilla
	// surface grammar discards them, but none costs anything to retain
	// and a downstream code generator may want them. Version is 0 and
	// LibraryName is nil when the corresponding source construct is
	// absent, which Parse never distinguishes from "present but zero" —
	// spec.md does not ask for presence tracking on these.
	Version     int
	Imports     []string
	LibraryName *string
}

// Field is a named, typed declaration: a contract state field, or a
// parameter of an init list or a transition.
type Field struct {
	Name string
	Type Type
}

// NewField builds a Field from a name and type.
func NewField(name string, typ Type) Field {
	return Field{Name: name, Type: typ}
}

// Transition is an externally callable entry point of a contract.
type Transition struct {
	Name   string
	Params []Field
}

// NewTransition builds a Transition with no parameters.
func NewTransition(name string) Transition {
	return Transition{Name: name}
}

// NewTransitionWithParams builds a Transition with the given parameters,
// preserving their order.
func NewTransitionWithParams(name string, params []Field) Transition {
	return Transition{Name: name, Params: params}
}

// Kind discriminates the variant of a Type.
type Kind int

const (
	KindInt32 Kind = iota
	KindInt64
	KindInt128
	KindInt256
	KindUint32
	KindUint64
	KindUint128
	KindUint256
	KindString
	KindBNum
	KindBool
	KindMessage
	KindEvent
	KindByStr
	KindByStrN
	KindMap
	KindList
	KindOption
	KindPair
	KindAddress
	KindCustom
)

func (k Kind) String() string {
	switch k {
	case KindInt32:
		return "Int32"
	case KindInt64:
		return "Int64"
	case KindInt128:
		return "Int128"
	case KindInt256:
		return "Int256"
	case KindUint32:
		return "Uint32"
	case KindUint64:
		return "Uint64"
	case KindUint128:
		return "Uint128"
	case KindUint256:
		return "Uint256"
	case KindString:
		return "String"
	case KindBNum:
		return "BNum"
	case KindBool:
		return "Bool"
	case KindMessage:
		return "Message"
	case KindEvent:
		return "Event"
	case KindByStr:
		return "ByStr"
	case KindByStrN:
		return "ByStrN"
	case KindMap:
		return "Map"
	case KindList:
		return "List"
	case KindOption:
		return "Option"
	case KindPair:
		return "Pair"
	case KindAddress:
		return "Address"
	case KindCustom:
		return "Custom"
	default:
		return "unknown"
	}
}

// Type is a tagged sum over the Scilla type grammar. Only the fields
// relevant to Kind are populated; the rest are zero values.
//
//   - KindByStrN populates N.
//   - KindMap populates Key and Elem (the map's value type).
//   - KindList and KindOption populate Elem.
//   - KindPair populates Key (first) and Elem (second).
//   - KindAddress populates Address.
//   - KindCustom populates Name.
type Type struct {
	Kind Kind

	N       int         // ByStrN length
	Key     *Type       // Map key, Pair first
	Elem    *Type       // Map value, List/Option inner, Pair second
	Address *AddressRef // KindAddress payload
	Name    string      // KindCustom payload
}

// AddressKind discriminates the refinement attached to a ByStr20 address.
type AddressKind int

const (
	AddressRaw AddressKind = iota
	AddressLibrary
	AddressContract
)

// AddressRef is the payload of a KindAddress Type.
type AddressRef struct {
	Kind   AddressKind
	Fields []Field // only meaningful when Kind == AddressContract
}

func primitive(k Kind) Type { return Type{Kind: k} }

// Int32Type, Int64Type, ... are the zero-argument primitive Types,
// exposed as constructors so callers building a Contract by hand (tests,
// code generators round-tripping a model) don't need to know the zero
// value of unused Type fields is meaningless for these variants.
func Int32Type() Type   { return primitive(KindInt32) }
func Int64Type() Type   { return primitive(KindInt64) }
func Int128Type() Type  { return primitive(KindInt128) }
func Int256Type() Type  { return primitive(KindInt256) }
func Uint32Type() Type  { return primitive(KindUint32) }
func Uint64Type() Type  { return primitive(KindUint64) }
func Uint128Type() Type { return primitive(KindUint128) }
func Uint256Type() Type { return primitive(KindUint256) }
func StringType() Type  { return primitive(KindString) }
func BNumType() Type    { return primitive(KindBNum) }
func BoolType() Type    { return primitive(KindBool) }
func MessageType() Type { return primitive(KindMessage) }
func EventType() Type   { return primitive(KindEvent) }
func ByStrType() Type   { return primitive(KindByStr) }

// ByStrNType builds a sized byte-string type. n must be >= 1.
func ByStrNType(n int) Type { return Type{Kind: KindByStrN, N: n} }

// MapType builds Map(key, value).
func MapType(key, value Type) Type { return Type{Kind: KindMap, Key: &key, Elem: &value} }

// ListType builds List(elem).
func ListType(elem Type) Type { return Type{Kind: KindList, Elem: &elem} }

// OptionType builds Option(inner).
func OptionType(inner Type) Type { return Type{Kind: KindOption, Elem: &inner} }

// PairType builds Pair(first, second).
func PairType(first, second Type) Type { return Type{Kind: KindPair, Key: &first, Elem: &second} }

// CustomType builds a Custom(name) type for any identifier used in a type
// position that isn't one of the known primitives or ADTs.
func CustomType(name string) Type { return Type{Kind: KindCustom, Name: name} }

// RawAddressType builds Address(Raw). Parse never produces this variant
// itself: a bare, unrefined ByStr20 in source is ByStrN(20) (spec §4.2
// point 2), and KindAddress only arises from a "with" refinement. It
// exists so the Raw case of the address-kind sum is still constructible
// and comparable by hand for callers assembling or round-tripping a
// Contract themselves.
func RawAddressType() Type {
	return Type{Kind: KindAddress, Address: &AddressRef{Kind: AddressRaw}}
}

// LibraryAddressType builds Address(Library) — ByStr20 with library end.
func LibraryAddressType() Type {
	return Type{Kind: KindAddress, Address: &AddressRef{Kind: AddressLibrary}}
}

// ContractAddressType builds Address(Contract(fields)) — ByStr20 with
// contract field ... end. fields may be empty but not nil-vs-empty
// distinguished; both compare equal under Type.Equal.
func ContractAddressType(fields []Field) Type {
	return Type{Kind: KindAddress, Address: &AddressRef{Kind: AddressContract, Fields: fields}}
}

// Equal reports whether t and other are the same Type: same Kind, and
// recursively equal components. Two Types built independently — one by
// hand via the constructors above, one by Parse — compare equal whenever
// they describe the same type.
func (t Type) Equal(other Type) bool {
	if t.Kind != other.Kind {
		return false
	}
	switch t.Kind {
	case KindByStrN:
		return t.N == other.N
	case KindMap, KindPair:
		return typePtrEqual(t.Key, other.Key) && typePtrEqual(t.Elem, other.Elem)
	case KindList, KindOption:
		return typePtrEqual(t.Elem, other.Elem)
	case KindAddress:
		return addressRefEqual(t.Address, other.Address)
	case KindCustom:
		return t.Name == other.Name
	default:
		return true
	}
}

func typePtrEqual(a, b *Type) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

func addressRefEqual(a, b *AddressRef) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind {
		return false
	}
	if a.Kind != AddressContract {
		return true
	}
	return fieldsEqual(a.Fields, b.Fields)
}

func fieldsEqual(a, b []Field) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Name != b[i].Name || !a[i].Type.Equal(b[i].Type) {
			return false
		}
	}
	return true
}

// Equal reports whether c and other describe the same contract: equal
// names and pointwise-equal init params, fields, and transitions.
func (c *Contract) Equal(other *Contract) bool {
	if c == nil || other == nil {
		return c == other
	}
	if c.Name != other.Name {
		return false
	}
	if !fieldsEqual(c.InitParams, other.InitParams) {
		return false
	}
	if !fieldsEqual(c.Fields, other.Fields) {
		return false
	}
	if len(c.Transitions) != len(other.Transitions) {
		return false
	}
	for i := range c.Transitions {
		a, b := c.Transitions[i], other.Transitions[i]
		if a.Name != b.Name || !fieldsEqual(a.Params, b.Params) {
			return false
		}
	}
	return true
}
