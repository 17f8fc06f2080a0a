package scillasurface

import "testing"

func TestTypeEqualReflexive(t *testing.T) {
	types := []Type{
		Int32Type(), Uint128Type(), StringType(), BoolType(), BNumType(),
		MessageType(), EventType(), ByStrType(), ByStrNType(20),
		MapType(ByStrNType(20), Uint128Type()),
		ListType(StringType()),
		OptionType(PairType(StringType(), Uint32Type())),
		CustomType("Option"),
		RawAddressType(),
		LibraryAddressType(),
		ContractAddressType([]Field{NewField("owner", RawAddressType())}),
	}
	for _, typ := range types {
		if !typ.Equal(typ) {
			t.Errorf("%+v is not Equal to itself", typ)
		}
	}
}

func TestTypeEqualDistinguishesKinds(t *testing.T) {
	if Int32Type().Equal(Int64Type()) {
		t.Error("Int32 and Int64 compared equal")
	}
	if ByStrNType(20).Equal(ByStrNType(32)) {
		t.Error("ByStr20 and ByStr32 compared equal")
	}
	if CustomType("Foo").Equal(CustomType("Bar")) {
		t.Error("Custom(Foo) and Custom(Bar) compared equal")
	}
}

func TestTypeEqualStructural(t *testing.T) {
	a := MapType(ByStrNType(20), PairType(Uint128Type(), StringType()))
	b := MapType(ByStrNType(20), PairType(Uint128Type(), StringType()))
	if !a.Equal(b) {
		t.Error("independently built identical nested types compared unequal")
	}

	c := MapType(ByStrNType(20), PairType(Uint128Type(), Uint256Type()))
	if a.Equal(c) {
		t.Error("nested types differing in a leaf compared equal")
	}
}

func TestAddressRefEqualityIgnoresFieldsWhenNotContract(t *testing.T) {
	a := LibraryAddressType()
	b := LibraryAddressType()
	if !a.Equal(b) {
		t.Error("two library address types should compare equal")
	}
	if a.Equal(RawAddressType()) {
		t.Error("library and raw address types should not compare equal")
	}
	withFields := Type{Kind: KindAddress, Address: &AddressRef{
		Kind:   AddressLibrary,
		Fields: []Field{NewField("owner", StringType())},
	}}
	if !a.Equal(withFields) {
		t.Error("library address types should compare equal regardless of Fields")
	}
}

func TestContractAddressEqualityComparesFields(t *testing.T) {
	a := ContractAddressType([]Field{NewField("owner", RawAddressType())})
	b := ContractAddressType([]Field{NewField("owner", RawAddressType())})
	c := ContractAddressType([]Field{NewField("admin", RawAddressType())})
	if !a.Equal(b) {
		t.Error("same field list should compare equal")
	}
	if a.Equal(c) {
		t.Error("different field name should not compare equal")
	}
}

func TestContractEqual(t *testing.T) {
	a := &Contract{
		Name:       "HelloWorld",
		InitParams: []Field{NewField("owner", RawAddressType())},
		Fields:     []Field{NewField("welcome_msg", StringType())},
		Transitions: []Transition{
			NewTransitionWithParams("setHello", []Field{NewField("msg", StringType())}),
			NewTransition("getHello"),
		},
	}
	b := &Contract{
		Name:       "HelloWorld",
		InitParams: []Field{NewField("owner", RawAddressType())},
		Fields:     []Field{NewField("welcome_msg", StringType())},
		Transitions: []Transition{
			NewTransitionWithParams("setHello", []Field{NewField("msg", StringType())}),
			NewTransition("getHello"),
		},
	}
	if !a.Equal(b) {
		t.Error("structurally identical contracts should compare equal")
	}

	c := &Contract{Name: "Other"}
	if a.Equal(c) {
		t.Error("differently named contracts should not compare equal")
	}
}

func TestContractEqualNilHandling(t *testing.T) {
	var a, b *Contract
	if !a.Equal(b) {
		t.Error("two nil contracts should compare equal")
	}
	c := &Contract{Name: "X"}
	if a.Equal(c) || c.Equal(a) {
		t.Error("nil and non-nil contracts should not compare equal")
	}
}

func TestKindString(t *testing.T) {
	if KindInt32.String() != "Int32" {
		t.Errorf("got %q", KindInt32.String())
	}
	if KindByStrN.String() != "ByStrN" {
		t.Errorf("got %q", KindByStrN.String())
	}
}
