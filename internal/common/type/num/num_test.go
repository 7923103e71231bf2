package num

import (
	"math"
	"math/big"
	"testing"
)

func TestArithmetic(t *testing.T) {
	tests := []struct {
		got  I
		want string
	}{
		{Add(Int(2), Int(3)), "5"},
		{Add(Int(1), Rat(1, 2)), "Rational[3, 2]"},
		{Add(Rat(1, 2), Rat(1, 2)).Normalize(), "1"},
		{Add(Int(1), Float(0.5)), "1.5"},
		{Mul(Int(-3), Int(4)), "-12"},
		{Mul(Rat(2, 3), Int(3)).Normalize(), "2"},
		{Mul(Cplx(Int(0), Int(1)), Cplx(Int(0), Int(1))).Normalize(), "-1"},
		{Sub(Int(1), Int(3)), "-2"},
		{Quo(Int(1), Int(4)), "Rational[1, 4]"},
		{Quo(Float(1), Int(4)), "0.25"},
	}

	for i, tt := range tests {
		if s := tt.got.Literal(); s != tt.want {
			t.Errorf("%d: expected %s; got %s", i, tt.want, s)
		}
	}
}

func TestDivisionByZero(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic")
		}
	}()

	Quo(Int(1), Int(0))
}

func TestEqual(t *testing.T) {
	if !Int(2).Equal(Rat(4, 2)) {
		t.Error("2 and 4/2 should be equal")
	}

	if Int(2).Equal(Float(2)) {
		t.Error("an Integer and a Real should not be equal")
	}

	if !Cplx(Int(3), Int(0)).Equal(Int(3)) {
		t.Error("a complex number with a zero imaginary part should be real")
	}

	if Int(1).Equal(Rat(1, 2)) {
		t.Error("1 and 1/2 should not be equal")
	}
}

func TestInt64(t *testing.T) {
	if n, ok := Int64(Rat(6, 3)); !ok || n != 2 {
		t.Errorf("expected 2; got %d, %v", n, ok)
	}

	if _, ok := Int64(Float(2)); ok {
		t.Error("a Real is not an Integer")
	}

	huge := new(big.Int).Lsh(big.NewInt(1), 80)
	if _, ok := Int64(BigInt(huge)); ok {
		t.Error("2^80 does not fit in an int64")
	}
}

func TestKind(t *testing.T) {
	if k := Rat(4, 2).Normalize().Kind(); k != Integer {
		t.Errorf("expected Integer; got %s", k)
	}

	if k := Add(Rat(1, 3), Float(1)).Kind(); k != Real {
		t.Errorf("expected Real; got %s", k)
	}

	if k := Add(Int(1), Cplx(Int(0), Int(1))).Kind(); k != Complex {
		t.Errorf("expected Complex; got %s", k)
	}
}

func TestParse(t *testing.T) {
	long := "123456789012345678901234"

	tests := map[string]string{
		"42":      "42",
		"007":     "7",
		"2.":      "2.",
		"3.5":     "3.5",
		"1e21":    "1.*^21",
		"1.5e-10": "1.5*^-10",
		long:      long,
	}

	for s, want := range tests {
		n, err := Parse(s)
		if err != nil {
			t.Errorf("%s: %v", s, err)

			continue
		}

		if got := n.Literal(); got != want {
			t.Errorf("%s: expected %s; got %s", s, want, got)
		}
	}

	if _, err := Parse("1x"); err == nil {
		t.Error("expected an error for 1x")
	}
}

func TestRealLiteral(t *testing.T) {
	tests := map[float64]string{
		-3:          "-3.",
		math.Inf(1): "DirectedInfinity[1]",
		math.NaN():  "Indeterminate",
	}

	for f, want := range tests {
		if got := Float(f).Literal(); got != want {
			t.Errorf("expected %s; got %s", want, got)
		}
	}
}
