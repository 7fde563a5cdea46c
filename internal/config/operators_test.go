package config_test

import (
	"testing"

	"github.com/cxlang/cxc/internal/config"
)

func TestOperatorSymbolsAreLongestFirst(t *testing.T) {
	syms := config.OperatorSymbols()
	for i := 1; i < len(syms); i++ {
		if len(syms[i]) > len(syms[i-1]) {
			t.Fatalf("symbols not longest-first at index %d: %q before %q", i, syms[i-1], syms[i])
		}
	}
}

func TestPrecedenceOfKnownOperators(t *testing.T) {
	tests := []struct {
		symbol string
		want   int
	}{
		{"*", config.PrecMultiplicative},
		{"+", config.PrecAdditive},
		{"&", config.PrecBitwise},
		{"==", config.PrecComparison},
		{"&&", config.PrecAssignLike},
	}
	for _, tt := range tests {
		got, ok := config.PrecedenceOf(tt.symbol)
		if !ok {
			t.Fatalf("PrecedenceOf(%q) reported not-found", tt.symbol)
		}
		if got != tt.want {
			t.Fatalf("PrecedenceOf(%q) = %d; want %d", tt.symbol, got, tt.want)
		}
	}
}

func TestPrecedenceOfUnknownOperator(t *testing.T) {
	if _, ok := config.PrecedenceOf("@@@"); ok {
		t.Fatalf("unknown operator should report not-found")
	}
}
