package config

// Operators is the single source of truth for the lexer's operator
// alphabet and the parser's precedence-climbing table (spec §4.8).
//
// When adding an operator, update:
//   1. this table (symbol, precedence, associativity)
//   2. lexer's operator alphabet recognition (longest-match over Symbols)
//   3. nothing else — the parser's precedence climb reads this table directly.

// Associativity defines operator associativity.
type Associativity int

const (
	AssocLeft Associativity = iota
	AssocRight
)

// Precedence levels, lowest to highest, matching spec §4.8's table.
const (
	PrecLowest     = 0
	PrecAssignLike = 1 // =  += -= *= /= %=  &&  ||  ..  ..=
	PrecComparison = 2 // == != > < >= <=
	PrecBitwise    = 3 // & | ^ << >>
	PrecAdditive   = 4 // + -
	PrecMultiplicative = 5 // * / % **
)

// OperatorInfo carries everything the lexer and parser need for one
// operator spelling.
type OperatorInfo struct {
	Symbol     string
	Precedence int
	Assoc      Associativity
}

// Operators lists every multi-character and single-character operator
// the lexer's greedy longest-match scan recognizes, ordered longest
// symbol first within an equal precedence for readability (the lexer
// itself sorts by length, not table order).
var Operators = []OperatorInfo{
	{Symbol: "**", Precedence: PrecMultiplicative, Assoc: AssocLeft},
	{Symbol: "*", Precedence: PrecMultiplicative, Assoc: AssocLeft},
	{Symbol: "/", Precedence: PrecMultiplicative, Assoc: AssocLeft},
	{Symbol: "%", Precedence: PrecMultiplicative, Assoc: AssocLeft},

	{Symbol: "+", Precedence: PrecAdditive, Assoc: AssocLeft},
	{Symbol: "-", Precedence: PrecAdditive, Assoc: AssocLeft},

	{Symbol: "<<", Precedence: PrecBitwise, Assoc: AssocLeft},
	{Symbol: ">>", Precedence: PrecBitwise, Assoc: AssocLeft},
	{Symbol: "&", Precedence: PrecBitwise, Assoc: AssocLeft},
	{Symbol: "|", Precedence: PrecBitwise, Assoc: AssocLeft},
	{Symbol: "^", Precedence: PrecBitwise, Assoc: AssocLeft},

	{Symbol: "==", Precedence: PrecComparison, Assoc: AssocLeft},
	{Symbol: "!=", Precedence: PrecComparison, Assoc: AssocLeft},
	{Symbol: ">=", Precedence: PrecComparison, Assoc: AssocLeft},
	{Symbol: "<=", Precedence: PrecComparison, Assoc: AssocLeft},
	{Symbol: ">", Precedence: PrecComparison, Assoc: AssocLeft},
	{Symbol: "<", Precedence: PrecComparison, Assoc: AssocLeft},

	{Symbol: "..=", Precedence: PrecAssignLike, Assoc: AssocLeft},
	{Symbol: "..", Precedence: PrecAssignLike, Assoc: AssocLeft},
	{Symbol: "&&", Precedence: PrecAssignLike, Assoc: AssocLeft},
	{Symbol: "||", Precedence: PrecAssignLike, Assoc: AssocLeft},
	{Symbol: "+=", Precedence: PrecAssignLike, Assoc: AssocLeft},
	{Symbol: "-=", Precedence: PrecAssignLike, Assoc: AssocLeft},
	{Symbol: "*=", Precedence: PrecAssignLike, Assoc: AssocLeft},
	{Symbol: "/=", Precedence: PrecAssignLike, Assoc: AssocLeft},
	{Symbol: "%=", Precedence: PrecAssignLike, Assoc: AssocLeft},
	{Symbol: "=", Precedence: PrecAssignLike, Assoc: AssocLeft},

	// Structural / non-binary operator spellings the lexer must still
	// recognize greedily so they aren't mis-split (e.g. "::" before
	// two separate ":" punctuation tokens).
	{Symbol: "::", Precedence: PrecLowest, Assoc: AssocLeft},
	{Symbol: "->", Precedence: PrecLowest, Assoc: AssocLeft},
	{Symbol: "?:", Precedence: PrecLowest, Assoc: AssocLeft},
	{Symbol: "!", Precedence: PrecLowest, Assoc: AssocRight},
	{Symbol: "~", Precedence: PrecLowest, Assoc: AssocRight},
}

// PrecedenceOf returns the binary precedence of an operator spelling,
// or PrecLowest (with ok=false) if it is not a binary operator the
// precedence climb handles directly (postfix forms like `has`,
// `derives`, ternary, and `?:` are handled separately by the parser).
func PrecedenceOf(symbol string) (int, bool) {
	for _, op := range Operators {
		if op.Symbol == symbol {
			return op.Precedence, op.Precedence > PrecLowest || symbol == "="
		}
	}
	return PrecLowest, false
}

// OperatorSymbols returns every recognized operator spelling sorted
// longest-first, for the lexer's greedy longest-match scan.
func OperatorSymbols() []string {
	syms := make([]string, len(Operators))
	for i, op := range Operators {
		syms[i] = op.Symbol
	}
	// Insertion sort by descending length; the table is short.
	for i := 1; i < len(syms); i++ {
		for j := i; j > 0 && len(syms[j]) > len(syms[j-1]); j-- {
			syms[j], syms[j-1] = syms[j-1], syms[j]
		}
	}
	return syms
}
