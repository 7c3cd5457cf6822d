package css_ast

// CSSCalc is the typed expression tree behind calc(), min(), max(),
// clamp(), round(), mod(), rem(), abs(), sign(), and the trig/exp
// functions (CSS Values 4 §10), generalized over the leaf dimension type
// T (CSSLength, CSSAngle, CSSTime, CSSResolution, or CSSPercentage) so
// the parser can build one tree shape regardless of which property's
// value it is parsing. Exactly one field is populated per node; Op is
// meaningless when Leaf or Number is set.
type CSSCalc[T any] struct {
	// Leaf holds a resolved dimension/percentage operand.
	Leaf *T
	// Number holds a bare <number> operand (valid as a calc operand even
	// in a dimension-typed calc(), e.g. the "2" in "calc(2 * 1px)").
	Number *Numeric
	// Op and Args hold an operator node: Args has exactly 2 entries for
	// CalcAdd/CalcSub/CalcMul/CalcDiv (left, right) and N entries for the
	// variadic functions (CalcMin/CalcMax/CalcClamp's 3 args/etc).
	Op   CalcOp
	Args []CSSCalc[T]
}

type CalcOp uint8

const (
	CalcLeaf CalcOp = iota // unused sentinel; Leaf/Number nodes carry no Op
	CalcAdd
	CalcSub
	CalcMul
	CalcDiv
	CalcMin
	CalcMax
	CalcClamp
	CalcRound
	CalcMod
	CalcRem
	CalcAbs
	CalcSign
	CalcSin
	CalcCos
	CalcTan
	CalcAsin
	CalcAcos
	CalcAtan
	CalcAtan2
	CalcPow
	CalcSqrt
	CalcHypot
	CalcLog
	CalcExp
)

var calcOpNames = map[CalcOp]string{
	CalcMin: "min", CalcMax: "max", CalcClamp: "clamp", CalcRound: "round",
	CalcMod: "mod", CalcRem: "rem", CalcAbs: "abs", CalcSign: "sign",
	CalcSin: "sin", CalcCos: "cos", CalcTan: "tan",
	CalcAsin: "asin", CalcAcos: "acos", CalcAtan: "atan", CalcAtan2: "atan2",
	CalcPow: "pow", CalcSqrt: "sqrt", CalcHypot: "hypot", CalcLog: "log", CalcExp: "exp",
}

// FuncName returns the CSS function name for a calc operator node, or ""
// for Add/Sub/Mul/Div (those serialize as infix operators inside a
// wrapping "calc(...)", never as their own function call).
func (op CalcOp) FuncName() string {
	return calcOpNames[op]
}

func (op CalcOp) IsInfix() bool {
	return op == CalcAdd || op == CalcSub || op == CalcMul || op == CalcDiv
}

func CalcLeafNode[T any](v T) CSSCalc[T] {
	return CSSCalc[T]{Leaf: &v}
}

func CalcNumberNode[T any](n Numeric) CSSCalc[T] {
	return CSSCalc[T]{Number: &n}
}

func CalcOpNode[T any](op CalcOp, args ...CSSCalc[T]) CSSCalc[T] {
	return CSSCalc[T]{Op: op, Args: args}
}

func (c CSSCalc[T]) IsLeaf() bool   { return c.Leaf != nil }
func (c CSSCalc[T]) IsNumber() bool { return c.Number != nil }
