package crafty

import (
	"fmt"
	"io"
	"strconv"

	"github.com/juju/errors"
	"go.uber.org/zap"
)

// Interpreter walks a parsed Program's statement list against a stack of
// lexical environments. It runs single-threaded and synchronously: there is
// no cancellation, no suspension, and no shared mutable state beyond its
// own Environment.
type Interpreter struct {
	env         *Environment
	out         io.Writer
	log         *zap.Logger
	floatFormat string
}

// NewInterpreter creates an Interpreter that writes Print output and error
// lines to out. A nil logger disables debug tracing. Float values print in
// "auto" (shortest round-trip decimal) format by default; see
// SetFloatFormat.
func NewInterpreter(out io.Writer, log *zap.Logger) *Interpreter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Interpreter{env: NewEnvironment(), out: out, log: log, floatFormat: "auto"}
}

// SetFloatFormat selects how `print` renders Float values: "auto" (the
// default, shortest round-trip decimal) or "fixed6" (always six digits
// after the decimal point). Anything else is treated as "auto".
func (in *Interpreter) SetFloatFormat(format string) {
	in.floatFormat = format
}

func (in *Interpreter) stringify(v Value) string {
	if v.IsFloat() && in.floatFormat == "fixed6" {
		return strconv.FormatFloat(v.Float64(), 'f', 6, 64)
	}
	return v.String()
}

// Run scans, parses, and evaluates source as one program. A parse error is
// reported and the evaluator is never invoked, per the core's pipeline
// contract. A runtime error is reported and execution continues with the
// next top-level statement. Run reports whether the program ran without
// any parse or runtime error, for the driver's exit-code decision.
func (in *Interpreter) Run(source string) bool {
	scanner := NewScanner(source, in.log)
	tokens := scanner.Filtered()

	parser := NewParser(tokens)
	program, err := parser.Parse()
	if err != nil {
		fmt.Fprintf(in.out, "Error parsing: %s\n", errors.Cause(err))
		return false
	}

	ok := true
	for i, stmt := range program.Statements {
		in.log.Debug("executing statement",
			zap.Int("index", i),
			zap.String("kind", stmtKind(stmt)),
		)
		if err := in.execute(stmt); err != nil {
			fmt.Fprintf(in.out, "Error evaluating: %s\n", errors.Annotatef(err, "evaluating %s", stmtKind(stmt)))
			ok = false
		}
	}
	return ok
}

// --- statements --------------------------------------------------------

func (in *Interpreter) execute(stmt Stmt) error {
	switch s := stmt.(type) {
	case *ExpressionStmt:
		_, err := in.eval(s.Expression)
		return err

	case *PrintStmt:
		v, err := in.eval(s.Expression)
		if err != nil {
			return err
		}
		fmt.Fprintln(in.out, in.stringify(v))
		return nil

	case *VarStmt:
		value := Nil
		if s.Initializer != nil {
			v, err := in.eval(s.Initializer)
			if err != nil {
				return err
			}
			value = v
		}
		in.env.Define(s.Name.Lexeme, value)
		return nil

	case *BlockStmt:
		in.env.Push()
		defer in.env.Pop()
		for _, inner := range s.Statements {
			if err := in.execute(inner); err != nil {
				return err
			}
		}
		return nil

	case *IfStmt:
		cond, err := in.eval(s.Condition)
		if err != nil {
			return err
		}
		truthy, err := requireBoolean(cond, "if condition")
		if err != nil {
			return err
		}
		if truthy {
			return in.execute(s.Then)
		}
		if s.Else != nil {
			return in.execute(s.Else)
		}
		return nil

	case *WhileStmt:
		for {
			cond, err := in.eval(s.Condition)
			if err != nil {
				return err
			}
			truthy, err := requireBoolean(cond, "while condition")
			if err != nil {
				return err
			}
			if !truthy {
				return nil
			}
			if err := in.execute(s.Body); err != nil {
				return err
			}
		}

	default:
		return newRuntimeError("statement", "unhandled statement type %T", stmt)
	}
}

// --- expressions ---------------------------------------------------------

func (in *Interpreter) eval(expr Expr) (Value, error) {
	switch e := expr.(type) {
	case *BoolLiteral:
		return BoolValue(e.Value), nil

	case *IntegerLiteral:
		n, err := strconv.ParseInt(e.Text, 10, 64)
		if err != nil {
			return Nil, newRuntimeError("integer literal", "could not parse '%s' as integer", e.Text)
		}
		return IntegerValue(n), nil

	case *FloatLiteral:
		f, err := strconv.ParseFloat(e.Text, 64)
		if err != nil {
			return Nil, newRuntimeError("float literal", "could not parse '%s' as float", e.Text)
		}
		return FloatValue(f), nil

	case *StringLiteral:
		return StringValue(unquote(e.Text)), nil

	case *Grouping:
		return in.eval(e.Inner)

	case *Variable:
		v, err := in.env.Get(e.Name.Lexeme)
		if err != nil {
			return Nil, newRuntimeError("variable reference", "%s", err)
		}
		return v, nil

	case *Assign:
		v, err := in.eval(e.Value)
		if err != nil {
			return Nil, err
		}
		if err := in.env.Assign(e.Name.Lexeme, v); err != nil {
			return Nil, newRuntimeError("assignment", "%s", err)
		}
		return v, nil

	case *Unary:
		return in.evalUnary(e)

	case *Binary:
		return in.evalBinary(e)

	case *Logical:
		return in.evalLogical(e)

	default:
		return Nil, newRuntimeError("expression", "unhandled expression type %T", expr)
	}
}

// unquote strips the surrounding quote characters the scanner's contract
// leaves on a string lexeme. The parser has already rejected lexemes that
// aren't well-formed (see Parser.primary), so text is always at least two
// characters bounded by '"'.
func unquote(text string) string {
	return text[1 : len(text)-1]
}

func (in *Interpreter) evalUnary(e *Unary) (Value, error) {
	operand, err := in.eval(e.Operand)
	if err != nil {
		return Nil, err
	}
	switch e.Op {
	case Minus:
		switch {
		case operand.IsInteger():
			return IntegerValue(-operand.Int()), nil
		case operand.IsFloat():
			return FloatValue(-operand.Float64()), nil
		default:
			return Nil, newRuntimeError("unary expression", "cannot negate %s operand", operand.Kind())
		}
	case Bang:
		if !operand.IsBool() {
			return Nil, newRuntimeError("unary expression", "cannot logically negate %s operand", operand.Kind())
		}
		return BoolValue(!operand.Bool()), nil
	default:
		return Nil, newRuntimeError("unary expression", "unsupported unary operator %s", e.Op)
	}
}

func (in *Interpreter) evalBinary(e *Binary) (Value, error) {
	l, err := in.eval(e.Left)
	if err != nil {
		return Nil, err
	}
	r, err := in.eval(e.Right)
	if err != nil {
		return Nil, err
	}

	switch e.Op {
	case Plus:
		return arithmetic(l, r, "add", func(a, b int64) int64 { return a + b }, func(a, b float64) float64 { return a + b })
	case Minus:
		return arithmetic(l, r, "subtract", func(a, b int64) int64 { return a - b }, func(a, b float64) float64 { return a - b })
	case Star:
		return arithmetic(l, r, "multiply", func(a, b int64) int64 { return a * b }, func(a, b float64) float64 { return a * b })
	case Slash:
		return divide(l, r)
	case Less, LessEqual, Greater, GreaterEqual:
		return compare(e.Op, l, r)
	case EqualEqual:
		return equality(l, r, false)
	case BangEqual:
		return equality(l, r, true)
	default:
		return Nil, newRuntimeError("binary expression", "unsupported binary operator %s", e.Op)
	}
}

func (in *Interpreter) evalLogical(e *Logical) (Value, error) {
	left, err := in.eval(e.Left)
	if err != nil {
		return Nil, err
	}
	leftTruthy, err := requireBoolean(left, "logical operand")
	if err != nil {
		return Nil, err
	}

	if e.Op == Or {
		if leftTruthy {
			return left, nil
		}
		return in.eval(e.Right)
	}
	// And
	if !leftTruthy {
		return left, nil
	}
	return in.eval(e.Right)
}

// requireBoolean implements the core's truthiness policy: only
// Boolean(true)/Boolean(false) may be tested by if/while/logical
// operators. Anything else is a type error rather than Lox's looser
// truthy/falsy rule (spec.md §9, resolved toward the stricter option).
func requireBoolean(v Value, where string) (bool, error) {
	if !v.IsBool() {
		return false, newRuntimeError(where, "expected boolean condition, got %s", v.Kind())
	}
	return v.Bool(), nil
}

// arithmetic implements the promotion rule for +, -, *: both operands
// Integer yields Integer; any Float operand promotes both to Float.
func arithmetic(l, r Value, verb string, intOp func(a, b int64) int64, floatOp func(a, b float64) float64) (Value, error) {
	switch {
	case l.IsInteger() && r.IsInteger():
		return IntegerValue(intOp(l.Int(), r.Int())), nil
	case l.IsNumber() && r.IsNumber():
		return FloatValue(floatOp(l.AsFloat(), r.AsFloat())), nil
	default:
		return Nil, newRuntimeError("binary expression", "cannot %s %s and %s operands", verb, l.Kind(), r.Kind())
	}
}

// divide implements true division: Integer/Integer promotes to Float,
// erroring on an exact-zero Integer divisor; any Float operand follows
// IEEE-754 (including +Inf/-Inf/NaN on zero).
func divide(l, r Value) (Value, error) {
	switch {
	case l.IsInteger() && r.IsInteger():
		if r.Int() == 0 {
			return Nil, newRuntimeError("binary expression", "division by zero")
		}
		return FloatValue(float64(l.Int()) / float64(r.Int())), nil
	case l.IsNumber() && r.IsNumber():
		return FloatValue(l.AsFloat() / r.AsFloat()), nil
	default:
		return Nil, newRuntimeError("binary expression", "cannot divide %s and %s operands", l.Kind(), r.Kind())
	}
}

func compare(op TokenKind, l, r Value) (Value, error) {
	if !l.IsNumber() || !r.IsNumber() {
		return Nil, newRuntimeError("binary expression", "cannot compare %s and %s operands", l.Kind(), r.Kind())
	}
	a, b := l.AsFloat(), r.AsFloat()
	switch op {
	case Less:
		return BoolValue(a < b), nil
	case LessEqual:
		return BoolValue(a <= b), nil
	case Greater:
		return BoolValue(a > b), nil
	case GreaterEqual:
		return BoolValue(a >= b), nil
	default:
		return Nil, newRuntimeError("binary expression", "unsupported comparison operator %s", op)
	}
}

func equality(l, r Value, negate bool) (Value, error) {
	var eq bool
	switch {
	case l.IsNumber() && r.IsNumber():
		eq = l.AsFloat() == r.AsFloat()
	case l.IsBool() && r.IsBool():
		eq = l.EqualValueTo(r)
	case l.IsString() && r.IsString():
		eq = l.EqualValueTo(r)
	case l.IsNil() && r.IsNil():
		eq = true
	default:
		return Nil, newRuntimeError("binary expression", "cannot compare %s and %s for equality", l.Kind(), r.Kind())
	}
	if negate {
		eq = !eq
	}
	return BoolValue(eq), nil
}

// stmtKind names a statement's AST variant for debug-log and error
// annotation purposes.
func stmtKind(stmt Stmt) string {
	switch stmt.(type) {
	case *ExpressionStmt:
		return "expression statement"
	case *PrintStmt:
		return "print statement"
	case *VarStmt:
		return "var statement"
	case *BlockStmt:
		return "block statement"
	case *IfStmt:
		return "if statement"
	case *WhileStmt:
		return "while statement"
	default:
		return fmt.Sprintf("%T", stmt)
	}
}
