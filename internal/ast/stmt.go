package ast

import "github.com/dekarrin/m2comp/internal/source"

// NewStmtList collects zero-or-more statements into one node; per spec the
// empty statement sequence is represented by Empty rather than an
// empty-but-present list (lists must have arity >= 1).
func NewStmtList(pos source.Position, stmts ...Node) Node {
	if len(stmts) == 0 {
		return NewEmpty(pos)
	}
	return newList(StmtList, pos, stmts)
}

// NewAssign is designator := expression.
func NewAssign(pos source.Position, lhs, rhs Node) Node {
	return newBinary(Assign, pos, lhs, rhs)
}

// NewCopy is the COPY builtin's source and destination designators.
func NewCopy(pos source.Position, dst, src Node) Node {
	return newBinary(Copy, pos, dst, src)
}

// NewArgList collects one or more call/builtin arguments.
func NewArgList(pos source.Position, args ...Node) Node {
	return newList(ArgList, pos, args)
}

// NewCall is a procedure/function designator applied to an argument list
// (or Empty when called with no arguments).
func NewCall(pos source.Position, callee, args Node) Node {
	return newBinary(Call, pos, callee, args)
}

// NewReturn wraps the returned expression, or Empty for a bare RETURN.
func NewReturn(pos source.Position, value Node) Node {
	return newUnary(Return, pos, value)
}

// NewNew wraps the designator passed to NEW.
func NewNew(pos source.Position, designator Node) Node {
	return newUnary(New, pos, designator)
}

// NewRetain wraps the designator passed to RETAIN.
func NewRetain(pos source.Position, designator Node) Node {
	return newUnary(Retain, pos, designator)
}

// NewRelease wraps the designator passed to RELEASE.
func NewRelease(pos source.Position, designator Node) Node {
	return newUnary(Release, pos, designator)
}

// NewIf is condition, then-branch, and a tail: Empty (no else), a StmtList
// (plain ELSE), or a nested If (an ELSIF, recursively — ELSIF has no
// dedicated shape distinct from IF beyond this chaining, since every ELSIF
// clause is itself a condition/then/tail triple).
func NewIf(pos source.Position, cond, thenBranch, tail Node) Node {
	return newFixed(If, pos, cond, thenBranch, tail)
}

// NewElsif is an alias of NewIf used when the parser is specifically
// building an ELSIF clause, for readability at call sites; the resulting
// node's tag is still If, matching NewIf's chaining contract.
func NewElsif(pos source.Position, cond, thenBranch, tail Node) Node {
	return newFixed(If, pos, cond, thenBranch, tail)
}

// NewCaseLabel is one CASE arm: its label set (a CaseLabelList of values and
// SetRanges) and the statements to run when a label matches.
func NewCaseLabel(pos source.Position, labels, stmts Node) Node {
	return newBinary(CaseLabel, pos, labels, stmts)
}

// NewCaseLabelList collects one or more case label values/ranges for a
// single CASE arm; the parser also uses it to collect a CASE statement's
// CaseLabel arms.
func NewCaseLabelList(pos source.Position, labels ...Node) Node {
	return newList(CaseLabelList, pos, labels)
}

// NewCase is selector, the list of CaseLabel arms, and an ELSE tail (Empty
// if absent).
func NewCase(pos source.Position, selector, arms, elseTail Node) Node {
	return newFixed(Case, pos, selector, arms, elseTail)
}

// NewLoop wraps a bare LOOP's body.
func NewLoop(pos source.Position, body Node) Node {
	return newUnary(Loop, pos, body)
}

// NewWhile is condition and body.
func NewWhile(pos source.Position, cond, body Node) Node {
	return newBinary(While, pos, cond, body)
}

// NewRepeat is body and the UNTIL condition.
func NewRepeat(pos source.Position, body, cond Node) Node {
	return newBinary(Repeat, pos, body, cond)
}

// NewForRange is the counted FOR form's middle child: low bound, high
// bound, and step (Empty if the implicit BY 1 applies).
func NewForRange(pos source.Position, low, high, step Node) Node {
	return newFixed(ForRange, pos, low, high, step)
}

// NewFor is the single FOR tag covering both surface forms: control
// variable, a middle child, and body. The middle child is a ForRange node
// for the counted form, or an IN-shaped node (control InOp iterable, see
// NewIn) for the iterator form — one shared arity-3 tree either way.
func NewFor(pos source.Position, control, middle, body Node) Node {
	return newFixed(For, pos, control, middle, body)
}

// NewExit builds the childless EXIT statement.
func NewExit(pos source.Position) Node {
	return newLeaf(Exit, pos, nil)
}

// NewRead wraps the designator READ assigns into.
func NewRead(pos source.Position, designator Node) Node {
	return newUnary(Read, pos, designator)
}

// NewWrite wraps the ArgList of expressions passed to WRITE.
func NewWrite(pos source.Position, args Node) Node {
	return newUnary(Write, pos, args)
}

// NewNop builds the childless NOP statement.
func NewNop(pos source.Position) Node {
	return newLeaf(Nop, pos, nil)
}
