package ast

import "github.com/dekarrin/m2comp/internal/source"

func binOp(tag Tag, pos source.Position, left, right Node) Node {
	return newBinary(tag, pos, left, right)
}

// Relational operators.
func NewEq(pos source.Position, l, r Node) Node         { return binOp(Eq, pos, l, r) }
func NewNeq(pos source.Position, l, r Node) Node        { return binOp(Neq, pos, l, r) }
func NewLt(pos source.Position, l, r Node) Node         { return binOp(Lt, pos, l, r) }
func NewLe(pos source.Position, l, r Node) Node         { return binOp(Le, pos, l, r) }
func NewGt(pos source.Position, l, r Node) Node         { return binOp(Gt, pos, l, r) }
func NewGe(pos source.Position, l, r Node) Node         { return binOp(Ge, pos, l, r) }
func NewSameType(pos source.Position, l, r Node) Node   { return binOp(SameTypeOp, pos, l, r) }
func NewIn(pos source.Position, l, r Node) Node         { return binOp(InOp, pos, l, r) }

// Additive-precedence operators.
func NewPlus(pos source.Position, l, r Node) Node  { return binOp(PlusOp, pos, l, r) }
func NewMinus(pos source.Position, l, r Node) Node { return binOp(MinusOp, pos, l, r) }
func NewOr(pos source.Position, l, r Node) Node     { return binOp(OrOp, pos, l, r) }

// Multiplicative-precedence operators (NewAsterisk through NewAnd), followed
// by NewAmp and NewBackslash, which the parser builds at additive precedence.
func NewAsterisk(pos source.Position, l, r Node) Node  { return binOp(AsteriskOp, pos, l, r) }
func NewSlash(pos source.Position, l, r Node) Node     { return binOp(SlashOp, pos, l, r) }
func NewDiv(pos source.Position, l, r Node) Node       { return binOp(DivOp, pos, l, r) }
func NewMod(pos source.Position, l, r Node) Node       { return binOp(ModOp, pos, l, r) }
func NewAnd(pos source.Position, l, r Node) Node       { return binOp(AndOp, pos, l, r) }
func NewAmp(pos source.Position, l, r Node) Node       { return binOp(AmpOp, pos, l, r) }
func NewBackslash(pos source.Position, l, r Node) Node { return binOp(BackslashOp, pos, l, r) }

// Unary operators.
func NewNegate(pos source.Position, operand Node) Node { return newUnary(Negate, pos, operand) }
func NewNot(pos source.Position, operand Node) Node    { return newUnary(NotOp, pos, operand) }

// NewIntLiteral wraps an already-parsed whole-number value.
func NewIntLiteral(pos source.Position, value int64) Node {
	return newLeaf(IntLiteral, pos, value)
}

// NewRealLiteral wraps an already-parsed floating-point value.
func NewRealLiteral(pos source.Position, value float64) Node {
	return newLeaf(RealLiteral, pos, value)
}

// NewCharLiteral wraps a single-character value.
func NewCharLiteral(pos source.Position, value rune) Node {
	return newLeaf(CharLiteral, pos, value)
}

// NewStringLiteral wraps a quoted-string value.
func NewStringLiteral(pos source.Position, value string) Node {
	return newLeaf(StringLiteral, pos, value)
}

// NewNilLiteral builds the childless NIL literal.
func NewNilLiteral(pos source.Position) Node {
	return newLeaf(NilLiteral, pos, nil)
}

// NewSetElementList collects one or more set-literal elements (values or
// SetRanges).
func NewSetElementList(pos source.Position, elems ...Node) Node {
	return newList(SetElementList, pos, elems)
}

// NewSetRange is a low..high pair inside a set literal or CASE label.
func NewSetRange(pos source.Position, low, high Node) Node {
	return newBinary(SetRange, pos, low, high)
}

// NewSetLiteral wraps a SetElementList (or Empty for {}), qualified by its
// set type elsewhere in the surrounding designator.
func NewSetLiteral(pos source.Position, elems Node) Node {
	return newUnary(SetLiteral, pos, elems)
}

// NewIdent wraps a single identifier's interned text.
func NewIdent(pos source.Position, name string) Node {
	return newLeaf(Ident, pos, name)
}

// NewQualident is module.name, the two-part qualified identifier.
func NewQualident(pos source.Position, module, name Node) Node {
	return binOp(Qualident, pos, module, name)
}

// NewSubscript is arr[index].
func NewSubscript(pos source.Position, arr, index Node) Node {
	return binOp(Subscript, pos, arr, index)
}

// NewDeref is ptr^.
func NewDeref(pos source.Position, ptr Node) Node {
	return newUnary(Deref, pos, ptr)
}

// NewFieldAccess is record.field.
func NewFieldAccess(pos source.Position, record, field Node) Node {
	return binOp(FieldAccess, pos, record, field)
}

// NewTypeConv is expression::targetType.
func NewTypeConv(pos source.Position, expr, targetType Node) Node {
	return binOp(TypeConv, pos, expr, targetType)
}
