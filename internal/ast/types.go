package ast

import "github.com/dekarrin/m2comp/internal/source"

// NewSubrangeType is a [lowBound .. highBound] constraint.
func NewSubrangeType(pos source.Position, low, high Node) Node {
	return newBinary(SubrangeType, pos, low, high)
}

// NewEnumType collects one or more enumeration-literal identifiers.
func NewEnumType(pos source.Position, idents ...Node) Node {
	return newList(EnumType, pos, idents)
}

// NewSetType wraps the base type a SET OF ranges over.
func NewSetType(pos source.Position, base Node) Node {
	return newUnary(SetType, pos, base)
}

// NewArrayType is an index type and an element type.
func NewArrayType(pos source.Position, index, elem Node) Node {
	return newBinary(ArrayType, pos, index, elem)
}

// NewOpenArrayType wraps an ARRAY OF element type (no index, open formal
// parameter).
func NewOpenArrayType(pos source.Position, elem Node) Node {
	return newUnary(OpenArrayType, pos, elem)
}

// NewRecordType collects one or more field lists.
func NewRecordType(pos source.Position, fields ...Node) Node {
	return newList(RecordType, pos, fields)
}

// NewRecordExtension is a base record type being extended, plus the
// extension's own RecordType.
func NewRecordExtension(pos source.Position, baseType, extension Node) Node {
	return newBinary(RecordExtension, pos, baseType, extension)
}

// NewPointerType wraps the type a POINTER TO points at.
func NewPointerType(pos source.Position, target Node) Node {
	return newUnary(PointerType, pos, target)
}

// NewProcType is a formal parameter type list (or Empty) and a return type
// (or Empty for a proper-procedure type).
func NewProcType(pos source.Position, params, returnType Node) Node {
	return newBinary(ProcType, pos, params, returnType)
}

// NewNamedType references a previously declared type by (possibly
// qualified) identifier.
func NewNamedType(pos source.Position, name string) Node {
	return newLeaf(NamedType, pos, name)
}

// NewFormalParamList collects one or more formal parameter declarations.
func NewFormalParamList(pos source.Position, params ...Node) Node {
	return newList(FormalParamList, pos, params)
}

// NewFormalParam is a value formal parameter's name and type.
func NewFormalParam(pos source.Position, name, typ Node) Node {
	return newBinary(FormalParam, pos, name, typ)
}

// NewVarParam is a VAR formal parameter's name and type.
func NewVarParam(pos source.Position, name, typ Node) Node {
	return newBinary(VarParam, pos, name, typ)
}

// NewFieldList collects one or more record fields sharing a line.
func NewFieldList(pos source.Position, fields ...Node) Node {
	return newList(FieldList, pos, fields)
}

// NewField is a field name and its type.
func NewField(pos source.Position, name, typ Node) Node {
	return newBinary(Field, pos, name, typ)
}
