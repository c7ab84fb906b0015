// Package ast models the parsed representation of a Modula-2 bootstrap-subset
// compilation unit: a closed set of node tags, each built by its own
// constructor onto one of five shared shape structs (LeafNode, UnaryNode,
// BinaryNode, ListNode, FixedNode), following the Node interface contract
// tunascript/syntax.ASTNode uses for its expression tree.
package ast

// Tag discriminates every node variant this package defines. Each tag's
// constructor enforces its shape: leaf, unary and binary constructors by
// their fixed parameter lists, list constructors by rejecting zero items,
// and FixedNode constructors by checking the arity table below.
type Tag int

const (
	// Compilation units.
	DefinitionModule Tag = iota
	ImplementationModule
	ProgramModule

	// Imports.
	ImportList
	Import
	Reexport

	// Definitions.
	DefList
	ConstDef
	TypeDef
	OpaqueTypeDef
	ProcedureHeading
	ProcedureDef
	UnqualifiedAlias
	Todo

	// Type denoters.
	SubrangeType
	EnumType
	SetType
	ArrayType
	OpenArrayType
	RecordType
	RecordExtension
	PointerType
	ProcType
	NamedType

	// Formal parameters.
	FormalParamList
	FormalParam
	VarParam

	// Field lists (records).
	FieldList
	Field

	// Statements.
	StmtList
	Assign
	Copy
	Call
	ArgList
	Return
	New
	Retain
	Release
	If
	Elsif
	Case
	CaseLabel
	CaseLabelList
	Loop
	While
	Repeat
	For
	ForRange
	Exit
	Read
	Write
	Nop
	Empty

	// Expressions — relational.
	Eq
	Neq
	Lt
	Le
	Gt
	Ge
	SameTypeOp
	InOp

	// Expressions — additive.
	PlusOp
	MinusOp
	OrOp

	// Expressions — multiplicative, then AmpOp and BackslashOp, which the
	// parser builds at additive precedence.
	AsteriskOp
	SlashOp
	DivOp
	ModOp
	AndOp
	AmpOp
	BackslashOp

	// Expressions — unary.
	Negate
	NotOp

	// Expressions — literals and designators.
	IntLiteral
	RealLiteral
	CharLiteral
	StringLiteral
	NilLiteral
	SetLiteral
	SetElementList
	SetRange
	Ident
	Qualident
	Subscript
	Deref
	FieldAccess
	TypeConv

	maxTag
)

var tagNames = map[Tag]string{
	DefinitionModule: "DefinitionModule", ImplementationModule: "ImplementationModule",
	ProgramModule: "ProgramModule", ImportList: "ImportList", Import: "Import",
	Reexport: "Reexport", DefList: "DefList", ConstDef: "ConstDef",
	TypeDef: "TypeDef", OpaqueTypeDef: "OpaqueTypeDef",
	ProcedureHeading: "ProcedureHeading", ProcedureDef: "ProcedureDef",
	UnqualifiedAlias: "UnqualifiedAlias", Todo: "Todo",
	SubrangeType: "SubrangeType", EnumType: "EnumType", SetType: "SetType",
	ArrayType: "ArrayType", OpenArrayType: "OpenArrayType",
	RecordType: "RecordType", RecordExtension: "RecordExtension",
	PointerType: "PointerType", ProcType: "ProcType", NamedType: "NamedType",
	FormalParamList: "FormalParamList", FormalParam: "FormalParam",
	VarParam: "VarParam", FieldList: "FieldList", Field: "Field",
	StmtList: "StmtList", Assign: "Assign", Copy: "Copy", Call: "Call",
	ArgList: "ArgList", Return: "Return", New: "New", Retain: "Retain",
	Release: "Release", If: "If", Elsif: "Elsif", Case: "Case",
	CaseLabel: "CaseLabel", CaseLabelList: "CaseLabelList", Loop: "Loop",
	While: "While", Repeat: "Repeat", For: "For", ForRange: "ForRange",
	Exit: "Exit", Read: "Read", Write: "Write", Nop: "Nop", Empty: "Empty",
	Eq: "Eq", Neq: "Neq", Lt: "Lt", Le: "Le", Gt: "Gt", Ge: "Ge",
	SameTypeOp: "SameTypeOp", InOp: "InOp", PlusOp: "PlusOp",
	MinusOp: "MinusOp", OrOp: "OrOp", AsteriskOp: "AsteriskOp",
	SlashOp: "SlashOp", DivOp: "DivOp", ModOp: "ModOp", AndOp: "AndOp",
	AmpOp: "AmpOp", BackslashOp: "BackslashOp", Negate: "Negate",
	NotOp: "NotOp", IntLiteral: "IntLiteral", RealLiteral: "RealLiteral",
	CharLiteral: "CharLiteral", StringLiteral: "StringLiteral",
	NilLiteral: "NilLiteral", SetLiteral: "SetLiteral",
	SetElementList: "SetElementList", SetRange: "SetRange", Ident: "Ident",
	Qualident: "Qualident", Subscript: "Subscript", Deref: "Deref",
	FieldAccess: "FieldAccess", TypeConv: "TypeConv",
}

func (t Tag) String() string {
	if n, ok := tagNames[t]; ok {
		return n
	}
	return "?"
}

// Shape classifies how many children a tag's variant carries. ShapeList
// means "one or more, and the node is simply omitted from its parent when
// the count would be zero" (DESIGN.md's resolution for ARGLIST/FPARAMS-style
// optional lists); ShapeLeaf means a childless node carrying at most a
// scalar Value; a positive integer is a fixed arity, with optional slots
// filled by an Empty node so the count never varies.
type Shape int

const (
	ShapeList Shape = -1
	ShapeLeaf Shape = 0
)

// arityTable records each tag's fixed arity (or ShapeList for variable-
// length, ShapeLeaf for childless). newFixed consults it at construction
// time to check a FixedNode's child count; the other shapes are enforced by
// their constructors' parameter lists, and tests check the table covers
// every tag.
var arityTable = map[Tag]Shape{
	DefinitionModule: 3, ImplementationModule: 3, ProgramModule: 3,
	ImportList: ShapeList, Import: ShapeList, Reexport: 1,
	DefList: ShapeList, ConstDef: 2, TypeDef: 2, OpaqueTypeDef: 1,
	ProcedureHeading: 3, ProcedureDef: 2, UnqualifiedAlias: 1, Todo: 1,
	SubrangeType: 2, EnumType: ShapeList, SetType: 1, ArrayType: 2,
	OpenArrayType: 1, RecordType: ShapeList, RecordExtension: 2,
	PointerType: 1, ProcType: 2, NamedType: ShapeLeaf,
	FormalParamList: ShapeList, FormalParam: 2, VarParam: 2,
	FieldList: ShapeList, Field: 2,
	StmtList: ShapeList, Assign: 2, Copy: 2, Call: 2, ArgList: ShapeList,
	Return: 1, New: 1, Retain: 1, Release: 1, If: 3, Elsif: 3, Case: 3,
	CaseLabel: 2, CaseLabelList: ShapeList, Loop: 1, While: 2, Repeat: 2,
	For: 3, ForRange: 3, Exit: ShapeLeaf, Read: 1, Write: 1, Nop: ShapeLeaf,
	Empty: ShapeLeaf,
	Eq: 2, Neq: 2, Lt: 2, Le: 2, Gt: 2, Ge: 2, SameTypeOp: 2, InOp: 2,
	PlusOp: 2, MinusOp: 2, OrOp: 2, AsteriskOp: 2, SlashOp: 2, DivOp: 2,
	ModOp: 2, AndOp: 2, AmpOp: 2, BackslashOp: 2, Negate: 1, NotOp: 1,
	IntLiteral: ShapeLeaf, RealLiteral: ShapeLeaf, CharLiteral: ShapeLeaf,
	StringLiteral: ShapeLeaf, NilLiteral: ShapeLeaf,
	SetLiteral: 1, SetElementList: ShapeList, SetRange: 2,
	Ident: ShapeLeaf, Qualident: 2, Subscript: 2, Deref: 1,
	FieldAccess: 2, TypeConv: 2,
}
