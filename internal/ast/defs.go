package ast

import "github.com/dekarrin/m2comp/internal/source"

// NewDefList collects one or more top-level definitions.
func NewDefList(pos source.Position, defs ...Node) Node {
	return newList(DefList, pos, defs)
}

// NewConstDef binds a CONST identifier to its defining expression.
func NewConstDef(pos source.Position, name Node, value Node) Node {
	return newBinary(ConstDef, pos, name, value)
}

// NewTypeDef binds a TYPE identifier to its denoter.
func NewTypeDef(pos source.Position, name Node, denoter Node) Node {
	return newBinary(TypeDef, pos, name, denoter)
}

// NewOpaqueTypeDef declares a TYPE identifier with no visible denoter
// (definition-module opaque type).
func NewOpaqueTypeDef(pos source.Position, name Node) Node {
	return newUnary(OpaqueTypeDef, pos, name)
}

// NewProcedureHeading is name, formal parameter list (or Empty), and return
// type (or Empty for a proper procedure).
func NewProcedureHeading(pos source.Position, name Node, params Node, returnType Node) Node {
	return newFixed(ProcedureHeading, pos, name, params, returnType)
}

// NewProcedureDef pairs a heading with its body (Empty for a bare heading,
// as in a definition module).
func NewProcedureDef(pos source.Position, heading Node, body Node) Node {
	return newBinary(ProcedureDef, pos, heading, body)
}

// NewUnqualifiedAlias marks an identifier imported or re-exported without
// qualification.
func NewUnqualifiedAlias(pos source.Position, name Node) Node {
	return newUnary(UnqualifiedAlias, pos, name)
}

// NewTodo captures a TODO placeholder definition, carrying its free-text
// annotation as a single child.
func NewTodo(pos source.Position, note Node) Node {
	return newUnary(Todo, pos, note)
}
