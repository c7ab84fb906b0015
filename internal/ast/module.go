package ast

import "github.com/dekarrin/m2comp/internal/source"

// NewDefinitionModule builds a DEFINITION MODULE unit: name, its import
// list (or Empty if none), and its definition list (or Empty if none).
func NewDefinitionModule(pos source.Position, name Node, imports Node, defs Node) Node {
	return newFixed(DefinitionModule, pos, name, imports, defs)
}

// NewImplementationModule builds an IMPLEMENTATION MODULE unit.
func NewImplementationModule(pos source.Position, name Node, imports Node, body Node) Node {
	return newFixed(ImplementationModule, pos, name, imports, body)
}

// NewProgramModule builds a standalone PROGRAM module unit.
func NewProgramModule(pos source.Position, name Node, imports Node, body Node) Node {
	return newFixed(ProgramModule, pos, name, imports, body)
}

// NewImportList collects one or more Import/Reexport nodes.
func NewImportList(pos source.Position, imports ...Node) Node {
	return newList(ImportList, pos, imports)
}

// NewImport names a module being imported from, along with the identifiers
// named in its qualified or unqualified FROM/IMPORT clause.
func NewImport(pos source.Position, module Node, names ...Node) Node {
	items := make([]Node, 0, len(names)+1)
	items = append(items, module)
	items = append(items, names...)
	return newList(Import, pos, items)
}

// NewReexport wraps an imported identifier that was suffixed with the `+`
// re-export marker.
func NewReexport(pos source.Position, ident Node) Node {
	return newUnary(Reexport, pos, ident)
}
