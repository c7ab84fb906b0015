package ast

import (
	"fmt"
	"strings"

	"github.com/dekarrin/m2comp/internal/source"
	"github.com/dekarrin/rosed"
)

// Node is the common interface every variant in this package implements.
// Callers that need a specific shape use the As* accessors below, which
// panic on a tag/shape mismatch rather than returning an ok bool — the same
// contract tunascript/syntax.ASTNode's accessors use, since a mismatch here
// is always a parser bug, not user input to recover from.
type Node interface {
	Tag() Tag
	Pos() source.Position
	String() string
	Equal(other Node) bool

	AsLeaf() *LeafNode
	AsUnary() *UnaryNode
	AsBinary() *BinaryNode
	AsList() *ListNode
	AsFixed() *FixedNode
}

// base carries the fields every variant needs regardless of shape.
type base struct {
	tag Tag
	pos source.Position
}

func (b base) Tag() Tag             { return b.tag }
func (b base) Pos() source.Position { return b.pos }

func (b base) AsLeaf() *LeafNode     { panic(fmt.Sprintf("ast: %s is not a leaf node", b.tag)) }
func (b base) AsUnary() *UnaryNode   { panic(fmt.Sprintf("ast: %s is not a unary node", b.tag)) }
func (b base) AsBinary() *BinaryNode { panic(fmt.Sprintf("ast: %s is not a binary node", b.tag)) }
func (b base) AsList() *ListNode     { panic(fmt.Sprintf("ast: %s is not a list node", b.tag)) }
func (b base) AsFixed() *FixedNode   { panic(fmt.Sprintf("ast: %s is not a fixed-arity node", b.tag)) }

// LeafNode is a childless node: identifiers and literals. Value holds the
// already-parsed scalar (string, int64, float64, rune, or nil for NIL/Empty).
type LeafNode struct {
	base
	Value interface{}
}

func newLeaf(tag Tag, pos source.Position, value interface{}) *LeafNode {
	return &LeafNode{base: base{tag: tag, pos: pos}, Value: value}
}

func (n *LeafNode) AsLeaf() *LeafNode { return n }

func (n *LeafNode) String() string {
	if n.Value == nil {
		return n.tag.String()
	}
	return fmt.Sprintf("%s(%v)", n.tag, n.Value)
}

func (n *LeafNode) Equal(other Node) bool {
	o, ok := other.(*LeafNode)
	if !ok || o.tag != n.tag {
		return false
	}
	return o.Value == n.Value
}

// UnaryNode carries exactly one child: NOT, unary minus, Return, New,
// Retain, Release, Loop, Deref, SetType, PointerType, and similar.
type UnaryNode struct {
	base
	Child Node
}

func newUnary(tag Tag, pos source.Position, child Node) *UnaryNode {
	if child == nil {
		panic(fmt.Sprintf("ast: %s requires a non-nil child", tag))
	}
	return &UnaryNode{base: base{tag: tag, pos: pos}, Child: child}
}

func (n *UnaryNode) AsUnary() *UnaryNode { return n }

func (n *UnaryNode) String() string {
	return fmt.Sprintf("%s(%s)", n.tag, n.Child.String())
}

func (n *UnaryNode) Equal(other Node) bool {
	o, ok := other.(*UnaryNode)
	if !ok || o.tag != n.tag {
		return false
	}
	return o.Child.Equal(n.Child)
}

// BinaryNode carries exactly two children, in Left/Right order: every binary
// operator, Assign, Copy, Call, Qualident, FieldAccess, Subscript, TypeConv,
// and other fixed-arity-2 tags.
type BinaryNode struct {
	base
	Left, Right Node
}

func newBinary(tag Tag, pos source.Position, left, right Node) *BinaryNode {
	if left == nil || right == nil {
		panic(fmt.Sprintf("ast: %s requires two non-nil children", tag))
	}
	return &BinaryNode{base: base{tag: tag, pos: pos}, Left: left, Right: right}
}

func (n *BinaryNode) AsBinary() *BinaryNode { return n }

func (n *BinaryNode) String() string {
	return fmt.Sprintf("%s(%s, %s)", n.tag, n.Left.String(), n.Right.String())
}

func (n *BinaryNode) Equal(other Node) bool {
	o, ok := other.(*BinaryNode)
	if !ok || o.tag != n.tag {
		return false
	}
	return o.Left.Equal(n.Left) && o.Right.Equal(n.Right)
}

// ListNode carries one or more children of uniform role: ImportList,
// DefList, StmtList, ArgList, FormalParamList, FieldList, EnumType,
// CaseLabelList, SetElementList, and similar. Per DESIGN.md's resolution
// of the spec's "list arity >= 1" constraint, a list that would have zero
// elements is omitted from its parent entirely rather than represented here
// empty.
type ListNode struct {
	base
	Items []Node
}

func newList(tag Tag, pos source.Position, items []Node) *ListNode {
	if len(items) == 0 {
		panic(fmt.Sprintf("ast: %s list must have at least one item", tag))
	}
	return &ListNode{base: base{tag: tag, pos: pos}, Items: items}
}

func (n *ListNode) AsList() *ListNode { return n }

func (n *ListNode) String() string {
	parts := make([]string, len(n.Items))
	for i, it := range n.Items {
		parts[i] = it.String()
	}
	return fmt.Sprintf("%s[%s]", n.tag, strings.Join(parts, ", "))
}

func (n *ListNode) Equal(other Node) bool {
	o, ok := other.(*ListNode)
	if !ok || o.tag != n.tag || len(o.Items) != len(n.Items) {
		return false
	}
	for i := range n.Items {
		if !o.Items[i].Equal(n.Items[i]) {
			return false
		}
	}
	return true
}

// FixedNode carries a fixed, tag-specific arity greater than two: module
// units (name, imports, defs), If (cond, thenBranch, tail: Empty, an ELSE
// StmtList, or a nested If), For (control var, middle, body), ForRange
// (low, high, step-or-Empty), ProcedureHeading, and similar. Optional slots that have no content hold an Empty leaf so the
// slice length always equals the tag's declared arity.
type FixedNode struct {
	base
	Kids []Node
}

func newFixed(tag Tag, pos source.Position, kids ...Node) *FixedNode {
	want, ok := arityTable[tag]
	if !ok || want < 1 {
		panic(fmt.Sprintf("ast: %s is not a fixed-arity(>=1) tag", tag))
	}
	if len(kids) != int(want) {
		panic(fmt.Sprintf("ast: %s requires %d children, got %d", tag, want, len(kids)))
	}
	for i, k := range kids {
		if k == nil {
			panic(fmt.Sprintf("ast: %s child %d must not be nil (use Empty)", tag, i))
		}
	}
	return &FixedNode{base: base{tag: tag, pos: pos}, Kids: kids}
}

func (n *FixedNode) AsFixed() *FixedNode { return n }

func (n *FixedNode) String() string {
	parts := make([]string, len(n.Kids))
	for i, k := range n.Kids {
		parts[i] = k.String()
	}
	body := strings.Join(parts, ", ")
	return rosed.Edit(fmt.Sprintf("%s(%s)", n.tag, body)).Wrap(100).String()
}

func (n *FixedNode) Equal(other Node) bool {
	o, ok := other.(*FixedNode)
	if !ok || o.tag != n.tag || len(o.Kids) != len(n.Kids) {
		return false
	}
	for i := range n.Kids {
		if !o.Kids[i].Equal(n.Kids[i]) {
			return false
		}
	}
	return true
}

// NewEmpty builds the canonical filler node used for an optional slot in an
// otherwise fixed-arity node (e.g. RETURN with no expression, the tail of an
// IF with no ELSIF or ELSE, or a FOR range with no BY step).
func NewEmpty(pos source.Position) Node {
	return newLeaf(Empty, pos, nil)
}
