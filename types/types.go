// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package types defines the cross-representation type vocabulary: a closed
// set of node kinds describing type shapes independently of any host
// language's compiler, along with deep copy, structural equality and
// printing over node trees.
package types

// Node is the base interface for all type nodes.
//
// The set of implementations is closed: one pointer type per Kind, each
// embedding Meta. Dispatch is by type switch over the concrete kinds.
type Node interface {
	Kind() Kind
	Base() *Meta
}

func (t *StringType) Kind() Kind      { return KindString }
func (t *NumberType) Kind() Kind      { return KindNumber }
func (t *BooleanType) Kind() Kind     { return KindBoolean }
func (t *NullType) Kind() Kind        { return KindNull }
func (t *UndefinedType) Kind() Kind   { return KindUndefined }
func (t *AnyType) Kind() Kind         { return KindAny }
func (t *UnknownType) Kind() Kind     { return KindUnknown }
func (t *NeverType) Kind() Kind       { return KindNever }
func (t *VoidType) Kind() Kind        { return KindVoid }
func (t *ObjectType) Kind() Kind      { return KindObject }
func (t *ArrayType) Kind() Kind       { return KindArray }
func (t *TupleType) Kind() Kind       { return KindTuple }
func (t *RecordType) Kind() Kind      { return KindRecord }
func (t *RefType) Kind() Kind         { return KindRef }
func (t *OrType) Kind() Kind          { return KindOr }
func (t *AndType) Kind() Kind         { return KindAnd }
func (t *ConditionalType) Kind() Kind { return KindConditional }
func (t *FunctionType) Kind() Kind    { return KindFunction }
func (t *TemplateType) Kind() Kind    { return KindTemplate }

// Meta carries naming, provenance and display metadata shared by every node
// kind. Title and Description are inert for resolution and validation; they
// exist for downstream documentation generation. Name and Source turn a node
// into a named type (the Registry's unit of storage).
type Meta struct {
	// Name is the unique registration key when the node is a named type.
	Name string
	// Source is an opaque provenance string (e.g. the declaring module).
	Source      string
	Title       string
	Description string
	// GenericTokens is the ordered list of generic parameters declared by
	// the node, when it is generic.
	GenericTokens []GenericToken
}

// Base returns the shared metadata of a node.
func (m *Meta) Base() *Meta { return m }

// GenericToken declares a single generic parameter.
type GenericToken struct {
	Symbol      string
	Constraints Node
	Default     Node
}

// String type, optionally a literal (`"foo"`) when Const is set.
type StringType struct {
	Meta
	Const *string
}

// Number type, optionally a literal when Const is set.
type NumberType struct {
	Meta
	Const *float64
}

// Boolean type, optionally a literal when Const is set.
type BooleanType struct {
	Meta
	Const *bool
}

type NullType struct{ Meta }
type UndefinedType struct{ Meta }
type AnyType struct{ Meta }
type UnknownType struct{ Meta }
type NeverType struct{ Meta }
type VoidType struct{ Meta }

// Property is a single named object property.
type Property struct {
	Name     string
	Required bool
	Node     Node
}

// Object type: `{ a: string, b?: number }`.
//
// Properties preserve insertion order from the original declaration; merges
// keep that order (consumers diff and print types).
type ObjectType struct {
	Meta
	Properties []Property
	// AdditionalProperties types undeclared keys. nil forbids them.
	AdditionalProperties Node
	// Extends references a parent type whose effective shape this object
	// inherits; resolution expands it via the structural merger.
	Extends *RefType
}

// Property returns the declared property with the given name.
func (t *ObjectType) Property(name string) (Property, bool) {
	for _, p := range t.Properties {
		if p.Name == name {
			return p, true
		}
	}
	return Property{}, false
}

// SetProperty replaces the property with the same name, or appends one.
func (t *ObjectType) SetProperty(p Property) {
	for i := range t.Properties {
		if t.Properties[i].Name == p.Name {
			t.Properties[i] = p
			return
		}
	}
	t.Properties = append(t.Properties, p)
}

// Array type: `string[]`.
type ArrayType struct {
	Meta
	ElementType Node
}

// Tuple type: `[string, number]`.
type TupleType struct {
	Meta
	Elements []Node
	// AdditionalItems types rest elements past the declared slots. nil
	// forbids them.
	AdditionalItems Node
	MinItems        int
}

// Record type: `Record<string, number>`.
type RecordType struct {
	Meta
	KeyType   Node
	ValueType Node
}

// Ref is a by-name reference to another type: `Foo`, `Foo<Bar>`, `T['field']`.
type RefType struct {
	Meta
	// Ref may embed generic arguments textually (`Foo<Bar>`); ParseRefName
	// splits such names. The structured GenericArgs form is equivalent.
	Ref         string
	GenericArgs []Node
	// Property requests an index-access into the referenced type once
	// resolved.
	Property string
}

// Union type: `A | B`. Member order matters only for diagnostics.
type OrType struct {
	Meta
	Members []Node
}

// Intersection type: `A & B`.
type AndType struct {
	Meta
	Members []Node
}

type ConditionalCheck struct {
	Left  Node
	Right Node
}

type ConditionalBranch struct {
	True  Node
	False Node
}

/// Conditional type: `Left extends Right ? True : False`.
type ConditionalType struct {
	Meta
	Check ConditionalCheck
	Value ConditionalBranch
}

// Parameter is a single function parameter.
type Parameter struct {
	Name     string
	Type     Node
	Optional bool
}

// Function type: `(a: string) => number`.
type FunctionType struct {
	Meta
	Parameters []Parameter
	Return     Node
}

// Template literal type, matching strings against Format (a regular
// expression).
type TemplateType struct {
	Meta
	Format string
}

// ConstValue returns the literal value carried by a primitive node, if any.
func ConstValue(n Node) (interface{}, bool) {
	switch n := n.(type) {
	case *StringType:
		if n.Const != nil {
			return *n.Const, true
		}
	case *NumberType:
		if n.Const != nil {
			return *n.Const, true
		}
	case *BooleanType:
		if n.Const != nil {
			return *n.Const, true
		}
	}
	return nil, false
}
