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

package construct

import (
	"github.com/wdamron/xlr/types"
)

// Primitives

// Primitive type: `string`
func Str() *types.StringType {
	return &types.StringType{}
}

// Literal type: `'apple'`
func StrLit(s string) *types.StringType {
	return &types.StringType{Const: &s}
}

// Primitive type: `number`
func Num() *types.NumberType {
	return &types.NumberType{}
}

// Literal type: `42`
func NumLit(f float64) *types.NumberType {
	return &types.NumberType{Const: &f}
}

// Primitive type: `boolean`
func Bool() *types.BooleanType {
	return &types.BooleanType{}
}

// Literal type: `true`
func BoolLit(b bool) *types.BooleanType {
	return &types.BooleanType{Const: &b}
}

func Null() *types.NullType { return &types.NullType{} }

func Undefined() *types.UndefinedType { return &types.UndefinedType{} }

func Any() *types.AnyType { return &types.AnyType{} }

func Unknown() *types.UnknownType { return &types.UnknownType{} }

func Never() *types.NeverType { return &types.NeverType{} }

func Void() *types.VoidType { return &types.VoidType{} }

// Template-literal type: `` `^v[0-9]+$` ``
func Template(format string) *types.TemplateType {
	return &types.TemplateType{Format: format}
}

// Composites

// Object type: `{ a: string }`
func Object(props ...types.Property) *types.ObjectType {
	return &types.ObjectType{Properties: props}
}

// Required property
func Required(name string, t types.Node) types.Property {
	return types.Property{Name: name, Required: true, Node: t}
}

// Optional property
func Optional(name string, t types.Node) types.Property {
	return types.Property{Name: name, Node: t}
}

// Array type: `Array<string>`
func ArrayOf(element types.Node) *types.ArrayType {
	return &types.ArrayType{ElementType: element}
}

// Tuple type: `[string, number]`
func Tuple(elements ...types.Node) *types.TupleType {
	return &types.TupleType{Elements: elements, MinItems: len(elements)}
}

// Record type: `Record<string, number>`
func RecordOf(key, value types.Node) *types.RecordType {
	return &types.RecordType{KeyType: key, ValueType: value}
}

// Reference: `Foo` or `Foo<Bar>`
func Ref(name string, args ...types.Node) *types.RefType {
	return &types.RefType{Ref: name, GenericArgs: args}
}

// Union type: `string | number`
func Or(members ...types.Node) *types.OrType {
	return &types.OrType{Members: members}
}

// Intersection type: `A & B`
func And(members ...types.Node) *types.AndType {
	return &types.AndType{Members: members}
}

// Conditional type: `L extends R ? T : F`
func Conditional(left, right, whenTrue, whenFalse types.Node) *types.ConditionalType {
	c := &types.ConditionalType{}
	c.Check.Left = left
	c.Check.Right = right
	c.Value.True = whenTrue
	c.Value.False = whenFalse
	return c
}

// Function type: `(a: string) => number`
func Function(ret types.Node, params ...types.Parameter) *types.FunctionType {
	return &types.FunctionType{Parameters: params, Return: ret}
}

// Function parameter
func Param(name string, t types.Node) types.Parameter {
	return types.Parameter{Name: name, Type: t}
}

// Optional function parameter
func OptionalParam(name string, t types.Node) types.Parameter {
	return types.Parameter{Name: name, Type: t, Optional: true}
}

// Named attaches a declaration name to a node and returns it.
func Named(name string, t types.Node) types.Node {
	t.Base().Name = name
	return t
}

// Generic declares a generic token on a named node and returns it.
func Generic(t types.Node, symbol string, constraints, dflt types.Node) types.Node {
	meta := t.Base()
	meta.GenericTokens = append(meta.GenericTokens, types.GenericToken{
		Symbol:      symbol,
		Constraints: constraints,
		Default:     dflt,
	})
	return t
}
