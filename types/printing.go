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

package types

import (
	"strconv"
	"strings"
)

// TypeString returns a human-readable representation of a node, used in
// diagnostics and conflict errors. Named structural types print by name;
// anonymous objects print their shape.
func TypeString(n Node) string {
	var sb strings.Builder
	typeString(&sb, n)
	return sb.String()
}

func typeString(sb *strings.Builder, n Node) {
	switch n := n.(type) {
	case nil:
		sb.WriteString("never")

	case *StringType:
		if n.Const != nil {
			sb.WriteByte('\'')
			sb.WriteString(*n.Const)
			sb.WriteByte('\'')
			return
		}
		sb.WriteString("string")

	case *NumberType:
		if n.Const != nil {
			sb.WriteString(strconv.FormatFloat(*n.Const, 'f', -1, 64))
			return
		}
		sb.WriteString("number")

	case *BooleanType:
		if n.Const != nil {
			sb.WriteString(strconv.FormatBool(*n.Const))
			return
		}
		sb.WriteString("boolean")

	case *ObjectType:
		if n.Name != "" {
			sb.WriteString(n.Name)
			return
		}
		sb.WriteString("{ ")
		for i, p := range n.Properties {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(p.Name)
			if !p.Required {
				sb.WriteByte('?')
			}
			sb.WriteString(": ")
			typeString(sb, p.Node)
		}
		sb.WriteString(" }")

	case *ArrayType:
		sb.WriteString("Array<")
		typeString(sb, n.ElementType)
		sb.WriteByte('>')

	case *TupleType:
		sb.WriteByte('[')
		for i, e := range n.Elements {
			if i > 0 {
				sb.WriteString(", ")
			}
			typeString(sb, e)
		}
		sb.WriteByte(']')

	case *RecordType:
		sb.WriteString("Record<")
		typeString(sb, n.KeyType)
		sb.WriteString(", ")
		typeString(sb, n.ValueType)
		sb.WriteByte('>')

	case *RefType:
		sb.WriteString(n.Ref)
		if len(n.GenericArgs) > 0 {
			sb.WriteByte('<')
			for i, a := range n.GenericArgs {
				if i > 0 {
					sb.WriteString(", ")
				}
				typeString(sb, a)
			}
			sb.WriteByte('>')
		}
		if n.Property != "" {
			sb.WriteString("['")
			sb.WriteString(n.Property)
			sb.WriteString("']")
		}

	case *OrType:
		joinMembers(sb, n.Members, " | ")

	case *AndType:
		joinMembers(sb, n.Members, " & ")

	case *ConditionalType:
		typeString(sb, n.Check.Left)
		sb.WriteString(" extends ")
		typeString(sb, n.Check.Right)
		sb.WriteString(" ? ")
		typeString(sb, n.Value.True)
		sb.WriteString(" : ")
		typeString(sb, n.Value.False)

	case *FunctionType:
		sb.WriteByte('(')
		for i, p := range n.Parameters {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(p.Name)
			if p.Optional {
				sb.WriteByte('?')
			}
			sb.WriteString(": ")
			typeString(sb, p.Type)
		}
		sb.WriteString(") => ")
		if n.Return == nil {
			sb.WriteString("void")
			return
		}
		typeString(sb, n.Return)

	case *TemplateType:
		sb.WriteString("`")
		sb.WriteString(n.Format)
		sb.WriteString("`")

	default:
		sb.WriteString(n.Kind().String())
	}
}

func joinMembers(sb *strings.Builder, members []Node, sep string) {
	for i, m := range members {
		if i > 0 {
			sb.WriteString(sep)
		}
		typeString(sb, m)
	}
}
