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

// Copy returns a deep copy of a node tree. Mutating the copy never affects
// the original; the resolved-type cache depends on this.
func Copy(n Node) Node {
	switch n := n.(type) {
	case nil:
		return nil

	case *StringType:
		c := &StringType{Meta: copyMeta(n.Meta)}
		if n.Const != nil {
			v := *n.Const
			c.Const = &v
		}
		return c

	case *NumberType:
		c := &NumberType{Meta: copyMeta(n.Meta)}
		if n.Const != nil {
			v := *n.Const
			c.Const = &v
		}
		return c

	case *BooleanType:
		c := &BooleanType{Meta: copyMeta(n.Meta)}
		if n.Const != nil {
			v := *n.Const
			c.Const = &v
		}
		return c

	case *NullType:
		return &NullType{Meta: copyMeta(n.Meta)}
	case *UndefinedType:
		return &UndefinedType{Meta: copyMeta(n.Meta)}
	case *AnyType:
		return &AnyType{Meta: copyMeta(n.Meta)}
	case *UnknownType:
		return &UnknownType{Meta: copyMeta(n.Meta)}
	case *NeverType:
		return &NeverType{Meta: copyMeta(n.Meta)}
	case *VoidType:
		return &VoidType{Meta: copyMeta(n.Meta)}

	case *ObjectType:
		c := &ObjectType{Meta: copyMeta(n.Meta)}
		if n.Properties != nil {
			c.Properties = make([]Property, len(n.Properties))
			for i, p := range n.Properties {
				c.Properties[i] = Property{Name: p.Name, Required: p.Required, Node: Copy(p.Node)}
			}
		}
		c.AdditionalProperties = Copy(n.AdditionalProperties)
		if n.Extends != nil {
			c.Extends = Copy(n.Extends).(*RefType)
		}
		return c

	case *ArrayType:
		return &ArrayType{Meta: copyMeta(n.Meta), ElementType: Copy(n.ElementType)}

	case *TupleType:
		c := &TupleType{Meta: copyMeta(n.Meta), MinItems: n.MinItems}
		if n.Elements != nil {
			c.Elements = copyNodes(n.Elements)
		}
		c.AdditionalItems = Copy(n.AdditionalItems)
		return c

	case *RecordType:
		return &RecordType{Meta: copyMeta(n.Meta), KeyType: Copy(n.KeyType), ValueType: Copy(n.ValueType)}

	case *RefType:
		c := &RefType{Meta: copyMeta(n.Meta), Ref: n.Ref, Property: n.Property}
		if n.GenericArgs != nil {
			c.GenericArgs = copyNodes(n.GenericArgs)
		}
		return c

	case *OrType:
		return &OrType{Meta: copyMeta(n.Meta), Members: copyNodes(n.Members)}

	case *AndType:
		return &AndType{Meta: copyMeta(n.Meta), Members: copyNodes(n.Members)}

	case *ConditionalType:
		return &ConditionalType{
			Meta:  copyMeta(n.Meta),
			Check: ConditionalCheck{Left: Copy(n.Check.Left), Right: Copy(n.Check.Right)},
			Value: ConditionalBranch{True: Copy(n.Value.True), False: Copy(n.Value.False)},
		}

	case *FunctionType:
		c := &FunctionType{Meta: copyMeta(n.Meta), Return: Copy(n.Return)}
		if n.Parameters != nil {
			c.Parameters = make([]Parameter, len(n.Parameters))
			for i, p := range n.Parameters {
				c.Parameters[i] = Parameter{Name: p.Name, Type: Copy(p.Type), Optional: p.Optional}
			}
		}
		return c

	case *TemplateType:
		return &TemplateType{Meta: copyMeta(n.Meta), Format: n.Format}
	}
	panic("unknown node kind: " + n.Kind().String())
}

func copyNodes(ns []Node) []Node {
	out := make([]Node, len(ns))
	for i, n := range ns {
		out[i] = Copy(n)
	}
	return out
}

func copyMeta(m Meta) Meta {
	c := m
	if m.GenericTokens != nil {
		c.GenericTokens = make([]GenericToken, len(m.GenericTokens))
		for i, tok := range m.GenericTokens {
			c.GenericTokens[i] = GenericToken{
				Symbol:      tok.Symbol,
				Constraints: Copy(tok.Constraints),
				Default:     Copy(tok.Default),
			}
		}
	}
	return c
}
