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

// Equal reports structural equality of two node trees. Display metadata
// (name, source, title, description) is ignored; only shape, literals and
// generic declarations are compared.
func Equal(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}
	if !equalTokens(a.Base().GenericTokens, b.Base().GenericTokens) {
		return false
	}

	switch a := a.(type) {
	case *StringType:
		return equalStringConst(a.Const, b.(*StringType).Const)

	case *NumberType:
		x, y := a.Const, b.(*NumberType).Const
		if x == nil || y == nil {
			return x == nil && y == nil
		}
		return *x == *y

	case *BooleanType:
		x, y := a.Const, b.(*BooleanType).Const
		if x == nil || y == nil {
			return x == nil && y == nil
		}
		return *x == *y

	case *NullType, *UndefinedType, *AnyType, *UnknownType, *NeverType, *VoidType:
		return true

	case *ObjectType:
		bo := b.(*ObjectType)
		if len(a.Properties) != len(bo.Properties) {
			return false
		}
		for i, p := range a.Properties {
			q := bo.Properties[i]
			if p.Name != q.Name || p.Required != q.Required || !Equal(p.Node, q.Node) {
				return false
			}
		}
		if !Equal(a.AdditionalProperties, bo.AdditionalProperties) {
			return false
		}
		if a.Extends == nil || bo.Extends == nil {
			return a.Extends == nil && bo.Extends == nil
		}
		return Equal(a.Extends, bo.Extends)

	case *ArrayType:
		return Equal(a.ElementType, b.(*ArrayType).ElementType)

	case *TupleType:
		bt := b.(*TupleType)
		if a.MinItems != bt.MinItems || !equalNodes(a.Elements, bt.Elements) {
			return false
		}
		return Equal(a.AdditionalItems, bt.AdditionalItems)

	case *RecordType:
		br := b.(*RecordType)
		return Equal(a.KeyType, br.KeyType) && Equal(a.ValueType, br.ValueType)

	case *RefType:
		br := b.(*RefType)
		return a.Ref == br.Ref && a.Property == br.Property && equalNodes(a.GenericArgs, br.GenericArgs)

	case *OrType:
		return equalNodes(a.Members, b.(*OrType).Members)

	case *AndType:
		return equalNodes(a.Members, b.(*AndType).Members)

	case *ConditionalType:
		bc := b.(*ConditionalType)
		return Equal(a.Check.Left, bc.Check.Left) && Equal(a.Check.Right, bc.Check.Right) &&
			Equal(a.Value.True, bc.Value.True) && Equal(a.Value.False, bc.Value.False)

	case *FunctionType:
		bf := b.(*FunctionType)
		if len(a.Parameters) != len(bf.Parameters) {
			return false
		}
		for i, p := range a.Parameters {
			q := bf.Parameters[i]
			if p.Name != q.Name || p.Optional != q.Optional || !Equal(p.Type, q.Type) {
				return false
			}
		}
		return Equal(a.Return, bf.Return)

	case *TemplateType:
		return a.Format == b.(*TemplateType).Format
	}
	return false
}

func equalStringConst(x, y *string) bool {
	if x == nil || y == nil {
		return x == nil && y == nil
	}
	return *x == *y
}

func equalNodes(a, b []Node) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

func equalTokens(a, b []GenericToken) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Symbol != b[i].Symbol ||
			!Equal(a[i].Constraints, b[i].Constraints) ||
			!Equal(a[i].Default, b[i].Default) {
			return false
		}
	}
	return true
}
