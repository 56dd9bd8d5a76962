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

package xlr

import (
	"github.com/wdamron/xlr/types"
)

// ComputeExtends reports whether a is a structural subtype of b: a value of
// type a is always acceptable where b is expected.
//
// any and unknown are treated as equivalent top types, and null as
// equivalent to undefined. A union a extends b when every member of a
// extends some form of b; a non-union a extends a union b only when a
// extends every member of b.
func ComputeExtends(a, b types.Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ka, kb := a.Kind(), b.Kind()

	if kb == types.KindAny || kb == types.KindUnknown {
		return true
	}
	if ka == types.KindAny || ka == types.KindUnknown {
		return false
	}
	if (ka == types.KindNull || ka == types.KindUndefined) &&
		(kb == types.KindNull || kb == types.KindUndefined) {
		return true
	}

	if or, ok := a.(*types.OrType); ok {
		for _, m := range or.Members {
			if !ComputeExtends(m, b) {
				return false
			}
		}
		return true
	}
	if or, ok := b.(*types.OrType); ok {
		for _, m := range or.Members {
			if ComputeExtends(a, m) {
				return true
			}
		}
		return false
	}
	if and, ok := b.(*types.AndType); ok {
		for _, m := range and.Members {
			if !ComputeExtends(a, m) {
				return false
			}
		}
		return true
	}
	if and, ok := a.(*types.AndType); ok {
		for _, m := range and.Members {
			if ComputeExtends(m, b) {
				return true
			}
		}
		return false
	}

	if ka != kb {
		return false
	}

	switch a := a.(type) {
	case *types.StringType, *types.NumberType, *types.BooleanType:
		ac, aok := types.ConstValue(a)
		bc, bok := types.ConstValue(b)
		if bok {
			// A literal target admits only the same literal.
			return aok && ac == bc
		}
		return true

	case *types.NullType, *types.UndefinedType, *types.NeverType, *types.VoidType:
		return true

	case *types.ObjectType:
		bo := b.(*types.ObjectType)
		for _, q := range bo.Properties {
			p, ok := a.Property(q.Name)
			if !ok {
				if q.Required {
					return false
				}
				continue
			}
			if q.Required && !p.Required {
				return false
			}
			if !ComputeExtends(p.Node, q.Node) {
				return false
			}
		}
		return true

	case *types.ArrayType:
		return ComputeExtends(a.ElementType, b.(*types.ArrayType).ElementType)

	case *types.TupleType:
		bt := b.(*types.TupleType)
		if len(a.Elements) < len(bt.Elements) {
			return false
		}
		for i, e := range bt.Elements {
			if !ComputeExtends(a.Elements[i], e) {
				return false
			}
		}
		return true

	case *types.RecordType:
		br := b.(*types.RecordType)
		return ComputeExtends(a.KeyType, br.KeyType) && ComputeExtends(a.ValueType, br.ValueType)

	case *types.FunctionType:
		bf := b.(*types.FunctionType)
		if len(a.Parameters) != len(bf.Parameters) {
			return false
		}
		for i, p := range a.Parameters {
			// Parameters are contravariant.
			if !ComputeExtends(bf.Parameters[i].Type, p.Type) {
				return false
			}
		}
		if a.Return == nil || bf.Return == nil {
			return a.Return == nil && bf.Return == nil
		}
		return ComputeExtends(a.Return, bf.Return)

	case *types.RefType:
		br := b.(*types.RefType)
		ar := types.NormalizeRef(a)
		bn := types.NormalizeRef(br)
		if ar.Ref != bn.Ref || ar.Property != bn.Property || len(ar.GenericArgs) != len(bn.GenericArgs) {
			return false
		}
		for i := range ar.GenericArgs {
			if !ComputeExtends(ar.GenericArgs[i], bn.GenericArgs[i]) {
				return false
			}
		}
		return true

	default:
		return types.Equal(a, b)
	}
}

// ComputeEffectiveObject produces base extended by operand: the effective
// shape a consumer observes for an object that extends another.
//
// Base properties keep their declaration order; overlapping names stay at
// the base position but take the operand's declaration, and new operand
// properties append in operand order. An overlap is accepted only when the
// operand's declaration narrows or equals the base's; otherwise the merge
// fails with a ConflictingPropertyError when errorOnOverlap is set, and the
// operand silently wins when it is not.
func ComputeEffectiveObject(base, operand *types.ObjectType, errorOnOverlap bool) (*types.ObjectType, error) {
	out := types.Copy(base).(*types.ObjectType)
	out.Meta = operand.Meta
	out.Extends = nil

	for _, p := range operand.Properties {
		if bp, ok := base.Property(p.Name); ok {
			if errorOnOverlap && !ComputeExtends(p.Node, bp.Node) {
				return nil, &ConflictingPropertyError{
					Property:    p.Name,
					BaseType:    typeLabel(base),
					OperandType: typeLabel(operand),
				}
			}
		}
		out.SetProperty(types.Property{Name: p.Name, Required: p.Required, Node: types.Copy(p.Node)})
	}

	out.AdditionalProperties = mergeAdditionalProperties(base.AdditionalProperties, operand.AdditionalProperties)
	return out, nil
}

// Two differing additionalProperties constraints combine as an intersection;
// identical primitive constraints collapse to one.
func mergeAdditionalProperties(a, b types.Node) types.Node {
	switch {
	case a == nil:
		return types.Copy(b)
	case b == nil:
		return types.Copy(a)
	}
	if a.Kind().IsPrimitive() && b.Kind().IsPrimitive() && types.Equal(a, b) {
		return types.Copy(a)
	}
	return &types.AndType{Members: []types.Node{types.Copy(a), types.Copy(b)}}
}

func typeLabel(n types.Node) string {
	if name := n.Base().Name; name != "" {
		return name
	}
	return types.TypeString(n)
}
