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

// TransformFunc rewrites a single node, returning its replacement (which may
// be the node itself). Transforms receive nodes whose children have already
// been transformed.
type TransformFunc func(types.Node) types.Node

// TransformMap registers transforms per node kind. Transforms for a kind
// apply in registration order.
type TransformMap map[types.Kind][]TransformFunc

// TransformWalker returns a single-pass bottom-up tree rewriter over a set
// of per-kind transforms. Every child position of every kind is visited
// before the node's own transforms run, so independent concerns (extends,
// conditional, intersection and ref resolution) compose in one walk instead
// of one walk per concern.
//
// The walker never mutates its input; each visited node is rebuilt.
func TransformWalker(transforms TransformMap) func(types.Node) types.Node {
	var walk func(types.Node) types.Node
	walk = func(n types.Node) types.Node {
		if n == nil {
			return nil
		}
		n = walkChildren(n, walk)
		for _, f := range transforms[n.Kind()] {
			n = f(n)
		}
		return n
	}
	return walk
}

func walkChildren(n types.Node, walk func(types.Node) types.Node) types.Node {
	switch n := n.(type) {
	case *types.ObjectType:
		c := &types.ObjectType{Meta: n.Meta}
		if n.Properties != nil {
			c.Properties = make([]types.Property, len(n.Properties))
			for i, p := range n.Properties {
				c.Properties[i] = types.Property{Name: p.Name, Required: p.Required, Node: walk(p.Node)}
			}
		}
		c.AdditionalProperties = walk(n.AdditionalProperties)
		if n.Extends != nil {
			// Only the generic arguments of the extends clause are walked;
			// the clause itself is consumed by the extends transform.
			ext := &types.RefType{Meta: n.Extends.Meta, Ref: n.Extends.Ref, Property: n.Extends.Property}
			if n.Extends.GenericArgs != nil {
				ext.GenericArgs = walkNodes(n.Extends.GenericArgs, walk)
			}
			c.Extends = ext
		}
		return c

	case *types.ArrayType:
		return &types.ArrayType{Meta: n.Meta, ElementType: walk(n.ElementType)}

	case *types.TupleType:
		c := &types.TupleType{Meta: n.Meta, MinItems: n.MinItems}
		if n.Elements != nil {
			c.Elements = walkNodes(n.Elements, walk)
		}
		c.AdditionalItems = walk(n.AdditionalItems)
		return c

	case *types.RecordType:
		return &types.RecordType{Meta: n.Meta, KeyType: walk(n.KeyType), ValueType: walk(n.ValueType)}

	case *types.RefType:
		c := &types.RefType{Meta: n.Meta, Ref: n.Ref, Property: n.Property}
		if n.GenericArgs != nil {
			c.GenericArgs = walkNodes(n.GenericArgs, walk)
		}
		return c

	case *types.OrType:
		return &types.OrType{Meta: n.Meta, Members: walkNodes(n.Members, walk)}

	case *types.AndType:
		return &types.AndType{Meta: n.Meta, Members: walkNodes(n.Members, walk)}

	case *types.ConditionalType:
		return &types.ConditionalType{
			Meta:  n.Meta,
			Check: types.ConditionalCheck{Left: walk(n.Check.Left), Right: walk(n.Check.Right)},
			Value: types.ConditionalBranch{True: walk(n.Value.True), False: walk(n.Value.False)},
		}

	case *types.FunctionType:
		c := &types.FunctionType{Meta: n.Meta, Return: walk(n.Return)}
		if n.Parameters != nil {
			c.Parameters = make([]types.Parameter, len(n.Parameters))
			for i, p := range n.Parameters {
				c.Parameters[i] = types.Parameter{Name: p.Name, Type: walk(p.Type), Optional: p.Optional}
			}
		}
		return c

	default:
		// Primitives and templates have no child positions.
		return types.Copy(n)
	}
}

func walkNodes(ns []types.Node, walk func(types.Node) types.Node) []types.Node {
	out := make([]types.Node, len(ns))
	for i, n := range ns {
		out[i] = walk(n)
	}
	return out
}
