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

// FillInGenerics substitutes generic parameter symbols throughout a node
// tree. Every ref whose name matches a bound symbol is replaced by the bound
// node, recursively through all child positions. Refs that embed generics
// textually (`Foo<Bar>`) are normalized to the structured form first.
//
// A symbol appearing in the base-name position of a ref that carries its own
// generic arguments is that referenced type's own parameter slot of the same
// textual name, and is never substituted; this prevents an outer binding
// from capturing an unrelated inner parameter.
//
// Tokens consumed by the substitution are dropped from the result's
// remaining GenericTokens list, so binding a prefix of the parameters yields
// a node with a shorter parameter list.
func FillInGenerics(n types.Node, bindings map[string]types.Node) types.Node {
	if n == nil {
		return nil
	}
	if len(bindings) == 0 {
		return types.Copy(n)
	}
	walk := TransformWalker(TransformMap{
		types.KindRef: {func(n types.Node) types.Node {
			return substituteRef(n.(*types.RefType), bindings)
		}},
	})
	out := walk(n)
	dropConsumedTokens(out, bindings)
	return out
}

func substituteRef(r *types.RefType, bindings map[string]types.Node) types.Node {
	r = types.NormalizeRef(r)
	if len(r.GenericArgs) == 0 {
		if bound, ok := bindings[r.Ref]; ok {
			return bindRef(r, bound)
		}
		return r
	}
	args := make([]types.Node, len(r.GenericArgs))
	for i, a := range r.GenericArgs {
		if ar, ok := a.(*types.RefType); ok {
			args[i] = substituteRef(ar, bindings)
		} else {
			args[i] = a
		}
	}
	return &types.RefType{Meta: r.Meta, Ref: r.Ref, Property: r.Property, GenericArgs: args}
}

// bindRef replaces a symbol ref with its bound node, applying any pending
// index access when the binding makes it possible.
func bindRef(r *types.RefType, bound types.Node) types.Node {
	b := types.Copy(bound)
	if r.Property == "" {
		return b
	}
	if obj, ok := b.(*types.ObjectType); ok {
		if p, found := obj.Property(r.Property); found {
			return types.Copy(p.Node)
		}
	}
	if br, ok := b.(*types.RefType); ok {
		// Defer the access until the binding itself resolves.
		br.Property = r.Property
		return br
	}
	return b
}

func dropConsumedTokens(n types.Node, bindings map[string]types.Node) {
	base := n.Base()
	if len(base.GenericTokens) == 0 {
		return
	}
	remaining := make([]types.GenericToken, 0, len(base.GenericTokens))
	for _, tok := range base.GenericTokens {
		if _, bound := bindings[tok.Symbol]; !bound {
			remaining = append(remaining, tok)
		}
	}
	if len(remaining) == 0 {
		remaining = nil
	}
	base.GenericTokens = remaining
}

// bindTokens builds the symbol map for applying positional generic arguments
// to a declared token list. Unbound parameters fall back to their default,
// then their constraint, then any.
func bindTokens(tokens []types.GenericToken, args []types.Node) map[string]types.Node {
	if len(tokens) == 0 {
		return nil
	}
	bindings := make(map[string]types.Node, len(tokens))
	for i, tok := range tokens {
		switch {
		case i < len(args) && args[i] != nil:
			bindings[tok.Symbol] = args[i]
		case tok.Default != nil:
			bindings[tok.Symbol] = tok.Default
		case tok.Constraints != nil:
			bindings[tok.Symbol] = tok.Constraints
		default:
			bindings[tok.Symbol] = &types.AnyType{}
		}
	}
	return bindings
}
