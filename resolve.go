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
	"fmt"

	"github.com/containerd/errdefs"
	"github.com/containerd/log"

	"github.com/wdamron/xlr/types"
)

// resolveContext drives one optimize pass: a transform walker wired with the
// extends, conditional, intersection and ref resolvers, a sticky first
// error, and the set of names currently being resolved (the cycle guard).
//
// Re-entering a name already in the resolving set short-circuits: the ref is
// left unresolved for the validator to follow lazily, and the short-circuit
// is reported through the log rather than silently swallowed, since it
// indicates either a legitimate recursive schema or a definitional cycle.
type resolveContext struct {
	reg       *Registry
	resolving map[string]bool
	err       error
	walk      func(types.Node) types.Node
}

func (r *Registry) newResolveContext() *resolveContext {
	rc := &resolveContext{reg: r, resolving: make(map[string]bool)}
	rc.walk = TransformWalker(TransformMap{
		types.KindObject:      {rc.resolveExtends},
		types.KindConditional: {rc.resolveConditional},
		types.KindAnd:         {rc.resolveAnd},
		types.KindRef:         {rc.resolveRef},
	})
	return rc
}

func (r *Registry) resolveNamed(name string, n types.Node) (types.Node, error) {
	rc := r.newResolveContext()
	rc.resolving[name] = true
	out := rc.walk(n)
	if rc.err != nil {
		return nil, rc.err
	}
	return out, nil
}

// ResolveRef resolves a standalone ref node through the registry, applying
// any generic arguments and index access the ref carries. The validator
// uses this to follow refs lazily; an unresolvable target is a definitional
// error.
func (r *Registry) ResolveRef(ref *types.RefType) (types.Node, error) {
	rc := r.newResolveContext()
	out := rc.derefRef(ref, true)
	if rc.err != nil {
		return nil, rc.err
	}
	return out, nil
}

// derefRef expands a ref into the referenced type's resolved body. When
// required is false an unknown target is left as-is (it may be a generic
// symbol or an externally provided type); the extends resolver and the
// validator pass required since a missing target there is definitional.
func (rc *resolveContext) derefRef(ref *types.RefType, required bool) types.Node {
	ref = types.NormalizeRef(ref)
	name := ref.Ref
	if rc.resolving[name] {
		log.L.WithField("type", name).Warn("recursive type reference left unresolved")
		return ref
	}
	e, ok := rc.reg.lookup(name)
	if !ok {
		if required {
			rc.err = typeNotFound(name)
		}
		return ref
	}
	rc.resolving[name] = true
	defer delete(rc.resolving, name)

	body := FillInGenerics(e.node, bindTokens(e.node.Base().GenericTokens, ref.GenericArgs))
	body = rc.walk(body)
	if rc.err != nil {
		return ref
	}
	if ref.Property != "" {
		body = rc.indexAccess(body, name, ref.Property)
	}
	return body
}

func (rc *resolveContext) indexAccess(n types.Node, refName, property string) types.Node {
	obj, ok := n.(*types.ObjectType)
	if !ok {
		rc.err = fmt.Errorf("index access %s[%q] into non-object type: %w",
			refName, property, errdefs.ErrInvalidArgument)
		return n
	}
	p, ok := obj.Property(property)
	if !ok {
		rc.err = fmt.Errorf("index access %s[%q]: no such property: %w",
			refName, property, errdefs.ErrInvalidArgument)
		return n
	}
	return types.Copy(p.Node)
}

// resolveRef inlines a ref to a registered name. An unknown name is left
// in place rather than failing: inside a partially applied generic body a
// remaining parameter symbol is indistinguishable from a ref, and external
// names are resolved at export time through the import map.
func (rc *resolveContext) resolveRef(n types.Node) types.Node {
	if rc.err != nil {
		return n
	}
	return rc.derefRef(n.(*types.RefType), false)
}

// resolveExtends replaces an object carrying an extends clause with the
// effective merged shape. A missing parent is a definitional error; a
// parent that cannot yet be expanded (cycle short-circuit) leaves the
// object unresolved.
func (rc *resolveContext) resolveExtends(n types.Node) types.Node {
	if rc.err != nil {
		return n
	}
	obj := n.(*types.ObjectType)
	if obj.Extends == nil {
		return n
	}
	parent := rc.derefRef(obj.Extends, true)
	if rc.err != nil {
		return n
	}
	parentObj, ok := parent.(*types.ObjectType)
	if !ok {
		return n
	}
	child := types.Copy(obj).(*types.ObjectType)
	child.Extends = nil
	merged, err := ComputeEffectiveObject(parentObj, child, true)
	if err != nil {
		rc.err = err
		return n
	}
	return merged
}

func (rc *resolveContext) resolveConditional(n types.Node) types.Node {
	if rc.err != nil {
		return n
	}
	cond := n.(*types.ConditionalType)
	if cond.Check.Left == nil || cond.Check.Right == nil {
		rc.err = fmt.Errorf("conditional type %q is missing a check operand: %w",
			typeLabel(cond), errdefs.ErrInvalidArgument)
		return n
	}
	out := ResolveConditional(cond)
	if out == n {
		// Not statically comparable yet.
		return n
	}
	// The chosen branch may have received generic fills; resolve those too.
	return rc.walk(out)
}

// resolveAnd collapses an intersection of object shapes into a single
// effective object. Intersections containing non-object members are left
// for the validator to check member-wise.
func (rc *resolveContext) resolveAnd(n types.Node) types.Node {
	if rc.err != nil {
		return n
	}
	and := n.(*types.AndType)
	if len(and.Members) == 0 {
		return n
	}
	objs := make([]*types.ObjectType, 0, len(and.Members))
	for _, m := range and.Members {
		obj, ok := m.(*types.ObjectType)
		if !ok {
			return n
		}
		objs = append(objs, obj)
	}
	out := objs[0]
	for _, next := range objs[1:] {
		merged, err := ComputeEffectiveObject(out, next, true)
		if err != nil {
			rc.err = err
			return n
		}
		out = merged
	}
	result := types.Copy(out).(*types.ObjectType)
	result.Meta = and.Meta
	return result
}
