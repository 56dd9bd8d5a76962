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
	"testing"

	. "github.com/wdamron/xlr/construct"
	"github.com/wdamron/xlr/types"
)

func TestFillInGenericsSubstitution(t *testing.T) {
	box := Object(Required("value", Ref("T")))
	out := FillInGenerics(box, map[string]types.Node{"T": Str()})

	p, _ := out.(*types.ObjectType).Property("value")
	if p.Node.Kind() != types.KindString {
		t.Fatalf("expected substituted string, got %s", p.Node.Kind())
	}
}

// The input is never mutated; substitution always works on a copy.
func TestFillInGenericsInputUntouched(t *testing.T) {
	box := Object(Required("value", Ref("T")))
	FillInGenerics(box, map[string]types.Node{"T": Str()})

	p, _ := box.Property("value")
	if p.Node.Kind() != types.KindRef {
		t.Fatal("substitution mutated its input")
	}
}

func TestGenericDefaultApplied(t *testing.T) {
	reg := New()
	reg.Add(Generic(Named("Box", Object(Required("value", Ref("T")))), "T", nil, Str()), "p", "c")

	got, err := reg.GetType("Box", nil)
	if err != nil {
		t.Fatal(err)
	}
	p, _ := got.(*types.ObjectType).Property("value")
	if p.Node.Kind() != types.KindString {
		t.Fatalf("default should fill the parameter, got %s", p.Node.Kind())
	}
	if len(got.Base().GenericTokens) != 0 {
		t.Fatal("consumed tokens should be dropped")
	}
}

func TestGenericConstraintFallback(t *testing.T) {
	reg := New()
	reg.Add(Generic(Named("Box", Object(Required("value", Ref("T")))), "T", Num(), nil), "p", "c")

	got, err := reg.GetType("Box", nil)
	if err != nil {
		t.Fatal(err)
	}
	p, _ := got.(*types.ObjectType).Property("value")
	if p.Node.Kind() != types.KindNumber {
		t.Fatalf("constraint should fill an unbound parameter, got %s", p.Node.Kind())
	}
}

func TestGenericUnboundFallsBackToAny(t *testing.T) {
	reg := New()
	reg.Add(Generic(Named("Box", Object(Required("value", Ref("T")))), "T", nil, nil), "p", "c")

	got, err := reg.GetType("Box", nil)
	if err != nil {
		t.Fatal(err)
	}
	p, _ := got.(*types.ObjectType).Property("value")
	if p.Node.Kind() != types.KindAny {
		t.Fatalf("unbound parameter should widen to any, got %s", p.Node.Kind())
	}
}

// A generic instantiated through a ref's arguments, exercised end to end.
func TestGenericArgsThroughRef(t *testing.T) {
	reg := New()
	reg.Add(Generic(Named("Box", Object(Required("value", Ref("T")))), "T", nil, nil), "p", "c")
	reg.Add(Named("Holder", Object(Required("box", Ref("Box", Num())))), "p", "c")

	got, err := reg.GetType("Holder", nil)
	if err != nil {
		t.Fatal(err)
	}
	box, _ := got.(*types.ObjectType).Property("box")
	inner, _ := box.Node.(*types.ObjectType).Property("value")
	if inner.Node.Kind() != types.KindNumber {
		t.Fatalf("argument should flow through the ref, got %s", inner.Node.Kind())
	}
}

// Textual argument syntax is equivalent to structured arguments.
func TestGenericTextualArgs(t *testing.T) {
	reg := New()
	reg.Add(Generic(Named("Box", Object(Required("value", Ref("T")))), "T", nil, nil), "p", "c")
	reg.Add(Named("Port", Num()), "p", "c")
	reg.Add(Named("Holder", Object(Required("box", Ref("Box<Port>")))), "p", "c")

	got, err := reg.GetType("Holder", nil)
	if err != nil {
		t.Fatal(err)
	}
	box, _ := got.(*types.ObjectType).Property("box")
	inner, _ := box.Node.(*types.ObjectType).Property("value")
	if inner.Node.Kind() != types.KindNumber {
		t.Fatalf("textual argument should resolve, got %s", types.TypeString(inner.Node))
	}
}

// An outer binding must substitute into a parameterized ref's arguments
// without capturing the ref's own base name.
func TestGenericNoCapture(t *testing.T) {
	body := Object(
		Required("plain", Ref("T")),
		Required("wrapped", Ref("Wrap", Ref("T"))),
	)
	out := FillInGenerics(body, map[string]types.Node{"T": Str()})
	obj := out.(*types.ObjectType)

	plain, _ := obj.Property("plain")
	if plain.Node.Kind() != types.KindString {
		t.Fatal("bare symbol should substitute")
	}
	wrapped, _ := obj.Property("wrapped")
	ref, ok := wrapped.Node.(*types.RefType)
	if !ok || ref.Ref != "Wrap" {
		t.Fatalf("parameterized ref base must not be captured, got %s", types.TypeString(wrapped.Node))
	}
	if len(ref.GenericArgs) != 1 || ref.GenericArgs[0].Kind() != types.KindString {
		t.Fatal("binding should reach the ref's arguments")
	}
}

// Binding a symbol whose ref carries an index access projects the bound
// object's property.
func TestGenericIndexAccessOnBinding(t *testing.T) {
	body := Object(Required("v", &types.RefType{Ref: "T", Property: "port"}))
	bound := Object(Required("port", Num()))
	out := FillInGenerics(body, map[string]types.Node{"T": bound})

	p, _ := out.(*types.ObjectType).Property("v")
	if p.Node.Kind() != types.KindNumber {
		t.Fatalf("index access should project the property, got %s", p.Node.Kind())
	}
}

func TestBindTokensPrecedence(t *testing.T) {
	tokens := []types.GenericToken{
		{Symbol: "A"},
		{Symbol: "B", Default: Str()},
		{Symbol: "C", Constraints: Num()},
	}
	bindings := bindTokens(tokens, []types.Node{Bool()})

	if bindings["A"].Kind() != types.KindBoolean {
		t.Fatal("positional argument should win")
	}
	if bindings["B"].Kind() != types.KindString {
		t.Fatal("default should fill an unset parameter")
	}
	if bindings["C"].Kind() != types.KindNumber {
		t.Fatal("constraint should fill when no default exists")
	}
}
