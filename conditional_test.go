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

func TestResolveConditionalBranches(t *testing.T) {
	cases := []struct {
		name string
		cond *types.ConditionalType
		want types.Kind
	}{
		{"equal literals take true", Conditional(StrLit("a"), StrLit("a"), Num(), Bool()), types.KindNumber},
		{"unequal literals take false", Conditional(StrLit("a"), StrLit("b"), Num(), Bool()), types.KindBoolean},
		{"matching kinds take true", Conditional(Str(), Str(), Num(), Bool()), types.KindNumber},
		{"mismatched kinds take false", Conditional(Str(), Num(), Num(), Bool()), types.KindBoolean},
		{"null matches undefined", Conditional(Null(), Undefined(), Num(), Bool()), types.KindNumber},
		{"any matches unknown", Conditional(Any(), Unknown(), Num(), Bool()), types.KindNumber},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out := ResolveConditional(tc.cond)
			if out.Kind() != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, out.Kind())
			}
		})
	}
}

// The same conditional always selects the same branch.
func TestResolveConditionalDeterministic(t *testing.T) {
	cond := Conditional(StrLit("x"), StrLit("x"), Num(), Bool())
	first := ResolveConditional(cond)
	for i := 0; i < 10; i++ {
		if out := ResolveConditional(cond); out.Kind() != first.Kind() {
			t.Fatal("conditional selection is not deterministic")
		}
	}
}

// Operands that are not statically comparable leave the conditional intact.
func TestResolveConditionalUndecidable(t *testing.T) {
	cond := Conditional(Ref("T"), Str(), Num(), Bool())
	out := ResolveConditional(cond)
	if out != types.Node(cond) {
		t.Fatal("undecidable conditional should be returned unchanged")
	}

	cond = Conditional(Object(), Str(), Num(), Bool())
	if out := ResolveConditional(cond); out != types.Node(cond) {
		t.Fatal("structural operands are not comparable")
	}
}

// The selected branch is a copy; mutating it never reaches the conditional.
func TestResolveConditionalCopies(t *testing.T) {
	branch := Object(Required("v", Str()))
	cond := Conditional(StrLit("a"), StrLit("a"), branch, Bool())

	out := ResolveConditional(cond).(*types.ObjectType)
	out.Properties[0].Name = "mutated"

	if branch.Properties[0].Name != "v" {
		t.Fatal("branch selection should copy")
	}
}

// A conditional declaring its own generic tokens fills the chosen branch
// with the tokens' defaults.
func TestResolveConditionalFillsTokens(t *testing.T) {
	cond := Conditional(StrLit("a"), StrLit("a"), Object(Required("v", Ref("T"))), Bool())
	Generic(cond, "T", nil, Num())

	out := ResolveConditional(cond).(*types.ObjectType)
	p, _ := out.Property("v")
	if p.Node.Kind() != types.KindNumber {
		t.Fatalf("branch should receive token defaults, got %s", p.Node.Kind())
	}
}
