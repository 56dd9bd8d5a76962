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
	"errors"
	"testing"

	"github.com/containerd/errdefs"

	. "github.com/wdamron/xlr/construct"
	"github.com/wdamron/xlr/data"
	"github.com/wdamron/xlr/types"
)

func mustParse(t *testing.T, src string) data.Value {
	t.Helper()
	v, err := data.Parse([]byte(src))
	if err != nil {
		t.Fatal(err)
	}
	return v
}

func validateOne(t *testing.T, n types.Node, src string) []ValidationMessage {
	t.Helper()
	v := NewValidator(New())
	msgs, err := v.ValidateType(n, mustParse(t, src))
	if err != nil {
		t.Fatal(err)
	}
	return msgs
}

func TestValidatePrimitives(t *testing.T) {
	cases := []struct {
		name string
		n    types.Node
		src  string
		ok   bool
	}{
		{"string ok", Str(), `"hi"`, true},
		{"string wrong kind", Str(), `5`, false},
		{"string literal ok", StrLit("apple"), `"apple"`, true},
		{"string literal mismatch", StrLit("apple"), `"orange"`, false},
		{"number ok", Num(), `3.5`, true},
		{"number literal mismatch", NumLit(1), `2`, false},
		{"boolean ok", Bool(), `true`, true},
		{"boolean literal mismatch", BoolLit(true), `false`, false},
		{"null ok", Null(), `null`, true},
		{"undefined accepts null", Undefined(), `null`, true},
		{"void accepts null", Void(), `null`, true},
		{"null wrong kind", Null(), `0`, false},
		{"any accepts everything", Any(), `{"a": 1}`, true},
		{"unknown accepts everything", Unknown(), `[1, 2]`, true},
		{"never rejects everything", Never(), `null`, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			msgs := validateOne(t, tc.n, tc.src)
			if tc.ok && len(msgs) != 0 {
				t.Fatalf("expected no messages, got %v", msgs)
			}
			if !tc.ok && len(msgs) == 0 {
				t.Fatal("expected a validation message")
			}
		})
	}
}

func TestValidateKindMismatchMessage(t *testing.T) {
	msgs := validateOne(t, Str(), `5`)
	if len(msgs) != 1 {
		t.Fatalf("expected one message, got %d", len(msgs))
	}
	if msgs[0].Message != `Expected type "string" but found "number"` {
		t.Fatalf("unexpected message: %q", msgs[0].Message)
	}
	if msgs[0].Severity != SeverityError {
		t.Fatal("kind mismatch should be an error")
	}
}

func TestValidateTemplate(t *testing.T) {
	if msgs := validateOne(t, Template(`^v[0-9]+$`), `"v12"`); len(msgs) != 0 {
		t.Fatalf("expected match, got %v", msgs)
	}
	if msgs := validateOne(t, Template(`^v[0-9]+$`), `"release-12"`); len(msgs) != 1 {
		t.Fatalf("expected one mismatch, got %v", msgs)
	}
}

func TestValidateObject(t *testing.T) {
	shape := Object(
		Required("name", Str()),
		Optional("age", Num()),
	)

	if msgs := validateOne(t, shape, `{"name": "ada", "age": 36}`); len(msgs) != 0 {
		t.Fatalf("expected valid, got %v", msgs)
	}
	if msgs := validateOne(t, shape, `{"name": "ada"}`); len(msgs) != 0 {
		t.Fatalf("optional properties may be absent, got %v", msgs)
	}

	msgs := validateOne(t, shape, `{"age": 36}`)
	if len(msgs) != 1 || msgs[0].Message != `Missing required property "name"` {
		t.Fatalf("unexpected messages: %v", msgs)
	}
	if msgs[0].Expected != "string" {
		t.Fatalf("expected type summary, got %q", msgs[0].Expected)
	}
}

func TestValidateAdditionalProperties(t *testing.T) {
	closed := Object(Required("a", Str()))
	msgs := validateOne(t, closed, `{"a": "x", "b": 1}`)
	if len(msgs) != 1 || msgs[0].Message != `Unexpected property "b"` {
		t.Fatalf("unexpected messages: %v", msgs)
	}
	// The diagnostic points at the key, not the value.
	if msgs[0].SourceRange.End.Offset == 0 {
		t.Fatal("missing source range on the unexpected key")
	}

	open := Object(Required("a", Str()))
	open.AdditionalProperties = Num()
	if msgs := validateOne(t, open, `{"a": "x", "b": 1}`); len(msgs) != 0 {
		t.Fatalf("constrained extras should pass, got %v", msgs)
	}
	if msgs := validateOne(t, open, `{"a": "x", "b": "oops"}`); len(msgs) != 1 {
		t.Fatalf("constrained extras should be checked, got %v", msgs)
	}
}

func TestValidateArrayAndTuple(t *testing.T) {
	if msgs := validateOne(t, ArrayOf(Num()), `[1, 2, 3]`); len(msgs) != 0 {
		t.Fatalf("expected valid array, got %v", msgs)
	}
	if msgs := validateOne(t, ArrayOf(Num()), `[1, "two", 3]`); len(msgs) != 1 {
		t.Fatalf("expected one element failure, got %v", msgs)
	}

	pair := Tuple(Str(), Num())
	if msgs := validateOne(t, pair, `["a", 1]`); len(msgs) != 0 {
		t.Fatalf("expected valid tuple, got %v", msgs)
	}

	msgs := validateOne(t, pair, `["a"]`)
	if len(msgs) != 1 || msgs[0].Message != "Expected at least 2 items but found 1" {
		t.Fatalf("unexpected messages: %v", msgs)
	}

	msgs = validateOne(t, pair, `["a", 1, true]`)
	if len(msgs) != 1 || msgs[0].Message != "Unexpected item at index 2" {
		t.Fatalf("unexpected messages: %v", msgs)
	}

	openPair := Tuple(Str(), Num())
	openPair.AdditionalItems = Bool()
	if msgs := validateOne(t, openPair, `["a", 1, true, false]`); len(msgs) != 0 {
		t.Fatalf("additional items should be accepted, got %v", msgs)
	}
}

func TestValidateRecord(t *testing.T) {
	rec := RecordOf(Str(), Num())
	if msgs := validateOne(t, rec, `{"a": 1, "b": 2}`); len(msgs) != 0 {
		t.Fatalf("expected valid record, got %v", msgs)
	}
	if msgs := validateOne(t, rec, `{"a": 1, "b": "two"}`); len(msgs) != 1 {
		t.Fatalf("expected one value failure, got %v", msgs)
	}
}

// A failed union reports exactly two messages: the member-kind listing and
// the expected-value summary.
func TestValidateUnionTwoMessageContract(t *testing.T) {
	menu := Or(StrLit("apple"), StrLit("banana"), StrLit("carrot"), StrLit("deli-meat"))

	if msgs := validateOne(t, menu, `"banana"`); len(msgs) != 0 {
		t.Fatalf("expected member match, got %v", msgs)
	}

	msgs := validateOne(t, menu, `"pizza"`)
	if len(msgs) != 2 {
		t.Fatalf("expected exactly two messages, got %d: %v", len(msgs), msgs)
	}
	if msgs[0].Message != "Does not match any of the types: string | string | string | string" {
		t.Fatalf("unexpected first message: %q", msgs[0].Message)
	}
	if msgs[0].Severity != SeverityError {
		t.Fatal("first union message should be an error")
	}
	if msgs[1].Message != "Expected: apple | banana | carrot | deli-meat" {
		t.Fatalf("unexpected second message: %q", msgs[1].Message)
	}
	if msgs[1].Severity != SeverityInfo {
		t.Fatal("second union message should be informational")
	}
}

func TestValidateUnionNamedMembers(t *testing.T) {
	u := Or(
		Named("Circle", Object(Required("r", Num()))),
		Named("Square", Object(Required("side", Num()))),
	)
	msgs := validateOne(t, u, `{"radius": 1}`)
	if len(msgs) != 2 {
		t.Fatalf("expected two messages, got %v", msgs)
	}
	if msgs[0].Message != "Does not match any of the types: Circle | Square" {
		t.Fatalf("unexpected message: %q", msgs[0].Message)
	}
}

// Every failing intersection member is reported, not just the first.
func TestValidateIntersectionReportsAllMembers(t *testing.T) {
	shape := And(
		Object(Required("a", Str())),
		Object(Required("b", Num())),
	)
	msgs := validateOne(t, shape, `{}`)
	if len(msgs) != 2 {
		t.Fatalf("expected two messages, got %d: %v", len(msgs), msgs)
	}
}

func TestValidateByName(t *testing.T) {
	reg := New()
	reg.Add(Named("Person", Object(Required("name", Str()))), "p", "c")
	v := NewValidator(reg)

	msgs, err := v.ValidateByName("Person", mustParse(t, `{"name": "ada"}`))
	if err != nil {
		t.Fatal(err)
	}
	if len(msgs) != 0 {
		t.Fatalf("expected valid, got %v", msgs)
	}

	if _, err := v.ValidateByName("Ghost", mustParse(t, `{}`)); !errors.Is(err, errdefs.ErrNotFound) {
		t.Fatalf("expected not-found for unknown type, got %v", err)
	}
}

// Recursive schemas validate by following the leftover ref lazily.
func TestValidateRecursiveRef(t *testing.T) {
	reg := New()
	reg.Add(Named("TreeNode", Object(
		Required("value", Num()),
		Optional("left", Ref("TreeNode")),
	)), "p", "c")
	v := NewValidator(reg)

	msgs, err := v.ValidateByName("TreeNode",
		mustParse(t, `{"value": 1, "left": {"value": 2, "left": {"value": 3}}}`))
	if err != nil {
		t.Fatal(err)
	}
	if len(msgs) != 0 {
		t.Fatalf("expected valid tree, got %v", msgs)
	}

	msgs, err = v.ValidateByName("TreeNode",
		mustParse(t, `{"value": 1, "left": {"value": "two"}}`))
	if err != nil {
		t.Fatal(err)
	}
	if len(msgs) != 1 {
		t.Fatalf("expected one nested failure, got %v", msgs)
	}
}

// An unresolvable referenced name is a definitional error, not a finding.
func TestValidateDanglingRef(t *testing.T) {
	v := NewValidator(New())
	_, err := v.ValidateType(Ref("Ghost"), mustParse(t, `{}`))
	if !errors.Is(err, errdefs.ErrNotFound) {
		t.Fatalf("expected not-found, got %v", err)
	}
}

// Diagnostics carry byte offsets into the parsed source.
func TestValidateSourceRanges(t *testing.T) {
	src := `{"name": 5}`
	msgs := validateOne(t, Object(Required("name", Str())), src)
	if len(msgs) != 1 {
		t.Fatalf("expected one message, got %v", msgs)
	}
	span := msgs[0].SourceRange
	if got := src[span.Start.Offset:span.End.Offset]; got != "5" {
		t.Fatalf("span should cover the offending value, got %q", got)
	}
}
