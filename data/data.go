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

// Package data models concrete value trees (parsed JSON with source
// positions) consumed by the validator. Diagnostics carry the spans attached
// here.
package data

import "strconv"

// Pos is a position in the original source. Line and Col are 1-based;
// Offset is the byte offset.
type Pos struct {
	Line   int
	Col    int
	Offset int
}

// Span is a half-open source interval [Start, End).
type Span struct {
	Start Pos
	End   Pos
}

// String formats the span as "line:col".
func (s Span) String() string {
	return strconv.Itoa(s.Start.Line) + ":" + strconv.Itoa(s.Start.Col)
}

// Value is the base interface for concrete value nodes.
type Value interface {
	ValueName() string
	Span() Span
}

func (v *Null) ValueName() string    { return "null" }
func (v *Boolean) ValueName() string { return "boolean" }
func (v *Number) ValueName() string  { return "number" }
func (v *String) ValueName() string  { return "string" }
func (v *Array) ValueName() string   { return "array" }
func (v *Object) ValueName() string  { return "object" }

func (v *Null) Span() Span    { return v.Loc }
func (v *Boolean) Span() Span { return v.Loc }
func (v *Number) Span() Span  { return v.Loc }
func (v *String) Span() Span  { return v.Loc }
func (v *Array) Span() Span   { return v.Loc }
func (v *Object) Span() Span  { return v.Loc }

type Null struct {
	Loc Span
}

type Boolean struct {
	Value bool
	Loc   Span
}

type Number struct {
	Value float64
	Loc   Span
}

type String struct {
	Value string
	Loc   Span
}

type Array struct {
	Items []Value
	Loc   Span
}

// Entry is a single object member. The key carries its own span so
// diagnostics about a property can point at the property name.
type Entry struct {
	Key    string
	KeyLoc Span
	Value  Value
}

// Object preserves entry order from the source.
type Object struct {
	Entries []Entry
	Loc     Span
}

// Get returns the entry value for a key.
func (v *Object) Get(key string) (Value, bool) {
	for _, e := range v.Entries {
		if e.Key == key {
			return e.Value, true
		}
	}
	return nil, false
}

// ValueString returns a short printable form of a value for diagnostics.
func ValueString(v Value) string {
	switch v := v.(type) {
	case nil:
		return "undefined"
	case *Null:
		return "null"
	case *Boolean:
		return strconv.FormatBool(v.Value)
	case *Number:
		return strconv.FormatFloat(v.Value, 'f', -1, 64)
	case *String:
		return v.Value
	case *Array:
		return "array(" + strconv.Itoa(len(v.Items)) + ")"
	case *Object:
		return "object(" + strconv.Itoa(len(v.Entries)) + ")"
	}
	return "unknown"
}
