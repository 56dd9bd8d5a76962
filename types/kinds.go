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

// Kind identifies the variant of a Node.
type Kind uint8

const (
	KindString Kind = iota
	KindNumber
	KindBoolean
	KindNull
	KindUndefined
	KindAny
	KindUnknown
	KindNever
	KindVoid
	KindObject
	KindArray
	KindTuple
	KindRecord
	KindRef
	KindOr
	KindAnd
	KindConditional
	KindFunction
	KindTemplate
)

var kindNames = [...]string{
	KindString:      "string",
	KindNumber:      "number",
	KindBoolean:     "boolean",
	KindNull:        "null",
	KindUndefined:   "undefined",
	KindAny:         "any",
	KindUnknown:     "unknown",
	KindNever:       "never",
	KindVoid:        "void",
	KindObject:      "object",
	KindArray:       "array",
	KindTuple:       "tuple",
	KindRecord:      "record",
	KindRef:         "ref",
	KindOr:          "or",
	KindAnd:         "and",
	KindConditional: "conditional",
	KindFunction:    "function",
	KindTemplate:    "template",
}

// String returns the wire-level tag for the kind ("string", "or", ...).
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "invalid"
}

// IsPrimitive reports whether the kind is a primitive (non-structural) kind.
func (k Kind) IsPrimitive() bool {
	switch k {
	case KindString, KindNumber, KindBoolean, KindNull, KindUndefined,
		KindAny, KindUnknown, KindNever, KindVoid:
		return true
	}
	return false
}
