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

import "strings"

// ParseRefName splits a reference name with textually embedded generics
// (`Foo<Bar, Baz<Qux>>`) into the base name and its top-level argument
// strings. Names without generics return a nil argument list.
func ParseRefName(ref string) (base string, args []string) {
	open := strings.IndexByte(ref, '<')
	if open < 0 || !strings.HasSuffix(ref, ">") {
		return ref, nil
	}
	base = strings.TrimSpace(ref[:open])
	inner := ref[open+1 : len(ref)-1]

	depth := 0
	start := 0
	for i := 0; i < len(inner); i++ {
		switch inner[i] {
		case '<':
			depth++
		case '>':
			depth--
		case ',':
			if depth == 0 {
				args = append(args, strings.TrimSpace(inner[start:i]))
				start = i + 1
			}
		}
	}
	if tail := strings.TrimSpace(inner[start:]); tail != "" {
		args = append(args, tail)
	}
	return base, args
}

// NormalizeRef rewrites a ref whose name embeds generics textually into the
// structured form: the base name plus one ref node per argument string.
// Structured arguments already present are kept as-is. Both spellings of a
// reference resolve to the same effective type.
func NormalizeRef(r *RefType) *RefType {
	base, args := ParseRefName(r.Ref)
	if len(args) == 0 {
		return r
	}
	out := Copy(r).(*RefType)
	out.Ref = base
	if len(out.GenericArgs) == 0 {
		out.GenericArgs = make([]Node, len(args))
		for i, a := range args {
			// Argument strings may embed further generics; normalize those too.
			out.GenericArgs[i] = NormalizeRef(&RefType{Ref: a})
		}
	}
	return out
}
