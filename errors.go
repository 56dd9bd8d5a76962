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
)

// Definitional errors (bugs in the type definitions themselves) abort the
// operation that triggered them and unwrap to the errdefs taxonomy:
//
//	unresolvable extends / ref target  -> errdefs.ErrNotFound
//	conflicting property merge         -> errdefs.ErrConflict
//	malformed conditional or ref input -> errdefs.ErrInvalidArgument
//
// Validation findings are never errors; they are returned as diagnostics.

func typeNotFound(name string) error {
	return fmt.Errorf("type %q: %w", name, errdefs.ErrNotFound)
}

// ConflictingPropertyError reports an extends merge where the operand
// redeclares a base property with an incompatible type.
type ConflictingPropertyError struct {
	Property    string
	BaseType    string
	OperandType string
}

func (e *ConflictingPropertyError) Error() string {
	return fmt.Sprintf("conflicting definitions for property %q between types %q and %q",
		e.Property, e.BaseType, e.OperandType)
}

func (e *ConflictingPropertyError) Unwrap() error { return errdefs.ErrConflict }
