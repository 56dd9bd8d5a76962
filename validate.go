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
	"regexp"
	"strconv"
	"strings"

	"github.com/containerd/errdefs"

	"github.com/wdamron/xlr/data"
	"github.com/wdamron/xlr/types"
)

// Severity grades a validation message.
type Severity uint8

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityInfo
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	}
	return "invalid"
}

// ValidationMessage is a single reported mismatch between concrete data and
// a resolved type.
type ValidationMessage struct {
	Message     string
	Severity    Severity
	SourceRange data.Span
	// Expected describes the expected type or value, when one can be named.
	Expected string
}

// Validator walks concrete value trees against resolved type nodes,
// producing ordered diagnostics. Data-shape problems are always returned as
// messages, accumulated across the whole tree; an error return means the
// type graph itself is broken (an unresolvable referenced name), never bad
// input data.
type Validator struct {
	reg *Registry
}

// NewValidator creates a validator bound to a registry. The registry is
// needed to follow refs lazily, which keeps validation decoupled from
// resolution order and lets legitimately recursive schemas validate.
func NewValidator(reg *Registry) *Validator {
	return &Validator{reg: reg}
}

// ValidateByName resolves a registered type and validates the value tree
// against it.
func (v *Validator) ValidateByName(name string, val data.Value) ([]ValidationMessage, error) {
	t, err := v.reg.GetType(name, nil)
	if err != nil {
		return nil, err
	}
	return v.ValidateType(t, val)
}

// ValidateType validates the value tree against an already-resolved type
// node.
func (v *Validator) ValidateType(t types.Node, val data.Value) ([]ValidationMessage, error) {
	var msgs []ValidationMessage
	if err := v.validate(t, val, &msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}

func (v *Validator) validate(t types.Node, val data.Value, msgs *[]ValidationMessage) error {
	switch t := t.(type) {
	case nil:
		return nil

	case *types.AnyType, *types.UnknownType:
		return nil

	case *types.NeverType:
		*msgs = append(*msgs, ValidationMessage{
			Message:     `No value is assignable to type "never"`,
			Severity:    SeverityError,
			SourceRange: val.Span(),
		})
		return nil

	case *types.StringType:
		s, ok := val.(*data.String)
		if !ok {
			v.mismatch(t, val, msgs)
			return nil
		}
		if t.Const != nil && s.Value != *t.Const {
			v.constMismatch(*t.Const, s.Value, val, msgs)
		}
		return nil

	case *types.NumberType:
		n, ok := val.(*data.Number)
		if !ok {
			v.mismatch(t, val, msgs)
			return nil
		}
		if t.Const != nil && n.Value != *t.Const {
			v.constMismatch(formatNumber(*t.Const), formatNumber(n.Value), val, msgs)
		}
		return nil

	case *types.BooleanType:
		b, ok := val.(*data.Boolean)
		if !ok {
			v.mismatch(t, val, msgs)
			return nil
		}
		if t.Const != nil && b.Value != *t.Const {
			v.constMismatch(strconv.FormatBool(*t.Const), strconv.FormatBool(b.Value), val, msgs)
		}
		return nil

	case *types.NullType, *types.UndefinedType, *types.VoidType:
		if _, ok := val.(*data.Null); !ok {
			v.mismatch(t, val, msgs)
		}
		return nil

	case *types.TemplateType:
		s, ok := val.(*data.String)
		if !ok {
			v.mismatch(t, val, msgs)
			return nil
		}
		re, err := regexp.Compile(t.Format)
		if err != nil {
			return fmt.Errorf("template format %q: %v: %w", t.Format, err, errdefs.ErrInvalidArgument)
		}
		if !re.MatchString(s.Value) {
			*msgs = append(*msgs, ValidationMessage{
				Message:     fmt.Sprintf("String does not match format %q", t.Format),
				Severity:    SeverityError,
				SourceRange: val.Span(),
				Expected:    types.TypeString(t),
			})
		}
		return nil

	case *types.ObjectType:
		return v.validateObject(t, val, msgs)

	case *types.ArrayType:
		arr, ok := val.(*data.Array)
		if !ok {
			v.mismatch(t, val, msgs)
			return nil
		}
		for _, item := range arr.Items {
			if err := v.validate(t.ElementType, item, msgs); err != nil {
				return err
			}
		}
		return nil

	case *types.TupleType:
		return v.validateTuple(t, val, msgs)

	case *types.RecordType:
		obj, ok := val.(*data.Object)
		if !ok {
			v.mismatch(t, val, msgs)
			return nil
		}
		// Keys are strings by construction; only values are type-checked.
		for _, e := range obj.Entries {
			if err := v.validate(t.ValueType, e.Value, msgs); err != nil {
				return err
			}
		}
		return nil

	case *types.RefType:
		target, err := v.reg.ResolveRef(t)
		if err != nil {
			return err
		}
		if rr, ok := target.(*types.RefType); ok && rr.Ref == types.NormalizeRef(t).Ref {
			return nil
		}
		return v.validate(target, val, msgs)

	case *types.OrType:
		return v.validateUnion(t, val, msgs)

	case *types.AndType:
		// Every member must hold independently; all member failures are
		// reported, not just the first.
		for _, m := range t.Members {
			var memberMsgs []ValidationMessage
			if err := v.validate(m, val, &memberMsgs); err != nil {
				return err
			}
			*msgs = append(*msgs, memberMsgs...)
		}
		return nil

	case *types.ConditionalType:
		out := ResolveConditional(t)
		if out == types.Node(t) {
			// Not statically decidable; nothing to check against.
			return nil
		}
		return v.validate(out, val, msgs)

	case *types.FunctionType:
		// Data trees carry no callable values.
		return nil
	}
	return nil
}

func (v *Validator) validateObject(t *types.ObjectType, val data.Value, msgs *[]ValidationMessage) error {
	obj, ok := val.(*data.Object)
	if !ok {
		v.mismatch(t, val, msgs)
		return nil
	}
	declared := make(map[string]bool, len(t.Properties))
	for _, p := range t.Properties {
		declared[p.Name] = true
		entry, present := obj.Get(p.Name)
		if !present {
			if p.Required {
				*msgs = append(*msgs, ValidationMessage{
					Message:     fmt.Sprintf("Missing required property %q", p.Name),
					Severity:    SeverityError,
					SourceRange: obj.Span(),
					Expected:    types.TypeString(p.Node),
				})
			}
			continue
		}
		if err := v.validate(p.Node, entry, msgs); err != nil {
			return err
		}
	}
	for _, e := range obj.Entries {
		if declared[e.Key] {
			continue
		}
		if t.AdditionalProperties == nil {
			*msgs = append(*msgs, ValidationMessage{
				Message:     fmt.Sprintf("Unexpected property %q", e.Key),
				Severity:    SeverityError,
				SourceRange: e.KeyLoc,
			})
			continue
		}
		if err := v.validate(t.AdditionalProperties, e.Value, msgs); err != nil {
			return err
		}
	}
	return nil
}

func (v *Validator) validateTuple(t *types.TupleType, val data.Value, msgs *[]ValidationMessage) error {
	arr, ok := val.(*data.Array)
	if !ok {
		v.mismatch(t, val, msgs)
		return nil
	}
	if len(arr.Items) < t.MinItems {
		*msgs = append(*msgs, ValidationMessage{
			Message:     fmt.Sprintf("Expected at least %d items but found %d", t.MinItems, len(arr.Items)),
			Severity:    SeverityError,
			SourceRange: arr.Span(),
		})
	}
	for i, item := range arr.Items {
		if i < len(t.Elements) {
			if err := v.validate(t.Elements[i], item, msgs); err != nil {
				return err
			}
			continue
		}
		if t.AdditionalItems == nil {
			*msgs = append(*msgs, ValidationMessage{
				Message:     fmt.Sprintf("Unexpected item at index %d", i),
				Severity:    SeverityError,
				SourceRange: item.Span(),
			})
			continue
		}
		if err := v.validate(t.AdditionalItems, item, msgs); err != nil {
			return err
		}
	}
	return nil
}

// validateUnion tries every member. If none fully validates, two messages
// are emitted together: the top-level mismatch listing member types, and an
// informational summary of the expected shapes. The pair is a documented
// contract; it is never collapsed into a single string.
func (v *Validator) validateUnion(t *types.OrType, val data.Value, msgs *[]ValidationMessage) error {
	for _, m := range t.Members {
		var memberMsgs []ValidationMessage
		if err := v.validate(m, val, &memberMsgs); err != nil {
			return err
		}
		if len(memberMsgs) == 0 {
			return nil
		}
	}

	labels := make([]string, len(t.Members))
	for i, m := range t.Members {
		labels[i] = memberLabel(m)
	}
	*msgs = append(*msgs, ValidationMessage{
		Message:     "Does not match any of the types: " + strings.Join(labels, " | "),
		Severity:    SeverityError,
		SourceRange: val.Span(),
	})

	expected := expectedSummary(t.Members)
	*msgs = append(*msgs, ValidationMessage{
		Message:     "Expected: " + expected,
		Severity:    SeverityInfo,
		SourceRange: val.Span(),
		Expected:    expected,
	})
	return nil
}

func memberLabel(n types.Node) string {
	if name := n.Base().Name; name != "" {
		return name
	}
	if ref, ok := n.(*types.RefType); ok {
		return ref.Ref
	}
	return n.Kind().String()
}

// expectedSummary lists the literal values of a literal union, or the
// nested-type breakdown for structural unions.
func expectedSummary(members []types.Node) string {
	literals := make([]string, 0, len(members))
	for _, m := range members {
		c, ok := types.ConstValue(m)
		if !ok {
			literals = nil
			break
		}
		literals = append(literals, constString(c))
	}
	if literals != nil {
		return strings.Join(literals, " | ")
	}
	shapes := make([]string, len(members))
	for i, m := range members {
		shapes[i] = types.TypeString(m)
	}
	return strings.Join(shapes, " | ")
}

func (v *Validator) mismatch(t types.Node, val data.Value, msgs *[]ValidationMessage) {
	*msgs = append(*msgs, ValidationMessage{
		Message:     fmt.Sprintf("Expected type %q but found %q", t.Kind().String(), val.ValueName()),
		Severity:    SeverityError,
		SourceRange: val.Span(),
		Expected:    types.TypeString(t),
	})
}

func (v *Validator) constMismatch(expected, actual string, val data.Value, msgs *[]ValidationMessage) {
	*msgs = append(*msgs, ValidationMessage{
		Message:     fmt.Sprintf("Expected value '%s' but found '%s'", expected, actual),
		Severity:    SeverityError,
		SourceRange: val.Span(),
		Expected:    expected,
	})
}

func constString(c interface{}) string {
	switch c := c.(type) {
	case string:
		return c
	case float64:
		return formatNumber(c)
	case bool:
		return strconv.FormatBool(c)
	}
	return fmt.Sprintf("%v", c)
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
