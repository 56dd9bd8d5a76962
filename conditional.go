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

// ResolveConditional evaluates a check-extends conditional when both
// operands are statically comparable (primitive) nodes, returning the
// selected branch. Non-primitive operands are not yet resolvable and the
// conditional is returned unchanged; callers must not treat that as an
// error.
//
// If the conditional declares its own generic tokens, the chosen branch is
// filled with each token's default, constraint or any before returning.
// Only the conditional's own first-level tokens are applied; nested
// conditionals inside the branch keep their own evaluation.
func ResolveConditional(n *types.ConditionalType) types.Node {
	left, right := n.Check.Left, n.Check.Right
	if left == nil || right == nil {
		return n
	}
	if !left.Kind().IsPrimitive() || !right.Kind().IsPrimitive() {
		return n
	}

	branch := n.Value.False
	if conditionalMatches(left, right) {
		branch = n.Value.True
	}
	if branch == nil {
		return n
	}

	if tokens := n.Base().GenericTokens; len(tokens) > 0 {
		return FillInGenerics(branch, bindTokens(tokens, nil))
	}
	return types.Copy(branch)
}

func conditionalMatches(left, right types.Node) bool {
	lc, lok := types.ConstValue(left)
	rc, rok := types.ConstValue(right)
	if lok && rok {
		return lc == rc
	}

	lk, rk := left.Kind(), right.Kind()
	if (lk == types.KindAny || lk == types.KindUnknown) &&
		(rk == types.KindAny || rk == types.KindUnknown) {
		return true
	}
	if (lk == types.KindNull || lk == types.KindUndefined) &&
		(rk == types.KindNull || rk == types.KindUndefined) {
		return true
	}
	return lk == rk
}
