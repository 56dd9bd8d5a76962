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

// xlr provides a registry, resolver and validator for a structural type
// language shared across plugin-declared schemas.
//
// Type declarations are loaded from plugin manifests into a Registry. On
// lookup, a type is resolved: generic parameters are substituted, extends
// chains and intersections are merged into effective object shapes,
// statically decidable conditionals are collapsed, and references to other
// registered names are inlined. Resolution results are cached per name and
// invalidated wholesale whenever new definitions load.
//
// Supported Features:
//
//   * Tagged-union type nodes covering primitives, literals, objects,
//     arrays, tuples, records, refs, unions, intersections, conditionals,
//     functions and template formats
//   * Generic declarations with per-token constraints and defaults
//   * Structural extends merging with property-compatibility checking
//   * Validation of concrete data trees against resolved types, with
//     source spans on every diagnostic
//   * TypeScript declaration export grouped by capability
//
// Recursive type graphs resolve lazily: a reference that would re-enter its
// own resolution is left in place and followed on demand by the validator.
package xlr
