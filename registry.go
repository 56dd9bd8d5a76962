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
	"regexp"
	"sort"

	"github.com/benbjohnson/immutable"
	"github.com/containerd/log"

	"github.com/wdamron/xlr/types"
)

// TypeInfo describes the provenance of a registered type.
type TypeInfo struct {
	Name       string
	Plugin     string
	Capability string
}

type registryEntry struct {
	node       types.Node
	plugin     string
	capability string
}

// Registry is a store of named type definitions with provenance metadata,
// plus the resolved-type cache those definitions feed.
//
// The store and the cache are persistent (immutable) maps: readers hold
// snapshots, and every returned node tree is an owned deep copy, so no
// caller can corrupt the cache or another caller's result by mutating what
// it was given.
//
// A Registry is single-threaded: resolution and validation are synchronous
// CPU-bound tree transforms with no internal locking.
type Registry struct {
	store *immutable.SortedMap // name -> registryEntry
	cache *immutable.SortedMap // name -> resolved types.Node
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		store: immutable.NewSortedMap(nil),
		cache: immutable.NewSortedMap(nil),
	}
}

// Add stores a named type. Registering a name twice replaces the previous
// definition (last write wins; definitions are never implicitly merged) and
// invalidates the resolved-type cache, since a new definition can change the
// resolution of any dependent type.
func (r *Registry) Add(t types.Node, plugin, capability string) {
	name := t.Base().Name
	if name == "" {
		log.L.WithField("plugin", plugin).Warn("ignoring type registration without a name")
		return
	}
	r.store = r.store.Set(name, registryEntry{node: types.Copy(t), plugin: plugin, capability: capability})
	r.cache = immutable.NewSortedMap(nil)
}

// Get returns a copy of the raw (unresolved) definition.
func (r *Registry) Get(name string) (types.Node, bool) {
	e, ok := r.lookup(name)
	if !ok {
		return nil, false
	}
	return types.Copy(e.node), true
}

// Has reports whether a definition is registered under name.
func (r *Registry) Has(name string) bool {
	_, ok := r.store.Get(name)
	return ok
}

// Info returns provenance metadata for a registered type.
func (r *Registry) Info(name string) (TypeInfo, bool) {
	e, ok := r.lookup(name)
	if !ok {
		return TypeInfo{}, false
	}
	return TypeInfo{Name: name, Plugin: e.plugin, Capability: e.capability}, true
}

func (r *Registry) lookup(name string) (registryEntry, bool) {
	v, ok := r.store.Get(name)
	if !ok {
		return registryEntry{}, false
	}
	return v.(registryEntry), true
}

// Filters denote exclusion matches over registry entries: an entry whose
// capability or type name matches a filter is omitted from the operation,
// not included.
type Filters struct {
	Capability *regexp.Regexp
	TypeName   *regexp.Regexp
}

func (f Filters) excludes(name, capability string) bool {
	if f.Capability != nil && f.Capability.MatchString(capability) {
		return true
	}
	if f.TypeName != nil && f.TypeName.MatchString(name) {
		return true
	}
	return false
}

// List returns copies of all stored definitions sorted by name, omitting
// entries matched by the filters.
func (r *Registry) List(filters Filters) []types.Node {
	out := make([]types.Node, 0, r.store.Len())
	iter := r.store.Iterator()
	for !iter.Done() {
		k, v := iter.Next()
		e := v.(registryEntry)
		if filters.excludes(k.(string), e.capability) {
			continue
		}
		out = append(out, types.Copy(e.node))
	}
	return out
}

// Manifest bundles named types grouped by capability: the unit of bulk
// loading contributed by a single plugin.
type Manifest struct {
	PluginName   string
	Capabilities map[string][]types.Node
}

// TransformFunction rewrites a definition before storage during loading,
// e.g. to inject computed fields into every type of a capability.
type TransformFunction func(t types.Node, capability string) types.Node

// LoadOptions controls filtering and pre-storage transforms during
// LoadDefinitions.
type LoadOptions struct {
	Filters    Filters
	Transforms []TransformFunction
}

// LoadDefinitions stores every type of the manifest, one registration per
// (type, plugin, capability) triple. Entries matched by the exclusion
// filters are skipped; transforms apply in registration order before
// storage. Loading invalidates the whole resolved-type cache: a reloaded
// definition can retroactively change any previously resolved extends or
// ref chain, so the cache is cleared rather than patched.
func (r *Registry) LoadDefinitions(m Manifest, opts *LoadOptions) {
	if opts == nil {
		opts = &LoadOptions{}
	}
	caps := make([]string, 0, len(m.Capabilities))
	for c := range m.Capabilities {
		caps = append(caps, c)
	}
	sort.Strings(caps)

	loaded := 0
	for _, capName := range caps {
		for _, t := range m.Capabilities[capName] {
			if opts.Filters.excludes(t.Base().Name, capName) {
				continue
			}
			for _, tf := range opts.Transforms {
				t = tf(t, capName)
			}
			name := t.Base().Name
			if name == "" {
				log.L.WithFields(log.Fields{"plugin": m.PluginName, "capability": capName}).
					Warn("ignoring type registration without a name")
				continue
			}
			r.store = r.store.Set(name, registryEntry{node: types.Copy(t), plugin: m.PluginName, capability: capName})
			loaded++
		}
	}
	r.cache = immutable.NewSortedMap(nil)
	log.L.WithFields(log.Fields{"plugin": m.PluginName, "types": loaded}).Debug("loaded type definitions")
}

// GetTypeOptions controls GetType.
type GetTypeOptions struct {
	// RawType returns the stored definition without resolution.
	RawType bool
	// SkipOptimize fills generic defaults but skips the optimize pipeline
	// (extends, conditional, intersection and ref expansion).
	SkipOptimize bool
}

// GetType returns the canonical, fully-expanded form of a named type.
// Results are cached per raw type name; repeated calls are O(1) after the
// first resolution, and callers always receive a deep copy they can mutate
// freely.
func (r *Registry) GetType(name string, opts *GetTypeOptions) (types.Node, error) {
	e, ok := r.lookup(name)
	if !ok {
		return nil, typeNotFound(name)
	}
	if opts != nil && opts.RawType {
		return types.Copy(e.node), nil
	}
	if opts == nil || !opts.SkipOptimize {
		if cached, ok := r.cache.Get(name); ok {
			return types.Copy(cached.(types.Node)), nil
		}
	}

	filled := FillInGenerics(e.node, bindTokens(e.node.Base().GenericTokens, nil))
	if opts != nil && opts.SkipOptimize {
		return filled, nil
	}

	resolved, err := r.resolveNamed(name, filled)
	if err != nil {
		return nil, err
	}
	r.cache = r.cache.Set(name, resolved)
	return types.Copy(resolved), nil
}

// HasType reports whether a definition is registered under name.
func (r *Registry) HasType(name string) bool { return r.Has(name) }

// ListTypes returns copies of all stored definitions, omitting entries
// matched by the exclusion filters.
func (r *Registry) ListTypes(filters Filters) []types.Node { return r.List(filters) }

// GetTypeInfo returns provenance metadata for a registered type.
func (r *Registry) GetTypeInfo(name string) (TypeInfo, bool) { return r.Info(name) }
