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
	"sort"
	"strings"

	"dario.cat/mergo"
	"github.com/containerd/errdefs"

	"github.com/wdamron/xlr/types"
)

// ExportFile is a single generated declaration file.
type ExportFile struct {
	Filename string
	Content  string
}

// ExportOptions controls what gets exported and how unresolved names are
// imported. Empty fields fall back to defaults.
type ExportOptions struct {
	Filters    Filters
	Transforms []TransformFunction
	// ImportMap maps a type name that is not registered locally to the
	// module the declaration should import it from.
	ImportMap map[string]string
	// Header is prepended to every generated file.
	Header string
	// FileExtension for generated files, including the dot.
	FileExtension string
}

func defaultExportOptions() ExportOptions {
	return ExportOptions{
		Header:        "// Generated declarations. Do not edit.\n",
		FileExtension: ".d.ts",
	}
}

// ExportRegistry renders every registered type (minus filtered entries) as
// declaration files in the given output format, grouped one file per
// capability. Only the "typescript" format is implemented.
func (r *Registry) ExportRegistry(format string, opts *ExportOptions) ([]ExportFile, error) {
	if format != "typescript" {
		return nil, fmt.Errorf("export format %q: %w", format, errdefs.ErrNotImplemented)
	}
	merged := ExportOptions{}
	if opts != nil {
		merged = *opts
	}
	if err := mergo.Merge(&merged, defaultExportOptions()); err != nil {
		return nil, err
	}

	// Group resolved types by capability.
	groups := make(map[string][]types.Node)
	for _, raw := range r.List(merged.Filters) {
		name := raw.Base().Name
		info, _ := r.Info(name)
		capability := info.Capability
		if capability == "" {
			capability = "types"
		}
		t, err := r.GetType(name, nil)
		if err != nil {
			return nil, err
		}
		for _, fn := range merged.Transforms {
			t = fn(t, capability)
		}
		groups[capability] = append(groups[capability], t)
	}

	capabilities := make([]string, 0, len(groups))
	for c := range groups {
		capabilities = append(capabilities, c)
	}
	sort.Strings(capabilities)

	files := make([]ExportFile, 0, len(groups))
	for _, capability := range capabilities {
		nodes := groups[capability]
		sort.Slice(nodes, func(i, j int) bool {
			return nodes[i].Base().Name < nodes[j].Base().Name
		})
		content, err := r.renderDeclarations(nodes, merged)
		if err != nil {
			return nil, err
		}
		files = append(files, ExportFile{
			Filename: capability + merged.FileExtension,
			Content:  content,
		})
	}
	return files, nil
}

func (r *Registry) renderDeclarations(nodes []types.Node, opts ExportOptions) (string, error) {
	var sb strings.Builder
	sb.WriteString(opts.Header)

	imports, err := r.collectImports(nodes, opts.ImportMap)
	if err != nil {
		return "", err
	}
	if len(imports) > 0 {
		sb.WriteByte('\n')
		sb.WriteString(imports)
	}

	for _, n := range nodes {
		sb.WriteByte('\n')
		writeDeclaration(&sb, n)
	}
	return sb.String(), nil
}

// collectImports renders import lines for every referenced name not present
// in the registry. An unmapped external name is a caller error.
func (r *Registry) collectImports(nodes []types.Node, importMap map[string]string) (string, error) {
	external := make(map[string]bool)
	for _, n := range nodes {
		collectRefNames(n, external)
	}
	byModule := make(map[string][]string)
	for name := range external {
		if r.Has(name) {
			continue
		}
		module, ok := importMap[name]
		if !ok {
			return "", fmt.Errorf("no import mapping for referenced type %q: %w", name, errdefs.ErrInvalidArgument)
		}
		byModule[module] = append(byModule[module], name)
	}
	modules := make([]string, 0, len(byModule))
	for m := range byModule {
		modules = append(modules, m)
	}
	sort.Strings(modules)

	var sb strings.Builder
	for _, m := range modules {
		names := byModule[m]
		sort.Strings(names)
		fmt.Fprintf(&sb, "import { %s } from %q;\n", strings.Join(names, ", "), m)
	}
	return sb.String(), nil
}

func collectRefNames(n types.Node, out map[string]bool) {
	switch n := n.(type) {
	case nil:
		return
	case *types.RefType:
		base, _ := types.ParseRefName(n.Ref)
		out[base] = true
		for _, arg := range n.GenericArgs {
			collectRefNames(arg, out)
		}
	case *types.ObjectType:
		for _, p := range n.Properties {
			collectRefNames(p.Node, out)
		}
		collectRefNames(n.AdditionalProperties, out)
		if n.Extends != nil {
			collectRefNames(n.Extends, out)
		}
	case *types.ArrayType:
		collectRefNames(n.ElementType, out)
	case *types.TupleType:
		for _, e := range n.Elements {
			collectRefNames(e, out)
		}
		collectRefNames(n.AdditionalItems, out)
	case *types.RecordType:
		collectRefNames(n.KeyType, out)
		collectRefNames(n.ValueType, out)
	case *types.OrType:
		for _, m := range n.Members {
			collectRefNames(m, out)
		}
	case *types.AndType:
		for _, m := range n.Members {
			collectRefNames(m, out)
		}
	case *types.ConditionalType:
		collectRefNames(n.Check.Left, out)
		collectRefNames(n.Check.Right, out)
		collectRefNames(n.Value.True, out)
		collectRefNames(n.Value.False, out)
	case *types.FunctionType:
		for _, p := range n.Parameters {
			collectRefNames(p.Type, out)
		}
		collectRefNames(n.Return, out)
	}
}

// writeDeclaration emits one exported declaration. Named objects become
// interfaces; everything else becomes a type alias.
func writeDeclaration(sb *strings.Builder, n types.Node) {
	name := n.Base().Name
	if obj, ok := n.(*types.ObjectType); ok {
		writeDocComment(sb, n.Base())
		fmt.Fprintf(sb, "export interface %s {\n", name)
		for _, p := range obj.Properties {
			opt := ""
			if !p.Required {
				opt = "?"
			}
			fmt.Fprintf(sb, "  %s%s: %s;\n", p.Name, opt, typeScriptOf(p.Node))
		}
		if obj.AdditionalProperties != nil {
			fmt.Fprintf(sb, "  [key: string]: %s;\n", typeScriptOf(obj.AdditionalProperties))
		}
		sb.WriteString("}\n")
		return
	}
	writeDocComment(sb, n.Base())
	fmt.Fprintf(sb, "export type %s = %s;\n", name, typeScriptOf(n))
}

func writeDocComment(sb *strings.Builder, meta *types.Meta) {
	if meta.Description == "" && meta.Title == "" {
		return
	}
	sb.WriteString("/**\n")
	if meta.Title != "" {
		fmt.Fprintf(sb, " * %s\n", meta.Title)
	}
	if meta.Description != "" {
		fmt.Fprintf(sb, " * %s\n", meta.Description)
	}
	sb.WriteString(" */\n")
}

// typeScriptOf renders a node as TypeScript type syntax. Named nodes are
// rendered by reference when used in a property position; the top-level
// declaration body suppresses the name by rendering an unnamed copy.
func typeScriptOf(n types.Node) string {
	if n == nil {
		return "never"
	}
	if name := n.Base().Name; name != "" {
		if _, isObj := n.(*types.ObjectType); isObj {
			return name
		}
	}
	return types.TypeString(n)
}
