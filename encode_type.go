// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package typeddata

import (
	"bytes"
	"slices"
	"sort"
	"strings"

	"github.com/blinklabs-io/typeddata/keccak"
)

// baseTypeName strips any array suffixes from a type token, so schema
// lookups work for array-of-struct fields
func baseTypeName(fieldType string) string {
	if idx := strings.Index(fieldType, "["); idx >= 0 {
		return fieldType[:idx]
	}
	return fieldType
}

// Dependencies returns the transitive closure of schema types reachable from
// the given root type, root first. Visited types are not re-expanded, which
// guards against mutually recursive schemas. Primitive field types
// contribute nothing
func (td *TypedData) Dependencies(rootType string) []string {
	return td.typeDependencies(baseTypeName(rootType), []string{})
}

func (td *TypedData) typeDependencies(
	typeName string,
	found []string,
) []string {
	if slices.Contains(found, typeName) {
		return found
	}
	if _, ok := td.Types[typeName]; !ok {
		return found
	}
	found = append(found, typeName)
	for _, field := range td.Types[typeName] {
		found = td.typeDependencies(baseTypeName(field.Type), found)
	}
	return found
}

// TypeSignature builds the canonical signature string for a type: the root
// type first, followed by its dependencies sorted lexicographically, each
// rendered as Name(type1 name1,type2 name2,...) and concatenated with no
// separator. Sorting the dependencies makes the signature independent of
// schema declaration order
func (td *TypedData) TypeSignature(rootType string) string {
	deps := td.Dependencies(rootType)
	if len(deps) > 0 {
		slicedDeps := deps[1:]
		sort.Strings(slicedDeps)
		deps = append([]string{deps[0]}, slicedDeps...)
	}
	var buf bytes.Buffer
	for _, dep := range deps {
		buf.WriteString(dep)
		buf.WriteByte('(')
		for idx, field := range td.Types[dep] {
			if idx > 0 {
				buf.WriteByte(',')
			}
			buf.WriteString(field.Type)
			buf.WriteByte(' ')
			buf.WriteString(field.Name)
		}
		buf.WriteByte(')')
	}
	return buf.String()
}

// TypeHash returns the digest of the canonical type signature
func (td *TypedData) TypeHash(rootType string) keccak.Hash256 {
	return keccak.Sum256([]byte(td.TypeSignature(rootType)))
}
