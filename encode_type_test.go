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
	"testing"

	"github.com/blinklabs-io/typeddata/internal/test"
	"github.com/stretchr/testify/assert"
)

func TestDependencies(t *testing.T) {
	td := mailTypedData()
	assert.Equal(
		t,
		[]string{"Mail", "Person"},
		td.Dependencies("Mail"),
	)
	assert.Equal(
		t,
		[]string{"Person"},
		td.Dependencies("Person"),
	)
	// Primitives and unknown types have no dependencies
	assert.Empty(t, td.Dependencies("string"))
	assert.Empty(t, td.Dependencies("Missing"))
}

func TestDependenciesArrayOfStruct(t *testing.T) {
	td := &TypedData{
		Types: Types{
			"Group": {
				{Name: "name", Type: "string"},
				{Name: "members", Type: "Person[]"},
			},
			"Person": {
				{Name: "name", Type: "string"},
				{Name: "wallet", Type: "address"},
			},
		},
	}
	assert.Equal(
		t,
		[]string{"Group", "Person"},
		td.Dependencies("Group"),
	)
}

func TestDependenciesCyclic(t *testing.T) {
	// Mutually recursive schemas must not re-expand visited types
	td := &TypedData{
		Types: Types{
			"Node": {
				{Name: "value", Type: "string"},
				{Name: "children", Type: "Tree"},
			},
			"Tree": {
				{Name: "root", Type: "Node"},
			},
		},
	}
	assert.Equal(
		t,
		[]string{"Node", "Tree"},
		td.Dependencies("Node"),
	)
}

func TestTypeSignature(t *testing.T) {
	td := mailTypedData()
	assert.Equal(
		t,
		"Mail(Person from,Person to,string contents)Person(string name,address wallet)",
		td.TypeSignature("Mail"),
	)
	// Zero-dependency types render as exactly one signature
	assert.Equal(
		t,
		"Person(string name,address wallet)",
		td.TypeSignature("Person"),
	)
}

func TestTypeSignatureSortedDeps(t *testing.T) {
	// Dependencies after the root are sorted lexicographically regardless
	// of the order they are reached in
	td := &TypedData{
		Types: Types{
			"A": {
				{Name: "second", Type: "C"},
				{Name: "first", Type: "B"},
			},
			"B": {
				{Name: "x", Type: "uint256"},
			},
			"C": {
				{Name: "y", Type: "uint256"},
			},
		},
	}
	assert.Equal(
		t,
		"A(C second,B first)B(uint256 x)C(uint256 y)",
		td.TypeSignature("A"),
	)
}

func TestTypeHash(t *testing.T) {
	td := mailTypedData()
	testDefs := []struct {
		rootType     string
		expectedHash string
	}{
		{
			rootType:     "Mail",
			expectedHash: "a0cedeb2dc280ba39b857546d74f5549c3a1d7bdc2dd96bf881f76108e23dac2",
		},
		{
			rootType:     "Person",
			expectedHash: "b9d8c78acf9b987311de6c7b45bb6a9c8e1bf361fa7fd3467a2163f994c79500",
		},
		{
			rootType:     "EIP712Domain",
			expectedHash: "8b73c3c69bb8fe3d512ecc4cf759cc79239f7b179b0ffacaa9a75d522b39400f",
		},
	}
	for _, testDef := range testDefs {
		assert.Equal(
			t,
			test.DecodeHash256(testDef.expectedHash),
			td.TypeHash(testDef.rootType),
		)
	}
}
