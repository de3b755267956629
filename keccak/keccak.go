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

// Package keccak provides the Keccak-256 digest primitive and a fixed-size
// hash wrapper type used throughout the typed-data encoding pipeline.
package keccak

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"golang.org/x/crypto/sha3"
)

const Hash256Size = 32

type Hash256 [Hash256Size]byte

func NewHash256(data []byte) Hash256 {
	h := Hash256{}
	copy(h[:], data)
	return h
}

func (h Hash256) String() string {
	return hex.EncodeToString(h[:])
}

func (h Hash256) Bytes() []byte {
	return h[:]
}

func (h Hash256) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.String())
}

// Sum256 generates a Keccak-256 hash over the concatenation of the provided
// byte slices
func Sum256(data ...[]byte) Hash256 {
	tmpHash := sha3.NewLegacyKeccak256()
	for _, d := range data {
		if _, err := tmpHash.Write(d); err != nil {
			panic(
				fmt.Sprintf(
					"unexpected error writing to keccak hash: %s",
					err,
				),
			)
		}
	}
	return NewHash256(tmpHash.Sum(nil))
}
