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
	"encoding/json"
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// ParseJSON decodes a typed-data document from JSON and validates its
// structure. Message numbers are kept as json.Number so integer values wider
// than a float64 survive intact
func ParseJSON(data []byte) (*TypedData, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	td := &TypedData{}
	if err := decoder.Decode(td); err != nil {
		return nil, fmt.Errorf("failed to parse typed data: %w", err)
	}
	if err := td.Validate(); err != nil {
		return nil, err
	}
	return td, nil
}

// ParseCBOR decodes a typed-data document from CBOR and validates its
// structure
func ParseCBOR(data []byte) (*TypedData, error) {
	td := &TypedData{}
	if err := cbor.Unmarshal(data, td); err != nil {
		return nil, fmt.Errorf("failed to parse typed data: %w", err)
	}
	if err := td.Validate(); err != nil {
		return nil, err
	}
	return td, nil
}
