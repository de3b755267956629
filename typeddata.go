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

// Package typeddata computes deterministic, domain-separated digests for
// structured typed-data documents following the EIP-712 hashing scheme. The
// output digest is suitable as direct input to a signing algorithm; signing
// itself is out of scope.
package typeddata

import (
	"math/big"

	"github.com/jinzhu/copier"
)

// DomainTypeName is the reserved schema type describing the fields of the
// domain-separation record
const DomainTypeName = "EIP712Domain"

// Type is a single named field within a schema type definition. The Type
// token may denote a primitive (bool, address, string, bytes, bytesN, uintN,
// intN), another schema type, or an array form over either
type Type struct {
	Name string `json:"name" cbor:"name"`
	Type string `json:"type" cbor:"type"`
}

// Types maps type names to their ordered field definitions. Field order is
// significant: it determines encoding order and appears verbatim in the
// canonical type signature
type Types map[string][]Type

// TypedDataDomain is the domain-separation record binding a signature to a
// specific application context
type TypedDataDomain struct {
	Name              string           `json:"name,omitempty"              cbor:"name,omitempty"`
	Version           string           `json:"version,omitempty"           cbor:"version,omitempty"`
	ChainId           *HexOrDecimal256 `json:"chainId,omitempty"           cbor:"chainId,omitempty"`
	VerifyingContract string           `json:"verifyingContract,omitempty" cbor:"verifyingContract,omitempty"`
	Salt              string           `json:"salt,omitempty"              cbor:"salt,omitempty"`
}

// Map converts the domain record into the generic message form used by the
// field encoder, containing only the fields that are set
func (d *TypedDataDomain) Map() map[string]any {
	ret := map[string]any{}
	if d.ChainId != nil {
		ret["chainId"] = d.ChainId
	}
	if len(d.Name) > 0 {
		ret["name"] = d.Name
	}
	if len(d.Version) > 0 {
		ret["version"] = d.Version
	}
	if len(d.VerifyingContract) > 0 {
		ret["verifyingContract"] = d.VerifyingContract
	}
	if len(d.Salt) > 0 {
		ret["salt"] = d.Salt
	}
	return ret
}

// TypedData is a full typed-data document: the schema, the domain record,
// the primary message type, and the message itself
type TypedData struct {
	Types       Types           `json:"types"       cbor:"types"`
	PrimaryType string          `json:"primaryType" cbor:"primaryType"`
	Domain      TypedDataDomain `json:"domain"      cbor:"domain"`
	Message     map[string]any  `json:"message"     cbor:"message"`
}

// Validate performs the structural checks required before encoding: the
// primary type and the reserved domain type must exist in the schema, and
// type and field names must be well formed. Unresolved field types are
// reported at encode time, not here
func (td *TypedData) Validate() error {
	if _, ok := td.Types[td.PrimaryType]; !ok {
		return UnresolvedTypeError{Type: td.PrimaryType}
	}
	if _, ok := td.Types[DomainTypeName]; !ok {
		return UnresolvedTypeError{Type: DomainTypeName}
	}
	for typeName, fields := range td.Types {
		if !referenceTypeRegexp.MatchString(typeName) {
			return UnresolvedTypeError{Type: typeName}
		}
		for _, field := range fields {
			if field.Name == "" || field.Type == "" {
				return InvalidArgumentTypeError{
					Field: field.Name,
					Type:  field.Type,
				}
			}
		}
	}
	return nil
}

// Copy returns a deep copy of the document. Useful for callers that want to
// snapshot a document before adjusting domain fields for another context
func (td *TypedData) Copy() (*TypedData, error) {
	ret := &TypedData{}
	if err := copier.CopyWithOption(
		ret,
		td,
		copier.Option{DeepCopy: true},
	); err != nil {
		return nil, err
	}
	// big.Int has no exported fields, so the chain ID must be copied by hand
	if td.Domain.ChainId != nil {
		chainId := new(big.Int).Set(td.Domain.ChainId.BigInt())
		ret.Domain.ChainId = (*HexOrDecimal256)(chainId)
	}
	return ret, nil
}
