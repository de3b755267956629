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
	"github.com/blinklabs-io/typeddata/keccak"
)

// Version selects between the two historical encoding rule sets. They
// differ in array support and in the handling of fields that match no
// encodable type
type Version uint8

const (
	VersionNone Version = iota
	// VersionLegacy is the v3 encoding: arrays are unsupported, and fields
	// matching no encodable type are silently omitted
	VersionLegacy
	// VersionCurrent is the v4 encoding: arrays are supported, and fields
	// matching no encodable type are an error
	VersionCurrent
)

func (v Version) String() string {
	switch v {
	case VersionLegacy:
		return "legacy"
	case VersionCurrent:
		return "current"
	default:
		return "unknown"
	}
}

func (v Version) valid() bool {
	return v == VersionLegacy || v == VersionCurrent
}

// signablePrefix is the fixed two-byte domain-separation prefix. It is never
// configurable
var signablePrefix = []byte{0x19, 0x01}

// HashStruct encodes a struct instance as its type-hash word followed by
// its encoded field words and digests the result
func (td *TypedData) HashStruct(
	typeName string,
	data map[string]any,
	version Version,
) (keccak.Hash256, error) {
	if !version.valid() {
		return keccak.Hash256{}, ErrUnknownVersion
	}
	if _, ok := td.Types[typeName]; !ok {
		return keccak.Hash256{}, UnresolvedTypeError{Type: typeName}
	}
	return td.encodeStruct(typeName, data, 0, version)
}

// DomainSeparator returns the hash of the domain-separation record
func (td *TypedData) DomainSeparator(version Version) (keccak.Hash256, error) {
	return td.HashStruct(DomainTypeName, td.Domain.Map(), version)
}

// SignableBytes returns the full preimage of the signable hash: the fixed
// prefix followed by the domain separator and the message struct hash.
// Useful for callers that hand raw bytes to an external signer
func (td *TypedData) SignableBytes(version Version) ([]byte, error) {
	if err := td.Validate(); err != nil {
		return nil, err
	}
	domainHash, err := td.DomainSeparator(version)
	if err != nil {
		return nil, err
	}
	messageHash, err := td.HashStruct(td.PrimaryType, td.Message, version)
	if err != nil {
		return nil, err
	}
	ret := make(
		[]byte,
		0,
		len(signablePrefix)+2*keccak.Hash256Size,
	)
	ret = append(ret, signablePrefix...)
	ret = append(ret, domainHash.Bytes()...)
	ret = append(ret, messageHash.Bytes()...)
	return ret, nil
}

// SignableHash computes the final domain-separated digest for the document.
// Any field-encoding failure anywhere in the recursive descent aborts the
// whole computation; no partial hash is ever returned
func (td *TypedData) SignableHash(version Version) (keccak.Hash256, error) {
	signableBytes, err := td.SignableBytes(version)
	if err != nil {
		return keccak.Hash256{}, err
	}
	return keccak.Sum256(signableBytes), nil
}
