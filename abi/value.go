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

// Package abi implements the fixed-width value encoding used by the
// typed-data hashing scheme. Every value occupies exactly one 32-byte word:
// numbers, booleans, and addresses are left-padded, fixed-size byte strings
// are left-aligned, and dynamic content is pre-hashed to a full word before
// it reaches this package.
package abi

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"
)

const (
	// WordSize is the encoding granularity of the scheme
	WordSize = 32

	// AddressSize is the length of a raw address payload
	AddressSize = 20
)

// Value is a single encoded 32-byte word ready for packing
type Value struct {
	word [WordSize]byte
}

// Word returns the 32-byte encoded form of the value
func (v Value) Word() [WordSize]byte {
	return v.word
}

// Bytes returns the encoded word as a byte slice
func (v Value) Bytes() []byte {
	return v.word[:]
}

func (v Value) String() string {
	return hex.EncodeToString(v.word[:])
}

// NewWord wraps an already-encoded 32-byte payload, such as a digest of
// dynamic content or a nested struct hash
func NewWord(data []byte) Value {
	v := Value{}
	copy(v.word[:], data)
	return v
}

// NewBool encodes a boolean as a left-padded word
func NewBool(b bool) Value {
	v := Value{}
	if b {
		v.word[WordSize-1] = 0x01
	}
	return v
}

// NewAddress decodes a hex address string (with or without the 0x prefix)
// into a left-padded word
func NewAddress(addr string) (Value, error) {
	trimmed := strings.TrimPrefix(addr, "0x")
	rawAddr, err := hex.DecodeString(trimmed)
	if err != nil {
		return Value{}, MalformedBytesLiteralError{Type: "address", Err: err}
	}
	if len(rawAddr) != AddressSize {
		return Value{}, MalformedBytesLiteralError{
			Type: "address",
			Err: fmt.Errorf(
				"expected %d bytes, got %d",
				AddressSize,
				len(rawAddr),
			),
		}
	}
	v := Value{}
	copy(v.word[WordSize-AddressSize:], rawAddr)
	return v, nil
}

// NewUint encodes an unsigned integer of the given bit size as a left-padded
// big-endian word. The size must already be validated as a multiple of 8 in
// [8, 256]
func NewUint(val *big.Int, size uint) (Value, error) {
	if val.Sign() < 0 || uint(val.BitLen()) > size {
		return Value{}, ValueOutOfRangeError{
			Type:  fmt.Sprintf("uint%d", size),
			Value: val.String(),
		}
	}
	v := Value{}
	val.FillBytes(v.word[:])
	return v, nil
}

// NewInt encodes a signed integer of the given bit size as a two's-complement
// big-endian word
func NewInt(val *big.Int, size uint) (Value, error) {
	maxVal := new(big.Int).Lsh(big.NewInt(1), size-1)
	minVal := new(big.Int).Neg(maxVal)
	maxVal.Sub(maxVal, big.NewInt(1))
	if val.Cmp(minVal) < 0 || val.Cmp(maxVal) > 0 {
		return Value{}, ValueOutOfRangeError{
			Type:  fmt.Sprintf("int%d", size),
			Value: val.String(),
		}
	}
	v := Value{}
	if val.Sign() < 0 {
		// Two's complement within the full word
		tmpVal := new(big.Int).Lsh(big.NewInt(1), WordSize*8)
		tmpVal.Add(tmpVal, val)
		tmpVal.FillBytes(v.word[:])
	} else {
		val.FillBytes(v.word[:])
	}
	return v, nil
}

// NewBytes encodes a fixed-size byte string of the given declared size as a
// left-aligned word. Payloads longer than the declared size are rejected
func NewBytes(data []byte, size uint) (Value, error) {
	typeName := fmt.Sprintf("bytes%d", size)
	if size < 1 || size > WordSize {
		return Value{}, MalformedBytesLiteralError{
			Type: typeName,
			Err:  fmt.Errorf("invalid declared size %d", size),
		}
	}
	if uint(len(data)) > size {
		return Value{}, MalformedBytesLiteralError{
			Type: typeName,
			Err: fmt.Errorf(
				"payload length %d exceeds declared size %d",
				len(data),
				size,
			),
		}
	}
	v := Value{}
	copy(v.word[:], data)
	return v, nil
}
