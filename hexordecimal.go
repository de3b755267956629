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
	"encoding/json"
	"fmt"
	"math/big"
	"strings"

	"github.com/fxamacker/cbor/v2"
)

// HexOrDecimal256 is a big integer that accepts either 0x-prefixed
// hexadecimal or plain decimal text. It covers the common wire encodings of
// chain identifiers and large numeric message values
type HexOrDecimal256 big.Int

// NewHexOrDecimal256 creates a HexOrDecimal256 from an int64
func NewHexOrDecimal256(x int64) *HexOrDecimal256 {
	return (*HexOrDecimal256)(big.NewInt(x))
}

// BigInt returns the value as a *big.Int
func (i *HexOrDecimal256) BigInt() *big.Int {
	return (*big.Int)(i)
}

func (i *HexOrDecimal256) String() string {
	return (*big.Int)(i).String()
}

func (i *HexOrDecimal256) UnmarshalText(input []byte) error {
	parsed, ok := ParseBig256(string(input))
	if !ok {
		return fmt.Errorf("invalid hex or decimal integer %q", input)
	}
	*i = HexOrDecimal256(*parsed)
	return nil
}

func (i HexOrDecimal256) MarshalText() ([]byte, error) {
	bigint := big.Int(i)
	return fmt.Appendf(nil, "0x%x", &bigint), nil
}

// UnmarshalJSON accepts both string and bare number forms
func (i *HexOrDecimal256) UnmarshalJSON(input []byte) error {
	if len(input) > 0 && input[0] == '"' {
		var tmpStr string
		if err := json.Unmarshal(input, &tmpStr); err != nil {
			return err
		}
		return i.UnmarshalText([]byte(tmpStr))
	}
	return i.UnmarshalText(input)
}

// UnmarshalCBOR accepts integer, bignum, and text forms
func (i *HexOrDecimal256) UnmarshalCBOR(data []byte) error {
	var tmpValue any
	if err := cbor.Unmarshal(data, &tmpValue); err != nil {
		return err
	}
	switch v := tmpValue.(type) {
	case uint64:
		*i = HexOrDecimal256(*new(big.Int).SetUint64(v))
	case int64:
		*i = HexOrDecimal256(*big.NewInt(v))
	case big.Int:
		*i = HexOrDecimal256(v)
	case string:
		return i.UnmarshalText([]byte(v))
	default:
		return fmt.Errorf("invalid CBOR type %T for integer", tmpValue)
	}
	return nil
}

func (i HexOrDecimal256) MarshalCBOR() ([]byte, error) {
	bigint := big.Int(i)
	return cbor.Marshal(&bigint)
}

// ParseBig256 parses a string as a 256-bit big integer in either 0x-prefixed
// hexadecimal or decimal form. Values wider than 256 bits are rejected
func ParseBig256(s string) (*big.Int, bool) {
	if s == "" {
		return new(big.Int), true
	}
	var bigint *big.Int
	var ok bool
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		bigint, ok = new(big.Int).SetString(s[2:], 16)
	} else {
		bigint, ok = new(big.Int).SetString(s, 10)
	}
	if ok && bigint.BitLen() > 256 {
		return nil, false
	}
	return bigint, ok
}
