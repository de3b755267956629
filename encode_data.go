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
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math/big"
	"regexp"
	"strconv"
	"strings"

	"github.com/blinklabs-io/typeddata/abi"
	"github.com/blinklabs-io/typeddata/keccak"
)

// maxEncodeDepth bounds struct and array recursion. Schemas are expected to
// be acyclic, but a cyclic schema without base-case primitive fields would
// otherwise recurse indefinitely
const maxEncodeDepth = 64

var referenceTypeRegexp = regexp.MustCompile(`^[A-Z]\w*$`)

// encodeStruct encodes a struct value as its type-hash word followed by one
// encoded word per field, packed and digested to a single hash
func (td *TypedData) encodeStruct(
	typeName string,
	data map[string]any,
	depth int,
	version Version,
) (keccak.Hash256, error) {
	if depth > maxEncodeDepth {
		return keccak.Hash256{}, MaxDepthExceededError{Depth: depth}
	}
	typeHash := td.TypeHash(typeName)
	values := []abi.Value{abi.NewWord(typeHash.Bytes())}
	for _, field := range td.Types[typeName] {
		fieldValue, err := td.encodeField(
			field.Name,
			field.Type,
			data[field.Name],
			depth,
			version,
		)
		if err != nil {
			return keccak.Hash256{}, err
		}
		if fieldValue == nil {
			if version == VersionLegacy {
				// The legacy encoding silently omits fields that match no
				// encodable type
				continue
			}
			return keccak.Hash256{}, InvalidArgumentTypeError{
				Field: field.Name,
				Type:  field.Type,
			}
		}
		values = append(values, *fieldValue)
	}
	return keccak.Sum256(abi.Pack(values)), nil
}

// encodeField converts one schema-typed field value into a single encoded
// word. A nil return with nil error means the field type matched nothing
// encodable; the caller applies the version-specific policy
func (td *TypedData) encodeField(
	fieldName string,
	fieldType string,
	value any,
	depth int,
	version Version,
) (*abi.Value, error) {
	if depth > maxEncodeDepth {
		return nil, MaxDepthExceededError{Depth: depth}
	}
	// Custom types take precedence over array and primitive forms
	if _, ok := td.Types[fieldType]; ok {
		if value == nil {
			// An absent nested struct encodes as a literal zero word, not
			// the hash of an empty struct
			emptyValue := abi.NewWord(nil)
			return &emptyValue, nil
		}
		obj, err := toObject(value)
		if err != nil {
			return nil, InvalidArgumentTypeError{
				Field: fieldName,
				Type:  fieldType,
				Err:   err,
			}
		}
		structHash, err := td.encodeStruct(fieldType, obj, depth+1, version)
		if err != nil {
			return nil, err
		}
		ret := abi.NewWord(structHash.Bytes())
		return &ret, nil
	}
	if strings.HasSuffix(fieldType, "]") {
		if version == VersionLegacy {
			return nil, ArrayNotSupportedError{
				Field: fieldName,
				Type:  fieldType,
			}
		}
		elemType, err := splitArrayType(fieldType)
		if err != nil {
			return nil, InvalidArgumentTypeError{
				Field: fieldName,
				Type:  fieldType,
				Err:   err,
			}
		}
		items, err := toArray(value)
		if err != nil {
			return nil, InvalidArgumentTypeError{
				Field: fieldName,
				Type:  fieldType,
				Err:   err,
			}
		}
		values := make([]abi.Value, 0, len(items))
		for _, item := range items {
			itemValue, err := td.encodeField(
				fieldName,
				elemType,
				item,
				depth+1,
				version,
			)
			if err != nil {
				return nil, err
			}
			if itemValue == nil {
				return nil, InvalidArgumentTypeError{
					Field: fieldName,
					Type:  elemType,
				}
			}
			values = append(values, *itemValue)
		}
		arrayHash := keccak.Sum256(abi.Pack(values))
		ret := abi.NewWord(arrayHash.Bytes())
		return &ret, nil
	}
	return td.encodePrimitive(fieldName, fieldType, value)
}

func (td *TypedData) encodePrimitive(
	fieldName string,
	fieldType string,
	value any,
) (*abi.Value, error) {
	if fieldType == "string" || fieldType == "bytes" {
		strValue, err := toString(value)
		if err != nil {
			return nil, InvalidArgumentTypeError{
				Field: fieldName,
				Type:  fieldType,
				Err:   err,
			}
		}
		// Dynamic content is pre-hashed to a single word
		contentHash := keccak.Sum256([]byte(strValue))
		ret := abi.NewWord(contentHash.Bytes())
		return &ret, nil
	}
	if fieldType == "bool" {
		boolValue, err := toBool(value)
		if err != nil {
			return nil, InvalidArgumentTypeError{
				Field: fieldName,
				Type:  fieldType,
				Err:   err,
			}
		}
		ret := abi.NewBool(boolValue)
		return &ret, nil
	}
	if fieldType == "address" {
		strValue, err := toString(value)
		if err != nil {
			return nil, InvalidArgumentTypeError{
				Field: fieldName,
				Type:  fieldType,
				Err:   err,
			}
		}
		ret, err := abi.NewAddress(strValue)
		if err != nil {
			return nil, err
		}
		return &ret, nil
	}
	if strings.HasPrefix(fieldType, "bytes") {
		if size, ok := parseBytesSize(fieldType); ok {
			data, err := toBytes(fieldType, value)
			if err != nil {
				return nil, err
			}
			ret, err := abi.NewBytes(data, size)
			if err != nil {
				return nil, err
			}
			return &ret, nil
		}
	}
	if strings.HasPrefix(fieldType, "uint") {
		if size, ok := parseIntSize(fieldType, "uint"); ok {
			intValue, err := parseInteger(fieldName, fieldType, value)
			if err != nil {
				return nil, err
			}
			ret, err := abi.NewUint(intValue, size)
			if err != nil {
				return nil, err
			}
			return &ret, nil
		}
	}
	if strings.HasPrefix(fieldType, "int") {
		if size, ok := parseIntSize(fieldType, "int"); ok {
			intValue, err := parseInteger(fieldName, fieldType, value)
			if err != nil {
				return nil, err
			}
			ret, err := abi.NewInt(intValue, size)
			if err != nil {
				return nil, err
			}
			return &ret, nil
		}
	}
	if referenceTypeRegexp.MatchString(fieldType) {
		return nil, UnresolvedTypeError{Field: fieldName, Type: fieldType}
	}
	return nil, nil
}

// splitArrayType strips the trailing bracket pair from an array type token,
// returning the element type. A fixed-size literal inside the brackets is
// parsed for validity but the size is not enforced against the actual
// element count, matching the reference behavior
func splitArrayType(fieldType string) (string, error) {
	openIdx := strings.LastIndex(fieldType, "[")
	if openIdx < 1 || !strings.HasSuffix(fieldType, "]") {
		return "", fmt.Errorf("malformed array type %q", fieldType)
	}
	sizeStr := fieldType[openIdx+1 : len(fieldType)-1]
	if sizeStr != "" {
		if _, err := strconv.Atoi(sizeStr); err != nil {
			return "", fmt.Errorf(
				"malformed array size %q in type %q",
				sizeStr,
				fieldType,
			)
		}
	}
	return fieldType[:openIdx], nil
}

// parseIntSize parses the bit width from a uintN/intN token. Only widths
// that are multiples of 8 in [8, 256] match; anything else is treated as
// not a primitive at all
func parseIntSize(fieldType string, prefix string) (uint, bool) {
	sizeStr := strings.TrimPrefix(fieldType, prefix)
	if sizeStr == "" {
		return 0, false
	}
	size, err := strconv.Atoi(sizeStr)
	if err != nil || size < 8 || size > 256 || size%8 != 0 {
		return 0, false
	}
	return uint(size), true
}

// parseBytesSize parses the width from a bytesN token, valid for N in 1..32
func parseBytesSize(fieldType string) (uint, bool) {
	sizeStr := strings.TrimPrefix(fieldType, "bytes")
	if sizeStr == "" {
		return 0, false
	}
	size, err := strconv.Atoi(sizeStr)
	if err != nil || size < 1 || size > abi.WordSize {
		return 0, false
	}
	return uint(size), true
}

func toObject(value any) (map[string]any, error) {
	switch v := value.(type) {
	case map[string]any:
		return v, nil
	case map[any]any:
		// Generic CBOR decoding produces this map shape
		ret := make(map[string]any, len(v))
		for key, val := range v {
			keyStr, ok := key.(string)
			if !ok {
				return nil, fmt.Errorf("non-string object key %v", key)
			}
			ret[keyStr] = val
		}
		return ret, nil
	default:
		return nil, fmt.Errorf("expected object, got %T", value)
	}
}

func toArray(value any) ([]any, error) {
	if ret, ok := value.([]any); ok {
		return ret, nil
	}
	return nil, fmt.Errorf("expected array, got %T", value)
}

func toString(value any) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	case json.Number:
		return v.String(), nil
	default:
		return "", fmt.Errorf("expected string, got %T", value)
	}
}

func toBool(value any) (bool, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		return strconv.ParseBool(v)
	default:
		return false, fmt.Errorf("expected bool, got %T", value)
	}
}

// toBytes extracts a fixed-size byte-string payload. Hex-prefixed strings
// are decoded as hex; any other string contributes its raw bytes
func toBytes(fieldType string, value any) ([]byte, error) {
	switch v := value.(type) {
	case []byte:
		return v, nil
	case string:
		if strings.HasPrefix(v, "0x") || strings.HasPrefix(v, "0X") {
			decoded, err := hex.DecodeString(v[2:])
			if err != nil {
				return nil, abi.MalformedBytesLiteralError{
					Type: fieldType,
					Err:  err,
				}
			}
			return decoded, nil
		}
		return []byte(v), nil
	default:
		return nil, abi.MalformedBytesLiteralError{
			Type: fieldType,
			Err:  fmt.Errorf("expected bytes, got %T", value),
		}
	}
}

// parseInteger extracts a big integer from the supported value-tree shapes
func parseInteger(fieldName string, fieldType string, value any) (*big.Int, error) {
	var ret *big.Int
	switch v := value.(type) {
	case *big.Int:
		ret = v
	case big.Int:
		ret = &v
	case *HexOrDecimal256:
		ret = v.BigInt()
	case string:
		parsed, ok := ParseBig256(v)
		if !ok {
			return nil, InvalidArgumentTypeError{
				Field: fieldName,
				Type:  fieldType,
				Err:   fmt.Errorf("invalid integer literal %q", v),
			}
		}
		ret = parsed
	case json.Number:
		parsed, ok := new(big.Int).SetString(v.String(), 10)
		if !ok {
			return nil, InvalidArgumentTypeError{
				Field: fieldName,
				Type:  fieldType,
				Err:   fmt.Errorf("invalid integer literal %q", v.String()),
			}
		}
		ret = parsed
	case float64:
		if float64(int64(v)) != v {
			return nil, InvalidArgumentTypeError{
				Field: fieldName,
				Type:  fieldType,
				Err:   fmt.Errorf("non-integral number %v", v),
			}
		}
		ret = big.NewInt(int64(v))
	case int:
		ret = big.NewInt(int64(v))
	case int64:
		ret = big.NewInt(v)
	case uint64:
		ret = new(big.Int).SetUint64(v)
	default:
		return nil, InvalidArgumentTypeError{
			Field: fieldName,
			Type:  fieldType,
			Err:   fmt.Errorf("expected integer, got %T", value),
		}
	}
	return ret, nil
}
