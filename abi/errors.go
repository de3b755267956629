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

package abi

import (
	"errors"
	"fmt"
)

// ValueOutOfRangeError indicates a numeric value that does not fit the
// declared bit width
type ValueOutOfRangeError struct {
	Type  string
	Value string
}

func (e ValueOutOfRangeError) Error() string {
	return fmt.Sprintf("value %s out of range for type %s", e.Value, e.Type)
}

// Sentinel error for range failures so callers can use errors.Is
var ErrValueOutOfRange = errors.New("value out of range")

func (ValueOutOfRangeError) Is(target error) bool {
	return target == ErrValueOutOfRange
}

// MalformedBytesLiteralError indicates a byte-string literal that could not
// be decoded or exceeds its declared fixed width
type MalformedBytesLiteralError struct {
	Type string
	Err  error
}

func (e MalformedBytesLiteralError) Error() string {
	return fmt.Sprintf("malformed bytes literal for type %s: %v", e.Type, e.Err)
}

func (e MalformedBytesLiteralError) Unwrap() error { return e.Err }

// Sentinel error for bytes literal failures so callers can use errors.Is
var ErrMalformedBytesLiteral = errors.New("malformed bytes literal")

func (MalformedBytesLiteralError) Is(target error) bool {
	return target == ErrMalformedBytesLiteral
}
