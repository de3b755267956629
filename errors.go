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
	"errors"
	"fmt"
)

// UnresolvedTypeError indicates a field referencing a type that is absent
// from the schema and is not a recognized primitive or array form
type UnresolvedTypeError struct {
	Field string
	Type  string
}

func (e UnresolvedTypeError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("unresolved type %s", e.Type)
	}
	return fmt.Sprintf("unresolved type %s for field %s", e.Type, e.Field)
}

// Sentinel error for unresolved types so callers can use errors.Is
var ErrUnresolvedType = errors.New("unresolved type")

func (UnresolvedTypeError) Is(target error) bool {
	return target == ErrUnresolvedType
}

// ArrayNotSupportedError indicates an array-typed field encountered under
// the legacy encoding version, which has no array support
type ArrayNotSupportedError struct {
	Field string
	Type  string
}

func (e ArrayNotSupportedError) Error() string {
	return fmt.Sprintf(
		"arrays are not supported by the legacy encoding (field %s of type %s)",
		e.Field,
		e.Type,
	)
}

// Sentinel error for legacy-mode array failures so callers can use errors.Is
var ErrArrayNotSupported = errors.New("arrays not supported")

func (ArrayNotSupportedError) Is(target error) bool {
	return target == ErrArrayNotSupported
}

// InvalidArgumentTypeError indicates a field whose value could not be
// encoded against its declared type, or a malformed type token
type InvalidArgumentTypeError struct {
	Field string
	Type  string
	Err   error
}

func (e InvalidArgumentTypeError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf(
			"invalid argument type %s for field %s",
			e.Type,
			e.Field,
		)
	}
	return fmt.Sprintf(
		"invalid argument type %s for field %s: %v",
		e.Type,
		e.Field,
		e.Err,
	)
}

func (e InvalidArgumentTypeError) Unwrap() error { return e.Err }

// Sentinel error for invalid argument types so callers can use errors.Is
var ErrInvalidArgumentType = errors.New("invalid argument type")

func (InvalidArgumentTypeError) Is(target error) bool {
	return target == ErrInvalidArgumentType
}

// MaxDepthExceededError indicates that struct or array recursion exceeded
// the nesting depth limit
type MaxDepthExceededError struct {
	Depth int
}

func (e MaxDepthExceededError) Error() string {
	return fmt.Sprintf("maximum encoding depth exceeded at depth %d", e.Depth)
}

// ErrUnknownVersion indicates an encoding version other than
// VersionLegacy or VersionCurrent
var ErrUnknownVersion = errors.New("unknown encoding version")
