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

	"github.com/stretchr/testify/assert"
)

func TestParseBig256(t *testing.T) {
	testDefs := []struct {
		input          string
		expectedValue  string
		expectedFailed bool
	}{
		{input: "", expectedValue: "0"},
		{input: "0", expectedValue: "0"},
		{input: "12345", expectedValue: "12345"},
		{input: "-5", expectedValue: "-5"},
		{input: "0xff", expectedValue: "255"},
		{input: "0Xff", expectedValue: "255"},
		{input: "0x", expectedFailed: true},
		{input: "abc", expectedFailed: true},
		{input: "12.5", expectedFailed: true},
		{
			// One bit past 256
			input:          "0x10000000000000000000000000000000000000000000000000000000000000000",
			expectedFailed: true,
		},
	}
	for _, testDef := range testDefs {
		val, ok := ParseBig256(testDef.input)
		if testDef.expectedFailed {
			assert.False(t, ok, "input %q", testDef.input)
			continue
		}
		assert.True(t, ok, "input %q", testDef.input)
		assert.Equal(t, testDef.expectedValue, val.String())
	}
}

func TestHexOrDecimal256Text(t *testing.T) {
	var val HexOrDecimal256
	assert.NoError(t, val.UnmarshalText([]byte("255")))
	assert.Equal(t, "255", val.String())
	encoded, err := val.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "0xff", string(encoded))
	assert.Error(t, val.UnmarshalText([]byte("nope")))
}
