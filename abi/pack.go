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

// Pack concatenates the encoded words of the provided values in order. Every
// value is exactly one word, so the result is len(values)*WordSize bytes with
// no separators or additional padding
func Pack(values []Value) []byte {
	ret := make([]byte, 0, len(values)*WordSize)
	for _, val := range values {
		ret = append(ret, val.Bytes()...)
	}
	return ret
}
