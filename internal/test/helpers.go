package test

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/blinklabs-io/typeddata/keccak"
)

// DecodeHexString is a helper function for tests that decodes hex strings. It doesn't return
// an error value, which makes it usable inline.
func DecodeHexString(hexData string) []byte {
	// Strip off any leading/trailing whitespace in hex string
	hexData = strings.TrimSpace(hexData)
	hexData = strings.TrimPrefix(hexData, "0x")
	decoded, err := hex.DecodeString(hexData)
	if err != nil {
		panic(fmt.Sprintf("error decoding hex: %s", err))
	}
	return decoded
}

// DecodeHash256 is a helper function for tests that decodes a hex string into
// a 32-byte hash, panicking on malformed or wrong-length input
func DecodeHash256(hexData string) keccak.Hash256 {
	decoded := DecodeHexString(hexData)
	if len(decoded) != keccak.Hash256Size {
		panic(fmt.Sprintf("expected %d bytes, got %d", keccak.Hash256Size, len(decoded)))
	}
	return keccak.NewHash256(decoded)
}
