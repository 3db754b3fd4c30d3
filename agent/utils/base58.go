package utils

import (
	"github.com/mr-tron/base58"
)

// VerkeyLen is the length of an ed25519 public key in bytes.
const VerkeyLen = 32

// ValidVerkey tells if s is a base58 encoded ed25519 verkey.
func ValidVerkey(s string) bool {
	key, err := base58.Decode(s)
	return err == nil && len(key) == VerkeyLen
}

// ShortDID returns the DID for a verkey in the way Indy does it: the first
// 16 bytes of the key encoded in base58.
func ShortDID(verkey string) (string, bool) {
	key, err := base58.Decode(verkey)
	if err != nil || len(key) != VerkeyLen {
		return "", false
	}
	return base58.Encode(key[:16]), true
}
