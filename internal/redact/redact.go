// Package redact masks secret values in rendered output. Each occurrence
// of a secret is replaced with a salted hash token, so equal secrets stay
// correlatable across a document without being readable.
package redact

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
)

// Bytes replaces every occurrence of each secret in data with its hash
// token. Unmatched data is returned unchanged without copying.
func Bytes(data []byte, secrets []string, salt string) []byte {
	if len(secrets) == 0 || len(data) == 0 {
		return data
	}

	var out []byte
	changed := false

	for _, secret := range secrets {
		if secret == "" {
			continue
		}
		needle := []byte(secret)

		if !bytes.Contains(data, needle) {
			continue
		}
		if !changed {
			out = make([]byte, len(data))
			copy(out, data)
			changed = true
		}

		out = bytes.ReplaceAll(out, needle, token(secret, salt))
	}
	if changed {
		return out
	}
	return data
}

// String applies Bytes to a string.
func String(data string, secrets []string, salt string) string {
	return string(Bytes([]byte(data), secrets, salt))
}

func token(secret, salt string) []byte {
	sum := sha256.Sum256([]byte(salt + secret))
	hex := hex.EncodeToString(sum[:8])
	return []byte("[S256:" + hex + "]")
}
