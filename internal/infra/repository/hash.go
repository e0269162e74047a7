package repository

import (
	"encoding/json"
	"fmt"

	"github.com/zeebo/xxh3"
)

// contentHash digests the canonical JSON encoding of a payload.
func contentHash(payload any) (string, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%016x", xxh3.Hash(b)), nil
}
