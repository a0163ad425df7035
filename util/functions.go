package util

import (
	"crypto/rand"
	"errors"
	"math/big"
	"strings"
)

const base36Chars = "0123456789abcdefghijklmnopqrstuvwxyz"

var ErrInvalidShortID = errors.New("short id must be base36")

// GenerateShortID returns a random lowercase base36 code, used to label
// sessions on printed score sheets.
func GenerateShortID(length int) (string, error) {
	if length <= 0 {
		return "", ErrInvalidShortID
	}
	id := make([]byte, length)
	for i := range id {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(base36Chars))))
		if err != nil {
			return "", err
		}
		id[i] = base36Chars[n.Int64()]
	}
	return string(id), nil
}

// NormalizeShortID lowercases a user supplied code and checks that it only
// uses base36 characters.
func NormalizeShortID(id string) (string, error) {
	id = strings.ToLower(strings.TrimSpace(id))
	if id == "" {
		return "", ErrInvalidShortID
	}
	for _, c := range id {
		if !strings.ContainsRune(base36Chars, c) {
			return "", ErrInvalidShortID
		}
	}
	return id, nil
}
