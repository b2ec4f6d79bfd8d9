// Copyright (c) 2026 Folio. All rights reserved.

// Package shortid generates the 8-character public ids of articles.
package shortid

import (
	"crypto/rand"
	"math/big"
	"strings"
	"unicode/utf8"
)

const (
	// Alphabet is the 36-symbol set ids are drawn from.
	Alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

	// Length is the fixed id length.
	Length = 8
)

var alphabetSize = big.NewInt(int64(len(Alphabet)))

// New returns a random id of [Length] characters from [Alphabet].
//
// It panics only when the system entropy source fails.
func New() string {
	id := make([]byte, Length)
	for i := range id {
		n, err := rand.Int(rand.Reader, alphabetSize)
		if err != nil {
			panic("shortid: entropy source failed: " + err.Error())
		}
		id[i] = Alphabet[n.Int64()]
	}
	return string(id)
}

// Honored reports whether a caller-supplied id is kept verbatim on create:
// exactly [Length] characters and no '/', so it stays one path segment.
// Characters outside [Alphabet] are accepted.
func Honored(id string) bool {
	return utf8.RuneCountInString(id) == Length && !strings.ContainsRune(id, '/')
}
