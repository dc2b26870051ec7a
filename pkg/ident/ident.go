// Package ident generates random identifiers in the canonical UUID form.
package ident

import (
	"github.com/google/uuid"
)

// canonicalLen is the length of the 8-4-4-4-12 hex rendering.
const canonicalLen = 36

// New returns a random (version 4) UUID as a lowercase 8-4-4-4-12 string.
// It panics only if the system random source fails.
func New() string {
	return uuid.New().String()
}

// Valid reports whether s is a UUID in canonical 8-4-4-4-12 form.
// Braced, URN and unhyphenated renderings are rejected.
func Valid(s string) bool {
	if len(s) != canonicalLen {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}
