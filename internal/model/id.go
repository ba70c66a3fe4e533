package model

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"regexp"
	"time"
)

// Document identifiers are 24 hex characters: a 4-byte unix-second prefix
// followed by 8 random bytes. The time prefix keeps freshly created rows
// roughly insertion-ordered when sorted lexicographically.
var idPattern = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

// NewID generates a new document identifier.
func NewID() string {
	var buf [12]byte
	binary.BigEndian.PutUint32(buf[:4], uint32(time.Now().Unix()))
	if _, err := rand.Read(buf[4:]); err != nil {
		// crypto/rand never fails on supported platforms
		panic(err)
	}
	return hex.EncodeToString(buf[:])
}

// ValidID reports whether s is a well-formed document identifier.
// Malformed identifiers are a format error (400), never a lookup miss.
func ValidID(s string) bool {
	return idPattern.MatchString(s)
}
