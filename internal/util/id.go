package util

import (
	"crypto/md5"
	"encoding/hex"
	"time"
)

// DeriveID hashes seed together with the current wall clock. Not
// collision-resistant under rapid repeated calls with the same seed; kept
// for wire compatibility with identifiers already held by clients.
func DeriveID(seed string) string {
	sum := md5.Sum([]byte(seed + time.Now().Format(time.RFC3339Nano)))
	return hex.EncodeToString(sum[:])
}
