// Package refid generates customer-facing reference identifiers for quotes
// and bookings, e.g. "QT-0Zw4Kx9aB3cD5eF7g".
//
// IDs lead with a base62-encoded timestamp so references sort by creation
// time, followed by a crypto/rand suffix. Uniqueness is collision-resistant
// rather than guaranteed; nothing downstream keys on these IDs.
package refid

import (
	cryptorand "crypto/rand"
	"strings"
	"time"
)

const base62Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// randomLength is the length of the random suffix: ~71 bits of entropy,
// plenty for a lead-generation flow.
const randomLength = 12

// New generates a reference ID with the given prefix, e.g. New("QT").
func New(prefix string) string {
	return NewAt(prefix, time.Now())
}

// NewAt generates a reference ID with an explicit timestamp. Exposed for
// tests; production callers use New.
func NewAt(prefix string, t time.Time) string {
	return prefix + "-" + encodeTimestamp(t.Unix()) + randomBase62(randomLength)
}

// encodeTimestamp encodes Unix seconds as a fixed-width 6-character base62
// string. Fixed width keeps IDs lexicographically sortable by time and
// covers timestamps for roughly the next 1800 years.
func encodeTimestamp(seconds int64) string {
	n := seconds
	out := make([]byte, 6)
	for i := 5; i >= 0; i-- {
		out[i] = base62Alphabet[n%62]
		n /= 62
	}
	return string(out)
}

// rejectAbove keeps byte sampling uniform: 248 is the largest multiple of 62
// that fits in a byte, so bytes at or above it are discarded.
const rejectAbove = 248

// randomBase62 generates a uniform random base62 string via rejection
// sampling over crypto/rand bytes.
func randomBase62(length int) string {
	var out strings.Builder
	out.Grow(length)

	buf := make([]byte, length*2)
	for out.Len() < length {
		if _, err := cryptorand.Read(buf); err != nil {
			panic("refid: failed to read random bytes: " + err.Error())
		}
		for _, b := range buf {
			if b >= rejectAbove {
				continue
			}
			out.WriteByte(base62Alphabet[b%62])
			if out.Len() == length {
				break
			}
		}
	}

	return out.String()
}
