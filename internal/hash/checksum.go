// Package hash computes the checksums that protect framed payloads.
package hash

import "github.com/cespare/xxhash/v2"

// Size is the encoded size of a checksum in bytes.
const Size = 8

// Checksum computes the xxHash64 of data.
func Checksum(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// ChecksumParts computes the xxHash64 of the concatenation of parts without
// joining them.
func ChecksumParts(parts ...[]byte) uint64 {
	d := xxhash.New()
	for _, p := range parts {
		_, _ = d.Write(p)
	}

	return d.Sum64()
}
