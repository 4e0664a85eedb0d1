// File: pool/sizeclass.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import "math/bits"

const (
	// NumBuckets is the number of size classes, lengths 16 through 1<<30.
	NumBuckets = 27

	// MinClassLength is the length of size class 0.
	MinClassLength = 16

	// MaxClassLength is the length of the largest pooled size class.
	MaxClassLength = MinClassLength << (NumBuckets - 1)
)

// SelectBucket returns the size class index for a requested length.
// Lengths <= 0 and lengths above MaxClassLength map outside [0, NumBuckets).
func SelectBucket(length int) int {
	// (length-1)|15 clamps everything up to 16 onto class 0; zero and
	// negatives wrap to the top of uint and land far out of range.
	return bits.Len(uint(length-1)|(MinClassLength-1)) - 4
}

// ClassLength returns the canonical buffer length of size class id.
func ClassLength(id int) int {
	return MinClassLength << id
}

// validClass reports whether id addresses a bucket.
func validClass(id int) bool {
	return uint(id) < NumBuckets
}
