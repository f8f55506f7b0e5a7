// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mlkem

import "crypto/subtle"

// ctNotEqual compares a and b (of equal length) without branching on
// their contents, returning 1 if they differ and 0 if they match. Used
// to compare the re-encrypted ciphertext against the original in
// decapsulation's Fujisaki-Okamoto check (FIPS 203, Section 6.3).
func ctNotEqual(a, b []byte) int {
	return 1 - subtle.ConstantTimeCompare(a, b)
}

// ctSelect overwrites dst with src when mask is 1, and leaves dst
// unchanged when mask is 0, without branching on mask. This implements
// the constant-time select FIPS 203, Section 6.3 requires for the
// implicit-rejection shared secret selection: dst starts as the real
// session key and is
// replaced with the rejection key when mask (the ciphertext-mismatch
// flag from ctNotEqual) is 1.
func ctSelect(dst, src []byte, mask int) {
	subtle.ConstantTimeCopy(mask, dst, src)
}
