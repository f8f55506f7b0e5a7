// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mlkem

import "golang.org/x/crypto/sha3"

// xofBlockBytes is the SHAKE128 rate in bytes (FIPS 203, Section 4.2.2).
const xofBlockBytes = 168

// xof128 is the SHAKE128 absorb/squeeze state used for rejection
// sampling the public matrix A (FIPS 203, Section 4.2.2's XOF). It
// moves through init (newXOF128), absorbed (absorb), squeezing
// (squeezeBlock, repeatable), and closed (close). The underlying
// golang.org/x/crypto/sha3 ShakeHash needs no explicit release, so
// close is a no-op provided for symmetry with that state machine.
type xof128 struct {
	h sha3.ShakeHash
}

func newXOF128() *xof128 {
	return &xof128{h: sha3.NewShake128()}
}

// absorb writes seed || x || y into the XOF state. Transposed matrix
// generation passes (x, y) = (j, i); non-transposed passes (i, j).
func (x *xof128) absorb(seed *[symBytes]byte, a, b byte) {
	x.h.Write(seed[:])
	x.h.Write([]byte{a, b})
}

// squeezeBlock returns the next xofBlockBytes squeezed bytes. It may
// be called repeatedly; each call advances the sponge state.
func (x *xof128) squeezeBlock() []byte {
	out := make([]byte, xofBlockBytes)
	x.h.Read(out)
	return out
}

func (x *xof128) close() {}

// sha3Sum256 computes SHA3-256(in).
func sha3Sum256(in []byte) [32]byte {
	return sha3.Sum256(in)
}

// sha3Sum512 computes SHA3-512(in).
func sha3Sum512(in []byte) [64]byte {
	return sha3.Sum512(in)
}

// shake256Sum computes SHAKE256 over the concatenation of every
// argument in order, squeezing outLen bytes. This is the variadic
// multi-input absorb that PRF/J (FIPS 203, Section 4.1) and the
// implicit-rejection derivation (Section 6.3) both build on.
func shake256Sum(outLen int, parts ...[]byte) []byte {
	h := sha3.NewShake256()
	for _, p := range parts {
		h.Write(p)
	}
	out := make([]byte, outLen)
	h.Read(out)
	return out
}
