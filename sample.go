// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mlkem

// prf derives 64·eta pseudorandom bytes from a 32-byte seed and a
// single-byte nonce, for use as the input to [cbd]. FIPS 203,
// Section 4.1.
func prf(eta int, seed *[symBytes]byte, nonce byte) []byte {
	return shake256Sum(64*eta, seed[:], []byte{nonce})
}

// cbd samples a polynomial from the centered binomial distribution of
// width eta, consuming 64·eta bytes of pseudorandomness: each
// coefficient is the difference of two sums of eta uniform bits, a
// value in [-eta, eta] represented canonically mod q. No branch here
// depends on the sampled bits themselves, only on their bit position,
// so this is constant-time in the secret seed. FIPS 203, Section 4.2.2
// (SamplePolyCBD).
func cbd(eta int, buf []byte) *ringElement {
	var r ringElement
	bit := func(i int) fieldElement {
		return fieldElement((buf[i/8] >> (i % 8)) & 1)
	}
	for i := 0; i < n; i++ {
		var a, b fieldElement
		base := 2 * i * eta
		for j := 0; j < eta; j++ {
			a += bit(base + j)
			b += bit(base + eta + j)
		}
		r[i] = toCanonical(a - b)
	}
	return &r
}

// sampleNTT expands a 32-byte seed and two index bytes into a uniform
// element of R_q already in NTT domain, by rejection-sampling SHAKE128
// output three bytes at a time into two 12-bit candidates and keeping
// those below q. FIPS 203, Section 4.2.2 (SampleNTT).
//
// The loop terminates with probability 1, independent of the seed: each
// 168-byte squeezed block yields 112 candidates, of which on average
// q/4096 ≈ 0.81 (about 91) are accepted, so about three blocks are
// typically needed. This loop's bound is a public count of accepted
// coefficients, never a secret value.
func sampleNTT(seed *[symBytes]byte, x, y byte) *nttElement {
	var r nttElement
	xof := newXOF128()
	defer xof.close()
	xof.absorb(seed, x, y)

	accepted := 0
	for accepted < n {
		block := xof.squeezeBlock()
		for i := 0; i+3 <= len(block) && accepted < n; i += 3 {
			d1 := uint16(block[i]) | uint16(block[i+1]&0x0f)<<8
			d2 := uint16(block[i+1]>>4) | uint16(block[i+2])<<4
			if d1 < q {
				r[accepted] = fieldElement(d1)
				accepted++
			}
			if d2 < q && accepted < n {
				r[accepted] = fieldElement(d2)
				accepted++
			}
		}
	}
	return &r
}

// genMatrix deterministically expands a K×K matrix of NTT-domain ring
// elements from the 32-byte seed rho, never stored persistently and
// recomputed from rho on every call. When transposed is false (key
// generation), matrix[i][j] = sampleNTT(rho, i, j); when true
// (encryption, which needs Aᵀ), matrix[i][j] = sampleNTT(rho, j, i),
// per FIPS 203, Section 5.1/5.2's generation of Â and Âᵀ.
func genMatrix(rho *[symBytes]byte, k int, transposed bool) []nttVec {
	matrix := make([]nttVec, k)
	for i := 0; i < k; i++ {
		matrix[i] = newNTTVec(k)
		for j := 0; j < k; j++ {
			if transposed {
				matrix[i][j] = *sampleNTT(rho, byte(j), byte(i))
			} else {
				matrix[i][j] = *sampleNTT(rho, byte(i), byte(j))
			}
		}
	}
	return matrix
}
