// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mlkem

// zetas holds ζ^BitRev7(k) mod q, for k = 0..127, in Montgomery form,
// where ζ = 17 is the primitive 256th root of unity mod q = 3329
// (FIPS 203, Section 4.3). This is the standard precomputed table for
// the 128 powers of ζ the NTT butterflies consume.
var zetas = [128]fieldElement{
	-1044, -758, -359, -1517, 1493, 1422, 287, 202,
	-171, 622, 1577, 182, 962, -1202, -1474, 1468,
	573, -1325, 264, 383, -829, 1458, -1602, -130,
	-681, 1017, 732, 608, -1542, 411, -205, -1571,
	1223, 652, -552, 1015, -1293, 1491, -282, -1544,
	516, -8, -320, -666, -1618, -1162, 126, 1469,
	-853, -90, -271, 830, 107, -1421, -247, -951,
	-398, 961, -1508, -725, 448, -1065, 677, -1275,
	-1103, 430, 555, 843, -1251, 871, 1550, 105,
	422, 587, 177, -235, -291, -460, 1574, 1653,
	-246, 778, 1159, -147, -777, 1483, -602, 1119,
	-1590, 644, -872, 349, 418, 329, -156, -75,
	817, 1097, 603, 610, 1322, -1285, -1465, 384,
	-1215, -136, 1218, -1335, -874, 220, -1187, -1659,
	-1185, -1530, -1278, 794, -1510, -854, -870, 478,
	-108, -308, 996, 991, 958, -1460, 1522, 1628,
}

// nttElement is a ring element whose 256 coefficients represent the
// image of a [ringElement] under the number-theoretic transform: 128
// degree-1 polynomials over the CRT factors of X^256+1, each pair of
// coefficients interpreted as a0 + a1·X reduced mod (X^2 - ζ) for the
// ζ matching that pair's position.
type nttElement [n]fieldElement

// ntt computes the forward NTT in place, Cooley-Tukey decimation,
// layers of decreasing butterfly length 128, 64, ..., 2. FIPS 203,
// Section 4.3 (NTT).
func ntt(f *ringElement) *nttElement {
	r := (*nttElement)(f)
	k := 1
	for length := 128; length >= 2; length /= 2 {
		for start := 0; start < n; start += 2 * length {
			zeta := zetas[k]
			k++
			for j := start; j < start+length; j++ {
				t := fqmul(zeta, r[j+length])
				r[j+length] = r[j] - t
				r[j] = r[j] + t
			}
		}
	}
	for i := range r {
		r[i] = barrettReduce(r[i])
	}
	return r
}

// invNTT computes the inverse NTT in place, Gentleman-Sande
// decimation, layers of increasing butterfly length 2, 4, ..., 128,
// folding in the final multiplication by f = 1441 = mont^2/128 mod q
// so the result lands in Montgomery form. FIPS 203, Section 4.3
// (NTT^-1).
func invNTT(r *nttElement) *ringElement {
	const invNTTFixup = 1441 // mont^2 * 128^-1 mod q, in Montgomery form
	k := 127
	for length := 2; length <= 128; length *= 2 {
		for start := 0; start < n; start += 2 * length {
			zeta := zetas[k]
			k--
			for j := start; j < start+length; j++ {
				t := r[j]
				r[j] = barrettReduce(t + r[j+length])
				r[j+length] = fqmul(zeta, r[j+length]-t)
			}
		}
	}
	for i := range r {
		r[i] = fqmul(r[i], invNTTFixup)
	}
	return (*ringElement)(r)
}

// basemul computes, for the degree-2 quotient ring Z_q[X]/(X^2-zeta),
// the product (a0+a1X)(b0+b1X) mod (X^2-zeta) = (a0b0+a1b1·zeta) +
// (a0b1+a1b0)X. Both operands and the result are in Montgomery form.
func basemul(a, b [2]fieldElement, zeta fieldElement) [2]fieldElement {
	var r [2]fieldElement
	r[0] = fqmul(a[0], b[0])
	r[0] += fqmul(fqmul(a[1], b[1]), zeta)
	r[1] = fqmul(a[0], b[1])
	r[1] += fqmul(a[1], b[0])
	return r
}

// nttMul computes the pointwise product of two elements in NTT domain:
// 128 independent base multiplications, one per degree-2 CRT factor,
// taken in 64 pairs that use zetas[64+i] and -zetas[64+i] as the two
// factors' defining roots. FIPS 203,
// Section 4.3 (MultiplyNTTs).
func nttMul(a, b *nttElement) *nttElement {
	var r nttElement
	for i := 0; i < 64; i++ {
		zeta := zetas[64+i]
		copy(r[4*i:4*i+2], basemul2(a, b, 4*i, zeta))
		copy(r[4*i+2:4*i+4], basemul2(a, b, 4*i+2, -zeta))
	}
	return &r
}

func basemul2(a, b *nttElement, offset int, zeta fieldElement) []fieldElement {
	r := basemul([2]fieldElement{a[offset], a[offset+1]}, [2]fieldElement{b[offset], b[offset+1]}, zeta)
	return r[:]
}
