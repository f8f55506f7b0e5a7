// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mlkem

// fieldElement is an element of Z_q, held either in the normal
// representation (canonical, in [0, q)) or, where documented, in
// Montgomery form (x·2^16 mod q). The representation is a property of
// the call site, not of the type.
type fieldElement int16

const (
	q = 3329

	// mont = 2^16 mod q, as a signed int16 representative.
	mont = -1044

	// qinv = q^-1 mod 2^16, used by montgomeryReduce.
	qinv = -3327
)

// montgomeryReduce maps a with |a| < q·2^15 to a value congruent to
// a·2^-16 mod q, in (-q, q). See FIPS 203, Section 4.1.
func montgomeryReduce(a int32) fieldElement {
	t := int16(a) * qinv
	return fieldElement((a - int32(t)*q) >> 16)
}

// barrettReduce maps a to a congruent representative centered around
// zero, in [-(q-1)/2, (q-1)/2]; follow it with toCanonical for [0, q).
func barrettReduce(a fieldElement) fieldElement {
	const barrettConst = 20159 // ⌊2^26/q + 1/2⌋
	t := (int32(barrettConst)*int32(a) + 1<<25) >> 26
	return a - fieldElement(t)*q

}

// fqmul multiplies two field elements and reduces the 32-bit product with
// Montgomery reduction; if one operand carries an implicit factor of
// 2^16 (i.e. is in Montgomery form), the result is in normal form, and
// vice versa.
func fqmul(a, b fieldElement) fieldElement {
	return montgomeryReduce(int32(a) * int32(b))
}

// toMontgomery converts a canonical field element to Montgomery form,
// x·2^16 mod q, via a single Montgomery reduction against 2^32 mod q.
func toMontgomery(a fieldElement) fieldElement {
	const r2ModQ = 1353 // 2^32 mod q
	return fqmul(a, r2ModQ)
}

// toCanonical adds q to a negative representative, producing a value in
// [0, q) for any a with a small negative offset from a reduced value
// (the "centered to positive" step FIPS 203, Section 4.3 requires
// before compression and encoding).
func toCanonical(a fieldElement) fieldElement {
	a += (a >> 15) & q
	return a
}
