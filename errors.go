// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mlkem

import "errors"

// The error kinds this package recognizes at its boundary.
//
// Errors from the external crypto/rand or hash/XOF primitives are
// terminal: they can only arise from those primitives failing, never
// from this package's own logic, and are returned verbatim from
// whichever call failed. ErrInvalidParameter covers an unrecognized
// [Variant]. Beyond lengths, the only content check is
// NewDecapsulationKey's comparison of the embedded H(pk) against a
// fresh hash of the embedded encapsulation key (FIPS 203, Section
// 7.2/7.3); any 12-bit polynomial encoding is accepted, and the Fujisaki-Okamoto
// transform's implicit rejection handles a malformed or mutated
// ciphertext without ever surfacing an error.
var (
	// ErrInvalidParameter is returned for an unrecognized Variant.
	ErrInvalidParameter = errors.New("mlkem: invalid parameter set")

	errInvalidEncapsulationKey = errors.New("mlkem: invalid encapsulation key length")
	errInvalidDecapsulationKey = errors.New("mlkem: invalid decapsulation key length")
	errInvalidCiphertext       = errors.New("mlkem: invalid ciphertext length")
	errInvalidSeed             = errors.New("mlkem: invalid seed length")
)
