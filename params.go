// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mlkem

import "fmt"

// symBytes is the size, in bytes, of seeds, hashes, and the shared
// secret. FIPS 203, Section 2.3.
const symBytes = 32

// polyBytes is the uncompressed byte encoding size of one ring
// element (384 = 256 coefficients · 12 bits / 8).
const polyBytes = 384

// Variant selects an ML-KEM parameter set. The zero value is not a
// valid Variant; use one of the named constants.
type Variant int

const (
	// MLKEM512 is the Category 1 (AES-128-equivalent) parameter set.
	MLKEM512 Variant = iota + 1
	// MLKEM768 is the Category 3 (AES-192-equivalent) parameter set,
	// the NIST-recommended default.
	MLKEM768
	// MLKEM1024 is the Category 5 (AES-256-equivalent) parameter set.
	MLKEM1024
)

func (v Variant) String() string {
	switch v {
	case MLKEM512:
		return "ML-KEM-512"
	case MLKEM768:
		return "ML-KEM-768"
	case MLKEM1024:
		return "ML-KEM-1024"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// params is the immutable, parameter-set-specific record FIPS 203,
// Section 7's table calls for: a runtime value carried through every
// operation instead of three textually re-included copies of the same
// body.
type params struct {
	variant Variant
	k       int // polyvec dimension: 2, 3, or 4
	eta1    int // CBD width for secret/error generation
	eta2    int // CBD width for ciphertext noise, always 2
	du      int // polyvec compression width (bits/coefficient of u)
	dv      int // poly compression width (bits/coefficient of v)
}

func paramsFor(v Variant) (*params, error) {
	switch v {
	case MLKEM512:
		return &params{variant: v, k: 2, eta1: 3, eta2: 2, du: 10, dv: 4}, nil
	case MLKEM768:
		return &params{variant: v, k: 3, eta1: 2, eta2: 2, du: 10, dv: 4}, nil
	case MLKEM1024:
		return &params{variant: v, k: 4, eta1: 2, eta2: 2, du: 11, dv: 5}, nil
	default:
		return nil, ErrInvalidParameter
	}
}

// Byte sizes, FIPS 203, Section 7's parameter table. Each is a pure
// function of K/du/dv.

func (p *params) polyvecBytes() int { return p.k * polyBytes }

func (p *params) encryptionKeySize() int { return p.polyvecBytes() + symBytes }

func (p *params) decryptionKeySize() int { return p.polyvecBytes() }

// EncapsulationKeySize returns the byte length of the public
// encapsulation key for v.
func EncapsulationKeySize(v Variant) (int, error) {
	p, err := paramsFor(v)
	if err != nil {
		return 0, err
	}
	return p.encryptionKeySize(), nil
}

// DecapsulationKeySize returns the byte length of the secret
// decapsulation key for v.
func DecapsulationKeySize(v Variant) (int, error) {
	p, err := paramsFor(v)
	if err != nil {
		return 0, err
	}
	return p.decryptionKeySize() + p.encryptionKeySize() + 2*symBytes, nil
}

// CiphertextSize returns the byte length of a ciphertext for v.
func CiphertextSize(v Variant) (int, error) {
	p, err := paramsFor(v)
	if err != nil {
		return 0, err
	}
	return p.k*32*p.du + 32*p.dv, nil
}

// SharedKeySize is the byte length of a shared secret, fixed across
// all three parameter sets.
const SharedKeySize = symBytes

// SeedSize is the byte length of the deterministic key-generation
// seed (d || z), fixed across all three parameter sets.
const SeedSize = 2 * symBytes
