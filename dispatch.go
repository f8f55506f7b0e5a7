// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mlkem

// This file provides a fixed-buffer dispatch surface over a runtime
// algorithm tag: keypair(algo, pk_out, sk_out), encapsulate(algo,
// ct_out, ss_out, pk_in), decapsulate(algo, ss_out, ct_in, sk_in). It
// is a thin adapter over the allocating API in mlkem.go, for callers
// that own pre-sized buffers (e.g. an S-expression or handle-based
// surface above this package).
//
// An unrecognized algo tag is always rejected outright: this package
// never falls back to MLKEM768. Silent fallback on a typo'd or
// corrupted tag is a footgun with no FIPS 203 basis, and a caller that
// wants that convention can implement it above this boundary.

// Keypair writes a freshly generated key pair for algo into pk and sk,
// which must be exactly [EncapsulationKeySize] and
// [DecapsulationKeySize] bytes for algo.
func Keypair(algo Variant, pk, sk []byte) error {
	p, err := paramsFor(algo)
	if err != nil {
		return err
	}
	if len(pk) != p.encryptionKeySize() {
		return errInvalidEncapsulationKey
	}
	if len(sk) != p.decryptionKeySize()+p.encryptionKeySize()+2*symBytes {
		return errInvalidDecapsulationKey
	}

	dk, err := GenerateKey(algo)
	if err != nil {
		return err
	}
	ek, err := dk.EncapsulationKey()
	if err != nil {
		return err
	}
	copy(pk, ek.Bytes())
	copy(sk, dk.Bytes())
	return nil
}

// EncapsulateInto encapsulates against pk under algo, writing the
// ciphertext into ct and the shared secret into ss. ct and ss must be
// exactly [CiphertextSize] and [SharedKeySize] bytes.
func EncapsulateInto(algo Variant, ct, ss, pk []byte) error {
	p, err := paramsFor(algo)
	if err != nil {
		return err
	}
	if len(ct) != p.k*32*p.du+32*p.dv {
		return errInvalidCiphertext
	}
	if len(ss) != SharedKeySize {
		return errInvalidSeed
	}

	ek, err := NewEncapsulationKey(algo, pk)
	if err != nil {
		return err
	}
	ctOut, ssOut, err := ek.Encapsulate()
	if err != nil {
		return err
	}
	copy(ct, ctOut)
	copy(ss, ssOut)
	return nil
}

// DecapsulateInto recovers the shared secret for ciphertext ct under
// sk and algo, writing it into ss. Per FIPS 203, Section 6.3, a
// ciphertext that was never validly produced does not cause an error
// here: ss is populated with the implicit-rejection secret instead.
func DecapsulateInto(algo Variant, ss, ct, sk []byte) error {
	if len(ss) != SharedKeySize {
		return errInvalidSeed
	}

	dk, err := NewDecapsulationKey(algo, sk)
	if err != nil {
		return err
	}
	ssOut, err := Decapsulate(dk, ct)
	if err != nil {
		return err
	}
	copy(ss, ssOut)
	return nil
}
