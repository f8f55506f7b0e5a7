// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mlkem

import "crypto/rand"

// An EncapsulationKey is the public key used to produce a ciphertext
// and shared secret. It corresponds to FIPS 203, Section 5's K-PKE
// encryption key, packed as t̂ ‖ ρ.
type EncapsulationKey struct {
	variant Variant
	p       *params
	ek      []byte
}

// A DecapsulationKey is the secret key used to recover a shared secret
// from a ciphertext. It includes the embedded encapsulation key, its
// hash, and the implicit-rejection seed z, per FIPS 203, Section 6's
// ML-KEM secret key layout: ŝ ‖ pk ‖ H(pk) ‖ z.
type DecapsulationKey struct {
	variant Variant
	p       *params
	sk      []byte
}

// Variant reports which ML-KEM parameter set ek was built for.
func (ek *EncapsulationKey) Variant() Variant { return ek.variant }

// Bytes returns the encapsulation key's packed byte encoding.
func (ek *EncapsulationKey) Bytes() []byte { return append([]byte(nil), ek.ek...) }

// Variant reports which ML-KEM parameter set dk was built for.
func (dk *DecapsulationKey) Variant() Variant { return dk.variant }

// Bytes returns the decapsulation key as its full packed byte
// encoding (ŝ ‖ pk ‖ H(pk) ‖ z), per FIPS 203, Section 6.
func (dk *DecapsulationKey) Bytes() []byte { return append([]byte(nil), dk.sk...) }

// EncapsulationKey returns the public encapsulation key embedded in dk.
func (dk *DecapsulationKey) EncapsulationKey() (*EncapsulationKey, error) {
	ekBytes := dk.sk[dk.p.decryptionKeySize() : dk.p.decryptionKeySize()+dk.p.encryptionKeySize()]
	return NewEncapsulationKey(dk.variant, ekBytes)
}

// NewEncapsulationKey parses a packed encapsulation key for the given
// variant. No validation beyond length is performed: per FIPS 203,
// Section 7.2, any 12-bit polynomial encoding is accepted.
func NewEncapsulationKey(v Variant, ek []byte) (*EncapsulationKey, error) {
	p, err := paramsFor(v)
	if err != nil {
		return nil, err
	}
	if len(ek) != p.encryptionKeySize() {
		return nil, errInvalidEncapsulationKey
	}
	return &EncapsulationKey{variant: v, p: p, ek: append([]byte(nil), ek...)}, nil
}

// NewDecapsulationKey parses a packed decapsulation key for the given
// variant, validating the embedded H(pk) against a fresh SHA3-256 of
// the embedded encapsulation key (FIPS 203, Section 7.3's input
// check).
func NewDecapsulationKey(v Variant, sk []byte) (*DecapsulationKey, error) {
	p, err := paramsFor(v)
	if err != nil {
		return nil, err
	}
	want := p.decryptionKeySize() + p.encryptionKeySize() + 2*symBytes
	if len(sk) != want {
		return nil, errInvalidDecapsulationKey
	}
	ekOffset := p.decryptionKeySize()
	hOffset := ekOffset + p.encryptionKeySize()
	ekBytes := sk[ekOffset:hOffset]
	h := sk[hOffset : hOffset+symBytes]
	if got := sha3Sum256(ekBytes); !ctEqualArray(got[:], h) {
		return nil, errInvalidDecapsulationKey
	}
	return &DecapsulationKey{variant: v, p: p, sk: append([]byte(nil), sk...)}, nil
}

func ctEqualArray(a, b []byte) bool { return ctNotEqual(a, b) == 0 }

// GenerateKey generates a new decapsulation key for the given variant,
// drawing random bytes from crypto/rand. The decapsulation key must be
// kept secret.
func GenerateKey(v Variant) (*DecapsulationKey, error) {
	p, err := paramsFor(v)
	if err != nil {
		return nil, err
	}
	var d, z [symBytes]byte
	if _, err := rand.Read(d[:]); err != nil {
		return nil, err
	}
	if _, err := rand.Read(z[:]); err != nil {
		return nil, err
	}
	return kemKeyGenDerand(p, &d, &z), nil
}

// NewKeyFromSeed deterministically generates a decapsulation key from
// a 64-byte seed, the concatenation d ‖ z. The seed must be uniformly
// random.
func NewKeyFromSeed(v Variant, seed []byte) (*DecapsulationKey, error) {
	p, err := paramsFor(v)
	if err != nil {
		return nil, err
	}
	if len(seed) != SeedSize {
		return nil, errInvalidSeed
	}
	d := (*[symBytes]byte)(seed[:symBytes])
	z := (*[symBytes]byte)(seed[symBytes:])
	return kemKeyGenDerand(p, d, z), nil
}

// kemKeyGenDerand is the derandomized key-generation core, FIPS 203,
// Section 6.1.
func kemKeyGenDerand(p *params, d, z *[symBytes]byte) *DecapsulationKey {
	ekPKE, dkPKE := pkeKeyGen(p, d)
	h := sha3Sum256(ekPKE)
	sk := make([]byte, 0, p.decryptionKeySize()+p.encryptionKeySize()+2*symBytes)
	sk = append(sk, dkPKE...)
	sk = append(sk, ekPKE...)
	sk = append(sk, h[:]...)
	sk = append(sk, z[:]...)
	return &DecapsulationKey{variant: p.variant, p: p, sk: sk}
}

// Encapsulate generates a shared secret and an associated ciphertext
// under ek, drawing random bytes from crypto/rand. The shared secret
// must be kept secret.
func (ek *EncapsulationKey) Encapsulate() (ciphertext, sharedKey []byte, err error) {
	var m [symBytes]byte
	if _, err := rand.Read(m[:]); err != nil {
		return nil, nil, err
	}
	return kemEncapsDerand(ek.p, ek.ek, &m)
}

// kemEncapsDerand is the derandomized encapsulation core, FIPS 203,
// Section 6.2. m is the pre-hash randomness (what derandomized test
// vectors provide); the "m = SHA3-256(m)" input-hashing step happens
// inside.
func kemEncapsDerand(p *params, ek []byte, m *[symBytes]byte) (ciphertext, sharedKey []byte, err error) {
	mHashArr := sha3Sum256(m[:])
	mHash := &mHashArr
	ekHash := sha3Sum256(ek)
	g := sha3Sum512(append(append([]byte{}, mHash[:]...), ekHash[:]...))
	kBar := g[:symBytes]
	r := (*[symBytes]byte)(g[symBytes:])

	ct, err := pkeEncrypt(p, ek, mHash, r)
	if err != nil {
		return nil, nil, err
	}
	return ct, append([]byte(nil), kBar...), nil
}

// Decapsulate recovers the shared secret associated with ciphertext
// under dk. If the ciphertext does not correspond to a valid
// encapsulation, Decapsulate does not return an error (FIPS 203,
// Section 6.3's implicit rejection): it returns the implicit-rejection
// shared secret, indistinguishable
// in shape from a genuine one, and the caller simply fails whatever
// check relied on the two sides agreeing.
func Decapsulate(dk *DecapsulationKey, ciphertext []byte) (sharedKey []byte, err error) {
	p := dk.p
	ctSize, err := CiphertextSize(dk.variant)
	if err != nil {
		return nil, err
	}
	if len(ciphertext) != ctSize {
		return nil, errInvalidCiphertext
	}

	dkPKE := dk.sk[:p.decryptionKeySize()]
	ekPKE := dk.sk[p.decryptionKeySize() : p.decryptionKeySize()+p.encryptionKeySize()]
	h := dk.sk[p.decryptionKeySize()+p.encryptionKeySize() : p.decryptionKeySize()+p.encryptionKeySize()+symBytes]
	z := dk.sk[p.decryptionKeySize()+p.encryptionKeySize()+symBytes:]

	mPrime, err := pkeDecrypt(p, dkPKE, ciphertext)
	if err != nil {
		return nil, err
	}
	g := sha3Sum512(append(append([]byte{}, mPrime[:]...), h...))
	kBarPrime := g[:symBytes]
	rPrime := (*[symBytes]byte)(g[symBytes:])

	ctPrime, err := pkeEncrypt(p, ekPKE, mPrime, rPrime)
	if err != nil {
		return nil, err
	}

	kRej := shake256Sum(symBytes, z, ciphertext)

	fail := ctNotEqual(ciphertext, ctPrime)
	ss := append([]byte(nil), kBarPrime...)
	ctSelect(ss, kRej, fail)
	return ss, nil
}
