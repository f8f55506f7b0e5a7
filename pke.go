// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mlkem

// This file implements the K-PKE public-key encryption scheme
// underlying ML-KEM, FIPS 203, Section 5. It is never exposed
// directly: the FO transform in mlkem.go is the only caller, since the
// K-PKE scheme alone is malleable and must never be used as a KEM on
// its own (FIPS 203, Section 1, Section 6).

// pkeKeyGen derives an IND-CPA key pair from a 32-byte seed d and the
// parameter set p. Returns the packed encryption key (t̂ ‖ ρ) and the
// packed decryption key (ŝ).
func pkeKeyGen(p *params, d *[symBytes]byte) (ek, dk []byte) {
	g := sha3Sum512(append(append([]byte{}, d[:]...), byte(p.k)))
	rho := (*[symBytes]byte)(g[:symBytes])
	sigma := (*[symBytes]byte)(g[symBytes:])

	a := genMatrix(rho, p.k, false)

	sv := newPolyvec(p.k)
	ev := newPolyvec(p.k)
	nonce := byte(0)
	for i := 0; i < p.k; i++ {
		sv[i] = *cbd(p.eta1, prf(p.eta1, sigma, nonce))
		nonce++
	}
	for i := 0; i < p.k; i++ {
		ev[i] = *cbd(p.eta1, prf(p.eta1, sigma, nonce))
		nonce++
	}

	sHat := sv.ntt()
	eHat := ev.ntt()

	tHat := matrixVecMulNTT(a, sHat)
	for i := range tHat {
		tHat[i] = *nttElementToMont(&tHat[i])
	}
	tHat = tHat.addVec(eHat).reduce()

	ek = append(nttVecToBytes(tHat), rho[:]...)
	dk = nttVecToBytes(sHat)
	return ek, dk
}

// pkeEncrypt encrypts the 32-byte message m under the packed
// encryption key ek, using coins as the CBD randomness source, and
// returns the packed ciphertext (polyvec_compress(u) ‖ poly_compress(v)).
func pkeEncrypt(p *params, ek []byte, m *[symBytes]byte, coins *[symBytes]byte) ([]byte, error) {
	tHat, rho, err := unpackEncryptionKey(p, ek)
	if err != nil {
		return nil, err
	}
	at := genMatrix(rho, p.k, true)

	rv := newPolyvec(p.k)
	e1v := newPolyvec(p.k)
	nonce := byte(0)
	for i := 0; i < p.k; i++ {
		rv[i] = *cbd(p.eta1, prf(p.eta1, coins, nonce))
		nonce++
	}
	for i := 0; i < p.k; i++ {
		e1v[i] = *cbd(p.eta2, prf(p.eta2, coins, nonce))
		nonce++
	}
	e2 := *cbd(p.eta2, prf(p.eta2, coins, nonce))

	rHat := rv.ntt()

	uDeficient := matrixVecMulNTT(at, rHat)
	u := uDeficient.invNTT().add(e1v).reduce()

	vDeficient := basemulAccMontgomery(tHat, rHat)
	vPlain := invNTT(vDeficient)
	muPoly := polyFromMsg(m)
	v := polyReduce(polyAdd(polyAdd(vPlain, &e2), muPoly))

	ct := polyvecPackCompressed(u, uint(p.du))
	ct = append(ct, polyPackCompressed(polyCompress(v, uint(p.dv)), uint(p.dv))...)
	return ct, nil
}

// pkeDecrypt decrypts the packed ciphertext ct with the packed
// decryption key dk, recovering the 32-byte message.
func pkeDecrypt(p *params, dk, ct []byte) (*[symBytes]byte, error) {
	sHat, err := unpackDecryptionKey(p, dk)
	if err != nil {
		return nil, err
	}
	u, v, err := unpackCiphertext(p, ct)
	if err != nil {
		return nil, err
	}

	uHat := u.ntt()
	mpDeficient := basemulAccMontgomery(sHat, uHat)
	mpPlain := invNTT(mpDeficient)

	mPoly := polyReduce(polySub(v, mpPlain))
	return polyToMsg(mPoly), nil
}

func unpackEncryptionKey(p *params, ek []byte) (nttVec, *[symBytes]byte, error) {
	if len(ek) != p.encryptionKeySize() {
		return nil, nil, errInvalidEncapsulationKey
	}
	tHat, err := nttVecFromBytes(ek[:p.polyvecBytes()], p.k)
	if err != nil {
		return nil, nil, err
	}
	rho := (*[symBytes]byte)(ek[p.polyvecBytes():])
	return tHat, rho, nil
}

func unpackDecryptionKey(p *params, dk []byte) (nttVec, error) {
	if len(dk) != p.decryptionKeySize() {
		return nil, errInvalidDecapsulationKey
	}
	return nttVecFromBytes(dk, p.k)
}

func unpackCiphertext(p *params, ct []byte) (polyvec, *ringElement, error) {
	if len(ct) != p.k*32*p.du+32*p.dv {
		return nil, nil, errInvalidCiphertext
	}
	uBytes := p.k * 32 * p.du
	u := polyvecUnpackCompressed(ct[:uBytes], p.k, uint(p.du))
	v := polyDecompress(polyUnpackCompressed(ct[uBytes:], uint(p.dv)), uint(p.dv))
	return u, v, nil
}
