// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mlkem

import (
	"bytes"
	"testing"
)

// TestDecompressCompress checks the compress/decompress
// round-trip shape, across every bit width this module actually uses.
func TestDecompressCompress(t *testing.T) {
	for _, bits := range []uint{1, 4, 5, 10, 11} {
		for a := uint16(0); a < 1<<bits; a++ {
			f := decompress(a, bits)
			if f >= q {
				t.Fatalf("decompress(%d, %d) = %d >= q", a, bits, f)
			}
			got := compress(f, bits)
			if got != a {
				t.Fatalf("compress(decompress(%d, %d), %d) = %d", a, bits, bits, got)
			}
		}

		for a := fieldElement(0); a < q; a++ {
			c := compress(a, bits)
			if c >= 1<<bits {
				t.Fatalf("compress(%d, %d) = %d >= 2^bits", a, bits, c)
			}
		}
	}
}

// TestByteEncode12RoundTrip checks byteEncode12/byteDecode12 round
// trip exactly for every canonical polynomial this test derives.
func TestByteEncode12RoundTrip(t *testing.T) {
	for tag := 0; tag < 8; tag++ {
		p := testRingElement(byte(tag))
		encoded := byteEncode12(p)
		if len(encoded) != polyBytes {
			t.Fatalf("byteEncode12 produced %d bytes, want %d", len(encoded), polyBytes)
		}
		decoded, err := byteDecode12(encoded)
		if err != nil {
			t.Fatal(err)
		}
		if *decoded != *p {
			t.Fatalf("byteDecode12(byteEncode12(p)) != p for tag %d", tag)
		}
	}
}

// TestByteDecode12BadLength checks the declared length-validation
// error fires for any length other than 384.
func TestByteDecode12BadLength(t *testing.T) {
	if _, err := byteDecode12(make([]byte, polyBytes-1)); err == nil {
		t.Error("expected error for short input")
	}
	if _, err := byteDecode12(make([]byte, polyBytes+1)); err == nil {
		t.Error("expected error for long input")
	}
}

// TestPolyPackCompressedRoundTrip checks the generic bit-packer at
// every width the parameter sets use.
func TestPolyPackCompressedRoundTrip(t *testing.T) {
	for _, d := range []uint{4, 5, 10, 11} {
		c := make([]uint16, n)
		for i := range c {
			c[i] = uint16((i*7 + 3) % (1 << d))
		}
		packed := polyPackCompressed(c, d)
		unpacked := polyUnpackCompressed(packed, d)
		for i := range c {
			if c[i] != unpacked[i] {
				t.Fatalf("d=%d: round trip mismatch at %d: got %d, want %d", d, i, unpacked[i], c[i])
			}
		}
	}
}

// TestPolyMsgRoundTrip checks polyFromMsg/polyToMsg recover the exact
// input message.
func TestPolyMsgRoundTrip(t *testing.T) {
	for tag := byte(0); tag < 8; tag++ {
		var msg [symBytes]byte
		for i := range msg {
			msg[i] = tag ^ byte(i*31)
		}
		p := polyFromMsg(&msg)
		got := polyToMsg(p)
		if !bytes.Equal(got[:], msg[:]) {
			t.Fatalf("polyToMsg(polyFromMsg(msg)) = %x, want %x", got[:], msg[:])
		}
	}
}

// TestPolyCompressDecompressApprox checks that compressing then
// decompressing a message-encoded polynomial still recovers the
// original message: compression is lossy on arbitrary coefficients,
// but ML-KEM relies on it being lossless specifically for the message
// bit (FIPS 203, Section 5).
func TestPolyCompressDecompressApprox(t *testing.T) {
	var msg [symBytes]byte
	for i := range msg {
		msg[i] = byte(i * 17)
	}
	p := polyFromMsg(&msg)
	compressed := polyCompress(p, 1)
	decompressed := polyDecompress(compressed, 1)
	got := polyToMsg(decompressed)
	if !bytes.Equal(got[:], msg[:]) {
		t.Fatalf("message lost across 1-bit compress/decompress: got %x, want %x", got[:], msg[:])
	}
}
