// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mlkem

import (
	"bytes"
	"testing"
)

// TestDispatchRoundTrip exercises the fixed-buffer keypair/encapsulate
// /decapsulate surface, across every parameter set.
func TestDispatchRoundTrip(t *testing.T) {
	for _, v := range allVariants {
		t.Run(v.String(), func(t *testing.T) {
			ekSize, err := EncapsulationKeySize(v)
			if err != nil {
				t.Fatal(err)
			}
			skSize, err := DecapsulationKeySize(v)
			if err != nil {
				t.Fatal(err)
			}
			ctSize, err := CiphertextSize(v)
			if err != nil {
				t.Fatal(err)
			}

			pk := make([]byte, ekSize)
			sk := make([]byte, skSize)
			if err := Keypair(v, pk, sk); err != nil {
				t.Fatal(err)
			}

			ct := make([]byte, ctSize)
			ss := make([]byte, SharedKeySize)
			if err := EncapsulateInto(v, ct, ss, pk); err != nil {
				t.Fatal(err)
			}

			ss2 := make([]byte, SharedKeySize)
			if err := DecapsulateInto(v, ss2, ct, sk); err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(ss, ss2) {
				t.Fatal("dispatch round trip produced different shared secrets")
			}
		})
	}
}

// TestDispatchUnknownTag checks that an unrecognized algorithm tag is
// rejected outright by every dispatch entry point, never silently
// defaulting to MLKEM768.
func TestDispatchUnknownTag(t *testing.T) {
	bogus := Variant(0)

	// Correctly sized (for MLKEM768) buffers, so only the tag check
	// can be what rejects these calls.
	ekSize, err := EncapsulationKeySize(MLKEM768)
	if err != nil {
		t.Fatal(err)
	}
	skSize, err := DecapsulationKeySize(MLKEM768)
	if err != nil {
		t.Fatal(err)
	}
	ctSize, err := CiphertextSize(MLKEM768)
	if err != nil {
		t.Fatal(err)
	}

	if err := Keypair(bogus, make([]byte, ekSize), make([]byte, skSize)); err == nil {
		t.Error("expected error for unrecognized tag in Keypair")
	}
	if err := EncapsulateInto(bogus, make([]byte, ctSize), make([]byte, SharedKeySize), make([]byte, ekSize)); err == nil {
		t.Error("expected error for unrecognized tag in EncapsulateInto")
	}
	if err := DecapsulateInto(bogus, make([]byte, SharedKeySize), make([]byte, ctSize), make([]byte, skSize)); err == nil {
		t.Error("expected error for unrecognized tag in DecapsulateInto")
	}
}

// TestDispatchBadBufferSizes checks the buffer-oriented entry points
// validate caller-supplied buffer lengths before doing any work.
func TestDispatchBadBufferSizes(t *testing.T) {
	ekSize, err := EncapsulationKeySize(MLKEM768)
	if err != nil {
		t.Fatal(err)
	}
	skSize, err := DecapsulationKeySize(MLKEM768)
	if err != nil {
		t.Fatal(err)
	}

	if err := Keypair(MLKEM768, make([]byte, ekSize-1), make([]byte, skSize)); err == nil {
		t.Error("expected error for short pk buffer")
	}
	if err := Keypair(MLKEM768, make([]byte, ekSize), make([]byte, skSize-1)); err == nil {
		t.Error("expected error for short sk buffer")
	}

	pk := make([]byte, ekSize)
	sk := make([]byte, skSize)
	if err := Keypair(MLKEM768, pk, sk); err != nil {
		t.Fatal(err)
	}

	ctSize, err := CiphertextSize(MLKEM768)
	if err != nil {
		t.Fatal(err)
	}
	if err := EncapsulateInto(MLKEM768, make([]byte, ctSize-1), make([]byte, SharedKeySize), pk); err == nil {
		t.Error("expected error for short ciphertext buffer")
	}
	if err := EncapsulateInto(MLKEM768, make([]byte, ctSize), make([]byte, SharedKeySize-1), pk); err == nil {
		t.Error("expected error for short shared-secret buffer")
	}
}
