// Package elgamal implements additively homomorphic (exponential) ElGamal
// encryption over a prime-order group, and a commitment scheme built on the
// same ciphertext algebra: a committer publishes Commitment(y, (rG, mG+rY))
// and keeps Open(r, m) secret until verification time.
//
// The group arithmetic is supplied by the group package; any of its
// adapters can back the scheme.
package elgamal

import (
	"fmt"
	"io"

	"github.com/commitlab/go-elgamal/group"
)

// DecryptionKey holds the secret scalar x of an ElGamal key pair. It is the
// trust root of the scheme: it has no serialization surface and should not
// be copied.
type DecryptionKey struct {
	g group.Group
	x group.Scalar
}

// GenerateDecryptionKey samples a secret key uniformly at random from the
// scalar field. A failure of the randomness source is returned as is.
func GenerateDecryptionKey(g group.Group, rd io.Reader) (*DecryptionKey, error) {
	x, err := g.RandomScalar(rd)
	if err != nil {
		return nil, fmt.Errorf("generating decryption key: %w", err)
	}
	return &DecryptionKey{g: g, x: x}, nil
}

// EncryptionKey derives the public key y = xG.
func (dk *DecryptionKey) EncryptionKey() *EncryptionKey {
	return &EncryptionKey{
		g: dk.g,
		y: dk.g.Element().BaseScale(dk.x),
	}
}

// Decrypt recovers the message element of a ciphertext produced under this
// key: M = C2 - x·C1. There is no error path: a ciphertext produced under a
// different key decrypts to a valid-looking but unrelated element. ElGamal
// does not authenticate which key produced a ciphertext; that binding is an
// outer-protocol concern.
func (dk *DecryptionKey) Decrypt(ct *Ciphertext) group.Element {
	mask := dk.g.Element().Scale(ct.C1, dk.x)
	return dk.g.Element().Subtract(ct.C2, mask)
}

// EncryptionKey wraps the public element y = xG. For commitments, y may
// also be an agreed-upon base element with no known decryption key.
type EncryptionKey struct {
	g group.Group
	y group.Element
}

// NewEncryptionKey wraps an existing public element as an encryption key.
func NewEncryptionKey(g group.Group, y group.Element) *EncryptionKey {
	return &EncryptionKey{g: g, y: g.Element().Set(y)}
}

// Group returns the group the key lives in.
func (ek *EncryptionKey) Group() group.Group {
	return ek.g
}

// Element returns the public element y.
func (ek *EncryptionKey) Element() group.Element {
	return ek.g.Element().Set(ek.y)
}

// Encrypt encrypts a group element under y with fresh randomness from rd.
func (ek *EncryptionKey) Encrypt(message group.Element, rd io.Reader) (*Ciphertext, error) {
	r, err := ek.g.RandomScalar(rd)
	if err != nil {
		return nil, fmt.Errorf("encrypting: %w", err)
	}
	return ek.EncryptWith(message, r), nil
}

// EncryptWith encrypts deterministically with the given randomness:
// (rG, M + rY). The same r must never be used for two different messages
// under the same key; doing so exposes the relation between the plaintexts.
func (ek *EncryptionKey) EncryptWith(message group.Element, r group.Scalar) *Ciphertext {
	c1 := ek.g.Element().BaseScale(r)
	mask := ek.g.Element().Scale(ek.y, r)
	c2 := ek.g.Element().Add(message, mask)
	return &Ciphertext{C1: c1, C2: c2}
}

// Rerandomise produces a ciphertext that decrypts to the same message but
// is computationally unlinkable to ct. The input is left untouched.
func (ek *EncryptionKey) Rerandomise(ct *Ciphertext, rd io.Reader) (*Ciphertext, error) {
	r, err := ek.g.RandomScalar(rd)
	if err != nil {
		return nil, fmt.Errorf("rerandomising: %w", err)
	}
	return ek.RerandomiseWith(ct, r), nil
}

// RerandomiseWith re-blinds ct with the given randomness by homomorphically
// adding an encryption of the identity element.
func (ek *EncryptionKey) RerandomiseWith(ct *Ciphertext, r group.Scalar) *Ciphertext {
	blind := ek.EncryptWith(ek.g.Identity(), r)
	return NewCiphertext(ek.g).Add(ct, blind)
}
