// Package group defines the prime-order group and scalar-field contract
// consumed by the ElGamal layer, together with adapters for concrete
// groups: ristretto255, P-256 and P-384 (cloudflare/circl), secp256k1
// (zkrp), a second ristretto implementation (bwesterb/go-ristretto) and
// safe-prime multiplicative groups.
package group

import (
	"encoding"
	"encoding/json"
	"io"
	"math/big"
)

// Scalar represents a field element modulo the group order. Scalars hold
// secret keys, blinding factors and committed messages.
type Scalar interface {
	// Add sets the receiver to X + Y, and returns it.
	Add(X, Y Scalar) Scalar
	// Subtract sets the receiver to X - Y, and returns it.
	Subtract(X, Y Scalar) Scalar
	// Negate sets the receiver to -X, and returns it.
	Negate(X Scalar) Scalar
	// Multiply sets the receiver to X * Y, and returns it.
	Multiply(X, Y Scalar) Scalar
	// Set sets the receiver to X, and returns it.
	Set(X Scalar) Scalar
	// SetUint64 sets the receiver to v, and returns it.
	SetUint64(v uint64) Scalar
	// SetBigInt sets the receiver to v reduced modulo the group order,
	// and returns it.
	SetBigInt(v *big.Int) Scalar
	// IsEqual returns true if the receiver is equal to X.
	IsEqual(X Scalar) bool
	// IsZero returns true if the receiver is the additive identity.
	IsZero() bool
	// String returns a string representation of the scalar.
	String() string
	// BinaryMarshaler returns a fixed-width byte representation of the scalar.
	encoding.BinaryMarshaler
	// BinaryUnmarshaler recovers a scalar from a byte representation
	// produced by encoding.BinaryMarshaler.
	encoding.BinaryUnmarshaler
}

// Element represents an element of a prime-order group.
type Element interface {
	// Add sets the receiver to X + Y, and returns it.
	Add(X, Y Element) Element
	// Subtract sets the receiver to X - Y, and returns it.
	Subtract(X, Y Element) Element
	// Negate sets the receiver to -X, and returns it.
	Negate(X Element) Element
	// Scale performs the group operation s times with X,
	// sets the receiver to the result, and returns it.
	Scale(X Element, s Scalar) Element
	// BaseScale performs the group operation s times with the group's
	// generator, sets the receiver to the result, and returns it.
	// Implementations use precomputed generator tables where the backing
	// library provides them, so this is the fast path for sG.
	BaseScale(s Scalar) Element
	// Set sets the receiver to X, and returns it.
	Set(X Element) Element
	// MapToGroup hashes a message (s) and produces a group element
	// with uniform distribution whose discrete logarithm is not known.
	MapToGroup(s string) (Element, error)
	// IsEqual returns true if the receiver is equal to X.
	IsEqual(X Element) bool
	// IsIdentity returns true if the receiver is the group's
	// identity element.
	IsIdentity() bool
	// String returns a string representation of the element.
	String() string
	// BinaryMarshaler returns a byte representation of the element.
	encoding.BinaryMarshaler
	// BinaryUnmarshaler recovers an element from a byte representation
	// produced by encoding.BinaryMarshaler.
	encoding.BinaryUnmarshaler
	// Marshaler returns a JSON representation of the element.
	json.Marshaler
	// Unmarshaler recovers an element from a JSON representation
	// produced by json.Marshaler.
	json.Unmarshaler
}

// Group represents a prime-order group over a prime-order field. The group
// can be either multiplicative or additive; all adapters in this package
// expose additive notation.
type Group interface {
	// Name returns the name of the group.
	Name() string

	// Element creates a new group element set to the identity.
	Element() Element
	// Generator creates a group element set to the group's generator.
	Generator() Element
	// Identity creates a group element set to the group's identity element.
	Identity() Element
	// Scalar creates a new scalar set to zero.
	Scalar() Scalar

	// RandomScalar returns a scalar sampled uniformly from [0, N) using
	// the provided randomness source. A failure of the source is returned
	// as is, never masked.
	RandomScalar(rd io.Reader) (Scalar, error)
	// RandomElement returns a uniformly sampled element from the group by
	// sampling a random scalar r and returning rG.
	RandomElement(rd io.Reader) (Element, error)

	// P returns the prime order of the field over which the group is defined.
	P() *big.Int
	// N returns the prime order of the group.
	N() *big.Int

	// ElementLength returns the length in bytes of a marshalled element.
	ElementLength() int
	// ScalarLength returns the length in bytes of a marshalled scalar.
	ScalarLength() int

	// Marshaler returns a JSON identifier of the group.
	json.Marshaler
}
