package elgamal

import (
	"fmt"
	"io"

	"github.com/commitlab/go-elgamal/group"
)

// Commitment commits to a scalar message m under a public base element y:
// it is the ElGamal encryption (rG, mG + rY) of the lifted message mG,
// tagged with y. The base is fixed at construction and never altered by the
// arithmetic methods; combining commitments that do not share a base yields
// a value whose opening is meaningless. Use SharesBase when in doubt.
//
// A commitment is never decrypted. Verification recomputes the ciphertext
// from the revealed Open and compares, so no discrete logarithm is taken.
type Commitment struct {
	g  group.Group
	y  group.Element
	ct *Ciphertext
}

// NewCommitment creates a commitment with an identity base and an identity
// ciphertext, the receiver value for the arithmetic methods and
// unmarshalling.
func NewCommitment(g group.Group) *Commitment {
	return &Commitment{g: g, y: g.Identity(), ct: NewCiphertext(g)}
}

// Commit commits to the scalar message m. The commitment base is sampled as
// a random group element (nobody learns its discrete logarithm, the
// committer included), and the blinding factor is sampled fresh.
func Commit(g group.Group, m group.Scalar, rd io.Reader) (*Open, *Commitment, error) {
	y, err := g.RandomElement(rd)
	if err != nil {
		return nil, nil, fmt.Errorf("committing: %w", err)
	}
	r, err := g.RandomScalar(rd)
	if err != nil {
		return nil, nil, fmt.Errorf("committing: %w", err)
	}
	open, commitment := CommitWith(m, r, NewEncryptionKey(g, y))
	return open, commitment, nil
}

// CommitWith commits to the scalar message m with the given blinding factor
// under an agreed-upon base y, e.g. one known to committer and verifier in
// advance. The same r must never be used for two different messages under
// the same base. The returned Open is the witness to keep secret.
func CommitWith(m, r group.Scalar, y *EncryptionKey) (*Open, *Commitment) {
	g := y.Group()
	lifted := g.Element().BaseScale(m)
	commitment := &Commitment{
		g:  g,
		y:  y.Element(),
		ct: y.EncryptWith(lifted, r),
	}
	return NewOpen(g, r, m), commitment
}

// EncryptionKey returns the commitment base y wrapped as an encryption key.
func (c *Commitment) EncryptionKey() *EncryptionKey {
	return NewEncryptionKey(c.g, c.y)
}

// Verify returns true iff the open's blinding factor and message exactly
// reproduce the stored ciphertext under the commitment's base. A false
// result is a first-class outcome: a mismatched pair, tampering, or a
// forged opening.
func (c *Commitment) Verify(open *Open) bool {
	lifted := c.g.Element().BaseScale(open.m)
	recomputed := c.EncryptionKey().EncryptWith(lifted, open.r)
	return c.ct.IsEqual(recomputed)
}

// Rerandomise freshens the commitment in place and returns the matching
// open. See RerandomiseWith for the exact semantics; both the blinding
// factor and the message are shifted.
func (c *Commitment) Rerandomise(open *Open, rd io.Reader) (*Open, error) {
	r1, err := c.g.RandomScalar(rd)
	if err != nil {
		return nil, fmt.Errorf("rerandomising commitment: %w", err)
	}
	r2, err := c.g.RandomScalar(rd)
	if err != nil {
		return nil, fmt.Errorf("rerandomising commitment: %w", err)
	}
	return c.RerandomiseWith(open, r1, r2), nil
}

// RerandomiseWith adds a fresh commitment to r2 with blinding factor r1 to
// the receiver, mutating it in place, and returns the updated open
// (r + r1, m + r2). Note that this shifts the committed message by r2, not
// only the blinding factor: it combines with a fresh random commitment
// rather than re-blinding a fixed message. Pass r2 = 0 for
// message-preserving re-blinding. The input open is not mutated.
func (c *Commitment) RerandomiseWith(open *Open, r1, r2 group.Scalar) *Open {
	c.ct.C1.Add(c.ct.C1, c.g.Element().BaseScale(r1))

	shift := c.g.Element().Add(
		c.g.Element().Scale(c.y, r1),
		c.g.Element().BaseScale(r2),
	)
	c.ct.C2.Add(c.ct.C2, shift)

	updated := NewOpen(c.g, nil, nil)
	updated.r.Add(open.r, r1)
	updated.m.Add(open.m, r2)
	return updated
}

// SharesBase returns true if both commitments were built on the same base
// element. The arithmetic methods do not enforce this; callers combining
// commitments from different parties should check it explicitly.
func (c *Commitment) SharesBase(x *Commitment) bool {
	return c.y.IsEqual(x.y)
}

// Add sets z to the homomorphic sum x + y, taking the base of x, and
// returns z. The sum of the opens verifies the result iff x and y share
// their base.
func (z *Commitment) Add(x, y *Commitment) *Commitment {
	z.y.Set(x.y)
	z.ct.Add(x.ct, y.ct)
	return z
}

// Subtract sets z to the homomorphic difference x - y, taking the base of
// x, and returns z.
func (z *Commitment) Subtract(x, y *Commitment) *Commitment {
	z.y.Set(x.y)
	z.ct.Subtract(x.ct, y.ct)
	return z
}

// Negate sets z to the homomorphic negation of x, keeping x's base, and
// returns z.
func (z *Commitment) Negate(x *Commitment) *Commitment {
	z.y.Set(x.y)
	z.ct.Negate(x.ct)
	return z
}

// ScalarMult sets z to the homomorphic scalar multiple s·x, keeping x's
// base, and returns z. The scaled open verifies the result.
func (z *Commitment) ScalarMult(x *Commitment, s group.Scalar) *Commitment {
	z.y.Set(x.y)
	z.ct.ScalarMult(x.ct, s)
	return z
}

// Set sets z to x, and returns z.
func (z *Commitment) Set(x *Commitment) *Commitment {
	z.y.Set(x.y)
	z.ct.Set(x.ct)
	return z
}

// IsEqual returns true if both the base and the ciphertext are equal.
func (z *Commitment) IsEqual(x *Commitment) bool {
	return z.y.IsEqual(x.y) && z.ct.IsEqual(x.ct)
}

// String returns a string representation of the commitment.
func (c *Commitment) String() string {
	return fmt.Sprintf("Commitment(%s, %s)", c.y, c.ct)
}
