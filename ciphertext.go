package elgamal

import (
	"fmt"

	"github.com/commitlab/go-elgamal/group"
)

// Ciphertext is an ElGamal encryption (C1, C2) = (rG, M + rY) of a group
// element M. Ciphertexts under the same key form an additive group; the
// operators below carry no key information, so combining ciphertexts
// produced under different keys yields a value that decrypts to garbage
// under either key.
type Ciphertext struct {
	C1 group.Element
	C2 group.Element
}

// NewCiphertext creates a ciphertext with both components set to the
// identity, the receiver value for the arithmetic methods and unmarshalling.
func NewCiphertext(g group.Group) *Ciphertext {
	return &Ciphertext{C1: g.Identity(), C2: g.Identity()}
}

// Add sets z to the component-wise sum x + y, and returns z. Decrypting the
// sum of two ciphertexts under the same key yields the sum of the messages.
func (z *Ciphertext) Add(x, y *Ciphertext) *Ciphertext {
	z.C1.Add(x.C1, y.C1)
	z.C2.Add(x.C2, y.C2)
	return z
}

// Subtract sets z to the component-wise difference x - y, and returns z.
func (z *Ciphertext) Subtract(x, y *Ciphertext) *Ciphertext {
	z.C1.Subtract(x.C1, y.C1)
	z.C2.Subtract(x.C2, y.C2)
	return z
}

// Negate sets z to the component-wise negation of x, and returns z.
func (z *Ciphertext) Negate(x *Ciphertext) *Ciphertext {
	z.C1.Negate(x.C1)
	z.C2.Negate(x.C2)
	return z
}

// ScalarMult sets z to the component-wise scalar multiple s·x, and returns
// z. The result decrypts to s times the message of x.
func (z *Ciphertext) ScalarMult(x *Ciphertext, s group.Scalar) *Ciphertext {
	z.C1.Scale(x.C1, s)
	z.C2.Scale(x.C2, s)
	return z
}

// Set sets z to x, and returns z.
func (z *Ciphertext) Set(x *Ciphertext) *Ciphertext {
	z.C1.Set(x.C1)
	z.C2.Set(x.C2)
	return z
}

// IsEqual returns true if both components are equal.
func (z *Ciphertext) IsEqual(x *Ciphertext) bool {
	return z.C1.IsEqual(x.C1) && z.C2.IsEqual(x.C2)
}

// String returns a string representation of the ciphertext.
func (z *Ciphertext) String() string {
	return fmt.Sprintf("Ciphertext(%s, %s)", z.C1, z.C2)
}
