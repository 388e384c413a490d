package elgamal

import (
	"fmt"

	"github.com/commitlab/go-elgamal/group"
)

// Open is the secret witness of a commitment: the blinding factor r and the
// scalar message m. It mirrors the commitment's homomorphism, so the sum of
// two opens verifies the sum of the matching commitments.
type Open struct {
	g group.Group
	r group.Scalar
	m group.Scalar
}

// NewOpen builds an open from a blinding factor and a message. The scalars
// are copied; a nil scalar stands for zero.
func NewOpen(g group.Group, r, m group.Scalar) *Open {
	o := &Open{g: g, r: g.Scalar(), m: g.Scalar()}
	if r != nil {
		o.r.Set(r)
	}
	if m != nil {
		o.m.Set(m)
	}
	return o
}

// BlindingFactor returns a copy of the blinding factor r.
func (o *Open) BlindingFactor() group.Scalar {
	return o.g.Scalar().Set(o.r)
}

// Message returns a copy of the committed message m.
func (o *Open) Message() group.Scalar {
	return o.g.Scalar().Set(o.m)
}

// Add sets z to the component-wise sum x + y, and returns z.
func (z *Open) Add(x, y *Open) *Open {
	z.r.Add(x.r, y.r)
	z.m.Add(x.m, y.m)
	return z
}

// Subtract sets z to the component-wise difference x - y, and returns z.
func (z *Open) Subtract(x, y *Open) *Open {
	z.r.Subtract(x.r, y.r)
	z.m.Subtract(x.m, y.m)
	return z
}

// Negate sets z to the component-wise negation of x, and returns z.
func (z *Open) Negate(x *Open) *Open {
	z.r.Negate(x.r)
	z.m.Negate(x.m)
	return z
}

// ScalarMult sets z to the component-wise scalar multiple s·x, and returns z.
func (z *Open) ScalarMult(x *Open, s group.Scalar) *Open {
	z.r.Multiply(x.r, s)
	z.m.Multiply(x.m, s)
	return z
}

// Set sets z to x, and returns z.
func (z *Open) Set(x *Open) *Open {
	z.r.Set(x.r)
	z.m.Set(x.m)
	return z
}

// IsEqual returns true if both scalars are equal.
func (z *Open) IsEqual(x *Open) bool {
	return z.r.IsEqual(x.r) && z.m.IsEqual(x.m)
}

// String returns a string representation of the open.
func (z *Open) String() string {
	return fmt.Sprintf("Open(%s, %s)", z.r, z.m)
}
