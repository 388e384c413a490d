package group

import (
	"encoding/json"
	"fmt"
	"io"
	"math/big"

	"github.com/ing-bank/zkrp/crypto/p256"
)

// p256k1Group adapts the secp256k1 implementation of zkrp. The library has
// no scalar type of its own, so scalars are big integers reduced modulo the
// group order.
type p256k1Group struct {
	fieldOrder *big.Int
	groupOrder *big.Int
	name       string
}

type p256k1Point struct {
	curve *p256k1Group
	val   *p256.P256
}

type p256k1Scalar struct {
	curve *p256k1Group
	val   *big.Int
}

// SecP256k1 returns the secp256k1 group.
func SecP256k1() Group {
	p, _ := new(big.Int).SetString("fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f", 16)
	n, _ := new(big.Int).SetString("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141", 16)

	G := new(p256k1Group)
	G.fieldOrder = p
	G.groupOrder = n
	G.name = "secp256k1"
	return G
}

func (g *p256k1Group) Name() string {
	return g.name
}

func (g *p256k1Group) MarshalJSON() ([]byte, error) {
	return json.Marshal(&GroupId{g.name})
}

func (g *p256k1Group) P() *big.Int {
	return g.fieldOrder
}

func (g *p256k1Group) N() *big.Int {
	return g.groupOrder
}

// Elements marshal as fixed-width affine coordinates, the identity as all
// zero bytes.
func (g *p256k1Group) ElementLength() int {
	return 64
}

func (g *p256k1Group) ScalarLength() int {
	return 32
}

func (g *p256k1Group) Generator() Element {
	return &p256k1Point{
		curve: g,
		val:   new(p256.P256).ScalarBaseMult(big.NewInt(1)),
	}
}

func (g *p256k1Group) Identity() Element {
	return &p256k1Point{
		curve: g,
		val:   new(p256.P256).SetInfinity(),
	}
}

func (g *p256k1Group) Element() Element {
	p := new(p256k1Point)
	p.curve = g
	p.val = new(p256.P256).SetInfinity()
	return p
}

func (g *p256k1Group) Scalar() Scalar {
	return &p256k1Scalar{
		curve: g,
		val:   new(big.Int),
	}
}

func (g *p256k1Group) RandomScalar(rd io.Reader) (Scalar, error) {
	r, err := randomScalarValue(rd, g.groupOrder)
	if err != nil {
		return nil, err
	}
	return &p256k1Scalar{curve: g, val: r}, nil
}

func (g *p256k1Group) RandomElement(rd io.Reader) (Element, error) {
	r, err := g.RandomScalar(rd)
	if err != nil {
		return nil, err
	}
	return g.Element().BaseScale(r), nil
}

func (e *p256k1Point) check(a Element) *p256k1Point {
	ey, ok := a.(*p256k1Point)
	if !ok {
		panic("incompatible group element type")
	}
	return ey
}

func (e *p256k1Point) checkScalar(s Scalar) *p256k1Scalar {
	cs, ok := s.(*p256k1Scalar)
	if !ok {
		panic("incompatible scalar type")
	}
	return cs
}

func (e *p256k1Point) Add(a Element, b Element) Element {
	ca := e.check(a)
	cb := e.check(b)
	e.val = new(p256.P256).Multiply(ca.val, cb.val)
	return e
}

func (e *p256k1Point) Subtract(a Element, b Element) Element {
	tmp := e.curve.Identity()
	tmp.Negate(b)
	e.Add(a, tmp)
	return e
}

func (e *p256k1Point) Negate(a Element) Element {
	ca := e.check(a)
	e.val = new(p256.P256).ScalarMult(ca.val, big.NewInt(-1))
	return e
}

func (e *p256k1Point) Scale(a Element, s Scalar) Element {
	ca := e.check(a)
	cs := e.checkScalar(s)
	e.val = new(p256.P256).ScalarMult(ca.val, cs.val)
	return e
}

func (e *p256k1Point) BaseScale(s Scalar) Element {
	cs := e.checkScalar(s)
	e.val = new(p256.P256).ScalarBaseMult(cs.val)
	return e
}

func (e *p256k1Point) Set(a Element) Element {
	ca := e.check(a)
	e.val = new(p256.P256).Add(new(p256.P256).SetInfinity(), ca.val)
	return e
}

func (e *p256k1Point) MapToGroup(s string) (Element, error) {
	tmp, err := p256.MapToGroup(s)
	if err != nil {
		return nil, fmt.Errorf("secp256k1 map to group: %w", err)
	}
	e.val = tmp
	return e, nil
}

func (e *p256k1Point) IsEqual(b Element) bool {
	cb := e.check(b)
	if e.IsIdentity() || cb.IsIdentity() {
		return e.IsIdentity() == cb.IsIdentity()
	}
	return e.val.X.Cmp(cb.val.X) == 0 && e.val.Y.Cmp(cb.val.Y) == 0
}

func (e *p256k1Point) IsIdentity() bool {
	if e.val.X == nil && e.val.Y == nil {
		return true
	}
	zero := big.NewInt(0)
	return (e.val.X == nil || e.val.X.Cmp(zero) == 0) &&
		(e.val.Y == nil || e.val.Y.Cmp(zero) == 0)
}

func (e *p256k1Point) String() string {
	return e.val.String()
}

func (e *p256k1Point) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 64)
	if e.IsIdentity() {
		return buf, nil
	}
	e.val.X.FillBytes(buf[:32])
	e.val.Y.FillBytes(buf[32:])
	return buf, nil
}

func (e *p256k1Point) UnmarshalBinary(data []byte) error {
	if len(data) != 64 {
		return fmt.Errorf("secp256k1 element: invalid length %d, expected 64", len(data))
	}
	e.val = new(p256.P256).SetInfinity()
	x := new(big.Int).SetBytes(data[:32])
	y := new(big.Int).SetBytes(data[32:])
	if x.Sign() != 0 || y.Sign() != 0 {
		e.val.X = x
		e.val.Y = y
	}
	return nil
}

func (e *p256k1Point) MarshalJSON() ([]byte, error) {
	tmp, err := e.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return json.Marshal(&elementJSON{Data: tmp})
}

func (e *p256k1Point) UnmarshalJSON(data []byte) error {
	var tmp elementJSON
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	return e.UnmarshalBinary(tmp.Data)
}

func (s *p256k1Scalar) check(a Scalar) *p256k1Scalar {
	sa, ok := a.(*p256k1Scalar)
	if !ok {
		panic("incompatible scalar type")
	}
	return sa
}

func (s *p256k1Scalar) Add(x, y Scalar) Scalar {
	cx := s.check(x)
	cy := s.check(y)
	s.val = new(big.Int).Add(cx.val, cy.val)
	s.val.Mod(s.val, s.curve.groupOrder)
	return s
}

func (s *p256k1Scalar) Subtract(x, y Scalar) Scalar {
	cx := s.check(x)
	cy := s.check(y)
	s.val = new(big.Int).Sub(cx.val, cy.val)
	s.val.Mod(s.val, s.curve.groupOrder)
	return s
}

func (s *p256k1Scalar) Negate(x Scalar) Scalar {
	cx := s.check(x)
	s.val = new(big.Int).Neg(cx.val)
	s.val.Mod(s.val, s.curve.groupOrder)
	return s
}

func (s *p256k1Scalar) Multiply(x, y Scalar) Scalar {
	cx := s.check(x)
	cy := s.check(y)
	s.val = new(big.Int).Mul(cx.val, cy.val)
	s.val.Mod(s.val, s.curve.groupOrder)
	return s
}

func (s *p256k1Scalar) Set(x Scalar) Scalar {
	cx := s.check(x)
	s.val = new(big.Int).Set(cx.val)
	return s
}

func (s *p256k1Scalar) SetUint64(v uint64) Scalar {
	s.val = new(big.Int).SetUint64(v)
	s.val.Mod(s.val, s.curve.groupOrder)
	return s
}

func (s *p256k1Scalar) SetBigInt(v *big.Int) Scalar {
	s.val = new(big.Int).Mod(v, s.curve.groupOrder)
	return s
}

func (s *p256k1Scalar) IsEqual(x Scalar) bool {
	cx := s.check(x)
	return s.val.Cmp(cx.val) == 0
}

func (s *p256k1Scalar) IsZero() bool {
	return s.val.Sign() == 0
}

func (s *p256k1Scalar) String() string {
	return s.val.String()
}

func (s *p256k1Scalar) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 32)
	s.val.FillBytes(buf)
	return buf, nil
}

func (s *p256k1Scalar) UnmarshalBinary(data []byte) error {
	if len(data) != 32 {
		return fmt.Errorf("secp256k1 scalar: invalid length %d, expected 32", len(data))
	}
	s.val = new(big.Int).SetBytes(data)
	s.val.Mod(s.val, s.curve.groupOrder)
	return nil
}
