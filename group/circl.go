package group

import (
	"encoding/json"
	"fmt"
	"io"
	"math/big"

	circl "github.com/cloudflare/circl/group"
)

// circlGroup adapts a cloudflare/circl prime-order group. The same adapter
// backs ristretto255, P-256 and P-384; the constructors below pin the
// concrete group and its orders.
type circlGroup struct {
	inner      circl.Group
	fieldOrder *big.Int
	groupOrder *big.Int
	name       string
}

type circlPoint struct {
	curve *circlGroup
	val   circl.Element
}

type circlScalar struct {
	curve *circlGroup
	val   circl.Scalar
}

// Ristretto255 returns the ristretto255 group. Elements marshal to 32-byte
// compressed encodings and scalars to 32 bytes, which is the encoding the
// commitment wire contract is stated in.
func Ristretto255() Group {
	p, _ := new(big.Int).SetString("7fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffed", 16)
	n, _ := new(big.Int).SetString("1000000000000000000000000000000014def9dea2f79cd65812631a5cf5d3ed", 16)

	return &circlGroup{
		inner:      circl.Ristretto255,
		fieldOrder: p,
		groupOrder: n,
		name:       "ristretto255",
	}
}

// P256 returns the NIST P-256 group.
func P256() Group {
	p, _ := new(big.Int).SetString("ffffffff00000001000000000000000000000000ffffffffffffffffffffffff", 16)
	n, _ := new(big.Int).SetString("ffffffff00000000ffffffffffffffffbce6faada7179e84f3b9cac2fc632551", 16)

	return &circlGroup{
		inner:      circl.P256,
		fieldOrder: p,
		groupOrder: n,
		name:       "P-256",
	}
}

// P384 returns the NIST P-384 group.
func P384() Group {
	p, _ := new(big.Int).SetString("fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffeffffffff0000000000000000ffffffff", 16)
	n, _ := new(big.Int).SetString("ffffffffffffffffffffffffffffffffffffffffffffffffc7634d81f4372ddf581a0db248b0a77aecec196accc52973", 16)

	return &circlGroup{
		inner:      circl.P384,
		fieldOrder: p,
		groupOrder: n,
		name:       "P-384",
	}
}

func (g *circlGroup) Name() string {
	return g.name
}

func (g *circlGroup) MarshalJSON() ([]byte, error) {
	return json.Marshal(&GroupId{g.name})
}

func (g *circlGroup) P() *big.Int {
	return g.fieldOrder
}

func (g *circlGroup) N() *big.Int {
	return g.groupOrder
}

func (g *circlGroup) ElementLength() int {
	return int(g.inner.Params().ElementLength)
}

func (g *circlGroup) ScalarLength() int {
	return int(g.inner.Params().ScalarLength)
}

func (g *circlGroup) Generator() Element {
	return &circlPoint{
		curve: g,
		val:   g.inner.Generator(),
	}
}

func (g *circlGroup) Identity() Element {
	return &circlPoint{
		curve: g,
		val:   g.inner.Identity(),
	}
}

func (g *circlGroup) Element() Element {
	return &circlPoint{
		curve: g,
		val:   g.inner.NewElement(),
	}
}

func (g *circlGroup) Scalar() Scalar {
	return &circlScalar{
		curve: g,
		val:   g.inner.NewScalar(),
	}
}

func (g *circlGroup) RandomScalar(rd io.Reader) (Scalar, error) {
	r, err := randomScalarValue(rd, g.groupOrder)
	if err != nil {
		return nil, err
	}
	return g.Scalar().SetBigInt(r), nil
}

func (g *circlGroup) RandomElement(rd io.Reader) (Element, error) {
	r, err := g.RandomScalar(rd)
	if err != nil {
		return nil, err
	}
	return g.Element().BaseScale(r), nil
}

func (e *circlPoint) check(a Element) *circlPoint {
	ey, ok := a.(*circlPoint)
	if !ok || ey.curve.name != e.curve.name {
		panic("incompatible group element type")
	}
	return ey
}

func (e *circlPoint) checkScalar(s Scalar) *circlScalar {
	cs, ok := s.(*circlScalar)
	if !ok || cs.curve.name != e.curve.name {
		panic("incompatible scalar type")
	}
	return cs
}

func (e *circlPoint) Add(a Element, b Element) Element {
	ca := e.check(a)
	cb := e.check(b)
	e.val = e.curve.inner.NewElement().Add(ca.val, cb.val)
	return e
}

func (e *circlPoint) Subtract(a Element, b Element) Element {
	tmp := e.curve.Identity()
	tmp.Negate(b)
	e.Add(a, tmp)
	return e
}

func (e *circlPoint) Negate(a Element) Element {
	ca := e.check(a)
	e.val = e.curve.inner.NewElement().Neg(ca.val)
	return e
}

func (e *circlPoint) Scale(x Element, s Scalar) Element {
	ex := e.check(x)
	cs := e.checkScalar(s)
	e.val = e.curve.inner.NewElement().Mul(ex.val, cs.val)
	return e
}

func (e *circlPoint) BaseScale(s Scalar) Element {
	cs := e.checkScalar(s)
	e.val = e.curve.inner.NewElement().MulGen(cs.val)
	return e
}

func (e *circlPoint) Set(x Element) Element {
	ca := e.check(x)
	e.val = e.curve.inner.NewElement().Set(ca.val)
	return e
}

func (e *circlPoint) MapToGroup(s string) (Element, error) {
	e.val = e.curve.inner.HashToElement([]byte(s), nil)
	return e, nil
}

func (e *circlPoint) IsEqual(b Element) bool {
	cb := e.check(b)
	return e.val.IsEqual(cb.val)
}

func (e *circlPoint) IsIdentity() bool {
	return e.val.IsIdentity()
}

func (e *circlPoint) String() string {
	tmp, _ := e.val.MarshalBinary()
	return fmt.Sprintf("%x", tmp)
}

func (e *circlPoint) MarshalBinary() ([]byte, error) {
	return e.val.MarshalBinary()
}

func (e *circlPoint) UnmarshalBinary(data []byte) error {
	val := e.curve.inner.NewElement()
	if err := val.UnmarshalBinary(data); err != nil {
		return fmt.Errorf("%s element: %w", e.curve.name, err)
	}
	e.val = val
	return nil
}

func (e *circlPoint) MarshalJSON() ([]byte, error) {
	tmp, err := e.val.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return json.Marshal(&elementJSON{Data: tmp})
}

func (e *circlPoint) UnmarshalJSON(data []byte) error {
	var tmp elementJSON
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	return e.UnmarshalBinary(tmp.Data)
}

func (s *circlScalar) check(a Scalar) *circlScalar {
	sa, ok := a.(*circlScalar)
	if !ok || sa.curve.name != s.curve.name {
		panic("incompatible scalar type")
	}
	return sa
}

func (s *circlScalar) Add(x, y Scalar) Scalar {
	cx := s.check(x)
	cy := s.check(y)
	s.val = s.curve.inner.NewScalar().Add(cx.val, cy.val)
	return s
}

func (s *circlScalar) Subtract(x, y Scalar) Scalar {
	cx := s.check(x)
	cy := s.check(y)
	s.val = s.curve.inner.NewScalar().Sub(cx.val, cy.val)
	return s
}

func (s *circlScalar) Negate(x Scalar) Scalar {
	cx := s.check(x)
	s.val = s.curve.inner.NewScalar().Neg(cx.val)
	return s
}

func (s *circlScalar) Multiply(x, y Scalar) Scalar {
	cx := s.check(x)
	cy := s.check(y)
	s.val = s.curve.inner.NewScalar().Mul(cx.val, cy.val)
	return s
}

func (s *circlScalar) Set(x Scalar) Scalar {
	cx := s.check(x)
	s.val = s.curve.inner.NewScalar().Set(cx.val)
	return s
}

func (s *circlScalar) SetUint64(v uint64) Scalar {
	return s.SetBigInt(new(big.Int).SetUint64(v))
}

func (s *circlScalar) SetBigInt(v *big.Int) Scalar {
	reduced := new(big.Int).Mod(v, s.curve.groupOrder)
	s.val = s.curve.inner.NewScalar().SetBigInt(reduced)
	return s
}

func (s *circlScalar) IsEqual(x Scalar) bool {
	cx := s.check(x)
	return s.val.IsEqual(cx.val)
}

func (s *circlScalar) IsZero() bool {
	return s.val.IsEqual(s.curve.inner.NewScalar())
}

func (s *circlScalar) String() string {
	tmp, _ := s.val.MarshalBinary()
	return fmt.Sprintf("%x", tmp)
}

func (s *circlScalar) MarshalBinary() ([]byte, error) {
	return s.val.MarshalBinary()
}

func (s *circlScalar) UnmarshalBinary(data []byte) error {
	val := s.curve.inner.NewScalar()
	if err := val.UnmarshalBinary(data); err != nil {
		return fmt.Errorf("%s scalar: %w", s.curve.name, err)
	}
	s.val = val
	return nil
}
