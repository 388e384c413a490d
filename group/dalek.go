package group

import (
	"encoding/json"
	"fmt"
	"io"
	"math/big"

	"github.com/bwesterb/go-ristretto"
	"golang.org/x/crypto/sha3"
)

// dalekGroup adapts bwesterb/go-ristretto, a dalek-compatible ristretto255
// implementation. It produces the same 32-byte encodings as the circl
// adapter and exists so that callers already holding go-ristretto values
// can stay on their library.
type dalekGroup struct {
	fieldOrder *big.Int
	groupOrder *big.Int
	name       string
}

type dalekPoint struct {
	curve *dalekGroup
	val   ristretto.Point
}

type dalekScalar struct {
	curve *dalekGroup
	val   ristretto.Scalar
}

// Ristretto255Dalek returns the ristretto255 group backed by
// bwesterb/go-ristretto.
func Ristretto255Dalek() Group {
	p, _ := new(big.Int).SetString("7fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffed", 16)
	n, _ := new(big.Int).SetString("1000000000000000000000000000000014def9dea2f79cd65812631a5cf5d3ed", 16)

	G := new(dalekGroup)
	G.fieldOrder = p
	G.groupOrder = n
	G.name = "ristretto255-dalek"
	return G
}

func (g *dalekGroup) Name() string {
	return g.name
}

func (g *dalekGroup) MarshalJSON() ([]byte, error) {
	return json.Marshal(&GroupId{g.name})
}

func (g *dalekGroup) P() *big.Int {
	return g.fieldOrder
}

func (g *dalekGroup) N() *big.Int {
	return g.groupOrder
}

func (g *dalekGroup) ElementLength() int {
	return 32
}

func (g *dalekGroup) ScalarLength() int {
	return 32
}

func (g *dalekGroup) Generator() Element {
	e := &dalekPoint{curve: g}
	e.val.SetBase()
	return e
}

func (g *dalekGroup) Identity() Element {
	e := &dalekPoint{curve: g}
	e.val.SetZero()
	return e
}

func (g *dalekGroup) Element() Element {
	return g.Identity()
}

func (g *dalekGroup) Scalar() Scalar {
	s := &dalekScalar{curve: g}
	s.val.SetZero()
	return s
}

func (g *dalekGroup) RandomScalar(rd io.Reader) (Scalar, error) {
	r, err := randomScalarValue(rd, g.groupOrder)
	if err != nil {
		return nil, err
	}
	s := &dalekScalar{curve: g}
	s.val.SetBigInt(r)
	return s, nil
}

func (g *dalekGroup) RandomElement(rd io.Reader) (Element, error) {
	r, err := g.RandomScalar(rd)
	if err != nil {
		return nil, err
	}
	return g.Element().BaseScale(r), nil
}

func (e *dalekPoint) check(a Element) *dalekPoint {
	ey, ok := a.(*dalekPoint)
	if !ok {
		panic("incompatible group element type")
	}
	return ey
}

func (e *dalekPoint) checkScalar(s Scalar) *dalekScalar {
	cs, ok := s.(*dalekScalar)
	if !ok {
		panic("incompatible scalar type")
	}
	return cs
}

func (e *dalekPoint) Add(a Element, b Element) Element {
	ca := e.check(a)
	cb := e.check(b)
	e.val.Add(&ca.val, &cb.val)
	return e
}

func (e *dalekPoint) Subtract(a Element, b Element) Element {
	ca := e.check(a)
	cb := e.check(b)
	e.val.Sub(&ca.val, &cb.val)
	return e
}

func (e *dalekPoint) Negate(a Element) Element {
	ca := e.check(a)
	e.val.Neg(&ca.val)
	return e
}

func (e *dalekPoint) Scale(a Element, s Scalar) Element {
	ca := e.check(a)
	cs := e.checkScalar(s)
	e.val.ScalarMult(&ca.val, &cs.val)
	return e
}

func (e *dalekPoint) BaseScale(s Scalar) Element {
	cs := e.checkScalar(s)
	e.val.ScalarMultBase(&cs.val)
	return e
}

func (e *dalekPoint) Set(a Element) Element {
	ca := e.check(a)
	e.val.Set(&ca.val)
	return e
}

// MapToGroup derives a point with unknown discrete logarithm by hashing the
// message to 64 uniform bytes and mapping both halves through Elligator.
func (e *dalekPoint) MapToGroup(s string) (Element, error) {
	key := sha3.Sum512([]byte(s))

	var r1Bytes, r2Bytes [32]byte
	copy(r1Bytes[:], key[:32])
	copy(r2Bytes[:], key[32:])

	var r1, r2 ristretto.Point
	e.val.Add(r1.SetElligator(&r1Bytes), r2.SetElligator(&r2Bytes))
	return e, nil
}

func (e *dalekPoint) IsEqual(b Element) bool {
	cb := e.check(b)
	return e.val.Equals(&cb.val)
}

func (e *dalekPoint) IsIdentity() bool {
	var zero ristretto.Point
	zero.SetZero()
	return e.val.Equals(&zero)
}

func (e *dalekPoint) String() string {
	return fmt.Sprintf("%x", e.val.Bytes())
}

func (e *dalekPoint) MarshalBinary() ([]byte, error) {
	return e.val.MarshalBinary()
}

func (e *dalekPoint) UnmarshalBinary(data []byte) error {
	if err := e.val.UnmarshalBinary(data); err != nil {
		return fmt.Errorf("ristretto element: %w", err)
	}
	return nil
}

func (e *dalekPoint) MarshalJSON() ([]byte, error) {
	return json.Marshal(&elementJSON{Data: e.val.Bytes()})
}

func (e *dalekPoint) UnmarshalJSON(data []byte) error {
	var tmp elementJSON
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	return e.UnmarshalBinary(tmp.Data)
}

func (s *dalekScalar) check(a Scalar) *dalekScalar {
	sa, ok := a.(*dalekScalar)
	if !ok {
		panic("incompatible scalar type")
	}
	return sa
}

func (s *dalekScalar) Add(x, y Scalar) Scalar {
	cx := s.check(x)
	cy := s.check(y)
	s.val.Add(&cx.val, &cy.val)
	return s
}

func (s *dalekScalar) Subtract(x, y Scalar) Scalar {
	cx := s.check(x)
	cy := s.check(y)
	s.val.Sub(&cx.val, &cy.val)
	return s
}

func (s *dalekScalar) Negate(x Scalar) Scalar {
	cx := s.check(x)
	s.val.Neg(&cx.val)
	return s
}

func (s *dalekScalar) Multiply(x, y Scalar) Scalar {
	cx := s.check(x)
	cy := s.check(y)
	s.val.Mul(&cx.val, &cy.val)
	return s
}

func (s *dalekScalar) Set(x Scalar) Scalar {
	cx := s.check(x)
	s.val.Set(&cx.val)
	return s
}

func (s *dalekScalar) SetUint64(v uint64) Scalar {
	s.val.SetBigInt(new(big.Int).SetUint64(v))
	return s
}

func (s *dalekScalar) SetBigInt(v *big.Int) Scalar {
	s.val.SetBigInt(new(big.Int).Mod(v, s.curve.groupOrder))
	return s
}

func (s *dalekScalar) IsEqual(x Scalar) bool {
	cx := s.check(x)
	return s.val.Equals(&cx.val)
}

func (s *dalekScalar) IsZero() bool {
	return s.val.IsNonZeroI() == 0
}

func (s *dalekScalar) String() string {
	return fmt.Sprintf("%x", s.val.Bytes())
}

func (s *dalekScalar) MarshalBinary() ([]byte, error) {
	return s.val.MarshalBinary()
}

func (s *dalekScalar) UnmarshalBinary(data []byte) error {
	if err := s.val.UnmarshalBinary(data); err != nil {
		return fmt.Errorf("ristretto scalar: %w", err)
	}
	return nil
}
