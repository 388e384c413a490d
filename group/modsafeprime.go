package group

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/big"
	"strings"
)

// ModPGroup is the prime-order subgroup of quadratic residues of a
// safe-prime multiplicative group: p = 2q + 1 with q prime.
type ModPGroup struct {
	gen        *big.Int
	fieldOrder *big.Int
	groupOrder *big.Int
	name       string
}

type ModPElement struct {
	group *ModPGroup
	val   *big.Int
}

type modPScalar struct {
	group *ModPGroup
	val   *big.Int
}

// NewModPGroup builds a safe-prime group from a hex encoded field order and
// generator. Whitespace in the field order is ignored so that RFC 3526
// style definitions can be pasted as is.
func NewModPGroup(name string, fieldOrder, generator string) Group {
	repr := strings.Join(strings.Fields(fieldOrder), "")

	ffOrder, ok := new(big.Int).SetString(repr, 16)
	if !ok {
		panic("invalid group definition")
	}

	gen, ok := new(big.Int).SetString(generator, 16)
	if !ok {
		panic("invalid generator")
	}

	genOrder := new(big.Int).Set(ffOrder)
	genOrder.Sub(genOrder, big.NewInt(1))
	genOrder.Div(genOrder, big.NewInt(2))

	G := new(ModPGroup)
	G.fieldOrder = ffOrder
	G.groupOrder = genOrder
	G.gen = gen
	G.name = name
	return G
}

func (g *ModPGroup) Name() string {
	return g.name
}

func (g *ModPGroup) MarshalJSON() ([]byte, error) {
	return json.Marshal(&GroupId{g.name})
}

func (g *ModPGroup) equals(h *ModPGroup) bool {
	if g == h {
		return true
	}
	return g.fieldOrder.Cmp(h.fieldOrder) == 0 && g.gen.Cmp(h.gen) == 0
}

func (g *ModPGroup) P() *big.Int {
	return g.fieldOrder
}

func (g *ModPGroup) N() *big.Int {
	return g.groupOrder
}

func (g *ModPGroup) ElementLength() int {
	return (g.fieldOrder.BitLen() + 7) / 8
}

func (g *ModPGroup) ScalarLength() int {
	return (g.groupOrder.BitLen() + 7) / 8
}

func (g *ModPGroup) Generator() Element {
	return &ModPElement{
		group: g,
		val:   new(big.Int).Set(g.gen),
	}
}

func (g *ModPGroup) Identity() Element {
	return &ModPElement{
		group: g,
		val:   big.NewInt(1),
	}
}

func (g *ModPGroup) Element() Element {
	return g.Identity()
}

func (g *ModPGroup) Scalar() Scalar {
	return &modPScalar{
		group: g,
		val:   new(big.Int),
	}
}

func (g *ModPGroup) RandomScalar(rd io.Reader) (Scalar, error) {
	r, err := randomScalarValue(rd, g.groupOrder)
	if err != nil {
		return nil, err
	}
	return &modPScalar{group: g, val: r}, nil
}

func (g *ModPGroup) RandomElement(rd io.Reader) (Element, error) {
	r, err := g.RandomScalar(rd)
	if err != nil {
		return nil, err
	}
	return g.Element().BaseScale(r), nil
}

func (e *ModPElement) check(a Element) *ModPElement {
	ey, ok := a.(*ModPElement)
	if !ok {
		panic("incompatible group element type")
	}
	if !e.group.equals(ey.group) {
		panic("incompatible groups")
	}
	return ey
}

func (e *ModPElement) checkScalar(s Scalar) *modPScalar {
	cs, ok := s.(*modPScalar)
	if !ok {
		panic("incompatible scalar type")
	}
	if !e.group.equals(cs.group) {
		panic("incompatible groups")
	}
	return cs
}

func (e *ModPElement) Add(a Element, b Element) Element {
	ex := e.check(a)
	ey := e.check(b)
	e.val.Mul(ex.val, ey.val)
	e.val.Mod(e.val, e.group.fieldOrder)
	return e
}

func (e *ModPElement) Subtract(a Element, b Element) Element {
	tmp := e.group.Identity()
	tmp.Negate(b)
	e.Add(a, tmp)
	return e
}

func (e *ModPElement) Negate(a Element) Element {
	ex := e.check(a)
	e.val.ModInverse(ex.val, e.group.fieldOrder)
	return e
}

func (e *ModPElement) Scale(a Element, s Scalar) Element {
	ex := e.check(a)
	cs := e.checkScalar(s)
	e.val.Exp(ex.val, cs.val, e.group.fieldOrder)
	return e
}

func (e *ModPElement) BaseScale(s Scalar) Element {
	cs := e.checkScalar(s)
	e.val.Exp(e.group.gen, cs.val, e.group.fieldOrder)
	return e
}

func (e *ModPElement) Set(a Element) Element {
	ex := e.check(a)
	e.val.Set(ex.val)
	return e
}

func (e *ModPElement) MapToGroup(s string) (Element, error) {
	return nil, errors.New("mod-p group: map to group not supported")
}

func (e *ModPElement) IsEqual(b Element) bool {
	ey := e.check(b)
	return e.val.Cmp(ey.val) == 0
}

func (e *ModPElement) IsIdentity() bool {
	return e.val.Cmp(big.NewInt(1)) == 0
}

func (e *ModPElement) String() string {
	return e.val.String()
}

func (e *ModPElement) MarshalBinary() ([]byte, error) {
	buf := make([]byte, e.group.ElementLength())
	e.val.FillBytes(buf)
	return buf, nil
}

func (e *ModPElement) UnmarshalBinary(data []byte) error {
	if len(data) != e.group.ElementLength() {
		return fmt.Errorf("mod-p element: invalid length %d, expected %d",
			len(data), e.group.ElementLength())
	}
	val := new(big.Int).SetBytes(data)
	if val.Sign() == 0 || val.Cmp(e.group.fieldOrder) >= 0 {
		return errors.New("mod-p element: value out of range")
	}
	e.val = val
	return nil
}

func (e *ModPElement) MarshalJSON() ([]byte, error) {
	tmp, err := e.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return json.Marshal(&elementJSON{Data: tmp})
}

func (e *ModPElement) UnmarshalJSON(data []byte) error {
	var tmp elementJSON
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	return e.UnmarshalBinary(tmp.Data)
}

func (s *modPScalar) check(a Scalar) *modPScalar {
	sa, ok := a.(*modPScalar)
	if !ok {
		panic("incompatible scalar type")
	}
	if !s.group.equals(sa.group) {
		panic("incompatible groups")
	}
	return sa
}

func (s *modPScalar) Add(x, y Scalar) Scalar {
	cx := s.check(x)
	cy := s.check(y)
	s.val = new(big.Int).Add(cx.val, cy.val)
	s.val.Mod(s.val, s.group.groupOrder)
	return s
}

func (s *modPScalar) Subtract(x, y Scalar) Scalar {
	cx := s.check(x)
	cy := s.check(y)
	s.val = new(big.Int).Sub(cx.val, cy.val)
	s.val.Mod(s.val, s.group.groupOrder)
	return s
}

func (s *modPScalar) Negate(x Scalar) Scalar {
	cx := s.check(x)
	s.val = new(big.Int).Neg(cx.val)
	s.val.Mod(s.val, s.group.groupOrder)
	return s
}

func (s *modPScalar) Multiply(x, y Scalar) Scalar {
	cx := s.check(x)
	cy := s.check(y)
	s.val = new(big.Int).Mul(cx.val, cy.val)
	s.val.Mod(s.val, s.group.groupOrder)
	return s
}

func (s *modPScalar) Set(x Scalar) Scalar {
	cx := s.check(x)
	s.val = new(big.Int).Set(cx.val)
	return s
}

func (s *modPScalar) SetUint64(v uint64) Scalar {
	s.val = new(big.Int).SetUint64(v)
	s.val.Mod(s.val, s.group.groupOrder)
	return s
}

func (s *modPScalar) SetBigInt(v *big.Int) Scalar {
	s.val = new(big.Int).Mod(v, s.group.groupOrder)
	return s
}

func (s *modPScalar) IsEqual(x Scalar) bool {
	cx := s.check(x)
	return s.val.Cmp(cx.val) == 0
}

func (s *modPScalar) IsZero() bool {
	return s.val.Sign() == 0
}

func (s *modPScalar) String() string {
	return s.val.String()
}

func (s *modPScalar) MarshalBinary() ([]byte, error) {
	buf := make([]byte, s.group.ScalarLength())
	s.val.FillBytes(buf)
	return buf, nil
}

func (s *modPScalar) UnmarshalBinary(data []byte) error {
	if len(data) != s.group.ScalarLength() {
		return fmt.Errorf("mod-p scalar: invalid length %d, expected %d",
			len(data), s.group.ScalarLength())
	}
	s.val = new(big.Int).SetBytes(data)
	s.val.Mod(s.val, s.group.groupOrder)
	return nil
}
