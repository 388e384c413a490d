package elgamal

import (
	"encoding/json"
	"fmt"

	"github.com/commitlab/go-elgamal/group"
)

// Wire formats. A ciphertext is the concatenation of its two element
// encodings, a commitment prefixes the ciphertext with its base element,
// and an open is the concatenation of its two scalar encodings. On
// ristretto255 this means 64 bytes per ciphertext, 96 per commitment and 64
// per open. Unmarshalling requires a receiver built for the right group via
// NewCiphertext, NewCommitment or NewOpen.

// MarshalBinary encodes the ciphertext as C1 || C2.
func (z *Ciphertext) MarshalBinary() ([]byte, error) {
	c1, err := z.C1.MarshalBinary()
	if err != nil {
		return nil, err
	}
	c2, err := z.C2.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return append(c1, c2...), nil
}

// UnmarshalBinary decodes a ciphertext produced by MarshalBinary.
func (z *Ciphertext) UnmarshalBinary(data []byte) error {
	if len(data) == 0 || len(data)%2 != 0 {
		return fmt.Errorf("ciphertext: invalid length %d", len(data))
	}
	half := len(data) / 2
	if err := z.C1.UnmarshalBinary(data[:half]); err != nil {
		return fmt.Errorf("ciphertext: %w", err)
	}
	if err := z.C2.UnmarshalBinary(data[half:]); err != nil {
		return fmt.Errorf("ciphertext: %w", err)
	}
	return nil
}

type ciphertextJSON struct {
	C1 json.RawMessage `json:"c1"`
	C2 json.RawMessage `json:"c2"`
}

// MarshalJSON encodes the ciphertext components with the element codec.
func (z *Ciphertext) MarshalJSON() ([]byte, error) {
	c1, err := z.C1.MarshalJSON()
	if err != nil {
		return nil, err
	}
	c2, err := z.C2.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return json.Marshal(&ciphertextJSON{C1: c1, C2: c2})
}

// UnmarshalJSON decodes a ciphertext produced by MarshalJSON.
func (z *Ciphertext) UnmarshalJSON(data []byte) error {
	var tmp ciphertextJSON
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	if err := z.C1.UnmarshalJSON(tmp.C1); err != nil {
		return fmt.Errorf("ciphertext: %w", err)
	}
	if err := z.C2.UnmarshalJSON(tmp.C2); err != nil {
		return fmt.Errorf("ciphertext: %w", err)
	}
	return nil
}

// MarshalBinary encodes the commitment as y || C1 || C2.
func (c *Commitment) MarshalBinary() ([]byte, error) {
	y, err := c.y.MarshalBinary()
	if err != nil {
		return nil, err
	}
	ct, err := c.ct.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return append(y, ct...), nil
}

// UnmarshalBinary decodes a commitment produced by MarshalBinary.
func (c *Commitment) UnmarshalBinary(data []byte) error {
	n := c.g.ElementLength()
	if len(data) != 3*n {
		return fmt.Errorf("commitment: invalid length %d, expected %d", len(data), 3*n)
	}
	if err := c.y.UnmarshalBinary(data[:n]); err != nil {
		return fmt.Errorf("commitment: %w", err)
	}
	return c.ct.UnmarshalBinary(data[n:])
}

type commitmentJSON struct {
	Y  json.RawMessage `json:"y"`
	Ct json.RawMessage `json:"ciphertext"`
}

// MarshalJSON encodes the commitment base and ciphertext.
func (c *Commitment) MarshalJSON() ([]byte, error) {
	y, err := c.y.MarshalJSON()
	if err != nil {
		return nil, err
	}
	ct, err := c.ct.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return json.Marshal(&commitmentJSON{Y: y, Ct: ct})
}

// UnmarshalJSON decodes a commitment produced by MarshalJSON.
func (c *Commitment) UnmarshalJSON(data []byte) error {
	var tmp commitmentJSON
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	if err := c.y.UnmarshalJSON(tmp.Y); err != nil {
		return fmt.Errorf("commitment: %w", err)
	}
	return c.ct.UnmarshalJSON(tmp.Ct)
}

// MarshalBinary encodes the open as r || m.
func (o *Open) MarshalBinary() ([]byte, error) {
	r, err := o.r.MarshalBinary()
	if err != nil {
		return nil, err
	}
	m, err := o.m.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return append(r, m...), nil
}

// UnmarshalBinary decodes an open produced by MarshalBinary.
func (o *Open) UnmarshalBinary(data []byte) error {
	n := o.g.ScalarLength()
	if len(data) != 2*n {
		return fmt.Errorf("open: invalid length %d, expected %d", len(data), 2*n)
	}
	if err := o.r.UnmarshalBinary(data[:n]); err != nil {
		return fmt.Errorf("open: %w", err)
	}
	if err := o.m.UnmarshalBinary(data[n:]); err != nil {
		return fmt.Errorf("open: %w", err)
	}
	return nil
}

type openJSON struct {
	R []byte `json:"r"`
	M []byte `json:"m"`
}

// MarshalJSON encodes the open's scalars, base64-encoded by encoding/json.
func (o *Open) MarshalJSON() ([]byte, error) {
	r, err := o.r.MarshalBinary()
	if err != nil {
		return nil, err
	}
	m, err := o.m.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return json.Marshal(&openJSON{R: r, M: m})
}

// UnmarshalJSON decodes an open produced by MarshalJSON.
func (o *Open) UnmarshalJSON(data []byte) error {
	var tmp openJSON
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	if err := o.r.UnmarshalBinary(tmp.R); err != nil {
		return fmt.Errorf("open: %w", err)
	}
	if err := o.m.UnmarshalBinary(tmp.M); err != nil {
		return fmt.Errorf("open: %w", err)
	}
	return nil
}

// MarshalBinary encodes the public element y.
func (ek *EncryptionKey) MarshalBinary() ([]byte, error) {
	return ek.y.MarshalBinary()
}

// UnmarshalEncryptionKey decodes an encryption key for the given group.
func UnmarshalEncryptionKey(g group.Group, data []byte) (*EncryptionKey, error) {
	y := g.Element()
	if err := y.UnmarshalBinary(data); err != nil {
		return nil, fmt.Errorf("encryption key: %w", err)
	}
	return &EncryptionKey{g: g, y: y}, nil
}
