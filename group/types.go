package group

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
)

// GroupId is needed for JSON marshalling groups.
type GroupId struct {
	Name string `json:"group"`
}

// elementJSON is the JSON envelope for group elements: the canonical byte
// representation of the element, base64-encoded by encoding/json.
type elementJSON struct {
	Data []byte `json:"data"`
}

// randomScalarValue samples a uniform integer from [0, order) and reports
// reader failures to the caller. Adapters build their RandomScalar on it.
func randomScalarValue(rd io.Reader, order *big.Int) (*big.Int, error) {
	if rd == nil {
		return nil, errors.New("sampling scalar: nil randomness source")
	}
	r, err := rand.Int(rd, order)
	if err != nil {
		return nil, fmt.Errorf("sampling scalar: %w", err)
	}
	return r, nil
}
