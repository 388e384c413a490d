package elgamal

import (
	"crypto/rand"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/commitlab/go-elgamal/group"
)

// The wire contract on ristretto255: one compressed element is 32 bytes, so
// a ciphertext is 64 bytes, a commitment 96 bytes and an open 64 bytes.
func TestWireSizesRistretto255(t *testing.T) {
	g := group.Ristretto255()
	y := commitmentBase(t, g)

	m := g.Scalar().SetUint64(7)
	r := g.Scalar().SetUint64(8)
	open, commitment := CommitWith(m, r, y)

	data, err := commitment.MarshalBinary()
	require.NoError(t, err)
	assert.Len(t, data, 96)

	data, err = open.MarshalBinary()
	require.NoError(t, err)
	assert.Len(t, data, 64)

	dk, err := GenerateDecryptionKey(g, rand.Reader)
	require.NoError(t, err)
	msg, err := g.RandomElement(rand.Reader)
	require.NoError(t, err)
	ct, err := dk.EncryptionKey().Encrypt(msg, rand.Reader)
	require.NoError(t, err)

	data, err = ct.MarshalBinary()
	require.NoError(t, err)
	assert.Len(t, data, 64)

	data, err = dk.EncryptionKey().MarshalBinary()
	require.NoError(t, err)
	assert.Len(t, data, 32)
}

func TestCiphertextRoundTrip(t *testing.T) {
	g := group.Ristretto255()

	dk, err := GenerateDecryptionKey(g, rand.Reader)
	require.NoError(t, err)
	m, err := g.RandomElement(rand.Reader)
	require.NoError(t, err)
	ct, err := dk.EncryptionKey().Encrypt(m, rand.Reader)
	require.NoError(t, err)

	data, err := ct.MarshalBinary()
	require.NoError(t, err)

	back := NewCiphertext(g)
	require.NoError(t, back.UnmarshalBinary(data))
	assert.True(t, back.IsEqual(ct))

	jsonData, err := json.Marshal(ct)
	require.NoError(t, err)
	backJSON := NewCiphertext(g)
	require.NoError(t, json.Unmarshal(jsonData, backJSON))
	assert.True(t, backJSON.IsEqual(ct))
}

func TestCommitmentRoundTrip(t *testing.T) {
	g := group.Ristretto255()

	m, err := g.RandomScalar(rand.Reader)
	require.NoError(t, err)
	open, commitment, err := Commit(g, m, rand.Reader)
	require.NoError(t, err)

	data, err := commitment.MarshalBinary()
	require.NoError(t, err)

	back := NewCommitment(g)
	require.NoError(t, back.UnmarshalBinary(data))
	assert.True(t, back.IsEqual(commitment))
	assert.True(t, back.Verify(open), "a deserialized commitment verifies the original open")

	jsonData, err := json.Marshal(commitment)
	require.NoError(t, err)
	backJSON := NewCommitment(g)
	require.NoError(t, json.Unmarshal(jsonData, backJSON))
	assert.True(t, backJSON.IsEqual(commitment))
}

func TestOpenRoundTrip(t *testing.T) {
	g := group.Ristretto255()

	m, err := g.RandomScalar(rand.Reader)
	require.NoError(t, err)
	open, _, err := Commit(g, m, rand.Reader)
	require.NoError(t, err)

	data, err := open.MarshalBinary()
	require.NoError(t, err)

	back := NewOpen(g, nil, nil)
	require.NoError(t, back.UnmarshalBinary(data))
	assert.True(t, back.IsEqual(open))

	jsonData, err := json.Marshal(open)
	require.NoError(t, err)
	backJSON := NewOpen(g, nil, nil)
	require.NoError(t, json.Unmarshal(jsonData, backJSON))
	assert.True(t, backJSON.IsEqual(open))
}

func TestEncryptionKeyRoundTrip(t *testing.T) {
	g := group.Ristretto255()

	dk, err := GenerateDecryptionKey(g, rand.Reader)
	require.NoError(t, err)
	ek := dk.EncryptionKey()

	data, err := ek.MarshalBinary()
	require.NoError(t, err)

	back, err := UnmarshalEncryptionKey(g, data)
	require.NoError(t, err)
	assert.True(t, back.Element().IsEqual(ek.Element()))
}

func TestUnmarshalRejectsBadLengths(t *testing.T) {
	g := group.Ristretto255()

	assert.Error(t, NewCiphertext(g).UnmarshalBinary([]byte{1, 2, 3}))
	assert.Error(t, NewCommitment(g).UnmarshalBinary(make([]byte, 95)))
	assert.Error(t, NewOpen(g, nil, nil).UnmarshalBinary(make([]byte, 63)))
}
