package elgamal

import (
	"crypto/rand"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/commitlab/go-elgamal/group"
)

const testIterations = 100

var testGroups = []group.Group{
	group.Ristretto255(),
	group.Ristretto255Dalek(),
	group.P256(),
	group.SecP256k1(),
}

func TestEncryptDecrypt(t *testing.T) {
	assert := assert.New(t)
	g := group.Ristretto255()

	dk, err := GenerateDecryptionKey(g, rand.Reader)
	require.NoError(t, err)
	ek := dk.EncryptionKey()

	for i := 0; i < testIterations; i++ {
		m, err := g.RandomElement(rand.Reader)
		require.NoError(t, err)

		ct, err := ek.Encrypt(m, rand.Reader)
		require.NoError(t, err)

		assert.True(dk.Decrypt(ct).IsEqual(m))
	}
}

func TestEncryptDecryptAllGroups(t *testing.T) {
	for _, g := range testGroups {
		g := g
		t.Run(g.Name(), func(t *testing.T) {
			dk, err := GenerateDecryptionKey(g, rand.Reader)
			require.NoError(t, err)
			ek := dk.EncryptionKey()

			m, err := g.RandomElement(rand.Reader)
			require.NoError(t, err)

			ct, err := ek.Encrypt(m, rand.Reader)
			require.NoError(t, err)
			assert.True(t, dk.Decrypt(ct).IsEqual(m))
		})
	}
}

func TestEncryptWithIsDeterministic(t *testing.T) {
	g := group.Ristretto255()

	dk, err := GenerateDecryptionKey(g, rand.Reader)
	require.NoError(t, err)
	ek := dk.EncryptionKey()

	m, err := g.RandomElement(rand.Reader)
	require.NoError(t, err)
	r, err := g.RandomScalar(rand.Reader)
	require.NoError(t, err)

	ct1 := ek.EncryptWith(m, r)
	ct2 := ek.EncryptWith(m, r)
	assert.True(t, ct1.IsEqual(ct2))
}

func TestHomomorphism(t *testing.T) {
	assert := assert.New(t)
	g := group.Ristretto255()

	dk, err := GenerateDecryptionKey(g, rand.Reader)
	require.NoError(t, err)
	ek := dk.EncryptionKey()

	for i := 0; i < testIterations; i++ {
		m1, err := g.RandomElement(rand.Reader)
		require.NoError(t, err)
		m2, err := g.RandomElement(rand.Reader)
		require.NoError(t, err)

		ct1, err := ek.Encrypt(m1, rand.Reader)
		require.NoError(t, err)
		ct2, err := ek.Encrypt(m2, rand.Reader)
		require.NoError(t, err)

		sum := g.Element().Add(m1, m2)
		ctSum := NewCiphertext(g).Add(ct1, ct2)
		assert.True(dk.Decrypt(ctSum).IsEqual(sum))

		diff := g.Element().Subtract(m1, m2)
		ctDiff := NewCiphertext(g).Subtract(ct1, ct2)
		assert.True(dk.Decrypt(ctDiff).IsEqual(diff))

		neg := g.Element().Negate(m1)
		ctNeg := NewCiphertext(g).Negate(ct1)
		assert.True(dk.Decrypt(ctNeg).IsEqual(neg))
	}
}

func TestCiphertextScalarMult(t *testing.T) {
	g := group.Ristretto255()

	dk, err := GenerateDecryptionKey(g, rand.Reader)
	require.NoError(t, err)
	ek := dk.EncryptionKey()

	m, err := g.RandomElement(rand.Reader)
	require.NoError(t, err)
	k, err := g.RandomScalar(rand.Reader)
	require.NoError(t, err)

	ct, err := ek.Encrypt(m, rand.Reader)
	require.NoError(t, err)

	scaled := NewCiphertext(g).ScalarMult(ct, k)
	want := g.Element().Scale(m, k)
	assert.True(t, dk.Decrypt(scaled).IsEqual(want))
}

func TestRerandomisation(t *testing.T) {
	assert := assert.New(t)
	g := group.Ristretto255()

	dk, err := GenerateDecryptionKey(g, rand.Reader)
	require.NoError(t, err)
	ek := dk.EncryptionKey()

	m, err := g.RandomElement(rand.Reader)
	require.NoError(t, err)
	ct, err := ek.Encrypt(m, rand.Reader)
	require.NoError(t, err)

	for i := 0; i < testIterations; i++ {
		fresh, err := ek.Rerandomise(ct, rand.Reader)
		require.NoError(t, err)

		assert.True(dk.Decrypt(fresh).IsEqual(m))
		assert.False(fresh.IsEqual(ct), "rerandomised ciphertext should not repeat the original")
		ct = fresh
	}
}

func TestDecryptWithWrongKey(t *testing.T) {
	g := group.Ristretto255()

	dk1, err := GenerateDecryptionKey(g, rand.Reader)
	require.NoError(t, err)
	dk2, err := GenerateDecryptionKey(g, rand.Reader)
	require.NoError(t, err)

	m, err := g.RandomElement(rand.Reader)
	require.NoError(t, err)
	ct, err := dk1.EncryptionKey().Encrypt(m, rand.Reader)
	require.NoError(t, err)

	// Decryption under the wrong key succeeds but yields garbage.
	assert.False(t, dk2.Decrypt(ct).IsEqual(m))
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("entropy exhausted")
}

func TestRandomnessFailurePropagates(t *testing.T) {
	g := group.Ristretto255()

	_, err := GenerateDecryptionKey(g, failingReader{})
	assert.Error(t, err)

	dk, err := GenerateDecryptionKey(g, rand.Reader)
	require.NoError(t, err)
	ek := dk.EncryptionKey()

	m, err := g.RandomElement(rand.Reader)
	require.NoError(t, err)

	_, err = ek.Encrypt(m, failingReader{})
	assert.Error(t, err)

	ct, err := ek.Encrypt(m, rand.Reader)
	require.NoError(t, err)
	_, err = ek.Rerandomise(ct, failingReader{})
	assert.Error(t, err)

	k, err := g.RandomScalar(rand.Reader)
	require.NoError(t, err)
	_, _, err = Commit(g, k, failingReader{})
	assert.Error(t, err)
}
