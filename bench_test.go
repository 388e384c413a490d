package elgamal

import (
	"crypto/rand"
	"testing"

	"github.com/commitlab/go-elgamal/group"
)

func BenchmarkEncrypt(b *testing.B) {
	g := group.Ristretto255()
	dk, err := GenerateDecryptionKey(g, rand.Reader)
	if err != nil {
		b.Fatal(err)
	}
	ek := dk.EncryptionKey()
	m, err := g.RandomElement(rand.Reader)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ek.Encrypt(m, rand.Reader); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecrypt(b *testing.B) {
	g := group.Ristretto255()
	dk, err := GenerateDecryptionKey(g, rand.Reader)
	if err != nil {
		b.Fatal(err)
	}
	m, err := g.RandomElement(rand.Reader)
	if err != nil {
		b.Fatal(err)
	}
	ct, err := dk.EncryptionKey().Encrypt(m, rand.Reader)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		dk.Decrypt(ct)
	}
}

func BenchmarkCommit(b *testing.B) {
	g := group.Ristretto255()
	m, err := g.RandomScalar(rand.Reader)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := Commit(g, m, rand.Reader); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCommitWith(b *testing.B) {
	g := group.Ristretto255()
	y := benchCommitmentBase(b, g)
	m, err := g.RandomScalar(rand.Reader)
	if err != nil {
		b.Fatal(err)
	}
	r, err := g.RandomScalar(rand.Reader)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		CommitWith(m, r, y)
	}
}

func BenchmarkVerify(b *testing.B) {
	g := group.Ristretto255()
	m, err := g.RandomScalar(rand.Reader)
	if err != nil {
		b.Fatal(err)
	}
	open, commitment, err := Commit(g, m, rand.Reader)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !commitment.Verify(open) {
			b.Fatal("verification failed")
		}
	}
}

func benchCommitmentBase(b *testing.B, g group.Group) *EncryptionKey {
	b.Helper()
	y, err := g.RandomElement(rand.Reader)
	if err != nil {
		b.Fatal(err)
	}
	return NewEncryptionKey(g, y)
}
