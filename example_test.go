package elgamal_test

import (
	"crypto/rand"
	"fmt"

	elgamal "github.com/commitlab/go-elgamal"
	"github.com/commitlab/go-elgamal/group"
)

func ExampleDecryptionKey() {
	g := group.Ristretto255()

	dk, err := elgamal.GenerateDecryptionKey(g, rand.Reader)
	if err != nil {
		panic(err)
	}

	// Messages are group elements. Lift a scalar to m*G to encrypt a number.
	m := g.Identity().BaseScale(g.Scalar().SetUint64(42))

	ct, err := dk.EncryptionKey().Encrypt(m, rand.Reader)
	if err != nil {
		panic(err)
	}

	fmt.Println(dk.Decrypt(ct).IsEqual(m))
	// Output: true
}

func ExampleCommit() {
	g := group.Ristretto255()

	open, commitment, err := elgamal.Commit(g, g.Scalar().SetUint64(7), rand.Reader)
	if err != nil {
		panic(err)
	}

	fmt.Println(commitment.Verify(open))
	// Output: true
}

func ExampleCommitment_Add() {
	g := group.Ristretto255()

	// Homomorphic commitments must share an encryption key.
	y, err := g.RandomElement(rand.Reader)
	if err != nil {
		panic(err)
	}
	ek := elgamal.NewEncryptionKey(g, y)

	r1, _ := g.RandomScalar(rand.Reader)
	r2, _ := g.RandomScalar(rand.Reader)

	o1, c1 := elgamal.CommitWith(g.Scalar().SetUint64(3), r1, ek)
	o2, c2 := elgamal.CommitWith(g.Scalar().SetUint64(4), r2, ek)

	sum := elgamal.NewCommitment(g).Add(c1, c2)
	opening := elgamal.NewOpen(g, nil, nil).Add(o1, o2)

	fmt.Println(sum.Verify(opening))
	// Output: true
}

func ExampleCommitment_RerandomiseWith() {
	g := group.Ristretto255()

	m, err := g.RandomScalar(rand.Reader)
	if err != nil {
		panic(err)
	}
	open, commitment, err := elgamal.Commit(g, m, rand.Reader)
	if err != nil {
		panic(err)
	}

	// A zero message shift re-blinds the commitment without changing what
	// it commits to.
	r1, err := g.RandomScalar(rand.Reader)
	if err != nil {
		panic(err)
	}
	fresh := commitment.RerandomiseWith(open, r1, g.Scalar())

	fmt.Println(commitment.Verify(fresh))
	fmt.Println(fresh.Message().IsEqual(m))
	// Output:
	// true
	// true
}
