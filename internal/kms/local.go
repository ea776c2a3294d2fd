package kms

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// LocalSigner holds a single ed25519 keypair in memory. Dev and test only;
// the capability descriptor of the surrounding deployment never advertises it
// as a real KMS.
type LocalSigner struct {
	priv ed25519.PrivateKey
	pub  ed25519.PublicKey
}

// NewLocalSigner builds the keypair from a hex seed, or generates a random
// one when the seed is empty.
func NewLocalSigner(seedHex string) (*LocalSigner, error) {
	if seedHex == "" {
		pub, priv, err := ed25519.GenerateKey(rand.Reader)
		if err != nil {
			return nil, fmt.Errorf("generate keypair: %w", err)
		}
		return &LocalSigner{priv: priv, pub: pub}, nil
	}

	seed, err := hex.DecodeString(seedHex)
	if err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	if len(seed) != ed25519.SeedSize {
		return nil, fmt.Errorf("seed must be %d bytes, got %d", ed25519.SeedSize, len(seed))
	}

	priv := ed25519.NewKeyFromSeed(seed)
	return &LocalSigner{
		priv: priv,
		pub:  priv.Public().(ed25519.PublicKey),
	}, nil
}

func (s *LocalSigner) Sign(_ context.Context, payload []byte, _ string) ([]byte, error) {
	return ed25519.Sign(s.priv, payload), nil
}

func (s *LocalSigner) Verify(_ context.Context, payload, sig []byte, _ string) (bool, error) {
	if len(sig) != ed25519.SignatureSize {
		return false, nil
	}
	return ed25519.Verify(s.pub, payload, sig), nil
}
