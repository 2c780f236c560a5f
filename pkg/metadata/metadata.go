// Package metadata provides detached integrity signatures for pipeline artifacts.
package metadata

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"
)

// Algorithm identifies the digest and signature scheme.
const Algorithm = "hmac-sha256"

// Signature verification errors.
var (
	ErrUnknownAlgorithm  = errors.New("unknown signature algorithm")
	ErrDigestMismatch    = errors.New("digest mismatch")
	ErrSignatureMismatch = errors.New("signature mismatch")
)

// Signature is the detached integrity record written next to an artifact.
type Signature struct {
	Algorithm string `json:"algorithm"`
	Digest    string `json:"digest"`
	SignedAt  string `json:"signed_at"`
	Signature string `json:"signature"`
}

// CalculateDigest computes the SHA-256 digest of the artifact bytes.
func CalculateDigest(data []byte) string {
	digest := sha256.Sum256(data)

	return hex.EncodeToString(digest[:])
}

// Sign produces a detached signature over the artifact bytes.
func Sign(data []byte, secret string) *Signature {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(data)

	return &Signature{
		Algorithm: Algorithm,
		Digest:    CalculateDigest(data),
		SignedAt:  time.Now().UTC().Format(time.RFC3339),
		Signature: hex.EncodeToString(mac.Sum(nil)),
	}
}

// Verify checks the artifact bytes against a detached signature.
// The digest is checked before the signature.
func Verify(data []byte, sig *Signature, secret string) (bool, error) {
	if sig.Algorithm != Algorithm {
		return false, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, sig.Algorithm)
	}

	calculated := CalculateDigest(data)
	if calculated != sig.Digest {
		return false, fmt.Errorf("%w: expected %s, got %s", ErrDigestMismatch, sig.Digest, calculated)
	}

	want, err := hex.DecodeString(sig.Signature)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrSignatureMismatch, err)
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(data)

	if !hmac.Equal(mac.Sum(nil), want) {
		return false, ErrSignatureMismatch
	}

	return true, nil
}

// SigPath returns the detached signature path for an artifact.
func SigPath(artifactPath string) string {
	return artifactPath + ".sig"
}

// WriteFile persists the signature next to the artifact as indented JSON.
func WriteFile(artifactPath string, sig *Signature) error {
	data, err := json.MarshalIndent(sig, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal signature: %w", err)
	}

	return os.WriteFile(SigPath(artifactPath), data, 0644)
}

// ReadFile loads the detached signature written for an artifact.
func ReadFile(artifactPath string) (*Signature, error) {
	data, err := os.ReadFile(SigPath(artifactPath))
	if err != nil {
		return nil, fmt.Errorf("failed to read signature file: %w", err)
	}

	sig := &Signature{}
	if err := json.Unmarshal(data, sig); err != nil {
		return nil, fmt.Errorf("failed to parse signature file: %w", err)
	}

	return sig, nil
}
