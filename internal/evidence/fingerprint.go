// Package evidence fingerprints milestone evidence artifacts. Only the
// fingerprint is ever recorded on the ledger.
package evidence

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"
)

var ErrInvalidFingerprint error = errors.New("invalid fingerprint")

type Fingerprint [sha256.Size]byte

// Compute hashes everything read from r.
func Compute(r io.Reader) (Fingerprint, error) {
	h := sha256.New()
	if _, err := io.Copy(h, r); err != nil {
		return Fingerprint{}, fmt.Errorf("read artifact: %w", err)
	}

	var fp Fingerprint
	copy(fp[:], h.Sum(nil))
	return fp, nil
}

func FromBytes(data []byte) Fingerprint {
	return sha256.Sum256(data)
}

// ParseFingerprint accepts the hex form returned by Hex, with or without a 0x prefix.
func ParseFingerprint(s string) (Fingerprint, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(s), "0x"), "0X")
	if len(s) != hex.EncodedLen(sha256.Size) {
		return Fingerprint{}, fmt.Errorf("%w: expected %d hex characters, got %d", ErrInvalidFingerprint, hex.EncodedLen(sha256.Size), len(s))
	}

	raw, err := hex.DecodeString(s)
	if err != nil {
		return Fingerprint{}, fmt.Errorf("%w: %w", ErrInvalidFingerprint, err)
	}

	var fp Fingerprint
	copy(fp[:], raw)
	return fp, nil
}

func (f Fingerprint) Hex() string {
	return hex.EncodeToString(f[:])
}

func (f Fingerprint) String() string {
	return f.Hex()
}

func (f Fingerprint) IsZero() bool {
	return f == Fingerprint{}
}
