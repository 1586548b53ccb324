// Package domain contains the core types of the process result cache.
package domain

import (
	"crypto/sha256"
	"encoding/hex"

	"go.trai.ch/zerr"
)

// FingerprintSize is the byte length of a Fingerprint (sha256).
const FingerprintSize = sha256.Size

// Fingerprint is a fixed-size content digest used to key cache entries
// and to address blobs in the content store.
type Fingerprint [FingerprintSize]byte

// FingerprintOf returns the fingerprint of the given bytes.
func FingerprintOf(data []byte) Fingerprint {
	return sha256.Sum256(data)
}

// FingerprintFromHex parses a hex-encoded fingerprint.
func FingerprintFromHex(s string) (Fingerprint, error) {
	var fp Fingerprint
	raw, err := hex.DecodeString(s)
	if err != nil {
		return fp, zerr.Wrap(err, "invalid fingerprint encoding")
	}
	if len(raw) != FingerprintSize {
		return fp, zerr.With(zerr.New("invalid fingerprint length"), "length", len(raw))
	}
	copy(fp[:], raw)
	return fp, nil
}

// String returns the hex encoding of the fingerprint.
func (f Fingerprint) String() string {
	return hex.EncodeToString(f[:])
}

// MarshalText implements encoding.TextMarshaler so fingerprints serialize as hex.
func (f Fingerprint) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Fingerprint) UnmarshalText(text []byte) error {
	parsed, err := FingerprintFromHex(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// Digest identifies a blob in the content store by fingerprint and size.
type Digest struct {
	Fingerprint Fingerprint `json:"fingerprint"`
	SizeBytes   int64       `json:"size_bytes"`
}

// DigestOf returns the digest of the given bytes.
func DigestOf(data []byte) Digest {
	return Digest{
		Fingerprint: FingerprintOf(data),
		SizeBytes:   int64(len(data)),
	}
}

// EmptyDigest is the digest of zero bytes. Content stores treat it as
// trivially present.
var EmptyDigest = DigestOf(nil)

// IsEmpty reports whether the digest references zero bytes.
func (d Digest) IsEmpty() bool {
	return d.SizeBytes == 0
}
