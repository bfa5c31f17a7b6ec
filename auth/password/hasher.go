package password

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/argon2"

	"github.com/gochat-dev/gochat/errors"
)

const algorithmID = "argon2id"

// Hasher defines the interface for password hashing and verification.
type Hasher interface {
	// Hash returns a self-describing hashed representation of the plaintext.
	Hash(plaintext string) (string, error)

	// Verify checks whether plaintext matches the encoded hash.
	// A legitimate non-match returns (false, nil); an error means the
	// encoded hash could not be processed at all.
	Verify(plaintext, encoded string) (bool, error)
}

// Argon2Hasher implements Hasher using argon2id.
type Argon2Hasher struct {
	cfg Config
}

// NewArgon2Hasher creates an argon2id password hasher.
// Zero-valued config fields fall back to OWASP-recommended defaults.
func NewArgon2Hasher(cfg Config) *Argon2Hasher {
	cfg.ApplyDefaults()
	return &Argon2Hasher{cfg: cfg}
}

// Hash runs argon2id over the plaintext with a fresh random salt and
// returns the PHC-encoded result.
func (h *Argon2Hasher) Hash(plaintext string) (string, error) {
	salt := make([]byte, h.cfg.SaltLength)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", errors.Hashing(err)
	}

	digest := argon2.IDKey([]byte(plaintext), salt, h.cfg.Time, h.cfg.Memory, h.cfg.Threads, h.cfg.KeyLength)

	encoded := fmt.Sprintf("$%s$v=%d$m=%d,t=%d,p=%d$%s$%s",
		algorithmID,
		argon2.Version,
		h.cfg.Memory, h.cfg.Time, h.cfg.Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(digest),
	)
	return encoded, nil
}

// Verify parses the parameters and salt embedded in encoded, recomputes the
// digest for plaintext, and compares in constant time.
func (h *Argon2Hasher) Verify(plaintext, encoded string) (bool, error) {
	params, salt, digest, err := decodeHash(encoded)
	if err != nil {
		return false, err
	}

	computed := argon2.IDKey([]byte(plaintext), salt, params.time, params.memory, params.threads, uint32(len(digest)))

	return subtle.ConstantTimeCompare(computed, digest) == 1, nil
}

type hashParams struct {
	memory  uint32
	time    uint32
	threads uint8
}

// decodeHash splits a PHC string into its parameters, salt, and digest.
// Any structural problem yields an INVALID_HASH_FORMAT error.
func decodeHash(encoded string) (hashParams, []byte, []byte, error) {
	var params hashParams

	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" {
		return params, nil, nil, errors.InvalidHashFormat(fmt.Errorf("expected 6 segments, got %d", len(parts)))
	}
	if parts[1] != algorithmID {
		return params, nil, nil, errors.InvalidHashFormat(fmt.Errorf("unsupported algorithm %q", parts[1]))
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return params, nil, nil, errors.InvalidHashFormat(fmt.Errorf("malformed version segment %q", parts[2]))
	}
	if version != argon2.Version {
		return params, nil, nil, errors.InvalidHashFormat(fmt.Errorf("unsupported argon2 version %d", version))
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &params.memory, &params.time, &params.threads); err != nil {
		return params, nil, nil, errors.InvalidHashFormat(fmt.Errorf("malformed parameter segment %q", parts[3]))
	}
	if params.memory == 0 || params.time == 0 || params.threads == 0 {
		return params, nil, nil, errors.InvalidHashFormat(fmt.Errorf("zero-valued parameters in %q", parts[3]))
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return params, nil, nil, errors.InvalidHashFormat(fmt.Errorf("malformed salt: %w", err))
	}
	if len(salt) < minSaltLength {
		return params, nil, nil, errors.InvalidHashFormat(fmt.Errorf("salt is %d bytes, minimum is %d", len(salt), minSaltLength))
	}

	digest, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return params, nil, nil, errors.InvalidHashFormat(fmt.Errorf("malformed digest: %w", err))
	}
	if len(digest) == 0 {
		return params, nil, nil, errors.InvalidHashFormat(fmt.Errorf("empty digest"))
	}

	return params, salt, digest, nil
}
