// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"bookmarks/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/crypto/argon2"
)

// Argon2Params are the argon2id cost parameters embedded in every digest.
type Argon2Params struct {
	Time       uint32
	MemoryKiB  uint32
	Threads    uint8
	KeyLength  uint32
	SaltLength uint32
}

// DefaultArgon2Params follow the argon2 RFC 9106 second recommendation.
var DefaultArgon2Params = Argon2Params{
	Time:       3,
	MemoryKiB:  64 * 1024,
	Threads:    4,
	KeyLength:  32,
	SaltLength: 16,
}

// Ceilings on parameters read back from a stored digest. Check refuses
// anything above them instead of allocating what the digest asks for.
const (
	maxArgon2Time      = 16
	maxArgon2MemoryKiB = 1024 * 1024
	maxArgon2KeyLength = 128
)

var errMalformedArgon2Hash = errors.New("malformed argon2id hash")

// argon2Hasher stores digests in the PHC string format:
// $argon2id$v=19$m=65536,t=3,p=4$<salt>$<key>
type argon2Hasher struct {
	params Argon2Params
}

// NewArgon2Hasher returns an argon2id PasswordHasher. Zero fields in params take
// the defaults, and parameters outside the accepted range are replaced by them.
func NewArgon2Hasher(params Argon2Params) service.PasswordHasher {
	if params.Time == 0 {
		params.Time = DefaultArgon2Params.Time
	}
	if params.MemoryKiB == 0 {
		params.MemoryKiB = DefaultArgon2Params.MemoryKiB
	}
	if params.Threads == 0 {
		params.Threads = DefaultArgon2Params.Threads
	}
	if params.KeyLength == 0 {
		params.KeyLength = DefaultArgon2Params.KeyLength
	}
	if params.SaltLength == 0 {
		params.SaltLength = DefaultArgon2Params.SaltLength
	}
	// Digests produced with out-of-range costs could never be checked.
	if !validArgon2Params(params) {
		params = DefaultArgon2Params
	}

	return &argon2Hasher{params: params}
}

// Hash derives a key from password and a fresh random salt.
func (h *argon2Hasher) Hash(password string) (string, error) {
	salt := make([]byte, h.params.SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", errors.Wrap(err, "failed to generate salt")
	}

	key := argon2.IDKey([]byte(password), salt, h.params.Time, h.params.MemoryKiB, h.params.Threads, h.params.KeyLength)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		h.params.MemoryKiB,
		h.params.Time,
		h.params.Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Check re-derives the key with the parameters recorded in hash, so digests
// created under older parameters keep verifying after a config change.
func (h *argon2Hasher) Check(password, hash string) bool {
	params, salt, key, err := decodeArgon2Hash(hash)
	if err != nil {
		return false
	}

	candidate := argon2.IDKey([]byte(password), salt, params.Time, params.MemoryKiB, params.Threads, params.KeyLength)

	return subtle.ConstantTimeCompare(key, candidate) == 1
}

func decodeArgon2Hash(hash string) (Argon2Params, []byte, []byte, error) {
	var params Argon2Params

	parts := strings.Split(hash, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return params, nil, nil, errMalformedArgon2Hash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return params, nil, nil, errMalformedArgon2Hash
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &params.MemoryKiB, &params.Time, &params.Threads); err != nil {
		return params, nil, nil, errMalformedArgon2Hash
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return params, nil, nil, errMalformedArgon2Hash
	}

	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(key) == 0 {
		return params, nil, nil, errMalformedArgon2Hash
	}

	params.SaltLength = uint32(len(salt))
	params.KeyLength = uint32(len(key))

	if !validArgon2Params(params) {
		return params, nil, nil, errMalformedArgon2Hash
	}

	return params, salt, key, nil
}

// validArgon2Params rejects parameters argon2.IDKey panics on (t=0, p=0) and
// costs beyond the ceilings. Argon2 needs at least 8 KiB of memory per lane.
func validArgon2Params(p Argon2Params) bool {
	switch {
	case p.Time == 0 || p.Time > maxArgon2Time:
		return false
	case p.Threads == 0:
		return false
	case p.MemoryKiB < 8*uint32(p.Threads) || p.MemoryKiB > maxArgon2MemoryKiB:
		return false
	case p.KeyLength == 0 || p.KeyLength > maxArgon2KeyLength:
		return false
	default:
		return true
	}
}
