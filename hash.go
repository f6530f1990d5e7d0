package csvline

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/bcrypt"
)

// ErrValueTooLong indicates a column value exceeds what a hasher reads.
var ErrValueTooLong = errors.New("value too long to hash")

// bcryptMaxInput is the number of bytes bcrypt consumes.
const bcryptMaxInput = 72

// Hasher replaces a column value with a one-way digest on Receive.
//
// Any string is a valid column, but digests free of the delimiter and the
// quote character keep the stored line unquoted.
type Hasher interface {
	Hash(plaintext []byte) (string, error)
}

// HasherFunc adapts a plain function to the Hasher interface.
type HasherFunc func(plaintext []byte) (string, error)

// Hash calls f(plaintext).
func (f HasherFunc) Hash(plaintext []byte) (string, error) {
	return f(plaintext)
}

// Argon2Params configures Argon2id.
type Argon2Params struct {
	Time    uint32 // passes over memory
	Memory  uint32 // KiB
	Threads uint8
	KeyLen  uint32 // digest bytes
	SaltLen uint32 // salt bytes
}

// DefaultArgon2Params returns the OWASP baseline: one pass over 64 MiB with
// four lanes, a 16-byte salt and a 32-byte digest.
func DefaultArgon2Params() Argon2Params {
	return Argon2Params{Time: 1, Memory: 64 * 1024, Threads: 4, KeyLen: 32, SaltLen: 16}
}

// Argon2 hashes with DefaultArgon2Params.
func Argon2() Hasher {
	return Argon2WithParams(DefaultArgon2Params())
}

// Argon2WithParams hashes each value with a fresh salt and emits a PHC
// string such as
//
//	$argon2id$v=19$m=65536,t=1,p=4$<salt>$<digest>
func Argon2WithParams(p Argon2Params) Hasher {
	return HasherFunc(func(plaintext []byte) (string, error) {
		salt, err := randomSalt(p.SaltLen)
		if err != nil {
			return "", err
		}
		digest := argon2.IDKey(plaintext, salt, p.Time, p.Memory, p.Threads, p.KeyLen)
		return phcArgon2(p, salt, digest), nil
	})
}

func phcArgon2(p Argon2Params, salt, digest []byte) string {
	var b strings.Builder
	fmt.Fprintf(&b, "$argon2id$v=%d$m=%d,t=%d,p=%d$", argon2.Version, p.Memory, p.Time, p.Threads)
	b.WriteString(base64.RawStdEncoding.EncodeToString(salt))
	b.WriteByte('$')
	b.WriteString(base64.RawStdEncoding.EncodeToString(digest))
	return b.String()
}

func randomSalt(n uint32) ([]byte, error) {
	salt := make([]byte, n)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("salt: %w", err)
	}
	return salt, nil
}

// Bcrypt hashes with bcrypt.DefaultCost.
func Bcrypt() Hasher {
	return BcryptWithCost(bcrypt.DefaultCost)
}

// BcryptWithCost hashes with the given cost factor. Values longer than 72
// bytes fail with ErrValueTooLong instead of being truncated.
func BcryptWithCost(cost int) Hasher {
	return HasherFunc(func(plaintext []byte) (string, error) {
		if len(plaintext) > bcryptMaxInput {
			return "", fmt.Errorf("%w: bcrypt reads %d bytes, got %d", ErrValueTooLong, bcryptMaxInput, len(plaintext))
		}
		digest, err := bcrypt.GenerateFromPassword(plaintext, cost)
		if err != nil {
			return "", fmt.Errorf("bcrypt: %w", err)
		}
		return string(digest), nil
	})
}

// SHA256Hasher hashes to lowercase hex.
func SHA256Hasher() Hasher {
	return HasherFunc(func(plaintext []byte) (string, error) {
		sum := sha256.Sum256(plaintext)
		return hex.EncodeToString(sum[:]), nil
	})
}

func builtinHashers() map[HashAlgo]Hasher {
	return map[HashAlgo]Hasher{
		HashArgon2: Argon2(),
		HashBcrypt: Bcrypt(),
		HashSHA256: SHA256Hasher(),
	}
}
