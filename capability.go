package csvline

import "golang.org/x/crypto/chacha20poly1305"

// EncryptAlgo names the cipher behind an encrypted column, as written in
// `store.encrypt:"aes"` tags or passed to EncryptColumn.
type EncryptAlgo string

// Ciphertext is base64 encoded before it enters a row, so encrypted
// columns never need quoting.
const (
	EncryptAES     EncryptAlgo = "aes"     // AES-GCM
	EncryptXChaCha EncryptAlgo = "xchacha" // XChaCha20-Poly1305
)

// HashAlgo names the one-way transform applied to a column on Receive.
type HashAlgo string

const (
	// HashArgon2 stores an Argon2id PHC string. Its parameter segment
	// contains commas, so the column is quoted under the default dialect.
	HashArgon2 HashAlgo = "argon2"

	// HashBcrypt stores a 60-character modular-crypt string.
	HashBcrypt HashAlgo = "bcrypt"

	// HashSHA256 stores 64 hex characters. It is unsalted: equal values give
	// equal columns, which keeps the column usable as a join key but makes
	// it unfit for passwords.
	HashSHA256 HashAlgo = "sha256"
)

// keySizes lists the key lengths each cipher accepts.
var keySizes = map[EncryptAlgo][]int{
	EncryptAES:     {16, 24, 32},
	EncryptXChaCha: {chacha20poly1305.KeySize},
}

// saltedHashes records, per algorithm, whether hashing the same value twice
// yields different columns.
var saltedHashes = map[HashAlgo]bool{
	HashArgon2: true,
	HashBcrypt: true,
	HashSHA256: false,
}

// KeySizes returns the key lengths in bytes accepted by algo, or nil when
// algo is unknown.
func (a EncryptAlgo) KeySizes() []int {
	return append([]int(nil), keySizes[a]...)
}

// Deterministic reports whether equal column values always hash to the
// same output.
func (a HashAlgo) Deterministic() bool {
	salted, ok := saltedHashes[a]
	return ok && !salted
}

// IsValidEncryptAlgo reports whether algo can be used in an encrypt or
// decrypt rule.
func IsValidEncryptAlgo(algo EncryptAlgo) bool {
	_, ok := keySizes[algo]
	return ok
}

// IsValidHashAlgo reports whether algo can be used in a hash rule.
func IsValidHashAlgo(algo HashAlgo) bool {
	_, ok := saltedHashes[algo]
	return ok
}

// IsValidMaskType reports whether mt has a builtin masker.
func IsValidMaskType(mt MaskType) bool {
	_, ok := maskerFactories[mt]
	return ok
}
