package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrInvalidCiphertext is returned by Decrypt when the envelope itself is
// malformed: not JSON, wrong version or mode, or truncated fields. It says
// nothing about whether the key is correct.
var ErrInvalidCiphertext = errors.New("invalid ciphertext envelope")

const (
	envelopeVersion = 1
	envelopeMode    = "ctr"
	saltLen         = 16
)

// envelope is the serialized ciphertext form. Every parameter needed to
// decrypt (KDF salt, IV) travels inside it, since no separate channel
// carries them to a future session.
type envelope struct {
	V    int    `json:"v"`
	Mode string `json:"mode"`
	Salt string `json:"salt"`
	IV   string `json:"iv"`
	CT   string `json:"ct"`
}

// streamCipher is the AES-256-CTR implementation of [Cipher], keyed per
// envelope by a PBKDF2 subkey from the session keyring.
type streamCipher struct {
	keyring *Keyring
}

// NewCipher constructs a [Cipher] bound to keyring.
func NewCipher(keyring *Keyring) Cipher {
	return &streamCipher{keyring: keyring}
}

// Encrypt implements [Cipher]. A fresh random salt and IV are drawn for
// every call, so encrypting the same plaintext twice yields different
// envelopes.
func (c *streamCipher) Encrypt(plaintext string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	key, err := c.keyring.subkey(salt)
	if err != nil {
		return "", err
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("create cipher: %w", err)
	}

	iv := make([]byte, aes.BlockSize)
	if _, err = io.ReadFull(rand.Reader, iv); err != nil {
		return "", fmt.Errorf("generate iv: %w", err)
	}

	ct := make([]byte, len(plaintext))
	cipher.NewCTR(block, iv).XORKeyStream(ct, []byte(plaintext))

	env := envelope{
		V:    envelopeVersion,
		Mode: envelopeMode,
		Salt: base64.StdEncoding.EncodeToString(salt),
		IV:   base64.StdEncoding.EncodeToString(iv),
		CT:   base64.StdEncoding.EncodeToString(ct),
	}

	out, err := json.Marshal(env)
	if err != nil {
		return "", fmt.Errorf("marshal envelope: %w", err)
	}
	return string(out), nil
}

// Decrypt implements [Cipher]. It checks only the envelope structure; the
// keystream itself carries no authentication, so a wrong passphrase
// produces garbage output without error.
func (c *streamCipher) Decrypt(ciphertext string) (string, error) {
	if !c.keyring.Unlocked() {
		return "", ErrKeyMissing
	}

	var env envelope
	if err := json.Unmarshal([]byte(ciphertext), &env); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidCiphertext, err)
	}
	if env.V != envelopeVersion || env.Mode != envelopeMode {
		return "", fmt.Errorf("%w: unsupported version %d mode %q", ErrInvalidCiphertext, env.V, env.Mode)
	}

	salt, err := base64.StdEncoding.DecodeString(env.Salt)
	if err != nil || len(salt) != saltLen {
		return "", fmt.Errorf("%w: bad salt", ErrInvalidCiphertext)
	}
	iv, err := base64.StdEncoding.DecodeString(env.IV)
	if err != nil || len(iv) != aes.BlockSize {
		return "", fmt.Errorf("%w: bad iv", ErrInvalidCiphertext)
	}
	ct, err := base64.StdEncoding.DecodeString(env.CT)
	if err != nil {
		return "", fmt.Errorf("%w: bad ciphertext", ErrInvalidCiphertext)
	}

	key, err := c.keyring.subkey(salt)
	if err != nil {
		return "", err
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("create cipher: %w", err)
	}

	pt := make([]byte, len(ct))
	cipher.NewCTR(block, iv).XORKeyStream(pt, ct)

	return string(pt), nil
}
