package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/cipher_mock.go -package=mock

// Cipher encrypts and decrypts UTF-8 strings with the session key material
// held in the keyring. It knows nothing about the network, the entry store,
// or users; its only job is the ciphertext envelope.
//
// The envelope is self-contained: the KDF salt and IV are carried inside the
// ciphertext string, so nothing besides the passphrase is needed to decrypt
// it later.
//
// The cipher runs in CTR (stream) mode with no authentication tag. Decrypt
// therefore cannot detect a wrong key by itself: it will happily return
// garbage bytes. Callers must validate the shape of the decrypted result
// (see service.RenderList) and treat "decrypted but malformed" as a normal
// failure mode, not an exceptional one.
type Cipher interface {
	// Encrypt serializes plaintext into a ciphertext envelope.
	// Returns ErrKeyMissing if the keyring is locked.
	Encrypt(plaintext string) (string, error)

	// Decrypt opens a ciphertext envelope produced by Encrypt.
	// Returns ErrKeyMissing if the keyring is locked and
	// ErrInvalidCiphertext if the envelope itself is malformed.
	// A syntactically valid envelope decrypted with the wrong key material
	// yields no error, only garbage output.
	Decrypt(ciphertext string) (string, error)
}
