package crypto

import (
	"crypto/sha256"
	"errors"
	"sync"

	"golang.org/x/crypto/pbkdf2"
)

// ErrKeyMissing is returned by any cryptographic operation attempted before
// the keyring has been unlocked with the diary passphrase. It is fatal to
// the operation and means the user must re-authenticate.
var ErrKeyMissing = errors.New("no session key material")

const (
	// kdfIterations is the PBKDF2-SHA256 work factor for per-envelope
	// subkey derivation. Low enough to keep list rendering reactive,
	// high enough to not be free for an attacker holding ciphertext.
	kdfIterations = 10_000

	subkeyLen = 32
)

// Keyring holds the session key material: the diary passphrase supplied
// once per session. It lives only in process memory, is never transmitted,
// and is discarded wholesale on logout.
//
// Subkeys derived for individual envelope salts are memoized so that
// re-rendering the entry list on every search keystroke does not re-run the
// KDF per entry per keystroke.
type Keyring struct {
	mu       sync.RWMutex
	material []byte
	subkeys  map[string][]byte
}

// NewKeyring returns a locked keyring.
func NewKeyring() *Keyring {
	return &Keyring{}
}

// Unlock installs passphrase as the session key material, replacing any
// previous material and dropping all memoized subkeys. An empty passphrase
// is rejected: it would silently encrypt everything under a trivial key.
func (k *Keyring) Unlock(passphrase string) error {
	if passphrase == "" {
		return errors.New("empty passphrase")
	}

	k.mu.Lock()
	defer k.mu.Unlock()
	k.material = []byte(passphrase)
	k.subkeys = make(map[string][]byte)
	return nil
}

// Clear wipes the key material and all derived subkeys. After Clear every
// cryptographic operation fails with [ErrKeyMissing] until the next Unlock.
func (k *Keyring) Clear() {
	k.mu.Lock()
	defer k.mu.Unlock()
	for i := range k.material {
		k.material[i] = 0
	}
	k.material = nil
	k.subkeys = nil
}

// Unlocked reports whether session key material is present.
func (k *Keyring) Unlocked() bool {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return len(k.material) > 0
}

// subkey derives (or returns the memoized) 256-bit key for the given
// envelope salt. Returns ErrKeyMissing if the keyring is locked.
func (k *Keyring) subkey(salt []byte) ([]byte, error) {
	k.mu.RLock()
	if len(k.material) == 0 {
		k.mu.RUnlock()
		return nil, ErrKeyMissing
	}
	if key, ok := k.subkeys[string(salt)]; ok {
		k.mu.RUnlock()
		return key, nil
	}
	material := k.material
	k.mu.RUnlock()

	key := pbkdf2.Key(material, salt, kdfIterations, subkeyLen, sha256.New)

	k.mu.Lock()
	// Unlock may have run in between; do not resurrect a cleared keyring.
	if k.subkeys != nil {
		k.subkeys[string(salt)] = key
	}
	k.mu.Unlock()

	return key, nil
}
