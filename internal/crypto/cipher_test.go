package crypto

import (
	"encoding/json"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unlockedCipher(t *testing.T, passphrase string) Cipher {
	t.Helper()
	kr := NewKeyring()
	require.NoError(t, kr.Unlock(passphrase))
	return NewCipher(kr)
}

// ── Round trip ───────────────────────────────────────────────────────────────

func TestCipher_RoundTrip(t *testing.T) {
	c := unlockedCipher(t, "correct horse battery staple")

	for _, plaintext := range []string{
		"",
		"Alpha",
		"<p>Dear diary, today was <b>fine</b>.</p>",
		"многострочный текст\nвторая строка",
		"emoji ☕ and CJK 日記",
	} {
		ct, err := c.Encrypt(plaintext)
		require.NoError(t, err)
		require.NotEqual(t, plaintext, ct)

		got, err := c.Decrypt(ct)
		require.NoError(t, err)
		assert.Equal(t, plaintext, got)
	}
}

func TestCipher_EncryptTwiceDiffers(t *testing.T) {
	c := unlockedCipher(t, "pass")

	first, err := c.Encrypt("same plaintext")
	require.NoError(t, err)
	second, err := c.Encrypt("same plaintext")
	require.NoError(t, err)

	// Fresh salt and IV per call.
	assert.NotEqual(t, first, second)
}

// ── Self-contained envelope ──────────────────────────────────────────────────

func TestCipher_EnvelopeIsSelfContained(t *testing.T) {
	c := unlockedCipher(t, "session one")

	ct, err := c.Encrypt("survives a restart")
	require.NoError(t, err)

	var env map[string]any
	require.NoError(t, json.Unmarshal([]byte(ct), &env))
	assert.Contains(t, env, "salt")
	assert.Contains(t, env, "iv")
	assert.Contains(t, env, "ct")

	// A brand-new keyring unlocked with the same passphrase must decrypt
	// the envelope with no other shared state.
	kr := NewKeyring()
	require.NoError(t, kr.Unlock("session one"))
	got, err := NewCipher(kr).Decrypt(ct)
	require.NoError(t, err)
	assert.Equal(t, "survives a restart", got)
}

// ── Key missing ──────────────────────────────────────────────────────────────

func TestCipher_KeyMissing(t *testing.T) {
	c := NewCipher(NewKeyring())

	_, err := c.Encrypt("anything")
	assert.ErrorIs(t, err, ErrKeyMissing)

	_, err = c.Decrypt(`{"v":1,"mode":"ctr","salt":"","iv":"","ct":""}`)
	assert.ErrorIs(t, err, ErrKeyMissing)
}

func TestKeyring_ClearLocksAgain(t *testing.T) {
	kr := NewKeyring()
	require.NoError(t, kr.Unlock("secret"))
	c := NewCipher(kr)

	ct, err := c.Encrypt("entry body")
	require.NoError(t, err)

	kr.Clear()
	assert.False(t, kr.Unlocked())

	_, err = c.Decrypt(ct)
	assert.ErrorIs(t, err, ErrKeyMissing)
}

func TestKeyring_UnlockRejectsEmptyPassphrase(t *testing.T) {
	assert.Error(t, NewKeyring().Unlock(""))
}

// ── Wrong key ────────────────────────────────────────────────────────────────

func TestCipher_WrongKeyProducesGarbageNotError(t *testing.T) {
	ct, err := unlockedCipher(t, "right password").Encrypt("<p>Dear diary, nobody must read this.</p>")
	require.NoError(t, err)

	got, err := unlockedCipher(t, "wrong password").Decrypt(ct)

	// Stream mode has no auth tag: decryption "succeeds" with some output.
	require.NoError(t, err)
	assert.NotEqual(t, "<p>Dear diary, nobody must read this.</p>", got)

	// Shape validation is the caller's wrong-key detector; garbage of this
	// length is effectively never valid UTF-8.
	assert.False(t, utf8.ValidString(got))
}

// ── Malformed envelopes ──────────────────────────────────────────────────────

func TestCipher_MalformedEnvelopes(t *testing.T) {
	c := unlockedCipher(t, "pass")

	for name, ct := range map[string]string{
		"not json":       "definitely not an envelope",
		"wrong version":  `{"v":2,"mode":"ctr","salt":"AAAA","iv":"AAAA","ct":"AAAA"}`,
		"wrong mode":     `{"v":1,"mode":"gcm","salt":"AAAA","iv":"AAAA","ct":"AAAA"}`,
		"short salt":     `{"v":1,"mode":"ctr","salt":"AAAA","iv":"AAAAAAAAAAAAAAAAAAAAAA==","ct":"AAAA"}`,
		"bad base64":     `{"v":1,"mode":"ctr","salt":"!!!","iv":"AAAA","ct":"AAAA"}`,
		"empty envelope": `{}`,
	} {
		_, err := c.Decrypt(ct)
		assert.ErrorIs(t, err, ErrInvalidCiphertext, name)
	}
}

// ── Subkey memoization ───────────────────────────────────────────────────────

func TestKeyring_SubkeyMemoized(t *testing.T) {
	kr := NewKeyring()
	require.NoError(t, kr.Unlock("pass"))

	salt := []byte("0123456789abcdef")
	first, err := kr.subkey(salt)
	require.NoError(t, err)
	second, err := kr.subkey(salt)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, first, subkeyLen)
}
