package service

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dsmirnov/cryptodiary/internal/crypto"
	"github.com/dsmirnov/cryptodiary/internal/store"
	"github.com/dsmirnov/cryptodiary/internal/validators"
	"github.com/dsmirnov/cryptodiary/models"
)

const (
	// SentinelTitle is shown in place of a title that failed to decrypt.
	SentinelTitle = "Decryption Error"

	// SentinelSnippet is shown in place of an unreadable entry body.
	SentinelSnippet = "Unable to decrypt this entry."

	snippetLen = 50
)

// renderEngine is the production implementation of [RenderEngine]. It reads
// the snapshot through the read-only view and never mutates it.
type renderEngine struct {
	snapshot store.SnapshotReader
	cipher   crypto.Cipher
}

// NewRenderEngine constructs a [RenderEngine] over the given snapshot view
// and cipher.
func NewRenderEngine(snapshot store.SnapshotReader, cipher crypto.Cipher) RenderEngine {
	return &renderEngine{snapshot: snapshot, cipher: cipher}
}

// RenderList implements [RenderEngine].
//
// Rows that fail decryption stay visible under the sentinel title so the
// user can see the entry exists, but a non-empty keyword filter excludes
// them: their text cannot be inspected, so they cannot match. The date
// filter works on the stored (unencrypted) timestamp and applies to
// unreadable rows as well. Output preserves snapshot order.
func (r *renderEngine) RenderList(keyword, day string) ([]models.EntryListItem, error) {
	keyword = strings.ToLower(keyword)

	entries := r.snapshot.All()
	items := make([]models.EntryListItem, 0, len(entries))

	for _, entry := range entries {
		title, terr := r.decryptText(entry.EncryptedTitle)
		if errors.Is(terr, crypto.ErrKeyMissing) {
			return nil, crypto.ErrKeyMissing
		}
		content, cerr := r.decryptText(entry.EncryptedContent)
		if errors.Is(cerr, crypto.ErrKeyMissing) {
			return nil, crypto.ErrKeyMissing
		}

		failed := terr != nil || cerr != nil
		displayDay := models.NormalizeDay(entry.DateModified)

		if day != "" && displayDay != day {
			continue
		}

		var plain string
		if !failed {
			plain = validators.PlainText(content)
		}

		if keyword != "" {
			if failed {
				continue
			}
			if !strings.Contains(strings.ToLower(title), keyword) &&
				!strings.Contains(strings.ToLower(plain), keyword) {
				continue
			}
		}

		item := models.EntryListItem{ID: entry.ID, DisplayDate: displayDay}
		if failed {
			item.DisplayTitle = SentinelTitle
			item.DisplaySnippet = SentinelSnippet
			item.DecryptFailed = true
		} else {
			item.DisplayTitle = title
			item.DisplaySnippet = snippet(plain)
		}
		items = append(items, item)
	}

	return items, nil
}

// DecryptOne implements [RenderEngine].
func (r *renderEngine) DecryptOne(id string) (models.DecryptedEntry, error) {
	entry, err := r.snapshot.Get(id)
	if err != nil {
		return models.DecryptedEntry{}, err
	}

	title, err := r.decryptText(entry.EncryptedTitle)
	if err != nil {
		if errors.Is(err, crypto.ErrKeyMissing) {
			return models.DecryptedEntry{}, err
		}
		return models.DecryptedEntry{}, fmt.Errorf("%w: title of entry %s", ErrDecryptionFailed, id)
	}

	content, err := r.decryptText(entry.EncryptedContent)
	if err != nil {
		if errors.Is(err, crypto.ErrKeyMissing) {
			return models.DecryptedEntry{}, err
		}
		return models.DecryptedEntry{}, fmt.Errorf("%w: content of entry %s", ErrDecryptionFailed, id)
	}

	return models.DecryptedEntry{
		ID:           entry.ID,
		Title:        title,
		Content:      content,
		DateModified: entry.DateModified,
	}, nil
}

// decryptText decrypts one ciphertext field and applies the structural
// check. The stream cipher reports no error for a wrong passphrase, so
// decode-level success is not proof of the right key; plaintext that is
// not valid UTF-8 is rejected here.
func (r *renderEngine) decryptText(ciphertext string) (string, error) {
	plaintext, err := r.cipher.Decrypt(ciphertext)
	if err != nil {
		return "", err
	}
	if !utf8.ValidString(plaintext) {
		return "", ErrDecryptionFailed
	}
	return plaintext, nil
}

// snippet truncates tag-stripped text to the preview length, appending an
// ellipsis when something was cut off.
func snippet(plain string) string {
	runes := []rune(plain)
	if len(runes) <= snippetLen {
		return plain
	}
	return string(runes[:snippetLen]) + "…"
}
