package models

import "time"

// TimeLayout is the wire format for entry timestamps, matching what the
// server emits in JSON responses ("2024-01-31 15:04:05").
const TimeLayout = "2006-01-02 15:04:05"

// Entry is a diary entry in its server-visible form. Title and content are
// ciphertext envelopes produced by the client; the server never sees or
// computes on plaintext.
type Entry struct {
	// ID is the server-assigned opaque identifier. Empty until the entry
	// has been persisted for the first time.
	ID string `json:"id"`

	// EncryptedTitle is the self-contained ciphertext envelope of the title.
	EncryptedTitle string `json:"encrypted_title"`

	// EncryptedContent is the ciphertext envelope of the entry body markup.
	EncryptedContent string `json:"encrypted_content"`

	// DateCreated and DateModified are formatted with [TimeLayout].
	DateCreated  string `json:"date_created,omitempty"`
	DateModified string `json:"date_modified"`
}

// DecryptedEntry is the transient plaintext view of an [Entry]. It exists
// only while rendering or editing and is never persisted anywhere.
type DecryptedEntry struct {
	ID           string
	Title        string
	Content      string
	DateModified string
}

// EntryListItem is one row of the rendered entry list: plaintext-derived
// display fields for an entry in the current snapshot.
type EntryListItem struct {
	ID string

	// DisplayTitle is the decrypted title, or the decryption-error sentinel.
	DisplayTitle string

	// DisplaySnippet is the tag-stripped, truncated body preview.
	DisplaySnippet string

	// DisplayDate is DateModified normalized to calendar-day granularity.
	DisplayDate string

	// DecryptFailed marks rows degraded to the error sentinel.
	DecryptFailed bool
}

// EntryPayload is the request body for create and update operations.
type EntryPayload struct {
	EncryptedTitle   string `json:"encrypted_title"`
	EncryptedContent string `json:"encrypted_content"`
}

// NormalizeDay reduces a [TimeLayout] timestamp to its calendar-day prefix
// ("2006-01-02"). Values shorter than a full date are returned unchanged.
func NormalizeDay(ts string) string {
	if len(ts) < len("2006-01-02") {
		return ts
	}
	return ts[:len("2006-01-02")]
}

// FormatTime renders t in the wire timestamp format, in UTC.
func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}
