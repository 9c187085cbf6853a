package service

import (
	"context"
	"sync"
)

// EditorState is the editor session's mode.
type EditorState int

const (
	// StateNew means no entry is bound; saving creates a new entry.
	StateNew EditorState = iota

	// StateEditing means the session is bound to one existing entry id;
	// saving updates that entry.
	StateEditing
)

const (
	deleteConfirmTitle   = "Delete entry"
	deleteConfirmMessage = "This entry will be permanently deleted. Continue?"
)

// EditorSession tracks which entry (if any) is being edited and is the
// single authority on whether a save becomes a create or an update. No
// other code path may choose between the two.
type EditorSession struct {
	mu      sync.Mutex
	state   EditorState
	boundID string

	entries EntrySyncService
}

// NewEditorSession constructs an editor session in new-entry mode.
func NewEditorSession(entries EntrySyncService) *EditorSession {
	return &EditorSession{entries: entries}
}

// OpenForCreate puts the session into new-entry mode.
func (e *EditorSession) OpenForCreate() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state = StateNew
	e.boundID = ""
}

// OpenForEdit binds the session to an existing entry id.
func (e *EditorSession) OpenForEdit(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state = StateEditing
	e.boundID = id
}

// State returns the current mode and, in editing mode, the bound id.
func (e *EditorSession) State() (EditorState, string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state, e.boundID
}

// Save dispatches to create or update based solely on the session state.
// On success the editor is cleared back to new-entry mode; on failure the
// binding is kept so the user can retry.
func (e *EditorSession) Save(ctx context.Context, title, content string) error {
	state, id := e.State()

	var err error
	if state == StateEditing {
		err = e.entries.Update(ctx, id, title, content)
	} else {
		err = e.entries.Create(ctx, title, content)
	}
	if err != nil {
		return err
	}

	e.OpenForCreate()
	return nil
}

// RequestDelete asks the user to confirm deletion of the bound entry. The
// destructive action is deferred into the confirmation callback: declining
// issues zero requests. onDone, if non-nil, receives the delete outcome
// once the user has confirmed. Returns [ErrNoEntryBound] in new-entry mode.
func (e *EditorSession) RequestDelete(ctx context.Context, confirm Confirmer, onDone func(error)) error {
	state, id := e.State()
	if state != StateEditing {
		return ErrNoEntryBound
	}

	confirm.Ask(deleteConfirmTitle, deleteConfirmMessage, func() {
		err := e.entries.Delete(ctx, id)
		if err == nil {
			e.OpenForCreate()
		}
		if onDone != nil {
			onDone(err)
		}
	})

	return nil
}
