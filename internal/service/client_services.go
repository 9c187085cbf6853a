package service

import (
	"github.com/dsmirnov/cryptodiary/internal/adapter"
	"github.com/dsmirnov/cryptodiary/internal/crypto"
	"github.com/dsmirnov/cryptodiary/internal/logger"
	"github.com/dsmirnov/cryptodiary/internal/store"
)

// ClientServices bundles everything the client UI layer needs: the session
// lifecycle, the sync protocol, the render engine, and the editor state
// machine, all sharing one keyring and one snapshot.
type ClientServices struct {
	Session *SessionService
	Entries EntrySyncService
	Render  RenderEngine
	Editor  *EditorSession
}

// NewClientServices wires the client service graph over the given server
// transport. The keyring and snapshot are created here and owned by the
// graph; nothing outside it can write them.
func NewClientServices(serverAdapter adapter.ServerAdapter, log *logger.Logger) *ClientServices {
	keyring := crypto.NewKeyring()
	snapshot := store.NewSnapshot()
	cipher := crypto.NewCipher(keyring)

	entries := NewEntrySyncService(snapshot, serverAdapter, cipher, log)

	return &ClientServices{
		Session: NewSessionService(serverAdapter, keyring, snapshot, log),
		Entries: entries,
		Render:  NewRenderEngine(snapshot, cipher),
		Editor:  NewEditorSession(entries),
	}
}
