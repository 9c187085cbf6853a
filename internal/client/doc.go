// Package client implements the interactive client application runtime.
//
// It wires the terminal UI flows, the client services, and the background
// snapshot refresh into a single process lifecycle: login, diary, logout,
// and back to login.
package client
