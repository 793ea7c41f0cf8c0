// Package session holds the client-local state that survives across
// rendered turns: the dead-end memory, the pause and input flags, and the
// identifiers persisted between runs. None of it is ever sent to the
// server.
package session

import (
	"fmt"
	"strings"
)

// Session is the UI-session context shared by the dispatcher and the
// scene renderer. It is only touched from the event loop, so it carries
// no locking.
type Session struct {
	// deadEnds records failed "go" attempts as "<locationID>_<direction>"
	// keys. Accumulated client-side only; used to draw blocked-exit
	// borders on maps.
	deadEnds map[string]bool

	// Paused suppresses all outgoing player actions.
	Paused bool

	// ActiveForInput is true while a character is loaded and the game
	// view is shown.
	ActiveForInput bool

	// One-time panel wiring flags.
	nexusReady bool
	vpadReady  bool
}

func New() *Session {
	return &Session{deadEnds: make(map[string]bool)}
}

// DeadEndKey builds the stable memory key for a blocked exit. The
// direction is lowercased; the location id is used verbatim.
func DeadEndKey(locationID, direction string) string {
	return fmt.Sprintf("%s_%s", locationID, strings.ToLower(direction))
}

// RecordDeadEnd remembers that walking in direction from locationID was
// refused by the server.
func (s *Session) RecordDeadEnd(locationID, direction string) {
	if locationID == "" || direction == "" {
		return
	}
	s.deadEnds[DeadEndKey(locationID, direction)] = true
}

// IsDeadEnd reports whether a blocked exit has been recorded.
func (s *Session) IsDeadEnd(locationID, direction string) bool {
	return s.deadEnds[DeadEndKey(locationID, direction)]
}

// DeadEndCount returns the number of recorded blocked exits.
func (s *Session) DeadEndCount() int {
	return len(s.deadEnds)
}

// ResetForCharacter clears the per-playthrough state. Called whenever a
// character is created, loaded or resumed.
func (s *Session) ResetForCharacter() {
	s.deadEnds = make(map[string]bool)
	s.Paused = false
}

// ResetToMenu clears everything tied to an active play session when the
// player returns to the character-selection screen.
func (s *Session) ResetToMenu() {
	s.deadEnds = make(map[string]bool)
	s.Paused = false
	s.ActiveForInput = false
	s.nexusReady = false
	s.vpadReady = false
}

// NexusReady reports, and then sets, the one-time command-nexus wiring
// flag. The first caller gets false and performs the setup.
func (s *Session) NexusReady() bool {
	ready := s.nexusReady
	s.nexusReady = true
	return ready
}

// VPadReady reports, and then sets, the one-time vpad wiring flag.
func (s *Session) VPadReady() bool {
	ready := s.vpadReady
	s.vpadReady = true
	return ready
}
