// Package session keeps the player's display name for the current session.
package session

import (
	"fmt"
	"log"
	"strings"

	"github.com/quasilyte/gdata/v2"
)

// DefaultName is shown when no name was provided.
const DefaultName = "Player"

const (
	sessionObject = "session"
	nameProperty  = "player_name"
)

// Store holds the display name for one run of the program. Begin records
// it in gdata once, replacing whatever a previous session left behind;
// after that the name is served from memory.
type Store struct {
	manager *gdata.Manager // nil means memory only
	name    string
}

// Open creates a store backed by gdata under appName. If gdata cannot be
// opened the store degrades to memory only.
func Open(appName string) *Store {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[Session] Warning: storage unavailable, keeping name in memory: %v", err)
		return NewStore(nil)
	}
	return NewStore(m)
}

// NewStore wraps an existing manager, which may be nil.
func NewStore(m *gdata.Manager) *Store {
	return &Store{manager: m}
}

// Begin starts a new session with name. An empty name selects
// DefaultName. The name is kept in memory even if saving it fails.
func (s *Store) Begin(name string) error {
	s.name = strings.TrimSpace(name)
	if s.manager == nil {
		return nil
	}
	if err := s.manager.SaveObjectProp(sessionObject, nameProperty, []byte(s.name)); err != nil {
		return fmt.Errorf("failed to save player name: %w", err)
	}
	return nil
}

// Name returns the session's display name, or DefaultName.
func (s *Store) Name() string {
	if s.name == "" {
		return DefaultName
	}
	return s.name
}

// Stored returns the name the last session recorded in gdata.
func (s *Store) Stored() (string, bool) {
	if s.manager == nil || !s.manager.ObjectPropExists(sessionObject, nameProperty) {
		return "", false
	}
	data, err := s.manager.LoadObjectProp(sessionObject, nameProperty)
	if err != nil {
		log.Printf("[Session] Warning: failed to load player name: %v", err)
		return "", false
	}
	return string(data), true
}
