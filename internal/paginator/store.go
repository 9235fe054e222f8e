package paginator

import (
	"sync"

	"github.com/bwmarrin/discordgo"
)

type entry struct {
	mu      sync.Mutex
	sess    *Session
	removed bool
}

// Store guarda una sesión por message id. El map tiene su propio lock y cada
// sesión el suyo: mensajes distintos no se bloquean entre sí.
type Store struct {
	mu sync.RWMutex
	m  map[string]*entry
}

func NewStore() *Store {
	return &Store{m: map[string]*entry{}}
}

func (s *Store) Create(messageID, channelID, ownerID string, content Content, base *discordgo.MessageEmbed) (*Session, error) {
	if err := content.validate(); err != nil {
		return nil, err
	}
	if base == nil {
		base = &discordgo.MessageEmbed{}
	}
	sess := &Session{
		MessageID:   messageID,
		ChannelID:   channelID,
		OwnerID:     ownerID,
		CurrentPage: 1,
		Content:     content,
		Base:        base,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.m[messageID]; ok {
		return nil, ErrSessionExists
	}
	s.m[messageID] = &entry{sess: sess}
	return sess, nil
}

func (s *Store) lookup(messageID string) *entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m[messageID]
}

// Get devuelve una copia; el contenido se comparte pero nunca se modifica.
func (s *Store) Get(messageID string) (Session, bool) {
	e := s.lookup(messageID)
	if e == nil {
		return Session{}, false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.removed {
		return Session{}, false
	}
	return *e.sess, true
}

// Update corre fn con la sesión bloqueada. Clicks sobre el mismo mensaje quedan serializados.
func (s *Store) Update(messageID string, fn func(*Session) error) error {
	e := s.lookup(messageID)
	if e == nil {
		return ErrNoSession
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.removed {
		return ErrNoSession
	}
	return fn(e.sess)
}

// Evict corre fn con la sesión bloqueada y la borra si fn devuelve true.
func (s *Store) Evict(messageID string, fn func(*Session) bool) bool {
	e := s.lookup(messageID)
	if e == nil {
		return false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.removed || !fn(e.sess) {
		return false
	}
	return s.removeLocked(messageID, e)
}

// Remove devuelve true sólo para quien efectivamente la borró.
func (s *Store) Remove(messageID string) bool {
	e := s.lookup(messageID)
	if e == nil {
		return false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return s.removeLocked(messageID, e)
}

// orden de locks: entry.mu -> s.mu
func (s *Store) removeLocked(messageID string, e *entry) bool {
	if e.removed {
		return false
	}
	e.removed = true
	s.mu.Lock()
	if s.m[messageID] == e {
		delete(s.m, messageID)
	}
	s.mu.Unlock()
	return true
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.m)
}

func (s *Store) IDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.m))
	for id := range s.m {
		ids = append(ids, id)
	}
	return ids
}
