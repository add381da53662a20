package uuid

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/KirkDiggler/lootwheel/internal/common/uuid UUID

type UUID interface {
	NewUUID() string
}

// DefaultUUID implements the UUID interface using the uuid package

type DefaultUUID struct{}

func New() *DefaultUUID {
	return &DefaultUUID{}
}

// NewUUID returns a new UUID
func (d *DefaultUUID) NewUUID() string {
	return uuid.New().String()
}

// Sequence hands out predictable IDs with a prefix, e.g. "id-1", "id-2"
type Sequence struct {
	mu     sync.Mutex
	prefix string
	next   int
}

// NewSequence creates a sequence generator
func NewSequence(prefix string) *Sequence {
	return &Sequence{prefix: prefix}
}

// NewUUID returns the next ID in the sequence
func (s *Sequence) NewUUID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	return fmt.Sprintf("%s-%d", s.prefix, s.next)
}
