package shuffle

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
	"sync"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_shuffler.go github.com/KirkDiggler/lootwheel/internal/shuffle Shuffler

// Shuffler permutes a sequence of n elements in place through swap
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// Random shuffles with a seeded pseudo-random source
type Random struct {
	mu     sync.Mutex
	random *rand.Rand
}

// Config for the random shuffler
type Config struct {
	// Optional seed for testing
	Seed int64
}

// New creates a new shuffler. Without a seed one is drawn from crypto/rand.
func New(cfg *Config) (*Random, error) {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		s, err := NewSeed()
		if err != nil {
			return nil, err
		}
		seed = s
	}

	return &Random{
		random: rand.New(rand.NewSource(seed)),
	}, nil
}

// Shuffle performs a Fisher-Yates shuffle of n elements
func (r *Random) Shuffle(n int, swap func(i, j int)) {
	if n < 2 {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.random.Shuffle(n, swap)
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// Reverse is a deterministic shuffler that reverses the sequence
type Reverse struct{}

// Shuffle reverses n elements
func (Reverse) Shuffle(n int, swap func(i, j int)) {
	for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
		swap(i, j)
	}
}
