package rotation

import "sync"

// guildLocks serialises writers per guild
type guildLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newGuildLocks() *guildLocks {
	return &guildLocks{locks: map[string]*sync.Mutex{}}
}

// lock acquires the guild's lock and returns its release
func (g *guildLocks) lock(guildID string) func() {
	g.mu.Lock()
	l, ok := g.locks[guildID]
	if !ok {
		l = &sync.Mutex{}
		g.locks[guildID] = l
	}
	g.mu.Unlock()

	l.Lock()
	return l.Unlock
}
