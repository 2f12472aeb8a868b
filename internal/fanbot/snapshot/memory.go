package snapshot

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Memory é um Store em memória para testes e execução local sem Postgres.
// Mesmo contrato do Postgres: append-only, leitura imediata após escrita.
type Memory struct {
	mu    sync.RWMutex
	snaps map[string][]Snapshot // gameID -> snapshots em ordem de append
	posts []PostRecord
}

func NewMemory() *Memory {
	return &Memory{snaps: make(map[string][]Snapshot)}
}

func (m *Memory) Append(_ context.Context, s *Snapshot) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cp := *s
	cp.ID = uuid.NewString()
	cp.Players = append([]PlayerStat(nil), s.Players...)
	m.snaps[s.GameID] = append(m.snaps[s.GameID], cp)
	return cp.ID, nil
}

func (m *Memory) Latest(_ context.Context, gameID string) (*Snapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	hist := m.snaps[gameID]
	if len(hist) == 0 {
		return nil, nil
	}
	cp := hist[len(hist)-1]
	cp.Players = append([]PlayerStat(nil), cp.Players...)
	return &cp, nil
}

func (m *Memory) RecordPost(_ context.Context, p *PostRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cp := *p
	if cp.ID == "" {
		cp.ID = uuid.NewString()
	}
	m.posts = append(m.posts, cp)
	return nil
}

func (m *Memory) PostsSince(_ context.Context, cutoff time.Time) ([]PostRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []PostRecord
	for _, p := range m.posts {
		if !p.PostedAt.Before(cutoff) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PostedAt.Before(out[j].PostedAt) })
	return out, nil
}
