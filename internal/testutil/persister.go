package testutil

import (
	"context"
	"sync"

	"github.com/roach88/cookbook/internal/recipe"
)

// RecordingPersister keeps every saved document in memory.
// Set Err to make Save fail.
type RecordingPersister struct {
	mu       sync.Mutex
	Saved    []recipe.Document
	versions map[string]int
	Err      error
}

// Save records doc and returns its per-id version, starting at 1.
func (p *RecordingPersister) Save(_ context.Context, doc recipe.Document) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.Err != nil {
		return 0, p.Err
	}
	if p.versions == nil {
		p.versions = make(map[string]int)
	}
	p.versions[doc.ID]++
	p.Saved = append(p.Saved, doc)
	return p.versions[doc.ID], nil
}
