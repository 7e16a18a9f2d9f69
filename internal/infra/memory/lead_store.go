package memory

import (
	"sync"

	"github.com/avirani/leadscore/internal/entity"
)

// LeadStore holds captured leads for the lifetime of the process. Records
// are appended in capture order and never removed or reordered.
type LeadStore struct {
	mu    sync.Mutex
	leads []entity.Lead
}

func NewLeadStore() *LeadStore {
	return &LeadStore{}
}

func (s *LeadStore) Append(lead entity.Lead) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.leads = append(s.leads, lead)
}

// List returns a snapshot; callers can hold it without racing later appends.
func (s *LeadStore) List() []entity.Lead {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Lead, len(s.leads))
	copy(out, s.leads)
	return out
}

func (s *LeadStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.leads)
}
