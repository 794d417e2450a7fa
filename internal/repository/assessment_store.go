package repository

import (
	"errors"
	"sync"
	"time"

	"github.com/Dolonia333/enhanced-games-peptides/internal/models"
	"github.com/google/uuid"
)

var (
	ErrSessionNotFound = errors.New("assessment session not found")
	ErrStoreFull       = errors.New("assessment store at capacity")
)

// AssessmentStore keeps live assessment sessions in memory. Sessions are
// created per client visit and dropped on delete or process exit; nothing is
// ever written through to disk. A capacity bounds the map so abandoned
// sessions cannot grow it without limit; zero means unbounded.
//
// All mutation happens inside Update under the store's lock; Get and Create
// hand out snapshot copies, never the stored session itself.
type AssessmentStore struct {
	mu       sync.RWMutex
	capacity int
	sessions map[string]*models.AssessmentSession
}

func NewAssessmentStore(capacity int) *AssessmentStore {
	return &AssessmentStore{
		capacity: capacity,
		sessions: make(map[string]*models.AssessmentSession),
	}
}

func (s *AssessmentStore) Create() (*models.AssessmentSession, error) {
	now := time.Now().UTC()
	session := &models.AssessmentSession{
		ID:             uuid.NewString(),
		CurrentStep:    0,
		CompletedSteps: []int{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.capacity > 0 && len(s.sessions) >= s.capacity {
		return nil, ErrStoreFull
	}
	s.sessions[session.ID] = session

	return snapshotSession(session), nil
}

func (s *AssessmentStore) Get(id string) (*models.AssessmentSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return snapshotSession(session), nil
}

// Update applies fn to the stored session under the store's lock and returns
// a snapshot of the result. When fn returns an error the session keeps
// whatever state fn left it in; callers must only mutate on the nil path.
func (s *AssessmentStore) Update(id string, fn func(*models.AssessmentSession) error) (*models.AssessmentSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if err := fn(session); err != nil {
		return nil, err
	}
	return snapshotSession(session), nil
}

func (s *AssessmentStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(s.sessions, id)
	return nil
}

func (s *AssessmentStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// snapshotSession copies the session and its completed-steps slice. Answer
// sub-values are shared but only ever replaced whole under the lock, never
// mutated in place.
func snapshotSession(session *models.AssessmentSession) *models.AssessmentSession {
	clone := *session
	clone.CompletedSteps = make([]int, len(session.CompletedSteps))
	copy(clone.CompletedSteps, session.CompletedSteps)
	return &clone
}
