package directory

import (
	"context"
	"errors"
	"sync"
)

// ErrSuperseded means a newer quarter request for the same session was
// issued while this one was in flight. The stale result must be dropped.
var ErrSuperseded = errors.New("quarter lookup superseded")

// Service wraps the directory client and enforces latest-request-wins for
// quarter lookups: when a visitor changes city again before the previous
// fetch resolves, the late-arriving result for the old city is discarded.
type Service struct {
	client *Client

	mu     sync.Mutex
	seq    map[string]uint64
	latest map[string]uint64
}

func NewService(client *Client) *Service {
	return &Service{
		client: client,
		seq:    make(map[string]uint64),
		latest: make(map[string]uint64),
	}
}

func (s *Service) Cities(ctx context.Context) []City {
	return s.client.Cities(ctx)
}

// QuartersForSession fetches the quarters for cityValue on behalf of one
// session. If a newer request for the same session was issued while the
// fetch was outstanding, ErrSuperseded is returned instead of stale data.
func (s *Service) QuartersForSession(ctx context.Context, sessionID, cityValue string) ([]Quarter, error) {
	s.mu.Lock()
	s.seq[sessionID]++
	mine := s.seq[sessionID]
	s.latest[sessionID] = mine
	s.mu.Unlock()

	quarters := s.client.QuartersByCity(ctx, cityValue)

	s.mu.Lock()
	stale := s.latest[sessionID] != mine
	s.mu.Unlock()
	if stale {
		return nil, ErrSuperseded
	}
	return quarters, nil
}

// QuartersByCity is the session-free lookup used for validation.
func (s *Service) QuartersByCity(ctx context.Context, cityValue string) []Quarter {
	return s.client.QuartersByCity(ctx, cityValue)
}
