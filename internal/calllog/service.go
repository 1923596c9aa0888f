package calllog

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Repository is the persistence contract for call events.
// Append-only: there are no update or delete methods.
type Repository interface {
	Append(ctx context.Context, e Event) error
	List(ctx context.Context, storeID string, from, to time.Time) ([]Event, error)
}

var ErrInvalidEvent = errors.New("calllog: invalid event")

// Service validates and stamps call events before persisting them.
type Service struct {
	repo  Repository
	clock func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, clock: time.Now}
}

func (s *Service) Append(ctx context.Context, e Event) error {
	if s.repo == nil {
		return errors.New("calllog: repository not configured")
	}
	if e.CallID == "" || e.StoreID == "" {
		return ErrInvalidEvent
	}
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = s.clock().UTC()
	}
	return s.repo.Append(ctx, e)
}

// List returns events for one store inside [from, to), newest last.
func (s *Service) List(ctx context.Context, storeID string, from, to time.Time) ([]Event, error) {
	if s.repo == nil {
		return nil, errors.New("calllog: repository not configured")
	}
	if storeID == "" {
		return nil, ErrInvalidEvent
	}
	return s.repo.List(ctx, storeID, from, to)
}
