package services

import (
	"context"
	"time"

	"scoup/entity"
	"scoup/repository"

	"github.com/rs/zerolog"
)

type EventResponse struct {
	EventID   uint      `json:"eventId"`
	CafeID    uint      `json:"cafeId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

type EventRequest struct {
	Content string `json:"content" binding:"required,notblank"`
}

// EventPublisher fans a newly created event out to live subscribers.
type EventPublisher interface {
	Publish(cafeID uint, ev EventResponse)
}

type EventService struct {
	Repo      *repository.EventRepository
	CafeRepo  *repository.CafeRepository
	UserRepo  *repository.UserRepository
	Publisher EventPublisher
}

func NewEventService(repo *repository.EventRepository, cafeRepo *repository.CafeRepository, userRepo *repository.UserRepository) *EventService {
	return &EventService{Repo: repo, CafeRepo: cafeRepo, UserRepo: userRepo}
}

// List returns a cafe's events oldest first.
func (s *EventService) List(ctx context.Context, cafeID uint) ([]EventResponse, error) {
	if _, err := s.CafeRepo.FindByID(ctx, cafeID); err != nil {
		return nil, notFound(err, ErrCafeNotFound)
	}

	events, err := s.Repo.FindByCafe(ctx, cafeID)
	if err != nil {
		return nil, err
	}
	out := make([]EventResponse, 0, len(events))
	for _, ev := range events {
		out = append(out, toEventResponse(ev))
	}
	return out, nil
}

// Create posts an event for a cafe. Only master users may do this.
func (s *EventService) Create(ctx context.Context, adminID, cafeID uint, req *EventRequest) (*EventResponse, error) {
	if _, err := requireMaster(ctx, s.UserRepo, adminID); err != nil {
		return nil, err
	}
	if _, err := s.CafeRepo.FindByID(ctx, cafeID); err != nil {
		return nil, notFound(err, ErrCafeNotFound)
	}

	ev := entity.Event{CafeID: cafeID, Content: req.Content}
	if err := s.Repo.Create(ctx, &ev); err != nil {
		return nil, err
	}

	out := toEventResponse(ev)
	if s.Publisher != nil {
		s.Publisher.Publish(cafeID, out)
	}
	zerolog.Ctx(ctx).Info().Uint("cafe_id", cafeID).Uint("event_id", ev.ID).Msg("event created")
	return &out, nil
}

func (s *EventService) Delete(ctx context.Context, adminID, eventID uint) error {
	if _, err := requireMaster(ctx, s.UserRepo, adminID); err != nil {
		return err
	}
	if _, err := s.Repo.FindByID(ctx, eventID); err != nil {
		return notFound(err, ErrEventNotFound)
	}
	return s.Repo.Delete(ctx, eventID)
}

func toEventResponse(ev entity.Event) EventResponse {
	return EventResponse{EventID: ev.ID, CafeID: ev.CafeID, Content: ev.Content, CreatedAt: ev.CreatedAt}
}
