package events

import (
	"context"
	"fmt"

	"github.com/lunacal-app/lunacal-backend/internal/model"
)

func (s *Service) CreateEvent(ctx context.Context, info *model.EventCreate) (*model.Event, error) {
	rule, err := normalizeRule(info)
	if err != nil {
		return nil, err
	}
	info.RecurrenceRule = rule

	id, err := s.eventsRepository.CreateEvent(ctx, s.db, info)
	if err != nil {
		return nil, fmt.Errorf("eventsRepository.CreateEvent: %w", err)
	}

	return &model.Event{ID: id, EventCreate: *info}, nil
}
