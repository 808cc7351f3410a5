package service

import (
	"context"

	"github.com/Astemirdum/library-catalog/library/internal/model"
	"github.com/Astemirdum/library-catalog/pkg/kafka"
)

// RecordEvent stores a consumed library event for the activity stats.
func (s *Service) RecordEvent(ctx context.Context, event kafka.Event) error {
	if s.activity == nil {
		return nil
	}
	return s.activity.RecordEvent(ctx, event)
}

func (s *Service) GetActivityStats(ctx context.Context) (model.ActivityStats, error) {
	if s.activity == nil {
		return model.ActivityStats{Data: []model.PatronActivity{}}, nil
	}
	items, err := s.activity.PatronActivity(ctx)
	if err != nil {
		return model.ActivityStats{}, s.internalErr("PatronActivity", err, "Database error occurred while loading activity stats.")
	}
	return model.ActivityStats{Data: items}, nil
}
