package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-user-cards/internal/adapter"
	"github.com/MKhiriev/go-user-cards/internal/logger"
	"github.com/MKhiriev/go-user-cards/models"
)

type userService struct {
	adapter adapter.RandomUserAdapter
	query   models.UsersQuery
	ids     models.IDGenerator

	logger *logger.Logger
}

func NewUserService(userAdapter adapter.RandomUserAdapter, query models.UsersQuery, ids models.IDGenerator, logger *logger.Logger) UserService {
	return &userService{
		adapter: userAdapter,
		query:   query,
		ids:     ids,
		logger:  logger,
	}
}

func (s *userService) LoadBatch(ctx context.Context) ([]models.User, error) {
	raws, err := s.adapter.FetchUsers(ctx, s.query)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadUsers, err)
	}

	users := make([]models.User, 0, len(raws))
	for _, raw := range raws {
		users = append(users, models.NewUserFromRaw(s.ids, raw))
	}

	s.logger.Info().
		Int("requested", s.query.Results).
		Int("received", len(users)).
		Msg("user batch loaded")

	return users, nil
}
