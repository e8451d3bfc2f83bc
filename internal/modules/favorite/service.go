package favorite

import (
	"context"
	"errors"
	"fmt"

	"starwarsblog/internal/domain"
	"starwarsblog/internal/repository"
)

// Service manages the favorites relation. Arguments are the primitive
// values extracted by the request layer.
type Service struct {
	favorites repository.FavoriteRepository
}

func NewService(favorites repository.FavoriteRepository) *Service {
	return &Service{favorites: favorites}
}

// AddFavorite links the user to the target. Missing user or target
// yields domain.ErrNotFound and nothing is written.
func (s *Service) AddFavorite(ctx context.Context, userID int64, kind string, targetID int64) (*domain.Favorite, error) {
	target, err := parseTarget(userID, kind, targetID)
	if err != nil {
		return nil, err
	}
	return s.favorites.Add(ctx, userID, target)
}

// RemoveFavorite deletes the favorite matching user and target.
func (s *Service) RemoveFavorite(ctx context.Context, userID int64, kind string, targetID int64) error {
	target, err := parseTarget(userID, kind, targetID)
	if err != nil {
		return err
	}
	return s.favorites.Remove(ctx, userID, target)
}

// ListFavorites returns the user's favorites, empty when there are none.
func (s *Service) ListFavorites(ctx context.Context, userID int64) ([]domain.Favorite, error) {
	if userID <= 0 {
		return []domain.Favorite{}, nil
	}
	return s.favorites.GetByUserID(ctx, userID)
}

func (s *Service) IsFavorite(ctx context.Context, userID int64, kind string, targetID int64) (bool, error) {
	target, err := parseTarget(userID, kind, targetID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return s.favorites.Exists(ctx, userID, target)
}

func parseTarget(userID int64, kind string, targetID int64) (domain.Target, error) {
	k, err := domain.ParseTargetKind(kind)
	if err != nil {
		return domain.Target{}, err
	}
	if userID <= 0 {
		return domain.Target{}, fmt.Errorf("user %d: %w", userID, domain.ErrNotFound)
	}
	if targetID <= 0 {
		return domain.Target{}, fmt.Errorf("%s %d: %w", k, targetID, domain.ErrNotFound)
	}
	return domain.Target{Kind: k, ID: targetID}, nil
}
