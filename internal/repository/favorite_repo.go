package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"starwarsblog/internal/domain"
)

// FavoriteRepository stores the user-to-target favorite links.
type FavoriteRepository interface {
	Add(ctx context.Context, userID int64, target domain.Target) (*domain.Favorite, error)
	Remove(ctx context.Context, userID int64, target domain.Target) error
	GetByUserID(ctx context.Context, userID int64) ([]domain.Favorite, error)
	Exists(ctx context.Context, userID int64, target domain.Target) (bool, error)
}

type favoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

// Add links the user to the target. The user and the target rows are read
// under a share lock in the same transaction as the insert, so neither can
// disappear before the favorite is committed.
func (r *favoriteRepository) Add(ctx context.Context, userID int64, target domain.Target) (*domain.Favorite, error) {
	model, err := targetModel(target.Kind)
	if err != nil {
		return nil, err
	}

	favorite := &domain.Favorite{UserID: userID, Target: target}

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockRow(tx, &domain.User{}, userID); err != nil {
			return fmt.Errorf("user %d: %w", userID, err)
		}
		if err := lockRow(tx, model, target.ID); err != nil {
			return fmt.Errorf("%s %d: %w", target.Kind, target.ID, err)
		}

		var count int64
		if err := whereTriple(tx.Model(&domain.Favorite{}), userID, target).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return fmt.Errorf("%s %d already in favorites: %w", target.Kind, target.ID, domain.ErrDuplicateKey)
		}

		if err := tx.Create(favorite).Error; err != nil {
			if isUniqueConstraintError(err) {
				return fmt.Errorf("%s %d already in favorites: %w", target.Kind, target.ID, domain.ErrDuplicateKey)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return favorite, nil
}

// Remove deletes the favorite matching user and target.
// Returns domain.ErrNotFound when there is none.
func (r *favoriteRepository) Remove(ctx context.Context, userID int64, target domain.Target) error {
	result := whereTriple(r.db.WithContext(ctx), userID, target).Delete(&domain.Favorite{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// GetByUserID returns the user's favorites oldest first; never nil.
func (r *favoriteRepository) GetByUserID(ctx context.Context, userID int64) ([]domain.Favorite, error) {
	favorites := make([]domain.Favorite, 0)
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&favorites).Error
	if err != nil {
		return nil, err
	}
	return favorites, nil
}

func (r *favoriteRepository) Exists(ctx context.Context, userID int64, target domain.Target) (bool, error) {
	var count int64
	err := whereTriple(r.db.WithContext(ctx).Model(&domain.Favorite{}), userID, target).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func whereTriple(q *gorm.DB, userID int64, target domain.Target) *gorm.DB {
	return q.Where("user_id = ? AND target_kind = ? AND target_id = ?", userID, target.Kind, target.ID)
}

// lockRow loads the row's id FOR SHARE. SQLite ignores the locking clause;
// its single writer connection already serializes the transaction.
func lockRow(tx *gorm.DB, model interface{}, id int64) error {
	err := tx.Clauses(clause.Locking{Strength: "SHARE"}).
		Select("id").
		First(model, id).Error
	return notFound(err)
}

func targetModel(kind domain.TargetKind) (interface{}, error) {
	switch kind {
	case domain.TargetPlanet:
		return &domain.Planet{}, nil
	case domain.TargetVehicle:
		return &domain.Vehicle{}, nil
	case domain.TargetCharacter:
		return &domain.Character{}, nil
	}
	return nil, domain.NewValidationError("target_kind", "must be one of planet, vehicle, character")
}
