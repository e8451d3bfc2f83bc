package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"starwarsblog/internal/domain"
)

// EntityRepository stores one entity table. Rows are insert-only.
type EntityRepository[T domain.Entity] struct {
	db *gorm.DB
}

type (
	UserRepository      = EntityRepository[domain.User]
	PlanetRepository    = EntityRepository[domain.Planet]
	VehicleRepository   = EntityRepository[domain.Vehicle]
	CharacterRepository = EntityRepository[domain.Character]
)

func NewEntityRepository[T domain.Entity](db *gorm.DB) *EntityRepository[T] {
	return &EntityRepository[T]{db: db}
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return NewEntityRepository[domain.User](db)
}

func NewPlanetRepository(db *gorm.DB) *PlanetRepository {
	return NewEntityRepository[domain.Planet](db)
}

func NewVehicleRepository(db *gorm.DB) *VehicleRepository {
	return NewEntityRepository[domain.Vehicle](db)
}

func NewCharacterRepository(db *gorm.DB) *CharacterRepository {
	return NewEntityRepository[domain.Character](db)
}

// Create inserts e and fills its ID. A row with the same unique key
// (name or email) yields domain.ErrDuplicateKey.
func (r *EntityRepository[T]) Create(ctx context.Context, e *T) error {
	col, val := (*e).UniqueKey()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(new(T)).
			Where(clause.Eq{Column: clause.Column{Name: col}, Value: val}).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return fmt.Errorf("%s %q: %w", col, val, domain.ErrDuplicateKey)
		}

		if err := tx.Create(e).Error; err != nil {
			if isUniqueConstraintError(err) {
				return fmt.Errorf("%s %q: %w", col, val, domain.ErrDuplicateKey)
			}
			return err
		}
		return nil
	})
}

// GetByID returns domain.ErrNotFound when no row has the id.
func (r *EntityRepository[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	var e T
	if err := r.db.WithContext(ctx).First(&e, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &e, nil
}

// List returns all rows by ascending id; never nil.
func (r *EntityRepository[T]) List(ctx context.Context) ([]T, error) {
	items := make([]T, 0)
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
