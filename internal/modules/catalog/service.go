package catalog

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"

	"starwarsblog/internal/domain"
	"starwarsblog/internal/pkg/validator"
	"starwarsblog/internal/repository"
)

// Required fields per kind, in the order they are checked.
var (
	userFields      = []string{"name", "last_name", "email", "password"}
	planetFields    = []string{"name", "population", "diameter"}
	vehicleFields   = []string{"name", "model", "size"}
	characterFields = []string{"name", "gender", "eye_color"}
)

// Service is the entity store: validated creation plus reads for every
// entity table.
type Service struct {
	users      *repository.UserRepository
	planets    *repository.PlanetRepository
	vehicles   *repository.VehicleRepository
	characters *repository.CharacterRepository

	passwordCost int
	now          func() time.Time
}

func NewService(
	users *repository.UserRepository,
	planets *repository.PlanetRepository,
	vehicles *repository.VehicleRepository,
	characters *repository.CharacterRepository,
) *Service {
	return &Service{
		users:        users,
		planets:      planets,
		vehicles:     vehicles,
		characters:   characters,
		passwordCost: bcrypt.DefaultCost,
		now:          time.Now,
	}
}

// Create validates fields for the kind and inserts a new row.
func (s *Service) Create(ctx context.Context, kind domain.EntityKind, fields map[string]any) (domain.Entity, error) {
	switch kind {
	case domain.KindUser:
		u, err := s.newUser(fields)
		if err != nil {
			return nil, err
		}
		if err := s.users.Create(ctx, u); err != nil {
			return nil, err
		}
		return *u, nil

	case domain.KindPlanet:
		v, err := validator.RequireStrings(fields, planetFields...)
		if err != nil {
			return nil, err
		}
		p := &domain.Planet{Name: v["name"], Population: v["population"], Diameter: v["diameter"]}
		if err := s.planets.Create(ctx, p); err != nil {
			return nil, err
		}
		return *p, nil

	case domain.KindVehicle:
		v, err := validator.RequireStrings(fields, vehicleFields...)
		if err != nil {
			return nil, err
		}
		veh := &domain.Vehicle{Name: v["name"], Model: v["model"], Size: v["size"]}
		if err := s.vehicles.Create(ctx, veh); err != nil {
			return nil, err
		}
		return *veh, nil

	case domain.KindCharacter:
		v, err := validator.RequireStrings(fields, characterFields...)
		if err != nil {
			return nil, err
		}
		ch := &domain.Character{Name: v["name"], Gender: v["gender"], EyeColor: v["eye_color"]}
		if err := s.characters.Create(ctx, ch); err != nil {
			return nil, err
		}
		return *ch, nil
	}
	return nil, domain.NewValidationError("kind", "unknown entity kind")
}

// GetByID returns domain.ErrNotFound for a missing row.
func (s *Service) GetByID(ctx context.Context, kind domain.EntityKind, id int64) (domain.Entity, error) {
	switch kind {
	case domain.KindUser:
		return getEntity(ctx, s.users, kind, id)
	case domain.KindPlanet:
		return getEntity(ctx, s.planets, kind, id)
	case domain.KindVehicle:
		return getEntity(ctx, s.vehicles, kind, id)
	case domain.KindCharacter:
		return getEntity(ctx, s.characters, kind, id)
	}
	return nil, domain.NewValidationError("kind", "unknown entity kind")
}

// ListAll returns every row of the kind; an empty table yields an empty slice.
func (s *Service) ListAll(ctx context.Context, kind domain.EntityKind) ([]domain.Entity, error) {
	switch kind {
	case domain.KindUser:
		return listEntities(ctx, s.users)
	case domain.KindPlanet:
		return listEntities(ctx, s.planets)
	case domain.KindVehicle:
		return listEntities(ctx, s.vehicles)
	case domain.KindCharacter:
		return listEntities(ctx, s.characters)
	}
	return nil, domain.NewValidationError("kind", "unknown entity kind")
}

func (s *Service) newUser(fields map[string]any) (*domain.User, error) {
	v, err := validator.RequireStrings(fields, userFields...)
	if err != nil {
		return nil, err
	}
	if err := validator.Email("email", v["email"]); err != nil {
		return nil, err
	}

	isActive := true
	if raw, ok := fields["is_active"]; ok && raw != nil {
		b, ok := raw.(bool)
		if !ok {
			return nil, domain.NewValidationError("is_active", "must be a boolean")
		}
		isActive = b
	}

	now := s.now().UTC()
	subscribed := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if raw, ok := fields["date_of_suscription"]; ok && raw != nil {
		str, ok := raw.(string)
		if !ok {
			return nil, domain.NewValidationError("date_of_suscription", "must be a YYYY-MM-DD string")
		}
		d, err := time.Parse(domain.DateLayout, str)
		if err != nil {
			return nil, domain.NewValidationError("date_of_suscription", "must be a YYYY-MM-DD string")
		}
		subscribed = d
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(v["password"]), s.passwordCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	return &domain.User{
		Name:              v["name"],
		LastName:          v["last_name"],
		Email:             v["email"],
		PasswordHash:      string(hash),
		IsActive:          isActive,
		DateOfSuscription: datatypes.Date(subscribed),
	}, nil
}

func getEntity[T domain.Entity](ctx context.Context, repo *repository.EntityRepository[T], kind domain.EntityKind, id int64) (domain.Entity, error) {
	e, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s %d: %w", kind, id, err)
	}
	return *e, nil
}

func listEntities[T domain.Entity](ctx context.Context, repo *repository.EntityRepository[T]) ([]domain.Entity, error) {
	items, err := repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Entity, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out, nil
}
