package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"starwarsblog/internal/domain"
)

func TestPlanetCreateAndGet(t *testing.T) {
	repo := NewPlanetRepository(setupTestDB(t))
	ctx := context.Background()

	p := &domain.Planet{Name: "Tatooine", Population: "200000", Diameter: "10465"}
	require.NoError(t, repo.Create(ctx, p))
	assert.Equal(t, int64(1), p.ID)

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, *p, *got)
}

func TestCreateDuplicateNameIsDuplicateKey(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	planets := NewPlanetRepository(db)
	require.NoError(t, planets.Create(ctx, &domain.Planet{Name: "Tatooine", Population: "200000", Diameter: "10465"}))
	err := planets.Create(ctx, &domain.Planet{Name: "Tatooine", Population: "1", Diameter: "1"})
	assert.True(t, errors.Is(err, domain.ErrDuplicateKey), "got %v", err)

	vehicles := NewVehicleRepository(db)
	require.NoError(t, vehicles.Create(ctx, &domain.Vehicle{Name: "X-wing", Model: "T-65B", Size: "12.5"}))
	err = vehicles.Create(ctx, &domain.Vehicle{Name: "X-wing", Model: "T-70", Size: "12.5"})
	assert.True(t, errors.Is(err, domain.ErrDuplicateKey), "got %v", err)

	characters := NewCharacterRepository(db)
	require.NoError(t, characters.Create(ctx, &domain.Character{Name: "Luke", Gender: "male", EyeColor: "blue"}))
	err = characters.Create(ctx, &domain.Character{Name: "Luke", Gender: "male", EyeColor: "green"})
	assert.True(t, errors.Is(err, domain.ErrDuplicateKey), "got %v", err)

	list, err := characters.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestCreateUniquenessIsCaseSensitive(t *testing.T) {
	repo := NewPlanetRepository(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.Planet{Name: "Hoth", Population: "0", Diameter: "7200"}))
	require.NoError(t, repo.Create(ctx, &domain.Planet{Name: "hoth", Population: "0", Diameter: "7200"}))
}

func TestUserEmailUnique(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newTestUser("luke@rebellion.org")))
	err := repo.Create(ctx, newTestUser("luke@rebellion.org"))
	assert.True(t, errors.Is(err, domain.ErrDuplicateKey), "got %v", err)
}

func TestGetByIDMissingIsNotFound(t *testing.T) {
	repo := NewVehicleRepository(setupTestDB(t))

	_, err := repo.GetByID(context.Background(), 99)
	assert.True(t, errors.Is(err, domain.ErrNotFound), "got %v", err)
}

func TestListEmptyIsNotNil(t *testing.T) {
	repo := NewCharacterRepository(setupTestDB(t))

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestListOrderedByID(t *testing.T) {
	repo := NewVehicleRepository(setupTestDB(t))
	ctx := context.Background()

	for _, name := range []string{"Speeder", "AT-AT", "TIE fighter"} {
		require.NoError(t, repo.Create(ctx, &domain.Vehicle{Name: name, Model: "m", Size: "s"}))
	}

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Speeder", list[0].Name)
	assert.Equal(t, "AT-AT", list[1].Name)
	assert.Equal(t, "TIE fighter", list[2].Name)
}

func TestIsUniqueConstraintError(t *testing.T) {
	assert.True(t, isUniqueConstraintError(errors.New("constraint failed: UNIQUE constraint failed: planets.name (2067)")))
	assert.True(t, isUniqueConstraintError(errors.New(`ERROR: duplicate key value violates unique constraint "idx_planets_name" (SQLSTATE 23505)`)))
	assert.False(t, isUniqueConstraintError(errors.New("no such table: planets")))
}
