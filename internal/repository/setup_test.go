package repository

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"starwarsblog/internal/database"
	"starwarsblog/internal/domain"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:repository_test_%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := database.Connect(dsn, "silent")
	require.NoError(t, err, "failed to open sqlite db")
	require.NoError(t, database.Migrate(db), "failed to migrate db")
	return db
}

func newTestUser(email string) *domain.User {
	return &domain.User{
		Name:              "Luke",
		LastName:          "Skywalker",
		Email:             email,
		PasswordHash:      "hash",
		IsActive:          true,
		DateOfSuscription: datatypes.Date(time.Date(2024, 5, 4, 0, 0, 0, 0, time.UTC)),
	}
}
