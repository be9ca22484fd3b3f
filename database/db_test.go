package database

import (
	"errors"
	"fmt"
	"testing"

	"creatorhub/internal/config"
	"creatorhub/internal/microservices/http-api/models"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestIsUniqueViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"gorm duplicated key", gorm.ErrDuplicatedKey, true},
		{"wrapped gorm duplicated key", fmt.Errorf("create: %w", gorm.ErrDuplicatedKey), true},
		{"postgres unique violation", &pgconn.PgError{Code: "23505"}, true},
		{"postgres fk violation", &pgconn.PgError{Code: "23503"}, false},
		{"mysql duplicate entry", &mysql.MySQLError{Number: 1062}, true},
		{"mysql other", &mysql.MySQLError{Number: 1452}, false},
		{"plain error", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsUniqueViolation(tt.err))
		})
	}
}

func TestConnect_UnsupportedDriver(t *testing.T) {
	_, err := Connect(&config.Config{DatabaseDriver: "oracle"})
	assert.Error(t, err)
}

func TestOpenInMemory_MigratesAndEnforcesUniqueEmail(t *testing.T) {
	db, err := OpenInMemory(uuid.NewString())
	require.NoError(t, err)

	require.NoError(t, db.Create(&models.User{Email: "a@example.com", PasswordHash: "x", Role: models.RoleBrand}).Error)
	err = db.Create(&models.User{Email: "a@example.com", PasswordHash: "y", Role: models.RoleCreator}).Error

	assert.True(t, IsUniqueViolation(err))
}

func TestOpenInMemory_EnforcesRatingPair(t *testing.T) {
	db, err := OpenInMemory(uuid.NewString())
	require.NoError(t, err)

	from := &models.User{Email: "from@example.com", PasswordHash: "x", Role: models.RoleBrand}
	to := &models.User{Email: "to@example.com", PasswordHash: "x", Role: models.RoleCreator}
	require.NoError(t, db.Create(from).Error)
	require.NoError(t, db.Create(to).Error)

	require.NoError(t, db.Create(&models.Rating{FromUserID: from.ID, ToUserID: to.ID, Score: 4}).Error)
	err = db.Create(&models.Rating{FromUserID: from.ID, ToUserID: to.ID, Score: 2}).Error

	assert.True(t, IsUniqueViolation(err))
}
