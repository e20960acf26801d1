package services

import (
	"io"
	"testing"

	"backend/models"

	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Token{},
		&models.Fridge{},
		&models.FridgeItem{},
	))
	return db
}

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func registerTestUser(t *testing.T, svc *AuthService, email string) *models.User {
	t.Helper()

	_, err := svc.Register(email, "pw123456", "")
	require.NoError(t, err)

	result, err := svc.Login(email, "pw123456")
	require.NoError(t, err)

	resolved, err := svc.ResolveToken(result.Token)
	require.NoError(t, err)
	return resolved
}
