package services

import (
	"context"
	"path/filepath"
	"testing"

	"backend/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// Postgres LIKE is case-sensitive; make the sqlite test DB behave the same.
	require.NoError(t, db.Exec("PRAGMA case_sensitive_like = ON").Error)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Recipe{}, &models.SavedRecipe{}))
	return db
}

type sentMail struct {
	to      string
	subject string
	body    string
}

type fakeMailer struct {
	sent []sentMail
}

func (m *fakeMailer) Send(ctx context.Context, to, subject, body string) error {
	m.sent = append(m.sent, sentMail{to: to, subject: subject, body: body})
	return nil
}

func seedRecipe(t *testing.T, db *gorm.DB, userID, title, category string, tags []string) *models.Recipe {
	t.Helper()
	recipe := &models.Recipe{
		Title:       title,
		Ingredients: "ingredients for " + title,
		Preparation: "preparation for " + title,
		Category:    category,
		Tags:        tags,
		UserID:      userID,
	}
	require.NoError(t, db.Create(recipe).Error)
	return recipe
}
