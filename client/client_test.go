package client_test

import (
	"context"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"backend/client"
	"backend/config"
	"backend/models"
	"backend/routes"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type nullMailer struct{}

func (nullMailer) Send(ctx context.Context, to, subject, body string) error { return nil }

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Recipe{}, &models.SavedRecipe{}))

	srv := httptest.NewServer(routes.SetupRouter(&config.Config{JWTSecret: "test-secret"}, db, nullMailer{}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFormValidation(t *testing.T) {
	valid := client.RecipeForm{
		Title:       "Soup",
		Ingredients: "water",
		Preparation: "boil",
		Category:    "Dinner",
		Tags:        []string{"easy"},
	}
	assert.NoError(t, valid.Validate())

	cases := map[string]client.RecipeForm{
		"missing title":       {Ingredients: "i", Preparation: "p", Category: "c", Tags: []string{"t"}},
		"missing ingredients": {Title: "t", Preparation: "p", Category: "c", Tags: []string{"t"}},
		"missing preparation": {Title: "t", Ingredients: "i", Category: "c", Tags: []string{"t"}},
		"missing category":    {Title: "t", Ingredients: "i", Preparation: "p", Tags: []string{"t"}},
		"no tags":             {Title: "t", Ingredients: "i", Preparation: "p", Category: "c"},
		"only blank tags":     {Title: "t", Ingredients: "i", Preparation: "p", Category: "c", Tags: []string{" ", ""}},
	}
	for name, form := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, form.Validate())
		})
	}
}

func TestClientRoundTrip(t *testing.T) {
	srv := newTestServer(t)

	author := client.New(srv.URL)
	authorID, err := author.Register("author@example.com", "password123", "Author")
	require.NoError(t, err)
	require.NotEmpty(t, authorID)
	require.NoError(t, author.Login("author@example.com", "password123"))

	reader := client.New(srv.URL)
	readerID, err := reader.Register("reader@example.com", "password123", "Reader")
	require.NoError(t, err)
	require.NoError(t, reader.Login("reader@example.com", "password123"))

	form := client.RecipeForm{
		Title:       "Tomato Soup",
		Ingredients: "tomato,water",
		Preparation: "boil",
		Category:    "Dinner",
		Tags:        []string{"easy"},
	}

	t.Run("invalid form never reaches the server", func(t *testing.T) {
		_, err := author.CreateRecipe(client.RecipeForm{Title: "Only a title"})
		require.Error(t, err)
		assert.NotErrorAs(t, err, new(*client.APIError))
	})

	recipe, err := author.CreateRecipe(form)
	require.NoError(t, err)
	require.NotEmpty(t, recipe.ID)
	assert.Equal(t, form.Title, recipe.Title)
	assert.Equal(t, form.Tags, recipe.Tags)

	t.Run("search pages carry metadata", func(t *testing.T) {
		page, err := reader.Search("tomato", 1)
		require.NoError(t, err)
		require.Len(t, page.Items, 1)
		assert.Equal(t, recipe.ID, page.Items[0].ID)
		assert.Equal(t, 1, page.Page)
		assert.Equal(t, 1, page.TotalPages)
		assert.EqualValues(t, 1, page.Total)
	})

	t.Run("browse filters", func(t *testing.T) {
		page, err := reader.Browse("Dinner", "", 1)
		require.NoError(t, err)
		assert.Len(t, page.Items, 1)

		page, err = reader.Browse("Breakfast", "", 1)
		require.NoError(t, err)
		assert.Empty(t, page.Items)
	})

	t.Run("save and collection", func(t *testing.T) {
		require.NoError(t, reader.SaveRecipe(readerID, recipe.ID))

		saved, err := reader.SavedRecipes(readerID)
		require.NoError(t, err)
		require.Len(t, saved, 1)
		assert.Equal(t, recipe.ID, saved[0].ID)

		require.NoError(t, reader.RemoveSavedRecipe(readerID, recipe.ID))

		err = reader.RemoveSavedRecipe(readerID, recipe.ID)
		var apiErr *client.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 404, apiErr.Status)
	})

	t.Run("foreign delete surfaces the server message", func(t *testing.T) {
		err := reader.DeleteRecipe(recipe.ID)
		var apiErr *client.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 404, apiErr.Status)
		assert.Equal(t, "Recipe not found or not authorized", apiErr.Message)
	})

	t.Run("update and delete by the owner", func(t *testing.T) {
		form.Title = "Roasted Tomato Soup"
		updated, err := author.UpdateRecipe(recipe.ID, form)
		require.NoError(t, err)
		assert.Equal(t, "Roasted Tomato Soup", updated.Title)

		require.NoError(t, author.DeleteRecipe(recipe.ID))
	})
}
