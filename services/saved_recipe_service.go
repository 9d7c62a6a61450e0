package services

import (
	"errors"

	"backend/models"

	"gorm.io/gorm"
)

type SavedRecipeService struct {
	db *gorm.DB
}

func NewSavedRecipeService(db *gorm.DB) *SavedRecipeService {
	return &SavedRecipeService{db: db}
}

// Save bookmarks a recipe for a user. Saving a recipe that is already in
// the collection is a no-op; the unique index on (user_id, recipe_id)
// backstops concurrent duplicate saves. Returns whether a row was created.
func (s *SavedRecipeService) Save(userID, recipeID string) (bool, error) {
	var count int64
	if err := s.db.Model(&models.Recipe{}).Where("id = ?", recipeID).Count(&count).Error; err != nil {
		return false, err
	}
	if count == 0 {
		return false, ErrNotFound
	}

	var existing int64
	err := s.db.Model(&models.SavedRecipe{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&existing).Error
	if err != nil {
		return false, err
	}
	if existing > 0 {
		return false, nil
	}

	err = s.db.Create(&models.SavedRecipe{UserID: userID, RecipeID: recipeID}).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// Lost a race against an identical save.
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Remove deletes the bookmark in a single conditional statement.
func (s *SavedRecipeService) Remove(userID, recipeID string) error {
	res := s.db.Where("user_id = ? AND recipe_id = ?", userID, recipeID).Delete(&models.SavedRecipe{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListForUser returns the full recipes in a user's collection, most
// recently saved first.
func (s *SavedRecipeService) ListForUser(userID string) ([]models.Recipe, error) {
	var recipes []models.Recipe
	err := s.db.
		Joins("JOIN saved_recipes ON saved_recipes.recipe_id = recipes.id").
		Where("saved_recipes.user_id = ?", userID).
		Order("saved_recipes.created_at DESC").
		Find(&recipes).Error
	if err != nil {
		return nil, err
	}
	return recipes, nil
}
