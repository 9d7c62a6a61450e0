package models

import "time"

// SavedRecipe bookmarks a recipe for a user. The composite unique index
// keeps a user's collection a set even under concurrent saves.
type SavedRecipe struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"userId" gorm:"type:varchar(36);uniqueIndex:idx_user_recipe_save;not null"`
	RecipeID  string    `json:"recipeId" gorm:"type:varchar(36);uniqueIndex:idx_user_recipe_save;not null"`
	CreatedAt time.Time `json:"createdAt"`
}
