package controllers

import (
	"errors"
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type SavedRecipeController struct {
	saved *services.SavedRecipeService
}

func NewSavedRecipeController(saved *services.SavedRecipeService) *SavedRecipeController {
	return &SavedRecipeController{saved: saved}
}

// The acting user comes from the session; the path userId must match it.
func (ctl *SavedRecipeController) actingUser(c *gin.Context) (string, bool) {
	userID := c.GetString("userID")
	if c.Param("userId") != userID {
		respond(c, http.StatusForbidden, "Forbidden", nil)
		return "", false
	}
	return userID, true
}

// POST /users/:userId/saved-recipes
func (ctl *SavedRecipeController) Save(c *gin.Context) {
	userID, ok := ctl.actingUser(c)
	if !ok {
		return
	}

	var body struct {
		RecipeID string `json:"recipeId"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.RecipeID == "" {
		respond(c, http.StatusBadRequest, "Recipe ID is required", nil)
		return
	}

	created, err := ctl.saved.Save(userID, body.RecipeID)
	if errors.Is(err, services.ErrNotFound) {
		respond(c, http.StatusNotFound, "Recipe not found", nil)
		return
	}
	if err != nil {
		respondInternal(c, "save recipe", err)
		return
	}
	if !created {
		respond(c, http.StatusOK, "Recipe already saved", nil)
		return
	}
	respond(c, http.StatusCreated, "Recipe saved successfully", nil)
}

// DELETE /users/:userId/saved-recipes/:recipeId
func (ctl *SavedRecipeController) Remove(c *gin.Context) {
	userID, ok := ctl.actingUser(c)
	if !ok {
		return
	}

	err := ctl.saved.Remove(userID, c.Param("recipeId"))
	if errors.Is(err, services.ErrNotFound) {
		respond(c, http.StatusNotFound, "Recipe not found in collection", nil)
		return
	}
	if err != nil {
		respondInternal(c, "remove saved recipe", err)
		return
	}
	respond(c, http.StatusOK, "Recipe removed from collection successfully", nil)
}

// GET /users/:userId/saved-recipes
func (ctl *SavedRecipeController) List(c *gin.Context) {
	userID, ok := ctl.actingUser(c)
	if !ok {
		return
	}

	recipes, err := ctl.saved.ListForUser(userID)
	if err != nil {
		respondInternal(c, "list saved recipes", err)
		return
	}
	respond(c, http.StatusOK, "Saved recipes fetched successfully", recipes)
}
