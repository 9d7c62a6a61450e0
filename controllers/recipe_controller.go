package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"backend/models"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type RecipeController struct {
	recipes *services.RecipeService
}

func NewRecipeController(recipes *services.RecipeService) *RecipeController {
	return &RecipeController{recipes: recipes}
}

type recipeRequest struct {
	Title       string   `json:"title"`
	Ingredients string   `json:"ingredients"`
	Preparation string   `json:"preparation"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
}

func (r recipeRequest) valid() bool {
	// Tags must be present as an array; nil means absent or not an array.
	return r.Title != "" && r.Ingredients != "" && r.Preparation != "" &&
		r.Category != "" && r.Tags != nil
}

func (r recipeRequest) input() services.RecipeInput {
	return services.RecipeInput{
		Title:       r.Title,
		Ingredients: r.Ingredients,
		Preparation: r.Preparation,
		Category:    r.Category,
		Tags:        r.Tags,
	}
}

func publicRecipe(recipe *models.Recipe) gin.H {
	return gin.H{
		"id":          recipe.ID,
		"title":       recipe.Title,
		"ingredients": recipe.Ingredients,
		"preparation": recipe.Preparation,
		"category":    recipe.Category,
		"tags":        recipe.Tags,
	}
}

// POST /recipes
func (ctl *RecipeController) Create(c *gin.Context) {
	userID := c.GetString("userID")

	var body recipeRequest
	if err := c.ShouldBindJSON(&body); err != nil || !body.valid() {
		respond(c, http.StatusBadRequest, "Missing required fields or incorrect format", nil)
		return
	}

	recipe, err := ctl.recipes.Create(userID, body.input())
	if err != nil {
		respondInternal(c, "create recipe", err)
		return
	}
	respond(c, http.StatusCreated, "Recipe uploaded successfully", publicRecipe(recipe))
}

// PUT /recipes/:recipeId
func (ctl *RecipeController) Update(c *gin.Context) {
	userID := c.GetString("userID")
	recipeID := c.Param("recipeId")

	var body recipeRequest
	if err := c.ShouldBindJSON(&body); err != nil || !body.valid() {
		respond(c, http.StatusBadRequest, "Missing required fields or incorrect format", nil)
		return
	}

	recipe, err := ctl.recipes.Update(userID, recipeID, body.input())
	if errors.Is(err, services.ErrNotFound) {
		respond(c, http.StatusNotFound, "Recipe not found or not authorized", nil)
		return
	}
	if err != nil {
		respondInternal(c, "update recipe", err)
		return
	}
	respond(c, http.StatusOK, "Recipe updated successfully", publicRecipe(recipe))
}

// DELETE /recipes/:recipeId
func (ctl *RecipeController) Delete(c *gin.Context) {
	userID := c.GetString("userID")
	recipeID := c.Param("recipeId")

	err := ctl.recipes.Delete(userID, recipeID)
	if errors.Is(err, services.ErrNotFound) {
		respond(c, http.StatusNotFound, "Recipe not found or not authorized", nil)
		return
	}
	if err != nil {
		respondInternal(c, "delete recipe", err)
		return
	}
	respond(c, http.StatusOK, "Recipe deleted successfully", nil)
}

// GET /recipes/search?query=&page=&limit=
func (ctl *RecipeController) Search(c *gin.Context) {
	query := c.Query("query")
	page, limit := pageLimit(c)

	results, total, err := ctl.recipes.Search(query, page, limit)
	if err != nil {
		respondInternal(c, "search recipes", err)
		return
	}
	respondPage(c, "Search results fetched successfully", results,
		page, services.TotalPages(total, limit), total)
}

// GET /recipes?category=&keyword=&page=&limit=
func (ctl *RecipeController) List(c *gin.Context) {
	category := c.Query("category")
	keyword := c.Query("keyword")
	page, limit := pageLimit(c)

	results, total, err := ctl.recipes.List(category, keyword, page, limit)
	if err != nil {
		respondInternal(c, "list recipes", err)
		return
	}
	respondPage(c, "Recipes fetched successfully", results,
		page, services.TotalPages(total, limit), total)
}

func intQuery(c *gin.Context, name string, fallback int) int {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil || v < 1 {
		return fallback
	}
	return v
}

func pageLimit(c *gin.Context) (page, limit int) {
	page = intQuery(c, "page", 1)
	limit = intQuery(c, "limit", services.DefaultPageSize)
	if limit > services.MaxPageSize {
		limit = services.MaxPageSize
	}
	return page, limit
}
