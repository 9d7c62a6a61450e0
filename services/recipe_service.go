package services

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"backend/models"

	"gorm.io/gorm"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 50
)

type RecipeService struct {
	db *gorm.DB
}

func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// RecipeInput carries the writable fields of a recipe.
type RecipeInput struct {
	Title       string
	Ingredients string
	Preparation string
	Category    string
	Tags        []string
}

// RecipeSummary is the projection returned by search and browse listings.
type RecipeSummary struct {
	ID       string            `json:"id"`
	Title    string            `json:"title"`
	Category string            `json:"category"`
	Tags     models.StringList `json:"tags"`
}

func (s *RecipeService) Create(userID string, in RecipeInput) (*models.Recipe, error) {
	recipe := models.Recipe{
		Title:       in.Title,
		Ingredients: in.Ingredients,
		Preparation: in.Preparation,
		Category:    in.Category,
		Tags:        in.Tags,
		UserID:      userID,
	}
	if err := s.db.Create(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (s *RecipeService) Get(recipeID string) (*models.Recipe, error) {
	var recipe models.Recipe
	err := s.db.First(&recipe, "id = ?", recipeID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

// Update writes the new fields in a single statement scoped to the owner.
// A missing recipe and a foreign recipe both come back as ErrNotFound.
func (s *RecipeService) Update(userID, recipeID string, in RecipeInput) (*models.Recipe, error) {
	tags, err := models.StringList(in.Tags).Value()
	if err != nil {
		return nil, err
	}
	res := s.db.Model(&models.Recipe{}).
		Where("id = ? AND user_id = ?", recipeID, userID).
		Updates(map[string]interface{}{
			"title":       in.Title,
			"ingredients": in.Ingredients,
			"preparation": in.Preparation,
			"category":    in.Category,
			"tags":        tags,
			"updated_at":  time.Now(),
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.Get(recipeID)
}

// Delete removes the recipe in a single owner-scoped statement, so a
// concurrent duplicate delete degrades to ErrNotFound instead of failing.
func (s *RecipeService) Delete(userID, recipeID string) error {
	res := s.db.Where("id = ? AND user_id = ?", recipeID, userID).Delete(&models.Recipe{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Search matches recipes whose title contains the query case-insensitively,
// or whose tag list contains the query exactly (case-sensitive). Results are
// paginated server-side.
func (s *RecipeService) Search(query string, page, limit int) ([]RecipeSummary, int64, error) {
	page, limit = clampPage(page, limit)

	titlePattern := "%" + escapeLike(strings.ToLower(query)) + "%"
	// Tags are stored JSON-encoded, so an exact tag is a quoted substring.
	encoded, err := json.Marshal(query)
	if err != nil {
		return nil, 0, err
	}
	tagPattern := "%" + escapeLike(string(encoded)) + "%"

	matches := func() *gorm.DB {
		return s.db.Model(&models.Recipe{}).
			Where(`lower(title) LIKE ? ESCAPE '\' OR tags LIKE ? ESCAPE '\'`, titlePattern, tagPattern)
	}

	var total int64
	if err := matches().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var results []RecipeSummary
	err = matches().Order("created_at DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&results).Error
	if err != nil {
		return nil, 0, err
	}
	return results, total, nil
}

// List is the browse listing: optional exact category and title keyword
// filters, paginated.
func (s *RecipeService) List(category, keyword string, page, limit int) ([]RecipeSummary, int64, error) {
	page, limit = clampPage(page, limit)

	matches := func() *gorm.DB {
		tx := s.db.Model(&models.Recipe{})
		if category != "" {
			tx = tx.Where("category = ?", category)
		}
		if keyword != "" {
			tx = tx.Where(`lower(title) LIKE ? ESCAPE '\'`, "%"+escapeLike(strings.ToLower(keyword))+"%")
		}
		return tx
	}

	var total int64
	if err := matches().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var results []RecipeSummary
	err := matches().Order("created_at DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&results).Error
	if err != nil {
		return nil, 0, err
	}
	return results, total, nil
}

// TotalPages converts a match count into the page count for a given limit.
func TotalPages(total int64, limit int) int {
	if total == 0 {
		return 1
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

func clampPage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	return page, limit
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
