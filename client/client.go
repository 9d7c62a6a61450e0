// Package client is a typed API client for the recipe backend. It carries
// the request shaping and form validation the web pages perform before
// calling the API.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

type Client struct {
	base  string
	http  *http.Client
	token string
}

func New(baseURL string) *Client {
	return &Client{
		base: strings.TrimRight(baseURL, "/"),
		http: &http.Client{},
	}
}

// SetToken installs the session token used on authenticated calls.
func (c *Client) SetToken(token string) {
	c.token = token
}

// APIError is a non-2xx response, carrying the server's envelope message.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

type envelope struct {
	Success    bool            `json:"success"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
	Page       int             `json:"page"`
	TotalPages int             `json:"totalPages"`
	Total      int64           `json:"total"`
}

type Recipe struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Ingredients string   `json:"ingredients"`
	Preparation string   `json:"preparation"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
}

type RecipeSummary struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
}

// RecipePage is one page of a listing plus its paging metadata.
type RecipePage struct {
	Items      []RecipeSummary
	Page       int
	TotalPages int
	Total      int64
}

// RecipeForm mirrors the authoring form: every field required, at least one
// non-empty tag.
type RecipeForm struct {
	Title       string   `json:"title"`
	Ingredients string   `json:"ingredients"`
	Preparation string   `json:"preparation"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
}

func (f RecipeForm) Validate() error {
	switch {
	case strings.TrimSpace(f.Title) == "":
		return fmt.Errorf("recipe title is required")
	case strings.TrimSpace(f.Ingredients) == "":
		return fmt.Errorf("ingredients are required")
	case strings.TrimSpace(f.Preparation) == "":
		return fmt.Errorf("preparation steps are required")
	case strings.TrimSpace(f.Category) == "":
		return fmt.Errorf("category is required")
	}
	for _, tag := range f.Tags {
		if strings.TrimSpace(tag) != "" {
			return nil
		}
	}
	return fmt.Errorf("at least one tag is required")
}

// Register creates an account and returns the new user's ID.
func (c *Client) Register(email, password, fullName string) (string, error) {
	body := map[string]string{"email": email, "password": password, "full_name": fullName}
	var data struct {
		ID string `json:"id"`
	}
	if _, err := c.do(http.MethodPost, "/auth/register", body, &data); err != nil {
		return "", err
	}
	return data.ID, nil
}

// Login authenticates and installs the returned session token.
func (c *Client) Login(email, password string) error {
	body := map[string]string{"email": email, "password": password}
	var data struct {
		Token string `json:"token"`
	}
	if _, err := c.do(http.MethodPost, "/auth/login", body, &data); err != nil {
		return err
	}
	c.token = data.Token
	return nil
}

func (c *Client) CreateRecipe(form RecipeForm) (*Recipe, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}
	var recipe Recipe
	if _, err := c.do(http.MethodPost, "/recipes", form, &recipe); err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (c *Client) UpdateRecipe(recipeID string, form RecipeForm) (*Recipe, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}
	var recipe Recipe
	if _, err := c.do(http.MethodPut, "/recipes/"+recipeID, form, &recipe); err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (c *Client) DeleteRecipe(recipeID string) error {
	_, err := c.do(http.MethodDelete, "/recipes/"+recipeID, nil, nil)
	return err
}

func (c *Client) Search(query string, page int) (*RecipePage, error) {
	params := url.Values{"query": {query}}
	return c.listing("/recipes/search", params, page)
}

// Browse filters by category and title keyword, like the browse page.
func (c *Client) Browse(category, keyword string, page int) (*RecipePage, error) {
	params := url.Values{}
	if category != "" {
		params.Set("category", category)
	}
	if keyword != "" {
		params.Set("keyword", keyword)
	}
	return c.listing("/recipes", params, page)
}

func (c *Client) listing(path string, params url.Values, page int) (*RecipePage, error) {
	if page > 1 {
		params.Set("page", strconv.Itoa(page))
	}
	var items []RecipeSummary
	env, err := c.do(http.MethodGet, path+"?"+params.Encode(), nil, &items)
	if err != nil {
		return nil, err
	}
	return &RecipePage{
		Items:      items,
		Page:       env.Page,
		TotalPages: env.TotalPages,
		Total:      env.Total,
	}, nil
}

func (c *Client) SaveRecipe(userID, recipeID string) error {
	body := map[string]string{"recipeId": recipeID}
	_, err := c.do(http.MethodPost, "/users/"+userID+"/saved-recipes", body, nil)
	return err
}

func (c *Client) RemoveSavedRecipe(userID, recipeID string) error {
	_, err := c.do(http.MethodDelete, "/users/"+userID+"/saved-recipes/"+recipeID, nil, nil)
	return err
}

func (c *Client) SavedRecipes(userID string) ([]Recipe, error) {
	var recipes []Recipe
	if _, err := c.do(http.MethodGet, "/users/"+userID+"/saved-recipes", nil, &recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}

func (c *Client) do(method, path string, body, out interface{}) (*envelope, error) {
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, c.base+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if !env.Success {
		return nil, &APIError{Status: resp.StatusCode, Message: env.Message}
	}
	if out != nil && env.Data != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return nil, fmt.Errorf("decode data: %w", err)
		}
	}
	return &env, nil
}
