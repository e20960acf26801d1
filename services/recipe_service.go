package services

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"backend/models"

	"github.com/sirupsen/logrus"
)

// RecipeService proxies recipe search to the Spoonacular
// findByIngredients API, keyed by the caller's fridge contents.
type RecipeService struct {
	fridge  *FridgeService
	apiKey  string
	baseURL string
	client  *http.Client
	log     *logrus.Logger
}

func NewRecipeService(fridge *FridgeService, apiKey, baseURL string, log *logrus.Logger) *RecipeService {
	return &RecipeService{
		fridge:  fridge,
		apiKey:  apiKey,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
		log:     log,
	}
}

// FindRecipes relays the upstream response body verbatim. An empty
// fridge is rejected before any outbound call is made.
func (s *RecipeService) FindRecipes(user *models.User) ([]byte, error) {
	names, err := s.fridge.ItemNames(user)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, &ValidationError{Msg: "Your fridge is empty. Add some ingredients first."}
	}

	q := url.Values{}
	q.Set("ingredients", strings.Join(names, ","))
	q.Set("number", "10")
	q.Set("ranking", "1")
	q.Set("ignorePantry", "true")
	q.Set("apiKey", s.apiKey)

	u := fmt.Sprintf("%s/recipes/findByIngredients?%s", s.baseURL, q.Encode())
	resp, err := s.client.Get(u)
	if err != nil {
		s.log.WithError(err).Error("recipe API call failed")
		return nil, &UpstreamError{Status: http.StatusBadGateway, Msg: "Failed to reach recipe service"}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read recipe API response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		s.log.WithField("status", resp.StatusCode).Warn("recipe API returned non-success status")
		return nil, &UpstreamError{Status: resp.StatusCode, Msg: "Failed to fetch recipes"}
	}

	return body, nil
}
