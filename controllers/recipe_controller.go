package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type RecipeController struct {
	svc *services.RecipeService
}

func NewRecipeController(svc *services.RecipeService) *RecipeController {
	return &RecipeController{svc: svc}
}

// FindByIngredients relays the upstream JSON untouched.
func (ctl *RecipeController) FindByIngredients(c *gin.Context) {
	body, err := ctl.svc.FindRecipes(currentUser(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json", body)
}
