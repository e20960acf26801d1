package routes

import (
	"net/http"

	"backend/controllers"
	"backend/middlewares"
	"backend/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter(auth *services.AuthService, fridge *services.FridgeService, recipes *services.RecipeService) *gin.Engine {
	r := gin.Default()

	authCtl := controllers.NewAuthController(auth)
	fridgeCtl := controllers.NewFridgeController(fridge)
	recipeCtl := controllers.NewRecipeController(recipes)

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "YumYum API",
			"endpoints": []string{
				"POST /register/",
				"POST /login/",
				"POST /logout/",
				"GET /profile/",
				"GET /fridge/",
				"POST /fridge/add/",
				"DELETE /fridge/item/:id/remove/",
				"DELETE /fridge/clear/",
				"GET /recipes/find-by-ingredients/",
			},
		})
	})

	// Public auth routes
	r.POST("/register/", authCtl.Register)
	r.POST("/login/", authCtl.Login)

	// Protected routes
	protected := r.Group("/")
	protected.Use(middlewares.AuthMiddleware(auth))
	{
		protected.POST("/logout/", authCtl.Logout)
		protected.GET("/profile/", authCtl.GetProfile)

		protected.GET("/fridge/", fridgeCtl.ViewFridge)
		protected.POST("/fridge/add/", fridgeCtl.AddItem)
		protected.DELETE("/fridge/item/:id/remove/", fridgeCtl.RemoveItem)
		protected.DELETE("/fridge/clear/", fridgeCtl.ClearFridge)

		protected.GET("/recipes/find-by-ingredients/", recipeCtl.FindByIngredients)
	}

	return r
}
