package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sambit-git/ai-nutri-journal/controllers"
	"github.com/sambit-git/ai-nutri-journal/middlewares"
)

// Controllers bundles everything the router mounts.
type Controllers struct {
	Auth      *controllers.AuthController
	Meals     *controllers.MealController
	Nutrition *controllers.NutritionController
	Foods     *controllers.FoodController
	Goals     *controllers.GoalController
}

func SetupRouter(ctl Controllers, jwtSecret string, db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	auth := r.Group("/auth")
	{
		auth.POST("/register", ctl.Auth.Register)
		auth.POST("/login", ctl.Auth.Login)
	}

	api := r.Group("/")
	api.Use(middlewares.AuthMiddleware(jwtSecret, db))
	{
		api.POST("/meals", ctl.Meals.CreateMeal)
		api.POST("/meals/photo", ctl.Meals.CreateMealFromPhoto)
		api.GET("/meals", ctl.Meals.ListMeals)
		api.GET("/meals/:id", ctl.Meals.GetMeal)
		api.DELETE("/meals/:id", ctl.Meals.DeleteMeal)

		api.GET("/nutrition/daily", ctl.Nutrition.DailyNutrition)

		api.GET("/foods/search", ctl.Foods.SearchFoods)

		api.PUT("/goals", ctl.Goals.UpsertGoals)
		api.GET("/goals/progress", ctl.Goals.GetProgress)
		api.GET("/goals/history", ctl.Goals.GetHistory)
	}

	return r
}
