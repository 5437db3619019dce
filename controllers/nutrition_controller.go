package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sambit-git/ai-nutri-journal/services"
)

type NutritionController struct {
	nutrition *services.NutritionService
}

func NewNutritionController(nutrition *services.NutritionService) *NutritionController {
	return &NutritionController{nutrition: nutrition}
}

// DailyNutrition handles GET /nutrition/daily?date=YYYY-MM-DD.
func (ctl *NutritionController) DailyNutrition(c *gin.Context) {
	userID := c.GetUint("userID")

	dateStr := c.Query("date")
	day, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format, use YYYY-MM-DD"})
		return
	}

	result, err := ctl.nutrition.AggregateDay(userID, day)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}
