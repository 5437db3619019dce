package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sambit-git/ai-nutri-journal/services"
)

type GoalController struct {
	goals *services.GoalService
}

func NewGoalController(goals *services.GoalService) *GoalController {
	return &GoalController{goals: goals}
}

type UpsertGoalsInput struct {
	Calories float64 `json:"calories" binding:"min=0"`
	Protein  float64 `json:"protein" binding:"min=0"`
	Carbs    float64 `json:"carbs" binding:"min=0"`
	Fats     float64 `json:"fats" binding:"min=0"`
}

func (ctl *GoalController) UpsertGoals(c *gin.Context) {
	var input UpsertGoalsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	userID := c.GetUint("userID")

	goal, err := ctl.goals.UpsertGoals(userID, input.Calories, input.Protein, input.Carbs, input.Fats)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, goal)
}

// GetProgress handles GET /goals/progress?date=YYYY-MM-DD (today when
// omitted).
func (ctl *GoalController) GetProgress(c *gin.Context) {
	userID := c.GetUint("userID")

	day := time.Now().UTC()
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format, use YYYY-MM-DD"})
			return
		}
		day = parsed
	}

	progress, err := ctl.goals.Progress(userID, day)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, progress)
}

func (ctl *GoalController) GetHistory(c *gin.Context) {
	userID := c.GetUint("userID")

	rows, err := ctl.goals.History(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rows)
}
