package controllers

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/sambit-git/ai-nutri-journal/repositories"
	"github.com/sambit-git/ai-nutri-journal/services"
)

type MealController struct {
	meals  *services.MealService
	images services.ImageStore
	log    zerolog.Logger
}

func NewMealController(meals *services.MealService, images services.ImageStore, log zerolog.Logger) *MealController {
	return &MealController{meals: meals, images: images, log: log}
}

type CreateMealInput struct {
	MealType   string                    `json:"meal_type" binding:"required"`
	Name       string                    `json:"name"`
	Components []services.ComponentInput `json:"components" binding:"required"`
	Image      string                    `json:"image"` // data URI, optional
}

func (ctl *MealController) CreateMeal(c *gin.Context) {
	var input CreateMealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	userID := c.GetUint("userID")

	imageRef := ctl.storeImage(c, input.Image)

	result, err := ctl.meals.AssembleMeal(c.Request.Context(), userID, input.MealType, input.Name, imageRef, input.Components)
	if err != nil {
		respondMealError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

type PhotoMealInput struct {
	MealType string `json:"meal_type" binding:"required"`
	Image    string `json:"image" binding:"required"` // data URI
}

func (ctl *MealController) CreateMealFromPhoto(c *gin.Context) {
	var input PhotoMealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	userID := c.GetUint("userID")

	data, _, err := parseDataURI(input.Image)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	imageRef := ctl.storeImage(c, input.Image)

	result, err := ctl.meals.AssembleFromPhoto(c.Request.Context(), userID, input.MealType, imageRef, data)
	if err != nil {
		respondMealError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

func (ctl *MealController) GetMeal(c *gin.Context) {
	userID := c.GetUint("userID")
	mealID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return
	}

	result, err := ctl.meals.GetMeal(userID, uint(mealID))
	if err != nil {
		respondMealError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (ctl *MealController) ListMeals(c *gin.Context) {
	userID := c.GetUint("userID")
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	results, err := ctl.meals.ListMeals(userID, skip, limit)
	if err != nil {
		respondMealError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}

func (ctl *MealController) DeleteMeal(c *gin.Context) {
	userID := c.GetUint("userID")
	mealID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return
	}

	if err := ctl.meals.DeleteMeal(userID, uint(mealID)); err != nil {
		respondMealError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// storeImage uploads an optional data-URI image and returns its public
// reference. Upload failures are logged and leave the meal without an
// image rather than failing the request.
func (ctl *MealController) storeImage(c *gin.Context, dataURI string) string {
	if dataURI == "" || ctl.images == nil {
		return ""
	}
	data, contentType, err := parseDataURI(dataURI)
	if err != nil {
		ctl.log.Warn().Err(err).Msg("bad meal image, ignoring")
		return ""
	}
	ref, err := ctl.images.UploadImage(c.Request.Context(), data, contentType)
	if err != nil {
		ctl.log.Warn().Err(err).Msg("meal image upload failed, continuing without image")
		return ""
	}
	return ref
}

// parseDataURI splits "data:<mime>;base64,<data>" into bytes and mime
// type.
func parseDataURI(s string) ([]byte, string, error) {
	if !strings.HasPrefix(s, "data:") {
		return nil, "", fmt.Errorf("expected a data URI")
	}
	parts := strings.SplitN(s, ",", 2)
	if len(parts) != 2 {
		return nil, "", fmt.Errorf("malformed data URI")
	}
	meta := strings.TrimPrefix(parts[0], "data:")
	contentType := strings.SplitN(meta, ";", 2)[0]

	data, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, "", fmt.Errorf("decode image: %w", err)
	}
	return data, contentType, nil
}

func respondMealError(c *gin.Context, err error) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Msg})
	case errors.Is(err, repositories.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "meal not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
