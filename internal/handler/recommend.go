package handler

import (
	"net/http"
	"strconv"

	"foodatlas/internal/model"
	"foodatlas/internal/service"

	"github.com/gin-gonic/gin"
)

// RecommendHandler handles recommendation HTTP requests.
type RecommendHandler struct {
	recommendService *service.RecommendService
	defaultTopN      int
	maxTopN          int
}

// NewRecommendHandler creates a new recommendation handler.
func NewRecommendHandler(recommendService *service.RecommendService, defaultTopN, maxTopN int) *RecommendHandler {
	return &RecommendHandler{
		recommendService: recommendService,
		defaultTopN:      defaultTopN,
		maxTopN:          maxTopN,
	}
}

// Recommend handles POST /api/v1/recommend
func (h *RecommendHandler) Recommend(c *gin.Context) {
	var req model.RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	// Validate and cap the result size
	if req.TopN <= 0 {
		req.TopN = h.defaultTopN
	}
	if req.TopN > h.maxTopN {
		req.TopN = h.maxTopN
	}

	response, err := h.recommendService.Recommend(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Recommendation failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetRestaurant handles GET /api/v1/restaurants/:id
func (h *RecommendHandler) GetRestaurant(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid restaurant ID"})
		return
	}

	rest, err := h.recommendService.GetRestaurant(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get restaurant: " + err.Error()})
		return
	}

	if rest == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}

	c.JSON(http.StatusOK, rest)
}
