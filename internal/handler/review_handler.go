package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ralphreevencarandang/contract-reader/internal/service"
)

// ReviewHandler handles the contract review endpoint.
type ReviewHandler struct {
	reviewService service.ReviewService
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(reviewService service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// Review handles POST /api/review. It accepts a single multipart file field
// named "file", runs extraction and LLM review, and responds with the
// ReviewResult JSON.
func (h *ReviewHandler) Review(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return
	}
	defer func() { _ = file.Close() }()

	result, err := h.reviewService.Review(c.Request.Context(), service.ReviewUploadInput{
		File:   file,
		Header: header,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
