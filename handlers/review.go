package handlers

import (
	"net/http"

	"service-marketplace-api/config"
	"service-marketplace-api/middleware"
	"service-marketplace-api/models"

	"github.com/gin-gonic/gin"
)

type CreateReviewRequest struct {
	BusinessUser uint   `json:"business_user" binding:"required"`
	Rating       int    `json:"rating" binding:"required,min=1,max=5"`
	Description  string `json:"description"`
}

type UpdateReviewRequest struct {
	Rating      *int    `json:"rating" binding:"omitempty,min=1,max=5"`
	Description *string `json:"description"`
}

// CreateReview lets a customer review a business user, once per pair
func CreateReview(c *gin.Context) {
	reviewerID := middleware.GetUserID(c)

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var business models.User
	if err := config.DB.First(&business, req.BusinessUser).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Business user not found"})
		return
	}
	if business.Role != models.RoleBusiness {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Reviews can only target business users"})
		return
	}

	var existing models.Review
	if result := config.DB.Where("business_user_id = ? AND reviewer_id = ?", business.ID, reviewerID).First(&existing); result.Error == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "You have already reviewed this business"})
		return
	}

	review := models.Review{
		BusinessUserID: business.ID,
		ReviewerID:     reviewerID,
		Rating:         req.Rating,
		Description:    req.Description,
	}
	if err := config.DB.Create(&review).Error; err != nil {
		// Unique index backstops the pre-check under concurrent requests
		c.JSON(http.StatusConflict, gin.H{"error": "You have already reviewed this business"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Review created", "review": review})
}

// ListReviews returns reviews filtered by business or reviewer
func ListReviews(c *gin.Context) {
	query := config.DB.Model(&models.Review{})

	if businessID := c.Query("business_user_id"); businessID != "" {
		query = query.Where("business_user_id = ?", businessID)
	}
	if reviewerID := c.Query("reviewer_id"); reviewerID != "" {
		query = query.Where("reviewer_id = ?", reviewerID)
	}

	switch c.DefaultQuery("ordering", "-updated_at") {
	case "updated_at":
		query = query.Order("updated_at asc")
	case "-updated_at":
		query = query.Order("updated_at desc")
	case "rating":
		query = query.Order("rating asc")
	case "-rating":
		query = query.Order("rating desc")
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ordering. Must be one of: updated_at, -updated_at, rating, -rating"})
		return
	}

	var reviews []models.Review
	query.Find(&reviews)
	c.JSON(http.StatusOK, gin.H{"count": len(reviews), "reviews": reviews})
}

// UpdateReview lets the reviewer change rating or description
func UpdateReview(c *gin.Context) {
	callerID := middleware.GetUserID(c)

	var review models.Review
	if err := config.DB.First(&review, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
		return
	}
	if review.ReviewerID != callerID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only edit your own reviews"})
		return
	}

	var req UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	update := map[string]interface{}{}
	if req.Rating != nil {
		update["rating"] = *req.Rating
	}
	if req.Description != nil {
		update["description"] = *req.Description
	}
	if len(update) > 0 {
		config.DB.Model(&review).Updates(update)
	}

	config.DB.First(&review, review.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Review updated", "review": review})
}

// DeleteReview removes a review (reviewer only)
func DeleteReview(c *gin.Context) {
	callerID := middleware.GetUserID(c)

	var review models.Review
	if err := config.DB.First(&review, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
		return
	}
	if review.ReviewerID != callerID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only delete your own reviews"})
		return
	}

	config.DB.Delete(&review)
	c.JSON(http.StatusOK, gin.H{"message": "Review deleted"})
}
