package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"service-marketplace-api/config"
	"service-marketplace-api/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func createReview(t *testing.T, r *gin.Engine, token string, businessID uint, rating int) uint {
	t.Helper()
	w := performRequest(t, r, http.MethodPost, "/api/reviews", token, gin.H{
		"business_user": businessID,
		"rating":        rating,
		"description":   "Great work",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := decodeBody(t, w)
	review := body["review"].(map[string]interface{})
	return uint(review["id"].(float64))
}

func TestCreateReviewOncePerPair(t *testing.T) {
	r := setupTestRouter(t)
	_, bizID := registerUser(t, r, "reviewed_biz", models.RoleBusiness)
	custToken, _ := registerUser(t, r, "reviewer", models.RoleCustomer)

	createReview(t, r, custToken, bizID, 5)

	w := performRequest(t, r, http.MethodPost, "/api/reviews", custToken, gin.H{
		"business_user": bizID,
		"rating":        1,
		"description":   "Changed my mind",
	})
	require.Equal(t, http.StatusConflict, w.Code)

	var count int64
	config.DB.Model(&models.Review{}).Count(&count)
	require.EqualValues(t, 1, count)

	var review models.Review
	require.NoError(t, config.DB.First(&review).Error)
	require.Equal(t, 5, review.Rating)
}

func TestCreateReviewValidation(t *testing.T) {
	r := setupTestRouter(t)
	_, bizID := registerUser(t, r, "reviewed_biz2", models.RoleBusiness)
	custToken, custID := registerUser(t, r, "reviewer2", models.RoleCustomer)

	// Rating out of bounds
	w := performRequest(t, r, http.MethodPost, "/api/reviews", custToken, gin.H{
		"business_user": bizID,
		"rating":        6,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	// Target must be a business user
	_, otherID := registerUser(t, r, "reviewer3", models.RoleCustomer)
	w = performRequest(t, r, http.MethodPost, "/api/reviews", custToken, gin.H{
		"business_user": otherID,
		"rating":        4,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	// Unknown target
	w = performRequest(t, r, http.MethodPost, "/api/reviews", custToken, gin.H{
		"business_user": 9999,
		"rating":        4,
	})
	require.Equal(t, http.StatusNotFound, w.Code)

	var count int64
	config.DB.Model(&models.Review{}).Where("reviewer_id = ?", custID).Count(&count)
	require.Zero(t, count)
}

func TestCreateReviewForbiddenForBusinessUsers(t *testing.T) {
	r := setupTestRouter(t)
	bizToken, _ := registerUser(t, r, "biz_a", models.RoleBusiness)
	_, bizBID := registerUser(t, r, "biz_b", models.RoleBusiness)

	w := performRequest(t, r, http.MethodPost, "/api/reviews", bizToken, gin.H{
		"business_user": bizBID,
		"rating":        5,
	})
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestUpdateAndDeleteReviewOwnership(t *testing.T) {
	r := setupTestRouter(t)
	_, bizID := registerUser(t, r, "reviewed_biz3", models.RoleBusiness)
	ownerToken, _ := registerUser(t, r, "review_owner", models.RoleCustomer)
	otherToken, _ := registerUser(t, r, "review_other", models.RoleCustomer)

	reviewID := createReview(t, r, ownerToken, bizID, 3)
	path := fmt.Sprintf("/api/reviews/%d", reviewID)

	w := performRequest(t, r, http.MethodPatch, path, otherToken, gin.H{"rating": 1})
	require.Equal(t, http.StatusForbidden, w.Code)

	w = performRequest(t, r, http.MethodPatch, path, ownerToken, gin.H{"rating": 4})
	require.Equal(t, http.StatusOK, w.Code)

	var review models.Review
	require.NoError(t, config.DB.First(&review, reviewID).Error)
	require.Equal(t, 4, review.Rating)

	w = performRequest(t, r, http.MethodDelete, path, otherToken, nil)
	require.Equal(t, http.StatusForbidden, w.Code)

	w = performRequest(t, r, http.MethodDelete, path, ownerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	config.DB.Model(&models.Review{}).Count(&count)
	require.Zero(t, count)
}

func TestListReviewsFiltersAndOrdering(t *testing.T) {
	r := setupTestRouter(t)
	_, bizAID := registerUser(t, r, "biz_list_a", models.RoleBusiness)
	_, bizBID := registerUser(t, r, "biz_list_b", models.RoleBusiness)
	custA, custAID := registerUser(t, r, "cust_list_a", models.RoleCustomer)
	custB, _ := registerUser(t, r, "cust_list_b", models.RoleCustomer)

	createReview(t, r, custA, bizAID, 5)
	createReview(t, r, custA, bizBID, 2)
	createReview(t, r, custB, bizAID, 3)

	w := performRequest(t, r, http.MethodGet, fmt.Sprintf("/api/reviews?business_user_id=%d", bizAID), custA, nil)
	body := decodeBody(t, w)
	require.EqualValues(t, 2, body["count"])

	w = performRequest(t, r, http.MethodGet, fmt.Sprintf("/api/reviews?reviewer_id=%d", custAID), custA, nil)
	body = decodeBody(t, w)
	require.EqualValues(t, 2, body["count"])

	w = performRequest(t, r, http.MethodGet, "/api/reviews?ordering=rating", custA, nil)
	body = decodeBody(t, w)
	reviews := body["reviews"].([]interface{})
	require.Len(t, reviews, 3)
	first := reviews[0].(map[string]interface{})
	require.EqualValues(t, 2, first["rating"])
}
