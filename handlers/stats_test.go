package handlers_test

import (
	"net/http"
	"testing"

	"service-marketplace-api/models"

	"github.com/stretchr/testify/require"
)

func TestBaseInfoEmptyStore(t *testing.T) {
	r := setupTestRouter(t)

	w := performRequest(t, r, http.MethodGet, "/api/base-info", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	require.EqualValues(t, 0, body["review_count"])
	require.EqualValues(t, 0, body["offer_count"])
	require.EqualValues(t, 0, body["business_profile_count"])
	require.EqualValues(t, 0, body["average_rating"])
}

func TestBaseInfoAggregates(t *testing.T) {
	r := setupTestRouter(t)
	bizToken, bizID := registerUser(t, r, "stats_biz", models.RoleBusiness)
	custA, _ := registerUser(t, r, "stats_cust_a", models.RoleCustomer)
	custB, _ := registerUser(t, r, "stats_cust_b", models.RoleCustomer)

	createOffer(t, r, bizToken, "Stats Offer")
	createReview(t, r, custA, bizID, 5)
	createReview(t, r, custB, bizID, 4)

	w := performRequest(t, r, http.MethodGet, "/api/base-info", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	require.EqualValues(t, 2, body["review_count"])
	require.EqualValues(t, 1, body["offer_count"])
	require.EqualValues(t, 1, body["business_profile_count"])
	require.InDelta(t, 4.5, body["average_rating"].(float64), 0.001)
}
