package handlers

import (
	"math"
	"net/http"

	"service-marketplace-api/config"
	"service-marketplace-api/models"

	"github.com/gin-gonic/gin"
)

// GetBaseInfo returns platform-wide statistics, recomputed per request
func GetBaseInfo(c *gin.Context) {
	var reviewCount, offerCount, businessProfileCount int64
	config.DB.Model(&models.Review{}).Count(&reviewCount)
	config.DB.Model(&models.Offer{}).Count(&offerCount)
	config.DB.Model(&models.Profile{}).Where("type = ?", models.RoleBusiness).Count(&businessProfileCount)

	// 0, not null, when there are no reviews yet
	var avgRating float64
	if reviewCount > 0 {
		var avg struct{ Avg float64 }
		config.DB.Model(&models.Review{}).Select("AVG(rating) as avg").Scan(&avg)
		avgRating = math.Round(avg.Avg*10) / 10
	}

	c.JSON(http.StatusOK, gin.H{
		"review_count":           reviewCount,
		"average_rating":         avgRating,
		"business_profile_count": businessProfileCount,
		"offer_count":            offerCount,
	})
}
