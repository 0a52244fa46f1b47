package handlers

import (
	"net/http"
	"strconv"

	"service-marketplace-api/config"
	"service-marketplace-api/middleware"
	"service-marketplace-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type OfferTierRequest struct {
	OfferType        models.TierType `json:"offer_type" binding:"required"`
	Title            string          `json:"title" binding:"required"`
	Revisions        int             `json:"revisions" binding:"min=-1"`
	DeliveryTimeDays int             `json:"delivery_time_in_days" binding:"required,gt=0"`
	Price            float64         `json:"price" binding:"required,gt=0"`
	Features         []string        `json:"features" binding:"required,min=1"`
}

type CreateOfferRequest struct {
	Title       string             `json:"title" binding:"required"`
	Description string             `json:"description"`
	Image       string             `json:"image"`
	Details     []OfferTierRequest `json:"details" binding:"required,len=3,dive"`
}

type UpdateOfferRequest struct {
	Title       *string            `json:"title"`
	Description *string            `json:"description"`
	Image       *string            `json:"image"`
	Details     []OfferTierRequest `json:"details" binding:"omitempty,dive"`
}

// validateTierSet ensures the three tiers carry exactly one of each tag
func validateTierSet(tiers []OfferTierRequest) string {
	seen := map[models.TierType]bool{}
	for _, t := range tiers {
		switch t.OfferType {
		case models.TierBasic, models.TierStandard, models.TierPremium:
		default:
			return "Invalid offer_type '" + string(t.OfferType) + "'. Must be: basic, standard or premium"
		}
		if seen[t.OfferType] {
			return "Duplicate tier '" + string(t.OfferType) + "'. An offer needs exactly one of each tier"
		}
		seen[t.OfferType] = true
	}
	if len(seen) != len(models.TierTypes) {
		return "An offer needs exactly one basic, one standard and one premium tier"
	}
	return ""
}

// recomputeMins refreshes the derived minimum price/delivery columns from
// the offer's current tiers. Must run inside the same transaction as any
// tier change.
func recomputeMins(tx *gorm.DB, offerID uint) error {
	var tiers []models.OfferDetail
	if err := tx.Where("offer_id = ?", offerID).Find(&tiers).Error; err != nil {
		return err
	}
	if len(tiers) == 0 {
		return nil
	}
	minPrice := tiers[0].Price
	minDelivery := tiers[0].DeliveryTimeDays
	for _, t := range tiers[1:] {
		if t.Price < minPrice {
			minPrice = t.Price
		}
		if t.DeliveryTimeDays < minDelivery {
			minDelivery = t.DeliveryTimeDays
		}
	}
	return tx.Model(&models.Offer{}).Where("id = ?", offerID).
		Updates(map[string]interface{}{
			"min_price":         minPrice,
			"min_delivery_time": minDelivery,
		}).Error
}

// CreateOffer creates an offer together with its three tiers, all-or-nothing
func CreateOffer(c *gin.Context) {
	ownerID := middleware.GetUserID(c)

	var req CreateOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if msg := validateTierSet(req.Details); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	offer := models.Offer{
		UserID:      ownerID,
		Title:       req.Title,
		Description: req.Description,
		Image:       req.Image,
	}
	for _, t := range req.Details {
		offer.Details = append(offer.Details, models.OfferDetail{
			OfferType:        t.OfferType,
			Title:            t.Title,
			Revisions:        t.Revisions,
			DeliveryTimeDays: t.DeliveryTimeDays,
			Price:            t.Price,
			Features:         datatypes.NewJSONSlice(t.Features),
		})
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&offer).Error; err != nil {
			return err
		}
		return recomputeMins(tx, offer.ID)
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create offer"})
		return
	}

	config.DB.Preload("Details").First(&offer, offer.ID)
	c.JSON(http.StatusCreated, gin.H{"message": "Offer created", "offer": offer})
}

// ListOffers returns offers with filtering, search, ordering and pagination
func ListOffers(c *gin.Context) {
	query := config.DB.Model(&models.Offer{}).Preload("Details")

	if creatorID := c.Query("creator_id"); creatorID != "" {
		query = query.Where("user_id = ?", creatorID)
	}
	if minPrice := c.Query("min_price"); minPrice != "" {
		query = query.Where("min_price >= ?", minPrice)
	}
	if maxDelivery := c.Query("max_delivery_time"); maxDelivery != "" {
		query = query.Where("min_delivery_time <= ?", maxDelivery)
	}
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		query = query.Where("title LIKE ? OR description LIKE ?", like, like)
	}

	// Ordering with a stable id tiebreaker so pages never overlap
	switch c.DefaultQuery("ordering", "-updated_at") {
	case "updated_at":
		query = query.Order("updated_at asc, id asc")
	case "-updated_at":
		query = query.Order("updated_at desc, id asc")
	case "min_price":
		query = query.Order("min_price asc, id asc")
	case "-min_price":
		query = query.Order("min_price desc, id asc")
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ordering. Must be one of: updated_at, -updated_at, min_price, -min_price"})
		return
	}

	var total int64
	query.Session(&gorm.Session{}).Count(&total)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	if pageSize < 1 {
		pageSize = 10
	}
	if pageSize > 100 {
		pageSize = 100
	}

	var offers []models.Offer
	query.Offset((page - 1) * pageSize).Limit(pageSize).Find(&offers)

	c.JSON(http.StatusOK, gin.H{
		"count":     total,
		"page":      page,
		"page_size": pageSize,
		"results":   offers,
	})
}

// GetOffer returns a single offer with its tiers
func GetOffer(c *gin.Context) {
	var offer models.Offer
	if err := config.DB.Preload("Details").First(&offer, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Offer not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"offer": offer})
}

// UpdateOffer partially updates offer fields and/or replaces named tiers.
// Tiers are matched by their tag; the tag itself is immutable and no
// fourth tier can appear.
func UpdateOffer(c *gin.Context) {
	callerID := middleware.GetUserID(c)

	var offer models.Offer
	if err := config.DB.Preload("Details").First(&offer, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Offer not found"})
		return
	}
	if offer.UserID != callerID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You don't own this offer"})
		return
	}

	var req UpdateOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Every patched tier must name an existing tag, at most once
	seen := map[models.TierType]bool{}
	byType := map[models.TierType]*models.OfferDetail{}
	for i := range offer.Details {
		byType[offer.Details[i].OfferType] = &offer.Details[i]
	}
	for _, t := range req.Details {
		if byType[t.OfferType] == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown tier '" + string(t.OfferType) + "'. Must be: basic, standard or premium"})
			return
		}
		if seen[t.OfferType] {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Duplicate tier '" + string(t.OfferType) + "' in update"})
			return
		}
		seen[t.OfferType] = true
	}

	offerUpdate := map[string]interface{}{}
	if req.Title != nil {
		offerUpdate["title"] = *req.Title
	}
	if req.Description != nil {
		offerUpdate["description"] = *req.Description
	}
	if req.Image != nil {
		offerUpdate["image"] = *req.Image
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if len(offerUpdate) > 0 {
			if err := tx.Model(&offer).Updates(offerUpdate).Error; err != nil {
				return err
			}
		}
		for _, t := range req.Details {
			existing := byType[t.OfferType]
			if err := tx.Model(existing).Updates(map[string]interface{}{
				"title":              t.Title,
				"revisions":          t.Revisions,
				"delivery_time_days": t.DeliveryTimeDays,
				"price":              t.Price,
				"features":           datatypes.NewJSONSlice(t.Features),
			}).Error; err != nil {
				return err
			}
		}
		if len(req.Details) > 0 {
			// recomputeMins writes the offer row, which also bumps its
			// updated timestamp for tier-only patches
			if err := recomputeMins(tx, offer.ID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update offer"})
		return
	}

	config.DB.Preload("Details").First(&offer, offer.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Offer updated", "offer": offer})
}

// DeleteOffer removes an offer and its tiers. Orders keep their snapshot.
func DeleteOffer(c *gin.Context) {
	callerID := middleware.GetUserID(c)

	var offer models.Offer
	if err := config.DB.First(&offer, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Offer not found"})
		return
	}
	if offer.UserID != callerID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You don't own this offer"})
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("offer_id = ?", offer.ID).Delete(&models.OfferDetail{}).Error; err != nil {
			return err
		}
		return tx.Delete(&offer).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete offer"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Offer deleted"})
}

// GetOfferDetail returns a single tier, e.g. before creating an order
func GetOfferDetail(c *gin.Context) {
	var detail models.OfferDetail
	if err := config.DB.First(&detail, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Offer detail not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"detail": detail})
}
