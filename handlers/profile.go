package handlers

import (
	"net/http"
	"strconv"

	"service-marketplace-api/config"
	"service-marketplace-api/middleware"
	"service-marketplace-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// profileResponse flattens a profile and its user into one object
func profileResponse(p *models.Profile) gin.H {
	return gin.H{
		"user":          p.UserID,
		"username":      p.User.Username,
		"first_name":    p.User.FirstName,
		"last_name":     p.User.LastName,
		"email":         p.User.Email,
		"file":          p.File,
		"location":      p.Location,
		"tel":           p.Tel,
		"description":   p.Description,
		"working_hours": p.WorkingHours,
		"type":          p.Type,
		"created_at":    p.CreatedAt,
	}
}

// GetProfile returns the profile for the user ID in the path
func GetProfile(c *gin.Context) {
	var profile models.Profile
	if err := config.DB.Preload("User").Where("user_id = ?", c.Param("userId")).First(&profile).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		return
	}
	c.JSON(http.StatusOK, profileResponse(&profile))
}

// UpdateProfile partially updates a profile. Only the profile's own user
// may write; name and email changes are forwarded to the user row.
func UpdateProfile(c *gin.Context) {
	callerID := middleware.GetUserID(c)
	targetID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	var profile models.Profile
	if err := config.DB.Preload("User").Where("user_id = ?", targetID).First(&profile).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		return
	}

	if uint(targetID) != callerID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only edit your own profile"})
		return
	}

	var req map[string]interface{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profileFields := map[string]bool{
		"file": true, "location": true, "tel": true,
		"description": true, "working_hours": true,
	}
	userFields := map[string]bool{
		"first_name": true, "last_name": true, "email": true,
	}

	profileUpdate := map[string]interface{}{}
	userUpdate := map[string]interface{}{}
	for k, v := range req {
		switch {
		case profileFields[k]:
			profileUpdate[k] = v
		case userFields[k]:
			userUpdate[k] = v
		}
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if len(profileUpdate) > 0 {
			if err := tx.Model(&profile).Updates(profileUpdate).Error; err != nil {
				return err
			}
		}
		if len(userUpdate) > 0 {
			if err := tx.Model(&profile.User).Updates(userUpdate).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	config.DB.Preload("User").Where("user_id = ?", targetID).First(&profile)
	c.JSON(http.StatusOK, profileResponse(&profile))
}

// ListBusinessProfiles returns all business-type profiles
func ListBusinessProfiles(c *gin.Context) {
	listProfilesByType(c, models.RoleBusiness)
}

// ListCustomerProfiles returns all customer-type profiles
func ListCustomerProfiles(c *gin.Context) {
	listProfilesByType(c, models.RoleCustomer)
}

func listProfilesByType(c *gin.Context, role models.UserRole) {
	var profiles []models.Profile
	config.DB.Preload("User").Where("type = ?", role).Find(&profiles)

	out := make([]gin.H, 0, len(profiles))
	for i := range profiles {
		out = append(out, profileResponse(&profiles[i]))
	}
	c.JSON(http.StatusOK, gin.H{"count": len(out), "profiles": out})
}
