package referrals

import (
	"net/http"
	"time"

	"github.com/mishaszu/imagery-storage/database"
	"github.com/mishaszu/imagery-storage/internal/app/http/middleware"
	"github.com/mishaszu/imagery-storage/internal/domain/accounts"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func currentAccount(c *gin.Context) (accounts.User, bool) {
	userID, ok := middleware.MustUserID(c)
	if !ok {
		return accounts.User{}, false
	}
	var user accounts.User
	if err := database.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return accounts.User{}, false
	}
	return user, true
}

// POST /referrals — the current account (referrer) grants a subscriber
// viewing rights over its content, optionally time-limited.
func CreateReferral(c *gin.Context) {
	user, ok := currentAccount(c)
	if !ok {
		return
	}

	var req struct {
		SubscriberID uuid.UUID  `json:"subscriber_id" binding:"required"`
		ExpiresAt    *time.Time `json:"expires_at"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.SubscriberID == user.AccountID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot subscribe an account to itself"})
		return
	}
	if req.ExpiresAt != nil && req.ExpiresAt.Before(time.Now()) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "expires_at is in the past"})
		return
	}

	var subscriber accounts.Account
	if err := database.DB.Where("id = ?", req.SubscriberID).First(&subscriber).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	referral := accounts.Referral{
		ReferrerID:   user.AccountID,
		SubscriberID: req.SubscriberID,
		ExpiresAt:    req.ExpiresAt,
	}
	if err := database.DB.Create(&referral).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create referral"})
		return
	}

	c.JSON(http.StatusCreated, referral)
}

// GET /referrals — edges the current account sits on, either side.
func ListReferrals(c *gin.Context) {
	user, ok := currentAccount(c)
	if !ok {
		return
	}

	var list []accounts.Referral
	err := database.DB.
		Where("referrer_id = ? OR subscriber_id = ?", user.AccountID, user.AccountID).
		Order("created_at DESC").
		Find(&list).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load referrals"})
		return
	}

	c.JSON(http.StatusOK, list)
}

// DELETE /referrals/:id — the referrer revokes the edge; the subscriber may
// also drop their own subscription.
func DeleteReferral(c *gin.Context) {
	user, ok := currentAccount(c)
	if !ok {
		return
	}

	referralID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return
	}

	var referral accounts.Referral
	if err := database.DB.Where("id = ?", referralID).First(&referral).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}
	if referral.ReferrerID != user.AccountID && referral.SubscriberID != user.AccountID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	if err := database.DB.Where("id = ?", referralID).Delete(&accounts.Referral{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete referral"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
