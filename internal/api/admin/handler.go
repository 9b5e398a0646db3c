package admin

import (
	"net/http"

	"github.com/mishaszu/imagery-storage/database"
	"github.com/mishaszu/imagery-storage/internal/domain/accounts"
	"github.com/mishaszu/imagery-storage/internal/domain/posts"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func AdminDashboard(c *gin.Context) {
	var userCount, accountCount, postCount, bannedCount int64
	database.DB.Model(&accounts.User{}).Count(&userCount)
	database.DB.Model(&accounts.Account{}).Count(&accountCount)
	database.DB.Model(&posts.Post{}).Count(&postCount)
	database.DB.Model(&accounts.Account{}).Where("is_banned = true").Count(&bannedCount)

	c.JSON(http.StatusOK, gin.H{
		"users":    userCount,
		"accounts": accountCount,
		"posts":    postCount,
		"banned":   bannedCount,
	})
}

func ListAllUsers(c *gin.Context) {
	var users []accounts.User
	if err := database.DB.Preload("Account").Order("created_at DESC").Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load users"})
		return
	}
	c.JSON(http.StatusOK, users)
}

// ListAllPosts is the unfiltered listing; the access gate does not apply to
// admins on this route.
func ListAllPosts(c *gin.Context) {
	list, err := posts.ListAdmin(c.Request.Context(), database.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load posts"})
		return
	}
	c.JSON(http.StatusOK, list)
}

func setAccountFlag(c *gin.Context, column string, value bool) {
	accountID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return
	}

	res := database.DB.Model(&accounts.Account{}).Where("id = ?", accountID).Update(column, value)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update account"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// POST /admin/accounts/:id/ban — from this point the account resolves to no
// access for everyone but its owner and admins.
func BanAccount(c *gin.Context)   { setAccountFlag(c, "is_banned", true) }
func UnbanAccount(c *gin.Context) { setAccountFlag(c, "is_banned", false) }

func GrantAdmin(c *gin.Context)  { setAccountFlag(c, "is_admin", true) }
func RevokeAdmin(c *gin.Context) { setAccountFlag(c, "is_admin", false) }
