package users

import (
	"errors"
	"net/http"

	"github.com/mishaszu/imagery-storage/database"
	"github.com/mishaszu/imagery-storage/internal/app/http/middleware"
	"github.com/mishaszu/imagery-storage/internal/domain/access"
	"github.com/mishaszu/imagery-storage/internal/domain/accounts"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// respondDomainErr maps domain errors onto responses. Denial and not-found
// both come out as 404 so the boundary does not reveal which check failed.
func respondDomainErr(c *gin.Context, err error) {
	if errors.Is(err, access.ErrNotFound) || errors.Is(err, access.ErrAccessDenied) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
}

func GetCurrentUser(c *gin.Context) {
	userID, ok := middleware.MustUserID(c)
	if !ok {
		return
	}

	var user accounts.User
	if err := database.DB.Preload("Account").Where("id = ?", userID).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, toUserDTO(user, user.Account, access.LevelOwner))
}

// GET /users/:id — visible when the seeker resolves to anything above None.
// Users are never redacted; either the profile is visible or it does not
// exist for this seeker.
func GetUser(c *gin.Context) {
	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	var user accounts.User
	if err := database.DB.Preload("Account").Where("id = ?", targetID).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	resolver := access.NewResolver(accounts.NewDirectory(database.DB))
	level, err := resolver.ResolveTarget(c.Request.Context(), middleware.SeekerID(c), user.AccountID)
	if err != nil {
		respondDomainErr(c, err)
		return
	}
	if level == access.LevelNone {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	c.JSON(http.StatusOK, toUserDTO(user, user.Account, level))
}

// GET /users — every profile the seeker can resolve above None.
func ListUsers(c *gin.Context) {
	var users []accounts.User
	if err := database.DB.Preload("Account").Order("created_at DESC").Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load users"})
		return
	}

	resolver := access.NewResolver(accounts.NewDirectory(database.DB))
	seeker := middleware.SeekerID(c)

	out := make([]UserDTO, 0, len(users))
	for _, user := range users {
		level, err := resolver.Resolve(c.Request.Context(), seeker, user.Account.Snapshot())
		if err != nil {
			respondDomainErr(c, err)
			return
		}
		if level == access.LevelNone {
			continue
		}
		out = append(out, toUserDTO(user, user.Account, level))
	}

	c.JSON(http.StatusOK, out)
}

// PUT /me/account — the owner updates their account's visibility or kind.
func UpdateOwnAccount(c *gin.Context) {
	userID, ok := middleware.MustUserID(c)
	if !ok {
		return
	}

	var input struct {
		PublicLvl *int    `json:"public_lvl"`
		Kind      *string `json:"kind"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user accounts.User
	if err := database.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	updates := map[string]any{}
	if input.PublicLvl != nil {
		if !access.Visibility(*input.PublicLvl).Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "public_lvl must be 0, 1 or 2"})
			return
		}
		updates["public_lvl"] = *input.PublicLvl
	}
	if input.Kind != nil {
		switch *input.Kind {
		case accounts.KindCreator, accounts.KindCommenter, accounts.KindGuest:
			updates["kind"] = *input.Kind
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown account kind"})
			return
		}
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nothing to update"})
		return
	}

	if err := database.DB.Model(&accounts.Account{}).Where("id = ?", user.AccountID).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update account"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}
