package images

import (
	"errors"
	"net/http"

	"github.com/mishaszu/imagery-storage/database"
	"github.com/mishaszu/imagery-storage/internal/app/http/middleware"
	"github.com/mishaszu/imagery-storage/internal/domain/access"
	"github.com/mishaszu/imagery-storage/internal/domain/accounts"
	"github.com/mishaszu/imagery-storage/internal/domain/media"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// POST /images — registers an upload record; byte storage is handled by the
// external image service before this call.
func CreateImage(c *gin.Context) {
	userID, ok := middleware.MustUserID(c)
	if !ok {
		return
	}

	var req struct {
		OriginalPath string  `json:"original_path" binding:"required"`
		WebpPath     *string `json:"webp_path"`
		PublicLvl    int     `json:"public_lvl"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !access.Visibility(req.PublicLvl).Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "public_lvl must be 0, 1 or 2"})
		return
	}

	img := media.Image{
		UserID:       userID,
		OriginalPath: req.OriginalPath,
		WebpPath:     req.WebpPath,
		PublicLvl:    req.PublicLvl,
	}
	if err := database.DB.Create(&img).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create image"})
		return
	}

	c.JSON(http.StatusCreated, img)
}

// GET /images/:id — gated by the owner's account plus the image's own level.
func GetImage(c *gin.Context) {
	imageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return
	}

	var img media.Image
	if err := database.DB.Where("id = ?", imageID).First(&img).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}

	dir := accounts.NewDirectory(database.DB)
	owner, err := dir.GetAccountByUser(c.Request.Context(), img.UserID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	resolver := access.NewResolver(dir)
	level, err := resolver.Resolve(c.Request.Context(), middleware.SeekerID(c), owner)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}

	res, err := access.FetchOne(level, img)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}
	if res == nil {
		c.JSON(http.StatusOK, gin.H{"redacted": true, "access": string(level)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"access": string(level), "image": *res})
}

// DELETE /images/:id — owner only.
func DeleteImage(c *gin.Context) {
	imageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return
	}
	userID, ok := middleware.MustUserID(c)
	if !ok {
		return
	}

	var img media.Image
	if err := database.DB.Where("id = ?", imageID).First(&img).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	dir := accounts.NewDirectory(database.DB)
	owner, err := dir.GetAccountByUser(c.Request.Context(), img.UserID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}
	level, err := access.NewResolver(dir).Resolve(c.Request.Context(), &userID, owner)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}
	if !access.CanEdit(level, false) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	if err := database.DB.Where("id = ?", imageID).Delete(&media.Image{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete image"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
