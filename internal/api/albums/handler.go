package albums

import (
	"errors"
	"net/http"
	"time"

	"github.com/mishaszu/imagery-storage/database"
	"github.com/mishaszu/imagery-storage/internal/app/http/middleware"
	"github.com/mishaszu/imagery-storage/internal/domain/access"
	"github.com/mishaszu/imagery-storage/internal/domain/albums"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AlbumDTO struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	UserID      uuid.UUID `json:"user_id"`
	PublicLvl   int       `json:"public_lvl"`
	CreatedAt   time.Time `json:"created_at"`
}

type ListItemDTO struct {
	Redacted bool      `json:"redacted"`
	Album    *AlbumDTO `json:"album,omitempty"`
}

func toAlbumDTO(a albums.Album) AlbumDTO {
	return AlbumDTO{
		ID:          a.ID,
		Title:       a.Title,
		Description: a.Description,
		UserID:      a.UserID,
		PublicLvl:   a.PublicLvl,
		CreatedAt:   a.CreatedAt,
	}
}

func respondDomainErr(c *gin.Context, err error) {
	if errors.Is(err, access.ErrNotFound) || errors.Is(err, access.ErrAccessDenied) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
}

func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return uuid.Nil, false
	}
	return id, true
}

// GET /albums/:id
func GetAlbum(c *gin.Context) {
	albumID, ok := pathID(c, "id")
	if !ok {
		return
	}

	svc := albums.NewService(database.DB)
	level, album, err := svc.GetForSeeker(c.Request.Context(), middleware.SeekerID(c), albumID)
	if err != nil {
		respondDomainErr(c, err)
		return
	}
	if album == nil {
		c.JSON(http.StatusOK, gin.H{"redacted": true, "access": string(level)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"access": string(level), "album": toAlbumDTO(*album)})
}

// GET /users/:id/albums
func ListUserAlbums(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}

	svc := albums.NewService(database.DB)
	level, list, err := svc.ListForSeeker(c.Request.Context(), middleware.SeekerID(c), userID)
	if err != nil {
		respondDomainErr(c, err)
		return
	}

	out := make([]ListItemDTO, 0, len(list))
	for _, a := range list {
		if a == nil {
			out = append(out, ListItemDTO{Redacted: true})
			continue
		}
		dto := toAlbumDTO(*a)
		out = append(out, ListItemDTO{Album: &dto})
	}

	c.JSON(http.StatusOK, gin.H{"access": string(level), "albums": out})
}

// POST /albums
func CreateAlbum(c *gin.Context) {
	userID, ok := middleware.MustUserID(c)
	if !ok {
		return
	}

	var req struct {
		Title       string  `json:"title" binding:"required"`
		Description *string `json:"description"`
		PublicLvl   int     `json:"public_lvl"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !access.Visibility(req.PublicLvl).Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "public_lvl must be 0, 1 or 2"})
		return
	}

	album := albums.Album{
		Title:       req.Title,
		Description: req.Description,
		UserID:      userID,
		PublicLvl:   req.PublicLvl,
	}
	if err := database.DB.Create(&album).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create album"})
		return
	}

	c.JSON(http.StatusCreated, toAlbumDTO(album))
}

// PUT /albums/:id
func UpdateAlbum(c *gin.Context) {
	albumID, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, ok := middleware.MustUserID(c)
	if !ok {
		return
	}

	var req struct {
		Title       *string `json:"title"`
		Description *string `json:"description"`
		PublicLvl   *int    `json:"public_lvl"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := albums.NewService(database.DB)
	level, _, err := svc.LevelFor(c.Request.Context(), &userID, albumID)
	if err != nil {
		respondDomainErr(c, err)
		return
	}
	if !access.CanEdit(level, true) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	updates := map[string]any{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.PublicLvl != nil {
		if !access.Visibility(*req.PublicLvl).Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "public_lvl must be 0, 1 or 2"})
			return
		}
		updates["public_lvl"] = *req.PublicLvl
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nothing to update"})
		return
	}

	if err := database.DB.Model(&albums.Album{}).Where("id = ?", albumID).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update album"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// DELETE /albums/:id
func DeleteAlbum(c *gin.Context) {
	albumID, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, ok := middleware.MustUserID(c)
	if !ok {
		return
	}

	svc := albums.NewService(database.DB)
	level, _, err := svc.LevelFor(c.Request.Context(), &userID, albumID)
	if err != nil {
		respondDomainErr(c, err)
		return
	}
	if !access.CanEdit(level, false) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("album_id = ?", albumID).Delete(&albums.AlbumPost{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", albumID).Delete(&albums.Album{}).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete album"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// POST /albums/:id/posts
func AddPostToAlbum(c *gin.Context) {
	albumID, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, ok := middleware.MustUserID(c)
	if !ok {
		return
	}

	var req struct {
		PostID uuid.UUID `json:"post_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := albums.NewService(database.DB)
	level, _, err := svc.LevelFor(c.Request.Context(), &userID, albumID)
	if err != nil {
		respondDomainErr(c, err)
		return
	}
	if !access.CanEdit(level, true) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	link := albums.AlbumPost{AlbumID: albumID, PostID: req.PostID}
	if err := database.DB.Create(&link).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add post to album"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": link.ID})
}

// DELETE /albums/:id/posts/:postId
func RemovePostFromAlbum(c *gin.Context) {
	albumID, ok := pathID(c, "id")
	if !ok {
		return
	}
	postID, ok := pathID(c, "postId")
	if !ok {
		return
	}
	userID, ok := middleware.MustUserID(c)
	if !ok {
		return
	}

	svc := albums.NewService(database.DB)
	level, _, err := svc.LevelFor(c.Request.Context(), &userID, albumID)
	if err != nil {
		respondDomainErr(c, err)
		return
	}
	if !access.CanEdit(level, true) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	if err := database.DB.Where("album_id = ? AND post_id = ?", albumID, postID).Delete(&albums.AlbumPost{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove post from album"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "removed"})
}
