package posts

import (
	"errors"
	"net/http"

	"github.com/mishaszu/imagery-storage/database"
	"github.com/mishaszu/imagery-storage/internal/app/http/middleware"
	"github.com/mishaszu/imagery-storage/internal/domain/access"
	"github.com/mishaszu/imagery-storage/internal/domain/posts"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

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

// GET /posts/:id — anonymous allowed; redacted posts come back with
// redacted=true and no content.
func GetPost(c *gin.Context) {
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}

	svc := posts.NewService(database.DB)
	level, post, err := svc.GetForSeeker(c.Request.Context(), middleware.SeekerID(c), postID)
	if err != nil {
		respondDomainErr(c, err)
		return
	}
	if post == nil {
		c.JSON(http.StatusOK, gin.H{"redacted": true, "access": string(level)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"access": string(level), "post": toPostDTO(*post)})
}

// GET /users/:id/posts — the user's feed.
func ListUserPosts(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}

	svc := posts.NewService(database.DB)
	level, list, err := svc.ListForSeeker(c.Request.Context(), middleware.SeekerID(c), posts.ForUser(userID))
	if err != nil {
		respondDomainErr(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"access": string(level), "posts": toListDTO(list)})
}

// GET /albums/:id/posts — album contents, capped by the album's own gate.
func ListAlbumPosts(c *gin.Context) {
	albumID, ok := pathID(c, "id")
	if !ok {
		return
	}

	svc := posts.NewService(database.DB)
	level, list, err := svc.ListForSeeker(c.Request.Context(), middleware.SeekerID(c), posts.ForAlbum(albumID))
	if err != nil {
		respondDomainErr(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"access": string(level), "posts": toListDTO(list)})
}

// POST /posts
func CreatePost(c *gin.Context) {
	userID, ok := middleware.MustUserID(c)
	if !ok {
		return
	}

	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !access.Visibility(req.PublicLvl).Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "public_lvl must be 0, 1 or 2"})
		return
	}

	addToFeed := true
	if req.AddToFeed != nil {
		addToFeed = *req.AddToFeed
	}

	post := posts.Post{
		Title:           req.Title,
		Body:            req.Body,
		UserID:          userID,
		AddToFeed:       addToFeed,
		DisableComments: req.DisableComments,
		PublicLvl:       req.PublicLvl,
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&post).Error; err != nil {
			return err
		}
		for _, imageID := range req.ImageIDs {
			link := posts.PostImage{PostID: post.ID, ImageID: imageID}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post"})
		return
	}

	c.JSON(http.StatusCreated, toPostDTO(post))
}

// PUT /posts/:id — owner always, admin allowed.
func UpdatePost(c *gin.Context) {
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, ok := middleware.MustUserID(c)
	if !ok {
		return
	}

	var req UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := posts.NewService(database.DB)
	level, _, err := svc.LevelFor(c.Request.Context(), &userID, postID)
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
	if req.Body != nil {
		updates["body"] = *req.Body
	}
	if req.AddToFeed != nil {
		updates["add_to_feed"] = *req.AddToFeed
	}
	if req.DisableComments != nil {
		updates["disable_comments"] = *req.DisableComments
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

	if err := database.DB.Model(&posts.Post{}).Where("id = ?", postID).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update post"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// DELETE /posts/:id — owner only; admins moderate through ban, not deletion.
func DeletePost(c *gin.Context) {
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, ok := middleware.MustUserID(c)
	if !ok {
		return
	}

	svc := posts.NewService(database.DB)
	level, _, err := svc.LevelFor(c.Request.Context(), &userID, postID)
	if err != nil {
		respondDomainErr(c, err)
		return
	}
	if !access.CanEdit(level, false) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", postID).Delete(&posts.PostImage{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", postID).Delete(&posts.Post{}).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete post"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// POST /posts/:id/images
func AddPostImage(c *gin.Context) {
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, ok := middleware.MustUserID(c)
	if !ok {
		return
	}

	var req struct {
		ImageID uuid.UUID `json:"image_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := posts.NewService(database.DB)
	level, _, err := svc.LevelFor(c.Request.Context(), &userID, postID)
	if err != nil {
		respondDomainErr(c, err)
		return
	}
	if !access.CanEdit(level, true) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	link := posts.PostImage{PostID: postID, ImageID: req.ImageID}
	if err := database.DB.Create(&link).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to attach image"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": link.ID})
}
