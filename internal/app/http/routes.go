package routes

import (
	adminapi "github.com/mishaszu/imagery-storage/internal/api/admin"
	albumsapi "github.com/mishaszu/imagery-storage/internal/api/albums"
	authapi "github.com/mishaszu/imagery-storage/internal/api/auth"
	imagesapi "github.com/mishaszu/imagery-storage/internal/api/images"
	postsapi "github.com/mishaszu/imagery-storage/internal/api/posts"
	referralsapi "github.com/mishaszu/imagery-storage/internal/api/referrals"
	usersapi "github.com/mishaszu/imagery-storage/internal/api/users"
	"github.com/mishaszu/imagery-storage/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())
	public.POST("/register", authapi.Register)
	public.POST("/login", authapi.Login)
	public.GET("/auth/google", authapi.GoogleStart)
	public.GET("/auth/google/callback", authapi.GoogleCallback)

	// Read endpoints run with an optional identity: the access resolver
	// decides per resource what anonymous, subscriber, owner or admin seekers
	// get back.
	read := r.Group("/")
	read.Use(middleware.OptionalAuth())
	read.GET("/users", usersapi.ListUsers)
	read.GET("/users/:id", usersapi.GetUser)
	read.GET("/users/:id/posts", postsapi.ListUserPosts)
	read.GET("/users/:id/albums", albumsapi.ListUserAlbums)
	read.GET("/posts/:id", postsapi.GetPost)
	read.GET("/albums/:id", albumsapi.GetAlbum)
	read.GET("/albums/:id/posts", postsapi.ListAlbumPosts)
	read.GET("/images/:id", imagesapi.GetImage)

	// Authenticated
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware())
	auth.GET("/me", usersapi.GetCurrentUser)
	auth.PUT("/me/account", usersapi.UpdateOwnAccount)
	auth.POST("/change-password", authapi.ChangePassword)

	auth.POST("/posts", postsapi.CreatePost)
	auth.PUT("/posts/:id", postsapi.UpdatePost)
	auth.DELETE("/posts/:id", postsapi.DeletePost)
	auth.POST("/posts/:id/images", postsapi.AddPostImage)

	auth.POST("/albums", albumsapi.CreateAlbum)
	auth.PUT("/albums/:id", albumsapi.UpdateAlbum)
	auth.DELETE("/albums/:id", albumsapi.DeleteAlbum)
	auth.POST("/albums/:id/posts", albumsapi.AddPostToAlbum)
	auth.DELETE("/albums/:id/posts/:postId", albumsapi.RemovePostFromAlbum)

	auth.POST("/images", imagesapi.CreateImage)
	auth.DELETE("/images/:id", imagesapi.DeleteImage)

	auth.POST("/referrals", referralsapi.CreateReferral)
	auth.GET("/referrals", referralsapi.ListReferrals)
	auth.DELETE("/referrals/:id", referralsapi.DeleteReferral)

	// Admin routes
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole("admin"))
	admin.GET("/dashboard", adminapi.AdminDashboard)
	admin.GET("/users", adminapi.ListAllUsers)
	admin.GET("/posts", adminapi.ListAllPosts)
	admin.POST("/accounts/:id/ban", adminapi.BanAccount)
	admin.POST("/accounts/:id/unban", adminapi.UnbanAccount)
	admin.POST("/accounts/:id/admin", adminapi.GrantAdmin)
	admin.DELETE("/accounts/:id/admin", adminapi.RevokeAdmin)
}
