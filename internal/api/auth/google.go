package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"net/http"
	"strings"

	"github.com/mishaszu/imagery-storage/config"
	"github.com/mishaszu/imagery-storage/database"
	"github.com/mishaszu/imagery-storage/internal/domain/accounts"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"gorm.io/gorm"
)

func googleOAuthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     config.GOOGLE_CLIENT_ID,
		ClientSecret: config.GOOGLE_CLIENT_SECRET,
		RedirectURL:  config.GOOGLE_REDIRECT_URL,
		Scopes: []string{
			"openid",
			"email",
			"profile",
		},
		Endpoint: google.Endpoint,
	}
}

func randomState() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// GET /auth/google
func GoogleStart(c *gin.Context) {
	if config.GOOGLE_CLIENT_ID == "" {
		c.JSON(http.StatusNotImplemented, gin.H{"error": "Google login not configured"})
		return
	}

	state, err := randomState()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate state"})
		return
	}

	// state lives in an HttpOnly cookie for the round trip
	c.SetCookie("oauth_state", state, 300, "/", "", false, true)

	url := googleOAuthConfig().AuthCodeURL(state, oauth2.AccessTypeOnline)
	c.Redirect(http.StatusFound, url)
}

type googleClaims struct {
	Sub   string `json:"sub"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

func verifyGoogleIDToken(ctx context.Context, rawIDToken string) (googleClaims, error) {
	provider, err := oidc.NewProvider(ctx, "https://accounts.google.com")
	if err != nil {
		return googleClaims{}, err
	}
	verifier := provider.Verifier(&oidc.Config{ClientID: config.GOOGLE_CLIENT_ID})
	idToken, err := verifier.Verify(ctx, rawIDToken)
	if err != nil {
		return googleClaims{}, err
	}
	var claims googleClaims
	if err := idToken.Claims(&claims); err != nil {
		return googleClaims{}, err
	}
	if claims.Sub == "" {
		return googleClaims{}, errors.New("id token missing sub")
	}
	return claims, nil
}

// GET /auth/google/callback
func GoogleCallback(c *gin.Context) {
	state := c.Query("state")
	code := c.Query("code")
	if code == "" || state == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing code/state"})
		return
	}

	cookieState, err := c.Cookie("oauth_state")
	if err != nil || cookieState != state {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid oauth state"})
		return
	}

	tok, err := googleOAuthConfig().Exchange(c.Request.Context(), code)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "failed to exchange code"})
		return
	}

	rawIDToken, ok := tok.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing id_token"})
		return
	}

	claims, err := verifyGoogleIDToken(c.Request.Context(), rawIDToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	if claims.Email == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "google account has no email"})
		return
	}

	user, err := findOrCreateGoogleUser(claims)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create user"})
		return
	}
	if user.Account.IsBanned {
		c.JSON(http.StatusForbidden, gin.H{"error": "Account is banned"})
		return
	}

	tokenString, err := issueAppJWT(user, user.Account)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create token"})
		return
	}

	if config.GOOGLE_FRONTEND_REDIRECT != "" {
		c.Redirect(http.StatusFound, config.GOOGLE_FRONTEND_REDIRECT+"?token="+tokenString)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": tokenString})
}

func findOrCreateGoogleUser(claims googleClaims) (accounts.User, error) {
	var user accounts.User
	err := database.DB.Preload("Account").Where("google_sub = ?", claims.Sub).First(&user).Error
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return accounts.User{}, err
	}

	// existing password user with the same email gets the google sub linked
	err = database.DB.Preload("Account").Where("email = ?", claims.Email).First(&user).Error
	if err == nil {
		sub := claims.Sub
		if err := database.DB.Model(&user).Update("google_sub", sub).Error; err != nil {
			return accounts.User{}, err
		}
		user.GoogleSub = &sub
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return accounts.User{}, err
	}

	sub := claims.Sub
	nick := claims.Name
	if nick == "" {
		nick = strings.SplitN(claims.Email, "@", 2)[0]
	}
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		account := accounts.Account{
			Email: claims.Email,
			Kind:  accounts.KindCommenter,
		}
		if err := tx.Create(&account).Error; err != nil {
			return err
		}
		user = accounts.User{
			Email:     claims.Email,
			Nick:      nick,
			GoogleSub: &sub,
			AccountID: account.ID,
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		user.Account = account
		return nil
	})
	return user, err
}
