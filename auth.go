package main

import (
	"errors"
	"strings"
	"time"

	"bukukas/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	jwtSecret = []byte("dev-insecure-secret-change") // overwritten from config in main
	tokenTTL  = 24 * time.Hour
)

var errInvalidCredentials = errors.New("invalid credentials")

// authenticate looks a user up by email and checks the password. Both
// failure paths return the same error so callers cannot tell an unknown
// email from a wrong password.
func authenticate(email, password string) (models.User, error) {
	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		return models.User{}, errInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(user.HashedPassword, []byte(password)); err != nil {
		return models.User{}, errInvalidCredentials
	}
	return user, nil
}

// issueToken records a revocable AuthToken row and returns a signed JWT
// whose jti points at it. Deleting the row invalidates the token, which
// is how logout revokes the current session.
func issueToken(user *models.User) (string, error) {
	at := models.AuthToken{UserID: user.ID, ExpiresAt: time.Now().Add(tokenTTL)}
	if err := db.Create(&at).Error; err != nil {
		return "", err
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": user.ID,
		"jti": at.ID,
		"exp": at.ExpiresAt.Unix(),
	})
	return token.SignedString(jwtSecret)
}

func revokeToken(tokenID uint) error {
	return db.Delete(&models.AuthToken{}, tokenID).Error
}

func authMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			abortUnauthenticated(c)
			return
		}
		tokenString := header[7:]
		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrInvalidKeyType
			}
			return jwtSecret, nil
		})
		if err != nil || !token.Valid {
			abortUnauthenticated(c)
			return
		}
		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			abortUnauthenticated(c)
			return
		}
		sub, _ := claims["sub"].(float64)
		jti, _ := claims["jti"].(float64)
		if sub == 0 || jti == 0 {
			abortUnauthenticated(c)
			return
		}
		// The token row must still be on record: logout deletes it.
		var at models.AuthToken
		if err := db.First(&at, uint(jti)).Error; err != nil {
			abortUnauthenticated(c)
			return
		}
		if at.UserID != uint(sub) || time.Now().After(at.ExpiresAt) {
			abortUnauthenticated(c)
			return
		}
		var user models.User
		if err := db.First(&user, at.UserID).Error; err != nil {
			abortUnauthenticated(c)
			return
		}
		c.Set("user", &user)
		c.Set("token_id", at.ID)
		c.Next()
	}
}

// currentUser returns the user loaded by authMiddleware.
func currentUser(c *gin.Context) *models.User {
	v, _ := c.Get("user")
	u, _ := v.(*models.User)
	return u
}

func currentTokenID(c *gin.Context) uint {
	v, _ := c.Get("token_id")
	id, _ := v.(uint)
	return id
}
