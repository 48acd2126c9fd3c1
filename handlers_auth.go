package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// loginHandler validates credentials and returns the user plus a fresh
// bearer token. Credentials never make it into the logs.
func loginHandler(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if !bindJSON(c, &req) {
		return
	}
	user, err := authenticate(req.Email, req.Password)
	if err != nil {
		log.Printf("login rejected for %s", req.Email)
		respondFieldError(c, "email", "The provided credentials are incorrect.")
		return
	}
	token, err := issueToken(&user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}
	log.Printf("login successful for %s", user.Email)
	c.JSON(http.StatusOK, gin.H{"user": user, "token": token})
}

// logoutHandler revokes the token presented on this request, and only
// that one.
func logoutHandler(c *gin.Context) {
	if err := revokeToken(currentTokenID(c)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to revoke token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

func userHandler(c *gin.Context) {
	c.JSON(http.StatusOK, currentUser(c))
}
