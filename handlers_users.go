package main

import (
	"net/http"

	"bukukas/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

func listUsersHandler(c *gin.Context) {
	users := []models.User{}
	if err := db.Order("id").Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": users})
}

func createUserHandler(c *gin.Context) {
	var req struct {
		Name     string      `json:"name" binding:"required,max=255"`
		Email    string      `json:"email" binding:"required,email"`
		Password string      `json:"password" binding:"required,min=6"`
		Role     models.Role `json:"role" binding:"required,oneof=user finance admin"`
	}
	if !bindJSON(c, &req) {
		return
	}
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to hash password"})
		return
	}
	user := models.User{
		Name:           req.Name,
		Email:          req.Email,
		HashedPassword: hashedPassword,
		Role:           req.Role,
	}
	if err := db.Create(&user).Error; err != nil {
		if isUniqueConstraintError(err) {
			respondFieldError(c, "email", "The email has already been taken.")
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": user})
}

func showUserHandler(c *gin.Context) {
	var user models.User
	if err := db.First(&user, c.Param("id")).Error; err != nil {
		respondNotFound(c, "user")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": user})
}

func updateUserHandler(c *gin.Context) {
	var user models.User
	if err := db.First(&user, c.Param("id")).Error; err != nil {
		respondNotFound(c, "user")
		return
	}
	var req struct {
		Name     string      `json:"name" binding:"required,max=255"`
		Email    string      `json:"email" binding:"required,email"`
		Password *string     `json:"password" binding:"omitempty,min=6"`
		Role     models.Role `json:"role" binding:"required,oneof=user finance admin"`
	}
	if !bindJSON(c, &req) {
		return
	}
	user.Name = req.Name
	user.Email = req.Email
	user.Role = req.Role
	if req.Password != nil {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to hash password"})
			return
		}
		user.HashedPassword = hashedPassword
	}
	if err := db.Save(&user).Error; err != nil {
		if isUniqueConstraintError(err) {
			respondFieldError(c, "email", "The email has already been taken.")
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": user})
}

func deleteUserHandler(c *gin.Context) {
	var user models.User
	if err := db.First(&user, c.Param("id")).Error; err != nil {
		respondNotFound(c, "user")
		return
	}
	if err := db.Delete(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "User deleted successfully"})
}
