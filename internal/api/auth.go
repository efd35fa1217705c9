package api

import (
	"net/http"

	"github.com/diego410711/mbf-backend/internal/models"
	"github.com/gin-gonic/gin"
)

// Register maneja POST /auth/register
func (a *API) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.NewValidationError("Invalid request body", []models.ErrorDetail{
			{Field: "body", Issue: err.Error()},
		}))
		return
	}

	user, err := a.users.Register(&req)
	if err != nil {
		a.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// Login maneja POST /auth/login
func (a *API) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.NewValidationError("Invalid request body", []models.ErrorDetail{
			{Field: "body", Issue: err.Error()},
		}))
		return
	}

	resp, err := a.users.Login(&req)
	if err != nil {
		a.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListUsers maneja GET /auth/users
func (a *API) ListUsers(c *gin.Context) {
	users, err := a.users.GetAll()
	if err != nil {
		a.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// UpdateUser maneja PUT /auth/users/:id
func (a *API) UpdateUser(c *gin.Context) {
	id, ok := a.parseID(c)
	if !ok {
		return
	}

	var req models.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.NewValidationError("Invalid request body", []models.ErrorDetail{
			{Field: "body", Issue: err.Error()},
		}))
		return
	}

	if req.IsEmpty() {
		c.JSON(http.StatusBadRequest, models.NewValidationError("No fields to update", nil))
		return
	}

	user, err := a.users.Update(id, &req)
	if err != nil {
		a.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// DeleteUser maneja DELETE /auth/users/:id
func (a *API) DeleteUser(c *gin.Context) {
	id, ok := a.parseID(c)
	if !ok {
		return
	}

	if err := a.users.Delete(id); err != nil {
		a.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}

// ForgotPassword maneja POST /auth/forgot-password
func (a *API) ForgotPassword(c *gin.Context) {
	var req models.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.NewValidationError("Invalid request body", []models.ErrorDetail{
			{Field: "username", Issue: "Required"},
		}))
		return
	}

	if err := a.users.SendRecoveryCode(req.Username); err != nil {
		a.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Código enviado al correo electrónico"})
}

// ResetPassword maneja POST /auth/reset-password
func (a *API) ResetPassword(c *gin.Context) {
	var req models.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.NewValidationError("Invalid request body", []models.ErrorDetail{
			{Field: "body", Issue: err.Error()},
		}))
		return
	}

	resp, err := a.users.ResetPassword(&req)
	if err != nil {
		a.handleError(c, err)
		return
	}

	// Los rechazos del flujo viajan con 200 y su código propio, como espera
	// el frontend
	c.JSON(http.StatusOK, resp)
}
