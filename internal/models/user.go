package models

import (
	"time"

	"github.com/google/uuid"
)

// User representa un usuario del sistema (técnico, administrador o cliente)
type User struct {
	ID                   uuid.UUID  `json:"userId"`
	Username             string     `json:"username"`
	Password             string     `json:"-"`
	ConfirmPassword      string     `json:"-"`
	Name                 string     `json:"name"`
	Lastname             string     `json:"lastname"`
	Company              string     `json:"company"`
	Doc                  string     `json:"doc"`
	Position             string     `json:"position"`
	Check                int        `json:"check"`
	Role                 string     `json:"role"`
	Address              *string    `json:"address,omitempty"`
	Phone                *string    `json:"phone,omitempty"`
	ResetPasswordCode    *int       `json:"-"`
	ResetPasswordExpires *time.Time `json:"-"`
	CreatedAt            time.Time  `json:"createdAt"`
	UpdatedAt            time.Time  `json:"updatedAt"`
}

// RegisterRequest representa la petición de registro de usuario
type RegisterRequest struct {
	Name            string  `json:"name" binding:"required"`
	Lastname        string  `json:"lastname" binding:"required"`
	Company         string  `json:"company" binding:"required"`
	Doc             string  `json:"doc" binding:"required"`
	Position        string  `json:"position" binding:"required"`
	Username        string  `json:"username" binding:"required,email"`
	Password        string  `json:"password" binding:"required"`
	ConfirmPassword string  `json:"confirmPassword" binding:"required"`
	Check           int     `json:"check" binding:"required"`
	CaptchaToken    string  `json:"captchaToken" binding:"required"`
	Role            string  `json:"role" binding:"required"`
	Address         *string `json:"address,omitempty"`
	Phone           *string `json:"phone,omitempty"`
}

// LoginRequest representa la petición de inicio de sesión
type LoginRequest struct {
	Username     string `json:"username" binding:"required"`
	Password     string `json:"password" binding:"required"`
	CaptchaToken string `json:"captchaToken" binding:"required"`
}

// LoginResponse representa la respuesta de inicio de sesión
type LoginResponse struct {
	Message     string  `json:"message"`
	AccessToken string  `json:"access_token"`
	Role        string  `json:"role"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Lastname    string  `json:"lastname"`
	Address     *string `json:"address,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	UserID      string  `json:"userId"`
}

// UpdateUserRequest representa la petición de actualización de usuario
type UpdateUserRequest struct {
	Name     *string `json:"name,omitempty"`
	Lastname *string `json:"lastname,omitempty"`
	Company  *string `json:"company,omitempty"`
	Doc      *string `json:"doc,omitempty"`
	Position *string `json:"position,omitempty"`
	Username *string `json:"username,omitempty"`
	Password *string `json:"password,omitempty"`
	Role     *string `json:"role,omitempty"`
	Address  *string `json:"address,omitempty"`
	Phone    *string `json:"phone,omitempty"`
}

// IsEmpty retorna true si la petición no trae ningún campo a actualizar
func (r *UpdateUserRequest) IsEmpty() bool {
	return r.Name == nil && r.Lastname == nil && r.Company == nil && r.Doc == nil &&
		r.Position == nil && r.Username == nil && r.Password == nil && r.Role == nil &&
		r.Address == nil && r.Phone == nil
}

// ForgotPasswordRequest representa la petición de recuperación de contraseña
type ForgotPasswordRequest struct {
	Username string `json:"username" binding:"required"`
}

// ResetPasswordRequest representa la petición de cambio de contraseña con código
type ResetPasswordRequest struct {
	Username    string `json:"username" binding:"required"`
	Code        int    `json:"code" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}

// ResetPasswordResponse representa el resultado del cambio de contraseña
type ResetPasswordResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	ErrorCode string `json:"errorCode,omitempty"`
}
