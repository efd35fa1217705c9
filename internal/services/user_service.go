package services

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/diego410711/mbf-backend/internal/database"
	"github.com/diego410711/mbf-backend/internal/email"
	"github.com/diego410711/mbf-backend/internal/models"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// Errores de negocio del flujo de usuarios
var (
	ErrCaptchaFailed      = errors.New("captcha verification failed")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Vigencia del código de recuperación de contraseña
const recoveryCodeTTL = 15 * time.Minute

// UserService implementa registro, sesión y recuperación de contraseña
type UserService struct {
	userRepo  *database.UserRepository
	redis     *database.Redis
	auth      *AuthService
	recaptcha *RecaptchaService
	mailer    *email.ResendService
	logger    *logrus.Logger
}

// NewUserService crea una nueva instancia del servicio de usuarios
func NewUserService(
	userRepo *database.UserRepository,
	redis *database.Redis,
	auth *AuthService,
	recaptcha *RecaptchaService,
	mailer *email.ResendService,
	logger *logrus.Logger,
) *UserService {
	return &UserService{
		userRepo:  userRepo,
		redis:     redis,
		auth:      auth,
		recaptcha: recaptcha,
		mailer:    mailer,
		logger:    logger,
	}
}

// Register da de alta un usuario: verifica el captcha, la coincidencia de
// contraseñas y la unicidad del correo, y guarda ambas contraseñas con hash
func (s *UserService) Register(req *models.RegisterRequest) (*models.User, error) {
	ok, err := s.recaptcha.Verify(req.CaptchaToken)
	if err != nil {
		return nil, fmt.Errorf("error verifying captcha: %w", err)
	}
	if !ok {
		return nil, ErrCaptchaFailed
	}

	if req.Password != req.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}

	if _, err := s.userRepo.GetByUsername(req.Username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, database.ErrNotFound) {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}
	hashedConfirm, err := bcrypt.GenerateFromPassword([]byte(req.ConfirmPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing confirm password: %w", err)
	}

	user := &models.User{
		Username:        req.Username,
		Password:        string(hashedPassword),
		ConfirmPassword: string(hashedConfirm),
		Name:            req.Name,
		Lastname:        req.Lastname,
		Company:         req.Company,
		Doc:             req.Doc,
		Position:        req.Position,
		Check:           req.Check,
		Role:            req.Role,
		Address:         req.Address,
		Phone:           req.Phone,
	}

	created, err := s.userRepo.Create(user)
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"user_id":  created.ID,
		"username": created.Username,
		"role":     created.Role,
	}).Info("User registered")

	return created, nil
}

// Login valida captcha y credenciales y emite el token de acceso
func (s *UserService) Login(req *models.LoginRequest) (*models.LoginResponse, error) {
	ok, err := s.recaptcha.Verify(req.CaptchaToken)
	if err != nil {
		return nil, fmt.Errorf("error verifying captcha: %w", err)
	}
	if !ok {
		return nil, ErrCaptchaFailed
	}

	user, err := s.userRepo.GetByUsername(req.Username)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.auth.GenerateToken(user)
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"user_id":  user.ID,
		"username": user.Username,
	}).Info("User logged in")

	return &models.LoginResponse{
		Message:     "Login successful",
		AccessToken: token,
		Role:        user.Role,
		Name:        user.Name,
		Email:       user.Username,
		Lastname:    user.Lastname,
		Address:     user.Address,
		Phone:       user.Phone,
		UserID:      user.ID.String(),
	}, nil
}

// GetAll lista los usuarios; las contraseñas nunca se serializan
func (s *UserService) GetAll() ([]models.User, error) {
	return s.userRepo.GetAll()
}

// Update actualiza los campos presentes; una contraseña nueva se guarda con
// hash
func (s *UserService) Update(id uuid.UUID, req *models.UpdateUserRequest) (*models.User, error) {
	if req.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("error hashing password: %w", err)
		}
		hashedStr := string(hashed)
		req.Password = &hashedStr
	}

	return s.userRepo.Update(id, req)
}

// Delete elimina un usuario
func (s *UserService) Delete(id uuid.UUID) error {
	return s.userRepo.Delete(id)
}

// SendRecoveryCode genera un código de seis dígitos con vigencia de 15
// minutos, lo persiste (Redis y columnas de respaldo) y lo envía por correo
func (s *UserService) SendRecoveryCode(username string) error {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		return err
	}

	code := 100000 + rand.Intn(900000)
	expiration := time.Now().Add(recoveryCodeTTL)

	if err := s.userRepo.SetResetPasswordCode(user.ID, code, expiration); err != nil {
		return err
	}

	if s.redis != nil {
		if err := s.redis.SetWithTTL(recoveryCodeKey(username), code, recoveryCodeTTL); err != nil {
			s.logger.WithError(err).Warn("Could not cache recovery code in Redis")
		}
	}

	if err := s.mailer.SendRecoveryCode(username, code); err != nil {
		return err
	}

	s.logger.WithField("username", username).Info("Recovery code sent")
	return nil
}

// ResetPassword valida el código de recuperación y cambia la contraseña.
// Los rechazos se expresan con códigos de error propios del flujo, no como
// fallas del servicio.
func (s *UserService) ResetPassword(req *models.ResetPasswordRequest) (*models.ResetPasswordResponse, error) {
	user, err := s.userRepo.GetByUsername(req.Username)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return &models.ResetPasswordResponse{
				Success:   false,
				Message:   "Usuario no encontrado",
				ErrorCode: "USER_NOT_FOUND",
			}, nil
		}
		return nil, err
	}

	storedCode, expires := s.storedRecoveryCode(user)
	if storedCode == nil || *storedCode != req.Code {
		return &models.ResetPasswordResponse{
			Success:   false,
			Message:   "Código de recuperación incorrecto",
			ErrorCode: "INVALID_RECOVERY_CODE",
		}, nil
	}

	if expires != nil && expires.Before(time.Now()) {
		return &models.ResetPasswordResponse{
			Success:   false,
			Message:   "El código de recuperación ha expirado",
			ErrorCode: "RECOVERY_CODE_EXPIRED",
		}, nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	if err := s.userRepo.UpdatePassword(user.ID, string(hashed)); err != nil {
		return nil, err
	}

	if s.redis != nil {
		if err := s.redis.Delete(recoveryCodeKey(req.Username)); err != nil {
			s.logger.WithError(err).Warn("Could not delete cached recovery code")
		}
	}

	s.logger.WithField("username", req.Username).Info("Password reset completed")

	return &models.ResetPasswordResponse{
		Success: true,
		Message: "Contraseña cambiada exitosamente",
	}, nil
}

// storedRecoveryCode lee el código vigente: Redis primero, columnas de
// respaldo del usuario después
func (s *UserService) storedRecoveryCode(user *models.User) (*int, *time.Time) {
	if s.redis != nil {
		if cached, err := s.redis.Get(recoveryCodeKey(user.Username)); err == nil {
			if code, convErr := strconv.Atoi(cached); convErr == nil {
				// La clave vive exactamente lo que vive el código
				return &code, nil
			}
		}
	}

	return user.ResetPasswordCode, user.ResetPasswordExpires
}

func recoveryCodeKey(username string) string {
	return "recovery_code:" + username
}
