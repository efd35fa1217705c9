package api

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/diego410711/mbf-backend/internal/database"
	"github.com/diego410711/mbf-backend/internal/models"
	"github.com/diego410711/mbf-backend/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// API agrupa los servicios expuestos por los handlers HTTP
type API struct {
	users     *services.UserService
	auth      *services.AuthService
	equipment *services.EquipmentService
	inventory *services.InventoryService
	events    *services.EventService
	storage   *services.StorageService
	logger    *logrus.Logger
}

// NewAPI crea una nueva instancia de la API
func NewAPI(
	users *services.UserService,
	auth *services.AuthService,
	equipment *services.EquipmentService,
	inventory *services.InventoryService,
	events *services.EventService,
	storage *services.StorageService,
	logger *logrus.Logger,
) *API {
	return &API{
		users:     users,
		auth:      auth,
		equipment: equipment,
		inventory: inventory,
		events:    events,
		storage:   storage,
		logger:    logger,
	}
}

// RegisterRoutes registra todas las rutas del servicio
func (a *API) RegisterRoutes(router *gin.Engine) {
	auth := router.Group("/auth")
	{
		auth.POST("/register", a.Register)
		auth.POST("/login", a.Login)
		auth.POST("/forgot-password", a.ForgotPassword)
		auth.POST("/reset-password", a.ResetPassword)
		auth.GET("/users", a.AuthMiddleware(), a.ListUsers)
		auth.PUT("/users/:id", a.AuthMiddleware(), a.UpdateUser)
		auth.DELETE("/users/:id", a.AuthMiddleware(), a.DeleteUser)
	}

	equipment := router.Group("/equipment")
	{
		equipment.POST("", a.CreateEquipment)
		equipment.GET("", a.ListEquipment)
		equipment.GET("/generate-pdf/:id", a.GenerateEquipmentPDF)
		equipment.GET("/:id", a.GetEquipment)
		equipment.GET("/:id/photos", a.GetEquipmentPhotos)
		equipment.GET("/:id/invoice", a.GetEquipmentInvoice)
		equipment.PUT("/:id", a.UpdateEquipment)
		equipment.PATCH("/:id/customer-approval", a.UpdateCustomerApproval)
		equipment.PATCH("/:id/photo", a.RemoveEquipmentPhoto)
		equipment.DELETE("/:id", a.DeleteEquipment)
	}

	inventory := router.Group("/inventory")
	{
		inventory.POST("", a.CreateInventory)
		inventory.GET("", a.ListInventory)
		inventory.GET("/generate-pdf/:id", a.GenerateInventoryPDF)
		inventory.GET("/:id", a.GetInventory)
		inventory.GET("/:id/qr", a.GetInventoryQR)
		inventory.PUT("/:id", a.UpdateInventory)
		inventory.DELETE("/:id", a.DeleteInventory)
	}

	events := router.Group("/events")
	{
		events.POST("", a.CreateEvent)
		events.GET("", a.ListEvents)
		events.GET("/search", a.SearchEvents)
		events.PUT("/:id", a.UpdateEvent)
		events.DELETE("/:id", a.DeleteEvent)
	}

	files := router.Group("/files")
	{
		files.GET("/contracts/:id", a.DownloadContract)
		files.GET("/sheets/:id", a.DownloadSheet)
	}
}

// AuthMiddleware valida el token Bearer y deja los claims en el contexto
func (a *API) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				models.NewUnauthorizedError("Missing or malformed Authorization header"))
			return
		}

		claims, err := a.auth.ValidateToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid or expired token"))
			return
		}

		c.Set("claims", claims)
		c.Next()
	}
}

// parseID interpreta el parámetro :id como UUID; escribe la respuesta de
// error cuando no lo es
func (a *API) parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.NewValidationError("Invalid id", []models.ErrorDetail{
			{Field: "id", Issue: "Must be a valid UUID"},
		}))
		return uuid.Nil, false
	}
	return id, true
}

// handleError traduce los errores de negocio a respuestas HTTP
func (a *API) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, database.ErrNotFound):
		c.JSON(http.StatusNotFound, models.NewNotFoundError(err.Error()))
	case errors.Is(err, services.ErrCaptchaFailed):
		c.JSON(http.StatusUnauthorized, models.NewUnauthorizedError("Captcha verification failed"))
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, models.NewUnauthorizedError("Invalid credentials"))
	case errors.Is(err, services.ErrUsernameTaken):
		c.JSON(http.StatusConflict, models.NewConflictError("Username already exists"))
	case errors.Is(err, services.ErrFTTaken):
		c.JSON(http.StatusConflict, models.NewConflictError("Technical sheet code already exists"))
	case errors.Is(err, services.ErrPasswordMismatch):
		c.JSON(http.StatusBadRequest, models.NewValidationError("Passwords do not match", []models.ErrorDetail{
			{Field: "confirmPassword", Issue: "Must match password"},
		}))
	case errors.Is(err, services.ErrTooManyPhotos):
		c.JSON(http.StatusBadRequest, models.NewValidationError("Too many photos", []models.ErrorDetail{
			{Field: "photos", Issue: "At most 3 photos are allowed"},
		}))
	case errors.Is(err, services.ErrPhotoNotFound):
		c.JSON(http.StatusNotFound, models.NewNotFoundError("Photo not found on equipment"))
	default:
		a.logger.WithError(err).Error("Unhandled error in request")
		c.JSON(http.StatusInternalServerError, models.NewInternalError("Internal server error"))
	}
}

// readFormFile lee un archivo multipart opcional; retorna nil cuando el
// campo no llegó
func readFormFile(c *gin.Context, field string) ([]byte, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, err
	}
	return readMultipartFile(fileHeader)
}

func readMultipartFile(fileHeader *multipart.FileHeader) ([]byte, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return io.ReadAll(file)
}
