package services

import (
	"github.com/diego410711/mbf-backend/internal/database"
	"github.com/diego410711/mbf-backend/internal/models"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// EventService implementa el calendario de servicio
type EventService struct {
	repo   *database.EventRepository
	logger *logrus.Logger
}

// NewEventService crea una nueva instancia del servicio de eventos
func NewEventService(repo *database.EventRepository, logger *logrus.Logger) *EventService {
	return &EventService{
		repo:   repo,
		logger: logger,
	}
}

// Create da de alta un evento
func (s *EventService) Create(req *models.CreateEventRequest) (*models.Event, error) {
	ev := &models.Event{
		Title: req.Title,
		Date:  req.Date,
		Type:  req.Type,
		Time:  req.Time,
	}

	created, err := s.repo.Create(ev)
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"event_id": created.ID,
		"title":    created.Title,
	}).Info("Event created")

	return created, nil
}

// GetAll lista todos los eventos
func (s *EventService) GetAll() ([]models.Event, error) {
	return s.repo.GetAll()
}

// Search busca eventos por título o tipo, sin distinguir mayúsculas
func (s *EventService) Search(criteria string) ([]models.Event, error) {
	return s.repo.Search(criteria)
}

// Update modifica un evento
func (s *EventService) Update(id uuid.UUID, req *models.UpdateEventRequest) (*models.Event, error) {
	return s.repo.Update(id, req)
}

// Delete elimina un evento
func (s *EventService) Delete(id uuid.UUID) error {
	return s.repo.Delete(id)
}
