package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/munawir355/muawir-alharbi/internal/logger"
	"github.com/munawir355/muawir-alharbi/internal/models"
	"github.com/segmentio/kafka-go"
)

var (
	// ErrTrailNotFound is returned when the requested trail does not exist.
	ErrTrailNotFound = errors.New("trail not found")
	// ErrTrailForbidden is returned when the requester is authenticated but
	// is not the owner of the resource.
	ErrTrailForbidden = errors.New("not authorized for this trail")
)

// TrailReader defines read operations on the trail store.
type TrailReader interface {
	List(ctx context.Context) ([]models.Trail, error)
	GetByID(ctx context.Context, trailID int) (*models.Trail, error)
	ListByUserID(ctx context.Context, userID int) ([]models.Trail, error)
}

// TrailWriter defines write operations on the trail store.
type TrailWriter interface {
	Save(ctx context.Context, trailName string, description *string, createdBy int) (*models.Trail, error)
	Update(ctx context.Context, trailID int, trailName string, description *string) (*models.Trail, error)
	Delete(ctx context.Context, trailID int) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// TrailService handles trail CRUD, ownership enforcement, and event
// publishing.
type TrailService struct {
	readRepo    TrailReader
	writeRepo   TrailWriter
	kafkaWriter KafkaWriter
}

// NewTrailService creates a new TrailService. kafkaWriter may be nil, in
// which case events are skipped.
func NewTrailService(readRepo TrailReader, writeRepo TrailWriter, kafkaWriter KafkaWriter) *TrailService {
	return &TrailService{
		readRepo:    readRepo,
		writeRepo:   writeRepo,
		kafkaWriter: kafkaWriter,
	}
}

// publishEvent publishes a trail mutation event to Kafka.
func (s *TrailService) publishEvent(ctx context.Context, operation string, trailID, userID int) {
	if s.kafkaWriter == nil {
		return
	}

	event := models.TrailEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		Operation: operation,
		TrailID:   trailID,
		UserID:    userID,
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal trail event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish trail event", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("trail event published", "event_id", event.EventID, "operation", operation, "trail_id", trailID)
	}
}

// List returns all trails. Public, unpaginated.
func (s *TrailService) List(ctx context.Context) ([]models.Trail, error) {
	return s.readRepo.List(ctx)
}

// Get returns a single trail by id.
func (s *TrailService) Get(ctx context.Context, trailID int) (*models.Trail, error) {
	trail, err := s.readRepo.GetByID(ctx, trailID)
	if err != nil {
		return nil, err
	}
	if trail == nil {
		return nil, ErrTrailNotFound
	}
	return trail, nil
}

// Create persists a new trail owned by creatorID.
func (s *TrailService) Create(ctx context.Context, trailName string, description *string, creatorID int) (*models.Trail, error) {
	trail, err := s.writeRepo.Save(ctx, trailName, description, creatorID)
	if err != nil {
		logger.Log.Errorw("failed to create trail", "name", trailName, "creator", creatorID, "error", err)
		return nil, err
	}

	s.publishEvent(ctx, "created", trail.TrailID, creatorID)
	return trail, nil
}

// Update mutates a trail's name and description. Only the owner may
// update; the owner is read and compared before anything is written so the
// authorization decision stays separate from the mutation.
func (s *TrailService) Update(ctx context.Context, trailID int, trailName string, description *string, requesterID int) (*models.Trail, error) {
	existing, err := s.readRepo.GetByID(ctx, trailID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrTrailNotFound
	}
	if existing.CreatedBy != requesterID {
		logger.Log.Infow("update rejected", "trail_id", trailID, "owner", existing.CreatedBy, "requester", requesterID)
		return nil, ErrTrailForbidden
	}

	trail, err := s.writeRepo.Update(ctx, trailID, trailName, description)
	if err != nil {
		logger.Log.Errorw("failed to update trail", "trail_id", trailID, "error", err)
		return nil, err
	}

	s.publishEvent(ctx, "updated", trailID, requesterID)
	return trail, nil
}

// Delete removes a trail. Same ownership check as Update.
func (s *TrailService) Delete(ctx context.Context, trailID, requesterID int) error {
	existing, err := s.readRepo.GetByID(ctx, trailID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrTrailNotFound
	}
	if existing.CreatedBy != requesterID {
		logger.Log.Infow("delete rejected", "trail_id", trailID, "owner", existing.CreatedBy, "requester", requesterID)
		return ErrTrailForbidden
	}

	if err := s.writeRepo.Delete(ctx, trailID); err != nil {
		logger.Log.Errorw("failed to delete trail", "trail_id", trailID, "error", err)
		return err
	}

	s.publishEvent(ctx, "deleted", trailID, requesterID)
	return nil
}

// ListForUser returns the trails associated with userID. Only the user
// themselves may list their trails.
func (s *TrailService) ListForUser(ctx context.Context, userID, requesterID int) ([]models.Trail, error) {
	if userID != requesterID {
		logger.Log.Infow("user trail listing rejected", "user_id", userID, "requester", requesterID)
		return nil, ErrTrailForbidden
	}
	return s.readRepo.ListByUserID(ctx, userID)
}
