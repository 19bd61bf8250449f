package state

import (
	"FreshPlan-Backend/entities"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	StateRepository interface {
		GetSlot(ctx context.Context, userID string, slot string) ([]byte, error)
		UpsertSlot(ctx context.Context, userID string, slot string, payload []byte) error
		DeleteSlot(ctx context.Context, userID string, slot string) error
	}

	stateRepository struct {
		db *gorm.DB
	}
)

var ErrSlotNotFound = errors.New("state slot not found")

func NewStateRepository(db *gorm.DB) StateRepository {
	return &stateRepository{db: db}
}

func (r *stateRepository) GetSlot(ctx context.Context, userID string, slot string) ([]byte, error) {
	var stateSlot entities.StateSlot
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND slot = ?", userID, slot).
		First(&stateSlot).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSlotNotFound
		}
		return nil, err
	}
	return stateSlot.Payload, nil
}

func (r *stateRepository) UpsertSlot(ctx context.Context, userID string, slot string, payload []byte) error {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return err
	}

	stateSlot := entities.StateSlot{
		UserID:  uid,
		Slot:    slot,
		Payload: payload,
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "slot"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at", "deleted_at"}),
		}).
		Create(&stateSlot).Error
}

func (r *stateRepository) DeleteSlot(ctx context.Context, userID string, slot string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND slot = ?", userID, slot).
		Delete(&entities.StateSlot{}).Error
}
