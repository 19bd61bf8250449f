package state

import (
	"context"
	"encoding/json"
	"errors"
	"log"
)

type (
	// Store reads and writes a user's whole collection per slot. A missing
	// slot is not an error, the caller's default stays in place.
	Store interface {
		Load(ctx context.Context, userID string, slot string, out any) (bool, error)
		Save(ctx context.Context, userID string, slot string, value any) error
		Clear(ctx context.Context, userID string, slot string) error
	}

	store struct {
		stateRepository StateRepository
	}
)

func NewStore(stateRepository StateRepository) Store {
	return &store{stateRepository: stateRepository}
}

func (s *store) Load(ctx context.Context, userID string, slot string, out any) (bool, error) {
	payload, err := s.stateRepository.GetSlot(ctx, userID, slot)
	if err != nil {
		if errors.Is(err, ErrSlotNotFound) {
			return false, nil
		}
		return false, err
	}

	if err := json.Unmarshal(payload, out); err != nil {
		// a corrupt slot behaves like an absent one
		log.Printf("discarding malformed payload for slot %s: %v", slot, err)
		return false, nil
	}
	return true, nil
}

func (s *store) Save(ctx context.Context, userID string, slot string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.stateRepository.UpsertSlot(ctx, userID, slot, payload)
}

func (s *store) Clear(ctx context.Context, userID string, slot string) error {
	return s.stateRepository.DeleteSlot(ctx, userID, slot)
}
