package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"codekar_backend/internals/features/registration/model"
	helper "codekar_backend/internals/helpers"
)

var (
	// ErrDuplicateRecord is a store uniqueness rejection. The flow maps it
	// to a distinct user-facing outcome, never a generic failure.
	ErrDuplicateRecord = errors.New("duplicate registration")

	ErrSessionNotFound = errors.New("payment session not found")
)

// Store is the persistence boundary of the flow. Insert-only for
// registrations; sessions move through their status lifecycle.
type Store interface {
	CreateSession(ctx context.Context, s *model.PaymentSession) error
	SessionByOrderID(ctx context.Context, orderID string) (*model.PaymentSession, error)
	UpdateSession(ctx context.Context, s *model.PaymentSession) error
	InsertRegistration(ctx context.Context, r *model.Registration) error
}

type gormStore struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) CreateSession(ctx context.Context, sess *model.PaymentSession) error {
	return s.db.WithContext(ctx).Create(sess).Error
}

func (s *gormStore) SessionByOrderID(ctx context.Context, orderID string) (*model.PaymentSession, error) {
	var sess model.PaymentSession
	err := s.db.WithContext(ctx).Where("order_id = ?", orderID).First(&sess).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, orderID)
	}
	if err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *gormStore) UpdateSession(ctx context.Context, sess *model.PaymentSession) error {
	return s.db.WithContext(ctx).Save(sess).Error
}

func (s *gormStore) InsertRegistration(ctx context.Context, r *model.Registration) error {
	if err := s.db.WithContext(ctx).Create(r).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return fmt.Errorf("%w: %v", ErrDuplicateRecord, err)
		}
		return err
	}
	return nil
}
