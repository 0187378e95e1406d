package repository

import (
	"context"
	"errors"

	"interest-calculator/domain"
)

var ErrSessionNotFound = errors.New("session not found")

type SessionRepository interface {
	Get(ctx context.Context, id string) (domain.Session, error)
	Save(ctx context.Context, session domain.Session) error
	Delete(ctx context.Context, id string) error
}
