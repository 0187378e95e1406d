package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"interest-calculator/domain"
	"interest-calculator/repository"
)

var ErrUnknownField = errors.New("unknown field")

// DefaultInput is the form state of a new or reset calculator.
func DefaultInput() domain.RawInput {
	return domain.RawInput{
		CompoundFrequency: fmt.Sprint(int(DefaultFrequency)),
		Currency:          string(DefaultCurrency),
	}
}

// CalculatorService keeps calculator sessions: form fields edited one at a time,
// and the result of the last explicit calculation. Updates to one session are
// serialised within the process.
type CalculatorService struct {
	repo     repository.SessionRepository
	interest *InterestService
	locks    *sessionLocks
	now      func() time.Time
	newID    func() string
}

func NewCalculatorService(repo repository.SessionRepository, interest *InterestService) *CalculatorService {
	return &CalculatorService{
		repo:     repo,
		interest: interest,
		locks:    newSessionLocks(),
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

func (s *CalculatorService) Start(ctx context.Context) (domain.Session, error) {
	session := domain.Session{
		ID:        s.newID(),
		Input:     DefaultInput(),
		UpdatedAt: s.now(),
	}
	if err := s.repo.Save(ctx, session); err != nil {
		return domain.Session{}, fmt.Errorf("failed to create session: %w", err)
	}

	zerolog.Ctx(ctx).Debug().Str("session", session.ID).Msg("calculator session started")
	return session, nil
}

func (s *CalculatorService) Get(ctx context.Context, id string) (domain.Session, error) {
	return s.repo.Get(ctx, id)
}

func (s *CalculatorService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// SetField overwrites a single form field. Values are not checked until Calculate.
func (s *CalculatorService) SetField(ctx context.Context, id, field, value string) (domain.Session, error) {
	unlock := s.locks.lock(id)
	defer unlock()

	session, err := s.repo.Get(ctx, id)
	if err != nil {
		return domain.Session{}, err
	}

	switch field {
	case FieldPrincipal:
		session.Input.Principal = value
	case FieldRate:
		session.Input.Rate = value
	case FieldYears:
		session.Input.Years = value
	case FieldCompoundFrequency:
		session.Input.CompoundFrequency = value
	case FieldMonthlyContribution:
		session.Input.MonthlyContribution = value
	case FieldCurrency:
		session.Input.Currency = value
	default:
		return domain.Session{}, fmt.Errorf("%w: %s", ErrUnknownField, field)
	}

	session.UpdatedAt = s.now()
	if err := s.repo.Save(ctx, session); err != nil {
		return domain.Session{}, fmt.Errorf("failed to save session %s: %w", id, err)
	}
	return session, nil
}

// Calculate replaces the session result with one derived from its current input.
// A validation error leaves the previous result in place.
func (s *CalculatorService) Calculate(ctx context.Context, id string, withProjection bool) (Calculation, error) {
	unlock := s.locks.lock(id)
	defer unlock()

	session, err := s.repo.Get(ctx, id)
	if err != nil {
		return Calculation{}, err
	}

	calc, err := s.interest.Evaluate(ctx, session.Input, withProjection)
	if err != nil {
		return Calculation{}, err
	}

	result := calc.Result
	session.Result = &result
	session.UpdatedAt = s.now()
	if err := s.repo.Save(ctx, session); err != nil {
		return Calculation{}, fmt.Errorf("failed to save session %s: %w", id, err)
	}
	return calc, nil
}

// Reset restores the default form state and discards the result.
func (s *CalculatorService) Reset(ctx context.Context, id string) (domain.Session, error) {
	unlock := s.locks.lock(id)
	defer unlock()

	session, err := s.repo.Get(ctx, id)
	if err != nil {
		return domain.Session{}, err
	}

	session.Input = DefaultInput()
	session.Result = nil
	session.UpdatedAt = s.now()
	if err := s.repo.Save(ctx, session); err != nil {
		return domain.Session{}, fmt.Errorf("failed to save session %s: %w", id, err)
	}
	return session, nil
}
