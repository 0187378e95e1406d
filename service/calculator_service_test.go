package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"interest-calculator/domain"
	"interest-calculator/repository"
)

type mockSessionRepository struct {
	mock.Mock
}

func (m *mockSessionRepository) Get(ctx context.Context, id string) (domain.Session, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Session), args.Error(1)
}

func (m *mockSessionRepository) Save(ctx context.Context, session domain.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *mockSessionRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newTestCalculator(repo repository.SessionRepository) *CalculatorService {
	svc := NewCalculatorService(repo, NewInterestService(DefaultLimits))
	svc.now = func() time.Time { return time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC) }
	svc.newID = func() string { return "session-1" }
	return svc
}

func fillForm(t *testing.T, svc *CalculatorService, id string, fields map[string]string) {
	t.Helper()
	for field, value := range fields {
		_, err := svc.SetField(context.Background(), id, field, value)
		require.NoError(t, err)
	}
}

func TestCalculatorService_StartUsesDefaults(t *testing.T) {
	svc := newTestCalculator(repository.NewSessionRepositoryMemory(time.Hour))

	session, err := svc.Start(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "session-1", session.ID)
	assert.Equal(t, DefaultInput(), session.Input)
	assert.Equal(t, "12", session.Input.CompoundFrequency)
	assert.Equal(t, "USD", session.Input.Currency)
	assert.Nil(t, session.Result)
}

func TestCalculatorService_CalculateStoresResult(t *testing.T) {
	ctx := context.Background()
	svc := newTestCalculator(repository.NewSessionRepositoryMemory(time.Hour))
	_, err := svc.Start(ctx)
	require.NoError(t, err)

	fillForm(t, svc, "session-1", map[string]string{
		FieldPrincipal:           "10000",
		FieldRate:                "5",
		FieldYears:               "10",
		FieldMonthlyContribution: "100",
	})

	calc, err := svc.Calculate(ctx, "session-1", false)
	require.NoError(t, err)
	assert.InDelta(t, 31998.32, calc.Result.FutureValue, 0.01)
	assert.Equal(t, "$31,998.32", calc.Breakdown.FutureValue)
	assert.Empty(t, calc.Breakdown.Projection)

	session, err := svc.Get(ctx, "session-1")
	require.NoError(t, err)
	require.NotNil(t, session.Result)
	assert.Equal(t, calc.Result, *session.Result)
}

func TestCalculatorService_ValidationErrorKeepsPreviousResult(t *testing.T) {
	ctx := context.Background()
	svc := newTestCalculator(repository.NewSessionRepositoryMemory(time.Hour))
	_, err := svc.Start(ctx)
	require.NoError(t, err)

	fillForm(t, svc, "session-1", map[string]string{
		FieldPrincipal: "10000",
		FieldRate:      "5",
		FieldYears:     "10",
	})
	first, err := svc.Calculate(ctx, "session-1", false)
	require.NoError(t, err)

	fillForm(t, svc, "session-1", map[string]string{FieldRate: "0"})
	_, err = svc.Calculate(ctx, "session-1", false)

	var vErr *domain.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, FieldRate, vErr.Field)

	session, err := svc.Get(ctx, "session-1")
	require.NoError(t, err)
	require.NotNil(t, session.Result)
	assert.Equal(t, first.Result, *session.Result)
	assert.Equal(t, "0", session.Input.Rate)
}

func TestCalculatorService_RecalculateSupersedesResult(t *testing.T) {
	ctx := context.Background()
	svc := newTestCalculator(repository.NewSessionRepositoryMemory(time.Hour))
	_, err := svc.Start(ctx)
	require.NoError(t, err)

	fillForm(t, svc, "session-1", map[string]string{
		FieldPrincipal: "10000",
		FieldRate:      "5",
		FieldYears:     "10",
	})
	_, err = svc.Calculate(ctx, "session-1", false)
	require.NoError(t, err)

	fillForm(t, svc, "session-1", map[string]string{FieldYears: "20"})
	second, err := svc.Calculate(ctx, "session-1", true)
	require.NoError(t, err)
	assert.Len(t, second.Breakdown.Projection, 20)

	session, err := svc.Get(ctx, "session-1")
	require.NoError(t, err)
	assert.Equal(t, second.Result, *session.Result)
}

func TestCalculatorService_ResetRestoresDefaults(t *testing.T) {
	ctx := context.Background()
	svc := newTestCalculator(repository.NewSessionRepositoryMemory(time.Hour))
	_, err := svc.Start(ctx)
	require.NoError(t, err)

	fillForm(t, svc, "session-1", map[string]string{
		FieldPrincipal:         "10000",
		FieldRate:              "5",
		FieldYears:             "10",
		FieldCompoundFrequency: "365",
		FieldCurrency:          "NGN",
	})
	_, err = svc.Calculate(ctx, "session-1", false)
	require.NoError(t, err)

	session, err := svc.Reset(ctx, "session-1")

	require.NoError(t, err)
	assert.Equal(t, DefaultInput(), session.Input)
	assert.Nil(t, session.Result)

	stored, err := svc.Get(ctx, "session-1")
	require.NoError(t, err)
	assert.Nil(t, stored.Result)
}

func TestCalculatorService_SetFieldUnknownField(t *testing.T) {
	ctx := context.Background()
	svc := newTestCalculator(repository.NewSessionRepositoryMemory(time.Hour))
	_, err := svc.Start(ctx)
	require.NoError(t, err)

	_, err = svc.SetField(ctx, "session-1", "inflation", "3")

	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestCalculatorService_SetFieldDoesNotValidate(t *testing.T) {
	ctx := context.Background()
	svc := newTestCalculator(repository.NewSessionRepositoryMemory(time.Hour))
	_, err := svc.Start(ctx)
	require.NoError(t, err)

	session, err := svc.SetField(ctx, "session-1", FieldPrincipal, "not a number")

	require.NoError(t, err)
	assert.Equal(t, "not a number", session.Input.Principal)
}

func TestCalculatorService_MissingSession(t *testing.T) {
	repo := new(mockSessionRepository)
	repo.On("Get", mock.Anything, "nope").Return(domain.Session{}, repository.ErrSessionNotFound)
	svc := newTestCalculator(repo)

	_, err := svc.Calculate(context.Background(), "nope", false)

	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCalculatorService_SaveFailure(t *testing.T) {
	repo := new(mockSessionRepository)
	repo.On("Get", mock.Anything, "session-1").Return(domain.Session{
		ID:    "session-1",
		Input: domain.RawInput{Principal: "100", Rate: "1", Years: "1"},
	}, nil)
	repo.On("Save", mock.Anything, mock.Anything).Return(errors.New("connection refused"))
	svc := newTestCalculator(repo)

	_, err := svc.Calculate(context.Background(), "session-1", false)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
	repo.AssertExpectations(t)
}

// slowSessionRepository widens the window between reading and saving a session.
type slowSessionRepository struct {
	*repository.SessionRepositoryMemory
	delay time.Duration
}

func (r *slowSessionRepository) Get(ctx context.Context, id string) (domain.Session, error) {
	session, err := r.SessionRepositoryMemory.Get(ctx, id)
	time.Sleep(r.delay)
	return session, err
}

func TestCalculatorService_ConcurrentSetFieldKeepsEveryField(t *testing.T) {
	ctx := context.Background()
	memory := repository.NewSessionRepositoryMemory(time.Hour)
	defer memory.Stop()
	svc := newTestCalculator(&slowSessionRepository{SessionRepositoryMemory: memory, delay: 5 * time.Millisecond})
	_, err := svc.Start(ctx)
	require.NoError(t, err)

	fields := map[string]string{
		FieldPrincipal:           "10000",
		FieldRate:                "5",
		FieldYears:               "10",
		FieldCompoundFrequency:   "4",
		FieldMonthlyContribution: "100",
		FieldCurrency:            "NGN",
	}

	var wg sync.WaitGroup
	for field, value := range fields {
		field, value := field, value
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.SetField(ctx, "session-1", field, value)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	session, err := svc.Get(ctx, "session-1")
	require.NoError(t, err)
	assert.Equal(t, domain.RawInput{
		Principal:           "10000",
		Rate:                "5",
		Years:               "10",
		CompoundFrequency:   "4",
		MonthlyContribution: "100",
		Currency:            "NGN",
	}, session.Input)

	svc.locks.mu.Lock()
	defer svc.locks.mu.Unlock()
	assert.Empty(t, svc.locks.locks)
}
