package workflows_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.temporal.io/sdk/temporal"

	"github.com/shopwalk/aisle-engine/internal/archiver"
	"github.com/shopwalk/aisle-engine/internal/domain"
	"github.com/shopwalk/aisle-engine/internal/logger"
	"github.com/shopwalk/aisle-engine/internal/mocks"
	"github.com/shopwalk/aisle-engine/internal/workflows"
)

// testExecutorMocks contains all the mocks needed for testing the executor
type testExecutorMocks struct {
	ctrl     *gomock.Controller
	archiver *mocks.MockArchiver
	executor workflows.Executor
}

// setupTestExecutor creates all the mocks and executor for testing
func setupTestExecutor(t *testing.T) *testExecutorMocks {
	err := logger.Initialize(logger.Config{
		Debug: true,
	})
	if err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}

	ctrl := gomock.NewController(t)
	tm := &testExecutorMocks{
		ctrl:     ctrl,
		archiver: mocks.NewMockArchiver(ctrl),
	}
	tm.executor = workflows.NewExecutor(tm.archiver)

	return tm
}

// tearDownTestExecutor cleans up the test mocks
func tearDownTestExecutor(mocks *testExecutorMocks) {
	mocks.ctrl.Finish()
}

func isNonRetryable(err error) bool {
	var appErr *temporal.ApplicationError
	return errors.As(err, &appErr) && appErr.NonRetryable()
}

// ====================================================================================
// RecordCheckoffSequence Tests
// ====================================================================================

func TestRecordCheckoffSequence_Success(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tearDownTestExecutor(tm)

	tripID := uuid.MustParse(testTripID)
	expected := &archiver.SequenceOutcome{StoreID: "store-1", IsValid: true, EntryCount: 3}
	tm.archiver.EXPECT().RecordCheckoffSequence(gomock.Any(), tripID).Return(expected, nil)

	outcome, err := tm.executor.RecordCheckoffSequence(context.Background(), testTripID)

	assert.NoError(t, err)
	assert.Equal(t, expected, outcome)
}

func TestRecordCheckoffSequence_InvalidTripID(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tearDownTestExecutor(tm)

	outcome, err := tm.executor.RecordCheckoffSequence(context.Background(), "not-a-uuid")

	assert.Error(t, err)
	assert.Nil(t, outcome)
	assert.True(t, isNonRetryable(err))
}

func TestRecordCheckoffSequence_TripNotFound(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tearDownTestExecutor(tm)

	tm.archiver.EXPECT().
		RecordCheckoffSequence(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("failed to get trip: %w", domain.ErrTripNotFound))

	outcome, err := tm.executor.RecordCheckoffSequence(context.Background(), testTripID)

	assert.Error(t, err)
	assert.Nil(t, outcome)
	assert.True(t, isNonRetryable(err))
	assert.ErrorIs(t, err, domain.ErrTripNotFound)
}

func TestRecordCheckoffSequence_StoreError(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tearDownTestExecutor(tm)

	tm.archiver.EXPECT().
		RecordCheckoffSequence(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection reset"))

	outcome, err := tm.executor.RecordCheckoffSequence(context.Background(), testTripID)

	assert.Error(t, err)
	assert.Nil(t, outcome)
	assert.False(t, isNonRetryable(err))
	assert.Contains(t, err.Error(), "failed to record checkoff sequence")
}

// ====================================================================================
// ApplyTripLearning Tests
// ====================================================================================

func TestApplyTripLearning_Success(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tearDownTestExecutor(tm)

	tripID := uuid.MustParse(testTripID)
	expected := &archiver.LearningOutcome{Applied: true, DeltaCount: 6, CategoryCount: 2}
	tm.archiver.EXPECT().ApplyLearning(gomock.Any(), tripID).Return(expected, nil)

	outcome, err := tm.executor.ApplyTripLearning(context.Background(), testTripID)

	assert.NoError(t, err)
	assert.Equal(t, expected, outcome)
}

func TestApplyTripLearning_NotApplied(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tearDownTestExecutor(tm)

	tm.archiver.EXPECT().ApplyLearning(gomock.Any(), gomock.Any()).Return(&archiver.LearningOutcome{}, nil)

	outcome, err := tm.executor.ApplyTripLearning(context.Background(), testTripID)

	assert.NoError(t, err)
	assert.False(t, outcome.Applied)
}

func TestApplyTripLearning_SequenceNotFound(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tearDownTestExecutor(tm)

	tm.archiver.EXPECT().ApplyLearning(gomock.Any(), gomock.Any()).Return(nil, domain.ErrCheckoffSequenceNotFound)

	outcome, err := tm.executor.ApplyTripLearning(context.Background(), testTripID)

	assert.Error(t, err)
	assert.Nil(t, outcome)
	assert.True(t, isNonRetryable(err))
}

func TestApplyTripLearning_StoreError(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tearDownTestExecutor(tm)

	tm.archiver.EXPECT().ApplyLearning(gomock.Any(), gomock.Any()).Return(nil, errors.New("deadlock detected"))

	outcome, err := tm.executor.ApplyTripLearning(context.Background(), testTripID)

	assert.Error(t, err)
	assert.Nil(t, outcome)
	assert.False(t, isNonRetryable(err))
}
