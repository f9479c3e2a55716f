package bridge_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"go.temporal.io/api/enums/v1"
	"go.temporal.io/sdk/client"
	temporalmocks "go.temporal.io/sdk/mocks"

	"github.com/shopwalk/aisle-engine/internal/adapter"
	"github.com/shopwalk/aisle-engine/internal/bridge"
	"github.com/shopwalk/aisle-engine/internal/domain"
	"github.com/shopwalk/aisle-engine/internal/logger"
	mockspkg "github.com/shopwalk/aisle-engine/internal/mocks"
)

func TestMain(m *testing.M) {
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

// testBridgeMocks contains all the mocks needed for testing the bridge
type testBridgeMocks struct {
	ctrl         *gomock.Controller
	natsJS       *mockspkg.MockNatsJetStream
	natsConn     *mockspkg.MockNatsConn
	jetStream    *mockspkg.MockJetStream
	orchestrator *mockspkg.MockTemporalOrchestrator
	json         *mockspkg.MockJSON
}

// setupTestBridge creates all the mocks needed by the bridge
func setupTestBridge(t *testing.T) *testBridgeMocks {
	ctrl := gomock.NewController(t)

	return &testBridgeMocks{
		ctrl:         ctrl,
		natsJS:       mockspkg.NewMockNatsJetStream(ctrl),
		natsConn:     mockspkg.NewMockNatsConn(ctrl),
		jetStream:    mockspkg.NewMockJetStream(ctrl),
		orchestrator: mockspkg.NewMockTemporalOrchestrator(ctrl),
		json:         mockspkg.NewMockJSON(ctrl),
	}
}

// tearDownTestBridge cleans up the test mocks
func tearDownTestBridge(mocks *testBridgeMocks) {
	mocks.ctrl.Finish()
}

func testConfig() bridge.Config {
	return bridge.Config{
		URL:               "nats://localhost:4222",
		StreamName:        "TRIP_EVENTS",
		ConsumerName:      "event-bridge",
		MaxReconnects:     10,
		ReconnectWait:     1 * time.Second,
		ConnectionName:    "test-bridge",
		AckWaitTimeout:    30 * time.Second,
		MaxDeliver:        5,
		TemporalTaskQueue: "aisle-learning",
	}
}

// newConnectedBridge creates a bridge on top of the mocked connection
func newConnectedBridge(t *testing.T, mocks *testBridgeMocks) bridge.Bridge {
	config := testConfig()
	mocks.natsJS.
		EXPECT().
		Connect(config.URL, gomock.Any()).
		Return(mocks.natsConn, mocks.jetStream, nil)

	b, err := bridge.NewBridge(config, mocks.natsJS, mocks.orchestrator, mocks.json)
	assert.NoError(t, err)
	assert.NotNil(t, b)
	return b
}

// startConsuming runs the bridge and returns the message handler once the consumer is subscribed
func startConsuming(t *testing.T, ctx context.Context, mocks *testBridgeMocks, b bridge.Bridge) (adapter.MessageHandler, <-chan error) {
	handlerChan := make(chan adapter.MessageHandler, 1)
	consumer := mockspkg.NewMockNatsConsumer(mocks.ctrl)
	consumeContext := mockspkg.NewMockConsumeContext(mocks.ctrl)

	consumer.EXPECT().
		Info(gomock.Any()).
		Return(&jetstream.ConsumerInfo{Name: "event-bridge"}, nil)
	consumer.EXPECT().
		Consume(gomock.Any()).
		DoAndReturn(func(handler adapter.MessageHandler, opts ...jetstream.PullConsumeOpt) (adapter.ConsumeContext, error) {
			handlerChan <- handler
			return consumeContext, nil
		})
	consumeContext.EXPECT().Stop().AnyTimes()

	mocks.jetStream.EXPECT().
		CreateOrUpdateConsumer(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(consumer, nil)

	errChan := make(chan error, 1)
	go func() {
		errChan <- b.Run(ctx)
	}()

	select {
	case handler := <-handlerChan:
		return handler, errChan
	case <-time.After(5 * time.Second):
		t.Fatal("Consumer was not subscribed")
		return nil, nil
	}
}

func waitFor(t *testing.T, done <-chan struct{}) {
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Test timed out")
	}
}

// ====================================================================================
// NewBridge Tests
// ====================================================================================

func TestBridge_NewBridge_Success(t *testing.T) {
	mocks := setupTestBridge(t)
	defer tearDownTestBridge(mocks)

	b := newConnectedBridge(t, mocks)
	assert.NotNil(t, b)
}

func TestBridge_NewBridge_ConnectError(t *testing.T) {
	mocks := setupTestBridge(t)
	defer tearDownTestBridge(mocks)

	mocks.natsJS.
		EXPECT().
		Connect(gomock.Any(), gomock.Any()).
		Return(nil, nil, assert.AnError)

	b, err := bridge.NewBridge(testConfig(), mocks.natsJS, mocks.orchestrator, mocks.json)

	assert.Error(t, err)
	assert.Nil(t, b)
	assert.Contains(t, err.Error(), "failed to connect to NATS")
}

// ====================================================================================
// Run Tests
// ====================================================================================

func TestBridge_Run_CreateConsumerError(t *testing.T) {
	mocks := setupTestBridge(t)
	defer tearDownTestBridge(mocks)

	b := newConnectedBridge(t, mocks)
	config := testConfig()

	mocks.jetStream.
		EXPECT().
		CreateOrUpdateConsumer(gomock.Any(),
			"TRIP_EVENTS",
			jetstream.ConsumerConfig{
				Durable:       config.ConsumerName,
				AckPolicy:     jetstream.AckExplicitPolicy,
				AckWait:       config.AckWaitTimeout,
				MaxDeliver:    config.MaxDeliver,
				FilterSubject: "trips.completed.>",
			}).
		Return(nil, assert.AnError)

	err := b.Run(context.Background())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create/update consumer")
}

func TestBridge_Run_ConsumerInfoError(t *testing.T) {
	mocks := setupTestBridge(t)
	defer tearDownTestBridge(mocks)

	b := newConnectedBridge(t, mocks)

	consumer := mockspkg.NewMockNatsConsumer(mocks.ctrl)
	consumer.EXPECT().
		Info(gomock.Any()).
		Return(nil, assert.AnError)
	mocks.jetStream.
		EXPECT().
		CreateOrUpdateConsumer(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(consumer, nil)

	err := b.Run(context.Background())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to get consumer info")
}

func TestBridge_Run_ConsumeError(t *testing.T) {
	mocks := setupTestBridge(t)
	defer tearDownTestBridge(mocks)

	b := newConnectedBridge(t, mocks)

	consumer := mockspkg.NewMockNatsConsumer(mocks.ctrl)
	consumer.EXPECT().
		Info(gomock.Any()).
		Return(&jetstream.ConsumerInfo{Name: "event-bridge"}, nil)
	consumer.EXPECT().
		Consume(gomock.Any()).
		Return(nil, assert.AnError)
	mocks.jetStream.
		EXPECT().
		CreateOrUpdateConsumer(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(consumer, nil)

	err := b.Run(context.Background())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create subscription")
}

func TestBridge_Run_ContextCancellation(t *testing.T) {
	mocks := setupTestBridge(t)
	defer tearDownTestBridge(mocks)

	b := newConnectedBridge(t, mocks)
	ctx, cancel := context.WithCancel(context.Background())

	_, errChan := startConsuming(t, ctx, mocks, b)
	cancel()

	select {
	case err := <-errChan:
		assert.Equal(t, context.Canceled, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Test timed out")
	}
}

// ====================================================================================
// Message handling Tests
// ====================================================================================

func TestBridge_HandleMessage_StartsLearningWorkflow(t *testing.T) {
	mocks := setupTestBridge(t)
	defer tearDownTestBridge(mocks)

	b := newConnectedBridge(t, mocks)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	payload := []byte(`{"event_id":"01J","trip_id":"trip-1","list_id":"list-1","store_id":"store-1","completed_at":"2026-01-01T00:00:00Z"}`)
	event := domain.TripCompletedEvent{
		EventID:     "01J",
		TripID:      "trip-1",
		ListID:      "list-1",
		StoreID:     &[]string{"store-1"}[0],
		CompletedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	msg := mockspkg.NewMockJetStreamMessage(mocks.ctrl)
	msg.EXPECT().Metadata().Return(&jetstream.MsgMetadata{NumDelivered: 1}, nil)
	msg.EXPECT().Data().Return(payload)

	mocks.json.EXPECT().
		Unmarshal(payload, gomock.Any()).
		DoAndReturn(func(data []byte, v interface{}) error {
			*v.(*domain.TripCompletedEvent) = event
			return nil
		})

	run := &temporalmocks.WorkflowRun{}
	run.On("GetID").Return("learn-trip-trip-1")
	mocks.orchestrator.EXPECT().
		ExecuteWorkflow(gomock.Any(), gomock.Any(), gomock.Any(), "trip-1").
		DoAndReturn(func(ctx context.Context, opts client.StartWorkflowOptions, workflow interface{}, args ...interface{}) (client.WorkflowRun, error) {
			assert.Equal(t, "learn-trip-trip-1", opts.ID)
			assert.Equal(t, "aisle-learning", opts.TaskQueue)
			assert.Equal(t, enums.WORKFLOW_ID_REUSE_POLICY_ALLOW_DUPLICATE_FAILED_ONLY, opts.WorkflowIDReusePolicy)
			return run, nil
		})

	done := make(chan struct{})
	msg.EXPECT().Ack().DoAndReturn(func() error {
		close(done)
		return nil
	})

	handler, _ := startConsuming(t, ctx, mocks, b)
	handler(msg)
	waitFor(t, done)
}

func TestBridge_HandleMessage_UnparseablePayload(t *testing.T) {
	mocks := setupTestBridge(t)
	defer tearDownTestBridge(mocks)

	b := newConnectedBridge(t, mocks)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	msg := mockspkg.NewMockJetStreamMessage(mocks.ctrl)
	msg.EXPECT().Metadata().Return(&jetstream.MsgMetadata{NumDelivered: 1}, nil)
	msg.EXPECT().Data().Return([]byte("not json"))
	mocks.json.EXPECT().Unmarshal(gomock.Any(), gomock.Any()).Return(errors.New("invalid character"))

	done := make(chan struct{})
	msg.EXPECT().Term().DoAndReturn(func() error {
		close(done)
		return nil
	})

	handler, _ := startConsuming(t, ctx, mocks, b)
	handler(msg)
	waitFor(t, done)
}

func TestBridge_HandleMessage_IncompleteEvent(t *testing.T) {
	mocks := setupTestBridge(t)
	defer tearDownTestBridge(mocks)

	b := newConnectedBridge(t, mocks)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	msg := mockspkg.NewMockJetStreamMessage(mocks.ctrl)
	msg.EXPECT().Metadata().Return(nil, errors.New("no metadata"))
	msg.EXPECT().Data().Return([]byte(`{"event_id":"01J"}`))
	mocks.json.EXPECT().
		Unmarshal(gomock.Any(), gomock.Any()).
		DoAndReturn(func(data []byte, v interface{}) error {
			*v.(*domain.TripCompletedEvent) = domain.TripCompletedEvent{EventID: "01J"}
			return nil
		})

	done := make(chan struct{})
	msg.EXPECT().Term().DoAndReturn(func() error {
		close(done)
		return nil
	})

	handler, _ := startConsuming(t, ctx, mocks, b)
	handler(msg)
	waitFor(t, done)
}

func TestBridge_HandleMessage_WorkflowStartFailure(t *testing.T) {
	mocks := setupTestBridge(t)
	defer tearDownTestBridge(mocks)

	b := newConnectedBridge(t, mocks)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	msg := mockspkg.NewMockJetStreamMessage(mocks.ctrl)
	msg.EXPECT().Metadata().Return(&jetstream.MsgMetadata{NumDelivered: 2}, nil)
	msg.EXPECT().Data().Return([]byte(`{}`))
	mocks.json.EXPECT().
		Unmarshal(gomock.Any(), gomock.Any()).
		DoAndReturn(func(data []byte, v interface{}) error {
			*v.(*domain.TripCompletedEvent) = domain.TripCompletedEvent{
				EventID:     "01J",
				TripID:      "trip-2",
				ListID:      "list-2",
				CompletedAt: time.Now(),
			}
			return nil
		})
	mocks.orchestrator.EXPECT().
		ExecuteWorkflow(gomock.Any(), gomock.Any(), gomock.Any(), "trip-2").
		Return(nil, errors.New("temporal unavailable"))

	done := make(chan struct{})
	msg.EXPECT().Nak().DoAndReturn(func() error {
		close(done)
		return nil
	})

	handler, _ := startConsuming(t, ctx, mocks, b)
	handler(msg)
	waitFor(t, done)
}

// ====================================================================================
// Close Tests
// ====================================================================================

func TestBridge_Close(t *testing.T) {
	mocks := setupTestBridge(t)
	defer tearDownTestBridge(mocks)

	b := newConnectedBridge(t, mocks)
	mocks.natsConn.EXPECT().Close()

	b.Close()
}
