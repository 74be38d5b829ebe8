package jetstream_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	natsjs "github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phygrid/engine/internal/adapter"
	"github.com/phygrid/engine/internal/domain"
	"github.com/phygrid/engine/internal/logger"
	"github.com/phygrid/engine/internal/messaging"
	"github.com/phygrid/engine/internal/mocks"
	"github.com/phygrid/engine/internal/providers/jetstream"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: true}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

type testPublisherMocks struct {
	ctrl      *gomock.Controller
	natsJS    *mocks.MockNatsJetStream
	nc        *mocks.MockNatsConn
	js        *mocks.MockJetStream
	publisher messaging.Publisher
}

func setupTestPublisher(t *testing.T) *testPublisherMocks {
	ctrl := gomock.NewController(t)
	tm := &testPublisherMocks{
		ctrl:   ctrl,
		natsJS: mocks.NewMockNatsJetStream(ctrl),
		nc:     mocks.NewMockNatsConn(ctrl),
		js:     mocks.NewMockJetStream(ctrl),
	}

	tm.natsJS.EXPECT().
		Connect("nats://localhost:4222", gomock.Any()).
		Return(tm.nc, tm.js, nil)

	pub, err := jetstream.NewPublisher(jetstream.Config{
		URL:            "nats://localhost:4222",
		StreamName:     "engine-outcomes",
		MaxReconnects:  5,
		ReconnectWait:  time.Second,
		ConnectionName: "engine-test",
	}, tm.natsJS, adapter.NewJSON())
	require.NoError(t, err)
	tm.publisher = pub
	return tm
}

func tearDownTestPublisher(tm *testPublisherMocks) {
	tm.ctrl.Finish()
}

func TestNewPublisher_ConnectFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	natsJS := mocks.NewMockNatsJetStream(ctrl)
	natsJS.EXPECT().
		Connect("nats://localhost:4222", gomock.Any()).
		Return(nil, nil, errors.New("no servers available"))

	_, err := jetstream.NewPublisher(jetstream.Config{
		URL:        "nats://localhost:4222",
		StreamName: "engine-outcomes",
	}, natsJS, adapter.NewJSON())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to connect to NATS")
}

func TestPublishOutcome(t *testing.T) {
	tm := setupTestPublisher(t)
	defer tearDownTestPublisher(tm)

	ctx := context.Background()
	event := &messaging.OutcomeEvent{
		Kind:       messaging.EventTransferCompleted,
		RecordType: domain.RecordTypeBuilding,
		RecordID:   uuid.MustParse("00000000-0000-0000-0000-000000000001"),
		SubjectID:  "transfer-1",
		Actor:      "bob",
		Status:     "completed",
		Timestamp:  time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
	want := *event

	tm.js.EXPECT().
		Publish(ctx, "engine-outcomes.transfer.completed", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, data []byte, _ ...natsjs.PublishOpt) (*natsjs.PubAck, error) {
			var got messaging.OutcomeEvent
			require.NoError(t, json.Unmarshal(data, &got))
			assert.NotEmpty(t, got.EventID)
			got.EventID = ""
			assert.Equal(t, want, got)
			return &natsjs.PubAck{Stream: "engine-outcomes"}, nil
		})

	assert.NoError(t, tm.publisher.PublishOutcome(ctx, event))
}

func TestPublishOutcome_PublishFailure(t *testing.T) {
	tm := setupTestPublisher(t)
	defer tearDownTestPublisher(tm)

	ctx := context.Background()
	tm.js.EXPECT().
		Publish(ctx, "engine-outcomes.bid.updated", gomock.Any()).
		Return(nil, errors.New("stream not found"))

	err := tm.publisher.PublishOutcome(ctx, &messaging.OutcomeEvent{
		Kind:     messaging.EventBidUpdated,
		RecordID: uuid.New(),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to publish outcome event")
}

func TestClose(t *testing.T) {
	tm := setupTestPublisher(t)
	defer tearDownTestPublisher(tm)

	tm.nc.EXPECT().Close()
	tm.publisher.Close()
}
