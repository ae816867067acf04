package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleEvent() *service.OrderEventMessage {
	return &service.OrderEventMessage{
		RequestID:  "req-1",
		EventID:    "evt-1",
		Type:       "order.placed",
		OrderID:    "order-1",
		UserID:     "user-1",
		Status:     "placed",
		Amount:     "200.00",
		ItemCount:  2,
		OccurredAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestLocalHTTPPublisher_SendsPushEnvelope(t *testing.T) {
	var (
		got       PushEnvelope
		requestID string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL, discardLogger())
	require.NoError(t, publisher.PublishOrderEvent(context.Background(), sampleEvent()))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "evt-1", got.Message.MessageID)
	assert.Equal(t, "order-1", got.Message.Attributes["order_id"])

	raw, err := base64.StdEncoding.DecodeString(got.Message.Data)
	require.NoError(t, err)

	var decoded service.OrderEventMessage
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "order.placed", decoded.Type)
	assert.Equal(t, 2, decoded.ItemCount)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL, discardLogger())
	err := publisher.PublishOrderEvent(context.Background(), sampleEvent())

	assert.ErrorContains(t, err, "503")
}

type recordingPublisher struct {
	events []*service.OrderEventMessage
	err    error
	closed bool
}

func (p *recordingPublisher) PublishOrderEvent(_ context.Context, event *service.OrderEventMessage) error {
	p.events = append(p.events, event)

	return p.err
}

func (p *recordingPublisher) Close() error {
	p.closed = true

	return nil
}

type recordingFeed struct {
	events []*service.OrderEventMessage
	err    error
}

func (f *recordingFeed) Broadcast(_ context.Context, event *service.OrderEventMessage) error {
	f.events = append(f.events, event)

	return f.err
}

func TestFanOutPublisher_MirrorsToFeed(t *testing.T) {
	next := &recordingPublisher{}
	feed := &recordingFeed{}
	publisher := NewFanOutPublisher(next, feed, discardLogger())

	require.NoError(t, publisher.PublishOrderEvent(context.Background(), sampleEvent()))
	require.NoError(t, publisher.Close())

	assert.Len(t, next.events, 1)
	assert.Len(t, feed.events, 1)
	assert.True(t, next.closed)
}

func TestFanOutPublisher_FeedFailureDoesNotFailPublish(t *testing.T) {
	next := &recordingPublisher{}
	feed := &recordingFeed{err: errors.New("feed down")}
	publisher := NewFanOutPublisher(next, feed, discardLogger())

	assert.NoError(t, publisher.PublishOrderEvent(context.Background(), sampleEvent()))
	assert.Len(t, next.events, 1)
}

func TestFanOutPublisher_BrokerFailureIsReturned(t *testing.T) {
	next := &recordingPublisher{err: errors.New("broker down")}
	publisher := NewFanOutPublisher(next, &recordingFeed{}, discardLogger())

	assert.ErrorContains(t, publisher.PublishOrderEvent(context.Background(), sampleEvent()), "broker down")
}

func TestNewBrokerPublisher(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr string
	}{
		{name: "not configured", cfg: nil},
		{name: "empty provider", cfg: &config.PubSubConfig{}},
		{name: "local", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:4100/push"}},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}, wantErr: "local endpoint"},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, TopicID: "t"}, wantErr: "project ID"},
		{name: "google without topic", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, ProjectID: "p"}, wantErr: "topic ID"},
		{name: "unknown", cfg: &config.PubSubConfig{Provider: "kafka"}, wantErr: "unknown pubsub provider"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publisher, err := newBrokerPublisher(context.Background(), tt.cfg, discardLogger())
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.NotNil(t, publisher)
		})
	}
}
