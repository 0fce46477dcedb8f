//go:build integration

package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"strconv"
	"sync"
	"testing"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/shenikar/disaster_dashboard/internal/config"
	"github.com/shenikar/disaster_dashboard/internal/models"
	"github.com/shenikar/disaster_dashboard/internal/observability"
	"github.com/shenikar/disaster_dashboard/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tckafka "github.com/testcontainers/testcontainers-go/modules/kafka"
)

const testTopic = "raw-disaster-posts-test"

// collectingAdder запоминает сохраненные посты
type collectingAdder struct {
	mu      sync.Mutex
	reports []*models.Report
}

func (a *collectingAdder) AddReport(_ context.Context, r *models.Report) (bool, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.reports = append(a.reports, r)
	return true, nil
}

func (a *collectingAdder) count() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.reports)
}

func startKafka(ctx context.Context, t *testing.T) string {
	t.Helper()
	container, err := tckafka.Run(ctx, "confluentinc/confluent-local:7.5.0", tckafka.WithClusterID("disaster-dashboard-test"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = testcontainers.TerminateContainer(container) })

	brokers, err := container.Brokers(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, brokers)
	return brokers[0]
}

func createTopic(t *testing.T, broker, topic string) {
	t.Helper()
	conn, err := kafkago.Dial("tcp", broker)
	require.NoError(t, err)
	defer conn.Close()

	controller, err := conn.Controller()
	require.NoError(t, err)
	ctrlConn, err := kafkago.Dial("tcp", net.JoinHostPort(controller.Host, strconv.Itoa(controller.Port)))
	require.NoError(t, err)
	defer ctrlConn.Close()

	require.NoError(t, ctrlConn.CreateTopics(kafkago.TopicConfig{
		Topic:             topic,
		NumPartitions:     1,
		ReplicationFactor: 1,
	}))
}

func TestConsumer_ReadsFromKafka(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	broker := startKafka(ctx, t)
	createTopic(t, broker, testTopic)

	cfg := &config.Config{
		KafkaBrokers: []string{broker},
		KafkaTopic:   testTopic,
		KafkaGroupID: fmt.Sprintf("test-group-%d", time.Now().UnixNano()),
	}

	post, err := json.Marshal(RawPost{
		Author:    "storm-chaser",
		Text:      "Hailstorm hits the county fair",
		Keyword:   "hailstorm",
		URL:       "https://example.com/hail/1",
		CreatedAt: "2025-03-10T12:00:00Z",
	})
	require.NoError(t, err)

	producer := &kafkago.Writer{Addr: kafkago.TCP(broker), Topic: testTopic}
	t.Cleanup(func() { _ = producer.Close() })
	require.NoError(t, producer.WriteMessages(ctx,
		kafkago.Message{Value: post},
		kafkago.Message{Value: []byte("not json")},
	))

	adder := &collectingAdder{}
	metrics := observability.NewMetricsForTesting()
	consumer := NewConsumer(NewKafkaReader(cfg), adder, logger.Discard(), metrics)

	runCtx, stop := context.WithCancel(ctx)
	done := make(chan error, 1)
	go func() { done <- consumer.Run(runCtx) }()

	// Группе нужно время на ребалансировку до получения сообщений
	require.Eventually(t, func() bool { return adder.count() == 1 }, 90*time.Second, 200*time.Millisecond)
	stop()
	require.NoError(t, <-done)

	adder.mu.Lock()
	defer adder.mu.Unlock()
	assert.Equal(t, "https://example.com/hail/1", adder.reports[0].URL)
	assert.Equal(t, "hailstorm", adder.reports[0].Keyword)
}
