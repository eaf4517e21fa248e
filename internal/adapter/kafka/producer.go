// Package kafka publishes ticket lifecycle events to a Kafka topic.
// Publishing is best-effort: failures are logged and never reach the
// HTTP caller, and an unconfigured producer is a no-op.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"errors"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/heartmarshall/helpdesk-backend/internal/domain"
	"github.com/heartmarshall/helpdesk-backend/internal/telemetry"
)

// Event types written to the topic.
const (
	EventTicketCreated = "ticket.created"
	EventTicketUpdated = "ticket.updated"
	EventMessageAdded  = "message.added"
)

// publishTimeout bounds one background write.
const publishTimeout = 5 * time.Second

// maxInFlight caps concurrent background writes. Events beyond it are dropped.
const maxInFlight = 64

var errBacklogFull = errors.New("publish backlog full")

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Producer writes ticket events keyed by ticket id, so all events of one
// ticket land on the same partition in order.
type Producer struct {
	writer   messageWriter
	log      *slog.Logger
	now      func() time.Time
	inflight chan struct{}
	wg       sync.WaitGroup
}

// NewProducer creates a producer. With no brokers or an empty topic every
// method is a no-op.
func NewProducer(brokers []string, topic string, log *slog.Logger) *Producer {
	p := &Producer{
		log:      log.With("component", "kafka_producer"),
		now:      time.Now,
		inflight: make(chan struct{}, maxInFlight),
	}
	if len(brokers) == 0 || topic == "" {
		return p
	}
	p.writer = &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}
	return p
}

// Enabled reports whether events are actually sent.
func (p *Producer) Enabled() bool {
	return p.writer != nil
}

// event is the JSON envelope written as the Kafka message value.
type event struct {
	Event      string         `json:"event"`
	TicketID   int64          `json:"ticket_id"`
	OccurredAt time.Time      `json:"occurred_at"`
	Payload    map[string]any `json:"payload"`
}

// TicketCreated publishes ticket.created. The access key is never included.
func (p *Producer) TicketCreated(ctx context.Context, t domain.Ticket) {
	p.publish(ctx, EventTicketCreated, t.ID, map[string]any{
		"department": t.Department,
		"machine":    t.Machine,
		"status":     t.Status.String(),
		"priority":   t.Priority.String(),
	})
}

// TicketUpdated publishes ticket.updated with the previous and new state.
func (p *Producer) TicketUpdated(ctx context.Context, before, after domain.Ticket) {
	p.publish(ctx, EventTicketUpdated, after.ID, map[string]any{
		"status_from":   before.Status.String(),
		"status_to":     after.Status.String(),
		"priority_from": before.Priority.String(),
		"priority_to":   after.Priority.String(),
	})
}

// MessageAdded publishes message.added. Message text stays in the database.
func (p *Producer) MessageAdded(ctx context.Context, m domain.Message) {
	p.publish(ctx, EventMessageAdded, m.TicketID, map[string]any{
		"message_id":  m.ID,
		"author_type": m.AuthorType.String(),
	})
}

func (p *Producer) publish(ctx context.Context, name string, ticketID int64, payload map[string]any) {
	if p.writer == nil {
		return
	}

	body, err := json.Marshal(event{
		Event:      name,
		TicketID:   ticketID,
		OccurredAt: p.now().UTC(),
		Payload:    payload,
	})
	if err != nil {
		p.fail(ctx, name, ticketID, fmt.Errorf("marshal event: %w", err))
		return
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(ticketID, 10)),
		Value: body,
	}

	// The write runs off the request goroutine and outlives the request
	// context, so the caller returns as soon as the event is queued.
	bg := context.WithoutCancel(ctx)
	select {
	case p.inflight <- struct{}{}:
	default:
		p.fail(bg, name, ticketID, errBacklogFull)
		return
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		defer func() { <-p.inflight }()

		wctx, cancel := context.WithTimeout(bg, publishTimeout)
		defer cancel()

		if err := p.writer.WriteMessages(wctx, msg); err != nil {
			p.fail(bg, name, ticketID, fmt.Errorf("write event: %w", err))
		}
	}()
}

func (p *Producer) fail(ctx context.Context, name string, ticketID int64, err error) {
	telemetry.EventsPublishFailuresTotal.WithLabelValues(name).Inc()
	p.log.WarnContext(ctx, "ticket event not published",
		slog.String("event", name),
		slog.Int64("ticket_id", ticketID),
		slog.String("error", err.Error()),
	)
}

// Close waits for in-flight writes, flushes the writer and releases it.
func (p *Producer) Close() error {
	if p.writer == nil {
		return nil
	}
	p.wg.Wait()
	return p.writer.Close()
}
