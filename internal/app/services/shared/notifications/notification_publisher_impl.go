package notifications

import (
	"context"
	"sync"
	"time"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"healthrecords-service/internal/app/contracts"
	"healthrecords-service/internal/pkg/constvars"
	"healthrecords-service/internal/pkg/exceptions"
)

// Publisher fans appointment events out to RabbitMQ. Events are queued
// in memory and drained by a single worker goroutine so that a burst of
// appointment writes cannot flood the broker; the drain pace is bounded
// by a token-bucket limiter.
type Publisher struct {
	ch        *amqp.Channel
	log       *zap.Logger
	queueName string
	limiter   *rate.Limiter

	events   chan contracts.AppointmentEvent
	stopOnce sync.Once
	stopped  chan struct{}
	done     chan struct{}
}

func NewPublisher(conn *amqp.Connection, log *zap.Logger, queueName string, eventsPerSecond int) (*Publisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		queueName,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	)
	if err != nil {
		return nil, err
	}

	if eventsPerSecond <= 0 {
		eventsPerSecond = 1
	}

	publisher := &Publisher{
		ch:        ch,
		log:       log,
		queueName: queueName,
		limiter:   rate.NewLimiter(rate.Limit(eventsPerSecond), eventsPerSecond),
		events:    make(chan contracts.AppointmentEvent, 256),
		stopped:   make(chan struct{}),
		done:      make(chan struct{}),
	}
	go publisher.drain()

	return publisher, nil
}

// PublishAppointmentEvent hands the event to the worker. Publishing is
// best effort for the caller: a full buffer drops the event with a log
// line instead of stalling the request that produced it.
func (p *Publisher) PublishAppointmentEvent(ctx context.Context, event *contracts.AppointmentEvent) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	select {
	case <-p.stopped:
		return exceptions.ErrRabbitMQPublishMessage(context.Canceled, p.queueName)
	case p.events <- *event:
		return nil
	default:
		p.log.Warn("appointment event buffer full, dropping event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String("appointment_id", event.AppointmentID),
		)
		return exceptions.ErrRabbitMQPublishMessage(context.DeadlineExceeded, p.queueName)
	}
}

func (p *Publisher) drain() {
	defer close(p.done)
	for {
		select {
		case <-p.stopped:
			// Flush whatever is still buffered before exiting.
			for {
				select {
				case event := <-p.events:
					p.publish(event)
				default:
					return
				}
			}
		case event := <-p.events:
			if err := p.limiter.Wait(context.Background()); err != nil {
				return
			}
			p.publish(event)
		}
	}
}

func (p *Publisher) publish(event contracts.AppointmentEvent) {
	body, err := json.Marshal(event)
	if err != nil {
		p.log.Error("cannot marshal appointment event", zap.Error(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = p.ch.PublishWithContext(ctx, "", p.queueName, false, false, amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		DeliveryMode: amqp.Persistent,
		Body:         body,
	})
	if err != nil {
		p.log.Error("failed to publish appointment event",
			zap.String("queue", p.queueName),
			zap.String("appointment_id", event.AppointmentID),
			zap.Error(err),
		)
	}
}

// Stop shuts the worker down and waits for the buffer to flush.
func (p *Publisher) Stop() {
	p.stopOnce.Do(func() {
		close(p.stopped)
		<-p.done
		p.ch.Close()
	})
}
