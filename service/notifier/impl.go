package notifier

import (
	"encoding/json"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/gavelauto/goapi/base/backoff"
	"github.com/gavelauto/goapi/base/ctx"
	"github.com/gavelauto/goapi/base/log"
	"github.com/gavelauto/goapi/base/metrics"
)

const (
	dialBackoffStart = 500 * time.Millisecond
	dialBackoffLimit = 30 * time.Second
)

type impl struct {
	url      string
	exchange string
	met      metrics.Service

	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
}

// New connects to the broker and declares a durable topic exchange.
func New(url, exchange string, met metrics.Service) (Service, error) {
	im := &impl{
		url:      url,
		exchange: exchange,
		met:      met,
	}
	if err := im.connect(); err != nil {
		return nil, err
	}
	return im, nil
}

// MustNew is like New but retries with exponential backoff until the broker
// accepts the connection.
func MustNew(context ctx.Ctx, url, exchange string, met metrics.Service) Service {
	bo := backoff.NewExponential(dialBackoffStart, dialBackoffLimit)
	for {
		im, err := New(url, exchange, met)
		if err == nil {
			return im
		}
		context.WithFields(log.Fields{"err": err}).Warn("failed to connect message broker, retrying")
		if err := bo.Backoff(context); err != nil {
			context.WithFields(log.Fields{"err": err}).Error("broker dial aborted")
			panic(err)
		}
	}
}

func (im *impl) connect() error {
	conn, err := amqp.Dial(im.url)
	if err != nil {
		return err
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return err
	}
	if err := ch.ExchangeDeclare(im.exchange, "topic", true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return err
	}
	im.conn = conn
	im.ch = ch
	return nil
}

func (im *impl) Notify(context ctx.Ctx, routingKey string, payload interface{}) {
	body, err := json.Marshal(payload)
	if err != nil {
		context.WithFields(log.Fields{"err": err, "routingKey": routingKey}).Error("failed to marshal event")
		return
	}

	im.mu.Lock()
	defer im.mu.Unlock()

	if im.ch == nil || im.conn.IsClosed() {
		if err := im.connect(); err != nil {
			im.met.BumpSum("notify.err", 1, "reason", "reconnect")
			context.WithFields(log.Fields{"err": err, "routingKey": routingKey}).Error("failed to reconnect message broker")
			return
		}
	}

	err = im.ch.PublishWithContext(context, im.exchange, routingKey, false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
	if err != nil {
		im.met.BumpSum("notify.err", 1, "reason", "publish")
		context.WithFields(log.Fields{"err": err, "routingKey": routingKey}).Error("failed to publish event")
		return
	}
	im.met.BumpSum("notify.ok", 1, "routingKey", routingKey)
}

func (im *impl) Close() error {
	im.mu.Lock()
	defer im.mu.Unlock()
	if im.ch != nil {
		im.ch.Close()
	}
	if im.conn != nil {
		return im.conn.Close()
	}
	return nil
}
