package notifier

import (
	"github.com/gavelauto/goapi/base/ctx"
)

// Service publishes domain events to the message broker. Publishing is
// fire-and-forget: a broker outage must never fail the calling operation,
// so implementations log and drop on error.
type Service interface {
	Notify(context ctx.Ctx, routingKey string, payload interface{})
	Close() error
}
