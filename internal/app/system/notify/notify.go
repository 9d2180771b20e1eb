// Package notify emits one-way order notifications. Delivery is a structured
// log event only; there is no SMTP or queue behind it. The mode knob exists
// so a real transport can be slotted in without touching the order handler.
package notify

import "go.uber.org/zap"

// Notifier sends order-placed notifications.
type Notifier struct {
	log     *zap.Logger
	enabled bool
}

// New builds a Notifier. mode "off" disables emission; anything else (the
// default "log") logs each notification.
func New(logger *zap.Logger, mode string) *Notifier {
	return &Notifier{
		log:     logger,
		enabled: mode != "off",
	}
}

// OrderPlaced emits the order confirmation event. Fire-and-forget: it never
// fails the order that triggered it.
func (n *Notifier) OrderPlaced(orderID, email string, total float64) {
	if !n.enabled {
		return
	}
	n.log.Info("new order placed",
		zap.String("order_id", orderID),
		zap.String("email", email),
		zap.Float64("total", total),
	)
}
