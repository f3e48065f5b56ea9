package mailer

import (
	"context"
	"strconv"

	"wirpackens-service/internal/pkg/metrics"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

const (
	KindContact          = "contact"
	KindPriceCalculation = "price_calculation"
	KindBookingConfirmed = "booking_confirmed"
)

// Notifier renders and sends the service's notification emails. Lead
// notifications report delivery as a bool; a failed send is never an error
// for the caller.
type Notifier struct {
	mailer  Mailer
	team    string
	metrics *metrics.Metrics
	log     *otelzap.Logger
}

func NewNotifier(m Mailer, teamAddress string, mt *metrics.Metrics, log *otelzap.Logger) *Notifier {
	return &Notifier{
		mailer:  m,
		team:    teamAddress,
		metrics: mt,
		log:     log,
	}
}

func (n *Notifier) NotifyContact(ctx context.Context, d ContactMail) bool {
	msg, err := ContactMessage(n.team, d)
	if err != nil {
		n.log.Ctx(ctx).Warn("render contact email", zap.Error(err))
		n.metrics.ObserveEmail(KindContact, false)
		return false
	}
	return n.send(ctx, KindContact, msg) == nil
}

func (n *Notifier) NotifyPriceCalculation(ctx context.Context, d PriceCalculationMail) bool {
	msg, err := PriceCalculationMessage(n.team, d)
	if err != nil {
		n.log.Ctx(ctx).Warn("render price calculation email", zap.Error(err))
		n.metrics.ObserveEmail(KindPriceCalculation, false)
		return false
	}
	return n.send(ctx, KindPriceCalculation, msg) == nil
}

// NotifyBookingConfirmed mails the customer and copies the team. The error
// lets a message consumer route the event to the poison queue.
func (n *Notifier) NotifyBookingConfirmed(ctx context.Context, d BookingConfirmedMail) error {
	msg, err := BookingConfirmedMessage(d.CustomerEmail, d.CustomerName, d)
	if err != nil {
		return err
	}
	if err := n.send(ctx, KindBookingConfirmed, msg); err != nil {
		return err
	}

	msg.To, msg.ToName = n.team, ""
	msg.Subject = "Neue bestätigte Buchung #" + strconv.FormatInt(d.BookingID, 10)
	return n.send(ctx, KindBookingConfirmed, msg)
}

func (n *Notifier) send(ctx context.Context, kind string, msg Message) error {
	err := n.mailer.Send(ctx, msg)
	n.metrics.ObserveEmail(kind, err == nil)
	if err != nil {
		n.log.Ctx(ctx).Warn("email could not be sent",
			zap.String("kind", kind),
			zap.String("to", msg.To),
			zap.Error(err),
		)
	}
	return err
}
