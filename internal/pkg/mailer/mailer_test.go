package mailer_test

import (
	"context"
	stderrors "errors"
	"strings"
	"sync"
	"testing"

	"wirpackens-service/config"
	"wirpackens-service/internal/pkg/log"
	"wirpackens-service/internal/pkg/mailer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingMailer struct {
	mu   sync.Mutex
	sent []mailer.Message
	err  error
}

func (r *recordingMailer) Send(ctx context.Context, msg mailer.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.sent = append(r.sent, msg)
	return nil
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "2.300€", mailer.FormatPrice(230000))
	assert.Equal(t, "200€", mailer.FormatPrice(20000))
	assert.Equal(t, "0€", mailer.FormatPrice(0))
	assert.Equal(t, "123,45€", mailer.FormatPrice(12345))
	assert.Equal(t, "1.234,50€", mailer.FormatPrice(123450))
}

func TestContactMessage(t *testing.T) {
	msg, err := mailer.ContactMessage("team@example.com", mailer.ContactMail{
		FirstName:    "Erika",
		LastName:     "Mustermann",
		Email:        "erika@example.com",
		ServiceLabel: "Umzug",
		Message:      "Zeile eins\nZeile <zwei>",
	})
	require.NoError(t, err)

	assert.Equal(t, "team@example.com", msg.To)
	assert.Equal(t, "Neue Anfrage von Erika Mustermann", msg.Subject)
	assert.Contains(t, msg.Text, "- Gewünschte Leistung: Umzug")
	assert.NotContains(t, msg.Text, "Telefon")
	assert.Contains(t, msg.HTML, "Zeile eins<br>Zeile &lt;zwei&gt;")
}

func TestPriceCalculationMessage(t *testing.T) {
	msg, err := mailer.PriceCalculationMessage("team@example.com", mailer.PriceCalculationMail{
		ServiceLabel:    "Haushaltsauflösung",
		RoomCount:       3,
		SquareMeters:    80,
		Extras:          []string{"Wochenend-Service (+15%)"},
		BasePrice:       200000,
		AdditionalPrice: 30000,
		TotalPrice:      230000,
	})
	require.NoError(t, err)

	assert.Contains(t, msg.Text, "- Gesamtpreis: 2.300€")
	assert.Contains(t, msg.Text, "- Zusatzleistungen: Wochenend-Service (+15%)")
	assert.Contains(t, msg.HTML, "<strong>Grundpreis:</strong> 2.000€")
}

func TestNotifierReportsDelivery(t *testing.T) {
	rec := &recordingMailer{}
	n := mailer.NewNotifier(rec, "team@example.com", nil, log.Nop())

	ok := n.NotifyContact(context.Background(), mailer.ContactMail{FirstName: "A", LastName: "B", Email: "a@b.de"})
	assert.True(t, ok)
	require.Len(t, rec.sent, 1)
	assert.Equal(t, "team@example.com", rec.sent[0].To)

	rec.err = stderrors.New("smtp down")
	ok = n.NotifyPriceCalculation(context.Background(), mailer.PriceCalculationMail{ServiceLabel: "Umzug"})
	assert.False(t, ok)
}

func TestNotifyBookingConfirmedMailsCustomerAndTeam(t *testing.T) {
	rec := &recordingMailer{}
	n := mailer.NewNotifier(rec, "team@example.com", nil, log.Nop())

	err := n.NotifyBookingConfirmed(context.Background(), mailer.BookingConfirmedMail{
		BookingID:       12,
		CustomerName:    "Max",
		CustomerEmail:   "max@example.com",
		ServiceLabel:    "Umzug",
		AppointmentDate: "2025-03-01",
		AppointmentTime: "09:00",
		CurrentAddress:  "Alte Str. 1",
		NewAddress:      "Neue Str. 2",
		DepositAmount:   20000,
		TotalPrice:      150000,
	})
	require.NoError(t, err)
	require.Len(t, rec.sent, 2)

	assert.Equal(t, "max@example.com", rec.sent[0].To)
	assert.True(t, strings.Contains(rec.sent[0].Text, "Anzahlung: 200€"))
	assert.Equal(t, "team@example.com", rec.sent[1].To)
	assert.Equal(t, "Neue bestätigte Buchung #12", rec.sent[1].Subject)
}

func TestNotifyBookingConfirmedFailure(t *testing.T) {
	rec := &recordingMailer{err: stderrors.New("boom")}
	n := mailer.NewNotifier(rec, "team@example.com", nil, log.Nop())

	err := n.NotifyBookingConfirmed(context.Background(), mailer.BookingConfirmedMail{CustomerEmail: "x@y.de"})
	assert.Error(t, err)
}

func TestNewFallsBackToLogMailer(t *testing.T) {
	m := mailer.New(&config.MailConfig{From: "noreply@example.com"}, log.Nop())
	_, ok := m.(*mailer.LogMailer)
	assert.True(t, ok)
	assert.NoError(t, m.Send(context.Background(), mailer.Message{To: "a@b.de"}))
}
