package mailer

import (
	"bytes"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"
)

const footerContact = "Diese E-Mail wurde automatisch über das Kontaktformular auf wirpackens.org gesendet."
const footerCalculator = "Diese E-Mail wurde automatisch über den Preisrechner auf wirpackens.org gesendet."

type ContactMail struct {
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	ServiceLabel string
	Message      string
}

type PriceCalculationMail struct {
	ServiceLabel    string
	RoomCount       int
	SquareMeters    int
	FloorCount      int
	Extras          []string
	BasePrice       int64
	AdditionalPrice int64
	TotalPrice      int64
}

type BookingConfirmedMail struct {
	BookingID       int64
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	ServiceLabel    string
	AppointmentDate string
	AppointmentTime string
	CurrentAddress  string
	NewAddress      string
	DepositAmount   int64
	TotalPrice      int64
}

var funcs = map[string]interface{}{
	"price": FormatPrice,
	"join":  strings.Join,
	"lines": func(s string) []string { return strings.Split(s, "\n") },
}

var (
	contactHTML = htmltemplate.Must(htmltemplate.New("contact").Funcs(funcs).Parse(`<h2>Neue Kundenanfrage über die Website</h2>
<h3>Kontaktdaten:</h3>
<ul>
  <li><strong>Name:</strong> {{.FirstName}} {{.LastName}}</li>
  <li><strong>E-Mail:</strong> {{.Email}}</li>
  {{- if .Phone}}
  <li><strong>Telefon:</strong> {{.Phone}}</li>
  {{- end}}
  {{- if .ServiceLabel}}
  <li><strong>Gewünschte Leistung:</strong> {{.ServiceLabel}}</li>
  {{- end}}
</ul>
{{- if .Message}}
<h3>Nachricht:</h3>
<p>{{range $i, $l := lines .Message}}{{if $i}}<br>{{end}}{{$l}}{{end}}</p>
{{- end}}
<hr>
<p><small>` + footerContact + `</small></p>
`))

	contactText = texttemplate.Must(texttemplate.New("contact").Funcs(funcs).Parse(`Neue Kundenanfrage über die Website

Kontaktdaten:
- Name: {{.FirstName}} {{.LastName}}
- E-Mail: {{.Email}}
{{- if .Phone}}
- Telefon: {{.Phone}}
{{- end}}
{{- if .ServiceLabel}}
- Gewünschte Leistung: {{.ServiceLabel}}
{{- end}}
{{- if .Message}}

Nachricht:
{{.Message}}
{{- end}}

---
` + footerContact + `
`))

	priceHTML = htmltemplate.Must(htmltemplate.New("price").Funcs(funcs).Parse(`<h2>Neue Preisberechnung über die Website</h2>
<h3>Projektdetails:</h3>
<ul>
  <li><strong>Dienstleistung:</strong> {{.ServiceLabel}}</li>
  <li><strong>Anzahl Räume:</strong> {{.RoomCount}}</li>
  <li><strong>Quadratmeter:</strong> {{.SquareMeters}} m²</li>
  {{- if .FloorCount}}
  <li><strong>Etagen:</strong> {{.FloorCount}}</li>
  {{- end}}
  {{- if .Extras}}
  <li><strong>Zusatzleistungen:</strong> {{join .Extras ", "}}</li>
  {{- end}}
</ul>
<h3>Preisberechnung:</h3>
<ul>
  <li><strong>Grundpreis:</strong> {{price .BasePrice}}</li>
  <li><strong>Zusatzleistungen:</strong> {{price .AdditionalPrice}}</li>
  <li><strong>Gesamtpreis:</strong> {{price .TotalPrice}}</li>
</ul>
<p><strong>Der Kunde möchte ein verbindliches Angebot!</strong></p>
<hr>
<p><small>` + footerCalculator + `</small></p>
`))

	priceText = texttemplate.Must(texttemplate.New("price").Funcs(funcs).Parse(`Neue Preisberechnung über die Website

Projektdetails:
- Dienstleistung: {{.ServiceLabel}}
- Anzahl Räume: {{.RoomCount}}
- Quadratmeter: {{.SquareMeters}} m²
{{- if .FloorCount}}
- Etagen: {{.FloorCount}}
{{- end}}
{{- if .Extras}}
- Zusatzleistungen: {{join .Extras ", "}}
{{- end}}

Preisberechnung:
- Grundpreis: {{price .BasePrice}}
- Zusatzleistungen: {{price .AdditionalPrice}}
- Gesamtpreis: {{price .TotalPrice}}

Der Kunde möchte ein verbindliches Angebot!

---
` + footerCalculator + `
`))

	bookingHTML = htmltemplate.Must(htmltemplate.New("booking").Funcs(funcs).Parse(`<h2>Ihre Buchung ist bestätigt</h2>
<p>Hallo {{.CustomerName}},</p>
<p>vielen Dank für Ihre Anzahlung. Ihr Termin ist verbindlich reserviert.</p>
<ul>
  <li><strong>Buchungsnummer:</strong> {{.BookingID}}</li>
  <li><strong>Dienstleistung:</strong> {{.ServiceLabel}}</li>
  <li><strong>Termin:</strong> {{.AppointmentDate}} um {{.AppointmentTime}} Uhr</li>
  <li><strong>Adresse:</strong> {{.CurrentAddress}}</li>
  {{- if .NewAddress}}
  <li><strong>Neue Adresse:</strong> {{.NewAddress}}</li>
  {{- end}}
  <li><strong>Anzahlung:</strong> {{price .DepositAmount}}</li>
  <li><strong>Gesamtpreis:</strong> {{price .TotalPrice}}</li>
</ul>
<p>Ihr Team von Wir Packens</p>
`))

	bookingText = texttemplate.Must(texttemplate.New("booking").Funcs(funcs).Parse(`Ihre Buchung ist bestätigt

Hallo {{.CustomerName}},

vielen Dank für Ihre Anzahlung. Ihr Termin ist verbindlich reserviert.

- Buchungsnummer: {{.BookingID}}
- Dienstleistung: {{.ServiceLabel}}
- Termin: {{.AppointmentDate}} um {{.AppointmentTime}} Uhr
- Adresse: {{.CurrentAddress}}
{{- if .NewAddress}}
- Neue Adresse: {{.NewAddress}}
{{- end}}
- Anzahlung: {{price .DepositAmount}}
- Gesamtpreis: {{price .TotalPrice}}

Ihr Team von Wir Packens
`))
)

func render(text *texttemplate.Template, html *htmltemplate.Template, data interface{}) (string, string, error) {
	var tb, hb bytes.Buffer
	if err := text.Execute(&tb, data); err != nil {
		return "", "", err
	}
	if err := html.Execute(&hb, data); err != nil {
		return "", "", err
	}
	return tb.String(), hb.String(), nil
}

func ContactMessage(to string, d ContactMail) (Message, error) {
	text, html, err := render(contactText, contactHTML, d)
	if err != nil {
		return Message{}, err
	}
	return Message{
		To:      to,
		Subject: "Neue Anfrage von " + d.FirstName + " " + d.LastName,
		Text:    text,
		HTML:    html,
	}, nil
}

func PriceCalculationMessage(to string, d PriceCalculationMail) (Message, error) {
	text, html, err := render(priceText, priceHTML, d)
	if err != nil {
		return Message{}, err
	}
	return Message{
		To:      to,
		Subject: "Neue Preisberechnung - Angebot angefordert",
		Text:    text,
		HTML:    html,
	}, nil
}

func BookingConfirmedMessage(to, toName string, d BookingConfirmedMail) (Message, error) {
	text, html, err := render(bookingText, bookingHTML, d)
	if err != nil {
		return Message{}, err
	}
	return Message{
		To:      to,
		ToName:  toName,
		Subject: "Buchungsbestätigung - Wir Packens",
		Text:    text,
		HTML:    html,
	}, nil
}
