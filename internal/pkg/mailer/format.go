package mailer

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.German)

// FormatPrice renders an amount in cents the way German invoices do:
// 230000 becomes "2.300€" and 12345 becomes "123,45€".
func FormatPrice(cents int64) string {
	if cents%100 == 0 {
		return printer.Sprintf("%d€", cents/100)
	}
	return printer.Sprintf("%.2f€", float64(cents)/100)
}
