// Package messaging builds deep links for handing documents to external
// messaging channels. Opening the link is the caller's concern.
package messaging

import (
	"net/url"
	"regexp"
	"strings"
)

var nonDigits = regexp.MustCompile(`\D`)

// WhatsAppLinker builds wa.me deep links for a fixed country code.
type WhatsAppLinker struct {
	countryCode string
}

func NewWhatsAppLinker(countryCode string) *WhatsAppLinker {
	return &WhatsAppLinker{countryCode: countryCode}
}

// Link returns a wa.me URL that opens a chat with the given phone number
// pre-filled with message. Non-digit characters are stripped from the
// number and the message is percent-encoded, with spaces as %20 so the
// links match the ones the front desk already shares.
func (w *WhatsAppLinker) Link(phone, message string) string {
	digits := nonDigits.ReplaceAllString(phone, "")
	text := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return "https://wa.me/" + w.countryCode + digits + "?text=" + text
}
