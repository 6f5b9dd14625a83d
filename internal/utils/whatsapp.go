package utils

import (
	"net/url"
	"strings"
)

// WhatsAppLink builds a wa.me deep link with a pre-filled message.
// Phone is normalized to digits only (wa.me rejects "+", spaces, dashes).
func WhatsAppLink(phone, message string) string {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	link := "https://wa.me/" + digits.String()
	if message != "" {
		link += "?text=" + url.QueryEscape(message)
	}
	return link
}
