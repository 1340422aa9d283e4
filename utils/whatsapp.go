package utils

import (
	"fmt"
	"net/url"
	"strings"
)

// WhatsAppLink builds the wa.me deep link that opens a chat with the seller and the
// order message pre-filled. The message is percent-encoded (not form-encoded, wa.me
// does not understand '+' for spaces).
func WhatsAppLink(contact, message string) string {
	encoded := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return fmt.Sprintf("https://wa.me/%s?text=%s", contact, encoded)
}
