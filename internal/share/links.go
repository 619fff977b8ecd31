// Package share hands finished invoice exports to external applications:
// a chat-app deep link, a mail-client deep link, and the system opener for
// the print document.
package share

import (
	"fmt"
	"net/url"
)

// WhatsAppURL builds the wa.me deep link carrying the message text.
func WhatsAppURL(message string) string {
	return "https://wa.me/?text=" + url.QueryEscape(message)
}

// MailtoURL builds a mailto link with the subject and body pre-filled.
// The recipient may be empty when no customer email was captured; the mail
// client then prompts for one.
func MailtoURL(recipient, subject, body string) string {
	return fmt.Sprintf("mailto:%s?subject=%s&body=%s",
		recipient, url.QueryEscape(subject), url.QueryEscape(body))
}
