package email

import "fmt"

// PasswordResetMessage builds the reset-link email sent from the
// forgot-password flow.
func PasswordResetMessage(to, resetURL string) *Message {
	return &Message{
		To:      []string{to},
		Subject: "Password Reset Request",
		Body:    fmt.Sprintf("Click to reset your password: %s", resetURL),
		HTMLBody: fmt.Sprintf(
			`<p>Click to reset your password: <a href="%s">%s</a></p>`,
			resetURL, resetURL,
		),
	}
}
