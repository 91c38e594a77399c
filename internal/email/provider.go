package email

// Message is an outgoing email.
type Message struct {
	From     string
	To       []string
	Subject  string
	Body     string
	HTMLBody string
}

// Provider sends email messages. The application uses the SMTP
// provider in production and a recording mock in tests and when SMTP
// is not configured.
type Provider interface {
	Send(msg *Message) error
}
