package service

import "context"

// EmailMessage is one outbound transactional email.
type EmailMessage struct {
	To      []string
	Subject string
	HTML    string
}

// EmailSender is the port to the transactional email provider.
type EmailSender interface {
	// Send delivers a single message. It does not retry; the caller
	// decides whether a failure is fatal.
	Send(ctx context.Context, msg *EmailMessage) error
}
