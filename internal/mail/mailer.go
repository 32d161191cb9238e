package mail

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strconv"

	"github.com/svukovic/gymtrack/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
)

// Mailer is the outbound email transport used for user invitations.
type Mailer interface {
	Send(ctx context.Context, from, to, subject, body string) error
}

// SMTPMailer sends mail through a plain SMTP relay.
type SMTPMailer struct {
	host string
	port int
}

func NewSMTPMailer(host string, port int) *SMTPMailer {
	return &SMTPMailer{
		host: host,
		port: port,
	}
}

func (m *SMTPMailer) Send(ctx context.Context, from, to, subject, body string) (err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "mailer.send")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	addr := net.JoinHostPort(m.host, strconv.Itoa(m.port))

	c, err := smtp.Dial(addr)
	if err != nil {
		return fmt.Errorf("dial smtp server [%s]: %w", addr, err)
	}
	defer func() {
		if closeErr := c.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	if err := c.Mail(from); err != nil {
		return fmt.Errorf("set mail from [%s]: %w", from, err)
	}
	if err := c.Rcpt(to); err != nil {
		return fmt.Errorf("set rcpt to [%s]: %w", to, err)
	}

	wc, err := c.Data()
	if err != nil {
		return fmt.Errorf("open data writer: %w", err)
	}

	msg := "To: " + to + "\r\n" +
		"From: " + from + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"\r\n" +
		body + "\r\n"
	if _, err := wc.Write([]byte(msg)); err != nil {
		return fmt.Errorf("write email data: %w", err)
	}
	if err := wc.Close(); err != nil {
		return fmt.Errorf("close data writer: %w", err)
	}

	log.Debugf("invitation email sent to %s", to)
	return c.Quit()
}

// LogMailer only logs outbound mail, used in development.
type LogMailer struct{}

func (m *LogMailer) Send(_ context.Context, from, to, subject, body string) error {
	log.Infof("--- sending email (log mailer) --- from: %s, to: %s, subject: %s, body: %s", from, to, subject, body)
	return nil
}
