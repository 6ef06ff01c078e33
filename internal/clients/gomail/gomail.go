package gomail

import (
	"crypto/tls"
	"fmt"
	"regexp"

	"gopkg.in/gomail.v2"

	"github.com/samandr77/microservices/intranet/pkg/config"
)

var htmlTag = regexp.MustCompile("<[^>]+>")

type Dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

type Client struct {
	cfg    config.MailerConfig
	dialer Dialer
}

func New(cfg config.MailerConfig) *Client {
	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Login, cfg.Password)

	dialer.TLSConfig = &tls.Config{
		ServerName: cfg.Host,
		MinVersion: tls.VersionTLS12,
	}

	return NewWithDialer(cfg, dialer)
}

func NewWithDialer(cfg config.MailerConfig, dialer Dialer) *Client {
	return &Client{
		cfg:    cfg,
		dialer: dialer,
	}
}

func (c *Client) SendMessage(subject, message string, recipients []string, contentType string) error {
	msg := gomail.NewMessage(
		gomail.SetCharset("UTF-8"),
		gomail.SetEncoding(gomail.Base64),
	)

	msg.SetAddressHeader("From", c.cfg.From, c.cfg.FromName)
	msg.SetHeader("To", recipients...)
	msg.SetHeader("Subject", subject)
	msg.SetBody(bodyType(message, contentType), message)

	err := c.dialer.DialAndSend(msg)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

func bodyType(message, contentType string) string {
	switch contentType {
	case "text/html", "text/plain":
		return contentType
	}

	if isHTML(message) {
		return "text/html"
	}

	return "text/plain"
}

func isHTML(message string) bool {
	return htmlTag.MatchString(message)
}
