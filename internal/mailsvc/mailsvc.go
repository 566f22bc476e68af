// Package mailsvc delivers console email: password-reset links and
// abuse alerts for the operations inbox.
package mailsvc

import (
	"fmt"
	"log"
	"net/smtp"
	"sync"
)

// Mailer sends a single plain-text message.
type Mailer interface {
	Send(to, subject, body string) error
}

type SMTPConfig struct {
	Host         string
	Port         string
	From         string
	User         string
	Password     string
	AuthDisabled bool
}

// SMTPMailer sends through a plain SMTP relay. Delivery happens on a
// background goroutine; failures are logged, not returned, so a slow
// relay never blocks a request.
type SMTPMailer struct {
	cfg SMTPConfig
}

func NewSMTPMailer(cfg SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

func (m *SMTPMailer) Send(to, subject, body string) error {
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s", m.cfg.From, to, subject, body)

	addr := fmt.Sprintf("%s:%s", m.cfg.Host, m.cfg.Port)
	auth := smtp.PlainAuth("", m.cfg.User, m.cfg.Password, m.cfg.Host)
	if m.cfg.AuthDisabled {
		auth = nil
	}

	go func() {
		if err := smtp.SendMail(addr, auth, m.cfg.From, []string{to}, []byte(msg)); err != nil {
			log.Printf("Failed to send email to %s: %v", to, err)
		}
	}()

	return nil
}

// Message is one captured mail in a MockMailer.
type Message struct {
	To      string
	Subject string
	Body    string
}

// MockMailer records messages instead of delivering them.
type MockMailer struct {
	mu       sync.Mutex
	messages []Message
}

func NewMockMailer() *MockMailer {
	return &MockMailer{}
}

func (m *MockMailer) Send(to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, Message{To: to, Subject: subject, Body: body})
	return nil
}

func (m *MockMailer) Messages() []Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Message{}, m.messages...)
}

func (m *MockMailer) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = nil
}
