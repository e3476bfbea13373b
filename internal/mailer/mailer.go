package mailer

import (
	"fmt"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
	"gopkg.in/gomail.v2"
)

// transportTTL bounds how long a dialer built from the current SMTP config
// is reused before being rebuilt.
const transportTTL = 10 * time.Minute

// Mailer sends club mail over SMTP. The dialer is cached behind a mutex and
// rebuilt after transportTTL or an explicit Invalidate.
type Mailer struct {
	config *mailerConfig
	log    zerolog.Logger

	mu      sync.Mutex
	dialer  *gomail.Dialer
	builtAt time.Time
}

func NewMailer(log zerolog.Logger) (*Mailer, error) {
	cfg, err := env.ParseAs[mailerConfig]()
	if err != nil {
		return nil, fmt.Errorf("parse mailer config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Mailer{config: &cfg, log: log}, nil
}

func (m *Mailer) transport() *gomail.Dialer {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.dialer == nil || time.Since(m.builtAt) > transportTTL {
		m.dialer = gomail.NewDialer(m.config.Host, m.config.Port, m.config.Username, m.config.Password)
		m.builtAt = time.Now()
	}
	return m.dialer
}

// Invalidate drops the cached dialer so the next send rebuilds it.
func (m *Mailer) Invalidate() {
	m.mu.Lock()
	m.dialer = nil
	m.mu.Unlock()
}

func (m *Mailer) Send(to, subject, text, html string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.config.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	if html != "" {
		msg.SetBody("text/html", html)
		if text != "" {
			msg.AddAlternative("text/plain", text)
		}
	} else {
		msg.SetBody("text/plain", text)
	}
	return m.transport().DialAndSend(msg)
}

// SendOTP mails a signup verification code.
func (m *Mailer) SendOTP(to, otp string) error {
	body := fmt.Sprintf("Hello,\n\nYour verification code is: %s\nThis code will expire in 10 minutes.\n", otp)
	return m.Send(to, "Your ClubHub verification code", body, "")
}

type mailerConfig struct {
	Host     string `env:"SMTP_HOST"`
	Port     int    `env:"SMTP_PORT"`
	Username string `env:"SMTP_USERNAME"`
	Password string `env:"SMTP_PASSWORD"`
	From     string `env:"SMTP_FROM"`
}

func (c *mailerConfig) validate() error {
	if c.Host == "" {
		return fmt.Errorf("missing SMTP_HOST environment variable")
	}
	if c.Port == 0 {
		return fmt.Errorf("missing SMTP_PORT environment variable")
	}
	if c.From == "" {
		return fmt.Errorf("missing SMTP_FROM environment variable")
	}
	return nil
}
