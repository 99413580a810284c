// Package config loads the SMTP connection profile from the process
// environment. Configuration is read once at startup and never mutated;
// every other component receives it by value.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the ProtonMail SMTP bridge connection settings.
// Username and Password are mandatory; a process without them must not start.
type Config struct {
	// Username is the ProtonMail account used for SMTP AUTH.
	Username string `env:"PROTONMAIL_USERNAME,required,notEmpty"`
	// Password is the SMTP bridge password for the account.
	Password string `env:"PROTONMAIL_PASSWORD,required,notEmpty"`
	// Host is the SMTP server address.
	Host string `env:"PROTONMAIL_HOST" envDefault:"smtp.protonmail.ch"`
	// Port is the SMTP server port. 587 is the STARTTLS submission port.
	Port int `env:"PROTONMAIL_PORT" envDefault:"587"`
	// Secure selects implicit TLS instead of plaintext-then-STARTTLS.
	Secure bool `env:"PROTONMAIL_SECURE" envDefault:"false"`
	// Debug gates verbose diagnostic logging. Errors are logged regardless.
	Debug bool `env:"DEBUG" envDefault:"false"`
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first when present; real environment variables win.
// Missing mandatory settings return an error naming the variable.
func Load() (Config, error) {
	// Best effort: absence of a .env file is not an error.
	_ = godotenv.Load()

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Addr returns the host:port string for diagnostics.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
