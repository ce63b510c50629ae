package config

import (
	"net"
	"strconv"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

type Env struct {
	Host    string `envconfig:"HOST" default:"0.0.0.0"`
	Port    int    `envconfig:"PORT" default:"5000"`
	GinMode string `envconfig:"GIN_MODE"`

	// Empty means every origin is allowed.
	CORSAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS"`

	// Optional MySQL source for the startup trip list.
	DBDSN string `envconfig:"DB_DSN"`

	// Rejects bookings asking for more seats than remain.
	StrictSeatCheck bool   `envconfig:"STRICT_SEAT_CHECK" default:"false"`
	DefaultUserID   string `envconfig:"DEFAULT_USER_ID" default:"demo-user"`
}

func LoadEnv() (Env, error) {
	var env Env
	if err := envconfig.Process("", &env); err != nil {
		return Env{}, err
	}

	env.Host = strings.TrimSpace(env.Host)
	env.GinMode = strings.TrimSpace(env.GinMode)
	env.DBDSN = strings.TrimSpace(env.DBDSN)
	env.DefaultUserID = strings.TrimSpace(env.DefaultUserID)
	if env.DefaultUserID == "" {
		env.DefaultUserID = "demo-user"
	}

	origins := make([]string, 0, len(env.CORSAllowedOrigins))
	for _, o := range env.CORSAllowedOrigins {
		o = strings.TrimSpace(o)
		if o != "" {
			origins = append(origins, o)
		}
	}
	env.CORSAllowedOrigins = origins

	return env, nil
}

// AppAddr is the listen address, e.g. "0.0.0.0:5000".
func (e Env) AppAddr() string {
	return net.JoinHostPort(e.Host, strconv.Itoa(e.Port))
}
