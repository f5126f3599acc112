package config

import (
	"os"
	"strings"
)

type Environment struct {
	IsDevelopment  bool
	AllowedOrigins []string
}

var Env Environment

func init() {
	// A comma-separated origin list; without one we're in development and
	// allow the usual local frontend.
	origins := os.Getenv("ALLOWED_ORIGINS")

	isDev := origins == ""
	allowed := []string{"http://localhost:3000"}
	if !isDev {
		allowed = strings.Split(origins, ",")
	}

	Env = Environment{
		IsDevelopment:  isDev,
		AllowedOrigins: allowed,
	}
}
