package config

import "time"

// ProfileConfig contains the profile-completeness endpoint configuration.
// An empty endpoint disables the check; interns are then always routed to
// onboarding (fail-safe).
type ProfileConfig struct {
	// Endpoint is the completeness check URL, called with a bearer token.
	Endpoint string `env:"ENDPOINT" envDefault:""`

	// Timeout bounds the completeness request.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"5s"`

	// ResultExpr is the JMESPath expression selecting the completion flag
	// in the response body.
	ResultExpr string `env:"RESULT_EXPR" envDefault:"profileCompleted"`
}

// Sanitize applies guardrails to profile configuration values.
func (p *ProfileConfig) Sanitize() {
	if p.Timeout <= 0 {
		p.Timeout = 5 * time.Second
	}
	if p.ResultExpr == "" {
		p.ResultExpr = "profileCompleted"
	}
}
