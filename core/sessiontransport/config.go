package sessiontransport

// CookieConfig provides environment-based configuration for the cookie transport.
type CookieConfig struct {
	// CookieName is the name of the session cookie.
	CookieName string `env:"SESSION_COOKIE_NAME" envDefault:"__session"`
	// Encrypted seals the envelope with AES-256-GCM instead of signing it.
	Encrypted bool `env:"SESSION_COOKIE_ENCRYPTED" envDefault:"false"`
}

// Options converts the config into transport options.
func (c CookieConfig) Options() []CookieOption {
	opts := []CookieOption{WithCookieName(c.CookieName)}
	if c.Encrypted {
		opts = append(opts, WithEncryption())
	}
	return opts
}

// JWTConfig provides environment-based configuration for the JWT transport.
type JWTConfig struct {
	// SigningKey is the HMAC-SHA256 key; at least 32 characters.
	SigningKey string `env:"SESSION_JWT_SIGNING_KEY,required"`
	// Issuer is the iss claim stamped on generated tokens.
	Issuer string `env:"SESSION_JWT_ISSUER" envDefault:""`
	// Audience is the aud claim stamped on generated tokens.
	Audience string `env:"SESSION_JWT_AUDIENCE" envDefault:""`
}
