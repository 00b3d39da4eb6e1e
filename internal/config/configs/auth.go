package configs

// Auth configures how callers are identified on mutating endpoints.
type Auth struct {
	// Mode picks the middleware: "header" trusts an upstream gateway
	// header, "jwt" validates HS256 bearer tokens.
	Mode string `env:"MODE" envDefault:"header"`
	// Header names the trusted caller header used in header mode.
	Header string `env:"HEADER" envDefault:"X-Caller"`
	// SigningKey is the HS256 secret used in jwt mode.
	SigningKey string `env:"SIGNING_KEY"`
}
