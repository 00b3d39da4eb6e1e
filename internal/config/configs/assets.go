package configs

// Assets configures the asset allow-list advertised to clients.
type Assets struct {
	// Allowed lists the accepted asset identifiers, comma separated in
	// the environment.
	Allowed []string `env:"ALLOWED" envSeparator:"," envDefault:"USD"`
}
