package configs

// Store selects the ledger persistence backend.
type Store struct {
	// Driver picks the ledger implementation: "memory" keeps everything
	// in process, "postgres" persists via the configured database.
	Driver string `env:"DRIVER" envDefault:"memory"`
}
