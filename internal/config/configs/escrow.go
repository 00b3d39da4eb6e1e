package configs

import "time"

// Escrow configures the asset transfer boundary backing the ledger.
type Escrow struct {
	// Driver picks the implementation: "memory" runs an in-process bank,
	// "http" posts transfers to an external treasury service.
	Driver string `env:"DRIVER" envDefault:"memory"`
	// Account is the escrow pool account name.
	Account string `env:"ACCOUNT" envDefault:"escrow"`
	// BaseURL is the treasury base URL used by the http driver.
	BaseURL string `env:"BASE_URL"`
	// Timeout bounds a single treasury request.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"10s"`
}
