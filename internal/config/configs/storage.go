package configs

// Storage selects the repository implementation and the data inserted into
// it on start.
type Storage struct {
	// Driver is "memory" or "postgres".
	Driver string `env:"DRIVER" envDefault:"memory"`
	// SeedDefaults inserts the default social accounts when none exist.
	SeedDefaults bool `env:"SEED_DEFAULTS" envDefault:"true"`
	// SeedDemo also inserts the demo campaign.
	SeedDemo bool `env:"SEED_DEMO" envDefault:"false"`
}
