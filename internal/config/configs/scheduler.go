package configs

// Scheduler configures the sweep that publishes due posts. It is off unless
// explicitly enabled.
type Scheduler struct {
	Enabled bool   `env:"ENABLED" envDefault:"false"`
	Spec    string `env:"SPEC" envDefault:"@every 1m"`
}
