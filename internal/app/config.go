package app

import "flag"

// Config holds the command-line-adjustable settings for the GUI binary.
type Config struct {
	Sim    string
	Scale  int
	Seed   int64
	TPS    int
	SimTPS int
}

// NewConfig returns the default configuration.
func NewConfig() *Config {
	return &Config{
		Sim:    "hashlife",
		Scale:  4,
		Seed:   1337,
		TPS:    30,
		SimTPS: 10,
	}
}

// Bind registers the config's fields on fs so they can be set from the
// command line.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run (see core.Sims())")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "RNG seed for Reset")
	fs.IntVar(&c.TPS, "tps", c.TPS, "render/input ticks per second")
	fs.IntVar(&c.SimTPS, "sim-tps", c.SimTPS, "simulation steps per second")
}
