package config

import (
	"flag"
	"os"
	"time"

	"github.com/Aljenshin/portfolio-console/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-d string   path to the SQLite file holding the session slot
//	-l int      simulated login delay in milliseconds
//	-demo       seed the inbox with sample conversations
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-l", "-demo"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "path to the session database file")
	loginDelay := fs.Int("l", int(cfg.LoginDelay.Milliseconds()), "simulated login delay (in milliseconds)")
	fs.BoolVar(&cfg.Demo, "demo", cfg.Demo, "seed the inbox with sample conversations")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.LoginDelay = time.Duration(*loginDelay) * time.Millisecond
}
