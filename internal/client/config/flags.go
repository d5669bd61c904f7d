package config

import (
	"flag"
	"os"
	"time"

	"github.com/nattavat/prdir/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   endpoint URL of the spreadsheet script (default from Config)
//	-d string   local database path (default from Config)
//	-t int      remote request timeout in seconds (default from Config)
//	-r int      delayed re-fetch delay in milliseconds (default from Config)
//
// Note: The function filters os.Args to only include the flags it knows
// about, using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-t", "-r"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.EndpointURL, "a", cfg.EndpointURL, "endpoint URL of the remote store")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path of the local database")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "remote request timeout (in seconds)")
	refetchDelay := fs.Int("r", int(cfg.RefetchDelay.Milliseconds()), "delayed re-fetch delay (in milliseconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
	cfg.RefetchDelay = time.Duration(*refetchDelay) * time.Millisecond
}
