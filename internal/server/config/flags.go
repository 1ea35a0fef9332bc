package config

import (
	"flag"
	"os"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string     HTTP bind address (e.g., ":8080")
//	-d string     MongoDB connection URI
//	-n string     MongoDB database name
//	-s string     JWT HMAC secret key
//	-t duration   bearer token validity (e.g., "24h")
func parseFlags(config *Config) error {
	fs := flag.NewFlagSet("server", flag.ContinueOnError)

	fs.StringVar(&config.Addr, "a", config.Addr, "address and port to run server")
	fs.StringVar(&config.DatabaseURI, "d", config.DatabaseURI, "mongodb connection uri")
	fs.StringVar(&config.DatabaseName, "n", config.DatabaseName, "mongodb database name")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	fs.DurationVar(&config.TokenValidity, "t", config.TokenValidity, "token validity duration")

	return fs.Parse(os.Args[1:])
}
