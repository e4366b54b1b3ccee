package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/cofipei/chart-api/internal/helpers"
)

// apikey prints a fresh API key (or the one given with -key) together with
// its bcrypt hash, ready for CHART_API_KEY / CHART_API_KEY_HASH.
func main() {
	key := flag.String("key", "", "hash this key instead of generating one")
	flag.Parse()

	if err := run(*key); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(key string) error {
	if key == "" {
		generated, err := helpers.GenerateAPIKey()
		if err != nil {
			return err
		}
		key = generated
	}

	hash, err := helpers.HashAPIKey(key)
	if err != nil {
		return err
	}

	fmt.Printf("CHART_API_KEY=%s\n", key)
	fmt.Printf("CHART_API_KEY_HASH=%s\n", hash)
	fmt.Fprintf(os.Stderr, "key %s hashed with bcrypt cost %d\n", helpers.MaskAPIKey(key), helpers.BcryptCost)
	return nil
}
