// Command mint prints a signed access token for manual testing and for
// provisioning editorial tooling. The secret and default TTL come from the
// same configuration the server loads.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/wolverinesfitness/backend/internal/config"
	"github.com/wolverinesfitness/backend/internal/tokens"
)

func main() {
	sub := flag.String("sub", "ops", "token subject")
	role := flag.String("role", "editor", "content role: viewer, editor or admin")
	ttl := flag.Duration("ttl", 0, "token lifetime (defaults to JWT_ACCESS_TOKEN_TTL)")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	lifetime := *ttl
	if lifetime <= 0 {
		lifetime = cfg.Auth.AccessTokenTTL
	}
	if lifetime <= 0 {
		lifetime = time.Hour
	}

	tok, err := tokens.GenerateAccessToken(cfg.Auth.JWTSecret, *sub, *role, lifetime)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sign token: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(tok)
}
