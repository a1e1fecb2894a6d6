// Command issue-token prints a bearer token accepted by the server's write
// endpoints. It reads the same auth settings as the server.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/heartmarshall/bireader/internal/auth"
	"github.com/heartmarshall/bireader/internal/config"
)

func main() {
	subject := flag.String("subject", "reader", "token subject")
	ttl := flag.Duration("ttl", 0, "token lifetime; 0 uses auth.token_ttl")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if !cfg.Auth.Enabled() {
		log.Fatal("auth is disabled: set AUTH_JWT_SECRET")
	}

	lifetime := cfg.Auth.TokenTTL
	if *ttl > 0 {
		lifetime = *ttl
	}

	token, err := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, lifetime).Issue(*subject)
	if err != nil {
		log.Fatalf("issue token: %v", err)
	}
	fmt.Println(token)
}
