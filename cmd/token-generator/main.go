// Command token-generator mints a JWT access token for a given user ID
// using the configured signing secret. It exists for local development and
// API smoke testing; production tokens come from the identity provider.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/lingualog/lingualog-api/internal/config"
	"github.com/lingualog/lingualog-api/internal/service/auth"
)

func main() {
	userIDFlag := flag.String("user", "", "user UUID to mint a token for (default: a fresh UUID)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	userID := uuid.New()
	if *userIDFlag != "" {
		userID, err = uuid.Parse(*userIDFlag)
		if err != nil {
			log.Fatalf("invalid user UUID %q: %v", *userIDFlag, err)
		}
	}

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		log.Fatalf("failed to initialize JWT service: %v", err)
	}

	token, err := jwtService.GenerateToken(context.Background(), userID)
	if err != nil {
		log.Fatalf("failed to generate token: %v", err)
	}

	fmt.Printf("User ID: %s\nToken:   %s\n", userID, token)
}
