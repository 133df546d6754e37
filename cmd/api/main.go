package main

import (
	"context"
	"log"

	"user-directory-service/cmd/api/app"
	"user-directory-service/cmd/api/server"
	apperrors "user-directory-service/pkg/errors"
)

func main() {
	ctx, stop := server.WithSignal(context.Background())
	defer stop()

	a, err := app.New(ctx)
	if err != nil {
		if apperrors.IsStartup(err) {
			log.Fatalf("startup failed: %v", err)
		}
		log.Fatalf("failed to initialize application: %v", err)
	}

	if err := a.Run(ctx); err != nil {
		log.Fatalf("application exited with error: %v", err)
	}
}
