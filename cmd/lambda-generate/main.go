// Command lambda-generate serves POST /generate as an AWS Lambda function
// behind API Gateway. It never touches a database.
package main

import (
	"context"
	"log"
	"strings"

	awslambda "github.com/aws/aws-lambda-go/lambda"

	"github.com/heartmarshall/recoverylock-backend/internal/app"
	"github.com/heartmarshall/recoverylock-backend/internal/config"
	"github.com/heartmarshall/recoverylock-backend/internal/transport/lambda"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	svc, err := app.NewReflectionService(context.Background(), cfg, logger)
	if err != nil {
		log.Fatalf("build reflection service: %v", err)
	}

	// A single configured origin can be echoed directly; lists are left to
	// the API Gateway CORS settings.
	var origin string
	if !strings.Contains(cfg.CORS.AllowedOrigins, ",") {
		origin = strings.TrimSpace(cfg.CORS.AllowedOrigins)
	}
	awslambda.Start(lambda.NewHandler(svc, logger, origin).Handle)
}
