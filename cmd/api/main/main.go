//go:build lambda
// +build lambda

package main

import (
	"context"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/cofipei/chart-api/internal/config"
	"github.com/cofipei/chart-api/internal/constants"
	"github.com/cofipei/chart-api/internal/logger"
	"github.com/cofipei/chart-api/internal/server"
	"github.com/davecgh/go-spew/spew"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// @title           COFIPEI Chart API
// @version         1.0
// @description     Chart generation and financial report service for COFIPEI.

// @BasePath  /

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-KEY

var ginLambda *ginadapter.GinLambda

func init() {
	cfg := config.Load()
	logger.InitLogger(cfg.Stage)

	if err := cfg.Validate(); err != nil {
		logger.Fatal("Invalid configuration", zap.Error(err))
	}
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	server.InitializeHandlers(context.Background(), cfg)
	server.InitializeRoutes(r)

	ginLambda = ginadapter.New(r)
}

func Handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	logger.Debug("Received Lambda request",
		zap.String("path", req.Path),
		zap.String("request", spew.Sdump(redactedRequest(req))),
	)

	return ginLambda.ProxyWithContext(ctx, req)
}

// redactedRequest copies req with the API key header masked
func redactedRequest(req events.APIGatewayProxyRequest) events.APIGatewayProxyRequest {
	headers := make(map[string]string, len(req.Headers))
	for k, v := range req.Headers {
		if strings.EqualFold(k, constants.APIKeyHeader) {
			v = "[REDACTED]"
		}
		headers[k] = v
	}
	req.Headers = headers
	req.MultiValueHeaders = nil
	return req
}

func main() {
	defer logger.Sync()
	lambda.Start(Handler)
}
