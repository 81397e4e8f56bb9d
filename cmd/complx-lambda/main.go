//go:build lambda

// SPDX-License-Identifier: MIT

// Command complx-lambda serves the optimizers behind an AWS Lambda function
// URL. The request body is a JSON problem document (see internal/problem);
// the response is {"kind":..., "report":...} or {"error":...}.
package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"

	"github.com/katalvlaran/complx/internal/config"
	"github.com/katalvlaran/complx/internal/problem"
	"github.com/katalvlaran/complx/internal/search"
)

var jsonHeader = map[string]string{
	"Content-Type": "application/json",
}

type solveResult struct {
	Kind   problem.Kind `json:"kind"`
	Report string       `json:"report"`
}

type server struct {
	cfg config.Config
	log *slog.Logger
}

func (s *server) handle(_ context.Context, event events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error) {
	body := event.Body
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			return errResp(400, "invalid base64 body")
		}
		body = string(decoded)
	}

	p, err := problem.Decode([]byte(body))
	if err != nil {
		return errResp(400, err.Error())
	}
	r, err := p.Solve(search.WithWorkers(s.cfg.Workers), search.WithLogger(s.log))
	if err != nil {
		s.log.Info("search could not start", "kind", p.Kind(), "err", err)
		return errResp(400, err.Error())
	}

	respJSON, _ := json.Marshal(solveResult{Kind: p.Kind(), Report: r.Report()})
	return events.LambdaFunctionURLResponse{StatusCode: 200, Headers: jsonHeader, Body: string(respJSON)}, nil
}

func errResp(code int, msg string) (events.LambdaFunctionURLResponse, error) {
	body, _ := json.Marshal(map[string]string{"error": msg})
	return events.LambdaFunctionURLResponse{StatusCode: code, Headers: jsonHeader, Body: string(body)}, nil
}

func main() {
	cfg, err := config.Load(os.Getenv("COMPLX_CONFIG"))
	if err != nil {
		slog.Error("load configuration", "err", err)
		os.Exit(1)
	}
	log := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	s := &server{cfg: cfg, log: log}
	lambda.Start(s.handle)
}
