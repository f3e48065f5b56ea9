package httpclient

import (
	"net/http"

	"wirpackens-service/config"

	circuit "github.com/rubyist/circuitbreaker"
)

const (
	BreakerThreshold   = "threshold"
	BreakerConsecutive = "consecutive"
	BreakerRate        = "rate"
)

func InitCircuitBreaker(cfg *config.HttpClientConfig, cbType string) *circuit.Breaker {
	switch cbType {
	case BreakerThreshold:
		return circuit.NewThresholdBreaker(cfg.Threshold)
	case BreakerRate:
		return circuit.NewRateBreaker(cfg.Rate, cfg.Samples)
	default:
		return circuit.NewConsecutiveBreaker(cfg.Threshold)
	}
}

func InitHttpClient(cfg *config.HttpClientConfig, cb *circuit.Breaker) *circuit.HTTPClient {
	client := &http.Client{
		Timeout: cfg.Timeout,
	}
	return circuit.NewHTTPClientWithBreaker(cb, cfg.Timeout, client)
}
