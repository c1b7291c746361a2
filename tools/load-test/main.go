package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"
)

type sendRequest struct {
	QueueURL string         `json:"queueUrl"`
	Body     string         `json:"body"`
	Options  map[string]any `json:"options,omitempty"`
}

func main() {
	// Configuration, overridable through the environment
	v := viper.New()
	v.SetDefault("API_URL", "http://localhost:8080/api/v1/messages")
	v.SetDefault("QUEUE_URL", "http://localhost:4566/000000000000/load-test-queue")
	v.SetDefault("MESSAGES", 10000)
	v.SetDefault("CONCURRENCY", 50) // limits local port exhaustion
	v.AutomaticEnv()

	url := v.GetString("API_URL")
	queueURL := v.GetString("QUEUE_URL")
	totalRequests := v.GetInt("MESSAGES")
	concurrency := v.GetInt("CONCURRENCY")

	fmt.Printf("Starting load test: %d messages to %s via %s with concurrency %d\n", totalRequests, queueURL, url, concurrency)

	var successCount int64
	var failCount int64

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(concurrency)

	startTime := time.Now()

	for i := 0; i < totalRequests; i++ {
		payload, err := json.Marshal(sendRequest{
			QueueURL: queueURL,
			Body:     fmt.Sprintf(`{"sequence":%d}`, i),
			Options: map[string]any{
				"MessageAttributes": map[string]any{
					"source": map[string]any{"DataType": "String", "StringValue": "load-test"},
				},
			},
		})
		if err != nil {
			panic(err)
		}

		g.Go(func() error {
			req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
			if err != nil {
				atomic.AddInt64(&failCount, 1)
				return nil
			}
			req.Header.Set("Content-Type", "application/json")

			resp, err := http.DefaultClient.Do(req)
			if err != nil {
				atomic.AddInt64(&failCount, 1)
				return nil
			}
			defer resp.Body.Close()

			if resp.StatusCode >= 200 && resp.StatusCode < 300 {
				atomic.AddInt64(&successCount, 1)
			} else {
				atomic.AddInt64(&failCount, 1)
			}
			return nil
		})
	}

	_ = g.Wait()
	duration := time.Since(startTime)

	fmt.Println("\n--- Load Test Results ---")
	fmt.Printf("Total Duration: %v\n", duration)
	fmt.Printf("Total Requests: %d\n", totalRequests)
	fmt.Printf("Successful:     %d\n", successCount)
	fmt.Printf("Failed:         %d\n", failCount)
	fmt.Printf("Requests/Sec:   %.2f\n", float64(totalRequests)/duration.Seconds())
}
