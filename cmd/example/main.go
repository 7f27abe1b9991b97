package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/rmitchell/fitbit-go/fitbit"
)

// This example pulls a small daily report for the authenticated user:
// yesterday's sleep, a month of weight history, and a fresh water log
// entry for today.
func main() {
	token := os.Getenv("FITBIT_OAUTH_TOKEN")
	if token == "" {
		log.Fatal("FITBIT_OAUTH_TOKEN environment variable is required (run cmd/auth to obtain one)")
	}

	client := fitbit.NewClient(
		fitbit.WithToken(token),
		fitbit.WithMaxRetries(5),
		fitbit.WithBackoffBase(1*time.Second),
		fitbit.WithBackoffMax(120*time.Second),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	yesterday := fitbit.DateOf(time.Now().AddDate(0, 0, -1))

	sleep, err := client.Sleep.Get(ctx, "", yesterday)
	if err != nil {
		log.Fatalf("fetch sleep log: %v", err)
	}
	log.Printf("Sleep for %s: %v", yesterday, sleep)

	weights, err := client.Body.TimeSeries(ctx, "", fitbit.Date{}, fitbit.Period1Month, fitbit.Date{})
	if err != nil {
		log.Fatalf("fetch weight history: %v", err)
	}
	log.Printf("Weight over the last month: %v", weights)

	logged, err := client.Water.Log(ctx, "", fitbit.Date{}, map[string]any{
		"amount": 500,
		"unit":   "ml",
	})
	if err != nil {
		log.Fatalf("log water: %v", err)
	}
	log.Printf("Logged water: %v", logged)
}
