package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the run should last.")
	sessions := flag.Int("sessions", 0, "Stop after this many finished sessions (0 = until duration).")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "Seed for piece order and autoplay input.")
	dropEvery := flag.Int("drop-every", 12, "Hard drop after this many frames of random input.")
	flag.Parse()

	log.Println("Starting blockfall autoplay run...")
	log.Printf("Running for %s (seed %d)...\n", *duration, *seed)

	report := run(context.Background(), benchConfig{
		Duration:    *duration,
		MaxSessions: *sessions,
		Seed:        *seed,
		DropEvery:   *dropEvery,
	})

	log.Println("Run finished.")

	fmt.Println("\n\n--- Autoplay Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}
