package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"media-fetcher/internal/domain/entities"
)

func main() {
	server := flag.String("server", "http://localhost:8080", "Server base URL")
	interval := flag.Duration("interval", time.Second, "Status poll interval")
	timeout := flag.Duration("timeout", 90*time.Second, "Per-request timeout")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] <media-url>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := newAPIClient(*server, *timeout)

	resp, err := client.Submit(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Job: %s\n", resp.VideoID)
	if resp.Info != nil {
		fmt.Printf("Title: %s\n", resp.Info.Title)
		if resp.Info.Duration != nil {
			fmt.Printf("Duration: %s\n", time.Duration(*resp.Info.Duration*float64(time.Second)))
		}
	}

	final, err := client.Wait(ctx, resp.VideoID, *interval, func(st entities.JobStatus) {
		fmt.Printf("\r%-11s %6.2f%%", st.State, st.Progress)
	})
	fmt.Println()
	if err != nil {
		// the server keeps downloading; only polling stops
		log.Fatalf("stopped polling: %v", err)
	}

	switch final.State {
	case entities.StateFinished:
		fmt.Println("Download finished")
	case entities.StateError:
		log.Fatalf("Download failed: %s", final.Error)
	default:
		log.Fatalf("Job %s is no longer known to the server", resp.VideoID)
	}
}
