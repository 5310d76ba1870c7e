// Command graphctl builds a graph for a search term from the command
// line and prints it as JSON. Useful for inspecting pipeline output
// without running the API server.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"mindmesh-backend/domain/graph"
	"mindmesh-backend/infrastructure/config"
	"mindmesh-backend/infrastructure/di"
)

func main() {
	var (
		term    = flag.String("search", "", "search term, empty for latest content")
		style   = flag.String("style", graph.DefaultStyle, "layout style: sphere, split, or force")
		timeout = flag.Duration("timeout", 60*time.Second, "overall timeout")
		pretty  = flag.Bool("pretty", false, "indent JSON output")
	)
	flag.Parse()

	if !graph.ValidStyle(*style) {
		log.Fatalf("unknown style %q", *style)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	// The CLI is chatty enough on its own.
	if os.Getenv("LOG_LEVEL") == "" {
		cfg.LogLevel = "error"
	}

	container, err := di.InitializeContainer(cfg)
	if err != nil {
		log.Fatalf("failed to initialize container: %v", err)
	}
	defer container.Logger.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	data := container.Pipeline.FetchGraphData(ctx, *term, *style)

	enc := json.NewEncoder(os.Stdout)
	if *pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(data); err != nil {
		log.Fatalf("failed to encode graph: %v", err)
	}

	fmt.Fprintf(os.Stderr, "%d nodes, %d links\n", len(data.Nodes), len(data.Links))
}
