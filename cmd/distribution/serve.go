package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/MarkBJohnsAdmin/distribution/pkg/adapters/httpapi"
	"github.com/MarkBJohnsAdmin/distribution/pkg/adapters/memory"
	"github.com/MarkBJohnsAdmin/distribution/pkg/adapters/redis"
	"github.com/MarkBJohnsAdmin/distribution/pkg/ports"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Starts the JSON API: POST /experiments runs a simulation and returns
the summary, GET /experiments lists stored ones, and /metrics exposes
prometheus counters for every walk and coin flip served.

Summaries are held in memory unless --redis points at a Redis instance.`,
	Run: func(cmd *cobra.Command, args []string) {
		port, _ := cmd.Flags().GetString("port")
		redisAddr, _ := cmd.Flags().GetString("redis")

		var store ports.ResultStore
		if redisAddr != "" {
			redisStore := redis.New(redisAddr, "", 0)
			defer redisStore.Close()
			store = redisStore
		} else {
			store = memory.New()
		}

		server := httpapi.NewServer(store, httpapi.WithLogger(newLogger(cmd)))

		srv := &http.Server{
			Addr:    ":" + port,
			Handler: server.Handler(),
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			fmt.Printf("Starting distribution server on %s\n", srv.Addr)
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)
		case <-shutdown:
			fmt.Println("\nShutdown signal received, draining connections...")
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Shutdown(ctx); err != nil {
				srv.Close()
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
	serveCmd.Flags().String("redis", "", "Redis address for persistent summaries (host:port)")
}
