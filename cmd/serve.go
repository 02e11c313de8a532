package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jramirezbandera/ec2fiber/internal/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the capacity evaluator over HTTP",
	Long: `Start an HTTP server exposing the capacity evaluator.

Endpoints:
  POST /api/capacity   JSON section in, capacity result out
  GET  /api/health     liveness probe

The listen address comes from --addr, or from EC2FIBER_ADDR in the
environment (a .env file is loaded when present).

Example:
  ec2fiber serve --addr :8080
  curl -X POST localhost:8080/api/capacity -d @section.json`,
	Run: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default :8080 or EC2FIBER_ADDR)")
}

func runServe(cmd *cobra.Command, args []string) {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Optional .env for deployments.
	_ = godotenv.Load()

	addr := serveAddr
	if addr == "" {
		addr = os.Getenv("EC2FIBER_ADDR")
	}
	if addr == "" {
		addr = ":8080"
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	srv := server.New(addr, log)
	if err := srv.Run(ctx); err != nil {
		log.WithError(err).Fatal("server error")
	}
}
