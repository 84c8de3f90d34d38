package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	authService "github.com/shopcore/commerce-api/auth/service"
	backupService "github.com/shopcore/commerce-api/backup/service"
	"github.com/shopcore/commerce-api/cmd/api"
	"github.com/shopcore/commerce-api/common"
	"github.com/shopcore/commerce-api/framework/connection"
	"github.com/shopcore/commerce-api/logger"
)

const (
	defaultAddr = "0.0.0.0:8082"

	// defaultExportSchedule runs the customers export nightly at 03:00 UTC.
	defaultExportSchedule = "0 3 * * *"
)

func main() {
	if err := run(); err != nil {
		log.Println("error: ", err)
		os.Exit(1)
	}
}

func run() error {
	// Local development reads its environment from a .env file. Missing file
	// is fine; deployed environments set real env vars.
	_ = godotenv.Load()

	ctx := context.Background()

	logging, err := logger.NewLogging(ctx)
	if err != nil {
		log.Printf("main: could not initialize logging. error %s", err)
		return err
	}

	conn, err := connection.NewConnection(ctx, logging)
	if err != nil {
		log.Printf("main: could not initialize db connections. error %s", err)
		return err
	}

	tokens := authService.NewTokens()

	// =================
	// Start API Service
	log.Print("started: initializing api support")

	// Make a channel to listen for an interrupt or terminate signal from the OS.
	// Use a buffered channel because the signal package requires it.
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	a := api.NewAPI(shutdown, logging, conn, tokens)

	scheduler := startScheduler(ctx, conn)
	defer scheduler.Stop()

	server := http.Server{
		Addr:    getAddr(),
		Handler: a.Build(),
	}

	// Make a channel to listen for errors coming from the listener. Use a
	// buffered channel so the goroutine can exit if we don't collect this error.
	serverErrors := make(chan error, 1)

	go func() {
		log.Printf("listening on %s", server.Addr)
		serverErrors <- server.ListenAndServe()
	}()

	// =================
	// Shutdown

	select {
	case err := <-serverErrors:
		return fmt.Errorf("%s : starting server", err)

	case sig := <-shutdown:
		log.Printf("%v : start shutdown", sig)

		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		// Asking listener to shutdown and load shed.
		err := server.Shutdown(ctx)
		if err != nil {
			log.Printf("main : graceful shutdown did not complete")

			err = server.Close()
		}

		switch {
		case sig == syscall.SIGSTOP:
			return errors.New("integrity issue caused shutdown")
		case err != nil:
			return fmt.Errorf("could not stop server gracefully: %s", err)
		}
	}

	return nil
}

// startScheduler runs the customers export on a cron schedule inside the
// serving process.
func startScheduler(ctx context.Context, conn *connection.Connection) *cron.Cron {
	exports := backupService.NewExportService(logger.FromContext, conn)

	schedule := common.GetEnv("EXPORT_SCHEDULE", defaultExportSchedule)

	c := cron.New()

	if _, err := c.AddFunc(schedule, func() {
		if _, err := exports.ExportCustomers(ctx); err != nil {
			log.Printf("scheduler: customers export failed: %s", err)
		}
	}); err != nil {
		log.Printf("scheduler: invalid export schedule %q: %s", schedule, err)
		return c
	}

	c.Start()

	return c
}

func getAddr() string {
	port := os.Getenv("PORT")
	if port == "" {
		return defaultAddr
	}

	return fmt.Sprintf(":%s", port)
}
