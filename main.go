package main

import (
	"context"
	"log/slog"
	baseHttp "net/http"
	"time"

	"github.com/StevenGabule/portfolio/metal/kernel"
	"github.com/StevenGabule/portfolio/pkg/endpoint"
	"github.com/StevenGabule/portfolio/pkg/portal"
)

var app *kernel.App

func init() {
	validate := portal.GetDefaultValidator()

	secrets, err := kernel.Ignite("./.env", validate)
	if err != nil {
		panic("failed to read the .env file/values: " + err.Error())
	}

	app = kernel.MakeApp(secrets, validate)
}

func main() {
	defer app.CloseLogs()

	app.Boot()

	store := app.GetStore()
	slog.Info("content loaded", "posts", store.Len(), "version", store.Version())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := app.Start(ctx); err != nil {
		slog.Error("Error starting the spotlight rotation", "error", err)
		panic("Error starting the spotlight rotation: " + err.Error())
	}

	addr := app.GetEnv().Network.GetHostURL()

	server := &baseHttp.Server{
		Addr:              addr,
		Handler:           app.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	if err := endpoint.RunServer(addr, server, app.Shutdown); err != nil {
		slog.Error("Error starting server", "error", err)
		panic("Error starting server." + err.Error())
	}
}
