package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"

	"mgpresults/internal/components/chrono"
	"mgpresults/internal/components/telemetry"
	"mgpresults/internal/leaderboard"
	"mgpresults/internal/scrapers/multigp"
	"mgpresults/internal/service"
	"mgpresults/lib/configutil"
	"mgpresults/lib/util/serviceutil"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func initTelemetry(ctx context.Context, verbose bool, cfg telemetry.Config) {
	telemetry.InitSlog(verbose)
	if verbose {
		slog.DebugContext(ctx, "verbose logging enabled")
	}

	otel, err := telemetry.Setup(ctx, "mgpresults-server", cfg)
	if err != nil {
		serviceutil.Fatal("setup telemetry", err)
	}
	go func() {
		<-ctx.Done()
		err := otel.Shutdown(context.Background())
		if err != nil {
			slog.Warn("shutdown telemetry", "err", err)
		}
	}()
	telemetry.InstrumentPerfStats(ctx)
}

func main() {
	configPath := flag.String("config", "config.json5", "Path to the json5 configuration file.")
	verbose := flag.Bool("v", false, "Enable verbose logging/instrumentation.")
	flag.Parse()

	ctx := serviceutil.SignalContext()

	cfg, err := configutil.ReadOrDefault(*configPath, defaultConfig)
	if err != nil {
		serviceutil.Fatal("read config", err)
	}

	initTelemetry(ctx, *verbose, cfg.Telemetry)

	tel := telemetry.SlogAPI{}
	clock, err := chrono.NewStandardImpl(cfg.Timezone)
	if err != nil {
		serviceutil.Fatal("load timezone", err)
	}
	client, err := multigp.NewClient(cfg.Source.ClientOptions(), tel)
	if err != nil {
		serviceutil.Fatal("init multigp client", err)
	}

	svc := service.NewService(
		client,
		leaderboard.NewBuilder(leaderboard.DefaultCountries(), tel),
		clock,
		tel,
	)

	mux := http.NewServeMux()
	service.NewHandler(svc, tel).RegisterRoutes(mux)

	slog.Info("serving leaderboard", "source", client.Url(), "port", cfg.Server.Port)
	server := serviceutil.NewHttpServer(
		ctx,
		fmt.Sprintf("0.0.0.0:%d", cfg.Server.Port),
		otelhttp.NewHandler(mux, "mgpresults-server"),
	)
	err = serviceutil.ServeUntilDone(ctx, server)
	if err != nil {
		serviceutil.Fatal("serve http", err)
	}
}
