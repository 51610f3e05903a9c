package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/maxbreak/snooker-data/internal/api"
	"github.com/maxbreak/snooker-data/internal/cache"
	"github.com/maxbreak/snooker-data/internal/config"
	"github.com/maxbreak/snooker-data/internal/model"
	"github.com/maxbreak/snooker-data/internal/orchestrator"
	"github.com/maxbreak/snooker-data/internal/version"
)

func main() {
	configPath := flag.String("config", "", "path to config file (optional)")
	eventID := flag.Int64("event", 0, "event id to load")
	rankings := flag.String("rankings", "", "print a ranking list instead (e.g. MoneyRankings)")
	watch := flag.Bool("watch", false, "keep running and re-print on live refreshes")
	debug := flag.Bool("debug", false, "enable debug logging")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return
	}

	// Local overrides for ${VAR} expansion in the config file.
	_ = godotenv.Load()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.LoadAndValidate(*configPath)
		if err != nil {
			logger.Error("failed to load config", "error", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	logger.Info("starting scoreboard",
		"version", version.Version,
		"api_url", cfg.API.BaseURL,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	client := api.NewClient(
		cfg.API.BaseURL,
		cfg.API.RequestedBy,
		api.WithLogger(logger),
		api.WithTimeout(cfg.API.Timeout),
		api.WithRetries(cfg.API.MaxRetries, time.Second),
	)

	responseCache := cache.New(cache.Config{
		CleanupInterval: cfg.Cache.CleanupInterval,
		TTL: cache.TTLPolicy{
			EventDetails: cfg.Cache.TTLEventDetails,
			Matches:      cfg.Cache.TTLMatches,
			Rankings:     cfg.Cache.TTLRankings,
			Default:      cfg.Cache.TTLDefault,
		},
	}, cache.WithLogger(logger))

	orch := orchestrator.New(cfg, client, responseCache, logger)

	if *rankings != "" {
		printRankings(ctx, orch, *rankings, logger)
		return
	}

	if *eventID == 0 {
		if err := printSeasonEvents(ctx, orch); err != nil {
			logger.Error("failed to list events", "error", err)
			os.Exit(1)
		}
		return
	}

	orch.OnUpdate = func(items []model.RenderItem) {
		printRenderList(items)
	}
	orch.OnStartingSoon = func(m model.Match, minutes int) {
		fmt.Printf("\n*** %s v %s starts in %d min ***\n", m.Player1Name, m.Player2Name, minutes)
	}

	if err := orch.Start(ctx); err != nil {
		logger.Error("failed to start", "error", err)
		os.Exit(1)
	}

	if _, err := orch.LoadTournament(ctx, *eventID); err != nil {
		logger.Error("failed to load tournament", "event_id", *eventID, "error", err)
		os.Exit(1)
	}

	if !*watch {
		stopCtx, stopCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer stopCancel()
		_ = orch.Stop(stopCtx)
		return
	}

	<-ctx.Done()

	stopCtx, stopCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer stopCancel()
	if err := orch.Stop(stopCtx); err != nil {
		logger.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	logger.Info("scoreboard stopped")
}

func printRenderList(items []model.RenderItem) {
	for _, item := range items {
		switch item.Kind {
		case model.KindStatusHeader:
			fmt.Printf("\n== %s ==\n", item.Title)
		case model.KindRoundHeader:
			if item.Title != "" {
				fmt.Printf("-- %s --\n", item.Title)
			}
		case model.KindMatch:
			fmt.Println(formatMatch(item.Match))
		}
	}
}

func formatMatch(m *model.Match) string {
	p1, p2 := m.Player1Name, m.Player2Name
	if p1 == "" {
		p1 = fmt.Sprintf("Player %d", m.Player1ID)
	}
	if p2 == "" {
		p2 = fmt.Sprintf("Player %d", m.Player2ID)
	}

	if m.Score1 != nil && m.Score2 != nil {
		line := fmt.Sprintf("  %s %d-%d %s", p1, *m.Score1, *m.Score2, p2)
		if w := m.ResolvedWinner(); w != 0 && m.StatusCode == model.StatusFinished {
			if w == m.Player1ID {
				line += " (" + p1 + " wins)"
			} else {
				line += " (" + p2 + " wins)"
			}
		}
		return line
	}

	when := ""
	if m.ScheduledAt > 0 {
		when = " @ " + time.UnixMicro(m.ScheduledAt).Local().Format("Mon 15:04")
	}
	return fmt.Sprintf("  %s v %s%s", p1, p2, when)
}

func printRankings(ctx context.Context, orch *orchestrator.Orchestrator, rankingType string, logger *slog.Logger) {
	entries, err := orch.LoadRankings(ctx, rankingType)
	if err != nil {
		logger.Error("failed to load rankings", "type", rankingType, "error", err)
		os.Exit(1)
	}
	for _, e := range entries {
		name := e.PlayerName
		if name == "" {
			name = fmt.Sprintf("Player %d", e.PlayerID)
		}
		fmt.Printf("%3d. %-30s %d\n", e.Position, name, e.Sum)
	}
}

func printSeasonEvents(ctx context.Context, orch *orchestrator.Orchestrator) error {
	events, err := orch.ListSeasonEvents(ctx)
	if err != nil {
		return err
	}
	for _, ev := range events {
		start := ""
		if ev.StartDate > 0 {
			start = time.UnixMicro(ev.StartDate).Format("2006-01-02")
		}
		fmt.Printf("%8d  %-10s  %s\n", ev.ID, start, ev.Name)
	}
	return nil
}
