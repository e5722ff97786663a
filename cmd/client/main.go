package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"goldenpotato/internal/app"
	"goldenpotato/internal/config"
	"goldenpotato/internal/domain"
	"goldenpotato/internal/ports/nakama"
	"goldenpotato/internal/render"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	configPath := flag.String("config", "client_config.json", "path to the client config file")
	matchID := flag.String("match", "", "match id to join")
	seat := flag.Int64("seat", 0, "local seat id")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := config.LoadClientConfig(*configPath); err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}
	cfg := config.GetClientConfig()
	if cfg.ServerURL == "" || cfg.SessionToken == "" {
		logger.Fatal("server_url and session_token are required")
	}
	if nakama.SessionExpired(cfg.SessionToken, time.Now()) {
		logger.Fatal("session token is expired; log in again")
	}
	if expiry, err := nakama.SessionExpiry(cfg.SessionToken); err == nil {
		logger.Info("session valid", zap.Time("expires_at", expiry))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	socket, err := nakama.Dial(ctx, cfg.ServerURL, cfg.SessionToken, logger)
	if err != nil {
		logger.Fatal("failed to connect", zap.Error(err))
	}

	view := domain.NewView(*seat)
	surface := render.NewTerminal()
	sender := app.NewActionSender(logger, socket)
	discard := app.NewDiscardTracker(logger, view)
	machine := app.NewMachine(logger, view, surface, sender, discard, config.ReactionFallback())
	engine := app.NewEngine(logger, view, app.NewRevealCache(), discard, machine, surface)

	if *matchID != "" {
		if err := socket.JoinMatch(*matchID); err != nil {
			logger.Fatal("failed to join match", zap.Error(err))
		}
	}

	go readInput(engine)

	if err := socket.Run(ctx, engine); err != nil && ctx.Err() == nil {
		logger.Fatal("connection lost", zap.Error(err))
	}
	logger.Info("goodbye")
}

// readInput translates terminal commands into interactions. Input goes
// through the engine, never straight to the machine, so the view is
// mutated by one actor at a time:
//
//	c <cardId>            toggle a hand card
//	t <seatId>            toggle a target seat
//	a <actionId>          press an action button
//	n <cardType> [index]  pick from the card-name catalog
func readInput(engine *app.Engine) {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}
		switch fields[0] {
		case "c":
			if id, err := strconv.ParseInt(fields[1], 10, 64); err == nil {
				engine.ToggleCard(id)
			}
		case "t":
			if id, err := strconv.ParseInt(fields[1], 10, 64); err == nil {
				engine.ToggleSeat(id)
			}
		case "a":
			engine.Press(fields[1])
		case "n":
			idx := -1
			if len(fields) > 2 {
				if n, err := strconv.Atoi(fields[2]); err == nil {
					idx = n
				}
			}
			engine.PickName(fields[1], idx)
		}
	}
}
