// Package main is the entry point for retrodungeon.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/skerritt/retrodungeon/internal/config"
	"github.com/skerritt/retrodungeon/internal/game"
	"github.com/skerritt/retrodungeon/internal/logging"
	"github.com/skerritt/retrodungeon/internal/telemetry"
	"github.com/skerritt/retrodungeon/internal/ui"
)

const configPath = "retrodungeon.yaml"

func main() {
	// Load .env file for local development
	// This makes HONEYCOMB_RETRODUNGEON_API_KEY available
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	// Set up OTEL environment variables from our .env variables
	setupOTelEnv()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := logging.New(cfg.Log)

	ctx := context.Background()

	// Initialize telemetry
	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		logger.Warnf("telemetry setup failed: %v; running without observability", err)
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				logger.Errorf("telemetry shutdown: %v", err)
			}
		}()
	}

	session, err := game.New(cfg, logger)
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}

	screen, err := ui.NewScreen()
	if err != nil {
		log.Fatalf("Failed to initialize terminal: %v", err)
	}

	if err := run(ctx, cfg, logger, session, screen); err != nil {
		screen.Close()
		log.Fatalf("Game error: %v", err)
	}
	screen.Close()
}

// run is the input loop: one discrete action per accepted turn. The session
// controller does all the work; this loop only translates key events.
func run(ctx context.Context, cfg *config.Config, logger *logrus.Logger, session *game.Game, screen *ui.Screen) error {
	renderer := ui.NewRenderer(screen)

	for {
		renderer.Render(session)

		ev := screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			screen.Sync()

		case *tcell.EventKey:
			var err error
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				session.Shutdown()
				return nil

			case tcell.KeyUp:
				err = session.HandleMovement(ctx, game.North)
			case tcell.KeyDown:
				err = session.HandleMovement(ctx, game.South)
			case tcell.KeyRight:
				err = session.HandleMovement(ctx, game.East)
			case tcell.KeyLeft:
				err = session.HandleMovement(ctx, game.West)

			case tcell.KeyRune:
				switch ev.Rune() {
				case 'q', 'Q':
					session.Shutdown()
					return nil
				case 'n', 'N':
					err = session.NewGame(ctx, playerName())
				case 's', 'S':
					err = session.Save(cfg.Save.Path)
				case 'l', 'L':
					err = session.Load(ctx, cfg.Save.Path)
				}
			}

			// A keypress outside an active session is not an error worth
			// surfacing; anything else is logged and play continues.
			if err != nil && !errors.Is(err, game.ErrSessionNotActive) {
				logger.WithError(err).Error("action failed")
			}

			session.Update()
		}
	}
}

// playerName resolves the hero's name from the environment.
func playerName() string {
	if name := os.Getenv("RETRODUNGEON_PLAYER"); name != "" {
		return name
	}
	return "Hero"
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	// Always set endpoint to Honeycomb
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")

	// Always set headers from our API key - the .env file may have an unexpanded
	// variable reference that doesn't work, so we construct it properly here
	apiKey := os.Getenv("HONEYCOMB_RETRODUNGEON_API_KEY")
	dataset := os.Getenv("HONEYCOMB_RETRODUNGEON_DATASET")
	if dataset == "" {
		dataset = "retrodungeon" // default dataset name
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
