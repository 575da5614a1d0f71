// Command faststack-sim is a headless driver for the FastStack engine: it
// loads configuration (.env, an optional INI file, and CLI flags), runs
// the tick state machine either from a recorded replay file or against a
// fixed schedule that feeds one cell of gravity per tick, and serves a debug/metrics/spectator HTTP
// surface while it runs. Grounded on the teacher's cmd/server/main.go
// load-config-then-wire-collaborators shape.
package main

import (
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"faststack/internal/config"
	"faststack/internal/engine"
	"faststack/internal/obs"
	"faststack/internal/replay"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if err := godotenv.Load(); err != nil {
		fmt.Fprintln(stderr, "no .env file found, using environment variables only")
	}

	base := config.FromEnv()

	parsed := config.ParseArgs(base, args, stdout)
	if !parsed.ShouldRun {
		return parsed.ExitCode
	}
	cfg := parsed.Config

	if !cfg.NoINI {
		if data, err := os.ReadFile("faststack.ini"); err == nil {
			for _, w := range config.ParseINI(string(data), &cfg) {
				fmt.Fprintf(stderr, "faststack.ini:%d: %s\n", w.Line, w.Message)
			}
		}
	}

	logger := obs.NewStderrLogger(cfg.LogLevel)
	logger.Info("starting faststack-sim", "rotationSystem", cfg.Game.RotationSystem, "randomizer", cfg.Game.Randomizer)

	reg := prometheus.NewRegistry()
	metrics := obs.NewMetrics(reg)
	hub := obs.NewHub(metrics)

	e := engine.New(cfg.Game)

	snapshotOf := func() obs.Snapshot {
		return obs.Snapshot{
			State:        e.State.String(),
			TotalTicks:   e.TotalTicks,
			LinesCleared: e.LinesCleared,
			BlocksPlaced: e.BlocksPlaced,
			Finesse:      e.Finesse,
			PieceType:    e.Piece.Type.String(),
			PieceX:       e.Piece.X,
			PieceY:       e.Piece.Y,
			Theta:        e.Piece.Theta,
		}
	}

	srvCfg := obs.DefaultServerConfig()
	server := obs.NewServer(srvCfg, reg, hub, snapshotOf)
	go func() {
		if err := http.ListenAndServe(srvCfg.ListenAddr, server); err != nil {
			logger.Error("debug server stopped", "error", err)
		}
	}()

	var inputs []replay.Record
	if cfg.ReplayFile != "" {
		recs, err := replay.ReadAll(cfg.ReplayFile)
		if err != nil {
			logger.Fatal("failed to read replay file", "path", cfg.ReplayFile, "error", err)
		}
		inputs = recs
		logger.Info("loaded replay", "path", cfg.ReplayFile, "ticks", len(inputs))
	}

	tick := 0
	prevBlocksPlaced := e.BlocksPlaced
	prevLinesCleared := e.LinesCleared
	prevFinesse := e.Finesse
	for e.State != engine.StateGameOver && e.State != engine.StateQuit {
		var in engine.Input
		if tick < len(inputs) {
			in = inputs[tick].ToInput()
		} else if cfg.ReplayFile != "" {
			break
		} else {
			// No replay supplied: Config.Gravity defaults to 0 (a real
			// frontend derives the per-tick fall from its own falltime
			// curve and feeds it through Input.Gravity), so drive a
			// constant one-cell-per-tick fall here. Without this the
			// demo run idles in FALLING forever instead of reaching a
			// natural GAMEOVER.
			in.Gravity = 1
		}

		e.Tick(in)
		metrics.SetState(allStateNames, e.State.String())
		hub.Broadcast(snapshotOf())

		if e.BlocksPlaced != prevBlocksPlaced {
			metrics.RecordLock(e.LinesCleared-prevLinesCleared, e.Finesse-prevFinesse, e.State == engine.StateGameOver)
			prevBlocksPlaced, prevLinesCleared, prevFinesse = e.BlocksPlaced, e.LinesCleared, e.Finesse
		}

		tick++
	}

	logger.Info("engine finished", "totalTicks", e.TotalTicks, "linesCleared", e.LinesCleared, "blocksPlaced", e.BlocksPlaced)
	return 0
}

var allStateNames = []string{
	engine.StateReady.String(),
	engine.StateGo.String(),
	engine.StateFalling.String(),
	engine.StateLanded.String(),
	engine.StateARE.String(),
	engine.StateNewPiece.String(),
	engine.StateLines.String(),
	engine.StateQuit.String(),
	engine.StateGameOver.String(),
}
