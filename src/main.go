package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"

	"liftsim/lib/keypad"
	"liftsim/src/config"
	"liftsim/src/dispatcher"
	"liftsim/src/elev"
	"liftsim/src/executor"
	"liftsim/src/types"
	"liftsim/src/utils"
)

func main() {
	configPath := flag.String("config", "liftsim.yaml", "YAML config file")
	envPath := flag.String("env", ".env", "env file with LIFTSIM_* overrides")
	requests := flag.String("requests", "", "comma separated floors to serve without the keypad, e.g. 5,2,7")
	flag.Parse()

	cfg, err := config.Load(*configPath, *envPath)
	if err != nil {
		slog.Error("Invalid configuration", "err", err)
		os.Exit(1)
	}
	closeLog, err := elev.InitLogger(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		slog.Error("Logger setup failed", "err", err)
		os.Exit(1)
	}
	defer closeLog()
	slog.Info("Starting", "floors", cfg.NumFloors, "travel", cfg.TravelDuration)

	mgr := elev.StartCarMgr(dispatcher.New())
	defer mgr.Stop()

	if *requests != "" {
		floors, err := utils.ParseFloors(*requests)
		if err == nil {
			err = executor.RunBatch(cfg, mgr, floors, os.Stdout)
		}
		if err != nil {
			slog.Error("Batch run failed", "err", err)
			closeLog()
			os.Exit(1)
		}
		return
	}

	if err := keypad.Init(); err != nil {
		slog.Error("Keypad setup failed", "err", err)
		closeLog()
		os.Exit(1)
	}
	defer keypad.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	keys := make(chan types.KeyEvent)
	go keypad.PollKeys(ctx, keys)
	executor.Run(ctx, cfg, mgr, keys, os.Stdout)
}
