/*
This is an example of application that will use the
engine package to test things out
*/
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/spaghettifunk/prism/engine"
	"github.com/spaghettifunk/prism/engine/core"
	"github.com/spaghettifunk/prism/testbed"
)

func main() {
	configPath := flag.String("config", "prism.toml", "path to the TOML configuration file")
	watch := flag.Bool("watch", false, "keep running and reload the configuration on change")
	flag.Parse()

	cfg, err := engine.LoadConfig(*configPath)
	if err != nil {
		core.LogFatal("failed to load config: %s", err)
	}

	tb := testbed.NewTestGame()

	e, err := engine.New(cfg, tb.Game)
	if err != nil {
		core.LogFatal("failed to create engine: %s", err)
	}
	if err := e.Initialize(); err != nil {
		core.LogFatal("failed to initialize engine: %s", err)
	}

	// signal channel to capture system calls
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	report(ctx, e)

	if *watch {
		cw, err := engine.NewConfigWatcher(*configPath, e.OnConfigChange)
		if err != nil {
			core.LogFatal("failed to watch config: %s", err)
		}
		defer cw.Close()

		if err := e.Run(ctx); err != nil {
			core.LogError("engine stopped: %s", err)
		}
		report(context.Background(), e)
	}

	if err := e.Shutdown(); err != nil {
		core.LogError("shutdown failed: %s", err)
		os.Exit(1)
	}
}

func report(ctx context.Context, e *engine.Engine) {
	bounds := e.Scene().WorldAABB()
	core.LogInfo("scene holds %d shapes, world bounds %v -> %v", e.Scene().Len(), bounds.Min, bounds.Max)

	averages, err := e.Systems().Textures().AverageAll(ctx)
	if err != nil {
		core.LogError("texture averaging failed: %s", err)
		return
	}
	names := make([]string, 0, len(averages))
	for name := range averages {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		avg := averages[name]
		core.LogInfo("texture '%s' average colour (%.4f, %.4f, %.4f)", name, avg.X, avg.Y, avg.Z)
	}
}
