package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/hajimehoshi/ebiten/v2"

	"pfeifer.dev/onroad/cli"
	"pfeifer.dev/onroad/config"
	"pfeifer.dev/onroad/params"
	"pfeifer.dev/onroad/settings"
)

func main() {
	slog.SetLogLoggerLevel(slog.LevelDebug)
	cli.Handle()

	params.ParamsPath = config.GetString("paths.params")
	params.MemoryParamsPath = config.GetString("paths.memoryParams")
	durable := params.New()
	memory := params.NewMemory()
	durable.EnsureDirectory()
	memory.EnsureDirectory()

	settings.Settings.LoadWithRetries(durable, 3)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	width := config.GetInt("window.width")
	height := config.GetInt("window.height")
	game := NewOnroad(durable, memory, config.GetString("paths.assets"), width, height)
	go game.Subscribe(ctx)

	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle("Onroad")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(config.GetBool("window.fullscreen"))
	ebiten.SetScreenClearedEveryFrame(false)
	ebiten.SetRunnableOnUnfocused(true)

	if err := ebiten.RunGame(game); err != nil {
		slog.Error("onroad ui exited", "error", err)
		os.Exit(1)
	}
}
