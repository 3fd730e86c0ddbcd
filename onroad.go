package main

import (
	"context"
	"image"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"pfeifer.dev/onroad/buttons"
	"pfeifer.dev/onroad/cereal"
	"pfeifer.dev/onroad/params"
	"pfeifer.dev/onroad/render"
	"pfeifer.dev/onroad/settings"
	"pfeifer.dev/onroad/theme"
	"pfeifer.dev/onroad/utils"
)

const UI_BORDER_SIZE = 30

// Onroad is the ebiten game hosting the experimental and distance buttons.
// It only redraws when one of them asks for it.
type Onroad struct {
	durable   params.Params
	memory    params.Params
	assetRoot string
	themePath string

	experimental       *buttons.ExperimentalButton
	distance           *buttons.DistanceButton
	experimentalOrigin image.Point
	distanceOrigin     image.Point

	themes   *theme.ThemeManager
	controls *render.Controls
	images   *render.ImageCache
	canvas   *render.Canvas
	overlay  *render.GifPlayer

	snapshots   chan buttons.Snapshot
	updates     utils.UpdateTracker
	lastPoll    time.Time
	lastRateLog time.Time
	failedGif   string

	width  int
	height int
	dirty  bool
}

func NewOnroad(durable params.Params, memory params.Params, assetRoot string, width int, height int) *Onroad {
	o := &Onroad{
		durable:   durable,
		memory:    memory,
		assetRoot: assetRoot,
		themePath: theme.ActiveThemePath(assetRoot, ""),
		themes:    theme.NewThemeManager(memory),
		controls:  render.NewControls(),
		images:    render.NewImageCache(),
		overlay:   render.NewGifPlayer(),
		snapshots: make(chan buttons.Snapshot, 1),
		width:     width,
		height:    height,
		dirty:     true,
	}
	o.canvas = render.NewCanvas(o.images)
	o.experimental = buttons.NewExperimentalButton(durable, memory, o.themePath)
	o.distance = buttons.NewDistanceButton(memory, assetRoot)
	o.updates.Init(20)

	o.experimentalOrigin = image.Pt(width-buttons.BTN_SIZE-UI_BORDER_SIZE, UI_BORDER_SIZE)
	o.distanceOrigin = image.Pt(UI_BORDER_SIZE, height-o.distance.Size().Y-UI_BORDER_SIZE)

	o.controls.Add(&render.Region{
		Rect:    image.Rectangle{Min: o.experimentalOrigin, Max: o.experimentalOrigin.Add(o.experimental.Size())},
		Enabled: func() bool { return !o.experimental.Hidden() },
		OnPressed: func() {
			o.markDirty(o.experimental.SetPressed(true))
		},
		OnReleased: func() {
			o.markDirty(o.experimental.SetPressed(false))
		},
		OnClicked: o.experimental.ToggleMode,
	})
	o.controls.Add(&render.Region{
		Rect:       image.Rectangle{Min: o.distanceOrigin, Max: o.distanceOrigin.Add(o.distance.Size())},
		OnPressed:  o.distance.Pressed,
		OnReleased: o.distance.Released,
	})

	return o
}

func (o *Onroad) markDirty(changed bool) {
	o.dirty = o.dirty || changed
}

// Subscribe forwards the latest onroadState snapshot to the game until ctx
// is done. Older snapshots the game has not picked up yet are dropped.
func (o *Onroad) Subscribe(ctx context.Context) {
	sub := cereal.NewOnroadStateSubscriber()
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		time.Sleep(settings.LOOP_DELAY)
		if !sub.Ready() {
			continue
		}
		state, success := sub.Read()
		if !success {
			continue
		}

		select {
		case <-o.snapshots:
		default:
		}
		o.snapshots <- state.Snapshot()
	}
}

func (o *Onroad) applySnapshot(snap buttons.Snapshot) {
	o.updates.Update()
	o.markDirty(o.experimental.UpdateState(snap, settings.Settings.LeadInfo))
	o.markDirty(o.distance.UpdateState(snap.Personality, snap.TrafficModeActive, snap.UseKaofuiIcons))
}

func (o *Onroad) poll(now time.Time) {
	if now.Sub(o.lastPoll) < settings.PARAM_POLL_INTERVAL {
		return
	}
	o.lastPoll = now

	settings.Settings.Load(o.durable)

	holiday := ""
	if settings.Settings.HolidayThemes {
		holiday, _ = o.themes.Update(now)
	}
	themePath := theme.ActiveThemePath(o.assetRoot, holiday)
	if themePath != o.themePath {
		o.themePath = themePath
		o.markDirty(o.experimental.SetThemePath(themePath))
	}

	if o.memory.GetBool(params.UPDATE_WHEEL_IMAGE) {
		o.images.Forget(filepath.Join(theme.WheelImagesPath(o.themePath), "wheel.png"))
		o.overlay.Stop()
		o.failedGif = ""
		o.experimental.UpdateIcon()
		o.dirty = true
		utils.Logwe(o.memory.PutBool(params.UPDATE_WHEEL_IMAGE, false))
	}
}

func (o *Onroad) updateOverlay() {
	overlay, ok := o.experimental.AnimatedOverlay()
	if !ok {
		if o.overlay.Playing() {
			o.overlay.Stop()
			o.dirty = true
		}
		return
	}

	if overlay.Asset == o.failedGif {
		return
	}
	if err := o.overlay.Play(overlay.Asset); err != nil {
		slog.Warn("could not play animated wheel", "error", err, "path", overlay.Asset)
		o.failedGif = overlay.Asset
		return
	}
	o.markDirty(o.overlay.Advance())
}

func (o *Onroad) Update() error {
	now := time.Now()

	o.controls.Update()

	select {
	case snap := <-o.snapshots:
		o.applySnapshot(snap)
	default:
	}
	o.markDirty(o.distance.Animating())

	o.poll(now)
	o.updateOverlay()

	if now.Sub(o.lastRateLog) > settings.RATE_LOG_INTERVAL {
		o.lastRateLog = now
		slog.Debug("onroadState rate", "hz", o.updates.Rate())
	}
	return nil
}

func (o *Onroad) Draw(screen *ebiten.Image) {
	if !o.dirty {
		return
	}
	o.dirty = false

	screen.Clear()
	o.experimental.Paint(o.canvas.At(screen, o.experimentalOrigin))
	o.distance.Paint(o.canvas.At(screen, o.distanceOrigin))
	if overlay, ok := o.experimental.AnimatedOverlay(); ok {
		o.overlay.Draw(screen, overlay.Rect.Add(o.experimentalOrigin))
	}
}

func (o *Onroad) Layout(outsideWidth, outsideHeight int) (int, int) {
	return o.width, o.height
}
