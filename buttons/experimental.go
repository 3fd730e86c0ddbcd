package buttons

import (
	"image"
	"image/color"
	"log/slog"
	"path/filepath"

	"pfeifer.dev/onroad/params"
	"pfeifer.dev/onroad/utils"
)

// EngagementVisualState is everything the experimental button draws from.
type EngagementVisualState struct {
	Engageable         bool
	ExperimentalMode   bool
	BackgroundColorTag StatusTag
	RotationAngleDeg   float32
	IconKind           IconKind
}

// Overlay describes where an animated icon is shown when the button hands
// drawing off to an animation player.
type Overlay struct {
	Asset string
	Rect  image.Rectangle
}

// ExperimentalButton shows whether openpilot can engage and which driving
// mode is active, and toggles experimental mode when clicked.
type ExperimentalButton struct {
	params       ParamStore
	paramsMemory ParamStore
	colors       ColorTable
	resolver     IconSourceResolver

	wheelGifPath string
	wheelPngPath string
	icon         IconDecision

	engageable       bool
	experimentalMode bool
	pressed          bool

	alwaysOnLateralActive   bool
	bigMap                  bool
	conditionalExperimental bool
	conditionalStatus       int
	longitudinalControl     bool
	modeConfirmed           bool
	mapOpen                 bool
	navigateOnOpenpilot     bool
	rotatingWheel           bool
	trafficModeActive       bool
	steeringAngleDeg        utils.Float32Tracker
	yOffset                 int
}

func NewExperimentalButton(durable ParamStore, memory ParamStore, themePath string) *ExperimentalButton {
	b := &ExperimentalButton{
		params:       durable,
		paramsMemory: memory,
		colors:       DefaultColorTable(),
	}
	b.SetThemePath(themePath)
	return b
}

func (b *ExperimentalButton) SetColors(colors ColorTable) {
	b.colors = colors
}

func (b *ExperimentalButton) SetResolver(resolver IconSourceResolver) {
	b.resolver = resolver
	b.UpdateIcon()
}

// SetThemePath points the wheel icon at a theme directory and re-resolves it.
func (b *ExperimentalButton) SetThemePath(themePath string) bool {
	b.wheelGifPath = filepath.Join(themePath, "images", "wheel.gif")
	b.wheelPngPath = filepath.Join(themePath, "images", "wheel.png")
	return b.UpdateIcon()
}

// UpdateIcon re-checks which wheel asset exists and reports whether the
// decision changed.
func (b *ExperimentalButton) UpdateIcon() bool {
	decision := b.resolver.Resolve(b.wheelGifPath, b.wheelPngPath)
	changed := decision != b.icon
	b.icon = decision
	if changed {
		slog.Debug("wheel icon resolved", "kind", decision.Kind.String(), "asset", decision.Asset)
	}
	return changed
}

// UpdateState takes in a new snapshot and reports whether the button needs a
// repaint.
func (b *ExperimentalButton) UpdateState(s Snapshot, leadInfo bool) (changed bool) {
	eng := s.Engageable || s.Enabled || s.AlwaysOnLateralActive
	if eng != b.engageable || s.ExperimentalMode != b.experimentalMode {
		b.engageable = eng
		b.experimentalMode = s.ExperimentalMode
		changed = true
	}

	b.alwaysOnLateralActive = s.AlwaysOnLateralActive
	b.bigMap = s.BigMap
	b.conditionalExperimental = s.ConditionalExperimental
	b.conditionalStatus = s.ConditionalStatus
	b.longitudinalControl = s.LongitudinalControl
	b.modeConfirmed = s.ExperimentalModeConfirmed
	b.mapOpen = s.MapOpen
	b.navigateOnOpenpilot = s.NavigateOnOpenpilot
	b.rotatingWheel = s.RotatingWheel
	b.trafficModeActive = s.TrafficModeActive
	if leadInfo {
		b.yOffset = LEAD_INFO_OFFSET
	} else {
		b.yOffset = 0
	}

	if b.rotatingWheel {
		if b.steeringAngleDeg.Update(s.SteeringAngleDeg) {
			changed = true
		}
	} else {
		b.steeringAngleDeg.Reset()
	}

	return changed
}

// SetPressed records the touch state and reports whether it changes what is
// drawn.
func (b *ExperimentalButton) SetPressed(pressed bool) bool {
	if b.pressed == pressed {
		return false
	}
	b.pressed = pressed
	return true
}

func (b *ExperimentalButton) Pressed() bool {
	return b.pressed
}

// BackgroundColorTag resolves the status color, first match wins.
func (b *ExperimentalButton) BackgroundColorTag() StatusTag {
	if b.icon.Kind == IconNone || b.pressed || !b.engageable {
		return StatusDefault
	}
	switch {
	case b.alwaysOnLateralActive:
		return StatusAlwaysOnLateralActive
	case ConditionalOverridden(b.conditionalStatus):
		return StatusConditionalOverridden
	case b.experimentalMode:
		return StatusExperimentalModeActive
	case b.navigateOnOpenpilot:
		return StatusNavigationActive
	case b.trafficModeActive:
		return StatusTrafficModeActive
	}
	return StatusDefault
}

func (b *ExperimentalButton) BackgroundColor() color.RGBA {
	return b.colors.Color(b.BackgroundColorTag())
}

func (b *ExperimentalButton) VisualState() EngagementVisualState {
	return EngagementVisualState{
		Engageable:         b.engageable,
		ExperimentalMode:   b.experimentalMode,
		BackgroundColorTag: b.BackgroundColorTag(),
		RotationAngleDeg:   b.steeringAngleDeg.Value,
		IconKind:           b.icon.Kind,
	}
}

// ConditionalOverridden reports whether a conditional experimental status
// code means the user has overridden the automatic switching.
func ConditionalOverridden(status int) bool {
	return status == 1 || status == 3 || status == 5
}

// OverrideStatus is the conditional experimental status published when the
// user taps the button: active overrides are cleared, otherwise the mode is
// forced on (5) or off (6).
func OverrideStatus(status int) int {
	switch {
	case status >= 1 && status <= 6:
		return 0
	case status >= 7:
		return 5
	}
	return 6
}

// ToggleMode is a no-op unless the car has openpilot longitudinal control
// and the user has confirmed experimental mode, either in the snapshot or in
// the durable store. The result only shows up on a later snapshot.
func (b *ExperimentalButton) ToggleMode() {
	confirmed := b.modeConfirmed || b.params.GetBool(params.EXPERIMENTAL_MODE_CONFIRMED)
	if !b.longitudinalControl || !confirmed {
		slog.Debug("ignoring experimental mode toggle", "longitudinal", b.longitudinalControl)
		return
	}

	if b.conditionalExperimental {
		override := OverrideStatus(b.conditionalStatus)
		utils.Logwe(b.paramsMemory.PutInt(params.CE_STATUS, override))
		slog.Info("conditional experimental override", "status", b.conditionalStatus, "override", override)
		return
	}

	utils.Logwe(b.params.PutBool(params.EXPERIMENTAL_MODE, !b.experimentalMode))
	slog.Info("experimental mode toggled", "enabled", !b.experimentalMode)
}

// Hidden is true while the map covers the button.
func (b *ExperimentalButton) Hidden() bool {
	return b.bigMap && b.mapOpen
}

func (b *ExperimentalButton) iconOpacity() float64 {
	if b.pressed || !b.engageable {
		return PRESSED_OPACITY
	}
	return 1.0
}

func (b *ExperimentalButton) Size() image.Point {
	return image.Pt(BTN_SIZE, BTN_SIZE+10)
}

// Paint draws the static wheel. Animated wheels are drawn by an overlay
// player, see AnimatedOverlay.
func (b *ExperimentalButton) Paint(s Surface) bool {
	if b.Hidden() || b.icon.Kind != IconStatic {
		return false
	}

	icon := Icon{Path: b.icon.Asset, Size: IMG_SIZE}
	center := image.Pt(BTN_SIZE/2, BTN_SIZE/2+b.yOffset)
	DrawIcon(s, center, icon, b.BackgroundColor(), b.iconOpacity(), float64(b.steeringAngleDeg.Value))
	return true
}

// AnimatedOverlay returns the overlay placement when the wheel is animated
// and visible.
func (b *ExperimentalButton) AnimatedOverlay() (Overlay, bool) {
	if b.Hidden() || b.icon.Kind != IconAnimated {
		return Overlay{}, false
	}
	margin := (BTN_SIZE - IMG_SIZE) / 2
	topLeft := image.Pt(margin, margin+b.yOffset)
	return Overlay{
		Asset: b.icon.Asset,
		Rect:  image.Rectangle{Min: topLeft, Max: topLeft.Add(image.Pt(IMG_SIZE, IMG_SIZE))},
	}, true
}
