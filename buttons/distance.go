package buttons

import (
	"image"
	"image/color"
	"path/filepath"
	"time"

	"pfeifer.dev/onroad/params"
	"pfeifer.dev/onroad/utils"
)

const (
	PROFILE_TRAFFIC = iota
	PROFILE_AGGRESSIVE
	PROFILE_STANDARD
	PROFILE_RELAXED
	PROFILE_COUNT
)

const (
	TRANSITION_DELAY    = 3000 * time.Millisecond
	TRANSITION_DURATION = 1000 * time.Millisecond
)

type Profile struct {
	Icon Icon
	Text string
}

type ProfileTable [PROFILE_COUNT]Profile

var profileNames = [PROFILE_COUNT]struct{ file, text string }{
	PROFILE_TRAFFIC:    {"traffic", "Traffic"},
	PROFILE_AGGRESSIVE: {"aggressive", "Aggressive"},
	PROFILE_STANDARD:   {"standard", "Standard"},
	PROFILE_RELAXED:    {"relaxed", "Relaxed"},
}

// ProfileData builds the icon and label table for one of the two icon sets.
func ProfileData(assetRoot string, kaofui bool) ProfileTable {
	var table ProfileTable
	for i, name := range profileNames {
		file := name.file
		if kaofui {
			file += "_kaofui"
		}
		table[i] = Profile{
			Icon: Icon{Path: filepath.Join(assetRoot, "other_images", file+".png"), Size: IMG_SIZE},
			Text: name.text,
		}
	}
	return table
}

// ProfileIndex maps a driving personality ordinal to its table index. Traffic
// mode always uses index 0, unknown personalities give -1.
func ProfileIndex(personality int, trafficModeActive bool) int {
	if trafficModeActive {
		return PROFILE_TRAFFIC
	}
	if personality < 0 || personality+1 >= PROFILE_COUNT {
		return -1
	}
	return personality + 1
}

// ComputeOpacities crossfades from the profile text to its icon, holding the
// text for TRANSITION_DELAY and fading over TRANSITION_DURATION.
func ComputeOpacities(elapsed time.Duration) (textOpacity float64, imageOpacity float64) {
	textOpacity = 1.0 - float64(elapsed-TRANSITION_DELAY)/float64(TRANSITION_DURATION)
	textOpacity = max(0.0, min(textOpacity, 1.0))
	return textOpacity, 1.0 - textOpacity
}

// DistanceButton shows the following distance profile. On every change it
// shows the profile name for a few seconds before fading to the icon.
type DistanceButton struct {
	paramsMemory ParamStore
	assetRoot    string

	personality       int
	trafficModeActive bool
	profileIndex      int
	profile           Profile

	transitionTimer utils.ElapsedTimer
}

func NewDistanceButton(memory ParamStore, assetRoot string) *DistanceButton {
	return &DistanceButton{
		paramsMemory: memory,
		assetRoot:    assetRoot,
		profileIndex: -1,
	}
}

// SetClock replaces the clock driving the crossfade.
func (b *DistanceButton) SetClock(now func() time.Time) {
	b.transitionTimer.Now = now
}

// UpdateState reports whether the button needs a repaint, either because the
// profile changed or because the crossfade is still running.
func (b *DistanceButton) UpdateState(personality int, trafficModeActive bool, kaofui bool) bool {
	stateChanged := b.trafficModeActive != trafficModeActive ||
		(b.personality != personality+1 && !b.trafficModeActive)

	if stateChanged {
		b.personality = personality + 1
		b.trafficModeActive = trafficModeActive

		b.profileIndex = ProfileIndex(personality, trafficModeActive)
		if b.profileIndex >= 0 {
			b.profile = ProfileData(b.assetRoot, kaofui)[b.profileIndex]
		} else {
			b.profile = Profile{}
		}

		b.transitionTimer.Restart()
		return true
	}

	return b.Animating()
}

// Animating is true until the crossfade has saturated.
func (b *DistanceButton) Animating() bool {
	return b.transitionTimer.Valid() && b.transitionTimer.Elapsed() <= TRANSITION_DELAY+TRANSITION_DURATION
}

func (b *DistanceButton) Opacities() (textOpacity float64, imageOpacity float64) {
	return ComputeOpacities(b.transitionTimer.Elapsed())
}

func (b *DistanceButton) Profile() (index int, profile Profile) {
	return b.profileIndex, b.profile
}

func (b *DistanceButton) TrafficModeActive() bool {
	return b.trafficModeActive
}

func (b *DistanceButton) Pressed() {
	utils.Logwe(b.paramsMemory.PutBool(params.ONROAD_DISTANCE_BUTTON_PRESSED, true))
}

func (b *DistanceButton) Released() {
	utils.Logwe(b.paramsMemory.PutBool(params.ONROAD_DISTANCE_BUTTON_PRESSED, false))
}

func (b *DistanceButton) Size() image.Point {
	return image.Pt(BTN_SIZE*3/2, BTN_SIZE*3/2)
}

func (b *DistanceButton) Paint(s Surface) {
	textOpacity, imageOpacity := b.Opacities()
	size := b.Size()

	if b.profile.Text != "" {
		textRect := image.Rect(-25, 0, size.X-25, size.Y+BTN_SIZE/2)
		s.DrawText(b.profile.Text, textRect, color.RGBA{255, 255, 255, 255}, textOpacity)
	}

	center := image.Pt(BTN_SIZE/2*5/4, BTN_SIZE)
	DrawIcon(s, center, b.profile.Icon, color.RGBA{}, imageOpacity, 0)
}
