package cereal

import (
	"math"

	"capnproto.org/go/capnp/v3"
	"pfeifer.dev/onroad/buttons"
)

type OnroadState capnp.Struct

const OnroadState_TypeID = 0xa4c6e0f1b2d38e57

var onroadStateSize = capnp.ObjectSize{DataSize: 24, PointerCount: 0}

type LongitudinalPersonality uint16

const (
	LongitudinalPersonality_aggressive LongitudinalPersonality = 0
	LongitudinalPersonality_standard   LongitudinalPersonality = 1
	LongitudinalPersonality_relaxed    LongitudinalPersonality = 2
)

func (p LongitudinalPersonality) String() string {
	switch p {
	case LongitudinalPersonality_aggressive:
		return "aggressive"
	case LongitudinalPersonality_standard:
		return "standard"
	case LongitudinalPersonality_relaxed:
		return "relaxed"
	}
	return "unknown"
}

func NewRootOnroadState(s *capnp.Segment) (OnroadState, error) {
	st, err := capnp.NewRootStruct(s, onroadStateSize)
	return OnroadState(st), err
}

func ReadRootOnroadState(msg *capnp.Message) (OnroadState, error) {
	root, err := msg.Root()
	return OnroadState(root.Struct()), err
}

func (s OnroadState) Engageable() bool           { return capnp.Struct(s).Bit(0) }
func (s OnroadState) SetEngageable(v bool)       { capnp.Struct(s).SetBit(0, v) }
func (s OnroadState) Enabled() bool              { return capnp.Struct(s).Bit(1) }
func (s OnroadState) SetEnabled(v bool)          { capnp.Struct(s).SetBit(1, v) }
func (s OnroadState) ExperimentalMode() bool     { return capnp.Struct(s).Bit(2) }
func (s OnroadState) SetExperimentalMode(v bool) { capnp.Struct(s).SetBit(2, v) }

func (s OnroadState) AlwaysOnLateralActive() bool     { return capnp.Struct(s).Bit(3) }
func (s OnroadState) SetAlwaysOnLateralActive(v bool) { capnp.Struct(s).SetBit(3, v) }

func (s OnroadState) ConditionalExperimental() bool     { return capnp.Struct(s).Bit(4) }
func (s OnroadState) SetConditionalExperimental(v bool) { capnp.Struct(s).SetBit(4, v) }

func (s OnroadState) NavigateOnOpenpilot() bool     { return capnp.Struct(s).Bit(5) }
func (s OnroadState) SetNavigateOnOpenpilot(v bool) { capnp.Struct(s).SetBit(5, v) }

func (s OnroadState) TrafficModeActive() bool     { return capnp.Struct(s).Bit(6) }
func (s OnroadState) SetTrafficModeActive(v bool) { capnp.Struct(s).SetBit(6, v) }

func (s OnroadState) BigMap() bool            { return capnp.Struct(s).Bit(7) }
func (s OnroadState) SetBigMap(v bool)        { capnp.Struct(s).SetBit(7, v) }
func (s OnroadState) MapOpen() bool           { return capnp.Struct(s).Bit(8) }
func (s OnroadState) SetMapOpen(v bool)       { capnp.Struct(s).SetBit(8, v) }
func (s OnroadState) RotatingWheel() bool     { return capnp.Struct(s).Bit(9) }
func (s OnroadState) SetRotatingWheel(v bool) { capnp.Struct(s).SetBit(9, v) }

func (s OnroadState) UseKaofuiIcons() bool     { return capnp.Struct(s).Bit(10) }
func (s OnroadState) SetUseKaofuiIcons(v bool) { capnp.Struct(s).SetBit(10, v) }

func (s OnroadState) LongitudinalControl() bool     { return capnp.Struct(s).Bit(11) }
func (s OnroadState) SetLongitudinalControl(v bool) { capnp.Struct(s).SetBit(11, v) }

func (s OnroadState) ExperimentalModeConfirmed() bool     { return capnp.Struct(s).Bit(12) }
func (s OnroadState) SetExperimentalModeConfirmed(v bool) { capnp.Struct(s).SetBit(12, v) }

func (s OnroadState) ConditionalStatus() int32 {
	return int32(capnp.Struct(s).Uint32(4))
}

func (s OnroadState) SetConditionalStatus(v int32) {
	capnp.Struct(s).SetUint32(4, uint32(v))
}

func (s OnroadState) SteeringAngleDeg() float32 {
	return math.Float32frombits(capnp.Struct(s).Uint32(8))
}

func (s OnroadState) SetSteeringAngleDeg(v float32) {
	capnp.Struct(s).SetUint32(8, math.Float32bits(v))
}

// personality fills the 16 bit hole the bools leave in the first word
func (s OnroadState) Personality() LongitudinalPersonality {
	return LongitudinalPersonality(capnp.Struct(s).Uint16(2))
}

func (s OnroadState) SetPersonality(v LongitudinalPersonality) {
	capnp.Struct(s).SetUint16(2, uint16(v))
}

func (s OnroadState) LogMonoTime() uint64 {
	return capnp.Struct(s).Uint64(16)
}

func (s OnroadState) SetLogMonoTime(v uint64) {
	capnp.Struct(s).SetUint64(16, v)
}

// Snapshot copies the message into the plain struct the buttons consume.
func (s OnroadState) Snapshot() buttons.Snapshot {
	return buttons.Snapshot{
		Engageable:                s.Engageable(),
		Enabled:                   s.Enabled(),
		ExperimentalMode:          s.ExperimentalMode(),
		AlwaysOnLateralActive:     s.AlwaysOnLateralActive(),
		ConditionalExperimental:   s.ConditionalExperimental(),
		ConditionalStatus:         int(s.ConditionalStatus()),
		NavigateOnOpenpilot:       s.NavigateOnOpenpilot(),
		TrafficModeActive:         s.TrafficModeActive(),
		BigMap:                    s.BigMap(),
		MapOpen:                   s.MapOpen(),
		RotatingWheel:             s.RotatingWheel(),
		SteeringAngleDeg:          s.SteeringAngleDeg(),
		Personality:               int(s.Personality()),
		UseKaofuiIcons:            s.UseKaofuiIcons(),
		LongitudinalControl:       s.LongitudinalControl(),
		ExperimentalModeConfirmed: s.ExperimentalModeConfirmed(),
	}
}

// SetSnapshot fills the message from a snapshot.
func (s OnroadState) SetSnapshot(snap buttons.Snapshot) {
	s.SetEngageable(snap.Engageable)
	s.SetEnabled(snap.Enabled)
	s.SetExperimentalMode(snap.ExperimentalMode)
	s.SetAlwaysOnLateralActive(snap.AlwaysOnLateralActive)
	s.SetConditionalExperimental(snap.ConditionalExperimental)
	s.SetConditionalStatus(int32(snap.ConditionalStatus))
	s.SetNavigateOnOpenpilot(snap.NavigateOnOpenpilot)
	s.SetTrafficModeActive(snap.TrafficModeActive)
	s.SetBigMap(snap.BigMap)
	s.SetMapOpen(snap.MapOpen)
	s.SetRotatingWheel(snap.RotatingWheel)
	s.SetSteeringAngleDeg(snap.SteeringAngleDeg)
	s.SetPersonality(LongitudinalPersonality(snap.Personality))
	s.SetUseKaofuiIcons(snap.UseKaofuiIcons)
	s.SetLongitudinalControl(snap.LongitudinalControl)
	s.SetExperimentalModeConfirmed(snap.ExperimentalModeConfirmed)
}
