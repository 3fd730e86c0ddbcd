package buttons

import "image/color"

type StatusTag int

const (
	StatusDefault StatusTag = iota
	StatusAlwaysOnLateralActive
	StatusConditionalOverridden
	StatusExperimentalModeActive
	StatusNavigationActive
	StatusTrafficModeActive
	statusCount
)

func (t StatusTag) String() string {
	switch t {
	case StatusDefault:
		return "default"
	case StatusAlwaysOnLateralActive:
		return "always_on_lateral_active"
	case StatusConditionalOverridden:
		return "conditional_overridden"
	case StatusExperimentalModeActive:
		return "experimental_mode_active"
	case StatusNavigationActive:
		return "navigation_active"
	case StatusTrafficModeActive:
		return "traffic_mode_active"
	}
	return "unknown"
}

// ColorTable maps every status tag to a background color. Being an array
// indexed by tag, it cannot be missing an entry.
type ColorTable [statusCount]color.RGBA

func DefaultColorTable() ColorTable {
	return ColorTable{
		StatusDefault:                color.RGBA{0, 0, 0, 166},
		StatusAlwaysOnLateralActive:  color.RGBA{0x0a, 0xba, 0xb5, 0xf1},
		StatusConditionalOverridden:  color.RGBA{0xff, 0xff, 0x00, 0xf1},
		StatusExperimentalModeActive: color.RGBA{0xda, 0x6f, 0x25, 0xf1},
		StatusNavigationActive:       color.RGBA{0x31, 0xa1, 0xee, 0xf1},
		StatusTrafficModeActive:      color.RGBA{0xc9, 0x22, 0x31, 0xf1},
	}
}

// Color falls back to the default entry for tags outside the table.
func (c ColorTable) Color(tag StatusTag) color.RGBA {
	if tag < 0 || tag >= statusCount {
		return c[StatusDefault]
	}
	return c[tag]
}
