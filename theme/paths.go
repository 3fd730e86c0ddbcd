package theme

import (
	"path/filepath"
)

// ActiveThemePath is the directory the onroad icons are loaded from.
func ActiveThemePath(assetRoot string, holiday string) string {
	if holiday != "" {
		return filepath.Join(assetRoot, "holiday_themes", holiday)
	}
	return filepath.Join(assetRoot, "active_theme")
}

func WheelImagesPath(themePath string) string {
	return filepath.Join(themePath, "images")
}

func SteeringWheelsPath(themeSavePath string) string {
	return filepath.Join(themeSavePath, "steering_wheels")
}
