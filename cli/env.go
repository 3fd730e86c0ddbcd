package cli

import (
	"net/http"
	"time"

	"pfeifer.dev/onroad/config"
	"pfeifer.dev/onroad/params"
	"pfeifer.dev/onroad/settings"
	"pfeifer.dev/onroad/theme"
)

// stores returns the durable and memory params scopes from config.
func stores() (durable params.Params, memory params.Params) {
	durable = params.Params{Path: config.GetString("paths.params")}
	memory = params.Params{Path: config.GetString("paths.memoryParams")}
	durable.EnsureDirectory()
	memory.EnsureDirectory()
	return durable, memory
}

func assetRoot() string {
	return config.GetString("paths.assets")
}

func wheelsDir() string {
	return theme.SteeringWheelsPath(config.GetString("paths.themes"))
}

// themePath resolves the theme the onroad UI is currently drawing from.
func themePath(now time.Time) string {
	if !settings.Settings.HolidayThemes {
		return theme.ActiveThemePath(assetRoot(), "")
	}
	holiday, _ := theme.CurrentHoliday(now)
	return theme.ActiveThemePath(assetRoot(), holiday.Name)
}

func newDownloader(memory params.Params) *theme.WheelDownloader {
	return &theme.WheelDownloader{
		Progress:  memory,
		WheelsDir: wheelsDir(),
		BaseURL:   config.GetString("wheels.url"),
		Client:    &http.Client{Timeout: 60 * time.Second},
	}
}
