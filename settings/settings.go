package settings

import (
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"pfeifer.dev/onroad/params"
	"pfeifer.dev/onroad/utils"
)

var (
	Settings = OnroadSettings{}
)

// Store is where settings are persisted.
type Store interface {
	Get(key string) ([]byte, error)
	Put(key string, data []byte) error
}

type OnroadSettings struct {
	LogLevel      string `json:"log_level"`
	LeadInfo      bool   `json:"lead_info"`
	HolidayThemes bool   `json:"holiday_themes"`
	WheelIcon     string `json:"wheel_icon"`
}

func (s *OnroadSettings) Default() {
	s.LogLevel = "error"
	s.LeadInfo = false
	s.HolidayThemes = true
	s.WheelIcon = "Stock"
}

func (s *OnroadSettings) Load(store Store) (success bool) {
	s.Default() // set defaults so settings not already in param are defaulted
	data, err := store.Get(params.ONROAD_SETTINGS)
	if err != nil {
		utils.Logde(err)
		s.setLogLevel()
		return false
	}

	err = s.Unmarshal(data)
	if err != nil {
		utils.Loge(err)
		s.setLogLevel()
		return false
	}

	s.setLogLevel()

	return true
}

func (s *OnroadSettings) Unmarshal(data []byte) error {
	return json.Unmarshal(data, s)
}

func (s *OnroadSettings) LoadWithRetries(store Store, tries int) {
	for range tries {
		if s.Load(store) {
			break
		}
		time.Sleep(1 * time.Second)
	}
	s.Save(store)
}

func (s *OnroadSettings) Save(store Store) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		utils.Loge(err)
		return
	}
	err = store.Put(params.ONROAD_SETTINGS, data)
	if err != nil {
		utils.Loge(err)
		return
	}
}

func (s *OnroadSettings) SetLogLevel(level string) {
	s.LogLevel = level
	s.setLogLevel()
}

func (s *OnroadSettings) setLogLevel() {
	slog.SetLogLoggerLevel(ParseLogLevel(s.LogLevel))
}

func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelError
}
