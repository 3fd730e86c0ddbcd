package settings

import (
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pfeifer.dev/onroad/params"
)

func newTestStore(t *testing.T) params.Params {
	t.Helper()
	p := params.Params{Path: filepath.Join(t.TempDir(), "d")}
	p.EnsureDirectory()
	return p
}

func TestLoad_MissingParamUsesDefaults(t *testing.T) {
	store := newTestStore(t)

	s := OnroadSettings{LogLevel: "debug", WheelIcon: "Frog"}
	assert.False(t, s.Load(store))
	assert.Equal(t, "error", s.LogLevel)
	assert.Equal(t, "Stock", s.WheelIcon)
	assert.True(t, s.HolidayThemes)
}

func TestSaveThenLoad(t *testing.T) {
	store := newTestStore(t)
	t.Cleanup(func() { slog.SetLogLoggerLevel(slog.LevelInfo) })

	s := OnroadSettings{}
	s.Default()
	s.LeadInfo = true
	s.WheelIcon = "Rocket"
	s.LogLevel = "debug"
	s.Save(store)

	loaded := OnroadSettings{}
	require.True(t, loaded.Load(store))
	assert.Equal(t, s, loaded)
}

func TestLoad_PartialJsonKeepsDefaults(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Put(params.ONROAD_SETTINGS, []byte(`{"lead_info": true}`)))

	s := OnroadSettings{}
	require.True(t, s.Load(store))
	assert.True(t, s.LeadInfo)
	assert.Equal(t, "Stock", s.WheelIcon)
}

func TestLoad_MalformedJson(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Put(params.ONROAD_SETTINGS, []byte(`{"lead_info":`)))

	s := OnroadSettings{}
	assert.False(t, s.Load(store))
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLogLevel("DEBUG"))
	assert.Equal(t, slog.LevelInfo, ParseLogLevel("info"))
	assert.Equal(t, slog.LevelWarn, ParseLogLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLogLevel("error"))
	assert.Equal(t, slog.LevelError, ParseLogLevel("verbose"))
}
