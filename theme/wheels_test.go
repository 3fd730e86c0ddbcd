package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pfeifer.dev/onroad/params"
)

func writeFile(t *testing.T, path string, data string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o775))
	require.NoError(t, os.WriteFile(path, []byte(data), 0o664))
}

func newStore(t *testing.T) params.Params {
	t.Helper()
	p := params.Params{Path: filepath.Join(t.TempDir(), "d")}
	p.EnsureDirectory()
	return p
}

func TestWheelName(t *testing.T) {
	assert.Equal(t, "Frog Wheel", WheelName("frog_wheel.png"))
	assert.Equal(t, "Rocket", WheelName("/x/rocket.gif"))
	assert.Equal(t, "frog_wheel", WheelFile("Frog Wheel"))
}

func TestAvailableWheels(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "frog_wheel.png"), "png")
	writeFile(t, filepath.Join(dir, "rocket.gif"), "gif")
	writeFile(t, filepath.Join(dir, "rocket.png"), "png")
	writeFile(t, filepath.Join(dir, STOCK_WHEEL_FILE), "stock")

	wheels, err := AvailableWheels(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"Frog Wheel", "None", "Rocket", "Stock"}, wheels)

	wheels, err = AvailableWheels(filepath.Join(dir, "missing"))
	require.NoError(t, err)
	assert.Equal(t, []string{"None", "Stock"}, wheels)
}

func TestUpdateWheelParams(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "frog_wheel.png"), "png")
	durable := newStore(t)

	_, err := UpdateWheelParams(durable, dir)
	require.NoError(t, err)

	data, err := durable.Get(params.AVAILABLE_WHEELS)
	require.NoError(t, err)
	assert.Equal(t, "Frog Wheel,None,Stock", string(data))
}

func TestSelectWheel(t *testing.T) {
	wheelsDir := t.TempDir()
	themePath := t.TempDir()
	memory := newStore(t)
	imagesDir := WheelImagesPath(themePath)

	writeFile(t, filepath.Join(wheelsDir, "rocket.gif"), "gif")
	writeFile(t, filepath.Join(wheelsDir, STOCK_WHEEL_FILE), "stock")
	writeFile(t, filepath.Join(imagesDir, "wheel.png"), "old")

	require.NoError(t, SelectWheel(memory, wheelsDir, themePath, "Rocket"))
	assert.NoFileExists(t, filepath.Join(imagesDir, "wheel.png"))
	assert.FileExists(t, filepath.Join(imagesDir, "wheel.gif"))
	assert.True(t, memory.GetBool(params.UPDATE_WHEEL_IMAGE))

	require.NoError(t, SelectWheel(memory, wheelsDir, themePath, WHEEL_STOCK))
	assert.NoFileExists(t, filepath.Join(imagesDir, "wheel.gif"))
	data, err := os.ReadFile(filepath.Join(imagesDir, "wheel.png"))
	require.NoError(t, err)
	assert.Equal(t, "stock", string(data))

	require.NoError(t, SelectWheel(memory, wheelsDir, themePath, WHEEL_NONE))
	assert.NoFileExists(t, filepath.Join(imagesDir, "wheel.png"))
	assert.NoFileExists(t, filepath.Join(imagesDir, "wheel.gif"))
}

func TestSelectMissingWheel(t *testing.T) {
	memory := newStore(t)
	err := SelectWheel(memory, t.TempDir(), t.TempDir(), "Nope")
	assert.Error(t, err)
	assert.False(t, memory.GetBool(params.UPDATE_WHEEL_IMAGE))
}
