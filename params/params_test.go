package params

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestParams(t *testing.T) Params {
	t.Helper()
	p := Params{Path: filepath.Join(t.TempDir(), "d")}
	p.EnsureDirectory()
	return p
}

func TestPutGetBool(t *testing.T) {
	p := newTestParams(t)

	assert.False(t, p.GetBool(EXPERIMENTAL_MODE), "missing key reads as false")

	require.NoError(t, p.PutBool(EXPERIMENTAL_MODE, true))
	assert.True(t, p.GetBool(EXPERIMENTAL_MODE))

	data, err := p.Get(EXPERIMENTAL_MODE)
	require.NoError(t, err)
	assert.Equal(t, "1", string(data))

	require.NoError(t, p.PutBool(EXPERIMENTAL_MODE, false))
	assert.False(t, p.GetBool(EXPERIMENTAL_MODE))
}

func TestPutGetInt(t *testing.T) {
	p := newTestParams(t)

	require.NoError(t, p.PutInt(CE_STATUS, 5))
	val, err := p.GetInt(CE_STATUS)
	require.NoError(t, err)
	assert.Equal(t, 5, val)

	_, err = p.GetInt("Missing")
	assert.Error(t, err)

	require.NoError(t, p.Put("Garbage", []byte("abc")))
	_, err = p.GetInt("Garbage")
	assert.Error(t, err)
}

func TestPutLeavesNoTempFilesOrLock(t *testing.T) {
	p := newTestParams(t)

	require.NoError(t, p.Put(ONROAD_SETTINGS, []byte(`{"log_level":"debug"}`)))

	entries, err := os.ReadDir(p.Path)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, ONROAD_SETTINGS, entries[0].Name())

	_, err = os.Stat(filepath.Join(filepath.Dir(p.Path), ".lock"))
	assert.True(t, os.IsNotExist(err), "lock file should be removed after put")
}

func TestRemove(t *testing.T) {
	p := newTestParams(t)

	require.NoError(t, p.PutBool(WHEEL_TO_DOWNLOAD, true))
	require.NoError(t, p.Remove(WHEEL_TO_DOWNLOAD))

	exists, err := Exists(p.KeyPath(WHEEL_TO_DOWNLOAD))
	require.NoError(t, err)
	assert.False(t, exists)

	assert.NoError(t, p.Remove(WHEEL_TO_DOWNLOAD), "removing a missing key is not an error")
}

func TestKeys(t *testing.T) {
	p := newTestParams(t)

	require.NoError(t, p.PutInt(CURRENT_HOLIDAY_THEME, 0))
	require.NoError(t, p.PutBool(CANCEL_WHEEL_DOWNLOAD, false))

	keys, err := p.Keys()
	require.NoError(t, err)
	assert.Equal(t, []string{CANCEL_WHEEL_DOWNLOAD, CURRENT_HOLIDAY_THEME}, keys)
}

func TestIsString(t *testing.T) {
	assert.True(t, IsString([]byte("Traffic\n")))
	assert.False(t, IsString([]byte{0x00, 0x01}))
}
