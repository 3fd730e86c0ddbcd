package theme

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pfeifer.dev/onroad/params"
)

func progress(t *testing.T, memory params.Params) string {
	t.Helper()
	data, err := memory.Get(params.WHEEL_DOWNLOAD_PROGRESS)
	require.NoError(t, err)
	return string(data)
}

func newDownloader(t *testing.T, handler http.HandlerFunc) (*WheelDownloader, params.Params) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	memory := newStore(t)
	require.NoError(t, memory.Put(params.WHEEL_TO_DOWNLOAD, []byte("Rocket")))
	return &WheelDownloader{
		Progress:  memory,
		WheelsDir: filepath.Join(t.TempDir(), "steering_wheels"),
		BaseURL:   server.URL + "/",
		Client:    server.Client(),
	}, memory
}

func TestDownloadFallsBackToGif(t *testing.T) {
	var requested []string
	d, memory := newDownloader(t, func(w http.ResponseWriter, r *http.Request) {
		requested = append(requested, r.URL.Path)
		if strings.HasSuffix(r.URL.Path, ".png") {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte("GIF89a"))
	})

	require.NoError(t, d.Download(context.Background(), "Rocket"))
	assert.Equal(t, []string{"/rocket.png", "/rocket.gif"}, requested)
	assert.Equal(t, PROGRESS_DONE, progress(t, memory))

	data, err := os.ReadFile(filepath.Join(d.WheelsDir, "rocket.gif"))
	require.NoError(t, err)
	assert.Equal(t, "GIF89a", string(data))
	assert.NoFileExists(t, filepath.Join(d.WheelsDir, "rocket.png"))

	exists, err := params.Exists(memory.KeyPath(params.WHEEL_TO_DOWNLOAD))
	require.NoError(t, err)
	assert.False(t, exists, "wheel to download is cleared")
}

func TestDownloadExisting(t *testing.T) {
	called := false
	d, memory := newDownloader(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})
	writeFile(t, filepath.Join(d.WheelsDir, "rocket.png"), "png")

	require.NoError(t, d.Download(context.Background(), "Rocket"))
	assert.False(t, called)
	assert.Equal(t, PROGRESS_EXISTS, progress(t, memory))
}

func TestDownloadServerError(t *testing.T) {
	d, memory := newDownloader(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	assert.Error(t, d.Download(context.Background(), "Rocket"))
	assert.Equal(t, "Failed: Server error (500)", progress(t, memory))
	assert.NoFileExists(t, filepath.Join(d.WheelsDir, "rocket.png"))
}

func TestDownloadNotFound(t *testing.T) {
	d, memory := newDownloader(t, http.NotFound)

	assert.Error(t, d.Download(context.Background(), "Rocket"))
	assert.Equal(t, PROGRESS_NOT_FOUND, progress(t, memory))
}

func TestDownloadCancelled(t *testing.T) {
	d, memory := newDownloader(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("partial"))
	})
	require.NoError(t, memory.PutBool(params.CANCEL_WHEEL_DOWNLOAD, true))

	err := d.Download(context.Background(), "Rocket")
	assert.ErrorIs(t, err, ErrCancelled)
	assert.Equal(t, PROGRESS_CANCELLED, progress(t, memory))
	assert.NoFileExists(t, filepath.Join(d.WheelsDir, "rocket.png"))
}

func TestDownloadProgress(t *testing.T) {
	body := strings.Repeat("x", 1000)
	d, memory := newDownloader(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Length", "1000")
		w.Write([]byte(body))
	})

	require.NoError(t, d.Download(context.Background(), "Rocket"))
	assert.Equal(t, PROGRESS_DONE, progress(t, memory))
	info, err := os.Stat(filepath.Join(d.WheelsDir, "rocket.png"))
	require.NoError(t, err)
	assert.Equal(t, int64(1000), info.Size())
}
