package theme

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"pfeifer.dev/onroad/params"
)

const (
	PROGRESS_EXISTS    = "Wheel already exists..."
	PROGRESS_VERIFYING = "Verifying authenticity..."
	PROGRESS_DONE      = "Downloaded!"
	PROGRESS_CANCELLED = "Download cancelled..."
	PROGRESS_NOT_FOUND = "Failed: Wheel not found..."
)

var (
	ErrCancelled = errors.New("download cancelled")
	errNotFound  = errors.New("wheel not found")
)

// ProgressStore is the memory params scope the downloader reports through.
type ProgressStore interface {
	Put(key string, data []byte) error
	Remove(key string) error
	GetBool(key string) bool
}

type WheelDownloader struct {
	Progress  ProgressStore
	WheelsDir string
	BaseURL   string
	Client    *http.Client
}

func (d *WheelDownloader) report(progress string) {
	err := d.Progress.Put(params.WHEEL_DOWNLOAD_PROGRESS, []byte(progress))
	if err != nil {
		slog.Warn("could not report wheel download progress", "error", err, "progress", progress)
	}
}

func (d *WheelDownloader) finish() {
	if err := d.Progress.Remove(params.WHEEL_TO_DOWNLOAD); err != nil {
		slog.Warn("could not clear wheel to download", "error", err)
	}
}

func (d *WheelDownloader) client() *http.Client {
	if d.Client != nil {
		return d.Client
	}
	return http.DefaultClient
}

// Download fetches the named wheel, trying a png before a gif.
func (d *WheelDownloader) Download(ctx context.Context, name string) error {
	defer d.finish()

	file := WheelFile(name)
	for _, ext := range wheelExtensions {
		exists, err := params.Exists(filepath.Join(d.WheelsDir, file+ext))
		if err != nil {
			return err
		}
		if exists {
			slog.Info("wheel already exists, skipping download", "wheel", name)
			d.report(PROGRESS_EXISTS)
			return nil
		}
	}

	err := os.MkdirAll(d.WheelsDir, 0o775)
	if err != nil {
		return errors.Wrap(err, "could not create steering wheels directory")
	}

	for _, ext := range wheelExtensions {
		err = d.downloadFile(ctx, d.BaseURL+file+ext, filepath.Join(d.WheelsDir, file+ext))
		if errors.Is(err, errNotFound) {
			continue
		}
		if errors.Is(err, ErrCancelled) {
			d.report(PROGRESS_CANCELLED)
			return err
		}
		if err != nil {
			return err
		}
		slog.Info("wheel downloaded", "wheel", name, "file", file+ext)
		d.report(PROGRESS_DONE)
		return nil
	}

	d.report(PROGRESS_NOT_FOUND)
	return errors.Errorf("wheel %s was not found", name)
}

type progressWriter struct {
	d          *WheelDownloader
	total      int64
	downloaded int64
	last       int
}

func (w *progressWriter) Write(p []byte) (int, error) {
	if w.d.Progress.GetBool(params.CANCEL_WHEEL_DOWNLOAD) {
		return 0, ErrCancelled
	}
	w.downloaded += int64(len(p))
	if w.total > 0 {
		percent := int(w.downloaded * 100 / w.total)
		if percent != w.last {
			w.last = percent
			if percent < 100 {
				w.d.report(fmt.Sprintf("%d%%", percent))
			} else {
				w.d.report(PROGRESS_VERIFYING)
			}
		}
	}
	return len(p), nil
}

func (d *WheelDownloader) downloadFile(ctx context.Context, url string, path string) (err error) {
	slog.Info("Downloading", "url", url)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return errors.Wrap(err, "could not create download request")
	}

	resp, err := d.client().Do(req)
	if err != nil {
		d.report("Failed: Connection dropped...")
		return errors.Wrap(err, "could not download the file data")
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return errNotFound
	}
	if resp.StatusCode != http.StatusOK {
		d.report(fmt.Sprintf("Failed: Server error (%d)", resp.StatusCode))
		return errors.Errorf("download received bad status: %s", resp.Status)
	}

	out, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "could not create file for download")
	}
	defer func() {
		out.Close()
		if err != nil {
			os.Remove(path)
		}
	}()

	progress := &progressWriter{d: d, total: resp.ContentLength, last: -1}
	_, err = io.Copy(io.MultiWriter(progress, out), resp.Body)
	if err != nil {
		if errors.Is(err, ErrCancelled) {
			return ErrCancelled
		}
		return errors.Wrap(err, "could not write download data to file")
	}
	err = out.Sync()
	if err != nil {
		return errors.Wrap(err, "could not fsync downloaded file")
	}

	return nil
}
