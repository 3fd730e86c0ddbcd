package theme

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"pfeifer.dev/onroad/params"
)

const (
	WHEEL_STOCK = "Stock"
	WHEEL_NONE  = "None"

	STOCK_WHEEL_FILE = "img_chffr_wheel.png"
)

var wheelExtensions = []string{".png", ".gif"}

// WheelName turns a wheel file name into its display name,
// "frog_wheel.png" becomes "Frog Wheel".
func WheelName(file string) string {
	stem := strings.SplitN(filepath.Base(file), ".", 2)[0]
	return cases.Title(language.English).String(strings.ReplaceAll(stem, "_", " "))
}

// WheelFile is the inverse of WheelName without the extension.
func WheelFile(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "_")
}

// AvailableWheels lists the downloaded wheels plus the built in choices.
func AvailableWheels(wheelsDir string) ([]string, error) {
	wheels := []string{WHEEL_STOCK, WHEEL_NONE}

	files, err := os.ReadDir(wheelsDir)
	if err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "could not read steering wheels directory")
	}

	seen := map[string]bool{}
	for _, file := range files {
		if !file.Type().IsRegular() || file.Name() == STOCK_WHEEL_FILE || strings.HasPrefix(file.Name(), ".") {
			continue
		}
		name := WheelName(file.Name())
		if !seen[name] {
			seen[name] = true
			wheels = append(wheels, name)
		}
	}
	sort.Strings(wheels)
	return wheels, nil
}

type WheelStore interface {
	Put(key string, data []byte) error
	PutBool(key string, val bool) error
}

// UpdateWheelParams stores the wheel list for the settings UI.
func UpdateWheelParams(durable WheelStore, wheelsDir string) ([]string, error) {
	wheels, err := AvailableWheels(wheelsDir)
	if err != nil {
		return nil, err
	}
	err = durable.Put(params.AVAILABLE_WHEELS, []byte(strings.Join(wheels, ",")))
	if err != nil {
		return nil, errors.Wrap(err, "could not store available wheels")
	}
	return wheels, nil
}

// SelectWheel installs a wheel into the theme's images directory and signals
// running UIs to re-resolve their icon. Stock restores the stock wheel and
// None removes the wheel entirely.
func SelectWheel(memory WheelStore, wheelsDir string, themePath string, name string) error {
	imagesDir := WheelImagesPath(themePath)
	err := os.MkdirAll(imagesDir, 0o775)
	if err != nil {
		return errors.Wrap(err, "could not create theme images directory")
	}

	for _, ext := range wheelExtensions {
		err := os.Remove(filepath.Join(imagesDir, "wheel"+ext))
		if err != nil && !os.IsNotExist(err) {
			return errors.Wrap(err, "could not remove current wheel")
		}
	}

	switch name {
	case WHEEL_NONE:
	case WHEEL_STOCK:
		err = copyFile(filepath.Join(wheelsDir, STOCK_WHEEL_FILE), filepath.Join(imagesDir, "wheel.png"))
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
	default:
		found := false
		for _, ext := range wheelExtensions {
			src := filepath.Join(wheelsDir, WheelFile(name)+ext)
			exists, err := params.Exists(src)
			if err != nil {
				return err
			}
			if !exists {
				continue
			}
			if err := copyFile(src, filepath.Join(imagesDir, "wheel"+ext)); err != nil {
				return err
			}
			found = true
			break
		}
		if !found {
			return errors.Errorf("wheel %s is not downloaded", name)
		}
	}

	slog.Info("selected wheel", "wheel", name, "theme", themePath)
	return errors.Wrap(memory.PutBool(params.UPDATE_WHEEL_IMAGE, true), "could not signal wheel update")
}

func copyFile(src string, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return errors.Wrap(err, "could not open wheel")
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return errors.Wrap(err, "could not create wheel image")
	}
	defer out.Close()

	_, err = io.Copy(out, in)
	if err != nil {
		return errors.Wrap(err, "could not copy wheel image")
	}
	return errors.Wrap(out.Sync(), "could not fsync wheel image")
}
