package params

import (
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/gofrs/flock"
)

var (
	ParamsPath       string = "/data/params/d"
	MemoryParamsPath string = "/dev/shm/params/d"
)

// Durable params
const (
	EXPERIMENTAL_MODE           = "ExperimentalMode"
	EXPERIMENTAL_MODE_CONFIRMED = "ExperimentalModeConfirmed"
	ONROAD_SETTINGS             = "OnroadSettings"
	AVAILABLE_WHEELS            = "AvailableWheels"
)

// Memory params, used for signaling between processes
const (
	CE_STATUS                      = "CEStatus"
	ONROAD_DISTANCE_BUTTON_PRESSED = "OnroadDistanceButtonPressed"
	CURRENT_HOLIDAY_THEME          = "CurrentHolidayTheme"
	UPDATE_WHEEL_IMAGE             = "UpdateWheelImage"
	WHEEL_TO_DOWNLOAD              = "WheelToDownload"
	WHEEL_DOWNLOAD_PROGRESS        = "WheelDownloadProgress"
	CANCEL_WHEEL_DOWNLOAD          = "CancelWheelDownload"
)

// Params is a directory of one-file-per-key values. Writes go through a temp
// file and a rename while holding a lock in the parent directory so readers
// in other processes never observe a partial value.
type Params struct {
	Path string
}

func New() Params {
	return Params{Path: ParamsPath}
}

func NewMemory() Params {
	return Params{Path: MemoryParamsPath}
}

// exists returns whether the given file or directory exists
func Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, errors.Wrap(err, "could not check param file stats")
}

func (p Params) EnsureDirectory() {
	err := os.MkdirAll(p.Path, 0o775)
	if err != nil {
		slog.Warn("could not make params directory", "error", err, "directory", p.Path)
	}
}

func IsString(data []byte) bool {
	for _, b := range data {
		if (b < 32 || b > 126) && !(b == 9 || b == 13 || b == 10) {
			return false
		}
	}
	return true
}

func (p Params) Keys() ([]string, error) {
	files, err := os.ReadDir(p.Path)
	if err != nil {
		return nil, errors.Wrap(err, "could not read params directory")
	}

	keys := []string{}
	for _, file := range files {
		name := file.Name()
		if file.Type().IsRegular() && name[0] != '.' {
			keys = append(keys, name)
		}
	}
	sort.Strings(keys)

	return keys, nil
}

func (p Params) KeyPath(key string) string {
	return filepath.Join(p.Path, key)
}

func (p Params) Get(key string) ([]byte, error) {
	return os.ReadFile(p.KeyPath(key))
}

// GetBool reports false for missing or unreadable keys.
func (p Params) GetBool(key string) bool {
	data, err := p.Get(key)
	if err != nil {
		return false
	}
	return strings.TrimSpace(string(data)) == "1"
}

func (p Params) GetInt(key string) (int, error) {
	data, err := p.Get(key)
	if err != nil {
		return 0, errors.Wrapf(err, "could not read param %s", key)
	}
	val, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, errors.Wrapf(err, "could not parse param %s as int", key)
	}
	return val, nil
}

func (p Params) PutBool(key string, val bool) error {
	if val {
		return p.Put(key, []byte("1"))
	}
	return p.Put(key, []byte("0"))
}

func (p Params) PutInt(key string, val int) error {
	return p.Put(key, []byte(strconv.Itoa(val)))
}

func (p Params) Put(key string, data []byte) error {
	path := p.KeyPath(key)
	file, err := os.CreateTemp(p.Path, ".tmp_value_"+key)
	if err != nil {
		return errors.Wrap(err, "could not create temp param file")
	}
	tmpName := file.Name()
	defer os.Remove(tmpName)

	_, err = file.Write(data)
	if err != nil {
		file.Close()
		return errors.Wrap(err, "could not write data to temp param file")
	}

	err = file.Sync()
	if err != nil {
		file.Close()
		return errors.Wrap(err, "could not fsync temp param file")
	}
	err = file.Close()
	if err != nil {
		return errors.Wrap(err, "could not close temp param file")
	}

	unlock, err := p.lock()
	if err != nil {
		return err
	}
	defer unlock()

	err = os.Rename(tmpName, path)
	if err != nil {
		return errors.Wrap(err, "could not move temp param file to persistent location")
	}

	return p.syncDirectory()
}

func (p Params) Remove(key string) error {
	unlock, err := p.lock()
	if err != nil {
		return err
	}
	defer unlock()

	err = os.Remove(p.KeyPath(key))
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "could not remove param file")
	}

	return p.syncDirectory()
}

func (p Params) lock() (unlock func(), err error) {
	lockPath := filepath.Join(filepath.Dir(p.Path), ".lock")
	fileLock := flock.New(lockPath)

	retries := 0
	for {
		locked, err := fileLock.TryLock()
		if err != nil {
			return nil, errors.Wrap(err, "could not try locking params directory")
		}
		if locked {
			break
		}
		retries += 1
		if retries > 30 {
			// try to force the lock to be removed
			if err := os.Remove(lockPath); err != nil {
				slog.Debug("failed to force delete params lock", "error", err)
			}
		}
		if retries > 50 {
			return nil, errors.New("could not obtain lock")
		}
		// if we didn't obtain the lock let's try again after a short delay
		time.Sleep(1 * time.Millisecond)
	}

	return func() {
		if err := os.Remove(lockPath); err != nil {
			slog.Error("could not remove params lock file", "error", err)
		}
		if err := fileLock.Unlock(); err != nil {
			slog.Error("could not unlock params directory", "error", err)
		}
	}, nil
}

func (p Params) syncDirectory() error {
	directory, err := os.Open(p.Path)
	if err != nil {
		return errors.Wrap(err, "could not open params directory")
	}
	defer directory.Close()

	err = directory.Sync()
	if err != nil {
		return errors.Wrap(err, "could not fsync params directory")
	}

	return nil
}
