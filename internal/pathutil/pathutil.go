// Package pathutil manages application file paths and locations
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/adrg/xdg"
)

const (
	appDir = "ecofocus"

	// EnvSuffix isolates every file of a run (tests, experiments) from the
	// regular ones.
	EnvSuffix = "ECOFOCUS_ENV"
)

// Paths holds all application path configurations.
type Paths struct {
	configFileName string
	boltFileName   string
	sqliteFileName string
	logFileName    string

	// Computed absolute paths
	configFilePath string
	dataDir        string
	boltFilePath   string
	sqliteFilePath string
	logFilePath    string
	soundsDir      string
}

var (
	paths *Paths
	once  sync.Once
)

// Initialize must be called once at program startup.
func Initialize() error {
	var initErr error

	once.Do(func() {
		p := &Paths{
			configFileName: "config.yml",
			boltFileName:   "ecofocus.db",
			sqliteFileName: "ecofocus.sqlite",
			logFileName:    "ecofocus.log",
		}

		p.applyEnvironmentOverrides(os.Getenv(EnvSuffix))

		initErr = p.computePaths()
		if initErr == nil {
			paths = p
		}
	})

	return initErr
}

// Must panics if paths haven't been initialized.
func Must() *Paths {
	if paths == nil {
		panic("pathutil.Initialize() must be called before accessing paths")
	}

	return paths
}

func ConfigFilePath() string {
	return Must().configFilePath
}

// DBFilePath returns the database file of the named storage backend.
func DBFilePath(backend string) string {
	if backend == "sqlite" {
		return Must().sqliteFilePath
	}

	return Must().boltFilePath
}

// DataDir holds the database, logs, sounds and installed static files.
func DataDir() string {
	return Must().dataDir
}

func LogFilePath() string {
	return Must().logFilePath
}

// SoundsDir is where user supplied ambient sound files are looked up.
func SoundsDir() string {
	return Must().soundsDir
}

func (p *Paths) applyEnvironmentOverrides(env string) {
	env = strings.TrimSpace(env)
	if env == "" {
		return
	}

	p.configFileName = fmt.Sprintf("config_%s.yml", env)
	p.boltFileName = fmt.Sprintf("ecofocus_%s.db", env)
	p.sqliteFileName = fmt.Sprintf("ecofocus_%s.sqlite", env)
	p.logFileName = fmt.Sprintf("ecofocus_%s.log", env)
}

func (p *Paths) computePaths() error {
	var err error

	p.configFilePath, err = xdg.ConfigFile(filepath.Join(appDir, p.configFileName))
	if err != nil {
		return err
	}

	p.boltFilePath, err = xdg.DataFile(filepath.Join(appDir, p.boltFileName))
	if err != nil {
		return err
	}

	p.dataDir = filepath.Dir(p.boltFilePath)
	p.sqliteFilePath = filepath.Join(p.dataDir, p.sqliteFileName)
	p.logFilePath = filepath.Join(p.dataDir, "log", p.logFileName)
	p.soundsDir = filepath.Join(p.dataDir, "sounds")

	return nil
}

// StripExtension returns the input file name without its extension.
func StripExtension(fileName string) string {
	return fileName[:len(fileName)-len(filepath.Ext(fileName))]
}
