package store

import (
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config exposes where the journal lives on disk and how to reach the remote
// sync document.
type Config interface {
	BasePath() string
	Sync() SyncConfig
}

// SyncConfig describes the remote blob store holding the sync document.
type SyncConfig struct {
	Bucket   string `json:"bucket"`
	Region   string `json:"region"`
	Profile  string `json:"profile"`
	Document string `json:"document"`
}

// Configured reports whether a remote has been set up at all.
func (s SyncConfig) Configured() bool {
	return s.Bucket != ""
}

// LoadConfig reads the .zenbullet config file (current directory or
// $ZENBULLET_CONFIG_PATH) with ZENBULLET_* environment overrides.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.zenbullet.db")
	viper.SetDefault("sync.document", "zenbullet_backup.json")
	viper.SetConfigName(".zenbullet") // .yaml is implicit
	viper.SetEnvPrefix("ZENBULLET")
	viper.AutomaticEnv()

	if override := os.Getenv("ZENBULLET_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}

	return &fileConfig{
		Path: path,
		SyncConf: SyncConfig{
			Bucket:   viper.GetString("sync.bucket"),
			Region:   viper.GetString("sync.region"),
			Profile:  viper.GetString("sync.profile"),
			Document: viper.GetString("sync.document"),
		},
	}, nil
}

type fileConfig struct {
	Path     string     `json:"path"`
	SyncConf SyncConfig `json:"sync"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) Sync() SyncConfig {
	return f.SyncConf
}
