package store

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config describes where and how tasks are persisted, plus the few settings
// the optional integrations read.
type Config interface {
	BasePath() string
	Engine() Engine
	LegacyPath() string
	Advice() AdviceConfig
	Identity() Identity
}

// AdviceConfig configures the generative advice client.
type AdviceConfig struct {
	APIKey string `json:"-"`
	Model  string `json:"model,omitempty"`
}

// Identity is the user identity supplied through configuration.
type Identity struct {
	Name   string `json:"name,omitempty"`
	Email  string `json:"email,omitempty"`
	Avatar string `json:"avatar,omitempty"`
}

// LoadConfig reads .unload.yaml (from $UNLOAD_CONFIG_PATH, the working
// directory or the home directory) and UNLOAD_* environment variables. A .env
// file in the working directory is loaded first when present.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()

	viper.SetDefault("path", "~/.unload")
	viper.SetDefault("engine", string(EngineAuto))
	viper.SetDefault("advice.model", "gemini-2.0-flash")
	viper.SetConfigName(".unload")
	viper.SetEnvPrefix("UNLOAD")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if override := os.Getenv("UNLOAD_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}
	viper.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		viper.AddConfigPath(home)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	base, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, err
	}
	legacy := viper.GetString("legacy_path")
	if legacy == "" {
		legacy = filepath.Join(base, "legacy")
	}
	legacy, err = homedir.Expand(legacy)
	if err != nil {
		return nil, err
	}

	return &FileConfig{
		Path:       base,
		EngineName: Engine(viper.GetString("engine")),
		Legacy:     legacy,
		AdviceSettings: AdviceConfig{
			APIKey: viper.GetString("advice.api_key"),
			Model:  viper.GetString("advice.model"),
		},
		User: Identity{
			Name:   viper.GetString("user.name"),
			Email:  viper.GetString("user.email"),
			Avatar: viper.GetString("user.avatar"),
		},
	}, nil
}

// FileConfig is the plain Config implementation. Tests build it directly.
type FileConfig struct {
	Path       string `json:"path"`
	EngineName Engine `json:"engine"`
	Legacy     string `json:"legacyPath,omitempty"`

	AdviceSettings AdviceConfig `json:"advice"`
	User           Identity     `json:"user"`
}

func (f *FileConfig) BasePath() string {
	return f.Path
}

func (f *FileConfig) Engine() Engine {
	if f.EngineName == "" {
		return EngineAuto
	}
	return f.EngineName
}

func (f *FileConfig) LegacyPath() string {
	if f.Legacy == "" && f.Path != "" {
		return filepath.Join(f.Path, "legacy")
	}
	return f.Legacy
}

func (f *FileConfig) Advice() AdviceConfig {
	return f.AdviceSettings
}

func (f *FileConfig) Identity() Identity {
	return f.User
}
