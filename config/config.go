package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"solarGallery/gallery"
	"solarGallery/utils"
)

const (
	configName = ".solarGallery"
	envPrefix  = "SOLARGALLERY"
)

type Config struct {
	DefaultDirectory string   `mapstructure:"default_directory"`
	Extensions       []string `mapstructure:"extensions"`
	RecursiveImport  bool     `mapstructure:"recursive_import"`

	CacheCapacity  int     `mapstructure:"cache_capacity"`
	SwipeThreshold float64 `mapstructure:"swipe_threshold"`

	MaxFileSize       int64  `mapstructure:"max_file_size"`
	MaxDimension      int    `mapstructure:"max_dimension"`
	EnableImageResize bool   `mapstructure:"enable_image_resize"`
	RenderMode        string `mapstructure:"render_mode"`

	LogLevel    string        `mapstructure:"log_level"`
	HTTPTimeout time.Duration `mapstructure:"http_timeout"`
}

func DefaultConfig() *Config {
	return &Config{
		DefaultDirectory:  ".",
		Extensions:        append([]string(nil), utils.DefaultExtensions...),
		RecursiveImport:   false,
		CacheCapacity:     gallery.DefaultCacheCapacity,
		SwipeThreshold:    gallery.DefaultSwipeThreshold,
		MaxFileSize:       100 * 1024 * 1024, // 100MB
		MaxDimension:      2048,
		EnableImageResize: true,
		RenderMode:        "auto",
		LogLevel:          "info",
		HTTPTimeout:       15 * time.Second,
	}
}

func setDefaults(v *viper.Viper, config *Config) {
	v.SetDefault("default_directory", config.DefaultDirectory)
	v.SetDefault("extensions", config.Extensions)
	v.SetDefault("recursive_import", config.RecursiveImport)
	v.SetDefault("cache_capacity", config.CacheCapacity)
	v.SetDefault("swipe_threshold", config.SwipeThreshold)
	v.SetDefault("max_file_size", config.MaxFileSize)
	v.SetDefault("max_dimension", config.MaxDimension)
	v.SetDefault("enable_image_resize", config.EnableImageResize)
	v.SetDefault("render_mode", config.RenderMode)
	v.SetDefault("log_level", config.LogLevel)
	v.SetDefault("http_timeout", config.HTTPTimeout)
}

// LoadConfig reads cfgFile, or .solarGallery.yaml from the home directory or
// the working directory when cfgFile is empty. Environment variables prefixed
// SOLARGALLERY_ override file values.
func LoadConfig(cfgFile string) (*Config, error) {
	return Load(viper.New(), cfgFile)
}

func Load(v *viper.Viper, cfgFile string) (*Config, error) {
	config := DefaultConfig()
	setDefaults(v, config)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			return nil, fmt.Errorf("failed to find home directory: %w", err)
		}
		v.AddConfigPath(home)
		v.AddConfigPath(".")
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	config.Extensions = utils.NormalizeExtensions(config.Extensions)

	return config, nil
}

func SaveConfig(config *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.Set("default_directory", config.DefaultDirectory)
	v.Set("extensions", config.Extensions)
	v.Set("recursive_import", config.RecursiveImport)
	v.Set("cache_capacity", config.CacheCapacity)
	v.Set("swipe_threshold", config.SwipeThreshold)
	v.Set("max_file_size", config.MaxFileSize)
	v.Set("max_dimension", config.MaxDimension)
	v.Set("enable_image_resize", config.EnableImageResize)
	v.Set("render_mode", config.RenderMode)
	v.Set("log_level", config.LogLevel)
	v.Set("http_timeout", config.HTTPTimeout.String())

	return v.WriteConfig()
}

func GetConfigPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, configName+".yaml"), nil
}

func CreateDefaultConfig() (string, error) {
	path, err := GetConfigPath()
	if err != nil {
		return "", err
	}
	return path, SaveConfig(DefaultConfig(), path)
}

func ValidateConfig(config *Config) error {
	validLogLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLogLevels, config.LogLevel) {
		return fmt.Errorf("invalid log level: %s", config.LogLevel)
	}

	validRenderModes := []string{"auto", "blocks", "kitty"}
	if !contains(validRenderModes, config.RenderMode) {
		return fmt.Errorf("invalid render mode: %s", config.RenderMode)
	}

	if config.CacheCapacity < 1 {
		return fmt.Errorf("cache_capacity must be at least 1, got %d", config.CacheCapacity)
	}
	if config.SwipeThreshold < 0 {
		return fmt.Errorf("swipe_threshold must not be negative, got %v", config.SwipeThreshold)
	}
	if len(config.Extensions) == 0 {
		return fmt.Errorf("at least one image extension is required")
	}

	return nil
}

func contains(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}
