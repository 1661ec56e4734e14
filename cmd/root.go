package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"solarGallery/config"
)

var (
	cfgFile string
	verbose bool
	cfg     = config.DefaultConfig()
)

var rootCmd = &cobra.Command{
	Use:   "solarGallery",
	Short: "A terminal image gallery with a bounded decode cache",
	Long: `solarGallery shows a sequence of images one at a time in the terminal.

Features:
- Import single images, whole folders or a saved catalog
- Keyboard and mouse-swipe navigation that wraps around
- Bounded cache of decoded images with first-in first-out eviction
- Cover art from MP3 files, http(s) image URLs
- Kitty graphics protocol with a half-block fallback

Examples:
  solarGallery view ./sun/
  solarGallery view sun1.png sun2.png
  solarGallery import --out sun.yaml ./sun/
  solarGallery show --catalog sun.yaml --decode`,
	Version:           "1.0.0",
	PersistentPreRunE: initConfig,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.solarGallery.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func initConfig(cmd *cobra.Command, args []string) error {
	loaded, err := config.LoadConfig(cfgFile)
	if err != nil {
		return err
	}
	if err := config.ValidateConfig(loaded); err != nil {
		return err
	}
	cfg = loaded

	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
		return nil
	}
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logrus.SetLevel(level)
	return nil
}
