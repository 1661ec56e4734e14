package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"solarGallery/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the solarGallery config file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with default values",
	Run: func(cmd *cobra.Command, args []string) {
		path, err := config.CreateDefaultConfig()
		if err != nil {
			logrus.Fatalf("Failed to create config: %v", err)
		}
		fmt.Printf("Created %s\n", path)
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Run: func(cmd *cobra.Command, args []string) {
		tw := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
		fmt.Fprintf(tw, "default_directory:\t%s\n", cfg.DefaultDirectory)
		fmt.Fprintf(tw, "extensions:\t%v\n", cfg.Extensions)
		fmt.Fprintf(tw, "recursive_import:\t%t\n", cfg.RecursiveImport)
		fmt.Fprintf(tw, "cache_capacity:\t%d\n", cfg.CacheCapacity)
		fmt.Fprintf(tw, "swipe_threshold:\t%v\n", cfg.SwipeThreshold)
		fmt.Fprintf(tw, "max_file_size:\t%d\n", cfg.MaxFileSize)
		fmt.Fprintf(tw, "max_dimension:\t%d\n", cfg.MaxDimension)
		fmt.Fprintf(tw, "enable_image_resize:\t%t\n", cfg.EnableImageResize)
		fmt.Fprintf(tw, "render_mode:\t%s\n", cfg.RenderMode)
		fmt.Fprintf(tw, "log_level:\t%s\n", cfg.LogLevel)
		fmt.Fprintf(tw, "http_timeout:\t%s\n", cfg.HTTPTimeout)
		tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}
