package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"solarGallery/gallery"
	"solarGallery/tui"
)

var viewCatalog string

var viewCmd = &cobra.Command{
	Use:   "view [paths...]",
	Short: "Launch the interactive image viewer",
	Long: `Opens the terminal viewer over images, folders, URLs and/or a catalog file.
With no arguments the configured default_directory is used.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 && viewCatalog == "" {
			args = []string{cfg.DefaultDirectory}
		}

		g := newGallery(cfg)
		if err := populate(cfg, g, viewCatalog, args); err != nil {
			logrus.Fatal(err)
		}
		if g.Count() == 0 {
			logrus.Info("No images found")
		}

		swipe := gallery.NewSwipeInterpreter(tui.SurfaceImage, cfg.SwipeThreshold)
		renderer := tui.NewArtworkRenderer(cfg.RenderMode)
		if err := tui.Run(g, swipe, renderer); err != nil {
			logrus.Fatalf("Viewer exited with error: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(viewCmd)
	viewCmd.Flags().StringVar(&viewCatalog, "catalog", "", "catalog file to load before the paths")
}
