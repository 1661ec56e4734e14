package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"solarGallery/gallery"
)

var (
	importOut       string
	importAppend    bool
	importRecursive bool
	importExts      []string
)

var importCmd = &cobra.Command{
	Use:   "import [paths...]",
	Short: "Build a catalog file from images and folders",
	Long: `Adds images, folders and URLs to a catalog file that view and show can load.

Examples:
  solarGallery import --out sun.yaml ./sun/
  solarGallery import --out sun.yaml --append flare.png
  solarGallery import --out sun.yaml --ext webp --recursive ./archive/`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("recursive") {
			cfg.RecursiveImport = importRecursive
		}
		if len(importExts) > 0 {
			cfg.Extensions = importExts
		}

		g := newGallery(cfg)
		existing := ""
		if importAppend {
			if _, err := os.Stat(importOut); err == nil {
				existing = importOut
			}
		}
		if err := populate(cfg, g, existing, args); err != nil {
			logrus.Fatal(err)
		}

		f, err := os.Create(importOut)
		if err != nil {
			logrus.Fatalf("Failed to create catalog: %v", err)
		}
		defer f.Close()

		if err := gallery.SaveCatalog(f, g.Entries()); err != nil {
			logrus.Fatal(err)
		}
		logrus.Infof("Wrote %d images to %s", g.Count(), importOut)
		g.ResetAll()
	},
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().StringVarP(&importOut, "out", "o", "catalog.yaml", "catalog file to write")
	importCmd.Flags().BoolVar(&importAppend, "append", false, "keep the entries already in the catalog file")
	importCmd.Flags().BoolVar(&importRecursive, "recursive", false, "search folders recursively")
	importCmd.Flags().StringSliceVar(&importExts, "ext", nil, "image extensions to import from folders (default from config)")
}
