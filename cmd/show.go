package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	showJSON    bool
	showDecode  bool
	showCatalog string
)

type shownImage struct {
	Index   int    `json:"index"`
	Name    string `json:"name"`
	Path    string `json:"path"`
	Width   int    `json:"width,omitempty"`
	Height  int    `json:"height,omitempty"`
	Format  string `json:"format,omitempty"`
	Bytes   int    `json:"bytes,omitempty"`
	Problem string `json:"error,omitempty"`
}

var showCmd = &cobra.Command{
	Use:   "show [paths...]",
	Short: "List the images a gallery would show",
	Long: `Prints the catalog built from the given paths and/or catalog file in display order.
With --decode each image is decoded through the cache and its dimensions are reported.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 && showCatalog == "" {
			args = []string{cfg.DefaultDirectory}
		}

		g := newGallery(cfg)
		defer g.ResetAll()
		if err := populate(cfg, g, showCatalog, args); err != nil {
			logrus.Fatal(err)
		}

		var out []shownImage
		for i, entry := range g.Entries() {
			item := shownImage{Index: i + 1, Name: entry.Name, Path: entry.Locator}
			if showDecode {
				pic, _, err := g.Load()
				if err != nil {
					item.Problem = err.Error()
				} else {
					item.Width, item.Height = pic.Width, pic.Height
					item.Format = pic.Format
					item.Bytes = len(pic.Encoded)
				}
				g.OnNext()
			}
			out = append(out, item)
		}

		if showJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(out); err != nil {
				logrus.Fatal(err)
			}
			return
		}

		if len(out) == 0 {
			fmt.Println("No images")
			return
		}
		tw := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
		if showDecode {
			fmt.Fprintln(tw, "#\tName\tSize\tFormat\tPath")
		} else {
			fmt.Fprintln(tw, "#\tName\tPath")
		}
		for _, item := range out {
			if !showDecode {
				fmt.Fprintf(tw, "%d\t%s\t%s\n", item.Index, item.Name, item.Path)
				continue
			}
			size := fmt.Sprintf("%dx%d", item.Width, item.Height)
			if item.Problem != "" {
				size = "error: " + item.Problem
			}
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", item.Index, item.Name, size, item.Format, item.Path)
		}
		tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showJSON, "json", false, "output as JSON")
	showCmd.Flags().BoolVar(&showDecode, "decode", false, "decode each image and report its dimensions")
	showCmd.Flags().StringVar(&showCatalog, "catalog", "", "catalog file to load before the paths")
}
