package cmd

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/AnyUserName/imgsig-cli/internal/manifest"
	"github.com/AnyUserName/imgsig-cli/internal/pipeline"
	"github.com/AnyUserName/imgsig-cli/internal/profile"
	"github.com/spf13/cobra"
)

var (
	indexOut      string
	indexProfile  string
	indexWorkers  int
	indexGridSize int
	indexCrop     float64
)

var indexCmd = &cobra.Command{
	Use:   "index <input_dir>",
	Short: "Compute signatures for all images in a directory",
	Long: `Scans a directory for images (png, jpg, jpeg, webp, gif, bmp, tiff),
computes a perceptual signature per image, and writes a signature index
manifest. Run "imgsig dupes" against the manifest to find near-duplicates.

All signatures in one manifest share the profile's tuning parameters.`,
	Args: cobra.ExactArgs(1),
	RunE: runIndex,
}

func init() {
	indexCmd.Flags().StringVarP(&indexOut, "out", "o", "imgsig.manifest.json", "manifest output path")
	indexCmd.Flags().StringVarP(&indexProfile, "profile", "p", "default", "tuning profile (default, fine, coarse)")
	indexCmd.Flags().IntVarP(&indexWorkers, "workers", "w", 0, "parallel workers (0 = NumCPU)")
	indexCmd.Flags().IntVar(&indexGridSize, "grid-size", 0, "lattice grid size (0 = profile default)")
	indexCmd.Flags().Float64Var(&indexCrop, "crop", -1, "crop fraction 0-0.5 (-1 = profile default)")
	rootCmd.AddCommand(indexCmd)
}

func runIndex(_ *cobra.Command, args []string) error {
	inputDir := args[0]
	start := time.Now()

	absInput, err := filepath.Abs(inputDir)
	if err != nil {
		return fmt.Errorf("resolve input path: %w", err)
	}

	prof := profile.Get(indexProfile)
	if indexGridSize >= 2 {
		prof.GridSize = indexGridSize
	}
	if indexCrop >= 0 {
		prof.Crop = indexCrop
	}

	logVerbose("input:   %s", absInput)
	logVerbose("profile: %s (crop=%.2f, grid=%d, cutoff=%.2f)",
		prof.Name, prof.Crop, prof.GridSize, prof.Cutoff)

	p := pipeline.New(pipeline.Config{
		InputDir: absInput,
		Profile:  prof,
		Workers:  indexWorkers,
		Verbose:  verbose,
	})

	m, err := p.Run()
	if err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}

	if err := manifest.WriteJSON(m, indexOut); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}

	printIndexReport(m, indexOut, time.Since(start))
	return nil
}

func printIndexReport(m *manifest.Manifest, path string, elapsed time.Duration) {
	fmt.Println()
	fmt.Printf("  Indexed:     %d images\n", m.Stats.TotalAssets)
	if m.Stats.Failed > 0 {
		fmt.Printf("  Failed:      %d\n", m.Stats.Failed)
	}
	fmt.Printf("  Input size:  %s\n", formatBytes(m.Stats.TotalBytes))
	fmt.Printf("  Profile:     %s (grid %d, %d-element signatures)\n",
		m.Params.Profile, m.Params.GridSize, m.Params.SigLength)
	fmt.Printf("  Time:        %s\n", elapsed.Round(time.Millisecond))
	fmt.Printf("  Manifest:    %s\n", path)
	fmt.Println()
}

func formatBytes(b int64) string {
	switch {
	case b >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(b)/(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(b)/(1<<10))
	default:
		return fmt.Sprintf("%d B", b)
	}
}
