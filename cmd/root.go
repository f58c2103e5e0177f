package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "imgsig",
	Short: "Perceptual image signatures for near-duplicate detection",
	Long: `imgsig — indexes image collections by compact perceptual signature and
finds near-duplicates without re-examining pixel data.

Signatures capture the local luminance-gradient pattern of an image and
survive re-encoding, light noise, and uniform borders. Two signatures with
cosine similarity of 0.6 or higher (default tuning) indicate likely
visual similarity.`,
	Version: version,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"imgsig %s (%s/%s, %s)\n",
		version, runtime.GOOS, runtime.GOARCH, runtime.Version(),
	))
}

// logVerbose prints a message only when --verbose is set.
func logVerbose(format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[imgsig] "+format+"\n", args...)
	}
}
