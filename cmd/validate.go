package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/AnyUserName/imgsig-cli/internal/manifest"
	"github.com/AnyUserName/imgsig-cli/internal/signature"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <manifest_path>",
	Short: "Validate a signature manifest and check referenced files exist",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, args []string) error {
	m, err := loadManifest(args[0])
	if err != nil {
		return err
	}

	var problems []string

	// The declared length must match the grid size: mixing tuning
	// parameters inside one manifest makes every comparison invalid.
	if want := signature.Length(m.Params.GridSize); m.Params.SigLength != want {
		problems = append(problems, fmt.Sprintf(
			"params: sig_length %d does not match grid_size %d (want %d)",
			m.Params.SigLength, m.Params.GridSize, want))
	}
	if m.Params.Crop < 0 || m.Params.Crop > 0.5 {
		problems = append(problems, fmt.Sprintf("params: crop %v outside [0, 0.5]", m.Params.Crop))
	}

	for key, a := range m.Assets {
		sig, err := manifest.DecodeSignature(a.Signature)
		if err != nil {
			problems = append(problems, fmt.Sprintf("%s: undecodable signature: %v", key, err))
			continue
		}
		if len(sig) != m.Params.SigLength {
			problems = append(problems, fmt.Sprintf(
				"%s: signature length %d, manifest declares %d", key, len(sig), m.Params.SigLength))
		}
		for i, v := range sig {
			if v < -2 || v > 2 {
				problems = append(problems, fmt.Sprintf(
					"%s: signature element %d out of range: %d", key, i, v))
				break
			}
		}
		if a.ContentHash == "" {
			problems = append(problems, fmt.Sprintf("%s: missing content hash", key))
		}
		if a.Path != "" {
			full := filepath.Join(m.BaseDir, filepath.FromSlash(a.Path))
			if _, err := os.Stat(full); err != nil {
				problems = append(problems, fmt.Sprintf("%s: source missing: %s", key, a.Path))
			}
		}
	}

	if len(problems) > 0 {
		for _, p := range problems {
			fmt.Fprintf(os.Stderr, "  ✗ %s\n", p)
		}
		return fmt.Errorf("%d problems found", len(problems))
	}

	fmt.Printf("  ✓ manifest valid: %d assets, %d-element signatures (grid %d)\n",
		m.Stats.TotalAssets, m.Params.SigLength, m.Params.GridSize)
	return nil
}
