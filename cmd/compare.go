package cmd

import (
	"fmt"

	"github.com/AnyUserName/imgsig-cli/internal/pipeline"
	"github.com/AnyUserName/imgsig-cli/internal/profile"
	"github.com/AnyUserName/imgsig-cli/internal/signature"
	"github.com/spf13/cobra"
)

var compareProfile string

var compareCmd = &cobra.Command{
	Use:   "compare <image_a> <image_b>",
	Short: "Compute the similarity of two image files",
	Args:  cobra.ExactArgs(2),
	RunE:  runCompare,
}

func init() {
	compareCmd.Flags().StringVarP(&compareProfile, "profile", "p", "default", "tuning profile")
	rootCmd.AddCommand(compareCmd)
}

func runCompare(_ *cobra.Command, args []string) error {
	prof := profile.Get(compareProfile)

	sigA, err := pipeline.SignFile(args[0], prof)
	if err != nil {
		return err
	}
	sigB, err := pipeline.SignFile(args[1], prof)
	if err != nil {
		return err
	}

	score, err := signature.Similarity(sigA, sigB)
	if err != nil {
		return fmt.Errorf("compare: %w", err)
	}

	verdict := "distinct"
	if score >= prof.Cutoff {
		verdict = "likely similar"
	}
	fmt.Printf("%.4f  (%s, cutoff %.2f)\n", score, verdict, prof.Cutoff)
	return nil
}
