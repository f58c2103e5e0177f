package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/AnyUserName/imgsig-cli/internal/manifest"
	"github.com/AnyUserName/imgsig-cli/internal/signature"
	"github.com/spf13/cobra"
)

var dupesCutoff float64

var dupesCmd = &cobra.Command{
	Use:   "dupes <manifest_or_dir>",
	Short: "Report near-duplicate pairs from a signature manifest",
	Long: `Compares every pair of signatures in a manifest and reports those at or
above the similarity cutoff. Byte-identical files (matching content hash)
are reported as exact duplicates without signature comparison.

All-pairs comparison: cost grows quadratically with asset count.`,
	Args: cobra.ExactArgs(1),
	RunE: runDupes,
}

func init() {
	dupesCmd.Flags().Float64Var(&dupesCutoff, "cutoff", 0, "similarity cutoff (0 = manifest default)")
	rootCmd.AddCommand(dupesCmd)
}

// pair is one reported near-duplicate.
type pair struct {
	a, b  string
	score float64
	exact bool
}

func runDupes(_ *cobra.Command, args []string) error {
	m, err := loadManifest(args[0])
	if err != nil {
		return err
	}

	cutoff := m.Params.Cutoff
	if dupesCutoff > 0 {
		cutoff = dupesCutoff
	}

	keys := make([]string, 0, len(m.Assets))
	for k := range m.Assets {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	// Decode all signatures once.
	sigs := make(map[string][]int8, len(keys))
	for _, k := range keys {
		sig, err := manifest.DecodeSignature(m.Assets[k].Signature)
		if err != nil {
			return fmt.Errorf("asset %s: decode signature: %w", k, err)
		}
		sigs[k] = sig
	}

	logVerbose("comparing %d assets (%d pairs, cutoff %.2f)",
		len(keys), len(keys)*(len(keys)-1)/2, cutoff)

	var pairs []pair
	for i, ka := range keys {
		for _, kb := range keys[i+1:] {
			if m.Assets[ka].ContentHash == m.Assets[kb].ContentHash {
				pairs = append(pairs, pair{a: ka, b: kb, score: 1, exact: true})
				continue
			}
			score, err := signature.Similarity(sigs[ka], sigs[kb])
			if err != nil {
				return fmt.Errorf("compare %s / %s: %w", ka, kb, err)
			}
			if score >= cutoff {
				pairs = append(pairs, pair{a: ka, b: kb, score: score})
			}
		}
	}

	sort.Slice(pairs, func(i, j int) bool { return pairs[i].score > pairs[j].score })
	printDupesReport(pairs, len(keys), cutoff)
	return nil
}

func printDupesReport(pairs []pair, assets int, cutoff float64) {
	fmt.Println()
	fmt.Printf("  Assets:      %d\n", assets)
	fmt.Printf("  Cutoff:      %.2f\n", cutoff)
	fmt.Printf("  Duplicates:  %d pairs\n", len(pairs))
	fmt.Println()
	for _, p := range pairs {
		tag := fmt.Sprintf("%.4f", p.score)
		if p.exact {
			tag = "exact "
		}
		fmt.Printf("    %s  %s ↔ %s\n", tag, p.a, p.b)
	}
	if len(pairs) > 0 {
		fmt.Println()
	}
}

// loadManifest reads a manifest from a path, or from the default manifest
// filename inside a directory.
func loadManifest(path string) (*manifest.Manifest, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		path = filepath.Join(path, "imgsig.manifest.json")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var m manifest.Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	if m.Version != manifest.SupportedManifestVersion {
		return nil, fmt.Errorf("manifest version %d not supported (want %d)",
			m.Version, manifest.SupportedManifestVersion)
	}
	return &m, nil
}
