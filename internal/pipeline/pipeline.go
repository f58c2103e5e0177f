package pipeline

import (
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/AnyUserName/imgsig-cli/internal/manifest"
	"github.com/AnyUserName/imgsig-cli/internal/profile"
)

// Config holds all parameters for an index run.
type Config struct {
	InputDir string
	Profile  profile.Profile
	Workers  int
	Verbose  bool
}

// Pipeline scans a directory and computes a signature per image.
type Pipeline struct {
	cfg Config
}

// New creates a configured pipeline.
func New(cfg Config) *Pipeline {
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	return &Pipeline{cfg: cfg}
}

// Run executes the full index pipeline and returns the manifest. Individual
// image failures are reported but do not fail the run unless every source
// fails.
func (p *Pipeline) Run() (*manifest.Manifest, error) {
	// Step 1: scan for images.
	sources, err := ScanImages(p.cfg.InputDir)
	if err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}
	if len(sources) == 0 {
		return nil, fmt.Errorf("no images found in %s", p.cfg.InputDir)
	}

	if p.cfg.Verbose {
		fmt.Fprintf(os.Stderr, "[imgsig] found %d images\n", len(sources))
	}

	// Step 2: sign images in parallel. Each signature computation is
	// independent and side-effect-free, so workers need no coordination.
	results := make([]processResult, len(sources))
	var wg sync.WaitGroup
	sem := make(chan struct{}, p.cfg.Workers)

	for i, src := range sources {
		wg.Add(1)
		go func(idx int, s Source) {
			defer wg.Done()
			sem <- struct{}{}        // acquire
			defer func() { <-sem }() // release

			if p.cfg.Verbose {
				fmt.Fprintf(os.Stderr, "[imgsig] signing: %s\n", s.Key)
			}
			results[idx] = processImage(s, p.cfg.Profile)
		}(i, src)
	}
	wg.Wait()

	// Step 3: collect results into the manifest.
	m := manifest.New(manifest.Params{
		Profile:   p.cfg.Profile.Name,
		Crop:      p.cfg.Profile.Crop,
		GridSize:  p.cfg.Profile.GridSize,
		Cutoff:    p.cfg.Profile.Cutoff,
		MaxDim:    p.cfg.Profile.MaxDim,
		SigLength: p.cfg.Profile.SignatureLength(),
	})
	m.BaseDir = p.cfg.InputDir

	var errs []error
	for _, r := range results {
		if r.err != nil {
			errs = append(errs, r.err)
			continue
		}
		m.Assets[r.key] = r.asset
	}

	if len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintf(os.Stderr, "[imgsig] error: %v\n", e)
		}
		if len(errs) == len(sources) {
			return nil, fmt.Errorf("all %d images failed to sign", len(errs))
		}
		fmt.Fprintf(os.Stderr, "[imgsig] warning: %d of %d images had errors\n",
			len(errs), len(sources))
	}

	m.Stats.Failed = len(errs)
	m.ComputeStats()
	return m, nil
}
