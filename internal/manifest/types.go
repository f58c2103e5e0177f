package manifest

// Manifest is the signature index produced by an imgsig index run. All
// signatures in one manifest share the same tuning parameters and are
// directly comparable; signatures from manifests with different parameters
// are not.
type Manifest struct {
	Version     int              `json:"version"`
	GeneratedAt string           `json:"generated_at"`
	Params      Params           `json:"params"`
	BaseDir     string           `json:"base_dir"`
	Assets      map[string]Asset `json:"assets"`
	Stats       Stats            `json:"stats"`
}

// Params captures the tuning used for every signature in the manifest.
type Params struct {
	Profile  string  `json:"profile"`
	Crop     float64 `json:"crop"`
	GridSize int     `json:"grid_size"`
	Cutoff   float64 `json:"cutoff"`
	MaxDim   int     `json:"max_dim"`
	// SigLength is the vector length GridSize produces; validate checks
	// every asset against it.
	SigLength int `json:"sig_length"`
}

// Asset describes one indexed source image.
type Asset struct {
	Path        string  `json:"path"`      // relative to base_dir
	Width       int     `json:"width"`     // decoded pixel width
	Height      int     `json:"height"`    // decoded pixel height
	Format      string  `json:"format"`    // png, jpeg, webp, ...
	Size        int64   `json:"size"`      // file bytes
	ContentHash string  `json:"hash"`      // 16 hex chars of xxhash64
	Signature   string  `json:"signature"` // base64-encoded signature vector
	AspectRatio float64 `json:"aspect_ratio"`
}

// Stats aggregates index metrics.
type Stats struct {
	TotalAssets int   `json:"total_assets"`
	TotalBytes  int64 `json:"total_bytes"`
	Failed      int   `json:"failed,omitempty"` // sources that could not be signed
}

// SupportedManifestVersion is the current schema version.
const SupportedManifestVersion = 1
