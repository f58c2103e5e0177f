package profile

import "github.com/AnyUserName/imgsig-cli/internal/signature"

// Profile defines signature tuning parameters for an indexing run.
// Signatures are only comparable within a single profile.
type Profile struct {
	Name     string
	Crop     float64 // activity fraction trimmed per side before grid placement
	GridSize int     // lattice divisions; signature length grows with it
	Cutoff   float64 // cosine similarity at or above which pairs are reported
	MaxDim   int     // decoded images larger than this are downscaled first
}

// Built-in profiles.
var profiles = map[string]Profile{
	"default": {
		Name:     "default",
		Crop:     signature.DefaultCrop,
		GridSize: signature.DefaultGridSize,
		Cutoff:   signature.SimilarityCutoff,
		MaxDim:   1024,
	},
	// Denser lattice for large collections where the default grid
	// reports too many candidate pairs. The 0.6 cutoff is calibrated for
	// the default grid, so it is raised here.
	"fine": {
		Name:     "fine",
		Crop:     signature.DefaultCrop,
		GridSize: 12,
		Cutoff:   0.65,
		MaxDim:   1536,
	},
	// Coarser, cheaper lattice for quick scans.
	"coarse": {
		Name:     "coarse",
		Crop:     signature.DefaultCrop,
		GridSize: 6,
		Cutoff:   signature.SimilarityCutoff,
		MaxDim:   768,
	},
}

// Get returns a profile by name. Falls back to default if unknown.
func Get(name string) Profile {
	if p, ok := profiles[name]; ok {
		return p
	}
	p := profiles["default"]
	p.Name = name // preserve requested name
	return p
}

// SignatureLength returns the vector length this profile produces.
func (p Profile) SignatureLength() int {
	return signature.Length(p.GridSize)
}
