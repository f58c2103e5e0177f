package manifest

import (
	"encoding/base64"
	"encoding/json"
	"os"
	"time"
)

// New creates an empty manifest with defaults.
func New(params Params) *Manifest {
	return &Manifest{
		Version:     SupportedManifestVersion,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Params:      params,
		BaseDir:     "./",
		Assets:      make(map[string]Asset),
	}
}

// ComputeStats recalculates aggregate statistics from assets.
func (m *Manifest) ComputeStats() {
	failed := m.Stats.Failed
	var s Stats
	s.TotalAssets = len(m.Assets)
	for _, a := range m.Assets {
		s.TotalBytes += a.Size
	}
	s.Failed = failed
	m.Stats = s
}

// WriteJSON serializes the manifest to a JSON file with stable ordering.
func WriteJSON(m *Manifest, path string) error {
	m.ComputeStats()

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o644)
}

// EncodeSignature packs a signature vector into the base64 form stored in
// the manifest. Elements are in -2..2, so the two's-complement byte view is
// lossless.
func EncodeSignature(sig []int8) string {
	b := make([]byte, len(sig))
	for i, v := range sig {
		b[i] = byte(v)
	}
	return base64.StdEncoding.EncodeToString(b)
}

// DecodeSignature is the inverse of EncodeSignature.
func DecodeSignature(s string) ([]int8, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, err
	}
	sig := make([]int8, len(b))
	for i, v := range b {
		sig[i] = int8(v)
	}
	return sig, nil
}
