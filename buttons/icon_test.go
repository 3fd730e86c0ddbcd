package buttons

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIconSourceResolver(t *testing.T) {
	tests := []struct {
		name     string
		existing []string
		want     IconDecision
	}{
		{"animated only", []string{"wheel.gif"}, IconDecision{Kind: IconAnimated, Asset: "wheel.gif"}},
		{"animated wins over static", []string{"wheel.gif", "wheel.png"}, IconDecision{Kind: IconAnimated, Asset: "wheel.gif"}},
		{"static only", []string{"wheel.png"}, IconDecision{Kind: IconStatic, Asset: "wheel.png"}},
		{"nothing", nil, IconDecision{Kind: IconNone}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := staticResolver(tt.existing...).Resolve("wheel.gif", "wheel.png")
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIconSourceResolver_Filesystem(t *testing.T) {
	dir := t.TempDir()
	gif := filepath.Join(dir, "wheel.gif")
	png := filepath.Join(dir, "wheel.png")
	resolver := IconSourceResolver{}

	assert.Equal(t, IconNone, resolver.Resolve(gif, png).Kind)

	require.NoError(t, os.WriteFile(png, []byte("png"), 0o644))
	assert.Equal(t, IconDecision{Kind: IconStatic, Asset: png}, resolver.Resolve(gif, png))

	require.NoError(t, os.WriteFile(gif, []byte("gif"), 0o644))
	assert.Equal(t, IconDecision{Kind: IconAnimated, Asset: gif}, resolver.Resolve(gif, png))
}

func TestIconSourceResolver_StatErrorIsAbsent(t *testing.T) {
	resolver := IconSourceResolver{Exists: func(path string) (bool, error) {
		if path == "wheel.gif" {
			return false, errors.New("permission denied")
		}
		return true, nil
	}}

	assert.Equal(t, IconDecision{Kind: IconStatic, Asset: "wheel.png"}, resolver.Resolve("wheel.gif", "wheel.png"))
}
