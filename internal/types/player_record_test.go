package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDepthLabel(t *testing.T) {
	tests := []struct {
		name  string
		index int
		want  string
	}{
		{name: "first slot", index: 0, want: "1st"},
		{name: "second slot", index: 1, want: "2nd"},
		{name: "last defined slot", index: 5, want: "6th"},
		{name: "beyond defined labels clamps", index: 6, want: "6th"},
		{name: "far beyond clamps", index: 40, want: "6th"},
		{name: "negative index", index: -1, want: DepthUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DepthLabel(tt.index))
		})
	}
}

func TestPlayerRecordKey(t *testing.T) {
	rec := PlayerRecord{Name: "Player One", Team: "KC", Position: "QB"}
	assert.Equal(t, "Player One|KC|QB", rec.Key())

	// Depth and source do not participate in identity.
	other := rec
	other.DepthRank = "2nd"
	other.Source = SourceBackupAPI
	assert.Equal(t, rec.Key(), other.Key())
}
