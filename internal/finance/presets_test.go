package finance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlugCostForDepth(t *testing.T) {
	tests := []struct {
		depthFt float64
		want    float64
	}{
		{0, 30_000},
		{1_500, 30_000},
		{2_000, 30_000}, // boundary belongs to the lower bracket
		{2_001, 55_000},
		{5_000, 55_000},
		{5_001, 80_000},
		{12_000, 80_000}, // beyond the table falls into the top bracket
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PlugCostForDepth(tt.depthFt), "depth %.0f ft", tt.depthFt)
	}
}

func TestCostPresetsIsACopy(t *testing.T) {
	presets := CostPresets()
	assert.Len(t, presets, 3)

	presets[0].Cost = 1
	assert.Equal(t, 30_000.0, PlugCostForDepth(0))
}
