package finance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNPVZeroRateEqualsSum(t *testing.T) {
	flows := []float64{-48000, 10000, 12500.5, 9999.25, 30000}

	npv, err := NPV(0, flows)
	require.NoError(t, err)

	sum := 0.0
	for _, f := range flows {
		sum += f
	}
	assert.Equal(t, sum, npv)
}

func TestNPVDiscounting(t *testing.T) {
	// -100 now, 110 in one year at 10% is exactly break-even.
	npv, err := NPV(0.10, []float64{-100, 110})
	require.NoError(t, err)
	assert.InDelta(t, 0, npv, 1e-9)
}

func TestNPVErrors(t *testing.T) {
	_, err := NPV(0.08, nil)
	assert.ErrorIs(t, err, ErrEmptySeries)

	_, err = NPV(-1, []float64{-100, 110})
	assert.ErrorIs(t, err, ErrInvalidDiscountRate)
}

func TestPaybackExactlyFiveYears(t *testing.T) {
	series, err := AnnualSeries(100_000, 20_000, 10)
	require.NoError(t, err)

	year, ok := Payback(series)
	require.True(t, ok)
	assert.Equal(t, 5, year)
}

func TestPaybackNever(t *testing.T) {
	series, err := AnnualSeries(100_000, 5_000, 10)
	require.NoError(t, err)

	_, ok := Payback(series)
	assert.False(t, ok)

	_, ok = Payback(nil)
	assert.False(t, ok)
}

func TestPaybackMonotonicInCost(t *testing.T) {
	previous := 0
	for _, cost := range []float64{40_000, 80_000, 100_000, 140_000, 180_000} {
		series, err := AnnualSeries(cost, 20_000, 20)
		require.NoError(t, err)

		year, ok := Payback(series)
		require.True(t, ok)
		assert.GreaterOrEqual(t, year, previous,
			"payback cannot shorten as cost grows with revenue fixed")
		previous = year
	}
}

func TestIRRSimpleSeries(t *testing.T) {
	// -100 then 110 has the single root r = 10%.
	irr, err := IRR([]float64{-100, 110})
	require.NoError(t, err)
	assert.InDelta(t, 0.10, irr, 1e-6)
}

func TestIRRRoundTripsThroughNPV(t *testing.T) {
	series, err := AnnualSeries(100_000, 20_000, 10)
	require.NoError(t, err)
	nets := series.Nets()

	irr, err := IRR(nets)
	require.NoError(t, err)

	npv, err := NPV(irr, nets)
	require.NoError(t, err)
	assert.InDelta(t, 0, npv, 1.0)
}

func TestIRRUndefined(t *testing.T) {
	tests := []struct {
		name  string
		flows []float64
	}{
		{"all positive", []float64{10, 20, 30}},
		{"all negative", []float64{-10, -20, -30}},
		{"zeros only", []float64{0, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := IRR(tt.flows)
			assert.ErrorIs(t, err, ErrIRRUndefined)
		})
	}

	_, err := IRR(nil)
	assert.ErrorIs(t, err, ErrEmptySeries)
}

func TestAnnualSeriesShape(t *testing.T) {
	series, err := AnnualSeries(48_000, 12_000, 4)
	require.NoError(t, err)
	require.Len(t, series, 5)

	assert.Equal(t, CashFlow{Year: 0, Cost: 48_000}, series[0])
	for year := 1; year <= 4; year++ {
		assert.Equal(t, CashFlow{Year: year, Revenue: 12_000}, series[year])
	}
	assert.Equal(t, -48_000.0, series[0].Net())

	_, err = AnnualSeries(48_000, 12_000, 0)
	assert.ErrorIs(t, err, ErrNonPositiveHorizon)
}

func TestMintSchedule(t *testing.T) {
	flows := MintSchedule(48_000, 3_152, 154_464)
	assert.Equal(t, []float64{-48_000, -3_152, 154_464}, flows)
}
