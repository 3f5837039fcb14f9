package finance

import (
	"errors"
	"sort"

	"carbonpath/well-portal/well-portal-backend/internal/credits"
	"carbonpath/well-portal/well-portal-backend/internal/wells"
)

// ErrEmptySweep is returned when a sensitivity request has no grid points.
var ErrEmptySweep = errors.New("sensitivity sweep requires at least one token price and one fee")

// SweepPoint is one cell of the token-price x fee sensitivity grid.
type SweepPoint struct {
	TokenPrice  float64 `json:"token_price"`
	PathFee     float64 `json:"path_fee"`
	TotalProfit float64 `json:"total_profit"`
	Profitable  bool    `json:"profitable"`
}

// SweepResult is the full grid plus the interpolated breakeven token price.
// BreakevenPrice is nil when the mean profit curve never crosses zero within
// the swept price range.
type SweepResult struct {
	Points         []SweepPoint `json:"points"`
	BreakevenPrice *float64     `json:"breakeven_price,omitempty"`
}

// Sweep recomputes total portfolio profit for every combination of token
// price and fee. Each grid point is an independent pure evaluation; a zero
// or negative token price anywhere in the grid is a validation error.
func Sweep(registry *credits.Registry, ws []wells.Well, base Assumptions, tokenPrices, pathFees []float64) (*SweepResult, error) {
	if len(tokenPrices) == 0 || len(pathFees) == 0 {
		return nil, ErrEmptySweep
	}
	for _, price := range tokenPrices {
		if price <= 0 {
			return nil, ErrNonPositiveTokenPrice
		}
	}

	result := &SweepResult{Points: make([]SweepPoint, 0, len(tokenPrices)*len(pathFees))}
	for _, price := range tokenPrices {
		for _, fee := range pathFees {
			a := base
			a.TokenPrice = price
			a.PathFee = fee

			wellResults, err := EvaluateWells(registry, ws, a)
			if err != nil {
				return nil, err
			}
			profit := 0.0
			for i := range wellResults {
				profit += wellResults[i].Profit
			}
			result.Points = append(result.Points, SweepPoint{
				TokenPrice:  price,
				PathFee:     fee,
				TotalProfit: profit,
				Profitable:  profit > 0,
			})
		}
	}

	result.BreakevenPrice = breakevenPrice(result.Points)
	return result, nil
}

// breakevenPrice interpolates the token price at which mean profit across
// fees crosses zero. Profit is monotonically increasing in price, so a
// single crossing exists when the curve spans zero.
func breakevenPrice(points []SweepPoint) *float64 {
	byPrice := make(map[float64][]float64)
	for _, p := range points {
		byPrice[p.TokenPrice] = append(byPrice[p.TokenPrice], p.TotalProfit)
	}

	prices := make([]float64, 0, len(byPrice))
	for price := range byPrice {
		prices = append(prices, price)
	}
	sort.Float64s(prices)

	means := make([]float64, len(prices))
	for i, price := range prices {
		sum := 0.0
		for _, profit := range byPrice[price] {
			sum += profit
		}
		means[i] = sum / float64(len(byPrice[price]))
	}

	for i := 1; i < len(prices); i++ {
		if (means[i-1] <= 0 && means[i] >= 0) || (means[i-1] >= 0 && means[i] <= 0) {
			if means[i] == means[i-1] {
				return &prices[i-1]
			}
			breakeven := prices[i-1] + (0-means[i-1])*(prices[i]-prices[i-1])/(means[i]-means[i-1])
			return &breakeven
		}
	}
	return nil
}
