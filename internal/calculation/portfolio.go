package calculation

import (
	"github.com/rgehrsitz/mcfolio/internal/domain"
)

var (
	// BondAnchor is the all-bond portfolio: 2% mean, 4% volatility
	BondAnchor = domain.PortfolioParameters{Mean: 0.02, StdDev: 0.04}

	// EquityAnchor is the all-equity portfolio: 7% mean, 18% volatility
	EquityAnchor = domain.PortfolioParameters{Mean: 0.07, StdDev: 0.18}
)

// AssetModel interpolates portfolio parameters between a bond and an equity anchor
type AssetModel struct {
	Bond   domain.PortfolioParameters
	Equity domain.PortfolioParameters
}

// DefaultAssetModel uses the standard anchors
func DefaultAssetModel() AssetModel {
	return AssetModel{Bond: BondAnchor, Equity: EquityAnchor}
}

// Params maps an equity fraction to mean and volatility by linear interpolation.
// The fraction is not clamped; callers restrict it to [0,1].
func (m AssetModel) Params(equityFraction float64) domain.PortfolioParameters {
	return domain.PortfolioParameters{
		Mean:   m.Bond.Mean + (m.Equity.Mean-m.Bond.Mean)*equityFraction,
		StdDev: m.Bond.StdDev + (m.Equity.StdDev-m.Bond.StdDev)*equityFraction,
	}
}

// GetPortfolioParams interpolates with the standard anchors
func GetPortfolioParams(equityFraction float64) domain.PortfolioParameters {
	return DefaultAssetModel().Params(equityFraction)
}
