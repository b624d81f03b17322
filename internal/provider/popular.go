package provider

import (
	"strings"

	"StockPulse/internal/model"
)

// popularSymbols is the static quick-access set. It is merged into search
// results and serves as the degraded result source when the provider's
// symbol search fails.
var popularSymbols = []model.SearchResult{
	{Symbol: "AAPL", Name: "Apple Inc."},
	{Symbol: "MSFT", Name: "Microsoft Corporation"},
	{Symbol: "GOOGL", Name: "Alphabet Inc."},
	{Symbol: "TSLA", Name: "Tesla, Inc."},
	{Symbol: "NVDA", Name: "NVIDIA Corporation"},
	{Symbol: "AMZN", Name: "Amazon.com Inc."},
	{Symbol: "META", Name: "Meta Platforms, Inc."},
	{Symbol: "NFLX", Name: "Netflix, Inc."},
	{Symbol: "AMD", Name: "Advanced Micro Devices"},
	{Symbol: "INTC", Name: "Intel Corporation"},
}

// matchPopular filters the popular set by case-insensitive substring match
// against both symbol and name.
func matchPopular(query string) []model.SearchResult {
	q := strings.ToLower(query)
	var out []model.SearchResult
	for _, s := range popularSymbols {
		if strings.Contains(strings.ToLower(s.Symbol), q) ||
			strings.Contains(strings.ToLower(s.Name), q) {
			out = append(out, s)
		}
	}
	return out
}
