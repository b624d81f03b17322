package model

import "sort"

// Quote is the latest price/volume snapshot for a symbol, in the provider's
// native currency units. Invariant: High >= Low; Price, High, Low >= 0.
type Quote struct {
	Symbol        string  `json:"symbol"`
	Price         float64 `json:"price"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"changePercent"`
	High          float64 `json:"high"`
	Low           float64 `json:"low"`
	Open          float64 `json:"open"`
	PreviousClose float64 `json:"previousClose"`
	Volume        int64   `json:"volume"`
	Timestamp     string  `json:"timestamp"` // ISO-8601
	Exchange      string  `json:"exchange"`
	IsRealTime    bool    `json:"isRealTime"`
}

// Candle is a single OHLCV bucket. Time is epoch milliseconds.
type Candle struct {
	Time       int64   `json:"time"`
	Open       float64 `json:"open"`
	High       float64 `json:"high"`
	Low        float64 `json:"low"`
	Close      float64 `json:"close"`
	Volume     int64   `json:"volume"`
	IsRealTime bool    `json:"isRealTime"`
}

// TimeSeries is an ordered sequence of candles, strictly increasing by time
// and deduplicated by time.
type TimeSeries []Candle

// Normalize sorts the series ascending by time and drops candles that share a
// timestamp with an earlier one.
func (ts TimeSeries) Normalize() TimeSeries {
	if len(ts) < 2 {
		return ts
	}
	out := make(TimeSeries, len(ts))
	copy(out, ts)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Time < out[j].Time })
	dedup := out[:1]
	for _, c := range out[1:] {
		if c.Time != dedup[len(dedup)-1].Time {
			dedup = append(dedup, c)
		}
	}
	return dedup
}

// Closes extracts the close prices in series order.
func (ts TimeSeries) Closes() []float64 {
	closes := make([]float64, len(ts))
	for i, c := range ts {
		closes[i] = c.Close
	}
	return closes
}

// IsRealTime reports whether the series is non-empty and entirely
// provider-sourced.
func (ts TimeSeries) IsRealTime() bool {
	if len(ts) == 0 {
		return false
	}
	for _, c := range ts {
		if !c.IsRealTime {
			return false
		}
	}
	return true
}

// SymbolRecord owns the cached quote and series for one symbol.
// IsRealTimeData is true only when both came from the provider.
type SymbolRecord struct {
	Symbol         string     `json:"symbol"`
	Quote          Quote      `json:"quote"`
	Series         TimeSeries `json:"series"`
	LastUpdate     int64      `json:"lastUpdate"` // epoch ms
	IsRealTimeData bool       `json:"isRealTimeData"`
}

// SearchResult is one entry of a symbol-search response.
type SearchResult struct {
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Exchange string `json:"exchange,omitempty"`
	Country  string `json:"country,omitempty"`
}
