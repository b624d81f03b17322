package model

import "testing"

func TestTimeSeries_Normalize(t *testing.T) {
	ts := TimeSeries{
		{Time: 300, Close: 3},
		{Time: 100, Close: 1},
		{Time: 300, Close: 9},
		{Time: 200, Close: 2},
	}
	out := ts.Normalize()

	if len(out) != 3 {
		t.Fatalf("len = %d, want 3 after dedupe", len(out))
	}
	for i := 1; i < len(out); i++ {
		if out[i].Time <= out[i-1].Time {
			t.Fatalf("not strictly ascending at %d", i)
		}
	}
	// The earlier occurrence of a duplicated timestamp wins.
	if out[2].Close != 3 {
		t.Errorf("dedupe kept wrong candle: close = %.0f", out[2].Close)
	}
	// Input untouched.
	if ts[0].Time != 300 {
		t.Error("Normalize mutated its receiver")
	}
}

func TestTimeSeries_IsRealTime(t *testing.T) {
	if (TimeSeries{}).IsRealTime() {
		t.Error("empty series reported real-time")
	}
	mixed := TimeSeries{{Time: 1, IsRealTime: true}, {Time: 2, IsRealTime: false}}
	if mixed.IsRealTime() {
		t.Error("mixed series reported real-time")
	}
	real := TimeSeries{{Time: 1, IsRealTime: true}, {Time: 2, IsRealTime: true}}
	if !real.IsRealTime() {
		t.Error("all-real series reported synthetic")
	}
}

func TestTimeSeries_Closes(t *testing.T) {
	ts := TimeSeries{{Close: 1.5}, {Close: 2.5}}
	closes := ts.Closes()
	if len(closes) != 2 || closes[0] != 1.5 || closes[1] != 2.5 {
		t.Errorf("closes = %v", closes)
	}
}
