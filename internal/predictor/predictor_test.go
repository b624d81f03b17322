package predictor

import (
	"math"
	"testing"
)

func TestPredict_LinearPerfectTrend(t *testing.T) {
	result, err := Predict([]float64{10, 11, 12, 13, 14}, "linear", 1)
	if err != nil {
		t.Fatal(err)
	}

	if result.Model != "Linear Regression" {
		t.Errorf("model = %q", result.Model)
	}
	if math.Abs(result.PredictedPrice-15) > 1e-9 {
		t.Errorf("predicted = %.4f, want 15", result.PredictedPrice)
	}
	if math.Abs(result.Change-1) > 1e-9 {
		t.Errorf("change = %.4f, want 1", result.Change)
	}
	// Perfect fit gives R²=1, confidence 95, and the boost caps there.
	if result.Confidence != 95 {
		t.Errorf("confidence = %.1f, want 95", result.Confidence)
	}
	if result.AccuracyBand != "70-90%" {
		t.Errorf("band = %q", result.AccuracyBand)
	}
	if result.HorizonDays != 1 {
		t.Errorf("horizon = %d, want 1", result.HorizonDays)
	}
}

func TestPredict_UnknownModelDefaultsToLinear(t *testing.T) {
	result, err := Predict([]float64{10, 11, 12}, "quantum", 1)
	if err != nil {
		t.Fatal(err)
	}
	if result.Model != "Linear Regression" {
		t.Errorf("model = %q, want Linear Regression", result.Model)
	}
}

func TestPredict_EmptyHistory(t *testing.T) {
	if _, err := Predict(nil, "linear", 1); err == nil {
		t.Fatal("expected error for empty history")
	}
}

func TestPredict_HorizonFloor(t *testing.T) {
	result, err := Predict([]float64{10, 11, 12}, "linear", 0)
	if err != nil {
		t.Fatal(err)
	}
	if result.HorizonDays != 1 {
		t.Errorf("horizon = %d, want floored to 1", result.HorizonDays)
	}
}

func TestLinear_FloorsNegativePrediction(t *testing.T) {
	est := LinearRegression{}.Estimate([]float64{30, 20, 10}, 5)
	if est.PredictedPrice != 0 {
		t.Errorf("predicted = %.2f, want floored at 0", est.PredictedPrice)
	}
}

func TestLinear_SinglePoint(t *testing.T) {
	est := LinearRegression{}.Estimate([]float64{42}, 3)
	if est.PredictedPrice != 42 || est.Confidence != 70 {
		t.Errorf("got %.1f @ %.0f, want flat 42 @ 70", est.PredictedPrice, est.Confidence)
	}
}

func TestMovingAverage_FlatSeries(t *testing.T) {
	prices := make([]float64, 25)
	for i := range prices {
		prices[i] = 100
	}
	est := MovingAverage{}.Estimate(prices, 7)

	if math.Abs(est.PredictedPrice-100) > 1e-9 {
		t.Errorf("predicted = %.4f, want 100 for a flat series", est.PredictedPrice)
	}
	// Zero volatility clamps to the top of the band.
	if est.Confidence != 80 {
		t.Errorf("confidence = %.1f, want 80", est.Confidence)
	}
	if est.AccuracyBand != "65-80%" {
		t.Errorf("band = %q", est.AccuracyBand)
	}
}

func TestMomentum_FlatSeries(t *testing.T) {
	prices := make([]float64, 25)
	for i := range prices {
		prices[i] = 100
	}
	est := Momentum{}.Estimate(prices, 7)

	if math.Abs(est.PredictedPrice-100) > 1e-9 {
		t.Errorf("predicted = %.4f, want 100 with zero momentum", est.PredictedPrice)
	}
	if est.Confidence != 75 {
		t.Errorf("confidence = %.1f, want 75", est.Confidence)
	}
	if est.AccuracyBand != "60-75%" {
		t.Errorf("band = %q", est.AccuracyBand)
	}
}

func TestMomentum_RisingSeriesPredictsHigher(t *testing.T) {
	prices := []float64{100, 102, 104, 106, 108, 110, 112, 114, 116, 118}
	est := Momentum{}.Estimate(prices, 3)
	if est.PredictedPrice <= 118 {
		t.Errorf("predicted = %.2f, want above current 118", est.PredictedPrice)
	}
}

func TestConfidence_AlwaysWithinBounds(t *testing.T) {
	histories := [][]float64{
		{10, 11, 12, 13, 14},
		{100, 90, 110, 80, 120, 70},
		{5, 5, 5},
		{1, 1000},
	}
	for _, key := range []string{"linear", "moving_average", "momentum"} {
		for _, prices := range histories {
			result, err := Predict(prices, key, 7)
			if err != nil {
				t.Fatalf("%s: %v", key, err)
			}
			if result.Confidence < 60 || result.Confidence > 95 {
				t.Errorf("%s on %v: confidence %.1f out of range", key, prices, result.Confidence)
			}
			if result.PredictedPrice < 0 {
				t.Errorf("%s on %v: negative prediction %.2f", key, prices, result.PredictedPrice)
			}
		}
	}
}
