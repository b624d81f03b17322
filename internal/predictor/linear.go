package predictor

// LinearRegression fits ordinary least squares of price against index and
// projects the trend past the end of the series.
type LinearRegression struct{}

func (LinearRegression) Name() string { return "Linear Regression" }

// Estimate predicts the value at index n+days-1 of the fitted line.
// Confidence tracks the fit R², rescaled into [70,95]; the predicted price
// is floored at zero.
func (LinearRegression) Estimate(prices []float64, days int) Estimate {
	n := len(prices)
	if n < 2 {
		return Estimate{PredictedPrice: prices[n-1], Confidence: 70, AccuracyBand: "70-90%"}
	}

	var sumX, sumY, sumXY, sumX2 float64
	for i, p := range prices {
		x := float64(i)
		sumX += x
		sumY += p
		sumXY += x * p
		sumX2 += x * x
	}

	nf := float64(n)
	denom := nf*sumX2 - sumX*sumX
	if denom == 0 {
		return Estimate{PredictedPrice: prices[n-1], Confidence: 70, AccuracyBand: "70-90%"}
	}
	slope := (nf*sumXY - sumX*sumY) / denom
	intercept := (sumY - slope*sumX) / nf

	predicted := slope*float64(n+days-1) + intercept
	if predicted < 0 {
		predicted = 0
	}

	yMean := sumY / nf
	var ssRes, ssTot float64
	for i, p := range prices {
		fit := slope*float64(i) + intercept
		ssRes += (p - fit) * (p - fit)
		ssTot += (p - yMean) * (p - yMean)
	}
	rSquared := 1.0
	if ssTot > 0 {
		rSquared = 1 - ssRes/ssTot
		if rSquared < 0 {
			rSquared = 0
		}
	}

	return Estimate{
		PredictedPrice: predicted,
		Confidence:     clamp(rSquared*100, 70, 95),
		AccuracyBand:   "70-90%",
	}
}
