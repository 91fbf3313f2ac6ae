package model

// GBMParams holds the annualized drift and volatility calibrated from a
// historical return series. Sigma is always >= 0; sigma = 0 means the
// process is deterministic.
type GBMParams struct {
	Mu    float64 `json:"mu"`
	Sigma float64 `json:"sigma"`
}
