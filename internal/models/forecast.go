package models

// ForecastRequest is the payload forwarded to the ML service.
type ForecastRequest struct {
	Ticker     string `json:"ticker"`
	TargetDate string `json:"target_date"` // YYYY-MM-DD
}

// ModelPredictions holds one predicted price per forecasting model.
type ModelPredictions struct {
	ARIMA float64 `json:"arima"`
	RF    float64 `json:"rf"`
	DT    float64 `json:"dt"`
}

// PricePoint is one entry of the historical close-price series.
type PricePoint struct {
	Date  string  `json:"date"` // YYYY-MM-DD
	Close float64 `json:"close"`
}

// ModelMetrics are accuracy figures computed by the ML service on its test split.
type ModelMetrics struct {
	RMSE float64 `json:"rmse"`
	MAPE float64 `json:"mape"`
}

// ForecastMetrics groups per-model accuracy metrics.
type ForecastMetrics struct {
	ARIMA ModelMetrics `json:"arima"`
	RF    ModelMetrics `json:"rf"`
	DT    ModelMetrics `json:"dt"`
}

// ResidualPoint is a per-date prediction error for each model.
type ResidualPoint struct {
	Date  string  `json:"date"`
	ARIMA float64 `json:"arima"`
	RF    float64 `json:"rf"`
	DT    float64 `json:"dt"`
}

// ForecastResponse is the typed view of a successful ML /forecast body.
// The proxy relays the raw upstream bytes; this struct exists to validate
// shape at the boundary and for consumers that want typed access.
type ForecastResponse struct {
	Ticker      string           `json:"ticker"`
	TargetDate  string           `json:"target_date"`
	Currency    string           `json:"currency"`
	Predictions ModelPredictions `json:"predictions"`
	Metrics     *ForecastMetrics `json:"metrics,omitempty"`
	Residuals   []ResidualPoint  `json:"residuals,omitempty"`
	History     []PricePoint     `json:"history"`
}

// AnalysisRow is one dated row of technical indicators from ML /analysis.
// Field names match the upstream's column-style keys.
type AnalysisRow struct {
	Date    string  `json:"Date"`
	Close   float64 `json:"Close"`
	SMA20   float64 `json:"SMA_20"`
	EMA20   float64 `json:"EMA_20"`
	RSI     float64 `json:"RSI"`
	MACD    float64 `json:"MACD"`
	Signal  float64 `json:"Signal"`
	BBUpper float64 `json:"BB_Upper"`
	BBLower float64 `json:"BB_Lower"`
}

// AnalysisResponse is the typed view of a successful ML /analysis body.
type AnalysisResponse struct {
	Ticker string        `json:"ticker"`
	Data   []AnalysisRow `json:"data"`
}
