package weather

// Condition is one weather condition of a forecast interval.
type Condition struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// Measurements holds the numeric readings of a forecast interval.
type Measurements struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	TempMin   float64 `json:"temp_min"`
	TempMax   float64 `json:"temp_max"`
	Humidity  int     `json:"humidity"`
}

// Wind holds the wind readings of a forecast interval.
type Wind struct {
	Speed float64 `json:"speed"`
	Deg   int     `json:"deg"`
}

// ForecastEntry is one 3-hour interval of the provider forecast.
type ForecastEntry struct {
	Dt      int64        `json:"dt"`
	Main    Measurements `json:"main"`
	Weather []Condition  `json:"weather"`
	Wind    Wind         `json:"wind"`
	Pop     float64      `json:"pop"`
	DtTxt   string       `json:"dt_txt"`
}

// Alert levels reported with a forecast.
const (
	LevelDanger  = "danger"
	LevelSuccess = "success"
)

// Bundle is a short-term forecast classified with an alert level. Degraded
// is set when the provider could not be reached and the forecast is empty.
type Bundle struct {
	Previsions []ForecastEntry
	Niveau     string
	Degraded   bool
}

// Level classifies entries: danger when the first interval's primary
// condition is rain, success otherwise.
func Level(entries []ForecastEntry) string {
	if len(entries) > 0 && len(entries[0].Weather) > 0 && entries[0].Weather[0].Main == "Rain" {
		return LevelDanger
	}
	return LevelSuccess
}
