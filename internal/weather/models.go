package weather

// QueryResult is the parsed Visual Crossing timeline response. The upstream
// schema is externally controlled: unknown fields are ignored and optional
// measurements decode into pointers so nulls survive the round trip. Only
// the per-day temperature fields feed the reduction; the rest is carried for
// callers that want the full document.
type QueryResult struct {
	QueryCost       int                `json:"queryCost"`
	Latitude        float64            `json:"latitude"`
	Longitude       float64            `json:"longitude"`
	ResolvedAddress string             `json:"resolvedAddress"`
	Address         string             `json:"address"`
	Timezone        string             `json:"timezone"`
	TZOffset        float64            `json:"tzoffset"`
	Days            []Day              `json:"days"`
	Stations        map[string]Station `json:"stations"`
}

// Day is a single daily record from the timeline response.
type Day struct {
	Date           string       `json:"datetime"`
	DateEpoch      int64        `json:"datetimeEpoch"`
	TempMax        float64      `json:"tempmax"`
	TempMin        float64      `json:"tempmin"`
	Temp           float64      `json:"temp"`
	FeelsLikeMax   float64      `json:"feelslikemax"`
	FeelsLikeMin   float64      `json:"feelslikemin"`
	FeelsLike      float64      `json:"feelslike"`
	Dew            float64      `json:"dew"`
	Humidity       float64      `json:"humidity"`
	Precip         float64      `json:"precip"`
	PrecipProb     float64      `json:"precipprob"`
	PrecipCover    float64      `json:"precipcover"`
	PrecipType     []string     `json:"preciptype"`
	Snow           float64      `json:"snow"`
	SnowDepth      float64      `json:"snowdepth"`
	WindGust       float64      `json:"windgust"`
	WindSpeed      float64      `json:"windspeed"`
	WindDir        float64      `json:"winddir"`
	Pressure       float64      `json:"pressure"`
	CloudCover     float64      `json:"cloudcover"`
	Visibility     float64      `json:"visibility"`
	SolarRadiation *float64     `json:"solarradiation"`
	SolarEnergy    *float64     `json:"solarenergy"`
	UVIndex        *int         `json:"uvindex"`
	Sunrise        string       `json:"sunrise"`
	SunriseEpoch   int64        `json:"sunriseEpoch"`
	Sunset         string       `json:"sunset"`
	SunsetEpoch    int64        `json:"sunsetEpoch"`
	MoonPhase      float64      `json:"moonphase"`
	Conditions     string       `json:"conditions"`
	Description    string       `json:"description"`
	Icon           string       `json:"icon"`
	Stations       []string     `json:"stations"`
	Source         string       `json:"source"`
	Normal         *NormalRange `json:"normal"`
	Hours          []Hour       `json:"hours"`
}

// Hour is a single hourly record inside a Day.
type Hour struct {
	Time           string   `json:"datetime"`
	TimeEpoch      int64    `json:"datetimeEpoch"`
	Temp           float64  `json:"temp"`
	FeelsLike      float64  `json:"feelslike"`
	Humidity       float64  `json:"humidity"`
	Dew            float64  `json:"dew"`
	Precip         float64  `json:"precip"`
	PrecipProb     float64  `json:"precipprob"`
	Snow           float64  `json:"snow"`
	SnowDepth      float64  `json:"snowdepth"`
	PrecipType     []string `json:"preciptype"`
	WindGust       *float64 `json:"windgust"`
	WindSpeed      float64  `json:"windspeed"`
	WindDir        float64  `json:"winddir"`
	Pressure       float64  `json:"pressure"`
	Visibility     float64  `json:"visibility"`
	CloudCover     float64  `json:"cloudcover"`
	SolarRadiation *float64 `json:"solarradiation"`
	SolarEnergy    *float64 `json:"solarenergy"`
	UVIndex        *int     `json:"uvindex"`
	Conditions     string   `json:"conditions"`
	Icon           string   `json:"icon"`
	Stations       []string `json:"stations"`
	Source         string   `json:"source"`
}

// NormalRange holds climatology normals for a day. Some platforms report
// nulls inside the slices.
type NormalRange struct {
	TempMax    []float64  `json:"tempmax"`
	TempMin    []float64  `json:"tempmin"`
	FeelsLike  []float64  `json:"feelslike"`
	Precip     []float64  `json:"precip"`
	Humidity   []float64  `json:"humidity"`
	SnowDepth  []*float64 `json:"snowdepth"`
	WindSpeed  []float64  `json:"windspeed"`
	WindGust   []float64  `json:"windgust"`
	WindDir    []float64  `json:"winddir"`
	CloudCover []float64  `json:"cloudcover"`
}

// Station describes a weather station that contributed to the response.
type Station struct {
	Distance     float64 `json:"distance"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	UseCount     int     `json:"useCount"`
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Quality      int     `json:"quality"`
	Contribution float64 `json:"contribution"`
}
