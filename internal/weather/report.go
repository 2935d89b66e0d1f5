package weather

import (
	"fmt"
	"strconv"
	"strings"
)

// Report is a snapshot of current conditions.
type Report struct {
	Condition    string
	TemperatureC int
	FeelsLikeC   int
	Humidity     int
	Location     string
	ObservedAt   string
}

// Format renders the report on one line, e.g.
// "Shanghai · Sunny · 21°C (feels 20°C) · 60%".
func (r *Report) Format() string {
	if r == nil {
		return ""
	}
	parts := make([]string, 0, 4)
	if r.Location != "" {
		parts = append(parts, r.Location)
	}
	if r.Condition != "" {
		parts = append(parts, r.Condition)
	}
	parts = append(parts, fmt.Sprintf("%d°C (feels %d°C)", r.TemperatureC, r.FeelsLikeC))
	parts = append(parts, fmt.Sprintf("%d%%", r.Humidity))
	return strings.Join(parts, " · ")
}

// j1Response is the subset of the wttr.in ?format=j1 document we read.
type j1Response struct {
	CurrentCondition []struct {
		TempC            string    `json:"temp_C"`
		FeelsLikeC       string    `json:"FeelsLikeC"`
		Humidity         string    `json:"humidity"`
		LocalObsDateTime string    `json:"localObsDateTime"`
		WeatherDesc      []j1Value `json:"weatherDesc"`
		LangZh           []j1Value `json:"lang_zh"`
	} `json:"current_condition"`
	NearestArea []struct {
		AreaName []j1Value `json:"areaName"`
		Country  []j1Value `json:"country"`
	} `json:"nearest_area"`
}

type j1Value struct {
	Value string `json:"value"`
}

func firstValue(vs []j1Value) string {
	if len(vs) == 0 {
		return ""
	}
	return strings.TrimSpace(vs[0].Value)
}

// toReport converts the decoded document. Numeric fields arrive as strings.
func (r *j1Response) toReport() (*Report, error) {
	if len(r.CurrentCondition) == 0 {
		return nil, newParseError("response has no current_condition", nil)
	}
	cc := r.CurrentCondition[0]

	temp, err := strconv.Atoi(cc.TempC)
	if err != nil {
		return nil, newParseError("invalid temp_C", err)
	}
	// FeelsLikeC and humidity are informational; tolerate their absence.
	feels, err := strconv.Atoi(cc.FeelsLikeC)
	if err != nil {
		feels = temp
	}
	humidity, _ := strconv.Atoi(cc.Humidity)

	condition := firstValue(cc.LangZh)
	if condition == "" {
		condition = firstValue(cc.WeatherDesc)
	}

	report := &Report{
		Condition:    condition,
		TemperatureC: temp,
		FeelsLikeC:   feels,
		Humidity:     humidity,
		ObservedAt:   cc.LocalObsDateTime,
	}
	if len(r.NearestArea) > 0 {
		report.Location = firstValue(r.NearestArea[0].AreaName)
	}
	return report, nil
}
