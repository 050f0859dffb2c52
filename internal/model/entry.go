package model

import "time"

// DateLayout is the on-disk and CLI date format for diary entries.
const DateLayout = "2006-01-02"

// TimeLayout is the clock format for an entry's optional time of day.
const TimeLayout = "15:04"

// Entry sources.
const (
	SourceManual      = "manual"
	SourceSimulated   = "simulated"
	SourceOpenAI      = "openai"
	SourceRekognition = "rekognition"
)

// FoodEntry is one logged item in the food diary.
type FoodEntry struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Calories int     `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Date     string  `json:"date"`
	Time     string  `json:"time,omitempty"`
	ImageURL string  `json:"image_url,omitempty"`
	Source   string  `json:"source,omitempty"`
}

// Day parses the entry date in the local timezone.
func (e FoodEntry) Day() (time.Time, error) {
	return time.ParseInLocation(DateLayout, e.Date, time.Local)
}

// Nutrient is one labelled nutrition value from an estimate.
type Nutrient struct {
	Name       string  `json:"name"`
	Value      float64 `json:"value"`
	Unit       string  `json:"unit"`
	Percentage float64 `json:"percentage"` // of daily value
}

// Estimate is what a nutrition estimator returns for one photo or description.
type Estimate struct {
	FoodName    string     `json:"food_name"`
	Calories    int        `json:"calories"`
	Nutrients   []Nutrient `json:"nutrients,omitempty"`
	Confidence  float64    `json:"confidence"` // 0.0-1.0
	Description string     `json:"description,omitempty"`
	Explanation string     `json:"explanation,omitempty"`
	Source      string     `json:"source"`
}

// Nutrient returns the value of the named nutrient, or 0.
func (e Estimate) Nutrient(name string) float64 {
	for _, n := range e.Nutrients {
		if n.Name == name {
			return n.Value
		}
	}
	return 0
}

// Entry converts the estimate into a diary entry stamped at the given time.
func (e Estimate) Entry(at time.Time) FoodEntry {
	return FoodEntry{
		Name:     e.FoodName,
		Calories: e.Calories,
		Protein:  e.Nutrient("Protein"),
		Carbs:    e.Nutrient("Carbohydrates"),
		Fat:      e.Nutrient("Fat"),
		Date:     at.Format(DateLayout),
		Time:     at.Format(TimeLayout),
		Source:   e.Source,
	}
}
