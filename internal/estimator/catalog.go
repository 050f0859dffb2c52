package estimator

import (
	"strings"

	"github.com/theirongolddev/kburn/internal/model"
)

// food is one canned nutrition profile.
type food struct {
	keywords    []string
	name        string
	calories    int
	confidence  float64
	description string
	nutrients   []model.Nutrient
}

func (f food) estimate(source string) model.Estimate {
	nutrients := make([]model.Nutrient, len(f.nutrients))
	copy(nutrients, f.nutrients)
	return model.Estimate{
		FoodName:    f.name,
		Calories:    f.calories,
		Nutrients:   nutrients,
		Confidence:  f.confidence,
		Description: f.description,
		Source:      source,
	}
}

// firstIndex returns the earliest position of any keyword in s, or -1.
func (f food) firstIndex(s string) int {
	first := -1
	for _, k := range f.keywords {
		if i := strings.Index(s, k); i >= 0 && (first < 0 || i < first) {
			first = i
		}
	}
	return first
}

// The food whose keyword appears earliest wins; catalog order breaks ties.
var catalog = []food{
	{
		keywords:    []string{"salad", "vegetable", "veg"},
		name:        "Garden Salad",
		calories:    120,
		confidence:  0.92,
		description: "A garden salad with lettuce, tomatoes, cucumber, and a light vinaigrette dressing. Single portion on a medium-sized plate.",
		nutrients: []model.Nutrient{
			{Name: "Protein", Value: 3, Unit: "g", Percentage: 6},
			{Name: "Carbohydrates", Value: 12, Unit: "g", Percentage: 4},
			{Name: "Fat", Value: 7, Unit: "g", Percentage: 9},
			{Name: "Fiber", Value: 5, Unit: "g", Percentage: 20},
			{Name: "Sodium", Value: 120, Unit: "mg", Percentage: 5},
		},
	},
	{
		keywords:    []string{"burger", "hamburger"},
		name:        "Beef Burger",
		calories:    540,
		confidence:  0.96,
		description: "Beef hamburger on a sesame seed bun with lettuce, tomato, cheese, and sauce. Served with a side of french fries. Standard restaurant serving size.",
		nutrients: []model.Nutrient{
			{Name: "Protein", Value: 25, Unit: "g", Percentage: 50},
			{Name: "Carbohydrates", Value: 40, Unit: "g", Percentage: 13},
			{Name: "Fat", Value: 33, Unit: "g", Percentage: 42},
			{Name: "Fiber", Value: 2, Unit: "g", Percentage: 8},
			{Name: "Sodium", Value: 950, Unit: "mg", Percentage: 41},
		},
	},
	{
		keywords:    []string{"pizza"},
		name:        "Cheese Pizza Slice",
		calories:    285,
		confidence:  0.89,
		description: "Two slices of cheese pizza with tomato sauce and mozzarella cheese on a thin crust. Medium-sized slices.",
		nutrients: []model.Nutrient{
			{Name: "Protein", Value: 12, Unit: "g", Percentage: 24},
			{Name: "Carbohydrates", Value: 36, Unit: "g", Percentage: 12},
			{Name: "Fat", Value: 10, Unit: "g", Percentage: 13},
			{Name: "Fiber", Value: 2, Unit: "g", Percentage: 8},
			{Name: "Sodium", Value: 640, Unit: "mg", Percentage: 28},
		},
	},
	{
		keywords:    []string{"fruit", "apple", "banana", "berry", "berries"},
		name:        "Mixed Fruit Bowl",
		calories:    95,
		confidence:  0.94,
		description: "A fruit bowl containing sliced apple, banana, strawberries, and blueberries. Approximately 2 cups in volume.",
		nutrients: []model.Nutrient{
			{Name: "Protein", Value: 1, Unit: "g", Percentage: 2},
			{Name: "Carbohydrates", Value: 25, Unit: "g", Percentage: 8},
			{Name: "Fat", Value: 0.3, Unit: "g", Percentage: 0},
			{Name: "Fiber", Value: 4, Unit: "g", Percentage: 16},
			{Name: "Sugar", Value: 18, Unit: "g", Percentage: 36},
		},
	},
	{
		keywords:    []string{"chicken", "meat", "poultry"},
		name:        "Grilled Chicken",
		calories:    320,
		confidence:  0.91,
		description: "Grilled chicken breast with steamed vegetables (broccoli, carrots) and a small portion of white rice. Restaurant portion, approximately 6oz of chicken.",
		nutrients: []model.Nutrient{
			{Name: "Protein", Value: 28, Unit: "g", Percentage: 56},
			{Name: "Carbohydrates", Value: 12, Unit: "g", Percentage: 4},
			{Name: "Fat", Value: 18, Unit: "g", Percentage: 23},
			{Name: "Fiber", Value: 0, Unit: "g", Percentage: 0},
			{Name: "Sodium", Value: 520, Unit: "mg", Percentage: 22},
		},
	},
}

const unknownDescription = "A food dish that appears to contain mixed ingredients. Unable to identify specific components. Appears to be a single serving portion."

// lookup returns the catalog food whose keyword appears earliest in s, so
// "chicken with vegetables" is chicken rather than salad.
func lookup(s string) (food, bool) {
	s = strings.ToLower(s)
	best, bestAt := food{}, -1
	for _, f := range catalog {
		if i := f.firstIndex(s); i >= 0 && (bestAt < 0 || i < bestAt) {
			best, bestAt = f, i
		}
	}
	return best, bestAt >= 0
}

// match identifies the food in a request from the filename, falling back to
// the user's own description. Generated descriptions are never matched.
func match(req Request) (food, bool) {
	if f, ok := lookup(req.Filename); ok {
		return f, true
	}
	return lookup(req.Description)
}

// Describe returns a plain-text meal description inferred from a filename.
func Describe(filename string) string {
	if f, ok := lookup(filename); ok {
		return f.description
	}
	return unknownDescription
}
