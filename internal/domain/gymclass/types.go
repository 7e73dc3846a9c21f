package gymclass

// Category is an open set; the site adds new program categories without a
// schema change, so unknown values are allowed.
type Category string

const (
	CategoryHIIT     Category = "HIIT"
	CategoryStrength Category = "Strength"
	CategoryCardio   Category = "Cardio"
	CategoryMindBody Category = "Mind & Body"
)

func (c Category) String() string {
	return string(c)
}
