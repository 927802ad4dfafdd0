package deck

// SpreadType identifies a fixed card layout.
type SpreadType string

const (
	SpreadSingle      SpreadType = "single"
	SpreadThreeCard   SpreadType = "three_card"
	SpreadLove        SpreadType = "love"
	SpreadCareer      SpreadType = "career"
	SpreadCelticCross SpreadType = "celtic_cross"
)

// layouts maps every spread to its positional labels. The label count is the
// required card count for the spread.
var layouts = map[SpreadType][]string{
	SpreadSingle:    {"Focus"},
	SpreadThreeCard: {"Past", "Present", "Future"},
	SpreadLove:      {"You", "The Other", "The Relationship"},
	SpreadCareer:    {"Situation", "Obstacle", "Advice"},
	SpreadCelticCross: {
		"Present", "Challenge", "Foundation", "Recent Past", "Crown",
		"Near Future", "Self", "Environment", "Hopes and Fears", "Outcome",
	},
}

// AllSpreads lists the selectable spreads in menu order.
func AllSpreads() []SpreadType {
	return []SpreadType{SpreadSingle, SpreadThreeCard, SpreadLove, SpreadCareer, SpreadCelticCross}
}

// ParseSpread validates a raw spread selection.
func ParseSpread(raw string) (SpreadType, error) {
	st := SpreadType(raw)
	if _, ok := layouts[st]; !ok {
		return "", ErrUnknownSpread
	}
	return st, nil
}

func (s SpreadType) Valid() bool {
	_, ok := layouts[s]
	return ok
}

// CardCount returns how many cards the spread requires.
func (s SpreadType) CardCount() int { return len(layouts[s]) }

// Labels returns the positional labels in draw order.
func (s SpreadType) Labels() []string { return layouts[s] }
