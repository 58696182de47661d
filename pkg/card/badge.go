package card

import "github.com/artem13815/resumeboard/pkg/settings"

type Level string

const (
	LevelExcellent Level = "excellent"
	LevelGood      Level = "good"
	LevelFair      Level = "fair"
	LevelNeutral   Level = "neutral"
)

// Badge is the color/label pair of a score badge. The background stays white;
// only text and border classes vary.
type Badge struct {
	Level       Level  `json:"level"`
	Label       string `json:"label"`
	TextClass   string `json:"textClass"`
	BorderClass string `json:"borderClass"`
}

// Classes returns the CSS classes applied to the score element.
func (b Badge) Classes() []string {
	return []string{"bg-white", b.TextClass, b.BorderClass, "border-2"}
}

// BadgeFor picks the style for a score: >= excellent, >= good, anything lower,
// or neutral when the record has not been scored.
func BadgeFor(score *int, th settings.Thresholds) Badge {
	if score == nil {
		return Badge{Level: LevelNeutral, Label: "Not scored", TextClass: "text-gray-700", BorderClass: "border-gray-300"}
	}
	s := Clamp(*score)
	switch {
	case s >= th.Excellent:
		return Badge{Level: LevelExcellent, Label: "Excellent", TextClass: "text-green-700", BorderClass: "border-green-400"}
	case s >= th.Good:
		return Badge{Level: LevelGood, Label: "Good", TextClass: "text-yellow-700", BorderClass: "border-yellow-400"}
	default:
		return Badge{Level: LevelFair, Label: "Fair", TextClass: "text-red-700", BorderClass: "border-red-400"}
	}
}

// Clamp bounds a score to [0,100]. Stored scores are never clamped, only rendered ones.
func Clamp(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
