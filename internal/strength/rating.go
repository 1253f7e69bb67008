package strength

import "github.com/passforge/passforge/internal/generator"

// Level is a coarse strength tier.
type Level string

const (
	LevelWeak   Level = "weak"
	LevelFair   Level = "fair"
	LevelGood   Level = "good"
	LevelStrong Level = "strong"
)

// Rating describes a score in terms meaningful for its policy.
type Rating struct {
	Level       Level  `json:"level"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

type tier struct {
	min         int
	level       Level
	label       string
	description string
}

// Tiers are ordered strongest first; the last entry catches everything.
var tiers = map[generator.Type][]tier{
	generator.TypePin: {
		{35, LevelStrong, "Strong PIN", "This PIN avoids common patterns and is sufficiently long"},
		{25, LevelGood, "Good PIN", "This PIN is reasonably secure for most uses"},
		{15, LevelFair, "Fair PIN", "Consider using a longer PIN or avoiding simple patterns"},
		{0, LevelWeak, "Weak PIN", "This PIN may be easily guessed, use a longer and more random PIN"},
	},
	generator.TypeMemorable: {
		{70, LevelStrong, "Very Memorable & Secure", "Great balance of memorability and security with good word variety"},
		{55, LevelGood, "Good & Memorable", "Good memorable password with decent complexity"},
		{40, LevelFair, "Fair & Memorable", "Memorable but could benefit from more words or numbers"},
		{0, LevelWeak, "Weak but Memorable", "Easy to remember but consider adding more complexity"},
	},
	generator.TypeSmart: {
		{75, LevelStrong, "Excellent Smart Password", "Excellent pattern-based password with good entropy"},
		{60, LevelGood, "Good Smart Password", "Good smart password following secure patterns"},
		{45, LevelFair, "Fair Smart Password", "Decent smart password, could be more complex"},
		{0, LevelWeak, "Weak Smart Password", "Smart pattern but needs more complexity"},
	},
	generator.TypeUniform: {
		{80, LevelStrong, "Very Strong", "Excellent random password with high entropy"},
		{60, LevelGood, "Strong", "Strong random password suitable for sensitive accounts"},
		{40, LevelFair, "Fair", "Adequate for most purposes, consider longer length"},
		{0, LevelWeak, "Weak", "Too weak, increase length or add more character types"},
	},
}

// Rate maps a score to the tier of policy t. Unknown policies use the uniform tiers.
func Rate(score int, t generator.Type) Rating {
	list, ok := tiers[t]
	if !ok {
		list = tiers[generator.TypeUniform]
	}
	for _, tr := range list {
		if score >= tr.min {
			return Rating{Level: tr.level, Label: tr.label, Description: tr.description}
		}
	}
	last := list[len(list)-1]
	return Rating{Level: last.level, Label: last.label, Description: last.description}
}
