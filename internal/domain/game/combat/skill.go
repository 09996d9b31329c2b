package combat

// Skill is a weapon-bound special attack: it costs SP and scales the
// weapon's resolved damage.
type Skill struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	SPCost     int     `json:"sp_cost"`
	Multiplier float64 `json:"multiplier"`
}

// builtin skills referenced by weapon special_skill_id.
var skills = map[string]*Skill{
	"power-slash": {ID: "power-slash", Name: "Power Slash", SPCost: 8, Multiplier: 1.8},
	"double-cut":  {ID: "double-cut", Name: "Double Cut", SPCost: 5, Multiplier: 1.4},
	"mana-burst":  {ID: "mana-burst", Name: "Mana Burst", SPCost: 10, Multiplier: 2.0},
}

// SkillByID looks up a skill definition.
func SkillByID(id string) (*Skill, bool) {
	s, ok := skills[id]
	return s, ok
}
