package shared

// Effect map keys understood by the stat translation boundary. Legacy
// item data stores modifiers as a free-form string map; everything that
// reaches combat goes through CombatantStats instead.
const (
	EffectAttack      = "attack"
	EffectMagicAttack = "magic_attack"
	EffectDefense     = "defense"
	EffectAgility     = "agility"
	EffectEvasion     = "evasion"
	EffectAccuracy    = "accuracy"
	EffectMaxHP       = "max_hp"
	EffectMaxSP       = "max_sp"
	EffectMaxMP       = "max_mp"
	EffectExtraDice   = "extra_dice"
	EffectHealHP      = "heal_hp"
	EffectHealMP      = "heal_mp"
	EffectHealSP      = "heal_sp"
)

// CombatantStats is the ephemeral stat block assembled at battle start
// from a character or monster plus its equipped items. It is mutated
// turn by turn (hp/sp/mp) and discarded when the battle ends.
type CombatantStats struct {
	Level       int `json:"level"`
	HP          int `json:"hp"`
	MaxHP       int `json:"max_hp"`
	SP          int `json:"sp"`
	MaxSP       int `json:"max_sp"`
	MP          int `json:"mp"`
	MaxMP       int `json:"max_mp"`
	Attack      int `json:"attack"`
	Defense     int `json:"defense"`
	Agility     int `json:"agility"`
	Evasion     int `json:"evasion"`
	Accuracy    int `json:"accuracy"`
	MagicAttack int `json:"magic_attack"`
}

// ApplyEffects folds an item effect map into the stat block. Unknown
// keys are ignored so partial legacy data stays harmless.
func (s *CombatantStats) ApplyEffects(effects map[string]int) {
	for key, value := range effects {
		switch key {
		case EffectAttack:
			s.Attack += value
		case EffectMagicAttack:
			s.MagicAttack += value
		case EffectDefense:
			s.Defense += value
		case EffectAgility:
			s.Agility += value
		case EffectEvasion:
			s.Evasion += value
		case EffectAccuracy:
			s.Accuracy += value
		case EffectMaxHP:
			s.MaxHP += value
			s.HP += value
		case EffectMaxSP:
			s.MaxSP += value
			s.SP += value
		case EffectMaxMP:
			s.MaxMP += value
			s.MP += value
		}
	}
}

// Get returns the named stat value, zero for unknown names. Used by
// equip requirement checks that reference stats by key.
func (s *CombatantStats) Get(name string) int {
	switch name {
	case EffectAttack:
		return s.Attack
	case EffectMagicAttack:
		return s.MagicAttack
	case EffectDefense:
		return s.Defense
	case EffectAgility:
		return s.Agility
	case EffectEvasion:
		return s.Evasion
	case EffectAccuracy:
		return s.Accuracy
	case "level":
		return s.Level
	case "hp":
		return s.HP
	case "sp":
		return s.SP
	case "mp":
		return s.MP
	}
	return 0
}

// TakeDamage reduces HP, clamping at zero.
func (s *CombatantStats) TakeDamage(amount int) {
	s.HP -= amount
	if s.HP < 0 {
		s.HP = 0
	}
}

// HealHP restores HP up to MaxHP and returns the amount restored.
func (s *CombatantStats) HealHP(amount int) int {
	return heal(&s.HP, s.MaxHP, amount)
}

// HealSP restores SP up to MaxSP and returns the amount restored.
func (s *CombatantStats) HealSP(amount int) int {
	return heal(&s.SP, s.MaxSP, amount)
}

// HealMP restores MP up to MaxMP and returns the amount restored.
func (s *CombatantStats) HealMP(amount int) int {
	return heal(&s.MP, s.MaxMP, amount)
}

// SpendSP deducts SP if enough is available.
func (s *CombatantStats) SpendSP(cost int) bool {
	if s.SP < cost {
		return false
	}
	s.SP -= cost
	return true
}

// IsAlive returns true while HP is above zero.
func (s *CombatantStats) IsAlive() bool {
	return s.HP > 0
}

// Clone returns a copy of the stat block.
func (s *CombatantStats) Clone() *CombatantStats {
	clone := *s
	return &clone
}

func heal(current *int, max, amount int) int {
	if amount < 0 {
		amount = 0
	}
	before := *current
	*current += amount
	if *current > max {
		*current = max
	}
	return *current - before
}
