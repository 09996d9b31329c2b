package combat

import (
	"time"

	"github.com/mizutanik/roadquest/internal/domain/shared"
)

// State tracks where a battle is in its lifecycle.
type State string

const (
	StateStarting State = "starting" // created by an encounter, no action yet
	StateActive   State = "active"   // combat in progress
	StateVictory  State = "victory"  // terminal
	StateDefeat   State = "defeat"   // terminal
	StateEscaped  State = "escaped"  // terminal
)

// Actor identifies who produced a log entry.
type Actor string

const (
	ActorPlayer  Actor = "player"
	ActorMonster Actor = "monster"
	ActorSystem  Actor = "system"
)

// LogEntry is one ordered battle-log record, structured enough for the
// web layer to render or serialize as-is.
type LogEntry struct {
	Turn     int    `json:"turn"`
	Actor    Actor  `json:"actor"`
	Kind     string `json:"kind"` // attack, skill, defend, item, escape, reward, state
	Message  string `json:"message"`
	Damage   int    `json:"damage,omitempty"`
	Critical bool   `json:"critical,omitempty"`
}

// Rewards granted on victory.
type Rewards struct {
	Exp  int `json:"exp"`
	Gold int `json:"gold"`
}

// Battle is the session-scoped record of one in-progress battle:
// combatant snapshots assembled at encounter time, a turn counter, an
// ordered log, and the state machine. It is created on encounter,
// mutated each turn, and becomes immutable once terminal.
type Battle struct {
	ID            string                 `json:"id"`
	CharacterID   string                 `json:"character_id"`
	CharacterName string                 `json:"character_name"`
	MonsterKey    string                 `json:"monster_key"`
	MonsterName   string                 `json:"monster_name"`
	State         State                  `json:"state"`
	Turn          int                    `json:"turn"`
	Log           []LogEntry             `json:"log"`
	Character     *shared.CombatantStats `json:"character"`
	Monster       *shared.CombatantStats `json:"monster"`
	Defending     bool                   `json:"defending"`
	Rewards       *Rewards               `json:"rewards,omitempty"`
	CreatedAt     time.Time              `json:"created_at"`
	EndedAt       *time.Time             `json:"ended_at,omitempty"`
}

// NewBattle creates a battle in the starting state.
func NewBattle(id, characterID, characterName, monsterKey, monsterName string, character, monster *shared.CombatantStats) *Battle {
	return &Battle{
		ID:            id,
		CharacterID:   characterID,
		CharacterName: characterName,
		MonsterKey:    monsterKey,
		MonsterName:   monsterName,
		State:         StateStarting,
		Turn:          0,
		Log:           []LogEntry{},
		Character:     character,
		Monster:       monster,
		CreatedAt:     time.Now().UTC(),
	}
}

// Activate moves a starting battle to active on the first player action.
func (b *Battle) Activate() {
	if b.State == StateStarting {
		b.State = StateActive
	}
}

// IsTerminal reports whether the battle has ended.
func (b *Battle) IsTerminal() bool {
	switch b.State {
	case StateVictory, StateDefeat, StateEscaped:
		return true
	}
	return false
}

// AppendLog appends an entry stamped with the current turn.
func (b *Battle) AppendLog(actor Actor, kind, message string, damage int, critical bool) {
	b.Log = append(b.Log, LogEntry{
		Turn:     b.Turn,
		Actor:    actor,
		Kind:     kind,
		Message:  message,
		Damage:   damage,
		Critical: critical,
	})
}

// LogMessages flattens the log for plain-text rendering.
func (b *Battle) LogMessages() []string {
	out := make([]string, len(b.Log))
	for i, entry := range b.Log {
		out[i] = entry.Message
	}
	return out
}

// End moves the battle into a terminal state. Once terminal it stays
// terminal.
func (b *Battle) End(state State) {
	if b.IsTerminal() {
		return
	}
	b.State = state
	now := time.Now().UTC()
	b.EndedAt = &now
}

// Clone returns a deep copy of the battle.
func (b *Battle) Clone() *Battle {
	clone := *b
	clone.Log = make([]LogEntry, len(b.Log))
	copy(clone.Log, b.Log)
	if b.Character != nil {
		clone.Character = b.Character.Clone()
	}
	if b.Monster != nil {
		clone.Monster = b.Monster.Clone()
	}
	if b.Rewards != nil {
		rewards := *b.Rewards
		clone.Rewards = &rewards
	}
	if b.EndedAt != nil {
		ended := *b.EndedAt
		clone.EndedAt = &ended
	}
	return &clone
}

// CheckEnd inspects HP totals and ends the battle when either side has
// fallen. The monster falling wins even if both are at zero: the
// player's action resolves first within a turn.
func (b *Battle) CheckEnd() (bool, State) {
	if b.IsTerminal() {
		return true, b.State
	}
	if !b.Monster.IsAlive() {
		b.End(StateVictory)
		return true, StateVictory
	}
	if !b.Character.IsAlive() {
		b.End(StateDefeat)
		return true, StateDefeat
	}
	return false, b.State
}
