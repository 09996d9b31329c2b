package battle

import (
	"strconv"
	"strings"
)

// ActionType enumerates what a player can do on their turn.
type ActionType string

const (
	ActionAttack ActionType = "attack"
	ActionDefend ActionType = "defend"
	ActionSkill  ActionType = "skill"
	ActionItem   ActionType = "item"
	ActionEscape ActionType = "escape"
)

// Action is a parsed action token.
type Action struct {
	Type    ActionType
	SkillID string // for skill:<id>
	Slot    int    // for item:<slot>
}

// ParseAction parses an action token: attack | defend | skill:<id> |
// item:<slot> | escape.
func ParseAction(token string) (*Action, bool) {
	token = strings.TrimSpace(token)

	switch token {
	case string(ActionAttack):
		return &Action{Type: ActionAttack}, true
	case string(ActionDefend):
		return &Action{Type: ActionDefend}, true
	case string(ActionEscape):
		return &Action{Type: ActionEscape}, true
	}

	if id, ok := strings.CutPrefix(token, "skill:"); ok && id != "" {
		return &Action{Type: ActionSkill, SkillID: id}, true
	}

	if raw, ok := strings.CutPrefix(token, "item:"); ok {
		slot, err := strconv.Atoi(raw)
		if err != nil || slot < 0 {
			return nil, false
		}
		return &Action{Type: ActionItem, Slot: slot}, true
	}

	return nil, false
}
