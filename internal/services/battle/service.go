package battle

//go:generate mockgen -destination=mock/mock_service.go -package=mockbattle -source=service.go

import (
	"context"
	"fmt"
	"log"
	"math"
	"sync"

	"github.com/mizutanik/roadquest/internal/dice"
	"github.com/mizutanik/roadquest/internal/domain/character"
	"github.com/mizutanik/roadquest/internal/domain/game/combat"
	"github.com/mizutanik/roadquest/internal/domain/item"
	"github.com/mizutanik/roadquest/internal/domain/shared"
	apperrors "github.com/mizutanik/roadquest/internal/errors"
	"github.com/mizutanik/roadquest/internal/metrics"
	"github.com/mizutanik/roadquest/internal/repositories/battles"
	"github.com/mizutanik/roadquest/internal/repositories/characters"
	"github.com/mizutanik/roadquest/internal/repositories/monsters"
	"github.com/mizutanik/roadquest/internal/uuid"
)

const (
	escapeBaseChance = 50
	escapeMinChance  = 10
	escapeMaxChance  = 95
)

// TurnResult is the JSON-serializable outcome of one battle turn,
// handed to the web layer as-is.
type TurnResult struct {
	Success   bool                   `json:"success"`
	BattleEnd bool                   `json:"battle_end"`
	Character *shared.CombatantStats `json:"character"`
	Monster   *shared.CombatantStats `json:"monster"`
	BattleLog []combat.LogEntry      `json:"battle_log"`
	Turn      int                    `json:"turn"`
	Message   string                 `json:"message"`
	Result    string                 `json:"result,omitempty"`
	BattleID  string                 `json:"battle_id"`
}

// Service defines the battle orchestration interface
type Service interface {
	// StartBattle creates a battle between a character and a monster
	StartBattle(ctx context.Context, characterID, monsterKey string) (*combat.Battle, error)

	// GetBattle retrieves a battle by ID
	GetBattle(ctx context.Context, battleID string) (*combat.Battle, error)

	// ExecuteTurn resolves one full turn: the player action, then the
	// monster's reaction if the battle is still going
	ExecuteTurn(ctx context.Context, battleID, actionToken string) (*TurnResult, error)
}

type service struct {
	battles       battles.Repository
	characters    characters.Repository
	monsters      monsters.Repository
	diceRoller    dice.Roller
	uuidGenerator uuid.Generator

	// one turn at a time per battle; guards double-submitted actions
	turnLocks sync.Map // battle ID -> *sync.Mutex
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	BattleRepository    battles.Repository
	CharacterRepository characters.Repository
	MonsterRepository   monsters.Repository
	DiceRoller          dice.Roller
	UUIDGenerator       uuid.Generator
}

// NewService creates a new battle service
func NewService(cfg *ServiceConfig) Service {
	if cfg.BattleRepository == nil {
		panic("battle repository is required")
	}
	if cfg.CharacterRepository == nil {
		panic("character repository is required")
	}
	if cfg.MonsterRepository == nil {
		panic("monster repository is required")
	}

	svc := &service{
		battles:    cfg.BattleRepository,
		characters: cfg.CharacterRepository,
		monsters:   cfg.MonsterRepository,
		diceRoller: cfg.DiceRoller,
	}

	if svc.diceRoller == nil {
		svc.diceRoller = dice.NewRandomRoller()
	}

	if cfg.UUIDGenerator != nil {
		svc.uuidGenerator = cfg.UUIDGenerator
	} else {
		svc.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}

	return svc
}

func (s *service) lockBattle(battleID string) func() {
	muAny, _ := s.turnLocks.LoadOrStore(battleID, &sync.Mutex{})
	mu := muAny.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

// StartBattle creates a battle between a character and a monster,
// snapshotting both stat blocks.
func (s *service) StartBattle(ctx context.Context, characterID, monsterKey string) (*combat.Battle, error) {
	if characterID == "" || monsterKey == "" {
		return nil, apperrors.InvalidArgument("character ID and monster key are required")
	}

	existing, err := s.battles.GetActiveByCharacter(ctx, characterID)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to check active battle")
	}
	if existing != nil {
		return nil, apperrors.AlreadyExists("character is already in battle")
	}

	char, err := s.characters.Get(ctx, characterID)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to get character")
	}

	mon, err := s.monsters.GetByKey(ctx, monsterKey)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to get monster")
	}

	battle := combat.NewBattle(
		s.uuidGenerator.New(),
		char.ID,
		char.Name,
		mon.Key,
		mon.Name,
		char.CombatStats(),
		mon.CombatStats(),
	)
	battle.AppendLog(combat.ActorSystem, "state", fmt.Sprintf("%s appeared!", mon.Name), 0, false)

	if err := s.battles.Create(ctx, battle); err != nil {
		return nil, apperrors.Wrap(err, "failed to create battle")
	}

	metrics.BattlesStarted.Inc()
	log.Printf("battle %s started: %s vs %s", battle.ID, char.Name, mon.Name)
	return battle, nil
}

// GetBattle retrieves a battle by ID
func (s *service) GetBattle(ctx context.Context, battleID string) (*combat.Battle, error) {
	return s.battles.Get(ctx, battleID)
}

// ExecuteTurn resolves one full battle turn. Validation failures
// (unknown action, broken weapon, unusable item, not enough SP) come
// back as unsuccessful results without consuming the turn; the monster
// only reacts to a turn that actually happened.
func (s *service) ExecuteTurn(ctx context.Context, battleID, actionToken string) (*TurnResult, error) {
	unlock := s.lockBattle(battleID)
	defer unlock()

	battle, err := s.battles.Get(ctx, battleID)
	if err != nil {
		return nil, err
	}

	if battle.IsTerminal() {
		return failureResult(battle, "the battle is already over"), nil
	}

	action, ok := ParseAction(actionToken)
	if !ok {
		return failureResult(battle, fmt.Sprintf("unknown action: %s", actionToken)), nil
	}

	char, err := s.characters.Get(ctx, battle.CharacterID)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to get character")
	}

	battle.Activate()
	battle.Turn++

	escaped, failMsg, err := s.resolvePlayerAction(battle, char, action)
	if err != nil {
		return nil, err
	}
	if failMsg != "" {
		battle.Turn--
		return failureResult(battle, failMsg), nil
	}

	ended, _ := battle.CheckEnd()

	if !ended && !escaped && battle.Monster.IsAlive() {
		if err := s.resolveMonsterAction(ctx, battle); err != nil {
			return nil, err
		}
		ended, _ = battle.CheckEnd()
	}
	battle.Defending = false

	if ended && battle.State == combat.StateVictory {
		if err := s.grantRewards(ctx, battle, char); err != nil {
			return nil, err
		}
	}

	if err := s.characters.Update(ctx, char); err != nil {
		return nil, apperrors.Wrap(err, "failed to persist character")
	}
	if err := s.battles.Update(ctx, battle); err != nil {
		return nil, apperrors.Wrap(err, "failed to persist battle")
	}

	metrics.TurnsResolved.WithLabelValues(string(action.Type)).Inc()
	if battle.IsTerminal() {
		metrics.BattlesEnded.WithLabelValues(string(battle.State)).Inc()
	}

	message := ""
	if n := len(battle.Log); n > 0 {
		message = battle.Log[n-1].Message
	}

	result := &TurnResult{
		Success:   true,
		BattleEnd: battle.IsTerminal(),
		Character: battle.Character,
		Monster:   battle.Monster,
		BattleLog: battle.Log,
		Turn:      battle.Turn,
		Message:   message,
		BattleID:  battle.ID,
	}
	if battle.IsTerminal() {
		result.Result = string(battle.State)
	}
	return result, nil
}

// resolvePlayerAction applies the player's action to the battle. It
// returns escaped=true when the battle ended by escape, or a non-empty
// failMsg for validation failures that should not consume the turn.
func (s *service) resolvePlayerAction(battle *combat.Battle, char *character.Character, action *Action) (bool, string, error) {
	switch action.Type {
	case ActionAttack:
		return false, s.playerAttack(battle, char, 1.0, "attack"), nil

	case ActionDefend:
		battle.Defending = true
		battle.AppendLog(combat.ActorPlayer, "defend", fmt.Sprintf("%s braces for the next attack", battle.CharacterName), 0, false)
		return false, "", nil

	case ActionSkill:
		weapon := char.EquippedWeapon()
		if weapon == nil || weapon.Weapon == nil || weapon.Weapon.SpecialSkillID != action.SkillID {
			return false, fmt.Sprintf("skill %s is not available", action.SkillID), nil
		}
		skill, ok := combat.SkillByID(action.SkillID)
		if !ok {
			return false, fmt.Sprintf("skill %s is not available", action.SkillID), nil
		}
		if !battle.Character.SpendSP(skill.SPCost) {
			return false, fmt.Sprintf("not enough SP for %s", skill.Name), nil
		}
		return false, s.playerAttack(battle, char, skill.Multiplier, "skill"), nil

	case ActionItem:
		slot := char.ItemAt(action.Slot)
		if slot == nil {
			return false, fmt.Sprintf("no item in slot %d", action.Slot), nil
		}
		used := slot.Item.Use(battle.Character)
		if !used.Success {
			return false, used.Message, nil
		}
		if slot.Item.Consume.UsageLimit == 0 || slot.Item.Consume.RemainingUses <= 0 {
			char.RemoveFromSlot(action.Slot, 1)
			slot.Item.ResetUses()
		}
		metrics.ItemsUsed.Inc()
		battle.AppendLog(combat.ActorPlayer, "item", used.Message, used.Delta, false)
		return false, "", nil

	case ActionEscape:
		return s.attemptEscape(battle)
	}

	return false, "unsupported action", nil
}

func (s *service) playerAttack(battle *combat.Battle, char *character.Character, multiplier float64, kind string) (failMsg string) {
	weapon := char.EquippedWeapon()
	if weapon == nil {
		weapon = bareHands()
	}

	if weapon.IsBroken() {
		return fmt.Sprintf("%s is broken", weapon.Name)
	}

	result, err := weapon.AttackDamage(s.diceRoller, battle.Character, battle.Monster)
	if err != nil {
		// roller exhaustion only happens with a misconfigured mock
		return err.Error()
	}

	if result.Hit {
		damage := result.Damage
		if multiplier != 1.0 {
			damage = int(math.Round(float64(damage) * multiplier))
		}
		battle.Monster.TakeDamage(damage)
		message := result.Message
		if multiplier != 1.0 {
			message = fmt.Sprintf("%s (x%.1f)", result.Message, multiplier)
		}
		battle.AppendLog(combat.ActorPlayer, kind, message, damage, result.Critical)
	} else {
		battle.AppendLog(combat.ActorPlayer, kind, result.Message, 0, false)
	}
	return ""
}

// attemptEscape rolls the escape chance: 50% adjusted by the agility
// difference, clamped to [10,95]. Success ends the battle and skips the
// monster's turn; failure leaves the monster free to act.
func (s *service) attemptEscape(battle *combat.Battle) (bool, string, error) {
	chance := escapeBaseChance + battle.Character.Agility - battle.Monster.Agility
	if chance < escapeMinChance {
		chance = escapeMinChance
	}
	if chance > escapeMaxChance {
		chance = escapeMaxChance
	}

	roll, err := s.diceRoller.Roll(1, 100, 0)
	if err != nil {
		return false, "", apperrors.Wrap(err, "escape roll failed")
	}

	if roll.Total <= chance {
		battle.End(combat.StateEscaped)
		battle.AppendLog(combat.ActorPlayer, "escape", fmt.Sprintf("%s escaped from battle", battle.CharacterName), 0, false)
		return true, "", nil
	}

	battle.AppendLog(combat.ActorPlayer, "escape", fmt.Sprintf("%s failed to escape", battle.CharacterName), 0, false)
	return false, "", nil
}

func (s *service) resolveMonsterAction(ctx context.Context, battle *combat.Battle) error {
	mon, err := s.monsters.GetByKey(ctx, battle.MonsterKey)
	if err != nil {
		return apperrors.Wrap(err, "failed to get monster")
	}

	result, err := mon.NaturalWeapon().AttackDamage(s.diceRoller, battle.Monster, battle.Character)
	if err != nil {
		return apperrors.Wrap(err, "monster attack failed")
	}

	if !result.Hit {
		battle.AppendLog(combat.ActorMonster, "attack", fmt.Sprintf("%s misses", battle.MonsterName), 0, false)
		return nil
	}

	damage := result.Damage
	if battle.Defending {
		damage = int(math.Round(float64(damage) / 2))
		if damage < 1 {
			damage = 1
		}
	}
	battle.Character.TakeDamage(damage)
	battle.AppendLog(combat.ActorMonster, "attack", fmt.Sprintf("%s hits %s for %d damage", battle.MonsterName, battle.CharacterName, damage), damage, result.Critical)
	return nil
}

func (s *service) grantRewards(ctx context.Context, battle *combat.Battle, char *character.Character) error {
	mon, err := s.monsters.GetByKey(ctx, battle.MonsterKey)
	if err != nil {
		return apperrors.Wrap(err, "failed to get monster")
	}

	battle.Rewards = &combat.Rewards{Exp: mon.ExpReward, Gold: mon.GoldReward}
	char.Exp += mon.ExpReward
	char.Gold += mon.GoldReward
	battle.AppendLog(combat.ActorSystem, "reward",
		fmt.Sprintf("%s defeated %s: %d exp, %d gold", battle.CharacterName, battle.MonsterName, mon.ExpReward, mon.GoldReward), 0, false)
	return nil
}

func failureResult(battle *combat.Battle, message string) *TurnResult {
	result := &TurnResult{
		Success:   false,
		BattleEnd: battle.IsTerminal(),
		Character: battle.Character,
		Monster:   battle.Monster,
		BattleLog: battle.Log,
		Turn:      battle.Turn,
		Message:   message,
		BattleID:  battle.ID,
	}
	if battle.IsTerminal() {
		result.Result = string(battle.State)
	}
	return result
}

func bareHands() *item.Item {
	return &item.Item{
		Key:    "bare-hands",
		Name:   "Bare Hands",
		Kind:   item.KindWeapon,
		Rarity: item.MinRarity,
		Weapon: &item.WeaponProfile{Style: item.WeaponStylePhysical},
	}
}
