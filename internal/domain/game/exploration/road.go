package exploration

// RoadStart and RoadEnd bound the linear position on any road.
const (
	RoadStart = 0
	RoadEnd   = 100
)

// Boundary signals that a move reached an end of the road. The actual
// location transition is the movement collaborator's job.
type Boundary string

const (
	BoundaryNone  Boundary = ""
	BoundaryStart Boundary = "start"
	BoundaryEnd   Boundary = "end"
)

// SpawnEntry binds a monster to a road with a selection priority.
// Higher priority means a proportionally larger share of encounters.
type SpawnEntry struct {
	MonsterKey string `json:"monster_key"`
	Priority   int    `json:"priority"`
}

// Road is a configured linear road: positions run 0..100, each move is
// a dice roll, and each move risks an encounter from the spawn table.
type Road struct {
	ID            string        `json:"id"`
	Key           string        `json:"key"`
	Name          string        `json:"name"`
	FromLocation  string        `json:"from_location"`
	ToLocation    string        `json:"to_location"`
	BaseDice      int           `json:"base_dice"`
	MoveBonus     int           `json:"move_bonus"`
	Multiplier    float64       `json:"multiplier"`
	EncounterRate int           `json:"encounter_rate"` // percent per move
	Spawns        []*SpawnEntry `json:"spawns,omitempty"`
}

// ApplyMovement moves a position along the road, clamping to [0,100]
// and reporting whether a boundary was reached.
func ApplyMovement(position, movement int) (int, Boundary) {
	position += movement
	if position <= RoadStart {
		return RoadStart, BoundaryStart
	}
	if position >= RoadEnd {
		return RoadEnd, BoundaryEnd
	}
	return position, BoundaryNone
}

// TotalSpawnPriority sums the spawn priorities, used to size the
// selection roll.
func (r *Road) TotalSpawnPriority() int {
	total := 0
	for _, spawn := range r.Spawns {
		total += spawn.Priority
	}
	return total
}

// PickSpawn selects the spawn entry for a roll in [1, TotalSpawnPriority],
// walking cumulative priorities. Returns nil when the table is empty or
// the roll is out of range.
func (r *Road) PickSpawn(roll int) *SpawnEntry {
	if roll < 1 {
		return nil
	}
	cumulative := 0
	for _, spawn := range r.Spawns {
		cumulative += spawn.Priority
		if roll <= cumulative {
			return spawn
		}
	}
	return nil
}
