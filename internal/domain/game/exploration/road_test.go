package exploration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyMovement(t *testing.T) {
	t.Run("advances within bounds", func(t *testing.T) {
		position, boundary := ApplyMovement(40, 12)
		assert.Equal(t, 52, position)
		assert.Equal(t, BoundaryNone, boundary)
	})

	t.Run("clamps at the end", func(t *testing.T) {
		position, boundary := ApplyMovement(95, 20)
		assert.Equal(t, RoadEnd, position)
		assert.Equal(t, BoundaryEnd, boundary)
	})

	t.Run("landing exactly on the end is a boundary", func(t *testing.T) {
		position, boundary := ApplyMovement(90, 10)
		assert.Equal(t, RoadEnd, position)
		assert.Equal(t, BoundaryEnd, boundary)
	})

	t.Run("clamps at the start when moving backwards", func(t *testing.T) {
		position, boundary := ApplyMovement(5, -10)
		assert.Equal(t, RoadStart, position)
		assert.Equal(t, BoundaryStart, boundary)
	})
}

func TestPickSpawn(t *testing.T) {
	road := &Road{
		Key:  "forest-road",
		Name: "Forest Road",
		Spawns: []*SpawnEntry{
			{MonsterKey: "slime", Priority: 6},
			{MonsterKey: "goblin", Priority: 3},
			{MonsterKey: "wolf", Priority: 1},
		},
	}

	require.Equal(t, 10, road.TotalSpawnPriority())

	t.Run("walks cumulative priorities", func(t *testing.T) {
		assert.Equal(t, "slime", road.PickSpawn(1).MonsterKey)
		assert.Equal(t, "slime", road.PickSpawn(6).MonsterKey)
		assert.Equal(t, "goblin", road.PickSpawn(7).MonsterKey)
		assert.Equal(t, "goblin", road.PickSpawn(9).MonsterKey)
		assert.Equal(t, "wolf", road.PickSpawn(10).MonsterKey)
	})

	t.Run("out-of-range rolls pick nothing", func(t *testing.T) {
		assert.Nil(t, road.PickSpawn(0))
		assert.Nil(t, road.PickSpawn(11))
	})

	t.Run("empty table picks nothing", func(t *testing.T) {
		empty := &Road{Key: "empty-road"}
		assert.Equal(t, 0, empty.TotalSpawnPriority())
		assert.Nil(t, empty.PickSpawn(1))
	})
}
