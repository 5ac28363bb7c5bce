// internal/event/types.go
package event

import "go-station-defense/internal/types"

const (
	EnemySpawned     EventType = "EnemySpawned"
	EnemyKilled      EventType = "EnemyKilled"      // враг убит, Data: EnemyKilledData
	EnemyReachedBase EventType = "EnemyReachedBase" // враг дошёл до базы, Data: types.EntityID
	ShotFired        EventType = "ShotFired"        // Data: ShotFiredData
	TowerPlaced      EventType = "TowerPlaced"      // Data: types.EntityID
	TowerUpgraded    EventType = "TowerUpgraded"    // Data: types.EntityID
	TowerDestroyed   EventType = "TowerDestroyed"   // башню уничтожил босс, Data: types.EntityID
	WaveStarted      EventType = "WaveStarted"      // Data: int (номер волны)
	WaveEnded        EventType = "WaveEnded"        // Data: int
	GameOver         EventType = "GameOver"         // Data: GameOverData
)

type EnemyKilledData struct {
	ID     types.EntityID
	Reward int
	Boss   bool
}

type ShotFiredData struct {
	TowerID  types.EntityID
	TargetID types.EntityID
	DefID    string
}

type GameOverData struct {
	Score        int
	Highscore    int
	NewHighscore bool
}
