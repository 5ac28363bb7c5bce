package component

// Wave — состояние спавнера текущей волны.
type Wave struct {
	Number        int
	ToSpawn       int
	SpawnTimer    float64
	SpawnInterval float64
	Active        bool
	BossPending   bool
	BossSpawned   bool
}
