// component/tower.go
package component

type Tower struct {
	DefID  string // ID из defs
	Level  int    // 1..TowerMaxLevel
	Radius float64
}
