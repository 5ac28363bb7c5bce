package component

// Health — компонент здоровья
type Health struct {
	Value float64
	Max   float64
}

// Fraction returns the remaining health in [0, 1].
func (h *Health) Fraction() float64 {
	if h.Max <= 0 || h.Value <= 0 {
		return 0
	}
	if h.Value >= h.Max {
		return 1
	}
	return h.Value / h.Max
}

// Enemy представляет вражескую сущность.
type Enemy struct {
	Reward      int
	Radius      float64
	Wave        int
	Alive       bool // единственная проверка, через которую проходят все эффекты за кадр
	ReachedBase bool // дошёл до конца пути
	Counted     bool // награда или урон базе уже учтены
}

// Boss — враг со способностью один раз уничтожить случайную башню.
type Boss struct {
	AbilityTimer float64
	AbilityUsed  bool
}
