package rocket

import (
	"math/rand"
	"sync"
	"time"
)

// Generator Источник точки краша для нового раунда
type Generator interface {
	Generate() float64
}

// crashTier Полоса распределения: при r < upTo множитель равномерен в [min, max)
type crashTier struct {
	upTo float64
	min  float64
	max  float64
}

// Ступенчатое распределение: половина раундов падает ниже 2.5x, только 5% доходят до 8x
var crashTiers = []crashTier{
	{upTo: 0.50, min: 1.00, max: 2.50},
	{upTo: 0.80, min: 2.50, max: 5.00},
	{upTo: 0.95, min: 5.00, max: 8.00},
	{upTo: 1.00, min: 8.00, max: 10.00},
}

type tieredGenerator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewGenerator Генератор точек краша. При rng == nil используется источник от текущего времени
func NewGenerator(rng *rand.Rand) Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &tieredGenerator{rng: rng}
}

func (g *tieredGenerator) Generate() float64 {
	// *rand.Rand не потокобезопасен
	g.mu.Lock()
	r := g.rng.Float64()
	u := g.rng.Float64()
	g.mu.Unlock()

	tier := tierFor(r)
	return roundMultiplier(tier.min + u*(tier.max-tier.min))
}

func tierFor(r float64) crashTier {
	for _, t := range crashTiers {
		if r < t.upTo {
			return t
		}
	}
	return crashTiers[len(crashTiers)-1]
}
