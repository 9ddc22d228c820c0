// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// Random — минимальный источник случайности, который нужен игровой логике.
// Тесты подставляют сюда заранее заданную последовательность.
type Random interface {
	Intn(n int) int
	Float64() float64
}

// PRNGService — это обертка над стандартным генератором случайных чисел Go,
// которая позволяет использовать предсказуемый (seeded) рандом во всей игре.
type PRNGService struct {
	rng  *rand.Rand
	seed int64
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	source := rand.NewSource(seed)
	return &PRNGService{
		rng:  rand.New(source),
		seed: seed,
	}
}

// Seed возвращает фактически использованный сид (удобно для логов).
func (s *PRNGService) Seed() int64 {
	return s.seed
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 возвращает случайное число с плавающей точкой в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Range возвращает случайное число в диапазоне [lo, hi).
func Range(r Random, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// ChooseWeighted выполняет взвешенный случайный выбор и возвращает индекс элемента.
// Он суммирует все веса, выбирает случайное число в этом диапазоне,
// а затем находит элемент, которому соответствует это число.
// Пустой список даёт -1; при некорректной сумме весов выбирается первый элемент.
func ChooseWeighted(r Random, weights []int) int {
	if len(weights) == 0 {
		return -1
	}

	totalWeight := 0
	for _, w := range weights {
		if w > 0 {
			totalWeight += w
		}
	}
	if totalWeight <= 0 {
		return 0
	}

	roll := r.Intn(totalWeight)
	upto := 0
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		if upto+w > roll {
			return i
		}
		upto += w
	}
	return len(weights) - 1
}
