package engine

import (
	"math/rand"
	"time"

	"salesdash/internal/models"
)

// AmountRange bounds the uniform base amount for one category and holds
// the weight of the linear month trend applied on top of it.
type AmountRange struct {
	Min         float64
	Max         float64
	TrendWeight float64
}

// GenConfig parameterizes the synthetic generator. The weights and
// ranges are illustrative constants, not business truths — weight sums
// are trusted, not validated.
type GenConfig struct {
	Seed  int64
	Start time.Time
	End   time.Time // inclusive

	// Index-aligned with models.Regions / models.Categories
	RegionWeights   []float64
	CategoryWeights []float64
	Amounts         map[string]AmountRange

	// Sales per day, drawn uniformly from [MinPerDay, MaxPerDay]
	MinPerDay int
	MaxPerDay int
}

// DefaultGenConfig returns one year of 2024 data with the stock weights.
func DefaultGenConfig() GenConfig {
	return GenConfig{
		Seed:            42,
		Start:           time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		End:             time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
		RegionWeights:   []float64{0.30, 0.25, 0.25, 0.20},
		CategoryWeights: []float64{0.40, 0.35, 0.25},
		Amounts: map[string]AmountRange{
			"Technology":      {Min: 100, Max: 5000, TrendWeight: 1.0},
			"Furniture":       {Min: 50, Max: 3000, TrendWeight: 0.8},
			"Office Supplies": {Min: 20, Max: 1500, TrendWeight: 0.7},
		},
		MinPerDay: 1,
		MaxPerDay: 4,
	}
}

// Sampler wraps a single seeded pseudo-random stream. Every draw in a
// run goes through one Sampler; reseeding mid-run would break the
// reproducibility the tests rely on.
type Sampler struct {
	rng *rand.Rand
}

func NewSampler(seed int64) *Sampler {
	return &Sampler{rng: rand.New(rand.NewSource(seed))}
}

// IntBetween draws uniformly from [lo, hi] inclusive.
func (s *Sampler) IntBetween(lo, hi int) int {
	return lo + s.rng.Intn(hi-lo+1)
}

// Uniform draws uniformly from [lo, hi).
func (s *Sampler) Uniform(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

// Weighted draws an index from a discrete distribution. Weights are
// trusted to sum to 1; the last index absorbs any rounding slack.
func (s *Sampler) Weighted(weights []float64) int {
	r := s.rng.Float64()
	var acc float64
	for i, w := range weights {
		acc += w
		if r < acc {
			return i
		}
	}
	return len(weights) - 1
}

// Generate produces a deterministic Dataset: one pass over the calendar
// days, 1-4 sales per day, region and category drawn from their weighted
// distributions, amount drawn from the category range and scaled by a
// linear-in-month trend factor.
func Generate(cfg GenConfig) *Dataset {
	s := NewSampler(cfg.Seed)

	rows := make([]models.Transaction, 0, 800)
	for day := cfg.Start; !day.After(cfg.End); day = day.AddDate(0, 0, 1) {
		count := s.IntBetween(cfg.MinPerDay, cfg.MaxPerDay)
		month := float64(day.Month())

		for i := 0; i < count; i++ {
			region := models.Regions[s.Weighted(cfg.RegionWeights)]
			category := models.Categories[s.Weighted(cfg.CategoryWeights)]

			ar := cfg.Amounts[category]
			trend := 1 + month/12*ar.TrendWeight
			amount := s.Uniform(ar.Min, ar.Max) * trend

			rows = append(rows, models.Transaction{
				Date:     day,
				Region:   region,
				Category: category,
				Amount:   amount,
			})
		}
	}

	return NewDataset(rows)
}
