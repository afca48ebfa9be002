package nutrition

import (
	"math"

	"github.com/bodyfuel/bodyfuel-backend/internal/domain"
)

// Polarity records, per macro, whether an increase is a good thing for the
// user. Macros missing from the map count as "increase is unfavorable".
type Polarity map[domain.Macro]bool

// DefaultPolarity frames more protein as favorable and more calories,
// carbohydrates and fat as unfavorable.
func DefaultPolarity() Polarity {
	return Polarity{domain.MacroProtein: true}
}

// NewPolarity builds a Polarity in which exactly the given macros are
// favorable when they increase.
func NewPolarity(favorableIncrease []domain.Macro) Polarity {
	p := make(Polarity, len(favorableIncrease))
	for _, m := range favorableIncrease {
		p[m] = true
	}
	return p
}

// Favorable reports whether movement in direction d is good for macro m.
func (p Polarity) Favorable(m domain.Macro, d domain.Direction) bool {
	up := p[m]
	if d == domain.DirectionIncrease {
		return up
	}
	return !up
}

// MacroStat compares one macro between two days.
type MacroStat struct {
	Macro         domain.Macro
	Current       float64
	Reference     float64
	PercentChange int
	Direction     domain.Direction
	Favorable     bool
}

// DailyStats is the comparison of a day against its reference day.
type DailyStats struct {
	Current   domain.Macros
	Reference domain.Macros
	Stats     []MacroStat
}

// Sum adds up the macro snapshots of every item in the journal. A nil
// journal or one without items sums to zero.
func Sum(j *domain.MealJournal) domain.Macros {
	var sum domain.Macros
	if j == nil {
		return sum
	}
	for _, item := range j.Items {
		sum = sum.Add(item.Macros())
	}
	return sum
}

// maxPercentChange bounds PercentChange so the int conversion cannot wrap
// when the reference is tiny.
const maxPercentChange = math.MaxInt32

// PercentChange returns round((current-reference)/reference*100), or 0 when
// reference is zero. The result is clamped to ±maxPercentChange.
func PercentChange(current, reference float64) int {
	if reference == 0 {
		return 0
	}
	p := Round((current - reference) / reference * 100)
	switch {
	case math.IsNaN(p):
		return 0
	case p > maxPercentChange:
		return maxPercentChange
	case p < -maxPercentChange:
		return -maxPercentChange
	}
	return int(p)
}

// DirectionOf returns increase when current is strictly greater than
// reference and decrease otherwise.
func DirectionOf(current, reference float64) domain.Direction {
	if current > reference {
		return domain.DirectionIncrease
	}
	return domain.DirectionDecrease
}

// Compare builds the four per-macro comparisons in display order.
func Compare(current, reference domain.Macros, polarity Polarity) DailyStats {
	stats := make([]MacroStat, 0, len(domain.AllMacros))
	for _, m := range domain.AllMacros {
		c, r := m.Value(current), m.Value(reference)
		dir := DirectionOf(c, r)
		stats = append(stats, MacroStat{
			Macro:         m,
			Current:       c,
			Reference:     r,
			PercentChange: PercentChange(c, r),
			Direction:     dir,
			Favorable:     polarity.Favorable(m, dir),
		})
	}
	return DailyStats{Current: current, Reference: reference, Stats: stats}
}
