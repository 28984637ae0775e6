package predict

import "sort"

// ScoreMatrix is a scoreline probability grid indexed [homeGoals][awayGoals].
// Cells are non-negative; whether the grid is normalized depends on the model
// that built it (the Poisson model deliberately works on the truncated,
// unnormalized grid).
type ScoreMatrix [][]float64

// NewScoreMatrix allocates a zeroed maxGoals x maxGoals grid
func NewScoreMatrix(maxGoals int) ScoreMatrix {
	m := make(ScoreMatrix, maxGoals)
	for i := range m {
		m[i] = make([]float64, maxGoals)
	}
	return m
}

// Sum returns the total probability mass currently in the grid
func (m ScoreMatrix) Sum() float64 {
	total := 0.0
	for i := range m {
		for j := range m[i] {
			total += m[i][j]
		}
	}
	return total
}

// Normalize rescales the grid in place so it sums to 1.
// A zero-mass grid is left untouched.
func (m ScoreMatrix) Normalize() {
	total := m.Sum()
	if total <= 0 {
		return
	}
	for i := range m {
		for j := range m[i] {
			m[i][j] /= total
		}
	}
}

// Outcomes reduces the grid to win/draw/loss probabilities:
// lower triangle (home scores more) is a home win, the diagonal a draw,
// upper triangle an away win
func (m ScoreMatrix) Outcomes() (homeWin, draw, awayWin float64) {
	for i := range m {
		for j := range m[i] {
			switch {
			case i > j:
				homeWin += m[i][j]
			case i == j:
				draw += m[i][j]
			default:
				awayWin += m[i][j]
			}
		}
	}
	return homeWin, draw, awayWin
}

// MostLikelyScore returns the cell with the highest probability.
// Ties resolve to the smallest home goals, then smallest away goals,
// i.e. the first occurrence in row-major order.
func (m ScoreMatrix) MostLikelyScore() (homeGoals, awayGoals int) {
	best := -1.0
	for i := range m {
		for j := range m[i] {
			if m[i][j] > best {
				best = m[i][j]
				homeGoals = i
				awayGoals = j
			}
		}
	}
	return homeGoals, awayGoals
}

// TopScorelines returns the n most probable scorelines in descending order.
// Equal probabilities keep their row-major order.
func (m ScoreMatrix) TopScorelines(n int) []ScoreProbability {
	flat := make([]ScoreProbability, 0, len(m)*len(m))
	for i := range m {
		for j := range m[i] {
			flat = append(flat, ScoreProbability{
				Score:       formatScore(i, j),
				Probability: m[i][j],
			})
		}
	}

	// Stable sort preserves row-major order between equal cells
	sort.SliceStable(flat, func(a, b int) bool {
		return flat[a].Probability > flat[b].Probability
	})

	if n > len(flat) {
		n = len(flat)
	}
	top := make([]ScoreProbability, n)
	for i := 0; i < n; i++ {
		top[i] = ScoreProbability{
			Score:       flat[i].Score,
			Probability: round4(flat[i].Probability),
		}
	}
	return top
}
