package setmatch

import "math"

// infeasible is a cost ceiling used only to seed the Hungarian algorithm's
// row-minimum search; it never appears in a real cost matrix entry, so it
// can never be mistaken for an achievable cost.
const infeasible = int64(math.MaxInt64 / 4)

// solveAssignment computes an exact minimum-cost perfect matching on a
// square cost matrix via the Hungarian algorithm (Kuhn–Munkres, dual
// potentials, O(n^3)). It returns, for each row i, the column it is
// matched to in the optimal assignment.
//
// This replaces the package's former "commit the globally-cheapest
// still-available pair" heuristic, which could strand an expensive pair
// that a different assignment would have avoided entirely — see doc.go.
func solveAssignment(cost [][]int64) []int {
	n := len(cost)
	if n == 0 {
		return nil
	}

	u := make([]int64, n+1)
	v := make([]int64, n+1)
	p := make([]int, n+1) // p[j] = 1-indexed row currently matched to column j
	way := make([]int, n+1)

	for i := 1; i <= n; i++ {
		p[0] = i
		j0 := 0
		minv := make([]int64, n+1)
		used := make([]bool, n+1)
		for j := range minv {
			minv[j] = infeasible
		}

		for {
			used[j0] = true
			i0 := p[j0]
			delta := infeasible
			j1 := -1
			for j := 1; j <= n; j++ {
				if used[j] {
					continue
				}
				cur := cost[i0-1][j-1] - u[i0] - v[j]
				if cur < minv[j] {
					minv[j] = cur
					way[j] = j0
				}
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}
			for j := 0; j <= n; j++ {
				if used[j] {
					u[p[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}
			j0 = j1
			if p[j0] == 0 {
				break
			}
		}

		for j0 != 0 {
			j1 := way[j0]
			p[j0] = p[j1]
			j0 = j1
		}
	}

	colForRow := make([]int, n)
	for j := 1; j <= n; j++ {
		if p[j] != 0 {
			colForRow[p[j]-1] = j - 1
		}
	}

	return colForRow
}
