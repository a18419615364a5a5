package domain

// CostMatrix holds pairwise Euclidean distances and derived jump counts for a
// system catalogue, indexed by catalogue position. It is derived once per
// planning run and read-only thereafter; diagonal entries are unused.
type CostMatrix struct {
	dist  [][]float64
	jumps [][]int
}

func NewCostMatrix(n int) *CostMatrix {
	dist := make([][]float64, n)
	jumps := make([][]int, n)
	for i := range dist {
		dist[i] = make([]float64, n)
		jumps[i] = make([]int, n)
	}
	return &CostMatrix{dist: dist, jumps: jumps}
}

// Len returns the number of systems the matrix covers.
func (m *CostMatrix) Len() int { return len(m.dist) }

// Distance returns the Euclidean distance between systems i and j.
func (m *CostMatrix) Distance(i, j int) float64 { return m.dist[i][j] }

// Jumps returns the minimum hop count between systems i and j.
func (m *CostMatrix) Jumps(i, j int) int { return m.jumps[i][j] }

// Set records one unordered pair, mirroring the values into (i,j) and (j,i)
// so the matrix is symmetric by construction.
func (m *CostMatrix) Set(i, j int, distance float64, jumpCount int) {
	m.dist[i][j] = distance
	m.dist[j][i] = distance
	m.jumps[i][j] = jumpCount
	m.jumps[j][i] = jumpCount
}
