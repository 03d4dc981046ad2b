// Package dijkstra_test contains unit tests for both Dijkstra variants:
// argument validation, fixed scenarios, reweighted runs, options, and
// agreement with Bellman-Ford on random graphs.
package dijkstra_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/shortpath/bellmanford"
	"github.com/katalvlaran/shortpath/builder"
	"github.com/katalvlaran/shortpath/core"
	"github.com/katalvlaran/shortpath/dijkstra"
)

const inf = core.Infinity

func mustGraph(t *testing.T, size int, directed bool, edges ...core.Edge) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(size, edges, directed)
	require.NoError(t, err)

	return g
}

// scenarioPotentials is a feasible potential for the negative-length
// scenario below, as produced by bellmanford.Potentials.
var scenarioPotentials = []int64{0, -2, -3, -6, 0, -1}

// reweightedScenario is the 6-vertex negative-length scenario after
// reweighting with scenarioPotentials; every length is non-negative.
func reweightedScenario(t *testing.T) *core.Graph {
	t.Helper()
	g := mustGraph(t, 6, true,
		core.Edge{From: 0, To: 1, Length: -2},
		core.Edge{From: 1, To: 2, Length: -1},
		core.Edge{From: 2, To: 0, Length: 4},
		core.Edge{From: 2, To: 3, Length: -3},
		core.Edge{From: 4, To: 3, Length: -4},
		core.Edge{From: 4, To: 5, Length: 1},
		core.Edge{From: 2, To: 5, Length: 2},
	)
	require.NoError(t, g.Reweight(scenarioPotentials))
	require.Equal(t, []core.Edge{
		{From: 0, To: 1, Length: 0},
		{From: 1, To: 2, Length: 0},
		{From: 2, To: 0, Length: 1},
		{From: 2, To: 3, Length: 0},
		{From: 4, To: 3, Length: 2},
		{From: 4, To: 5, Length: 2},
		{From: 2, To: 5, Length: 0},
	}, g.Edges())

	return g
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

type ValidationSuite struct {
	suite.Suite
	g *core.Graph
}

func (s *ValidationSuite) SetupTest() {
	s.g = mustGraph(s.T(), 3, true,
		core.Edge{From: 0, To: 1, Length: 1},
		core.Edge{From: 1, To: 2, Length: 1},
	)
}

func (s *ValidationSuite) TestNilGraph() {
	_, _, err := dijkstra.Dijkstra(nil, 0)
	s.Require().ErrorIs(err, dijkstra.ErrNilGraph)
	_, _, err = dijkstra.DijkstraWithReweighting(nil, 0, nil)
	s.Require().ErrorIs(err, dijkstra.ErrNilGraph)
}

func (s *ValidationSuite) TestWrongProjection() {
	_, _, err := dijkstra.Dijkstra(s.g.IncomingAdjacency(), 0)
	s.Require().ErrorIs(err, dijkstra.ErrWrongProjection)
}

func (s *ValidationSuite) TestSourceOutOfRange() {
	for _, src := range []int{-1, 3} {
		_, _, err := dijkstra.Dijkstra(s.g.OutgoingAdjacency(), src)
		s.Require().ErrorIs(err, dijkstra.ErrSourceOutOfRange, "source %d", src)
	}
}

func (s *ValidationSuite) TestNegativeWeight() {
	s.Require().NoError(s.g.AddEdge(core.Edge{From: 2, To: 0, Length: -1}))
	_, _, err := dijkstra.Dijkstra(s.g.OutgoingAdjacency(), 0)
	s.Require().ErrorIs(err, dijkstra.ErrNegativeWeight)
}

func (s *ValidationSuite) TestBadPotentials() {
	adj := s.g.OutgoingAdjacency()
	_, _, err := dijkstra.DijkstraWithReweighting(adj, 0, []int64{0, 0})
	s.Require().ErrorIs(err, dijkstra.ErrBadPotentials)
	_, _, err = dijkstra.DijkstraWithReweighting(adj, 0, []int64{0, inf, 0})
	s.Require().ErrorIs(err, dijkstra.ErrBadPotentials)
}

func (s *ValidationSuite) TestOptionPanics() {
	s.Require().Panics(func() { dijkstra.WithMaxDistance(-1) })
	s.Require().Panics(func() { dijkstra.WithOnFinalize(nil) })
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationSuite))
}

// ------------------------------------------------------------------------
// 2. Fixed scenarios
// ------------------------------------------------------------------------

func TestDijkstra_Undirected(t *testing.T) {
	g := mustGraph(t, 5, false,
		core.Edge{From: 0, To: 1, Length: 5},
		core.Edge{From: 1, To: 2, Length: 6},
		core.Edge{From: 2, To: 3, Length: 2},
		core.Edge{From: 0, To: 2, Length: 15},
	)
	dist, prev, err := dijkstra.Dijkstra(g.OutgoingAdjacency(), 0)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 5, 11, 13, inf}, dist)
	assert.Nil(t, prev)
}

func TestDijkstra_DirectedZeroLengths(t *testing.T) {
	adj := reweightedScenario(t).OutgoingAdjacency()

	dist, _, err := dijkstra.Dijkstra(adj, 0)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 0, 0, 0, inf, 0}, dist)

	dist, _, err = dijkstra.Dijkstra(adj, 4)
	require.NoError(t, err)
	assert.Equal(t, []int64{inf, inf, inf, 2, 0, 2}, dist)
}

func TestDijkstraWithReweighting_RecoversOriginalLengths(t *testing.T) {
	adj := reweightedScenario(t).OutgoingAdjacency()

	dist, _, err := dijkstra.DijkstraWithReweighting(adj, 4, scenarioPotentials)
	require.NoError(t, err)
	assert.Equal(t, []int64{inf, inf, inf, -4, 0, 1}, dist)

	dist, _, err = dijkstra.DijkstraWithReweighting(adj, 0, scenarioPotentials)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, -2, -3, -6, inf, -1}, dist)
}

func TestDijkstraWithReweighting_Monotonicity(t *testing.T) {
	// Zero potentials leave the negative arc 1→2 in place: vertex 2 is
	// popped with key -4 after vertex 1 was popped with key 1.
	g := mustGraph(t, 3, true,
		core.Edge{From: 0, To: 1, Length: 1},
		core.Edge{From: 1, To: 2, Length: -5},
	)
	_, _, err := dijkstra.DijkstraWithReweighting(g.OutgoingAdjacency(), 0, []int64{0, 0, 0})
	require.ErrorIs(t, err, dijkstra.ErrMonotonicity)
}

func TestDijkstra_SingleVertexAndSelfLoop(t *testing.T) {
	g := mustGraph(t, 1, true, core.Edge{From: 0, To: 0, Length: 3})
	dist, prev, err := dijkstra.Dijkstra(g.OutgoingAdjacency(), 0, dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, []int64{0}, dist)
	assert.Equal(t, []int{dijkstra.NoPredecessor}, prev)
}

// ------------------------------------------------------------------------
// 3. Options
// ------------------------------------------------------------------------

func TestDijkstra_ReturnPath(t *testing.T) {
	g := mustGraph(t, 4, true,
		core.Edge{From: 0, To: 1, Length: 4},
		core.Edge{From: 0, To: 2, Length: 1},
		core.Edge{From: 2, To: 1, Length: 1},
		core.Edge{From: 1, To: 3, Length: 3},
		core.Edge{From: 2, To: 3, Length: 5},
	)
	dist, prev, err := dijkstra.Dijkstra(g.OutgoingAdjacency(), 0, dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 2, 1, 5}, dist)
	assert.Equal(t, []int{dijkstra.NoPredecessor, 2, 0, 1}, prev)
}

func TestDijkstra_MaxDistance(t *testing.T) {
	g, err := builder.BuildGraph(false, nil, builder.Path(4))
	require.NoError(t, err)

	dist, prev, err := dijkstra.Dijkstra(g.OutgoingAdjacency(), 0,
		dijkstra.WithMaxDistance(1), dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 1, inf, inf}, dist)
	assert.Equal(t, []int{dijkstra.NoPredecessor, 0, dijkstra.NoPredecessor, dijkstra.NoPredecessor}, prev)
}

func TestDijkstra_OnFinalizeOrder(t *testing.T) {
	g, err := builder.BuildGraph(true,
		[]builder.BuilderOption{builder.WithWeightFn(builder.ConstantWeightFn(2))},
		builder.Path(5))
	require.NoError(t, err)

	var order []int
	var keys []int64
	_, _, err = dijkstra.Dijkstra(g.OutgoingAdjacency(), 1, dijkstra.WithOnFinalize(func(v int, key int64) {
		order = append(order, v)
		keys = append(keys, key)
	}))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, order, "vertex 0 is unreachable and never finalized")
	assert.Equal(t, []int64{0, 2, 4, 6}, keys)
}

// ------------------------------------------------------------------------
// 4. Agreement with Bellman-Ford
// ------------------------------------------------------------------------

func TestDijkstra_AgreesWithBellmanFord(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		g, err := builder.BuildGraph(seed%2 == 0,
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithWeightFn(builder.UniformWeightFn(0, 20))},
			builder.RandomSparse(15, 0.25))
		require.NoError(t, err)

		for src := 0; src < g.Size(); src++ {
			want, err := bellmanford.BellmanFord(g.IncomingAdjacency(), src)
			require.NoError(t, err)
			got, _, err := dijkstra.Dijkstra(g.OutgoingAdjacency(), src)
			require.NoError(t, err)
			require.Equal(t, want, got, "seed %d source %d", seed, src)
		}
	}
}

// TestDijkstraWithReweighting_FinalizationOrder checks that vertices are
// finalized in order of reweighted distance d(s,v) + p[s] - p[v] and that the
// recovered distances equal Bellman-Ford's on the original lengths.
func TestDijkstraWithReweighting_FinalizationOrder(t *testing.T) {
	for seed := int64(1); seed <= 8; seed++ {
		g, err := builder.BuildGraph(true,
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithWeightFn(builder.UniformWeightFn(0, 9))},
			builder.RandomFeasible(12, 0.3, 20))
		require.NoError(t, err)

		p, err := bellmanford.Potentials(g)
		require.NoError(t, err)
		rg := g.Clone()
		require.NoError(t, rg.Reweight(p))
		adj := rg.OutgoingAdjacency()

		for src := 0; src < g.Size(); src++ {
			want, err := bellmanford.BellmanFord(g.IncomingAdjacency(), src)
			require.NoError(t, err)

			last := int64(0)
			got, _, err := dijkstra.DijkstraWithReweighting(adj, src, p, dijkstra.WithOnFinalize(func(v int, key int64) {
				require.GreaterOrEqual(t, key, last)
				require.Equal(t, want[v]+p[src]-p[v], key, "seed %d source %d vertex %d", seed, src, v)
				last = key
			}))
			require.NoError(t, err)
			require.Equal(t, want, got, "seed %d source %d", seed, src)
		}
	}
}
