package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shortpath/core"
)

func TestAdjacency_Directed(t *testing.T) {
	g, err := core.NewGraph(3, []core.Edge{
		{From: 0, To: 1, Length: 5},
		{From: 0, To: 2, Length: -3},
		{From: 2, To: 1, Length: 1},
	}, true)
	require.NoError(t, err)

	out := g.OutgoingAdjacency()
	require.Equal(t, core.Outgoing, out.Direction)
	require.Equal(t, [][]core.Arc{
		{{Vertex: 1, Length: 5}, {Vertex: 2, Length: -3}},
		nil,
		{{Vertex: 1, Length: 1}},
	}, out.Lists)

	in := g.IncomingAdjacency()
	require.Equal(t, core.Incoming, in.Direction)
	require.Equal(t, [][]core.Arc{
		nil,
		{{Vertex: 0, Length: 5}, {Vertex: 2, Length: 1}},
		{{Vertex: 0, Length: -3}},
	}, in.Lists)

	// Both projections recover the same edge set.
	require.ElementsMatch(t, g.Edges(), out.Edges())
	require.ElementsMatch(t, g.Edges(), in.Edges())
	require.Equal(t, 3, out.ArcCount())
}

func TestAdjacency_UndirectedIsSymmetric(t *testing.T) {
	g, err := core.NewGraph(3, []core.Edge{
		{From: 0, To: 1, Length: 4},
		{From: 1, To: 2, Length: 6},
		{From: 2, To: 2, Length: 1},
	}, false)
	require.NoError(t, err)

	for _, a := range []*core.Adjacency{g.OutgoingAdjacency(), g.IncomingAdjacency()} {
		require.False(t, a.Directed)
		require.Equal(t, [][]core.Arc{
			{{Vertex: 1, Length: 4}},
			{{Vertex: 0, Length: 4}, {Vertex: 2, Length: 6}},
			{{Vertex: 1, Length: 6}, {Vertex: 2, Length: 1}},
		}, a.Lists, "%s projection", a.Direction)
		require.Equal(t, 5, a.ArcCount(), "loops are not mirrored")
	}
}

func TestAdjacency_IsSnapshot(t *testing.T) {
	g, err := core.NewGraph(2, []core.Edge{{From: 0, To: 1, Length: 1}}, true)
	require.NoError(t, err)

	out := g.OutgoingAdjacency()
	require.NoError(t, g.AddEdge(core.Edge{From: 1, To: 0, Length: 1}))
	require.Equal(t, 1, out.ArcCount(), "later mutations are not observed")
}

func TestDirection_String(t *testing.T) {
	require.Equal(t, "outgoing", core.Outgoing.String())
	require.Equal(t, "incoming", core.Incoming.String())
	require.Equal(t, "Direction(7)", core.Direction(7).String())
}
