package routing

import (
	"sync"
	"testing"

	"github.com/lintang-b-s/transitx/pkg"
	"github.com/lintang-b-s/transitx/pkg/catalogue"
	da "github.com/lintang-b-s/transitx/pkg/datastructure"
	"github.com/lintang-b-s/transitx/pkg/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRoute struct {
	name       string
	stops      []string
	isCircular bool
}

type testDistance struct {
	from, to string
	meters   int
}

func newTestRouter(t *testing.T, stops []string, distances []testDistance, routes []testRoute,
	settings RoutingSettings) *TransportRouter {
	t.Helper()
	tg, err := BuildTransportGraph(newTestCatalogue(t, stops, distances, routes), settings)
	require.NoError(t, err)
	return NewTransportRouter(tg)
}

func newTestCatalogue(t *testing.T, stops []string, distances []testDistance,
	routes []testRoute) *catalogue.Catalogue {
	t.Helper()
	cat := catalogue.NewCatalogue()
	for i, name := range stops {
		cat.AddStop(name, geo.NewCoordinate(0, float64(i)*0.01))
	}
	for _, d := range distances {
		require.True(t, cat.SetDistanceByName(d.from, d.to, d.meters))
	}
	for _, r := range routes {
		cat.AddRoute(r.name, r.stops, r.isCircular)
	}
	return cat
}

func TestFindRouteSingleRide(t *testing.T) {
	tr := newTestRouter(t, []string{"A", "B"},
		[]testDistance{{"A", "B", 1000}},
		[]testRoute{{"1", []string{"A", "B"}, false}},
		NewRoutingSettings(5, 60))

	it, status := tr.FindRoute("A", "B")
	require.Equal(t, RouteFound, status)
	assert.InDelta(t, 6.0, it.TotalTime, 1e-9)
	require.Len(t, it.Items, 2)
	assert.Equal(t, da.NewWaitItem("A", 5), it.Items[0])
	assert.Equal(t, da.NewBusItem("1", 1, 1), it.Items[1])

	// non-circular bus rides back, B->A defaults to the A->B distance
	back, status := tr.FindRoute("B", "A")
	require.Equal(t, RouteFound, status)
	assert.InDelta(t, 6.0, back.TotalTime, 1e-9)
}

func TestFindRouteMultiSpanRideBeatsReboarding(t *testing.T) {
	tr := newTestRouter(t, []string{"A", "B", "C"},
		[]testDistance{{"A", "B", 1000}, {"B", "C", 1000}},
		[]testRoute{{"1", []string{"A", "B", "C"}, false}},
		NewRoutingSettings(2, 60))

	it, status := tr.FindRoute("A", "C")
	require.Equal(t, RouteFound, status)
	assert.InDelta(t, 4.0, it.TotalTime, 1e-9)
	require.Len(t, it.Items, 2)
	assert.Equal(t, pkg.RIDE_EDGE, it.Items[1].Kind)
	assert.Equal(t, 2, it.Items[1].SpanCount)
	assert.InDelta(t, 2.0, it.Items[1].Time, 1e-9)
}

func TestFindRouteWithTransfer(t *testing.T) {
	tr := newTestRouter(t, []string{"A", "B", "C"},
		[]testDistance{{"A", "B", 1000}, {"B", "C", 2000}},
		[]testRoute{
			{"1", []string{"A", "B"}, false},
			{"2", []string{"B", "C"}, false},
		},
		NewRoutingSettings(2, 60))

	it, status := tr.FindRoute("A", "C")
	require.Equal(t, RouteFound, status)
	assert.InDelta(t, 7.0, it.TotalTime, 1e-9)
	require.Len(t, it.Items, 4)
	assert.Equal(t, "A", it.Items[0].StopName)
	assert.Equal(t, "1", it.Items[1].Bus)
	assert.Equal(t, "B", it.Items[2].StopName)
	assert.Equal(t, "2", it.Items[3].Bus)

	sum := 0.0
	for _, item := range it.Items {
		sum += item.Time
	}
	assert.InDelta(t, it.TotalTime, sum, 1e-9)
}

func TestFindRouteCircularOnlyForward(t *testing.T) {
	tr := newTestRouter(t, []string{"A", "B", "C"},
		[]testDistance{{"A", "B", 1000}, {"B", "C", 1000}, {"C", "A", 1000}},
		[]testRoute{{"1", []string{"A", "B", "C", "A"}, true}},
		NewRoutingSettings(2, 60))

	// C -> A then board again at A -> B
	it, status := tr.FindRoute("C", "B")
	require.Equal(t, RouteFound, status)
	assert.InDelta(t, 6.0, it.TotalTime, 1e-9)
	require.Len(t, it.Items, 4)
	assert.Equal(t, "A", it.Items[2].StopName)
}

func TestFindRouteSameStop(t *testing.T) {
	tr := newTestRouter(t, []string{"A", "B", "Lonely"},
		[]testDistance{{"A", "B", 1000}},
		[]testRoute{{"1", []string{"A", "B"}, false}},
		NewRoutingSettings(5, 60))

	for _, stop := range []string{"A", "Lonely"} {
		it, status := tr.FindRoute(stop, stop)
		require.Equal(t, RouteFound, status)
		assert.Equal(t, 0.0, it.TotalTime)
		assert.Empty(t, it.Items)
	}
}

func TestFindRouteNotFound(t *testing.T) {
	tr := newTestRouter(t, []string{"A", "B", "Lonely"},
		[]testDistance{{"A", "B", 1000}},
		[]testRoute{{"1", []string{"A", "B"}, false}},
		NewRoutingSettings(5, 60))

	_, status := tr.FindRoute("A", "Lonely")
	assert.Equal(t, RouteNotFound, status)

	_, status = tr.FindRoute("A", "Nowhere")
	assert.Equal(t, RouteStopNotFound, status)

	_, status = tr.FindRoute("Nowhere", "A")
	assert.Equal(t, RouteStopNotFound, status)
}

func TestFindRouteConcurrentQueriesAreDeterministic(t *testing.T) {
	tr := newTestRouter(t, []string{"A", "B", "C", "D"},
		[]testDistance{{"A", "B", 1000}, {"B", "C", 1500}, {"C", "D", 700}, {"A", "D", 5000}},
		[]testRoute{
			{"1", []string{"A", "B", "C", "D"}, false},
			{"2", []string{"A", "D"}, false},
		},
		NewRoutingSettings(3, 30))

	want, status := tr.FindRoute("A", "D")
	require.Equal(t, RouteFound, status)

	var wg sync.WaitGroup
	results := make([]da.Itinerary, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = tr.FindRoute("A", "D")
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

func TestBuildTransportGraph(t *testing.T) {
	cat := catalogue.NewCatalogue()
	cat.AddStop("B", geo.NewCoordinate(0, 0.01))
	cat.AddStop("A", geo.NewCoordinate(0, 0))
	cat.AddStop("C", geo.NewCoordinate(0, 0.02))
	cat.SetDistanceByName("A", "B", 1000)
	cat.SetDistanceByName("B", "C", 1000)
	cat.AddRoute("1", []string{"A", "B", "C"}, true)

	tg, err := BuildTransportGraph(cat, NewRoutingSettings(5, 60))
	require.NoError(t, err)

	g := tg.GetGraph()
	assert.Equal(t, 6, g.NumberOfVertices())
	// 3 wait edges + 3 ride edges (A->B, A->C, B->C)
	assert.Equal(t, 6, g.NumberOfEdges())

	// vertices follow the sorted stop names
	for i, name := range []string{"A", "B", "C"} {
		v, ok := tg.GetArrivalVertex(name)
		require.True(t, ok)
		assert.Equal(t, da.Index(2*i), v)
	}

	aDep := GetDepartureVertex(0)
	assert.Equal(t, 2, g.GetOutDegree(aDep))
	g.ForOutEdgesOf(aDep, func(e *da.Edge) {
		assert.Equal(t, pkg.RIDE_EDGE, e.GetKind())
		assert.Equal(t, "1", e.GetName())
		if e.GetHead() == 4 {
			assert.Equal(t, 2, e.GetSpanCount())
			assert.InDelta(t, 2.0, e.GetWeight(), 1e-9)
		}
	})
}

func TestBuildTransportGraphErrors(t *testing.T) {
	_, err := BuildTransportGraph(catalogue.NewCatalogue(), NewRoutingSettings(5, 60))
	assert.ErrorIs(t, err, ErrEmptyCatalogue)

	cat := catalogue.NewCatalogue()
	cat.AddStop("A", geo.NewCoordinate(0, 0))

	_, err = BuildTransportGraph(cat, NewRoutingSettings(5, 0))
	assert.ErrorIs(t, err, ErrInvalidSettings)

	_, err = BuildTransportGraph(cat, NewRoutingSettings(-1, 40))
	assert.ErrorIs(t, err, ErrInvalidSettings)
}

func TestFindRouteAsymmetricDistances(t *testing.T) {
	tr := newTestRouter(t, []string{"A", "B"},
		[]testDistance{{"A", "B", 1000}, {"B", "A", 1100}},
		[]testRoute{{"1", []string{"A", "B"}, false}},
		NewRoutingSettings(5, 60))

	testCases := []struct {
		from, to string
		want     float64
		rideTime float64
	}{
		{from: "A", to: "B", want: 6.0, rideTime: 1.0},
		{from: "B", to: "A", want: 6.1, rideTime: 1.1},
	}

	for _, tt := range testCases {
		t.Run(tt.from+"->"+tt.to, func(t *testing.T) {
			it, status := tr.FindRoute(tt.from, tt.to)
			require.Equal(t, RouteFound, status)
			assert.InDelta(t, tt.want, it.TotalTime, 1e-9)
			require.Len(t, it.Items, 2)
			assert.Equal(t, da.NewWaitItem(tt.from, 5), it.Items[0])
			assert.Equal(t, "1", it.Items[1].Bus)
			assert.Equal(t, 1, it.Items[1].SpanCount)
			assert.InDelta(t, tt.rideTime, it.Items[1].Time, 1e-9)
		})
	}
}

func TestBuildTransportGraphTwiceGivesIdenticalResults(t *testing.T) {
	stops := []string{"A", "B", "C", "D", "E", "Lonely"}
	cat := newTestCatalogue(t, stops,
		[]testDistance{{"A", "B", 1200}, {"B", "A", 900}, {"B", "C", 2500}, {"C", "D", 700},
			{"D", "A", 3100}, {"C", "E", 1800}, {"E", "C", 2000}},
		[]testRoute{
			{"ring", []string{"A", "B", "C", "D", "A"}, true},
			{"line", []string{"B", "C", "E"}, false},
		})
	settings := NewRoutingSettings(4, 35)

	first, err := BuildTransportGraph(cat, settings)
	require.NoError(t, err)
	second, err := BuildTransportGraph(cat, settings)
	require.NoError(t, err)

	assert.Equal(t, first.GetSettings(), second.GetSettings())
	require.Equal(t, first.GetGraph().NumberOfEdges(), second.GetGraph().NumberOfEdges())

	collectEdges := func(tg *TransportGraph) []da.Edge {
		edges := make([]da.Edge, 0, tg.GetGraph().NumberOfEdges())
		tg.GetGraph().ForEdges(func(e *da.Edge) {
			edges = append(edges, *e)
		})
		return edges
	}
	assert.Equal(t, collectEdges(first), collectEdges(second))

	firstRouter, secondRouter := NewTransportRouter(first), NewTransportRouter(second)
	for _, from := range stops {
		for _, to := range stops {
			want, wantStatus := firstRouter.FindRoute(from, to)
			got, gotStatus := secondRouter.FindRoute(from, to)
			require.Equal(t, wantStatus, gotStatus, "%s->%s", from, to)
			assert.Equal(t, want, got, "%s->%s", from, to)
		}
	}

	_, status := firstRouter.FindRoute("A", "Lonely")
	assert.Equal(t, RouteNotFound, status)
}
