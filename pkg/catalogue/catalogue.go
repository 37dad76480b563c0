package catalogue

import (
	"slices"
	"sort"

	"github.com/lintang-b-s/transitx/pkg/geo"
)

// Catalogue owns every stop and bus. Records live in append-only slices and are referenced
// by handle, so growing a slice never invalidates a reference held elsewhere
// (distance keys, reverse index, routing graph vertex map).
//
// The load order is: all stops, then all distances, then all routes. Once a routing graph
// has been built from the catalogue it must not be mutated again.
type Catalogue struct {
	stops []Stop
	buses []Bus

	stopsByName map[string]StopID
	busesByName map[string]BusID

	// stopBuses[stopID] = sorted unique names of the buses serving the stop
	stopBuses [][]string
	distances map[stopPair]int
}

func NewCatalogue() *Catalogue {
	return &Catalogue{
		stops:       make([]Stop, 0),
		buses:       make([]Bus, 0),
		stopsByName: make(map[string]StopID),
		busesByName: make(map[string]BusID),
		stopBuses:   make([][]string, 0),
		distances:   make(map[stopPair]int),
	}
}

// AddStop inserts a stop. Names are unique and the first write wins: adding an existing name
// leaves the catalogue untouched and returns the existing handle with added == false.
func (c *Catalogue) AddStop(name string, coords geo.Coordinate) (StopID, bool) {
	if id, ok := c.stopsByName[name]; ok {
		return id, false
	}
	id := StopID(len(c.stops))
	c.stops = append(c.stops, Stop{ID: id, Name: name, Coordinates: coords})
	c.stopBuses = append(c.stopBuses, nil)
	c.stopsByName[name] = id
	return id, true
}

// AddRoute registers a bus. Unknown stop names are dropped silently. For a non-circular
// route the return leg is appended, so the stored sequence has 2k-1 stops. Same
// first-write-wins policy as AddStop.
func (c *Catalogue) AddRoute(name string, stopNames []string, isCircular bool) (BusID, bool) {
	if id, ok := c.busesByName[name]; ok {
		return id, false
	}

	route := make([]StopID, 0, 2*len(stopNames))
	for _, stopName := range stopNames {
		sid, ok := c.stopsByName[stopName]
		if !ok {
			continue
		}
		route = append(route, sid)
		c.registerBusForStop(sid, name)
	}

	if !isCircular && len(route) > 1 {
		for i := len(route) - 2; i >= 0; i-- {
			route = append(route, route[i])
		}
	}

	id := BusID(len(c.buses))
	c.buses = append(c.buses, Bus{ID: id, Name: name, Stops: route, IsCircular: isCircular})
	c.busesByName[name] = id
	return id, true
}

func (c *Catalogue) registerBusForStop(sid StopID, busName string) {
	names := c.stopBuses[sid]
	pos, found := slices.BinarySearch(names, busName)
	if found {
		return
	}
	c.stopBuses[sid] = slices.Insert(names, pos, busName)
}

func (c *Catalogue) GetStopInfo(name string) (Stop, bool) {
	id, ok := c.stopsByName[name]
	if !ok {
		return Stop{}, false
	}
	return c.stops[id], true
}

func (c *Catalogue) GetStopID(name string) (StopID, bool) {
	id, ok := c.stopsByName[name]
	return id, ok
}

func (c *Catalogue) GetStop(id StopID) Stop {
	return c.stops[id]
}

func (c *Catalogue) GetBus(id BusID) Bus {
	return c.buses[id]
}

func (c *Catalogue) GetBusByName(name string) (Bus, bool) {
	id, ok := c.busesByName[name]
	if !ok {
		return Bus{}, false
	}
	return c.buses[id], true
}

func (c *Catalogue) StopsCount() int {
	return len(c.stops)
}

func (c *Catalogue) BusesCount() int {
	return len(c.buses)
}

// GetRouteInfo returns the statistics of a bus; false when the bus is unknown.
func (c *Catalogue) GetRouteInfo(name string) (BusInfo, bool) {
	id, ok := c.busesByName[name]
	if !ok {
		return BusInfo{}, false
	}

	bus := &c.buses[id]
	info := BusInfo{Name: bus.Name, StopsCount: len(bus.Stops)}
	if len(bus.Stops) == 0 {
		return info, true
	}

	unique := make(map[StopID]struct{}, len(bus.Stops))
	unique[bus.Stops[0]] = struct{}{}
	for i := 1; i < len(bus.Stops); i++ {
		from, to := bus.Stops[i-1], bus.Stops[i]
		info.RouteLength += c.GetDistance(from, to)
		info.GeoLength += geo.ComputeDistance(c.stops[from].Coordinates, c.stops[to].Coordinates)
		unique[to] = struct{}{}
	}
	info.UniqueStopsCount = len(unique)

	if info.GeoLength > 0 {
		info.Curvature = float64(info.RouteLength) / info.GeoLength
	}
	return info, true
}

// GetBusesForStop. see StopBuses for the three possible outcomes.
func (c *Catalogue) GetBusesForStop(name string) StopBuses {
	id, ok := c.stopsByName[name]
	if !ok {
		return StopBuses{Status: StopNotFound}
	}
	names := c.stopBuses[id]
	if len(names) == 0 {
		return StopBuses{Status: StopWithoutBuses, Buses: []string{}}
	}
	return StopBuses{Status: StopWithBuses, Buses: slices.Clone(names)}
}

// AllStops returns every stop ordered by name.
func (c *Catalogue) AllStops() []Stop {
	stops := slices.Clone(c.stops)
	sort.Slice(stops, func(i, j int) bool {
		return stops[i].Name < stops[j].Name
	})
	return stops
}

// StopsServedByBuses returns, ordered by name, the stops visited by at least one bus.
func (c *Catalogue) StopsServedByBuses() []Stop {
	stops := make([]Stop, 0, len(c.stops))
	for id, names := range c.stopBuses {
		if len(names) > 0 {
			stops = append(stops, c.stops[id])
		}
	}
	sort.Slice(stops, func(i, j int) bool {
		return stops[i].Name < stops[j].Name
	})
	return stops
}

// AllBuses returns every bus ordered by name.
func (c *Catalogue) AllBuses() []Bus {
	buses := slices.Clone(c.buses)
	sort.Slice(buses, func(i, j int) bool {
		return buses[i].Name < buses[j].Name
	})
	return buses
}

// BusCoordinates returns the coordinates of the effective traversal sequence of a bus.
func (c *Catalogue) BusCoordinates(id BusID) []geo.Coordinate {
	bus := &c.buses[id]
	coords := make([]geo.Coordinate, 0, len(bus.Stops))
	for _, sid := range bus.Stops {
		coords = append(coords, c.stops[sid].Coordinates)
	}
	return coords
}
