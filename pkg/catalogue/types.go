package catalogue

import "github.com/lintang-b-s/transitx/pkg/geo"

// StopID and BusID are arena handles: the position of the record in the catalogue slices.
type StopID uint32
type BusID uint32

const INVALID_STOP_ID StopID = ^StopID(0)

type Stop struct {
	ID          StopID
	Name        string
	Coordinates geo.Coordinate
}

// Bus. Stops holds the effective traversal sequence: for a non-circular route
// A-B-C it is A,B,C,B,A.
type Bus struct {
	ID         BusID
	Name       string
	Stops      []StopID
	IsCircular bool
}

// LastDeclaredStop returns the turnaround stop of a non-circular bus (the last stop
// of the declared list) or the first stop of a circular one.
func (b *Bus) LastDeclaredStop() (StopID, bool) {
	if len(b.Stops) == 0 {
		return INVALID_STOP_ID, false
	}
	if b.IsCircular {
		return b.Stops[0], true
	}
	return b.Stops[len(b.Stops)/2], true
}

type BusInfo struct {
	Name             string
	StopsCount       int
	UniqueStopsCount int
	RouteLength      int     // meter, sum of road distances
	GeoLength        float64 // meter, sum of great-circle distances
	Curvature        float64
}

type LookupStatus uint8

const (
	StopNotFound LookupStatus = iota
	StopWithoutBuses
	StopWithBuses
)

// StopBuses is the answer of GetBusesForStop. The three statuses are distinct:
// unknown stop, known stop that no bus serves, known stop with buses.
type StopBuses struct {
	Status LookupStatus
	Buses  []string
}

func (sb StopBuses) Found() bool {
	return sb.Status != StopNotFound
}

type stopPair struct {
	from, to StopID
}
