package pkg

// enum of graph edge kind
type EdgeKind uint8

const (
	WAIT_EDGE EdgeKind = iota
	RIDE_EDGE
)

func (k EdgeKind) String() string {
	switch k {
	case WAIT_EDGE:
		return "Wait"
	case RIDE_EDGE:
		return "Bus"
	default:
		return "Unknown"
	}
}

const (
	INF_WEIGHT float64 = 1e15

	EARTH_RADIUS_METER = 6371000.0
	EARTH_RADIUS_KM    = 6371.0

	// km/h -> meter/minute
	KMH_TO_METER_PER_MINUTE = 1000.0 / 60.0

	EPSILON = 1e-6
)
