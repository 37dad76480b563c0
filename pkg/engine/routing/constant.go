package routing

type RouteStatus uint8

const (
	RouteFound RouteStatus = iota
	RouteStopNotFound
	RouteNotFound
)

func (rs RouteStatus) String() string {
	switch rs {
	case RouteFound:
		return "found"
	case RouteStopNotFound:
		return "stop not found"
	default:
		return "not found"
	}
}
