package datastructure

import "github.com/lintang-b-s/transitx/pkg"

// ItineraryItem is either a wait at StopName or a ride on Bus over SpanCount segments.
// Time in minute.
type ItineraryItem struct {
	Kind      pkg.EdgeKind
	StopName  string
	Bus       string
	SpanCount int
	Time      float64
}

type Itinerary struct {
	TotalTime float64
	Items     []ItineraryItem
}

func NewWaitItem(stopName string, time float64) ItineraryItem {
	return ItineraryItem{Kind: pkg.WAIT_EDGE, StopName: stopName, Time: time}
}

func NewBusItem(bus string, spanCount int, time float64) ItineraryItem {
	return ItineraryItem{Kind: pkg.RIDE_EDGE, Bus: bus, SpanCount: spanCount, Time: time}
}

func (it Itinerary) Clone() Itinerary {
	items := make([]ItineraryItem, len(it.Items))
	copy(items, it.Items)
	return Itinerary{TotalTime: it.TotalTime, Items: items}
}
