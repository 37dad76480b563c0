package spatialindex

import (
	"sort"

	"github.com/lintang-b-s/transitx/pkg/catalogue"
	"github.com/lintang-b-s/transitx/pkg/geo"
	"github.com/tidwall/rtree"
	"go.uber.org/zap"
)

type StopIndex struct {
	tr *rtree.RTreeG[catalogue.Stop]
}

type NearbyStop struct {
	Stop     catalogue.Stop
	Distance float64 // km
}

func NewStopIndex() *StopIndex {
	var tr rtree.RTreeG[catalogue.Stop]
	return &StopIndex{
		tr: &tr,
	}
}

// Build. every stop is a point entry (lon, lat).
func (si *StopIndex) Build(stops []catalogue.Stop, log *zap.Logger) {
	log.Info("Building R-tree spatial index...", zap.Int("stops", len(stops)))
	for _, stop := range stops {
		p := [2]float64{stop.Coordinates.GetLon(), stop.Coordinates.GetLat()}
		si.tr.Insert(p, p, stop)
	}
	log.Info("R-tree spatial index built.")
}

func (si *StopIndex) Len() int {
	return si.tr.Len()
}

// SearchWithinRadius. stops within radius (in km) of (qLat, qLon), nearest first. limit <= 0 means no limit.
func (si *StopIndex) SearchWithinRadius(qLat, qLon, radius float64, limit int) []NearbyStop {
	// the east/west great circle points sit slightly inside the cap's longitude extent
	boxRadius := radius * 1.05
	lowerLat, _ := geo.GetDestinationPoint(qLat, qLon, 180, boxRadius)
	upperLat, _ := geo.GetDestinationPoint(qLat, qLon, 0, boxRadius)
	_, lowerLon := geo.GetDestinationPoint(qLat, qLon, 270, boxRadius)
	_, upperLon := geo.GetDestinationPoint(qLat, qLon, 90, boxRadius)

	results := make([]NearbyStop, 0, 10)
	collect := func(min, max [2]float64, stop catalogue.Stop) bool {
		dist := geo.CalculateHaversineDistance(qLat, qLon, stop.Coordinates.GetLat(), stop.Coordinates.GetLon())
		if dist <= radius {
			results = append(results, NearbyStop{Stop: stop, Distance: dist})
		}
		return true
	}

	if lowerLon <= upperLon {
		si.tr.Search([2]float64{lowerLon, lowerLat}, [2]float64{upperLon, upperLat}, collect)
	} else {
		// box crosses the antimeridian
		si.tr.Search([2]float64{lowerLon, lowerLat}, [2]float64{180, upperLat}, collect)
		si.tr.Search([2]float64{-180, lowerLat}, [2]float64{upperLon, upperLat}, collect)
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Distance != results[j].Distance {
			return results[i].Distance < results[j].Distance
		}
		return results[i].Stop.Name < results[j].Stop.Name
	})

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results
}
