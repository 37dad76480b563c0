package controllers

import (
	"github.com/lintang-b-s/transitx/pkg/datastructure"
	"github.com/lintang-b-s/transitx/pkg/http/usecases"
	"github.com/lintang-b-s/transitx/pkg/spatialindex"
)

type TransitService interface {
	GetBus(name string) (usecases.BusDetail, error)
	GetStop(name string) (usecases.StopDetail, error)
	FindRoute(from, to string) (datastructure.Itinerary, error)
	RenderMap() (string, error)
	NearbyStops(lat, lon, radius float64, limit int) []spatialindex.NearbyStop
}
