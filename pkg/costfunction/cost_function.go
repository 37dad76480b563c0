package costfunction

import "github.com/lintang-b-s/transitx/pkg"

type CostFunction interface {
	GetWaitWeight() float64
	GetRideWeight(distanceMeter int) float64
}

// TransitCostFunction. every weight is in minute: a fixed boarding wait at each stop and
// ride time = road distance / bus velocity.
type TransitCostFunction struct {
	busWaitTime     float64 // minute
	metersPerMinute float64
}

// NewTransitCostFunction. busVelocity in km/h, must be > 0.
func NewTransitCostFunction(busWaitTime int, busVelocity float64) *TransitCostFunction {
	return &TransitCostFunction{
		busWaitTime:     float64(busWaitTime),
		metersPerMinute: busVelocity * pkg.KMH_TO_METER_PER_MINUTE,
	}
}

func (tf *TransitCostFunction) GetWaitWeight() float64 {
	return tf.busWaitTime
}

func (tf *TransitCostFunction) GetRideWeight(distanceMeter int) float64 {
	return float64(distanceMeter) / tf.metersPerMinute
}
