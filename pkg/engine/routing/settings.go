package routing

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var (
	ErrEmptyCatalogue  = errors.New("routing: catalogue has no stops")
	ErrInvalidSettings = errors.New("routing: invalid routing settings")
	settingsValidator  = validator.New()
)

// RoutingSettings. BusWaitTime in minute, BusVelocity in km/h.
type RoutingSettings struct {
	BusWaitTime int     `json:"bus_wait_time" mapstructure:"bus_wait_time" validate:"gte=0,lte=1000"`
	BusVelocity float64 `json:"bus_velocity" mapstructure:"bus_velocity" validate:"gt=0,lte=1000"`
}

func NewRoutingSettings(busWaitTime int, busVelocity float64) RoutingSettings {
	return RoutingSettings{BusWaitTime: busWaitTime, BusVelocity: busVelocity}
}

func (rs RoutingSettings) Validate() error {
	if err := settingsValidator.Struct(rs); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}
	return nil
}
