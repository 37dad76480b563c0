package usecases

import "errors"

var (
	ErrBusNotFound   = errors.New("bus not found")
	ErrStopNotFound  = errors.New("stop not found")
	ErrRouteNotFound = errors.New("route not found")
	ErrMapDisabled   = errors.New("map rendering is not configured")
)
