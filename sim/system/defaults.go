package system

import "github.com/milk9111/middlechamber/sim"

// Defaults returns the systems of one tick in run order.
func Defaults() []sim.System {
	return []sim.System{
		NewInputSystem(),
		NewPhysicsSystem(),
		NewRespawnSystem(),
		NewCheckpointSystem(),
		NewGateSystem(),
		NewExpirySystem(),
		NewCameraSystem(),
	}
}
