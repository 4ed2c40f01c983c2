// Package ecs forwards vstick joystick streams into a [Donburi] world.
//
// [Attach] subscribes to a joystick and publishes its start, move, release
// and direction changes as typed Donburi events. Systems subscribe to the
// event types and drain them with ProcessEvents once per tick:
//
//	detach := ecs.Attach(world, joystick)
//	defer detach()
//
//	ecs.MoveEventType.Subscribe(world, func(w donburi.World, e vstick.Event) {
//		// steer the player
//	})
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
