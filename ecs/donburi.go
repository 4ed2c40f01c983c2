package ecs

import (
	"github.com/phanxgames/vstick"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// StartEventType carries the sample that activated the joystick.
var StartEventType = events.NewEventType[vstick.Sample]()

// MoveEventType carries every above-threshold motion event.
var MoveEventType = events.NewEventType[vstick.Event]()

// ReleaseEventType carries the single release event of each interaction.
var ReleaseEventType = events.NewEventType[vstick.Event]()

// DirectionEventType carries the new plan direction each time it changes.
var DirectionEventType = events.NewEventType[vstick.Dir]()

// Detach removes the subscriptions made by Attach.
type Detach func()

// Attach publishes the joystick's streams into world. Events are queued by
// Donburi until ProcessEvents or events.ProcessAllEvents runs.
//
// Only events raised after Attach are forwarded, except that the joystick's
// current plan direction, if any, is published once so systems start from it.
func Attach(world donburi.World, j *vstick.Joystick) Detach {
	// Streams replay their last value on Subscribe; drop those.
	live := false
	forward := func(publish func()) {
		if live {
			publish()
		}
	}

	handles := []vstick.CallbackHandle{
		j.Start().Subscribe(func(s vstick.Sample) {
			forward(func() { StartEventType.Publish(world, s) })
		}),
		j.Move().Subscribe(func(e vstick.Event) {
			forward(func() { MoveEventType.Publish(world, e) })
		}),
		j.Release().Subscribe(func(e vstick.Event) {
			forward(func() { ReleaseEventType.Publish(world, e) })
		}),
	}
	for _, s := range []*vstick.Stream[vstick.Dir]{j.Up(), j.Down(), j.Left(), j.Right()} {
		handles = append(handles, s.Subscribe(func(d vstick.Dir) {
			forward(func() { DirectionEventType.Publish(world, d) })
		}))
	}
	live = true

	if plan := j.Plan(); plan != vstick.DirNone {
		DirectionEventType.Publish(world, plan)
	}

	return func() {
		for _, h := range handles {
			h.Remove()
		}
	}
}
