// Package vstick is a virtual on-screen joystick for [Ebitengine] and other
// pointer-driven front ends.
//
// A [Joystick] consumes raw pointer, mouse and touch events and turns a single
// press-drag-release interaction into a stream of motion events carrying the
// pointer position clamped to the pad, a normalized position in [-1, 1], force,
// angle and a discrete direction, followed by exactly one release event.
//
// # Quick start
//
// [Pad] draws the joystick and doubles as its [Layout] and [Presenter]; [Run]
// opens a window and wires mouse and touch polling for you:
//
//	pad := vstick.NewPad(40, 320, 120, 48)
//	j, err := vstick.New(pad, pad, vstick.DefaultConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//	j.Move().Subscribe(func(e vstick.Event) {
//		player.Steer(e.NormalizedPos)
//	})
//	vstick.Run(vstick.NewGame(j, pad, nil), vstick.RunConfig{
//		Title: "My Game", Width: 640, Height: 480,
//	})
//
// Inside an existing ebiten.Game, create a [Source] and call
// [Source.Update] from your Update method, and [Pad.Update] and [Pad.Draw]
// from Update and Draw.
//
// # Streams
//
// Every output of a Joystick is a [Stream]. Subscribing returns a
// [CallbackHandle]; call Remove on it to unsubscribe. A new subscriber
// immediately receives the most recent value, if any.
//
//   - [Joystick.Start]: the sample that activated the pad
//   - [Joystick.Move]: motion above the force threshold
//   - [Joystick.Release]: one per interaction, centered on the pad
//   - [Joystick.Up], [Joystick.Down], [Joystick.Left], [Joystick.Right]:
//     fire when the plan direction changes to that direction
//   - [Joystick.PlanDirX], [Joystick.PlanDirY]: the horizontal and vertical
//     components of every move
//
// # Headless use
//
// Nothing in [Joystick] needs a window. Feed it [RawEvent] values directly
// with [Joystick.Handle], or replay a recorded [Script]. [StaticLayout] and
// [NopPresenter] stand in for a real pad.
//
// # Threading
//
// A Joystick is not safe for concurrent use. Call Handle from one goroutine;
// producers on other goroutines should send their events over a channel.
//
// [Ebitengine]: https://ebitengine.org
package vstick
