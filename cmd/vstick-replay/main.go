// Command vstick-replay runs a JSON input script through a headless joystick
// and logs every event it produces.
//
//	vstick-replay -size 120 -handle 40 script.json
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/antongulenko/golib"
	"github.com/phanxgames/vstick"
	log "github.com/sirupsen/logrus"
)

func main() {
	var layout vstick.StaticLayout
	flag.Float64Var(&layout.Size, "size", 100, "Pad diameter")
	flag.Float64Var(&layout.Handle, "handle", 20, "Handle diameter")
	flag.Float64Var(&layout.At.X, "x", 0, "Pad left edge")
	flag.Float64Var(&layout.At.Y, "y", 0, "Pad top edge")
	threshold := flag.Float64("threshold", vstick.DefaultThreshold, "Minimum force before a move event is emitted")
	golib.RegisterFlags(golib.FlagsAll)
	flag.Parse()
	golib.ConfigureLogging()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: vstick-replay [flags] script.json")
		flag.PrintDefaults()
		os.Exit(2)
	}
	data, err := os.ReadFile(flag.Arg(0))
	golib.Checkerr(err)
	script, err := vstick.LoadScript(data)
	golib.Checkerr(err)

	cfg := vstick.DefaultConfig()
	cfg.Threshold = *threshold
	j, err := vstick.New(layout, nil, cfg)
	golib.Checkerr(err)

	r := &recorder{}
	r.attach(j)
	for _, ev := range script.Events() {
		j.Handle(ev)
	}
	log.WithFields(log.Fields{
		"starts":   r.starts,
		"moves":    r.moves,
		"releases": r.releases,
	}).Infoln("Replay finished")
}

type recorder struct {
	starts, moves, releases int
}

func (r *recorder) attach(j *vstick.Joystick) {
	j.Start().Subscribe(func(s vstick.Sample) {
		r.starts++
		log.WithFields(log.Fields{"x": s.X, "y": s.Y, "cycle": j.Cycle()}).Infoln("Start")
	})
	j.Move().Subscribe(func(e vstick.Event) {
		r.moves++
		log.WithFields(eventFields(e)).Infoln("Move")
	})
	j.Release().Subscribe(func(e vstick.Event) {
		r.releases++
		log.WithFields(eventFields(e)).Infoln("Release")
	})
	for _, s := range []*vstick.Stream[vstick.Dir]{j.Up(), j.Down(), j.Left(), j.Right()} {
		s.Subscribe(func(d vstick.Dir) { log.WithField("plan", d).Infoln("Direction") })
	}
}

func eventFields(e vstick.Event) log.Fields {
	f := log.Fields{
		"x":        e.NormalizedPos.X,
		"y":        e.NormalizedPos.Y,
		"force":    e.Force,
		"pressure": e.Pressure,
		"angle":    e.Angle.Degree,
	}
	if e.Direction != nil {
		f["dirX"] = e.Direction.X
		f["dirY"] = e.Direction.Y
		f["plan"] = e.Direction.Plan
	}
	return f
}
