// Command ease-demo is an animated terminal visualization of the easing
// curves.
//
// The upper part of the screen plots the selected curve; below it a
// marker sweeps left to right with its position driven by a timeline
// built from that curve. Keys: left/right switch curves, space pauses,
// q or ESC quits.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	easetimeline "github.com/tphakala/go-ease-timeline"
)

const (
	sweepDuration = 2.0 // seconds per sweep
	frameInterval = 33 * time.Millisecond

	plotMargin = 2
)

type demo struct {
	screen  tcell.Screen
	kinds   []easetimeline.Kind
	current int
	paused  bool
	elapsed float64

	timeline *easetimeline.Timeline
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "ease-demo: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}

	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer screen.Fini()

	screen.SetStyle(tcell.StyleDefault)

	d := &demo{
		screen: screen,
		kinds:  easetimeline.Kinds()[1:], // skip the null curve
	}
	if err := d.rebuildTimeline(); err != nil {
		return err
	}

	events := make(chan tcell.Event, 1)
	go func() {
		for {
			events <- screen.PollEvent()
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				if d.handleKey(ev) {
					return nil
				}
			}
		case <-ticker.C:
			if !d.paused {
				d.elapsed += frameInterval.Seconds()
				if d.elapsed >= sweepDuration {
					d.elapsed = 0
				}
			}
			d.draw()
			screen.Show()
		}
	}
}

func (d *demo) handleKey(ev *tcell.EventKey) (quit bool) {
	switch ev.Key() {
	case tcell.KeyEscape:
		return true
	case tcell.KeyLeft:
		d.current = (d.current + len(d.kinds) - 1) % len(d.kinds)
		d.reset()
	case tcell.KeyRight:
		d.current = (d.current + 1) % len(d.kinds)
		d.reset()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true
		case ' ':
			d.paused = !d.paused
		}
	}

	return false
}

func (d *demo) reset() {
	d.elapsed = 0
	if err := d.rebuildTimeline(); err != nil {
		// Construction only fails on invalid parameters, which are
		// fixed here; treat it as a programming error.
		panic(err)
	}
}

func (d *demo) rebuildTimeline() error {
	tl, err := easetimeline.NewRamp(sweepDuration, 0, 1, d.kinds[d.current], easetimeline.DefaultConfig())
	if err != nil {
		return err
	}

	d.timeline = tl

	return nil
}

func (d *demo) draw() {
	d.screen.Clear()

	width, height := d.screen.Size()
	plotW := width - 2*plotMargin
	plotH := height - 6
	if plotW < 10 || plotH < 5 {
		d.drawText(0, 0, "terminal too small")
		return
	}

	kind := d.kinds[d.current]

	// Curve trace. Back and elastic curves overshoot [0, 1], so leave a
	// quarter of the plot height as headroom on each side.
	headroom := plotH / 4
	span := float64(plotH - 2*headroom)

	samples := easetimeline.SampleCurve(kind, plotW)
	for x, v := range samples {
		y := plotH - 1 - headroom - int(v*span)
		if y >= 0 && y < plotH {
			d.screen.SetContent(plotMargin+x, 1+y, '·', nil, tcell.StyleDefault.Foreground(tcell.ColorGray))
		}
	}

	// Sweeping marker along the bottom row, eased through the timeline.
	progress, err := d.timeline.Value(d.elapsed)
	if err != nil {
		progress = 0
	}

	markerX := int(progress * float64(plotW-1))
	if markerX < 0 {
		markerX = 0
	}
	if markerX > plotW-1 {
		markerX = plotW - 1
	}

	markerRow := plotH + 2
	for x := 0; x < plotW; x++ {
		d.screen.SetContent(plotMargin+x, markerRow, '-', nil, tcell.StyleDefault.Foreground(tcell.ColorDarkGray))
	}
	d.screen.SetContent(plotMargin+markerX, markerRow, '●', nil, tcell.StyleDefault.Foreground(tcell.ColorGreen))

	status := fmt.Sprintf("curve: %s (%d/%d)", kind, d.current+1, len(d.kinds))
	if d.paused {
		status += "  [paused]"
	}
	d.drawText(plotMargin, markerRow+2, status)
	d.drawText(plotMargin, markerRow+3, "←/→ switch curve   space pause   q quit")
}

func (d *demo) drawText(x, y int, text string) {
	for i, r := range text {
		d.screen.SetContent(x+i, y, r, nil, tcell.StyleDefault)
	}
}
