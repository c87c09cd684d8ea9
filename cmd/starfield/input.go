package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/meilin-lab/portfolio/internal/effects"
)

// Each terminal cell stands for an 8x16 block of surface pixels so the
// effects run at the same scale as in a browser.
const (
	cellW = 8
	cellH = 16
)

// translator turns tcell events into scene input. It remembers the
// previous button state so a held button emits a single click.
type translator struct {
	buttons tcell.ButtonMask
}

// translate returns the inputs for ev and whether the user asked to quit.
func (t *translator) translate(ev tcell.Event) (inputs []effects.Input, quit bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return nil, true
		}

	case *tcell.EventMouse:
		cx, cy := ev.Position()
		x := float64(cx*cellW + cellW/2)
		y := float64(cy*cellH + cellH/2)
		inputs = append(inputs, effects.Input{Kind: effects.InputMove, X: x, Y: y})

		pressed := ev.Buttons() &^ t.buttons
		t.buttons = ev.Buttons()
		switch {
		case pressed&tcell.Button1 != 0:
			inputs = append(inputs, effects.Input{Kind: effects.InputClick, X: x, Y: y, Primary: true})
		case pressed&(tcell.Button2|tcell.Button3) != 0:
			inputs = append(inputs, effects.Input{Kind: effects.InputClick, X: x, Y: y})
		}

	case *tcell.EventFocus:
		if !ev.Focused {
			t.buttons = tcell.ButtonNone
			inputs = append(inputs, effects.Input{Kind: effects.InputLeave})
		}

	case *tcell.EventResize:
		w, h := ev.Size()
		inputs = append(inputs, effects.Input{
			Kind: effects.InputResize,
			X:    float64(w * cellW),
			Y:    float64(h * cellH),
		})
	}
	return inputs, false
}
