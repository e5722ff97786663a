// Package render is the terminal implementation of the surface port. It
// only formats what the view already decided; nothing here feeds back
// into game state.
package render

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"goldenpotato/internal/domain"
	"goldenpotato/internal/ports"
)

var (
	potatoColor    = color.New(color.FgYellow)
	wildcardColor  = color.New(color.FgCyan)
	actionColor    = color.New(color.FgMagenta)
	goldenColor    = color.New(color.FgGreen, color.Bold)
	interruptColor = color.New(color.FgRed, color.Bold)
	statusColor    = color.New(color.FgBlue)
)

// Terminal renders the hand, actions and table counters to stdout.
type Terminal struct{}

// NewTerminal constructs the terminal surface.
func NewTerminal() *Terminal {
	return &Terminal{}
}

func (t *Terminal) RedrawHand(hand []domain.Card, highlightInterrupts bool) {
	if len(hand) == 0 {
		fmt.Println("Hand: (empty)")
		return
	}
	parts := make([]string, len(hand))
	for i, c := range hand {
		parts[i] = t.cardLabel(c, highlightInterrupts)
	}
	fmt.Printf("Hand: %s\n", strings.Join(parts, "  "))
}

func (t *Terminal) cardLabel(c domain.Card, highlightInterrupts bool) string {
	label := fmt.Sprintf("[%d:%s]", c.ID, c.Name())
	if highlightInterrupts && c.IsInterrupt() {
		return interruptColor.Sprint(label)
	}
	switch c.Type {
	case domain.CardPotato:
		return potatoColor.Sprint(label)
	case domain.CardWildcard:
		return wildcardColor.Sprint(label)
	case domain.CardAction:
		return actionColor.Sprint(label)
	case domain.CardGoldenPotato:
		return goldenColor.Sprint(label)
	}
	return label
}

func (t *Terminal) ShowActions(actions []ports.Action) {
	if len(actions) == 0 {
		return
	}
	var buf strings.Builder
	for i, a := range actions {
		line := fmt.Sprintf("%d. %s", i+1, a.Label)
		if !a.Enabled {
			line += " (unavailable)"
		}
		buf.WriteString(line)
		buf.WriteString("\n")
	}
	fmt.Print(buf.String())
}

func (t *Terminal) ClearActions() {
	// A terminal has nothing to retract; the next prompt supersedes.
}

func (t *Terminal) ShowStatus(line string) {
	statusColor.Println(line)
}
