package app

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"goldenpotato/internal/domain"
	"goldenpotato/internal/ports"
)

type fakeSurface struct {
	hand      []domain.Card
	highlight bool
	actions   []ports.Action
	statuses  []string
}

func (s *fakeSurface) RedrawHand(hand []domain.Card, highlight bool) {
	s.hand = append(s.hand[:0:0], hand...)
	s.highlight = highlight
}

func (s *fakeSurface) ShowActions(actions []ports.Action) { s.actions = actions }

func (s *fakeSurface) ClearActions() { s.actions = nil }

func (s *fakeSurface) ShowStatus(line string) { s.statuses = append(s.statuses, line) }

func (s *fakeSurface) actionIDs() []string {
	ids := make([]string, len(s.actions))
	for i, a := range s.actions {
		ids[i] = a.ID
	}
	return ids
}

type fakeDispatcher struct {
	mu   sync.Mutex
	reqs []ports.ActionRequest
}

func (d *fakeDispatcher) Dispatch(req ports.ActionRequest) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.reqs = append(d.reqs, req)
	return nil
}

func (d *fakeDispatcher) count(name string) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	n := 0
	for _, r := range d.reqs {
		if r.Name == name {
			n++
		}
	}
	return n
}

func (d *fakeDispatcher) names() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	names := make([]string, len(d.reqs))
	for i, r := range d.reqs {
		names[i] = r.Name
	}
	return names
}

type testRig struct {
	view       *domain.View
	surface    *fakeSurface
	dispatcher *fakeDispatcher
	machine    *Machine
	engine     *Engine
}

func newTestRig(localSeat int64) *testRig {
	log := zap.NewNop()
	view := domain.NewView(localSeat)
	surface := &fakeSurface{}
	dispatcher := &fakeDispatcher{}
	sender := NewActionSender(log, dispatcher)
	discard := NewDiscardTracker(log, view)
	machine := NewMachine(log, view, surface, sender, discard, 10*time.Second)
	engine := NewEngine(log, view, NewRevealCache(), discard, machine, surface)
	return &testRig{
		view:       view,
		surface:    surface,
		dispatcher: dispatcher,
		machine:    machine,
		engine:     engine,
	}
}

func cardPayloadJSON(id int64, typ string, typeArg int) map[string]any {
	return map[string]any{"id": id, "type": typ, "type_arg": typeArg}
}

func notif(kind Kind, fields map[string]any) Notification {
	data, err := codec.Marshal(fields)
	if err != nil {
		panic(err)
	}
	return Notification{Kind: kind, Payload: DecodePayload(data)}
}
