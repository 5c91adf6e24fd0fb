package server

import (
	"encoding/binary"

	"github.com/PerikiyoXD/rxserver/internal/resource"
	"github.com/PerikiyoXD/rxserver/internal/wire"
)

// Event mask bits consulted by the notify* helpers below, per §4.K's "walk
// the window whose ClientEventMasks selected this class, deliver to every
// matching client" rule. Input events (KeyPress, ButtonPress, ...) are not
// routed anywhere in this server; this file only routes the
// structure/property/selection notification family.
const (
	maskSubstructureNotify = 1 << 19
	maskStructureNotify    = 1 << 17
	maskPropertyChange     = 1 << 22
)

// deliver encodes one event per matching client (byte order is per-client,
// so a shared pre-encoded payload would be wrong on a mixed-order server)
// and pushes it to that client's outbound queue. window is the resource
// whose ClientEventMasks is consulted; mask is the bit the registering
// client must have set.
func (e *Engine) deliver(window uint32, mask uint32, encode func(order binary.ByteOrder) []byte) {
	res, err := e.registry.Lookup(window, resource.KindWindow)
	if err != nil {
		return
	}
	w := res.Window
	if w.EventMask&mask == 0 {
		return
	}
	e.mu.RLock()
	defer e.mu.RUnlock()
	for clientID, clientMask := range w.ClientEventMasks {
		if clientMask&mask == 0 {
			continue
		}
		cl, ok := e.clients[clientID]
		if !ok {
			continue
		}
		cl.out.Push(encode(cl.order))
	}
}

func (e *Engine) notifyCreate(parent, window uint32, x, y int16, width, height, borderWidth uint16, overrideRedirect bool, seq uint16) {
	e.deliver(parent, maskSubstructureNotify, func(order binary.ByteOrder) []byte {
		ev := &wire.CreateNotifyEvent{
			Sequence: seq, Parent: parent, Window: window,
			X: x, Y: y, Width: width, Height: height, BorderWidth: borderWidth,
			OverrideRedirect: overrideRedirect,
		}
		return ev.EncodeMessage(order)
	})
}

func (e *Engine) notifyDestroy(parent, window uint32) {
	e.deliver(parent, maskSubstructureNotify, func(order binary.ByteOrder) []byte {
		ev := &wire.DestroyNotifyEvent{Event: parent, Window: window}
		return ev.EncodeMessage(order)
	})
}

func (e *Engine) notifyMap(parent, window uint32, overrideRedirect bool, seq uint16) {
	e.deliver(window, maskStructureNotify, func(order binary.ByteOrder) []byte {
		ev := &wire.MapNotifyEvent{Sequence: seq, Event: window, Window: window, OverrideRedirect: overrideRedirect}
		return ev.EncodeMessage(order)
	})
	e.deliver(parent, maskSubstructureNotify, func(order binary.ByteOrder) []byte {
		ev := &wire.MapNotifyEvent{Sequence: seq, Event: parent, Window: window, OverrideRedirect: overrideRedirect}
		return ev.EncodeMessage(order)
	})
	if !overrideRedirect {
		e.notifyMapRequest(parent, window, seq)
	}
}

// notifyMapRequest is sent instead of mapping the window outright when
// parent has a SubstructureRedirect client (a window manager); this engine
// does not model redirect ownership separately from SubstructureRedirect
// selection, so it is delivered alongside MapNotify rather than replacing
// it. It is sent only when parent's Window.HasRedirect is set, and no
// handler in this server sets that field, so it sends nothing.
func (e *Engine) notifyMapRequest(parent, window uint32, seq uint16) {
	res, err := e.registry.Lookup(parent, resource.KindWindow)
	if err != nil || !res.Window.HasRedirect {
		return
	}
	e.mu.RLock()
	cl, ok := e.clients[res.Window.RedirectOwner]
	e.mu.RUnlock()
	if !ok {
		return
	}
	ev := &wire.MapRequestEvent{Sequence: seq, Parent: parent, Window: window}
	cl.out.Push(ev.EncodeMessage(cl.order))
}

func (e *Engine) notifyUnmap(parent, window uint32, fromConfigure bool) {
	e.deliver(window, maskStructureNotify, func(order binary.ByteOrder) []byte {
		ev := &wire.UnmapNotifyEvent{Event: window, Window: window, FromConfigure: fromConfigure}
		return ev.EncodeMessage(order)
	})
	e.deliver(parent, maskSubstructureNotify, func(order binary.ByteOrder) []byte {
		ev := &wire.UnmapNotifyEvent{Event: parent, Window: window, FromConfigure: fromConfigure}
		return ev.EncodeMessage(order)
	})
}

func (e *Engine) notifyConfigure(parent, window uint32, w *resource.Window, seq uint16) {
	e.deliver(window, maskStructureNotify, func(order binary.ByteOrder) []byte {
		ev := &wire.ConfigureNotifyEvent{
			Sequence: seq, Event: window, Window: window,
			X: int16(w.X), Y: int16(w.Y), Width: uint16(w.Width), Height: uint16(w.Height),
			BorderWidth: uint16(w.BorderWidth), OverrideRedirect: w.OverrideRedirect,
		}
		return ev.EncodeMessage(order)
	})
	e.deliver(parent, maskSubstructureNotify, func(order binary.ByteOrder) []byte {
		ev := &wire.ConfigureNotifyEvent{
			Sequence: seq, Event: parent, Window: window,
			X: int16(w.X), Y: int16(w.Y), Width: uint16(w.Width), Height: uint16(w.Height),
			BorderWidth: uint16(w.BorderWidth), OverrideRedirect: w.OverrideRedirect,
		}
		return ev.EncodeMessage(order)
	})
}

// notifyProperty sends PropertyNotify for atom on window; state is
// wire.PropertyNewValue (0) or wire.PropertyDelete (1).
func (e *Engine) notifyProperty(window, atom uint32, state byte, seq uint16) {
	e.deliver(window, maskPropertyChange, func(order binary.ByteOrder) []byte {
		ev := &wire.PropertyNotifyEvent{Sequence: seq, Window: window, Atom: atom, State: state}
		return ev.EncodeMessage(order)
	})
}

func (e *Engine) notifySelection(requestor, selection, target, property uint32, seq uint16) {
	res, err := e.registry.Lookup(requestor, resource.KindWindow)
	if err != nil {
		return
	}
	e.mu.RLock()
	cl, ok := e.clients[res.Owner]
	e.mu.RUnlock()
	if !ok {
		return
	}
	ev := &wire.SelectionNotifyEvent{Sequence: seq, Requestor: requestor, Selection: selection, Target: target, Property: property}
	cl.out.Push(ev.EncodeMessage(cl.order))
}

func (e *Engine) notifySelectionRequest(owner, requestor, selection, target, property uint32, seq uint16) {
	res, err := e.registry.Lookup(owner, resource.KindWindow)
	if err != nil {
		return
	}
	e.mu.RLock()
	cl, ok := e.clients[res.Owner]
	e.mu.RUnlock()
	if !ok {
		return
	}
	ev := &wire.SelectionRequestEvent{Sequence: seq, Owner: owner, Requestor: requestor, Selection: selection, Target: target, Property: property}
	cl.out.Push(ev.EncodeMessage(cl.order))
}

// deliverRaw implements SendEvent (§4.J): the 32-byte event payload was
// built and signed by the requesting client, the server only routes it to
// destination's interested clients (or, per X11 semantics, ignores mask
// entirely when destination is PointerWindow/InputFocus — not modeled here,
// see DESIGN.md).
func (e *Engine) deliverRaw(destination uint32, mask uint32, raw []byte) {
	res, err := e.registry.Lookup(destination, resource.KindWindow)
	if err != nil {
		return
	}
	w := res.Window
	e.mu.RLock()
	defer e.mu.RUnlock()
	for clientID, clientMask := range w.ClientEventMasks {
		if clientMask&mask == 0 {
			continue
		}
		cl, ok := e.clients[clientID]
		if !ok {
			continue
		}
		cl.out.Push(append([]byte(nil), raw...))
	}
}
