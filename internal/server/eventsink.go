package server

// EventSink is the engine's one collaborator boundary named in §1/§6: a wide
// interface of narrow, named methods, matching the shape of the teacher's
// X11FrontendAPI and of texelation's EventSink, rather than a single generic
// Emit(name string, payload any) method. Implementations are the external
// compositor/windowing backend the core does not specify.
type EventSink interface {
	WindowCreated(xid, parent uint32, geometry Geometry, depth uint8, visual uint32)
	WindowMapped(xid uint32)
	WindowUnmapped(xid uint32)
	WindowDestroyed(xid uint32)
	WindowConfigured(xid uint32, geometry Geometry, stackPosition int)
	DamageRegion(drawable uint32, rect Rect)
	ClientConnected(client ClientID)
	ClientDisconnected(client ClientID, reason string)
}

// Geometry is the (x, y, width, height, border-width) shape carried by
// WindowCreated/WindowConfigured.
type Geometry struct {
	X, Y          int32
	Width, Height uint32
	BorderWidth   uint32
}

// Rect is an exposed/damaged rectangle, relative to its drawable.
type Rect struct {
	X, Y          int16
	Width, Height uint16
}

// NullEventSink implements EventSink with no-ops; useful as a default and in
// tests that only care about protocol behavior.
type NullEventSink struct{}

func (NullEventSink) WindowCreated(uint32, uint32, Geometry, uint8, uint32) {}
func (NullEventSink) WindowMapped(uint32)                                  {}
func (NullEventSink) WindowUnmapped(uint32)                                {}
func (NullEventSink) WindowDestroyed(uint32)                               {}
func (NullEventSink) WindowConfigured(uint32, Geometry, int)               {}
func (NullEventSink) DamageRegion(uint32, Rect)                            {}
func (NullEventSink) ClientConnected(ClientID)                             {}
func (NullEventSink) ClientDisconnected(ClientID, string)                  {}

// RecordingEventSink appends every call to Events, in order; it is the test
// double used throughout this package's _test.go files in place of a real
// compositor.
type RecordingEventSink struct {
	Events []string
}

func (s *RecordingEventSink) record(e string) { s.Events = append(s.Events, e) }

func (s *RecordingEventSink) WindowCreated(xid, parent uint32, g Geometry, depth uint8, visual uint32) {
	s.record("WindowCreated")
}
func (s *RecordingEventSink) WindowMapped(xid uint32)   { s.record("WindowMapped") }
func (s *RecordingEventSink) WindowUnmapped(xid uint32) { s.record("WindowUnmapped") }
func (s *RecordingEventSink) WindowDestroyed(xid uint32) { s.record("WindowDestroyed") }
func (s *RecordingEventSink) WindowConfigured(xid uint32, g Geometry, stackPosition int) {
	s.record("WindowConfigured")
}
func (s *RecordingEventSink) DamageRegion(drawable uint32, r Rect) { s.record("DamageRegion") }
func (s *RecordingEventSink) ClientConnected(c ClientID)           { s.record("ClientConnected") }
func (s *RecordingEventSink) ClientDisconnected(c ClientID, reason string) {
	s.record("ClientDisconnected")
}
