package server

import "github.com/PerikiyoXD/rxserver/internal/wire"

// extensionInfo is the fixed triple QueryExtension answers with: the major
// opcode clients must stamp on requests belonging to this extension, and
// the first event/error codes it reserves out of the shared 64-128/128-255
// ranges (§4.L). This engine advertises only the two extensions its wire
// codec actually parses; a real server's extension list tracks whatever
// is compiled in.
type extensionInfo struct {
	majorOpcode byte
	firstEvent  byte
	firstError  byte
}

// extensionRegistry backs QueryExtension/ListExtensions and routes XInput's
// single wrapped opcode to the minimal subset this engine answers (§4.L
// Non-goals: input devices beyond the core pointer/keyboard are not
// modeled, so every XInput minor opcode but GetExtensionVersion answers
// BadRequest).
type extensionRegistry struct {
	e         *Engine
	byName    map[string]extensionInfo
	nameOrder []string
}

func newExtensionRegistry(e *Engine) *extensionRegistry {
	r := &extensionRegistry{
		byName: map[string]extensionInfo{
			wire.BigRequestsExtensionName: {majorOpcode: byte(wire.BigRequestsOpcode)},
			wire.XInputExtensionName:      {majorOpcode: byte(wire.XInputOpcode), firstEvent: 64, firstError: 128},
		},
		nameOrder: []string{wire.BigRequestsExtensionName, wire.XInputExtensionName},
	}
	r.e = e
	return r
}

func (e *Engine) queryExtension(c *Client, req *wire.QueryExtensionRequest, seq uint16) ([]byte, wire.Error) {
	info, ok := e.extensions.byName[req.Name]
	reply := &wire.QueryExtensionReply{Sequence: seq, Present: ok}
	if ok {
		reply.MajorOpcode = info.majorOpcode
		reply.FirstEvent = info.firstEvent
		reply.FirstError = info.firstError
	}
	return reply.EncodeMessage(c.order), nil
}

func (e *Engine) listExtensions(c *Client, seq uint16) ([]byte, wire.Error) {
	reply := &wire.ListExtensionsReply{Sequence: seq, NNames: byte(len(e.extensions.nameOrder)), Names: e.extensions.nameOrder}
	return reply.EncodeMessage(c.order), nil
}

// dispatchXInput answers the one XInput minor opcode this engine models
// (GetExtensionVersion, so a client probing for the extension gets a
// consistent "absent" version rather than a protocol error) and otherwise
// reports BadRequest, since no input-device state backs the rest of the
// XInput surface.
func (r *extensionRegistry) dispatchXInput(c *Client, req *wire.XInputRequest, seq uint16) ([]byte, wire.Error) {
	if req.MinorOpcode == wire.XGetExtensionVersion {
		reply := &wire.GetExtensionVersionReply{Sequence: seq, MajorVersion: 0, MinorVersion: 0}
		return reply.EncodeMessage(c.order), nil
	}
	return nil, wireError(wire.RequestErrorCode, seq, 0, wire.XInputOpcode)
}
