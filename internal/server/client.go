package server

import (
	"encoding/binary"
	"fmt"
	"net"
	"sync"

	"github.com/PerikiyoXD/rxserver/internal/resource"
)

// Client is the per-connection state the dispatcher and event router act
// on: FSM state, byte order negotiated at handshake, the client's XID
// allocator, its outbound queue, and the bookkeeping (focus, rate limiter,
// idle tracker) §4.F/§4.M describe as per-client; grabs are held on the
// Engine. It is deliberately not an
// interface: the engine is the only thing that constructs or destroys one.
type Client struct {
	ID    ClientID
	conn  net.Conn
	order binary.ByteOrder

	allocator *resource.Allocator

	mu            sync.Mutex
	state         ConnState
	seq           uint16
	bigRequests   bool
	closeDownMode byte // Destroy (0) or RetainPermanent/RetainTemporary (1/2)

	// eventMasks records, per window this client has selected events on,
	// the mask it asked for (§4.K); the union across clients is cached on
	// the Window resource itself as EventMask.
	eventMasks map[uint32]uint32

	inputFocus  uint32
	focusRevert byte

	out   *outboundQueue
	limit *rateLimiter
	idle  *idleTracker

	screenRoots      []uint32
	defaultColormaps []uint32
}

func newClient(id ClientID, conn net.Conn, order binary.ByteOrder, alloc *resource.Allocator, limits Limits, outHigh, outLow int) *Client {
	return &Client{
		ID:          id,
		conn:        conn,
		order:       order,
		allocator:   alloc,
		state:       StatePreAuth,
		eventMasks:  make(map[uint32]uint32),
		out:         newOutboundQueue(outHigh, outLow),
		limit:       newRateLimiter(limits.MaxRequestRate, rateLimiterWindow),
		idle:        newIdleTracker(limits.IdleTimeout),
		inputFocus:  0, // PointerRoot is represented as XID 1 per §4.F; None is 0.
		focusRevert: 0,
	}
}

// nextSeq increments and returns the client's request sequence counter,
// used to stamp replies, errors and events per §4.D.
func (c *Client) nextSeq() uint16 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	return c.seq
}

// currentSeq returns the sequence number of the most recently processed
// request without advancing it. Nothing in the server calls it: handlers
// receive their request's sequence number as an argument and stamp events
// with that.
func (c *Client) currentSeq() uint16 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.seq
}

func (c *Client) State() ConnState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// setState drives the FSM forward, refusing illegal edges so a bug in the
// transport/dispatcher surfaces immediately instead of corrupting behavior
// downstream (§4.F).
func (c *Client) setState(to ConnState) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == to {
		return nil
	}
	if !CanTransition(c.state, to) {
		return fmt.Errorf("server: illegal connection state transition %s -> %s", c.state, to)
	}
	c.state = to
	return nil
}

func (c *Client) selectEvents(window uint32, mask uint32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if mask == 0 {
		delete(c.eventMasks, window)
		return
	}
	c.eventMasks[window] = mask
}

func (c *Client) eventMaskFor(window uint32) uint32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.eventMasks[window]
}

func (c *Client) forgetWindow(window uint32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.eventMasks, window)
}
