// Package server wires the wire codec, resource registry, atom interner and
// event router into the connection engine of §2/§5: one goroutine per
// client, a process-wide mutex-guarded mutable core, and a narrow
// EventSink boundary to whatever external compositor consumes window
// lifecycle/damage notifications.
package server

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"io"
	"net"
	"sync"
	"time"

	"github.com/PerikiyoXD/rxserver/internal/atom"
	"github.com/PerikiyoXD/rxserver/internal/resource"
	"github.com/PerikiyoXD/rxserver/internal/wire"
)

// serverClientID is the pseudo-client that owns root windows and default
// colormaps: resources that exist before any real client connects and
// outlive every one of them.
const serverClientID ClientID = 0

// resourceRangeBits is the width of each client's XID index space; ranges
// are assigned as consecutive multiples of 1<<resourceRangeBits, which
// keeps Allocator masks a contiguous run of low bits as §4.G requires.
const resourceRangeBits = 21 // 2M ids per client, mask 0x1FFFFF

// Engine is the top-level server core: registry, atom table, per-client
// grab/selection/focus state, and the listeners feeding it. Component O
// (extension registry) and component J (dispatcher) are methods on Engine
// so they share its lock discipline.
type Engine struct {
	cfg Config
	log Logger

	registry *resource.Registry
	atoms    *atom.Table

	mu           sync.RWMutex
	clients      map[ClientID]*Client
	nextClientID ClientID
	nextRange    uint32

	rootWindows      []uint32
	defaultColormaps []uint32

	serverGrabbed    bool
	serverGrabOwner  ClientID
	pointerGrab      *grabState
	keyboardGrab     *grabState
	selections       map[uint32]selectionOwner // atom -> owner
	keyGrabs         map[keyGrabKey]ClientID
	extensions       *extensionRegistry

	listeners []net.Listener
}

type selectionOwner struct {
	window uint32
	client ClientID
}

type grabState struct {
	client      ClientID
	window      uint32
	ownerEvents bool
	confineTo   uint32
	cursor      uint32
}

type keyGrabKey struct {
	window    uint32
	modifiers uint16
	key       uint8
}

// New builds an Engine from a validated Config; call Validate on cfg first
// (or let Serve call it).
func New(cfg Config) *Engine {
	e := &Engine{
		cfg:        cfg,
		log:        cfg.Logger,
		registry:   resource.NewRegistry(),
		atoms:      atom.New(),
		clients:    make(map[ClientID]*Client),
		selections: make(map[uint32]selectionOwner),
		keyGrabs:   make(map[keyGrabKey]ClientID),
		nextClientID: 1,
		nextRange:    2, // range 0 is reserved for serverClientID and range 1 is unused, so the first client's base is 0x400000
	}
	e.extensions = newExtensionRegistry(e)
	return e
}

// bootstrap creates one root window and one default colormap per configured
// screen, owned by serverClientID, matching the teacher's newDefaultSetup
// screen list but backed by real registry entries instead of a static reply.
func (e *Engine) bootstrap() error {
	for i, sc := range e.cfg.Screens {
		rootXID := uint32(0x100 + i)
		root := &resource.Window{
			XID:              rootXID,
			Parent:           0,
			IsRoot:           true,
			Class:            wire.InputOutput,
			Depth:            24,
			Visual:           sc.RootVisual,
			Width:            int32(sc.WidthPixels),
			Height:           int32(sc.HeightPixels),
			BackgroundPixel:  sc.WhitePixel,
			Mapped:           true,
			ClientEventMasks: make(map[ClientID]uint32),
			Properties:       make(map[uint32]*resource.Property),
		}
		if err := e.registry.Register(&resource.Resource{XID: rootXID, Owner: serverClientID, Kind: resource.KindWindow, Window: root}); err != nil {
			return err
		}
		e.rootWindows = append(e.rootWindows, rootXID)

		cmapXID := uint32(0x200 + i)
		cmap := &resource.ColormapRes{
			XID:         cmapXID,
			Visual:      sc.RootVisual,
			VisualClass: wire.PseudoColor,
			Size:        256,
			Entries:     make(map[uint32]resource.ColorEntry),
			Allocations: make(map[uint32]*resource.ColorAllocation),
			Installed:   true,
		}
		if err := e.registry.Register(&resource.Resource{XID: cmapXID, Owner: serverClientID, Kind: resource.KindColormap, Colormap: cmap}); err != nil {
			return err
		}
		e.defaultColormaps = append(e.defaultColormaps, cmapXID)
	}
	return nil
}

// Serve validates cfg, binds the configured listeners, and accepts
// connections until stop is closed; a listener whose Accept fails stops
// accepting, but Serve still waits for stop. It then closes the listeners
// and returns once every accept loop has exited. Connections already
// accepted keep running in their own goroutines.
func (e *Engine) Serve(stop <-chan struct{}) error {
	if err := e.cfg.Validate(); err != nil {
		return err
	}
	e.log = e.cfg.Logger
	if err := e.bootstrap(); err != nil {
		return err
	}
	listeners, err := e.listen()
	if err != nil {
		return err
	}
	e.listeners = listeners

	var wg sync.WaitGroup
	for _, l := range listeners {
		l := l
		wg.Add(1)
		go func() {
			defer wg.Done()
			e.acceptLoop(l, stop)
		}()
	}

	<-stop
	for _, l := range listeners {
		l.Close()
	}
	wg.Wait()
	return nil
}

func (e *Engine) acceptLoop(l net.Listener, stop <-chan struct{}) {
	for {
		conn, err := l.Accept()
		if err != nil {
			select {
			case <-stop:
				return
			default:
				e.log.Errorf("server: accept: %v", err)
				return
			}
		}
		go e.serveConn(conn)
	}
}

// assignRange hands out the next disjoint (base, mask) pair for a newly
// accepted client, per §4.G/§8 property 4.
func (e *Engine) assignRange() (base, mask uint32) {
	e.mu.Lock()
	defer e.mu.Unlock()
	idx := e.nextRange
	e.nextRange++
	mask = (1 << resourceRangeBits) - 1
	base = idx << resourceRangeBits
	return base, mask
}

func (e *Engine) registerClient(c *Client) {
	e.mu.Lock()
	e.clients[c.ID] = c
	e.mu.Unlock()
	e.cfg.EventSink.ClientConnected(c.ID)
}

func (e *Engine) unregisterClient(c *Client, reason string) {
	e.mu.Lock()
	delete(e.clients, c.ID)
	if e.pointerGrab != nil && e.pointerGrab.client == c.ID {
		e.pointerGrab = nil
	}
	if e.keyboardGrab != nil && e.keyboardGrab.client == c.ID {
		e.keyboardGrab = nil
	}
	if e.serverGrabbed && e.serverGrabOwner == c.ID {
		e.serverGrabbed = false
	}
	for a, own := range e.selections {
		if own.client == c.ID {
			delete(e.selections, a)
		}
	}
	e.mu.Unlock()
	e.cfg.EventSink.ClientDisconnected(c.ID, reason)
}

// serveConn runs the full lifecycle of one connection: handshake, then the
// request pump, then teardown. It is the one goroutine that owns this
// client's parse/dispatch pipeline (§5).
func (e *Engine) serveConn(conn net.Conn) {
	defer conn.Close()

	e.mu.Lock()
	id := e.nextClientID
	e.nextClientID++
	e.mu.Unlock()

	base, mask := e.assignRange()
	alloc, err := resource.NewAllocator(base, mask)
	if err != nil {
		e.log.Errorf("server: allocator for client %d: %v", id, err)
		return
	}

	bufSize := e.cfg.InboundBufferSize
	if bufSize <= 0 {
		bufSize = 256 << 10
	}
	br := bufio.NewReaderSize(conn, bufSize)
	order, nameLen, dataLen, ok := e.readConnectionHeader(br)
	if !ok {
		return
	}

	client := newClient(id, conn, order, alloc, e.cfg.Limits, e.cfg.OutboundHighWatermark, e.cfg.OutboundLowWatermark)
	client.screenRoots = e.rootWindows
	client.defaultColormaps = e.defaultColormaps

	go writerLoop(client, e.log)
	defer client.out.Close()

	if !e.authenticate(client, br, nameLen, dataLen) {
		return
	}

	setup := e.buildSetup(base, mask)
	client.out.Push(wire.EncodeSetupAccepted(order, 11, setup))
	client.setState(StateRunning)
	e.registerClient(client)
	defer e.teardownClient(client, "connection closed")

	e.pump(client, br)
}

// readConnectionHeader reads the fixed 12-byte connection-setup prefix
// (byte-order marker, protocol major/minor, auth name/data lengths) and
// returns the negotiated byte order plus the two auth section lengths the
// caller still needs to read (§4.F/§6).
func (e *Engine) readConnectionHeader(r *bufio.Reader) (order binary.ByteOrder, nameLen, dataLen uint16, ok bool) {
	var hdr [12]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		e.log.Errorf("server: connection header: %v", err)
		return nil, 0, 0, false
	}
	order = binary.LittleEndian
	if hdr[0] == 'B' {
		order = binary.BigEndian
	}
	nameLen = order.Uint16(hdr[6:8])
	dataLen = order.Uint16(hdr[8:10])
	return order, nameLen, dataLen, true
}

// authenticate reads the auth-protocol name and data announced by the
// connection header and compares them against e.cfg.Cookie per §6's
// MIT-MAGIC-COOKIE-1 scheme. An empty configured Cookie accepts any client
// (auth protocol ""), matching the teacher's always-trusted-local-client
// behavior; a non-empty Cookie requires both the protocol name and the
// cookie bytes to match exactly. It writes a Setup Refused reply and
// returns false on any mismatch.
func (e *Engine) authenticate(c *Client, r *bufio.Reader, nameLen, dataLen uint16) bool {
	c.setState(StateReadingAuth)
	name := make([]byte, int(nameLen)+wire.PadLen(int(nameLen)))
	if _, err := io.ReadFull(r, name); err != nil {
		e.log.Errorf("server: client %d auth name read: %v", c.ID, err)
		return false
	}
	data := make([]byte, int(dataLen)+wire.PadLen(int(dataLen)))
	if _, err := io.ReadFull(r, data); err != nil {
		e.log.Errorf("server: client %d auth data read: %v", c.ID, err)
		return false
	}
	c.setState(StateAuthenticating)

	if len(e.cfg.Cookie) == 0 {
		return true
	}
	if string(name[:nameLen]) != "MIT-MAGIC-COOKIE-1" || !bytes.Equal(data[:dataLen], e.cfg.Cookie) {
		c.out.Push(wire.EncodeSetupRefused(c.order, 11, "authentication failure"))
		return false
	}
	return true
}

// buildSetup assembles this client's Setup reply: shared screen/format
// data from cfg plus its own resource-id base/mask (§4.F/§4.G).
func (e *Engine) buildSetup(base, mask uint32) *wire.Setup {
	s := &wire.Setup{
		ReleaseNumber:            e.cfg.Release,
		ResourceIDBase:           base,
		ResourceIDMask:           mask,
		MotionBufferSize:         256,
		VendorLength:             uint16(len(e.cfg.Vendor)),
		MaxRequestLength:         0xFFFF,
		NumScreens:               uint8(len(e.cfg.Screens)),
		NumPixmapFormats:         1,
		BitmapFormatScanlineUnit: 32,
		BitmapFormatScanlinePad:  32,
		MinKeycode:               8,
		MaxKeycode:               255,
		VendorString:             e.cfg.Vendor,
		PixmapFormats: []wire.Format{
			{Depth: 24, BitsPerPixel: 32, ScanlinePad: 32},
		},
	}
	for i, sc := range e.cfg.Screens {
		s.Screens = append(s.Screens, wire.Screen{
			Root:                e.rootWindows[i],
			DefaultColormap:     e.defaultColormaps[i],
			WhitePixel:          sc.WhitePixel,
			BlackPixel:          sc.BlackPixel,
			WidthInPixels:       sc.WidthPixels,
			HeightInPixels:      sc.HeightPixels,
			WidthInMillimeters:  sc.WidthMillimeters,
			HeightInMillimeters: sc.HeightMillimeters,
			MinInstalledMaps:    1,
			MaxInstalledMaps:    1,
			RootVisual:          sc.RootVisual,
			BackingStores:       2,
			RootDepth:           24,
			NumDepths:           1,
			Depths: []wire.Depth{
				{
					Depth:      24,
					NumVisuals: 1,
					Visuals: []wire.VisualType{
						{VisualID: sc.RootVisual, Class: wire.PseudoColor, BitsPerRGBValue: 8, ColormapEntries: 256},
					},
				},
			},
		})
	}
	return s
}

// pump is the per-connection read/parse/dispatch loop: one request is
// fully parsed, dispatched and (if it produced a reply) queued before the
// next is read, per §5's "no two requests from the same client in flight"
// invariant. It returns when the connection is closed, drained, or killed.
func (e *Engine) pump(c *Client, br *bufio.Reader) {
	for {
		if c.State() == StateDraining {
			return
		}
		for !c.limit.Allow() {
			// Back-pressure per §4.M: stall reading rather than drop or
			// error the request once the sliding-window cap is hit.
			time.Sleep(time.Millisecond)
		}
		frame, err := readFrame(br, c.order, c.bigRequests)
		if err != nil {
			if err != io.EOF {
				e.log.Errorf("server: client %d read: %v", c.ID, err)
			}
			return
		}
		c.idle.Touch()
		seq := c.nextSeq()
		req, perr := wire.ParseRequest(c.order, frame, seq, c.bigRequests)
		if perr != nil {
			if wireErr, ok := perr.(wire.Error); ok {
				c.out.Push(wireErr.EncodeMessage(c.order))
				continue
			}
			e.log.Errorf("server: client %d malformed request: %v", c.ID, perr)
			continue
		}
		if req.OpCode() == wire.BigRequestsOpcode {
			c.bigRequests = true
		}
		reply, wireErr := e.dispatch(c, req, seq)
		if wireErr != nil {
			c.out.Push(wireErr.EncodeMessage(c.order))
			continue
		}
		if reply != nil {
			c.out.Push(reply)
		}
	}
}

// teardownClient runs the disconnect cascade of §4.I/§8 property 5: compute
// a dependency-safe destruction order over every resource this client
// still owns, free them in that order, release their XID indices, and
// notify the event sink.
func (e *Engine) teardownClient(c *Client, reason string) {
	c.setState(StateDraining)
	xids := e.registry.ClientResources(c.ID)
	order, err := e.registry.DestructionOrder(xids)
	if err != nil {
		// A non-DAG resource graph is a bug, not a recoverable condition:
		// freeing in an arbitrary order can tear down a referenced resource
		// before its dependent, so the cascade aborts here rather than
		// guessing. The client's own connection state is still closed out;
		// its resources are left registered rather than corrupted.
		e.log.Errorf("server: client %d teardown: destruction order: %v", c.ID, err)
		c.setState(StateClosed)
		e.unregisterClient(c, reason)
		return
	}
	for _, xid := range order {
		e.destroyResource(c, xid)
	}
	c.setState(StateClosed)
	e.unregisterClient(c, reason)
}
