package server

import (
	"fmt"
	"time"

	"github.com/PerikiyoXD/rxserver/internal/resource"
)

// ClientID re-exports resource.ClientID so callers outside internal/resource
// don't need to import it directly.
type ClientID = resource.ClientID

// Config is the already-resolved configuration value the engine accepts,
// per §1's Non-goal on configuration sourcing: nothing in this package
// reads flags, environment, or files. cmd/rxserver builds one of these.
type Config struct {
	// Display is the X display number; the TCP listener binds port
	// 6000+Display (§6).
	Display int

	// UnixSocketDir, if non-empty, additionally listens on a local stream
	// socket at UnixSocketDir/X<Display> (§6).
	UnixSocketDir string

	// Screens describes each screen's geometry and pixel formats sent in
	// the setup reply (§4.F). At least one is required.
	Screens []ScreenConfig

	// Vendor and Release populate the setup reply's vendor string and
	// release number.
	Vendor  string
	Release uint32

	// Cookie is the MIT-MAGIC-COOKIE-1 value clients must present; a nil
	// Cookie means auth protocol "" (None) is accepted (§6).
	Cookie []byte

	// Limits are the per-client caps of §4.M. Zero fields fall back to
	// DefaultLimits.
	Limits Limits

	// InboundBufferSize is the size of each connection's buffered reader
	// (§4.E); 0 defaults to 256 KiB.
	InboundBufferSize int

	// OutboundHighWatermark/LowWatermark are the per-connection outbound
	// queue's marks (§4.E); 0 defaults to 4 MiB / 1 MiB. The request pump
	// does not pause reading when the queue crosses them.
	OutboundHighWatermark int
	OutboundLowWatermark  int

	Logger    Logger
	EventSink EventSink
}

// ScreenConfig configures one screen's geometry, reported in the setup
// reply's screen list (§4.F).
type ScreenConfig struct {
	WidthPixels, HeightPixels             uint16
	WidthMillimeters, HeightMillimeters   uint16
	RootVisual                            uint32
	BlackPixel, WhitePixel                uint32
}

// Limits holds the per-client caps of §4.M. A zero value in any field
// means "use the server default", not "unlimited". Only MaxRequestRate is
// enforced (by the request pump's rate limiter). IdleTimeout configures an
// idle tracker that nothing checks, and no handler checks the window,
// pixmap, GC, font, memory or grab caps.
type Limits struct {
	MaxWindows   int
	MaxPixmaps   int
	MaxGCs       int
	MaxFonts     int
	MaxMemory    int64
	MaxGrabs     int
	MaxRequestRate int // requests/sec over a 1s sliding window
	IdleTimeout  time.Duration
}

// DefaultLimits are the server defaults enumerated in §4.M.
var DefaultLimits = Limits{
	MaxWindows:     1000,
	MaxPixmaps:     4096,
	MaxGCs:         512,
	MaxFonts:       256,
	MaxMemory:      256 << 20,
	MaxGrabs:       1,
	MaxRequestRate: 10000,
	IdleTimeout:    time.Hour,
}

// withDefaults fills zero fields of l from DefaultLimits.
func (l Limits) withDefaults() Limits {
	d := DefaultLimits
	if l.MaxWindows == 0 {
		l.MaxWindows = d.MaxWindows
	}
	if l.MaxPixmaps == 0 {
		l.MaxPixmaps = d.MaxPixmaps
	}
	if l.MaxGCs == 0 {
		l.MaxGCs = d.MaxGCs
	}
	if l.MaxFonts == 0 {
		l.MaxFonts = d.MaxFonts
	}
	if l.MaxMemory == 0 {
		l.MaxMemory = d.MaxMemory
	}
	if l.MaxGrabs == 0 {
		l.MaxGrabs = d.MaxGrabs
	}
	if l.MaxRequestRate == 0 {
		l.MaxRequestRate = d.MaxRequestRate
	}
	if l.IdleTimeout == 0 {
		l.IdleTimeout = d.IdleTimeout
	}
	return l
}

// Validate checks the config is well-formed enough to serve, filling in
// ambient defaults (logger, event sink, buffer sizes) in place.
func (c *Config) Validate() error {
	if len(c.Screens) == 0 {
		return fmt.Errorf("server: config needs at least one screen")
	}
	if c.Vendor == "" {
		c.Vendor = "rxserver"
	}
	if c.InboundBufferSize == 0 {
		c.InboundBufferSize = 256 << 10
	}
	if c.OutboundHighWatermark == 0 {
		c.OutboundHighWatermark = 4 << 20
	}
	if c.OutboundLowWatermark == 0 {
		c.OutboundLowWatermark = 1 << 20
	}
	if c.OutboundLowWatermark >= c.OutboundHighWatermark {
		return fmt.Errorf("server: outbound low watermark must be below high watermark")
	}
	if c.Logger == nil {
		c.Logger = StdLogger{}
	}
	if c.EventSink == nil {
		c.EventSink = NullEventSink{}
	}
	c.Limits = c.Limits.withDefaults()
	return nil
}
