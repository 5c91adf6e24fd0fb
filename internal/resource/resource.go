// Package resource models every client-visible X11 object as the tagged sum
// described by the engine's design notes: a Resource carries exactly one of
// a Window, Pixmap, GraphicsContext, FontRes, CursorRes or ColormapRes,
// selected by Kind. Registry, in registry.go, is the only thing allowed to
// create or destroy them.
package resource

// ClientID is the server's private per-connection handle. It is never sent
// on the wire.
type ClientID uint32

// Kind tags which arm of a Resource is populated.
type Kind uint8

const (
	KindWindow Kind = iota
	KindPixmap
	KindGC
	KindFont
	KindCursor
	KindColormap

	// KindAtom never tags a stored Resource (atoms live in the atom
	// interner, not the registry); it exists only as a Lookup/error
	// vocabulary value alongside the others.
	KindAtom

	// KindDrawable and KindAny are pseudo-kinds understood only by
	// Registry.Lookup: KindDrawable accepts Window or Pixmap (BadDrawable
	// per §4.H), KindAny skips the kind check entirely.
	KindDrawable
	KindAny
)

func (k Kind) String() string {
	switch k {
	case KindWindow:
		return "window"
	case KindPixmap:
		return "pixmap"
	case KindGC:
		return "gcontext"
	case KindFont:
		return "font"
	case KindCursor:
		return "cursor"
	case KindColormap:
		return "colormap"
	case KindAtom:
		return "atom"
	case KindDrawable:
		return "drawable"
	case KindAny:
		return "any"
	default:
		return "unknown"
	}
}

// Property is one entry of a window's Atom-keyed property map.
type Property struct {
	Type   uint32
	Format uint8 // 8, 16 or 32
	Data   []byte
}

// Window holds every field CreateWindow/ChangeWindowAttributes/
// ConfigureWindow can touch, plus the stacking-ordered child list used by
// the window-tree cascade (§4.I) and the event router (§4.K).
type Window struct {
	XID    uint32
	Parent uint32 // None (0) only for a root window
	IsRoot bool

	Class  uint8 // InputOutput, InputOnly, CopyFromParent (resolved before storage)
	Depth  uint8
	Visual uint32

	X, Y, Width, Height, BorderWidth int32

	OverrideRedirect bool
	Mapped           bool

	BackgroundPixmap  uint32
	BackgroundPixel   uint32
	BackgroundPixelOK bool
	BorderPixmap      uint32
	BorderPixel       uint32
	BitGravity        uint32
	WinGravity        uint32
	BackingStore      uint32
	BackingPlanes     uint32
	BackingPixel      uint32
	SaveUnder         bool
	Colormap          uint32
	Cursor            uint32

	EventMask         uint32 // union of every client's selection (AllEventMasks)
	ClientEventMasks  map[ClientID]uint32
	DoNotPropagateMask uint32

	// SubstructureRedirect holder, if any (ConfigureWindow §4.J).
	RedirectOwner ClientID
	HasRedirect   bool

	Properties map[uint32]*Property // Atom -> Property
	Children   []uint32             // top-to-bottom stacking order
}

// Pixmap is an off-screen drawable created against a screen/drawable depth.
type Pixmap struct {
	XID      uint32
	Width    uint16
	Height   uint16
	Depth    uint8
	Drawable uint32 // the drawable (window) it was created relative to
	Pixels   []byte // raw pixel store; CreatePixmap does not allocate it, so it stays nil
}

// GraphicsContext mirrors every GC attribute listed in §3's data model.
type GraphicsContext struct {
	XID               uint32
	Drawable          uint32
	Function          uint8
	PlaneMask         uint32
	Foreground        uint32
	Background        uint32
	LineWidth         uint16
	LineStyle         uint8
	CapStyle          uint8
	JoinStyle         uint8
	FillStyle         uint8
	FillRule          uint8
	Tile              uint32
	Stipple           uint32
	TileStipXOrigin   int16
	TileStipYOrigin   int16
	Font              uint32
	SubwindowMode     uint8
	GraphicsExposures bool
	ClipXOrigin       int16
	ClipYOrigin       int16
	ClipMask          uint32
	DashOffset        uint16
	Dashes            []byte
	ArcMode           uint8
}

// GlyphMetrics is a single character's bounding box/advance, as delivered by
// QueryFont/QueryTextExtents.
type GlyphMetrics struct {
	LeftSideBearing  int16
	RightSideBearing int16
	CharWidth        int16
	Ascent           int16
	Descent          int16
	Attributes       uint16
}

// FontRes is a server-side handle onto glyph metrics; the glyph bitmaps
// themselves are produced by an external rasterizer (§1 non-goals).
type FontRes struct {
	XID              uint32
	Name             string
	Ascent, Descent  int16
	MinCharOrByte2   uint16
	MaxCharOrByte2   uint16
	MinByte1         uint8
	MaxByte1         uint8
	DefaultChar      uint16
	DrawDirection    uint8
	AllCharsExist    bool
	CharInfos        []GlyphMetrics
	Properties       map[uint32]uint32 // Atom -> value, FontProp list
}

// CursorRes is a hotspotted source/mask bitmap pair with two RGB colours;
// the bitmap bytes themselves live in the two referenced Pixmaps.
type CursorRes struct {
	XID                uint32
	Source             uint32
	Mask               uint32
	HotX, HotY         uint16
	ForeRed            uint16
	ForeGreen          uint16
	ForeBlue           uint16
	BackRed            uint16
	BackGreen          uint16
	BackBlue           uint16
}

// ColorAllocation records one pixel entry of a Colormap's allocation table.
type ColorAllocation struct {
	Client   ClientID
	RefCount int
	ReadOnly bool
}

// ColorEntry is one RGB triple of a Colormap's pixel->RGB map.
type ColorEntry struct {
	Red, Green, Blue uint16
}

// ColormapRes is a pixel allocation table bound to one Visual.
type ColormapRes struct {
	XID         uint32
	Visual      uint32
	VisualClass uint8
	Size        uint16
	Entries     map[uint32]ColorEntry
	Allocations map[uint32]*ColorAllocation
	Installed   bool
}

// Resource is the tagged sum every XID maps to in the Registry.
type Resource struct {
	XID   uint32
	Owner ClientID
	Kind  Kind

	Window   *Window
	Pixmap   *Pixmap
	GC       *GraphicsContext
	Font     *FontRes
	Cursor   *CursorRes
	Colormap *ColormapRes
}
