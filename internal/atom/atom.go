// Package atom implements the global, append-only string<->id interner of
// §4.L: a single-writer table seeded with the 68 predefined X11 atoms,
// case-sensitive, and immortal once assigned (§3 invariant 6).
package atom

import "sync"

// predefined lists the core protocol's predefined atoms in order; index 0
// of this slice is atom id 1 (PRIMARY), reproducing the X11 spec's table
// verbatim per §4.L.
var predefined = []string{
	"PRIMARY", "SECONDARY", "ARC", "ATOM", "BITMAP", "CARDINAL", "COLORMAP",
	"CURSOR", "CUT_BUFFER0", "CUT_BUFFER1", "CUT_BUFFER2", "CUT_BUFFER3",
	"CUT_BUFFER4", "CUT_BUFFER5", "CUT_BUFFER6", "CUT_BUFFER7", "DRAWABLE",
	"FONT", "INTEGER", "PIXMAP", "POINT", "RECTANGLE", "RESOURCE_MANAGER",
	"RGB_COLOR_MAP", "RGB_BEST_MAP", "RGB_BLUE_MAP", "RGB_DEFAULT_MAP",
	"RGB_GRAY_MAP", "RGB_GREEN_MAP", "RGB_RED_MAP", "STRING", "VISUALID",
	"WINDOW", "WM_COMMAND", "WM_HINTS", "WM_CLIENT_MACHINE", "WM_ICON_NAME",
	"WM_ICON_SIZE", "WM_NAME", "WM_NORMAL_HINTS", "WM_SIZE_HINTS",
	"WM_ZOOM_HINTS", "MIN_SPACE", "NORM_SPACE", "MAX_SPACE", "END_SPACE",
	"SUPERSCRIPT_X", "SUPERSCRIPT_Y", "SUBSCRIPT_X", "SUBSCRIPT_Y",
	"UNDERLINE_POSITION", "UNDERLINE_THICKNESS", "STRIKEOUT_ASCENT",
	"STRIKEOUT_DESCENT", "ITALIC_ANGLE", "X_HEIGHT", "QUAD_WIDTH", "WEIGHT",
	"POINT_SIZE", "RESOLUTION", "COPYRIGHT", "NOTICE", "FONT_NAME",
	"FAMILY_NAME", "FULL_NAME", "CAP_HEIGHT", "WM_CLASS", "WM_TRANSIENT_FOR",
}

// None is the reserved atom id 0, meaning "no atom".
const None uint32 = 0

// Table is the process-wide interner. The zero value is not usable; use New.
type Table struct {
	mu      sync.RWMutex
	byName  map[string]uint32
	byID    map[uint32]string
	nextID  uint32
}

// New builds a Table seeded with the 68 predefined atoms.
func New() *Table {
	t := &Table{
		byName: make(map[string]uint32, len(predefined)+64),
		byID:   make(map[uint32]string, len(predefined)+64),
		nextID: uint32(len(predefined)) + 1,
	}
	for i, name := range predefined {
		id := uint32(i + 1)
		t.byName[name] = id
		t.byID[id] = name
	}
	return t
}

// Intern implements InternAtom (§4.J): it returns the existing atom for name
// if one is already bound. Otherwise, if onlyIfExists is false it mints and
// stores a fresh atom; if true it returns None without creating a binding.
// Names are compared byte-exact (§4.L): no case folding, no trimming.
func (t *Table) Intern(name string, onlyIfExists bool) uint32 {
	t.mu.RLock()
	if id, ok := t.byName[name]; ok {
		t.mu.RUnlock()
		return id
	}
	t.mu.RUnlock()

	if onlyIfExists {
		return None
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	// Re-check: another writer may have raced us between the RUnlock above
	// and taking the write lock.
	if id, ok := t.byName[name]; ok {
		return id
	}
	id := t.nextID
	t.nextID++
	t.byName[name] = id
	t.byID[id] = name
	return id
}

// Name returns the interned string for id, and whether id is bound at all.
func (t *Table) Name(id uint32) (string, bool) {
	if id == None {
		return "", false
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	name, ok := t.byID[id]
	return name, ok
}

// Lookup returns the atom id already bound to name, without minting one;
// equivalent to Intern(name, true) but doesn't read the onlyIfExists path.
func (t *Table) Lookup(name string) (uint32, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	id, ok := t.byName[name]
	return id, ok
}
