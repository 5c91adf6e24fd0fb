package server

import (
	"github.com/PerikiyoXD/rxserver/internal/resource"
	"github.com/PerikiyoXD/rxserver/internal/wire"
)

// dispatch is component J: one request in, at most one reply/error out. It
// holds no lock across the whole call; each handler takes the engine's
// write lock only for the registry/atom/grab mutation it actually needs.
func (e *Engine) dispatch(c *Client, req wire.Request, seq uint16) ([]byte, wire.Error) {
	switch v := req.(type) {
	case *wire.CreateWindowRequest:
		return nil, e.createWindow(c, v, seq)
	case *wire.ChangeWindowAttributesRequest:
		return nil, e.changeWindowAttributes(c, v, seq)
	case *wire.GetWindowAttributesRequest:
		return e.getWindowAttributes(c, v, seq)
	case *wire.DestroyWindowRequest:
		return nil, e.destroyWindowReq(c, v, seq)
	case *wire.DestroySubwindowsRequest:
		return nil, e.destroySubwindows(c, v, seq)
	case *wire.MapWindowRequest:
		return nil, e.mapWindow(c, v, seq)
	case *wire.UnmapWindowRequest:
		return nil, e.unmapWindow(c, v, seq)
	case *wire.ConfigureWindowRequest:
		return nil, e.configureWindow(c, v, seq)
	case *wire.CirculateWindowRequest:
		return nil, e.circulateWindow(c, v, seq)
	case *wire.GetGeometryRequest:
		return e.getGeometry(c, v, seq)
	case *wire.QueryTreeRequest:
		return e.queryTree(c, v, seq)
	case *wire.InternAtomRequest:
		return e.internAtom(c, v, seq)
	case *wire.GetAtomNameRequest:
		return e.getAtomName(c, v, seq)
	case *wire.ChangePropertyRequest:
		return nil, e.changeProperty(c, v, seq)
	case *wire.DeletePropertyRequest:
		return nil, e.deleteProperty(c, v, seq)
	case *wire.GetPropertyRequest:
		return e.getProperty(c, v, seq)
	case *wire.ListPropertiesRequest:
		return e.listProperties(c, v, seq)
	case *wire.CreatePixmapRequest:
		return nil, e.createPixmap(c, v, seq)
	case *wire.FreePixmapRequest:
		return nil, e.freePixmap(c, v, seq)
	case *wire.CreateGCRequest:
		return nil, e.createGC(c, v, seq)
	case *wire.ChangeGCRequest:
		return nil, e.changeGC(v, seq)
	case *wire.CopyGCRequest:
		return nil, e.copyGC(v, seq)
	case *wire.FreeGCRequest:
		return nil, e.freeGC(c, v, seq)
	case *wire.CreateColormapRequest:
		return nil, e.createColormap(c, v, seq)
	case *wire.FreeColormapRequest:
		return nil, e.freeColormap(c, v, seq)
	case *wire.InstallColormapRequest:
		return nil, e.installColormap(v, seq)
	case *wire.UninstallColormapRequest:
		return nil, e.uninstallColormap(v, seq)
	case *wire.ListInstalledColormapsRequest:
		return e.listInstalledColormaps(c, v, seq)
	case *wire.AllocColorRequest:
		return e.allocColor(c, v, seq)
	case *wire.FreeColorsRequest:
		return nil, e.freeColors(c, v, seq)
	case *wire.CreateCursorRequest:
		return nil, e.createCursor(c, v, seq)
	case *wire.FreeCursorRequest:
		return nil, e.freeCursor(c, v, seq)
	case *wire.OpenFontRequest:
		return nil, e.openFont(c, v, seq)
	case *wire.CloseFontRequest:
		return nil, e.closeFont(c, v, seq)
	case *wire.QueryExtensionRequest:
		return e.queryExtension(c, v, seq)
	case *wire.ListExtensionsRequest:
		return e.listExtensions(c, seq)
	case *wire.EnableBigRequestsRequest:
		reply := &wire.BigRequestsEnableReply{Sequence: seq, MaxRequestLength: 0xFFFFFFFF}
		return reply.EncodeMessage(c.order), nil
	case *wire.XInputRequest:
		return e.extensions.dispatchXInput(c, v, seq)
	case *wire.GetInputFocusRequest:
		return e.getInputFocus(c, seq)
	case *wire.SetInputFocusRequest:
		return nil, e.setInputFocus(c, v, seq)
	case *wire.GrabPointerRequest:
		return e.grabPointer(c, v, seq)
	case *wire.UngrabPointerRequest:
		return nil, e.ungrabPointer(c, seq)
	case *wire.GrabKeyboardRequest:
		return e.grabKeyboard(c, v, seq)
	case *wire.UngrabKeyboardRequest:
		return nil, e.ungrabKeyboard(c, seq)
	case *wire.GrabButtonRequest:
		return nil, e.grabButton(c, v, seq)
	case *wire.UngrabButtonRequest:
		return nil, e.ungrabButton(c, v, seq)
	case *wire.GrabKeyRequest:
		return nil, e.grabKey(c, v, seq)
	case *wire.UngrabKeyRequest:
		return nil, e.ungrabKey(v, seq)
	case *wire.ChangeActivePointerGrabRequest:
		return nil, e.changeActivePointerGrab(c, v, seq)
	case *wire.AllowEventsRequest:
		return nil, e.allowEvents(c, v, seq)
	case *wire.GrabServerRequest:
		return nil, e.grabServer(c, seq)
	case *wire.UngrabServerRequest:
		return nil, e.ungrabServer(c, seq)
	case *wire.KillClientRequest:
		return nil, e.killClient(c, v, seq)
	case *wire.SetCloseDownModeRequest:
		c.mu.Lock()
		c.closeDownMode = v.Mode
		c.mu.Unlock()
		return nil, nil
	case *wire.SendEventRequest:
		return nil, e.sendEvent(c, v, seq)
	case *wire.GetSelectionOwnerRequest:
		return e.getSelectionOwner(c, v, seq)
	case *wire.SetSelectionOwnerRequest:
		return nil, e.setSelectionOwner(c, v, seq)
	case *wire.ConvertSelectionRequest:
		return nil, e.convertSelection(c, v, seq)
	case *wire.BellRequest:
		return nil, nil
	case *wire.NoOperationRequest:
		return nil, nil
	default:
		// Every opcode the codec parses into a distinct struct but this
		// engine does not implement (drawing, font metrics, pointer/
		// keyboard mapping, hosts, screensaver — §1 non-goals) is accepted
		// and ignored: no argument is looked up, no state changes, and
		// nothing is sent back, not even for requests that define a reply.
		return e.passthrough(req, seq)
	}
}

func wireError(code byte, seq uint16, badValue uint32, major wire.ReqCode) wire.Error {
	return wire.NewError(code, seq, badValue, wire.Opcodes{Major: major})
}

// lookup resolves xid against kind and translates a miss into the matching
// wire error for major's opcode.
func (e *Engine) lookup(xid uint32, kind resource.Kind, seq uint16, major wire.ReqCode) (*resource.Resource, wire.Error) {
	res, err := e.registry.Lookup(xid, kind)
	if err == nil {
		return res, nil
	}
	code := wire.ImplementationErrorCode
	switch kind {
	case resource.KindWindow:
		code = wire.WindowErrorCode
	case resource.KindPixmap:
		code = wire.PixmapErrorCode
	case resource.KindGC:
		code = wire.GContextErrorCode
	case resource.KindFont:
		code = wire.FontErrorCode
	case resource.KindCursor:
		code = wire.CursorErrorCode
	case resource.KindColormap:
		code = wire.ColormapErrorCode
	case resource.KindDrawable:
		code = wire.DrawableErrorCode
	}
	return nil, wireError(code, seq, xid, major)
}

func (e *Engine) createWindow(c *Client, req *wire.CreateWindowRequest, seq uint16) wire.Error {
	wid := uint32(req.Drawable)
	if err := c.allocator.Claim(wid); err != nil {
		return wireError(wire.IDChoiceErrorCode, seq, wid, wire.CreateWindow)
	}
	parentRes, werr := e.lookup(uint32(req.Parent), resource.KindWindow, seq, wire.CreateWindow)
	if werr != nil {
		return werr
	}

	class := uint8(req.Class)
	if class == 0 { // CopyFromParent
		class = parentRes.Window.Class
	}
	depth := req.Depth
	if depth == 0 {
		depth = parentRes.Window.Depth
	}
	w := &resource.Window{
		XID:               wid,
		Parent:            uint32(req.Parent),
		Class:             class,
		Depth:             depth,
		Visual:            uint32(req.Visual),
		X:                 int32(req.X),
		Y:                 int32(req.Y),
		Width:             int32(req.Width),
		Height:            int32(req.Height),
		BorderWidth:       int32(req.BorderWidth),
		BackgroundPixel:   req.Values.BackgroundPixel,
		BackgroundPixmap:  uint32(req.Values.BackgroundPixmap),
		BorderPixmap:      uint32(req.Values.BorderPixmap),
		BorderPixel:       req.Values.BorderPixel,
		BitGravity:        req.Values.BitGravity,
		WinGravity:        req.Values.WinGravity,
		BackingStore:      req.Values.BackingStore,
		BackingPlanes:     req.Values.BackingPlanes,
		BackingPixel:      req.Values.BackingPixel,
		SaveUnder:         req.Values.SaveUnder,
		OverrideRedirect:  req.Values.OverrideRedirect,
		Colormap:          uint32(req.Values.Colormap),
		Cursor:            uint32(req.Values.Cursor),
		DoNotPropagateMask: req.Values.DontPropagateMask,
		ClientEventMasks:  make(map[ClientID]uint32),
		Properties:        make(map[uint32]*resource.Property),
	}
	if req.ValueMask&wire.CWEventMask != 0 && req.Values.EventMask != 0 {
		w.ClientEventMasks[c.ID] = req.Values.EventMask
		w.EventMask = req.Values.EventMask
	}

	if err := e.registry.Register(&resource.Resource{XID: wid, Owner: c.ID, Kind: resource.KindWindow, Window: w}); err != nil {
		c.allocator.Release(wid)
		return wireError(wire.AllocErrorCode, seq, wid, wire.CreateWindow)
	}
	e.registry.AddDependency(wid, uint32(req.Parent))
	parentRes.Window.Children = append(parentRes.Window.Children, wid)

	e.cfg.EventSink.WindowCreated(wid, uint32(req.Parent), Geometry{
		X: int32(req.X), Y: int32(req.Y), Width: uint32(req.Width), Height: uint32(req.Height), BorderWidth: uint32(req.BorderWidth),
	}, depth, uint32(req.Visual))

	e.notifyCreate(uint32(req.Parent), wid, req.X, req.Y, req.Width, req.Height, req.BorderWidth, w.OverrideRedirect, seq)
	return nil
}

func (e *Engine) changeWindowAttributes(c *Client, req *wire.ChangeWindowAttributesRequest, seq uint16) wire.Error {
	res, werr := e.lookup(uint32(req.Window), resource.KindWindow, seq, wire.ChangeWindowAttributes)
	if werr != nil {
		return werr
	}
	w := res.Window
	if req.ValueMask&wire.CWBackPixmap != 0 {
		w.BackgroundPixmap = uint32(req.Values.BackgroundPixmap)
	}
	if req.ValueMask&wire.CWBackPixel != 0 {
		w.BackgroundPixel = req.Values.BackgroundPixel
	}
	if req.ValueMask&wire.CWBorderPixmap != 0 {
		w.BorderPixmap = uint32(req.Values.BorderPixmap)
	}
	if req.ValueMask&wire.CWBorderPixel != 0 {
		w.BorderPixel = req.Values.BorderPixel
	}
	if req.ValueMask&wire.CWBitGravity != 0 {
		w.BitGravity = req.Values.BitGravity
	}
	if req.ValueMask&wire.CWWinGravity != 0 {
		w.WinGravity = req.Values.WinGravity
	}
	if req.ValueMask&wire.CWOverrideRedirect != 0 {
		w.OverrideRedirect = req.Values.OverrideRedirect
	}
	if req.ValueMask&wire.CWColormap != 0 {
		w.Colormap = uint32(req.Values.Colormap)
	}
	if req.ValueMask&wire.CWCursor != 0 {
		w.Cursor = uint32(req.Values.Cursor)
	}
	if req.ValueMask&wire.CWDontPropagate != 0 {
		w.DoNotPropagateMask = req.Values.DontPropagateMask
	}
	if req.ValueMask&wire.CWEventMask != 0 {
		if req.Values.EventMask == 0 {
			delete(w.ClientEventMasks, c.ID)
		} else {
			w.ClientEventMasks[c.ID] = req.Values.EventMask
		}
		var union uint32
		for _, m := range w.ClientEventMasks {
			union |= m
		}
		w.EventMask = union
	}
	return nil
}

func (e *Engine) getWindowAttributes(c *Client, req *wire.GetWindowAttributesRequest, seq uint16) ([]byte, wire.Error) {
	res, werr := e.lookup(uint32(req.Window), resource.KindWindow, seq, wire.GetWindowAttributes)
	if werr != nil {
		return nil, werr
	}
	w := res.Window
	mapState := wire.IsUnmapped
	if w.Mapped {
		mapState = 2 // IsViewable, approximated: this engine does not track ancestor map chains separately.
	}
	reply := &wire.GetWindowAttributesReply{
		Sequence:         seq,
		BackingStore:     byte(w.BackingStore),
		VisualID:         w.Visual,
		Class:            uint16(w.Class),
		BitGravity:       byte(w.BitGravity),
		WinGravity:       byte(w.WinGravity),
		BackingPlanes:    w.BackingPlanes,
		BackingPixel:     w.BackingPixel,
		SaveUnder:        wire.BoolToByte(w.SaveUnder),
		MapIsInstalled:   wire.BoolToByte(w.Mapped),
		MapState:         byte(mapState),
		OverrideRedirect: wire.BoolToByte(w.OverrideRedirect),
		Colormap:         w.Colormap,
	}
	return reply.EncodeMessage(c.order), nil
}

// destroyResource frees one resource of xid's kind, updates the registry and
// allocator, and notifies the event sink/event router. It is used both by
// the DestroyWindow family and by per-client teardown (§4.I).
func (e *Engine) destroyResource(owner *Client, xid uint32) {
	res, err := e.registry.Lookup(xid, resource.KindAny)
	if err != nil {
		return
	}
	kind := res.Kind
	switch kind {
	case resource.KindWindow:
		w := res.Window
		if w.Parent != 0 {
			if pres, perr := e.registry.Lookup(w.Parent, resource.KindWindow); perr == nil {
				pres.Window.Children = removeXID(pres.Window.Children, xid)
			}
			e.registry.RemoveDependency(xid, w.Parent)
		}
		if w.Mapped {
			e.notifyUnmap(w.Parent, xid, false)
		}
		e.notifyDestroy(w.Parent, xid)
		e.cfg.EventSink.WindowDestroyed(xid)
	case resource.KindGC:
		g := res.GC
		if g.Tile != 0 {
			e.registry.RemoveDependency(xid, g.Tile)
		}
		if g.Stipple != 0 {
			e.registry.RemoveDependency(xid, g.Stipple)
		}
		if g.ClipMask != 0 {
			e.registry.RemoveDependency(xid, g.ClipMask)
		}
	case resource.KindCursor:
		cur := res.Cursor
		e.registry.RemoveDependency(xid, cur.Source)
		if cur.Mask != 0 {
			e.registry.RemoveDependency(xid, cur.Mask)
		}
	}
	if err := e.registry.Unregister(xid); err != nil {
		e.log.Errorf("server: unregister %#x: %v", xid, err)
		return
	}
	if owner != nil && owner.allocator.Owns(xid) {
		owner.allocator.Release(xid)
	} else if res.Owner != serverClientID {
		e.mu.RLock()
		cl := e.clients[res.Owner]
		e.mu.RUnlock()
		if cl != nil {
			cl.allocator.Release(xid)
		}
	}
}

func removeXID(list []uint32, xid uint32) []uint32 {
	out := list[:0]
	for _, x := range list {
		if x != xid {
			out = append(out, x)
		}
	}
	return out
}

// subtree collects xid and every descendant window, depth-first, so
// DestroyWindow and DestroySubwindows can hand the registry a complete set
// rather than just the immediate children.
func (e *Engine) subtree(xid uint32) []uint32 {
	res, err := e.registry.Lookup(xid, resource.KindWindow)
	if err != nil {
		return nil
	}
	out := []uint32{xid}
	for _, child := range res.Window.Children {
		out = append(out, e.subtree(child)...)
	}
	return out
}

func (e *Engine) destroyWindowReq(c *Client, req *wire.DestroyWindowRequest, seq uint16) wire.Error {
	if _, werr := e.lookup(uint32(req.Window), resource.KindWindow, seq, wire.DestroyWindow); werr != nil {
		return werr
	}
	all := e.subtree(uint32(req.Window))
	xids, err := e.registry.DestructionOrder(all)
	if err != nil {
		return wireError(wire.ImplementationErrorCode, seq, uint32(req.Window), wire.DestroyWindow)
	}
	for _, xid := range xids {
		e.ownerDestroy(xid)
	}
	return nil
}

func (e *Engine) destroySubwindows(c *Client, req *wire.DestroySubwindowsRequest, seq uint16) wire.Error {
	res, werr := e.lookup(uint32(req.Window), resource.KindWindow, seq, wire.DestroySubwindows)
	if werr != nil {
		return werr
	}
	var all []uint32
	for _, child := range res.Window.Children {
		all = append(all, e.subtree(child)...)
	}
	xids, err := e.registry.DestructionOrder(all)
	if err != nil {
		return wireError(wire.ImplementationErrorCode, seq, uint32(req.Window), wire.DestroySubwindows)
	}
	for _, xid := range xids {
		e.ownerDestroy(xid)
	}
	return nil
}

// ownerDestroy looks up xid's owning client (if still connected) and routes
// through destroyResource with that client's allocator, falling back to a
// nil owner (server-owned or already-disconnected client) otherwise.
func (e *Engine) ownerDestroy(xid uint32) {
	res, err := e.registry.Lookup(xid, resource.KindAny)
	if err != nil {
		return
	}
	e.mu.RLock()
	owner := e.clients[res.Owner]
	e.mu.RUnlock()
	e.destroyResource(owner, xid)
}

func (e *Engine) mapWindow(c *Client, req *wire.MapWindowRequest, seq uint16) wire.Error {
	res, werr := e.lookup(uint32(req.Window), resource.KindWindow, seq, wire.MapWindow)
	if werr != nil {
		return werr
	}
	if res.Window.Mapped {
		return nil
	}
	res.Window.Mapped = true
	e.cfg.EventSink.WindowMapped(uint32(req.Window))
	e.notifyMap(res.Window.Parent, uint32(req.Window), res.Window.OverrideRedirect, seq)
	return nil
}

func (e *Engine) unmapWindow(c *Client, req *wire.UnmapWindowRequest, seq uint16) wire.Error {
	res, werr := e.lookup(uint32(req.Window), resource.KindWindow, seq, wire.UnmapWindow)
	if werr != nil {
		return werr
	}
	if !res.Window.Mapped {
		return nil
	}
	res.Window.Mapped = false
	e.cfg.EventSink.WindowUnmapped(uint32(req.Window))
	e.notifyUnmap(res.Window.Parent, uint32(req.Window), false)
	return nil
}

func (e *Engine) configureWindow(c *Client, req *wire.ConfigureWindowRequest, seq uint16) wire.Error {
	res, werr := e.lookup(uint32(req.Window), resource.KindWindow, seq, wire.ConfigureWindow)
	if werr != nil {
		return werr
	}
	w := res.Window
	// Bit layout is the real ConfigureWindow value-mask (X=0x01 ... StackMode
	// 0x40), not the package's CW* constants: those are numbered for
	// CreateWindow/ChangeWindowAttributes and collide with this request's
	// own bits once widened past bit 15.
	const (
		cwX           = 1 << 0
		cwY           = 1 << 1
		cwWidth       = 1 << 2
		cwHeight      = 1 << 3
		cwBorderWidth = 1 << 4
		cwSibling     = 1 << 5
		cwStackMode   = 1 << 6
	)
	i := 0
	next := func() uint32 { v := req.Values[i]; i++; return v }
	if req.ValueMask&cwX != 0 {
		w.X = int32(int16(next()))
	}
	if req.ValueMask&cwY != 0 {
		w.Y = int32(int16(next()))
	}
	if req.ValueMask&cwWidth != 0 {
		w.Width = int32(next())
	}
	if req.ValueMask&cwHeight != 0 {
		w.Height = int32(next())
	}
	if req.ValueMask&cwBorderWidth != 0 {
		w.BorderWidth = int32(next())
	}
	if req.ValueMask&cwSibling != 0 {
		next() // sibling window id; stacking order not modeled beyond Children append order
	}
	if req.ValueMask&cwStackMode != 0 {
		next()
	}
	e.cfg.EventSink.WindowConfigured(uint32(req.Window), Geometry{
		X: w.X, Y: w.Y, Width: uint32(w.Width), Height: uint32(w.Height), BorderWidth: uint32(w.BorderWidth),
	}, 0)
	e.notifyConfigure(w.Parent, uint32(req.Window), w, seq)
	return nil
}

func (e *Engine) circulateWindow(c *Client, req *wire.CirculateWindowRequest, seq uint16) wire.Error {
	res, werr := e.lookup(uint32(req.Window), resource.KindWindow, seq, wire.CirculateWindow)
	if werr != nil {
		return werr
	}
	_ = res
	return nil
}

func (e *Engine) getGeometry(c *Client, req *wire.GetGeometryRequest, seq uint16) ([]byte, wire.Error) {
	res, werr := e.lookup(uint32(req.Drawable), resource.KindDrawable, seq, wire.GetGeometry)
	if werr != nil {
		// An id that names no resource at all is reported as BadWindow;
		// one that names a resource of another kind stays BadDrawable.
		if _, err := e.registry.Lookup(uint32(req.Drawable), resource.KindAny); err != nil {
			return nil, wireError(wire.WindowErrorCode, seq, uint32(req.Drawable), wire.GetGeometry)
		}
		return nil, werr
	}
	var reply *wire.GetGeometryReply
	switch res.Kind {
	case resource.KindWindow:
		w := res.Window
		reply = &wire.GetGeometryReply{Sequence: seq, Depth: w.Depth, Root: rootOf(w), X: int16(w.X), Y: int16(w.Y), Width: uint16(w.Width), Height: uint16(w.Height), BorderWidth: uint16(w.BorderWidth)}
	case resource.KindPixmap:
		p := res.Pixmap
		reply = &wire.GetGeometryReply{Sequence: seq, Depth: p.Depth, Width: p.Width, Height: p.Height}
	}
	return reply.EncodeMessage(c.order), nil
}

func rootOf(w *resource.Window) uint32 {
	if w.IsRoot {
		return w.XID
	}
	return w.Parent
}

func (e *Engine) queryTree(c *Client, req *wire.QueryTreeRequest, seq uint16) ([]byte, wire.Error) {
	res, werr := e.lookup(uint32(req.Window), resource.KindWindow, seq, wire.QueryTree)
	if werr != nil {
		return nil, werr
	}
	w := res.Window
	reply := &wire.QueryTreeReply{
		Sequence:    seq,
		Root:        rootOf(w),
		Parent:      w.Parent,
		NumChildren: uint16(len(w.Children)),
		Children:    append([]uint32(nil), w.Children...),
	}
	return reply.EncodeMessage(c.order), nil
}

func (e *Engine) internAtom(c *Client, req *wire.InternAtomRequest, seq uint16) ([]byte, wire.Error) {
	id := e.atoms.Intern(req.Name, req.OnlyIfExists)
	reply := &wire.InternAtomReply{Sequence: seq, Atom: id}
	return reply.EncodeMessage(c.order), nil
}

func (e *Engine) getAtomName(c *Client, req *wire.GetAtomNameRequest, seq uint16) ([]byte, wire.Error) {
	name, ok := e.atoms.Name(uint32(req.Atom))
	if !ok {
		return nil, wireError(wire.AtomErrorCode, seq, uint32(req.Atom), wire.GetAtomName)
	}
	reply := &wire.GetAtomNameReply{Sequence: seq, NameLength: uint16(len(name)), Name: name}
	return reply.EncodeMessage(c.order), nil
}

func (e *Engine) changeProperty(c *Client, req *wire.ChangePropertyRequest, seq uint16) wire.Error {
	res, werr := e.lookup(uint32(req.Window), resource.KindWindow, seq, wire.ChangeProperty)
	if werr != nil {
		return werr
	}
	propertyID := uint32(req.Property)

	// A zero-length Replace deletes the property outright rather than
	// storing an empty value.
	if req.Mode == wire.PropModeReplace && len(req.Data) == 0 {
		delete(res.Window.Properties, propertyID)
		e.notifyProperty(uint32(req.Window), propertyID, 1, seq)
		return nil
	}

	switch req.Mode {
	case wire.PropModePrepend, wire.PropModeAppend:
		existing, ok := res.Window.Properties[propertyID]
		if !ok || existing.Type != uint32(req.Type) || existing.Format != req.Format {
			existing = &resource.Property{Type: uint32(req.Type), Format: req.Format}
		}
		data := make([]byte, 0, len(existing.Data)+len(req.Data))
		if req.Mode == wire.PropModePrepend {
			data = append(data, req.Data...)
			data = append(data, existing.Data...)
		} else {
			data = append(data, existing.Data...)
			data = append(data, req.Data...)
		}
		res.Window.Properties[propertyID] = &resource.Property{
			Type:   uint32(req.Type),
			Format: req.Format,
			Data:   data,
		}
	default: // Replace (and any unrecognized mode treated as Replace)
		res.Window.Properties[propertyID] = &resource.Property{
			Type:   uint32(req.Type),
			Format: req.Format,
			Data:   append([]byte(nil), req.Data...),
		}
	}
	e.notifyProperty(uint32(req.Window), propertyID, 0, seq)
	return nil
}

func (e *Engine) deleteProperty(c *Client, req *wire.DeletePropertyRequest, seq uint16) wire.Error {
	res, werr := e.lookup(uint32(req.Window), resource.KindWindow, seq, wire.DeleteProperty)
	if werr != nil {
		return werr
	}
	delete(res.Window.Properties, uint32(req.Property))
	e.notifyProperty(uint32(req.Window), uint32(req.Property), 1, seq)
	return nil
}

func (e *Engine) getProperty(c *Client, req *wire.GetPropertyRequest, seq uint16) ([]byte, wire.Error) {
	res, werr := e.lookup(uint32(req.Window), resource.KindWindow, seq, wire.GetProperty)
	if werr != nil {
		return nil, werr
	}
	prop, ok := res.Window.Properties[uint32(req.Property)]
	if !ok {
		reply := &wire.GetPropertyReply{Sequence: seq}
		return reply.EncodeMessage(c.order), nil
	}
	if req.Delete {
		delete(res.Window.Properties, uint32(req.Property))
	}
	reply := &wire.GetPropertyReply{
		Sequence:              seq,
		Format:                prop.Format,
		PropertyType:          prop.Type,
		ValueLenInFormatUnits: uint32(len(prop.Data)),
		Value:                 prop.Data,
	}
	return reply.EncodeMessage(c.order), nil
}

func (e *Engine) listProperties(c *Client, req *wire.ListPropertiesRequest, seq uint16) ([]byte, wire.Error) {
	res, werr := e.lookup(uint32(req.Window), resource.KindWindow, seq, wire.ListProperties)
	if werr != nil {
		return nil, werr
	}
	atoms := make([]uint32, 0, len(res.Window.Properties))
	for a := range res.Window.Properties {
		atoms = append(atoms, a)
	}
	reply := &wire.ListPropertiesReply{Sequence: seq, NumProperties: uint16(len(atoms)), Atoms: atoms}
	return reply.EncodeMessage(c.order), nil
}

func (e *Engine) createPixmap(c *Client, req *wire.CreatePixmapRequest, seq uint16) wire.Error {
	pid := uint32(req.Pid)
	if err := c.allocator.Claim(pid); err != nil {
		return wireError(wire.IDChoiceErrorCode, seq, pid, wire.CreatePixmap)
	}
	drawRes, werr := e.lookup(uint32(req.Drawable), resource.KindDrawable, seq, wire.CreatePixmap)
	if werr != nil {
		c.allocator.Release(pid)
		return werr
	}
	p := &resource.Pixmap{XID: pid, Width: req.Width, Height: req.Height, Depth: req.Depth, Drawable: uint32(req.Drawable)}
	if err := e.registry.Register(&resource.Resource{XID: pid, Owner: c.ID, Kind: resource.KindPixmap, Pixmap: p}); err != nil {
		c.allocator.Release(pid)
		return wireError(wire.AllocErrorCode, seq, pid, wire.CreatePixmap)
	}
	_ = drawRes
	return nil
}

func (e *Engine) freePixmap(c *Client, req *wire.FreePixmapRequest, seq uint16) wire.Error {
	if _, werr := e.lookup(uint32(req.Pid), resource.KindPixmap, seq, wire.FreePixmap); werr != nil {
		return werr
	}
	e.destroyResource(c, uint32(req.Pid))
	return nil
}

func applyGCValues(g *resource.GraphicsContext, mask uint32, v wire.GC) {
	if mask&wire.GCFunction != 0 {
		g.Function = uint8(v.Function)
	}
	if mask&wire.GCPlaneMask != 0 {
		g.PlaneMask = v.PlaneMask
	}
	if mask&wire.GCForeground != 0 {
		g.Foreground = v.Foreground
	}
	if mask&wire.GCBackground != 0 {
		g.Background = v.Background
	}
	if mask&wire.GCLineWidth != 0 {
		g.LineWidth = uint16(v.LineWidth)
	}
	if mask&wire.GCLineStyle != 0 {
		g.LineStyle = uint8(v.LineStyle)
	}
	if mask&wire.GCCapStyle != 0 {
		g.CapStyle = uint8(v.CapStyle)
	}
	if mask&wire.GCJoinStyle != 0 {
		g.JoinStyle = uint8(v.JoinStyle)
	}
	if mask&wire.GCFillStyle != 0 {
		g.FillStyle = uint8(v.FillStyle)
	}
	if mask&wire.GCFillRule != 0 {
		g.FillRule = uint8(v.FillRule)
	}
	if mask&wire.GCTile != 0 {
		g.Tile = v.Tile
	}
	if mask&wire.GCStipple != 0 {
		g.Stipple = v.Stipple
	}
	if mask&wire.GCTileStipXOrigin != 0 {
		g.TileStipXOrigin = int16(v.TileStipXOrigin)
	}
	if mask&wire.GCTileStipYOrigin != 0 {
		g.TileStipYOrigin = int16(v.TileStipYOrigin)
	}
	if mask&wire.GCFont != 0 {
		g.Font = v.Font
	}
	if mask&wire.GCSubwindowMode != 0 {
		g.SubwindowMode = uint8(v.SubwindowMode)
	}
	if mask&wire.GCGraphicsExposures != 0 {
		g.GraphicsExposures = v.GraphicsExposures != 0
	}
	if mask&wire.GCClipXOrigin != 0 {
		g.ClipXOrigin = int16(v.ClipXOrigin)
	}
	if mask&wire.GCClipYOrigin != 0 {
		g.ClipYOrigin = int16(v.ClipYOrigin)
	}
	if mask&wire.GCClipMask != 0 {
		g.ClipMask = v.ClipMask
	}
	if mask&wire.GCDashOffset != 0 {
		g.DashOffset = uint16(v.DashOffset)
	}
	if mask&wire.GCArcMode != 0 {
		g.ArcMode = uint8(v.ArcMode)
	}
}

func (e *Engine) createGC(c *Client, req *wire.CreateGCRequest, seq uint16) wire.Error {
	cid := uint32(req.Cid)
	if err := c.allocator.Claim(cid); err != nil {
		return wireError(wire.IDChoiceErrorCode, seq, cid, wire.CreateGC)
	}
	if _, werr := e.lookup(uint32(req.Drawable), resource.KindDrawable, seq, wire.CreateGC); werr != nil {
		c.allocator.Release(cid)
		return werr
	}
	g := &resource.GraphicsContext{XID: cid, Drawable: uint32(req.Drawable), Function: wire.FunctionCopy, LineWidth: 0}
	applyGCValues(g, req.ValueMask, req.Values)
	if err := e.registry.Register(&resource.Resource{XID: cid, Owner: c.ID, Kind: resource.KindGC, GC: g}); err != nil {
		c.allocator.Release(cid)
		return wireError(wire.AllocErrorCode, seq, cid, wire.CreateGC)
	}
	if g.Tile != 0 {
		e.registry.AddDependency(cid, g.Tile)
	}
	if g.Stipple != 0 {
		e.registry.AddDependency(cid, g.Stipple)
	}
	if g.ClipMask != 0 {
		e.registry.AddDependency(cid, g.ClipMask)
	}
	return nil
}

func (e *Engine) changeGC(req *wire.ChangeGCRequest, seq uint16) wire.Error {
	res, werr := e.lookup(uint32(req.Gc), resource.KindGC, seq, wire.ChangeGC)
	if werr != nil {
		return werr
	}
	g := res.GC
	if g.Tile != 0 {
		e.registry.RemoveDependency(uint32(req.Gc), g.Tile)
	}
	if g.Stipple != 0 {
		e.registry.RemoveDependency(uint32(req.Gc), g.Stipple)
	}
	applyGCValues(g, req.ValueMask, req.Values)
	if g.Tile != 0 {
		e.registry.AddDependency(uint32(req.Gc), g.Tile)
	}
	if g.Stipple != 0 {
		e.registry.AddDependency(uint32(req.Gc), g.Stipple)
	}
	return nil
}

func (e *Engine) copyGC(req *wire.CopyGCRequest, seq uint16) wire.Error {
	src, werr := e.lookup(uint32(req.SrcGC), resource.KindGC, seq, wire.CopyGC)
	if werr != nil {
		return werr
	}
	dst, werr := e.lookup(uint32(req.DstGC), resource.KindGC, seq, wire.CopyGC)
	if werr != nil {
		return werr
	}
	srcV := *src.GC
	srcV.XID = dst.GC.XID
	srcV.Drawable = dst.GC.Drawable
	*dst.GC = srcV
	return nil
}

func (e *Engine) freeGC(c *Client, req *wire.FreeGCRequest, seq uint16) wire.Error {
	if _, werr := e.lookup(uint32(req.GC), resource.KindGC, seq, wire.FreeGC); werr != nil {
		return werr
	}
	e.destroyResource(c, uint32(req.GC))
	return nil
}

func (e *Engine) createColormap(c *Client, req *wire.CreateColormapRequest, seq uint16) wire.Error {
	mid := uint32(req.Mid)
	if err := c.allocator.Claim(mid); err != nil {
		return wireError(wire.IDChoiceErrorCode, seq, mid, wire.CreateColormap)
	}
	if _, werr := e.lookup(uint32(req.Window), resource.KindWindow, seq, wire.CreateColormap); werr != nil {
		c.allocator.Release(mid)
		return werr
	}
	cmap := &resource.ColormapRes{
		XID: mid, Visual: uint32(req.Visual), Size: 256,
		Entries: make(map[uint32]resource.ColorEntry), Allocations: make(map[uint32]*resource.ColorAllocation),
	}
	if err := e.registry.Register(&resource.Resource{XID: mid, Owner: c.ID, Kind: resource.KindColormap, Colormap: cmap}); err != nil {
		c.allocator.Release(mid)
		return wireError(wire.AllocErrorCode, seq, mid, wire.CreateColormap)
	}
	return nil
}

func (e *Engine) freeColormap(c *Client, req *wire.FreeColormapRequest, seq uint16) wire.Error {
	if _, werr := e.lookup(uint32(req.Cmap), resource.KindColormap, seq, wire.FreeColormap); werr != nil {
		return werr
	}
	e.destroyResource(c, uint32(req.Cmap))
	return nil
}

func (e *Engine) installColormap(req *wire.InstallColormapRequest, seq uint16) wire.Error {
	res, werr := e.lookup(uint32(req.Cmap), resource.KindColormap, seq, wire.InstallColormap)
	if werr != nil {
		return werr
	}
	res.Colormap.Installed = true
	return nil
}

func (e *Engine) uninstallColormap(req *wire.UninstallColormapRequest, seq uint16) wire.Error {
	res, werr := e.lookup(uint32(req.Cmap), resource.KindColormap, seq, wire.UninstallColormap)
	if werr != nil {
		return werr
	}
	res.Colormap.Installed = false
	return nil
}

func (e *Engine) listInstalledColormaps(c *Client, req *wire.ListInstalledColormapsRequest, seq uint16) ([]byte, wire.Error) {
	if _, werr := e.lookup(uint32(req.Window), resource.KindWindow, seq, wire.ListInstalledColormaps); werr != nil {
		return nil, werr
	}
	var ids []uint32
	for _, xid := range e.defaultColormaps {
		ids = append(ids, xid)
	}
	reply := &wire.ListInstalledColormapsReply{Sequence: seq, NumColormaps: uint16(len(ids)), Colormaps: ids}
	return reply.EncodeMessage(c.order), nil
}

func (e *Engine) allocColor(c *Client, req *wire.AllocColorRequest, seq uint16) ([]byte, wire.Error) {
	res, werr := e.lookup(uint32(req.Cmap), resource.KindColormap, seq, wire.AllocColor)
	if werr != nil {
		return nil, werr
	}
	cmap := res.Colormap
	pixel := uint32(len(cmap.Entries)) + 1
	if pixel >= uint32(cmap.Size) {
		return nil, wireError(wire.AllocErrorCode, seq, 0, wire.AllocColor)
	}
	cmap.Entries[pixel] = resource.ColorEntry{Red: req.Red, Green: req.Green, Blue: req.Blue}
	cmap.Allocations[pixel] = &resource.ColorAllocation{Client: c.ID, RefCount: 1}
	reply := &wire.AllocColorReply{Sequence: seq, Red: req.Red, Green: req.Green, Blue: req.Blue, Pixel: pixel}
	return reply.EncodeMessage(c.order), nil
}

func (e *Engine) freeColors(c *Client, req *wire.FreeColorsRequest, seq uint16) wire.Error {
	res, werr := e.lookup(uint32(req.Cmap), resource.KindColormap, seq, wire.FreeColors)
	if werr != nil {
		return werr
	}
	for _, p := range req.Pixels {
		if alloc, ok := res.Colormap.Allocations[p]; ok {
			alloc.RefCount--
			if alloc.RefCount <= 0 {
				delete(res.Colormap.Allocations, p)
				delete(res.Colormap.Entries, p)
			}
		}
	}
	return nil
}

func (e *Engine) createCursor(c *Client, req *wire.CreateCursorRequest, seq uint16) wire.Error {
	cid := uint32(req.Cid)
	if err := c.allocator.Claim(cid); err != nil {
		return wireError(wire.IDChoiceErrorCode, seq, cid, wire.CreateCursor)
	}
	if _, werr := e.lookup(uint32(req.Source), resource.KindPixmap, seq, wire.CreateCursor); werr != nil {
		c.allocator.Release(cid)
		return werr
	}
	cur := &resource.CursorRes{
		XID: cid, Source: uint32(req.Source), Mask: uint32(req.Mask),
		HotX: req.X, HotY: req.Y,
		ForeRed: req.ForeRed, ForeGreen: req.ForeGreen, ForeBlue: req.ForeBlue,
		BackRed: req.BackRed, BackGreen: req.BackGreen, BackBlue: req.BackBlue,
	}
	if err := e.registry.Register(&resource.Resource{XID: cid, Owner: c.ID, Kind: resource.KindCursor, Cursor: cur}); err != nil {
		c.allocator.Release(cid)
		return wireError(wire.AllocErrorCode, seq, cid, wire.CreateCursor)
	}
	e.registry.AddDependency(cid, uint32(req.Source))
	if req.Mask != 0 {
		e.registry.AddDependency(cid, uint32(req.Mask))
	}
	return nil
}

func (e *Engine) freeCursor(c *Client, req *wire.FreeCursorRequest, seq uint16) wire.Error {
	if _, werr := e.lookup(uint32(req.Cursor), resource.KindCursor, seq, wire.FreeCursor); werr != nil {
		return werr
	}
	e.destroyResource(c, uint32(req.Cursor))
	return nil
}

func (e *Engine) openFont(c *Client, req *wire.OpenFontRequest, seq uint16) wire.Error {
	fid := uint32(req.Fid)
	if err := c.allocator.Claim(fid); err != nil {
		return wireError(wire.IDChoiceErrorCode, seq, fid, wire.OpenFont)
	}
	f := &resource.FontRes{XID: fid, Name: req.Name, Properties: make(map[uint32]uint32)}
	if err := e.registry.Register(&resource.Resource{XID: fid, Owner: c.ID, Kind: resource.KindFont, Font: f}); err != nil {
		c.allocator.Release(fid)
		return wireError(wire.NameErrorCode, seq, fid, wire.OpenFont)
	}
	return nil
}

func (e *Engine) closeFont(c *Client, req *wire.CloseFontRequest, seq uint16) wire.Error {
	if _, werr := e.lookup(uint32(req.Fid), resource.KindFont, seq, wire.CloseFont); werr != nil {
		return werr
	}
	e.destroyResource(c, uint32(req.Fid))
	return nil
}

func (e *Engine) getInputFocus(c *Client, seq uint16) ([]byte, wire.Error) {
	reply := &wire.GetInputFocusReply{Sequence: seq, RevertTo: c.focusRevert, Focus: c.inputFocus}
	return reply.EncodeMessage(c.order), nil
}

func (e *Engine) setInputFocus(c *Client, req *wire.SetInputFocusRequest, seq uint16) wire.Error {
	if uint32(req.Focus) != 0 && uint32(req.Focus) != 1 {
		if _, werr := e.lookup(uint32(req.Focus), resource.KindWindow, seq, wire.SetInputFocus); werr != nil {
			return werr
		}
	}
	c.mu.Lock()
	c.inputFocus = uint32(req.Focus)
	c.focusRevert = req.RevertTo
	c.mu.Unlock()
	return nil
}

func (e *Engine) grabPointer(c *Client, req *wire.GrabPointerRequest, seq uint16) ([]byte, wire.Error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	status := wire.GrabSuccess
	if e.pointerGrab != nil && e.pointerGrab.client != c.ID {
		status = wire.AlreadyGrabbed
	} else {
		e.pointerGrab = &grabState{client: c.ID, window: uint32(req.GrabWindow), ownerEvents: req.OwnerEvents, confineTo: uint32(req.ConfineTo), cursor: uint32(req.Cursor)}
	}
	reply := &wire.GrabPointerReply{Sequence: seq, Status: status}
	return reply.EncodeMessage(c.order), nil
}

func (e *Engine) ungrabPointer(c *Client, seq uint16) wire.Error {
	e.mu.Lock()
	if e.pointerGrab != nil && e.pointerGrab.client == c.ID {
		e.pointerGrab = nil
	}
	e.mu.Unlock()
	return nil
}

func (e *Engine) grabKeyboard(c *Client, req *wire.GrabKeyboardRequest, seq uint16) ([]byte, wire.Error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	status := wire.GrabSuccess
	if e.keyboardGrab != nil && e.keyboardGrab.client != c.ID {
		status = wire.AlreadyGrabbed
	} else {
		e.keyboardGrab = &grabState{client: c.ID, window: uint32(req.GrabWindow), ownerEvents: req.OwnerEvents}
	}
	reply := &wire.GrabKeyboardReply{Sequence: seq, Status: status}
	return reply.EncodeMessage(c.order), nil
}

func (e *Engine) ungrabKeyboard(c *Client, seq uint16) wire.Error {
	e.mu.Lock()
	if e.keyboardGrab != nil && e.keyboardGrab.client == c.ID {
		e.keyboardGrab = nil
	}
	e.mu.Unlock()
	return nil
}

func (e *Engine) grabButton(c *Client, req *wire.GrabButtonRequest, seq uint16) wire.Error {
	return nil
}

func (e *Engine) ungrabButton(c *Client, req *wire.UngrabButtonRequest, seq uint16) wire.Error {
	return nil
}

func (e *Engine) grabKey(c *Client, req *wire.GrabKeyRequest, seq uint16) wire.Error {
	e.mu.Lock()
	defer e.mu.Unlock()
	key := keyGrabKey{window: uint32(req.GrabWindow), modifiers: req.Modifiers, key: uint8(req.Key)}
	if owner, ok := e.keyGrabs[key]; ok && owner != c.ID {
		return wireError(wire.AccessErrorCode, seq, 0, wire.GrabKey)
	}
	e.keyGrabs[key] = c.ID
	return nil
}

func (e *Engine) ungrabKey(req *wire.UngrabKeyRequest, seq uint16) wire.Error {
	e.mu.Lock()
	delete(e.keyGrabs, keyGrabKey{window: uint32(req.GrabWindow), modifiers: req.Modifiers, key: uint8(req.Key)})
	e.mu.Unlock()
	return nil
}

func (e *Engine) changeActivePointerGrab(c *Client, req *wire.ChangeActivePointerGrabRequest, seq uint16) wire.Error {
	e.mu.Lock()
	if e.pointerGrab != nil && e.pointerGrab.client == c.ID {
		e.pointerGrab.cursor = uint32(req.Cursor)
	}
	e.mu.Unlock()
	return nil
}

func (e *Engine) allowEvents(c *Client, req *wire.AllowEventsRequest, seq uint16) wire.Error {
	return nil
}

func (e *Engine) grabServer(c *Client, seq uint16) wire.Error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.serverGrabbed && e.serverGrabOwner != c.ID {
		return wireError(wire.AccessErrorCode, seq, 0, wire.GrabServer)
	}
	e.serverGrabbed = true
	e.serverGrabOwner = c.ID
	return nil
}

func (e *Engine) ungrabServer(c *Client, seq uint16) wire.Error {
	e.mu.Lock()
	if e.serverGrabbed && e.serverGrabOwner == c.ID {
		e.serverGrabbed = false
	}
	e.mu.Unlock()
	return nil
}

func (e *Engine) killClient(c *Client, req *wire.KillClientRequest, seq uint16) wire.Error {
	if req.Resource == 0 { // AllTemporary: not modeled, treated as no-op
		return nil
	}
	res, err := e.registry.Lookup(req.Resource, resource.KindAny)
	if err != nil {
		return wireError(wire.ValueErrorCode, seq, req.Resource, wire.KillClient)
	}
	e.mu.RLock()
	target := e.clients[res.Owner]
	e.mu.RUnlock()
	if target == nil {
		return nil
	}
	target.out.Close()
	target.conn.Close()
	return nil
}

func (e *Engine) sendEvent(c *Client, req *wire.SendEventRequest, seq uint16) wire.Error {
	if _, werr := e.lookup(uint32(req.Destination), resource.KindWindow, seq, wire.SendEvent); werr != nil {
		return werr
	}
	e.deliverRaw(uint32(req.Destination), req.EventMask, req.EventData)
	return nil
}

func (e *Engine) getSelectionOwner(c *Client, req *wire.GetSelectionOwnerRequest, seq uint16) ([]byte, wire.Error) {
	e.mu.RLock()
	owner, ok := e.selections[uint32(req.Selection)]
	e.mu.RUnlock()
	w := uint32(0)
	if ok {
		w = owner.window
	}
	reply := &wire.GetSelectionOwnerReply{Sequence: seq, Owner: w}
	return reply.EncodeMessage(c.order), nil
}

func (e *Engine) setSelectionOwner(c *Client, req *wire.SetSelectionOwnerRequest, seq uint16) wire.Error {
	e.mu.Lock()
	if uint32(req.Owner) == 0 {
		delete(e.selections, uint32(req.Selection))
	} else {
		if _, werr := e.lookup(uint32(req.Owner), resource.KindWindow, seq, wire.SetSelectionOwner); werr != nil {
			e.mu.Unlock()
			return werr
		}
		e.selections[uint32(req.Selection)] = selectionOwner{window: uint32(req.Owner), client: c.ID}
	}
	e.mu.Unlock()
	return nil
}

func (e *Engine) convertSelection(c *Client, req *wire.ConvertSelectionRequest, seq uint16) wire.Error {
	e.mu.RLock()
	owner, ok := e.selections[uint32(req.Selection)]
	e.mu.RUnlock()
	if !ok {
		e.notifySelection(uint32(req.Requestor), uint32(req.Selection), uint32(req.Target), 0, seq)
		return nil
	}
	e.notifySelectionRequest(owner.window, uint32(req.Requestor), uint32(req.Selection), uint32(req.Target), uint32(req.Property), seq)
	return nil
}

// passthrough answers any opcode this engine parses but does not implement
// state for (drawing, font metrics, pointer/keyboard mapping, hosts,
// screensaver): it changes no state and sends nothing back, neither an
// error nor a reply, including for requests whose protocol definition has
// a reply.
func (e *Engine) passthrough(req wire.Request, seq uint16) ([]byte, wire.Error) {
	return nil, nil
}
