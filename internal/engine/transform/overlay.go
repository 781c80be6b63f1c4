package transform

// Overlay is a decoration (the axis gizmo) that at most one Transform
// may hold at a time.
type Overlay struct {
	Name  string
	owner *Transform
}

// NewOverlay returns an unattached overlay.
func NewOverlay(name string) *Overlay {
	return &Overlay{Name: name}
}

// Owner returns the transform currently holding the overlay, or nil.
func (o *Overlay) Owner() *Transform {
	return o.owner
}

// Detach releases the overlay from its owner, if any.
func (o *Overlay) Detach() {
	if o.owner != nil {
		o.owner.overlay = nil
		o.owner = nil
	}
}

// AttachOverlay makes t the sole holder of ov. Whichever transform held
// ov before loses its reference. A nil ov detaches t's current overlay.
func (t *Transform) AttachOverlay(ov *Overlay) {
	if ov == nil {
		t.DetachOverlay()
		return
	}
	if ov.owner == t {
		return
	}
	ov.Detach()
	if t.overlay != nil {
		t.overlay.owner = nil
	}
	t.overlay = ov
	ov.owner = t
}

// DetachOverlay drops t's overlay, if any.
func (t *Transform) DetachOverlay() {
	if t.overlay != nil {
		t.overlay.Detach()
	}
}

// Overlay returns the attached overlay, or nil.
func (t *Transform) Overlay() *Overlay {
	return t.overlay
}
