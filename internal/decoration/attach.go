package decoration

type registration struct {
	cache  GridCache
	cancel func()
}

// attachments tracks the hosts a decoration is attached to. Each host gets
// its own cache, cleared whenever the host's adapter reports a change.
type attachments struct {
	newCache func() GridCache
	regs     map[Host]*registration
}

// Attach registers h. Attaching an already attached host starts over with a
// fresh cache and a fresh adapter observer.
func (a *attachments) Attach(h Host) {
	a.Detach(h)
	if a.regs == nil {
		a.regs = make(map[Host]*registration)
	}
	reg := &registration{}
	if a.newCache != nil {
		reg.cache = a.newCache()
	}
	if adapter := h.Adapter(); adapter != nil {
		reg.cancel = adapter.Observe(func() {
			if reg.cache != nil {
				reg.cache.Clear()
			}
		})
	}
	a.regs[h] = reg
}

// Detach drops the registration of h, if any.
func (a *attachments) Detach(h Host) {
	reg, ok := a.regs[h]
	if !ok {
		return
	}
	if reg.cancel != nil {
		reg.cancel()
	}
	delete(a.regs, h)
}

// Attached reports whether h is attached.
func (a *attachments) Attached(h Host) bool {
	_, ok := a.regs[h]
	return ok
}

// cacheFor returns the cache of h, or nil when h isn't attached.
func (a *attachments) cacheFor(h Host) GridCache {
	if reg, ok := a.regs[h]; ok {
		return reg.cache
	}
	return nil
}
