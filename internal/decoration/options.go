package decoration

import (
	"github.com/LISSConsulting/LISSTech.Gutter/internal/diag"
	"github.com/LISSConsulting/LISSTech.Gutter/internal/offset"
	"github.com/LISSConsulting/LISSTech.Gutter/internal/provider"
)

// Options configures Dividers. Nil providers fall back to the fixed
// implementations built from the remaining fields.
type Options struct {
	// AsSpace reserves the space of the dividers without painting them.
	AsSpace bool

	Drawable   provider.DrawableProvider
	Size       provider.SizeProvider
	Insets     provider.InsetProvider
	Tint       provider.TintProvider
	Visibility provider.VisibilityProvider
	Offset     offset.Provider

	FirstVisible bool
	LastVisible  bool
	SideVisible  bool

	// Cache builds the grid cache of each attached host.
	Cache  func() GridCache
	Logger diag.Logger
}

// StaggeredOptions configures StaggeredDividers. Every divider shares the
// same drawable and size.
type StaggeredOptions struct {
	AsSpace bool
	// Drawable is painted for every divider; nil means nothing is painted.
	Drawable *provider.Drawable
	// Size overrides provider.DefaultSize.
	Size        *int
	SideVisible bool
	Logger      diag.Logger
}

const (
	warnNoDrawable = "can't render the divider without a drawable: set a color or glyphs in the [divider] section"
	warnUnbalanced = "the default offset provider can't ensure the same size of the items in a grid with more than 1 column/row " +
		"using a custom drawable, size or visibility provider"
	warnNotSolid = "can't ensure the correct rendering of a divider drawable which isn't a solid color in a StaggeredGridLayout"
)

// New returns a decoration for linear and grid layouts.
func New(opts Options) *Dividers {
	log := diag.OrDiscard(opts.Logger)
	d := &Dividers{
		asSpace:    opts.AsSpace,
		drawable:   opts.Drawable,
		size:       opts.Size,
		insets:     opts.Insets,
		tint:       opts.Tint,
		visibility: opts.Visibility,
		offset:     opts.Offset,
	}
	if opts.Offset == nil && couldUnbalance(opts) {
		log.Warn(warnUnbalanced)
	}
	if d.drawable == nil {
		if !opts.AsSpace {
			log.Warn(warnNoDrawable)
		}
		d.drawable = provider.FixedDrawable{D: provider.Transparent()}
	}
	if d.size == nil {
		d.size = provider.FixedSize{}
	}
	if d.insets == nil {
		d.insets = provider.FixedInsets{}
	}
	if d.tint == nil {
		d.tint = provider.FixedTint{}
	}
	if d.visibility == nil {
		d.visibility = provider.DefaultVisibility{
			FirstVisible: opts.FirstVisible,
			LastVisible:  opts.LastVisible,
			SideVisible:  opts.SideVisible,
		}
	}
	if d.offset == nil {
		d.offset = offset.Balancer{SideDividersVisible: opts.SideVisible}
	}
	d.attachments.newCache = opts.Cache
	if d.attachments.newCache == nil {
		d.attachments.newCache = NewInMemoryCache
	}
	return d
}

// couldUnbalance reports whether opts carries a provider the default
// balancer knows nothing about.
func couldUnbalance(opts Options) bool {
	if opts.Drawable != nil {
		if _, ok := opts.Drawable.(provider.FixedDrawable); !ok {
			return true
		}
	}
	if opts.Size != nil {
		if _, ok := opts.Size.(provider.FixedSize); !ok {
			return true
		}
	}
	if opts.Visibility != nil {
		if _, ok := opts.Visibility.(provider.DefaultVisibility); !ok {
			return true
		}
	}
	return false
}

// NewStaggered returns a decoration for staggered grid layouts.
func NewStaggered(opts StaggeredOptions) *StaggeredDividers {
	log := diag.OrDiscard(opts.Logger)
	d := &StaggeredDividers{
		asSpace:     opts.AsSpace,
		size:        provider.DefaultSize,
		balancer:    offset.StaggeredBalancer{SideDividersVisible: opts.SideVisible},
		sideVisible: opts.SideVisible,
	}
	if opts.Size != nil {
		d.size = *opts.Size
	}
	switch {
	case opts.Drawable == nil:
		d.drawable = provider.Transparent()
		if !opts.AsSpace {
			log.Warn(warnNoDrawable)
		}
	default:
		d.drawable = *opts.Drawable
		if !opts.AsSpace && !d.drawable.IsSolid() {
			log.Warn(warnNotSolid)
		}
	}
	return d
}
