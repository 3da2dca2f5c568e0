package moneyfmt

// FormatHook observes conversion formatting calls made through a Formatter.
type FormatHook interface {
	BeforeFormat(ctx *FormatHookContext)
	AfterFormat(ctx *FormatHookContext)
}

// FormatHookContext carries the request and, after formatting, its outcome.
type FormatHookContext struct {
	Page     *Page
	Cents    float64
	Format   FormatName
	HTML     bool
	Currency string
	Probe    string
	Strategy string
	Result   string
	OK       bool
	Metadata map[string]any
}

func (ctx *FormatHookContext) ensureMetadata() {
	if ctx.Metadata == nil {
		ctx.Metadata = make(map[string]any)
	}
}

// SetMetadata stores a value shared between hooks of one call.
func (ctx *FormatHookContext) SetMetadata(key string, value any) {
	if ctx == nil || key == "" {
		return
	}
	ctx.ensureMetadata()
	ctx.Metadata[key] = value
}

// MetadataValue returns a value stored with SetMetadata.
func (ctx *FormatHookContext) MetadataValue(key string) (any, bool) {
	if ctx == nil || ctx.Metadata == nil {
		return nil, false
	}
	val, ok := ctx.Metadata[key]
	return val, ok
}

// HookFuncs adapts optional callbacks to FormatHook.
type HookFuncs struct {
	Before func(ctx *FormatHookContext)
	After  func(ctx *FormatHookContext)
}

// BeforeFormat implements FormatHook.
func (h HookFuncs) BeforeFormat(ctx *FormatHookContext) {
	if h.Before != nil {
		h.Before(ctx)
	}
}

// AfterFormat implements FormatHook.
func (h HookFuncs) AfterFormat(ctx *FormatHookContext) {
	if h.After != nil {
		h.After(ctx)
	}
}

func runBeforeHooks(hooks []FormatHook, ctx *FormatHookContext) {
	for _, hook := range hooks {
		hook.BeforeFormat(ctx)
	}
}

func runAfterHooks(hooks []FormatHook, ctx *FormatHookContext) {
	for _, hook := range hooks {
		hook.AfterFormat(ctx)
	}
}
