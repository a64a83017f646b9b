package termcore

// Terminal composes a Grid and Parser behind the functional-options
// constructor the rest of the pack uses
// (danielgatis-go-headless-term/doc.go's `headlessterm.New(WithSize(...),
// WithScrollback(...), WithResponse(...))`), and is the library's main
// entry point per spec.md §6's external interfaces.
type Terminal struct {
	Grid   *Grid
	Parser *Parser

	boldIsBright bool
}

// Option configures a Terminal at construction time.
type Option func(*options)

type options struct {
	cols, rows     int
	scrollback     int
	tabInterval    int
	response       func([]byte)
	clipboardWrite func([]byte)
	boldIsBright   bool
}

// WithSize sets the initial grid dimensions (default 80x24).
func WithSize(cols, rows int) Option {
	return func(o *options) { o.cols, o.rows = cols, rows }
}

// WithScrollback sets the scrollback line capacity (default 10000).
func WithScrollback(n int) Option {
	return func(o *options) { o.scrollback = n }
}

// WithTabInterval sets the default tab-stop interval (default 8).
func WithTabInterval(n int) Option {
	return func(o *options) { o.tabInterval = n }
}

// WithResponse registers the upstream response-byte sink.
func WithResponse(fn func([]byte)) Option {
	return func(o *options) { o.response = fn }
}

// WithClipboardWrite registers the OSC 52 clipboard-write hook.
func WithClipboardWrite(fn func([]byte)) Option {
	return func(o *options) { o.clipboardWrite = fn }
}

// WithBoldIsBright enables the "bold upgrades indexed colors 0-7 to 8-15"
// rendering convention.
func WithBoldIsBright(on bool) Option {
	return func(o *options) { o.boldIsBright = on }
}

// New constructs a Terminal with the given options.
func New(opts ...Option) *Terminal {
	o := options{cols: 80, rows: 24, scrollback: 10000, tabInterval: 8}
	for _, opt := range opts {
		opt(&o)
	}

	grid := NewGrid(o.cols, o.rows, o.scrollback)
	if o.tabInterval > 0 {
		grid.mu.Lock()
		grid.tabInterval = o.tabInterval
		grid.resetTabStops()
		grid.mu.Unlock()
	}

	parser := NewParser(grid)
	parser.SetResponseSink(o.response)
	parser.SetClipboardWrite(o.clipboardWrite)

	return &Terminal{Grid: grid, Parser: parser, boldIsBright: o.boldIsBright}
}

// Feed appends raw bytes from the remote PTY/SSH channel (spec.md §6 `feed`).
func (t *Terminal) Feed(data []byte) { t.Parser.Feed(data) }

// Resize resizes the grid; idempotent when unchanged (spec.md §6 `resize`).
func (t *Terminal) Resize(cols, rows int) { t.Grid.Resize(cols, rows) }

// Snapshot returns an immutable grid view with dirty range (spec.md §6
// `snapshot`).
func (t *Terminal) Snapshot() GridSnapshot {
	snap := t.Grid.Snapshot()
	snap.BoldIsBright = t.boldIsBright
	return snap
}

// EncodeKey turns a KeyEvent into the bytes to write upstream (spec.md §6
// `encode_key`).
func (t *Terminal) EncodeKey(ev KeyEvent, mode ModeFlags) []byte {
	return EncodeKey(ev, mode)
}

// EncodeMouse turns a MouseEvent into the bytes to write upstream, or nil
// if the current mode doesn't report this event (spec.md §6 `encode_mouse`).
func (t *Terminal) EncodeMouse(ev MouseEvent, mode ModeFlags) []byte {
	return EncodeMouse(ev, mode)
}

// EncodePaste turns clipboard text into one or more chunks to write
// upstream (spec.md §6 `encode_paste`).
func (t *Terminal) EncodePaste(text string, mode ModeFlags) [][]byte {
	return EncodePaste(text, mode)
}

// BoldIsBright reports whether bold indexed colors 0-7 render as 8-15.
func (t *Terminal) BoldIsBright() bool { return t.boldIsBright }
