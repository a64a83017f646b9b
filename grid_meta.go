package termcore

// WindowTitle returns the OSC 0/2-set window title.
func (g *Grid) WindowTitle() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.windowTitle
}

// IconTitle returns the OSC 0/1-set icon title.
func (g *Grid) IconTitle() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.iconTitle
}

// WorkingDirectory returns the OSC 7-reported cwd URI, empty if never set.
func (g *Grid) WorkingDirectory() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.workingDirectory
}

// CurrentHyperlinkID returns the OSC 8 hyperlink id presently in scope for
// newly printed cells, empty if none.
func (g *Grid) CurrentHyperlinkID() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.currentHyperlink
}

// HyperlinkURI resolves a cell's HyperlinkID back to the URI OSC 8 set it
// to, as used by a renderer handling a click or hover on a Cell.
func (g *Grid) HyperlinkURI(id string) (string, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	uri, ok := g.hyperlinks[id]
	return uri, ok
}
