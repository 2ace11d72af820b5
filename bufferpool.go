package tui

// BufferPool holds two frames so each paint can be compared with the one
// before it. Swap alternates between them, clearing the one that becomes
// current.
type BufferPool struct {
	buffers [2]*Buffer
	current int
}

// NewBufferPool creates a double-buffered pool.
func NewBufferPool(width, height int) *BufferPool {
	return &BufferPool{
		buffers: [2]*Buffer{
			NewBuffer(width, height),
			NewBuffer(width, height),
		},
	}
}

// Current returns the buffer being painted.
func (p *BufferPool) Current() *Buffer {
	return p.buffers[p.current]
}

// Previous returns the last completed frame.
func (p *BufferPool) Previous() *Buffer {
	return p.buffers[1-p.current]
}

// Swap switches to the other buffer and returns it cleared.
func (p *BufferPool) Swap() *Buffer {
	p.current = 1 - p.current
	buf := p.buffers[p.current]
	buf.Clear()
	return buf
}

// Width returns the buffer width.
func (p *BufferPool) Width() int {
	return p.buffers[0].Width()
}

// Height returns the buffer height.
func (p *BufferPool) Height() int {
	return p.buffers[0].Height()
}

// Resize replaces both buffers when the dimensions change.
func (p *BufferPool) Resize(width, height int) {
	if width == p.Width() && height == p.Height() {
		return
	}
	for i := range p.buffers {
		p.buffers[i] = NewBuffer(width, height)
	}
}
