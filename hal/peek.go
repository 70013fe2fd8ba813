package hal

import (
	"image"
	"sync"
)

// Quick-view panel height as a fraction of the screen height; 51 of 168
// rows on a 144x168 panel.
const (
	peekHeightNum = 51
	peekHeightDen = 168
	peekFrames    = 6
)

// peekPanel slides a panel up from the bottom edge. The platform loop calls
// advance once per frame; Toggle may be called from anywhere.
type peekPanel struct {
	mu     sync.Mutex
	screen image.Rectangle
	height int
	speed  int
	cur    int
	target int
	ch     chan image.Rectangle
}

// QuickViewHeight is how many rows the fully shown quick-view panel covers.
func QuickViewHeight(s Screen) int {
	return s.Height * peekHeightNum / peekHeightDen
}

func newPeekPanel(s Screen) *peekPanel {
	h := QuickViewHeight(s)
	speed := h / peekFrames
	if speed < 1 {
		speed = 1
	}
	return &peekPanel{
		screen: s.Bounds(),
		height: h,
		speed:  speed,
		ch:     make(chan image.Rectangle, 16),
	}
}

func (p *peekPanel) Events() <-chan image.Rectangle { return p.ch }

func (p *peekPanel) Unobstructed() image.Rectangle {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.visibleLocked()
}

func (p *peekPanel) Toggle() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.target == 0 {
		p.target = p.height
	} else {
		p.target = 0
	}
}

func (p *peekPanel) Peeking() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.target > 0
}

// advance moves the panel one frame towards its target and reports whether
// it moved.
func (p *peekPanel) advance() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cur == p.target {
		return false
	}
	if p.cur < p.target {
		p.cur += p.speed
		if p.cur > p.target {
			p.cur = p.target
		}
	} else {
		p.cur -= p.speed
		if p.cur < p.target {
			p.cur = p.target
		}
	}
	p.emitLocked(p.visibleLocked())
	return true
}

func (p *peekPanel) visibleLocked() image.Rectangle {
	r := p.screen
	r.Max.Y -= p.cur
	return r
}

// emitLocked never blocks. When the consumer lags the oldest frame is
// dropped so the final position is always delivered.
func (p *peekPanel) emitLocked(r image.Rectangle) {
	for {
		select {
		case p.ch <- r:
			return
		default:
		}
		select {
		case <-p.ch:
		default:
		}
	}
}
