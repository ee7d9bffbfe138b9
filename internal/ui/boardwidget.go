package ui

import (
	"sync"
	"time"

	"ChalkTalk/internal/board"
	"ChalkTalk/internal/render"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// BoardWidget shows one board session and owns the frame loop that drives
// its animations. The loop only runs while something is animating; graph
// dispatches restart it through the session's work callback.
type BoardWidget struct {
	widget.BaseWidget
	session *board.Session

	mu      sync.Mutex
	running bool
}

var _ fyne.Widget = (*BoardWidget)(nil)

// NewBoardWidget wires a widget to a session.
func NewBoardWidget(sess *board.Session) *BoardWidget {
	b := &BoardWidget{session: sess}
	b.ExtendBaseWidget(b)
	sess.OnWork = b.StartLoop
	return b
}

// StartLoop launches the frame goroutine if it is not already running. It
// steps the session at roughly the tick rate and exits as soon as the board
// reports no remaining work.
func (b *BoardWidget) StartLoop() {
	b.mu.Lock()
	if b.running {
		b.mu.Unlock()
		return
	}
	b.running = true
	b.mu.Unlock()

	go func() {
		ticker := time.NewTicker(16 * time.Millisecond)
		defer ticker.Stop()
		for now := range ticker.C {
			active := b.session.Step(now)
			fyne.Do(b.Refresh)
			if !active {
				break
			}
		}
		b.mu.Lock()
		b.running = false
		b.mu.Unlock()
	}()
}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	return &boardRenderer{
		board:      b,
		background: canvas.NewRectangle(render.Background),
	}
}

type boardRenderer struct {
	board      *BoardWidget
	background *canvas.Rectangle
}

// Objects rebuilds the full scene every refresh: background, axes, completed
// commands, then the revealed part of each active animation.
func (r *boardRenderer) Objects() []fyne.CanvasObject {
	size := r.board.Size()
	sf := &canvasSurface{}
	if size.Width > 0 && size.Height > 0 {
		r.board.session.Render(sf, float64(size.Width), float64(size.Height))
	}
	return append([]fyne.CanvasObject{r.background}, sf.objects...)
}

func (r *boardRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
}

func (r *boardRenderer) MinSize() fyne.Size {
	return fyne.NewSize(480, 360)
}

func (r *boardRenderer) Refresh() {
	canvas.Refresh(r.board)
}

func (r *boardRenderer) Destroy() {}
