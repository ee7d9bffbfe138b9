package board

import (
	"log"
	"sync"
	"time"

	"ChalkTalk/internal/expr"
	"ChalkTalk/internal/geom"

	"github.com/google/uuid"
)

// stroke is a sampled graph curve kept around so completed graphs redraw
// without re-evaluating their expression every frame.
type stroke struct {
	points []geom.Point
	gapX   float64
}

// Session owns one chalkboard's entire mutable state. All counters and maps
// live here rather than at package level, so independent sessions never
// share palette position or history.
type Session struct {
	mu        sync.Mutex
	commands  []Command
	active    map[string]*Animation
	strokes   map[string]stroke
	hist      *history
	palette   int
	speedMult float64
	paused    bool
	lastTick  time.Time

	// OnBatch fires after an enqueue with the commands as stored (IDs and
	// colors assigned); the share layer broadcasts from here.
	OnBatch func([]Command)
	// OnClear fires after the board is wiped.
	OnClear func()
	// OnUndo fires after a snapshot is restored.
	OnUndo func()
	// OnCommandDone fires once per command when its visual is fully drawn.
	// Clear and Undo discard work without firing it.
	OnCommandDone func(Command)
	// OnWork fires when a dispatch creates a new active animation, so the
	// host can restart its frame loop.
	OnWork func()
}

// NewSession creates an empty board session.
func NewSession() *Session {
	return &Session{
		active:    make(map[string]*Animation),
		strokes:   make(map[string]stroke),
		hist:      newHistory(maxUndoDepth),
		speedMult: 1.0,
	}
}

// SetSpeedMultiplier scales every subsequent graph's reveal time. The value
// is clamped to [0.5, 3.0].
func (s *Session) SetSpeedMultiplier(mult float64) {
	if mult < 0.5 {
		mult = 0.5
	}
	if mult > 3.0 {
		mult = 3.0
	}
	s.mu.Lock()
	s.speedMult = mult
	s.mu.Unlock()
}

// SpeedMultiplier returns the current playback speed factor.
func (s *Session) SpeedMultiplier() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.speedMult
}

// Enqueue appends a batch of commands, snapshotting the prior list for undo,
// assigning each command its ID and the next palette color, and dispatching
// it. Returns the commands as stored.
func (s *Session) Enqueue(batch []Command) []Command {
	// Share messages decode straight into commands, so a malformed or
	// version-skewed payload can arrive with no variant set. Drop those
	// before anything is snapshotted or dispatched.
	accepted := make([]Command, 0, len(batch))
	for _, cmd := range batch {
		if cmd.Kind() == KindInvalid {
			log.Printf("[board] dropping command %q with no payload", cmd.ID)
			continue
		}
		accepted = append(accepted, cmd)
	}
	if len(accepted) == 0 {
		return nil
	}

	s.mu.Lock()
	s.hist.push(s.commands)

	stored := make([]Command, 0, len(accepted))
	var instant []Command
	var started bool
	for _, cmd := range accepted {
		if cmd.ID == "" {
			cmd.ID = uuid.NewString()
		}
		cmd.ColorIndex = s.palette
		s.palette++
		s.commands = append(s.commands, cmd)
		stored = append(stored, cmd)

		switch cmd.Kind() {
		case KindGraph:
			if s.dispatchGraph(cmd) {
				started = true
			} else {
				instant = append(instant, cmd)
			}
		case KindAnnotation, KindDiagram:
			// Rendered in full on the next frame; completed immediately.
			instant = append(instant, cmd)
		}
	}
	onBatch, onDone, onWork := s.OnBatch, s.OnCommandDone, s.OnWork
	s.mu.Unlock()

	if started && onWork != nil {
		onWork()
	}
	if onBatch != nil {
		onBatch(stored)
	}
	if onDone != nil {
		for _, cmd := range instant {
			onDone(cmd)
		}
	}
	return stored
}

// dispatchGraph compiles and samples a graph command. It reports whether an
// animation was created; a failed compile or an empty sample set completes
// instantly instead of leaving the command stuck.
func (s *Session) dispatchGraph(cmd Command) bool {
	g := cmd.Graph
	fn, err := expr.Compile(g.Expression)
	if err != nil {
		log.Printf("[board] graph %q did not compile: %v", g.Expression, err)
		return false
	}
	points := expr.Sample(fn, g.Domain[0], g.Domain[1], s.speedMult)
	if len(points) == 0 {
		log.Printf("[board] graph %q has no plottable points on [%g, %g]",
			g.Expression, g.Domain[0], g.Domain[1])
		return false
	}

	gapX := 1.5 * expr.StepFor(g.Domain[0], g.Domain[1], s.speedMult)
	s.strokes[cmd.ID] = stroke{points: points, gapX: gapX}

	speed := time.Duration(g.SpeedMs/s.speedMult) * time.Millisecond
	anim := newAnimation(points, gapX, speed)
	anim.OnDone = func() {
		if done := s.OnCommandDone; done != nil {
			done(cmd)
		}
	}
	s.active[cmd.ID] = anim
	return true
}

// Undo restores the snapshot taken before the most recent enqueue. Active
// animations are discarded without their completion callbacks; undo aborts
// work, it does not finish it. Returns false when there is nothing to undo.
func (s *Session) Undo() bool {
	s.mu.Lock()
	snap, ok := s.hist.pop()
	if !ok {
		s.mu.Unlock()
		return false
	}
	s.commands = snap
	s.active = make(map[string]*Animation)
	kept := make(map[string]bool, len(snap))
	for _, cmd := range snap {
		kept[cmd.ID] = true
	}
	for id := range s.strokes {
		if !kept[id] {
			delete(s.strokes, id)
		}
	}
	onUndo := s.OnUndo
	s.mu.Unlock()

	if onUndo != nil {
		onUndo()
	}
	return true
}

// Clear wipes the board: commands, history, animations and the palette
// rotation all reset, exactly as a fresh session.
func (s *Session) Clear() {
	s.mu.Lock()
	s.commands = nil
	s.active = make(map[string]*Animation)
	s.strokes = make(map[string]stroke)
	s.hist.reset()
	s.palette = 0
	onClear := s.OnClear
	s.mu.Unlock()

	if onClear != nil {
		onClear()
	}
}

// Commands returns a copy of the command list in submission order.
func (s *Session) Commands() []Command {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Command, len(s.commands))
	copy(out, s.commands)
	return out
}

// ActiveCount reports how many animations are still revealing.
func (s *Session) ActiveCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.active)
}

// UndoDepth reports how many snapshots the undo stack holds.
func (s *Session) UndoDepth() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hist.len()
}

// strokeFor returns the cached sample set for a graph command, re-sampling
// if the cache was dropped (for example on a board restored from elsewhere).
// Caller must hold s.mu.
func (s *Session) strokeFor(cmd Command) (stroke, bool) {
	if st, ok := s.strokes[cmd.ID]; ok {
		return st, true
	}
	g := cmd.Graph
	fn, err := expr.Compile(g.Expression)
	if err != nil {
		return stroke{}, false
	}
	points := expr.Sample(fn, g.Domain[0], g.Domain[1], s.speedMult)
	if len(points) == 0 {
		return stroke{}, false
	}
	st := stroke{points: points, gapX: 1.5 * expr.StepFor(g.Domain[0], g.Domain[1], s.speedMult)}
	s.strokes[cmd.ID] = st
	return st, true
}
