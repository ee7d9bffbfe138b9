package board

import "time"

// minTickInterval throttles stepping to roughly TickRate regardless of how
// often the host's frame callback fires.
const minTickInterval = 14 * time.Millisecond

// SetPaused stops (or resumes) animation stepping, e.g. while the window is
// hidden. Paused time causes no tick drift: animations resume exactly where
// they stopped, with no catch-up.
func (s *Session) SetPaused(p bool) {
	s.mu.Lock()
	s.paused = p
	s.mu.Unlock()
}

// Step is the per-frame advance. It skips work while paused or when called
// again within the throttle window, otherwise it advances every active
// animation one tick, completing and firing callbacks for any that finish.
// The return value is whether active work remains; the caller's loop is
// pull-based and stops once this reports false.
func (s *Session) Step(now time.Time) bool {
	s.mu.Lock()
	if s.paused || (!s.lastTick.IsZero() && now.Sub(s.lastTick) < minTickInterval) {
		remaining := len(s.active) > 0
		s.mu.Unlock()
		return remaining
	}
	s.lastTick = now

	var fired []func()
	for id, a := range s.active {
		if a.Tick() {
			delete(s.active, id)
			if a.OnDone != nil {
				fired = append(fired, a.OnDone)
			}
		}
	}
	remaining := len(s.active) > 0
	s.mu.Unlock()

	for _, f := range fired {
		f()
	}
	return remaining
}
