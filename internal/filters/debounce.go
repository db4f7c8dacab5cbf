package filters

import (
	"sync"
	"time"
)

// Debouncer откладывает вызов fn до паузы delay после последнего Trigger.
// Каждый новый Trigger отменяет отложенный вызов и перезапускает таймер,
// поэтому серия быстрых срабатываний схлопывается в один вызов по заднему
// фронту. Кооперативный таймер, без отдельного воркера.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	fn    func()
	timer *time.Timer
}

func NewDebouncer(delay time.Duration, fn func()) *Debouncer {
	return &Debouncer{delay: delay, fn: fn}
}

func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, d.fn)
}

// Cancel снимает отложенный вызов, если он есть.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
