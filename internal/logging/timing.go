package logging

import (
	"time"
)

// TimingContext holds timing information for manual Start/End tracking
type TimingContext struct {
	name      string
	startTime time.Time
	attrs     []any
}

// Time executes fn and logs its execution time at debug level.
//
// Example:
//
//	logging.Time("switch context", func() {
//	    // ...
//	})
func Time(name string, fn func()) {
	Get().Time(name, fn)
}

// TimeWithResult executes fn, logs its execution time and returns its result.
func TimeWithResult[T any](name string, fn func() T) T {
	if !IsEnabled() {
		return fn()
	}

	start := time.Now()
	result := fn()
	logDuration(Get(), name, time.Since(start))
	return result
}

// Start begins a timing measurement. Pair with End or EndWithCount.
//
// Example:
//
//	tc := logging.Start("build clusters", "context", name)
//	nodes := build()
//	logging.EndWithCount(tc, len(nodes))
func Start(name string, attrs ...any) TimingContext {
	return TimingContext{
		name:      name,
		startTime: time.Now(),
		attrs:     attrs,
	}
}

// Elapsed returns the time since Start.
func (tc TimingContext) Elapsed() time.Duration {
	return time.Since(tc.startTime)
}

// End completes a timing measurement started with Start and logs the duration.
func End(tc TimingContext) {
	if !IsEnabled() {
		return
	}
	logDuration(Get().With(tc.attrs...), tc.name, tc.Elapsed())
}

// EndWithCount completes a timing measurement and logs the item count too.
func EndWithCount(tc TimingContext, count int) {
	if !IsEnabled() {
		return
	}
	logDuration(Get().With(tc.attrs...).With("count", count), tc.name, tc.Elapsed())
}

// Time is the Logger-bound variant of the package-level Time.
func (l *Logger) Time(name string, fn func()) {
	if !l.IsEnabled() {
		fn()
		return
	}

	start := time.Now()
	fn()
	logDuration(l, name, time.Since(start))
}

func logDuration(l *Logger, name string, d time.Duration) {
	l.Debug(name,
		"duration", d.String(),
		"ms", d.Milliseconds(),
	)
}
