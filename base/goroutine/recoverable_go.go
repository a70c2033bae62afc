package goroutine

import (
	"runtime/debug"
	"time"

	"github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/base/log"
)

type PanicEvent struct {
	Panic interface{}
	Stack []byte
}

type options struct {
	logger    log.Logger
	onPanic   func(PanicEvent)
	afterDone func()
}

type Option func(*options)

// WithLogger replaces the package logger used to report a recovered panic.
func WithLogger(l log.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithPanicHandler is called with the recovered panic before it is sent on the
// returned channel.
func WithPanicHandler(f func(PanicEvent)) Option {
	return func(o *options) {
		o.onPanic = f
	}
}

// WithAfterDone runs after f returns or panics.
func WithAfterDone(f func()) Option {
	return func(o *options) {
		o.afterDone = f
	}
}

// RecoverableGo runs f on a new goroutine. The returned channel receives the
// panic if f panics and is closed without a value otherwise.
func RecoverableGo(f func(), opts ...Option) <-chan PanicEvent {
	o := options{logger: log.Log()}
	for _, opt := range opts {
		opt(&o)
	}

	done := make(chan PanicEvent, 1)
	go func() {
		defer func() {
			if o.afterDone != nil {
				o.afterDone()
			}
			p := recover()
			if p == nil {
				close(done)
				return
			}
			ev := PanicEvent{Panic: p, Stack: debug.Stack()}
			o.logger.WithFields(log.Fields{
				"err":   p,
				"stack": string(ev.Stack),
			}).Error("panic")
			if o.onPanic != nil {
				o.onPanic(ev)
			}
			done <- ev
		}()
		f()
	}()
	return done
}

// Every runs job immediately and then on each tick until c is done. Runs never
// overlap, and a panicking run is logged without stopping the loop.
func Every(c ctx.Ctx, name string, interval time.Duration, job func(ctx.Ctx)) {
	jc := ctx.WithFields(c, log.Fields{"job": name})
	run := func() {
		<-RecoverableGo(func() { job(jc) }, WithLogger(jc.Logger))
	}
	go func() {
		run()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-c.Done():
				jc.Info("periodic job stopped")
				return
			case <-ticker.C:
				run()
			}
		}
	}()
}
