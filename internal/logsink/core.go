package logsink

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/time/rate"
)

// PackageKey имя поля zap, из которого берется пакет события
const PackageKey = "package"

const defaultDeliveryTimeout = 3 * time.Second

// Sender доставляет событие в приемник
type Sender interface {
	Send(ctx context.Context, event Event) error
}

// Core реализует zapcore.Core и пересылает записи лога в приемник.
// Доставка асинхронная: записи ставятся в ограниченную очередь,
// при переполнении очереди запись отбрасывается.
type Core struct {
	zapcore.LevelEnabler
	pkg  Package
	pipe *pipeline
}

type pipeline struct {
	sender  Sender
	limiter *rate.Limiter
	timeout time.Duration
	queue   chan Event

	mu     sync.RWMutex
	closed bool
	done   chan struct{}

	dropped atomic.Int64
	failed  atomic.Int64
}

// NewCore создает Core и запускает горутину доставки
func NewCore(sender Sender, level zapcore.LevelEnabler, queueSize int, rps float64, timeout time.Duration) *Core {
	limit := rate.Inf
	burst := 1
	if rps > 0 {
		limit = rate.Limit(rps)
		burst = max(1, int(rps))
	}
	if timeout <= 0 {
		timeout = defaultDeliveryTimeout
	}

	p := &pipeline{
		sender:  sender,
		limiter: rate.NewLimiter(limit, burst),
		timeout: timeout,
		queue:   make(chan Event, max(1, queueSize)),
		done:    make(chan struct{}),
	}
	go p.run()

	return &Core{
		LevelEnabler: level,
		pkg:          PackageConfig,
		pipe:         p,
	}
}

// Tee возвращает логгер, пишущий одновременно в исходный core и в приемник
func Tee(logger *zap.Logger, core *Core) *zap.Logger {
	return logger.WithOptions(zap.WrapCore(func(c zapcore.Core) zapcore.Core {
		return zapcore.NewTee(c, core)
	}))
}

func (c *Core) With(fields []zapcore.Field) zapcore.Core {
	clone := *c
	if pkg, ok := packageFromFields(fields); ok {
		clone.pkg = pkg
	}
	return &clone
}

func (c *Core) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

func (c *Core) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	pkg := c.pkg
	if p, ok := packageFromFields(fields); ok {
		pkg = p
	}

	event := Event{
		Stack:     StackBackend,
		Level:     levelOf(ent.Level),
		Package:   pkg,
		Message:   ent.Message,
		Timestamp: ent.Time.UTC(),
	}

	// После panic и fatal записей zap завершает горутину или процесс, очередь уже не успеет отправить их
	if ent.Level >= zapcore.DPanicLevel {
		c.pipe.deliver(event)
		return nil
	}

	c.pipe.enqueue(event)

	// Ошибки доставки не должны ломать основной логгер
	return nil
}

func (c *Core) Sync() error {
	return nil
}

// Close прекращает прием записей и дожидается отправки очереди
func (c *Core) Close() {
	c.pipe.close()
}

// Dropped возвращает число записей, отброшенных из-за переполнения очереди
func (c *Core) Dropped() int64 {
	return c.pipe.dropped.Load()
}

// Failed возвращает число событий, которые не удалось доставить
func (c *Core) Failed() int64 {
	return c.pipe.failed.Load()
}

func (p *pipeline) enqueue(event Event) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		p.dropped.Add(1)
		return
	}

	select {
	case p.queue <- event:
	default:
		p.dropped.Add(1)
	}
}

func (p *pipeline) run() {
	defer close(p.done)

	for event := range p.queue {
		p.deliver(event)
	}
}

func (p *pipeline) deliver(event Event) {
	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	if err := p.limiter.Wait(ctx); err != nil {
		p.failed.Add(1)
		return
	}
	if err := p.sender.Send(ctx, event); err != nil {
		p.failed.Add(1)
	}
}

func (p *pipeline) close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.queue)
	p.mu.Unlock()

	<-p.done
}

func packageFromFields(fields []zapcore.Field) (Package, bool) {
	for i := len(fields) - 1; i >= 0; i-- {
		f := fields[i]
		if f.Key != PackageKey || f.Type != zapcore.StringType {
			continue
		}
		pkg := Package(f.String)
		if IsValidPackage(StackBackend, pkg) {
			return pkg, true
		}
	}
	return "", false
}

func levelOf(l zapcore.Level) Level {
	switch {
	case l <= zapcore.DebugLevel:
		return LevelDebug
	case l == zapcore.InfoLevel:
		return LevelInfo
	case l == zapcore.WarnLevel:
		return LevelWarn
	case l <= zapcore.DPanicLevel:
		return LevelError
	default:
		return LevelFatal
	}
}
