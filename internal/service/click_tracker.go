package service

import (
	"hash/fnv"
	"sync"

	"github.com/avc-dev/shorturls/internal/model"
	"go.uber.org/zap"
)

type clickJob struct {
	code  model.Code
	click model.ClickRecord
}

// ClickTracker записывает клики асинхронно через ограниченные очереди и пул воркеров.
// У каждого воркера своя очередь, клики одного кода всегда попадают в одну и ту же,
// поэтому они сохраняются в порядке вызова Track.
// Track никогда не блокирует вызывающего: при заполненной очереди клик отбрасывается.
type ClickTracker struct {
	recorder ClickRecorder
	logger   *zap.Logger
	queues   []chan clickJob

	mu      sync.RWMutex
	closed  bool
	started bool
	wg      sync.WaitGroup
}

// NewClickTracker создает трекер с numWorkers воркерами и общей емкостью очередей queueSize
func NewClickTracker(recorder ClickRecorder, logger *zap.Logger, queueSize, numWorkers int) *ClickTracker {
	numWorkers = max(1, numWorkers)
	perWorker := max(1, (queueSize+numWorkers-1)/numWorkers)

	queues := make([]chan clickJob, numWorkers)
	for i := range queues {
		queues[i] = make(chan clickJob, perWorker)
	}

	return &ClickTracker{
		recorder: recorder,
		logger:   logger,
		queues:   queues,
	}
}

// Start запускает воркеров. Повторный вызов ничего не делает.
func (t *ClickTracker) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.started || t.closed {
		return
	}
	t.started = true

	t.wg.Add(len(t.queues))
	for i, queue := range t.queues {
		go t.worker(i, queue)
	}
}

// Track ставит клик в очередь. Возвращает false, если клик отброшен.
func (t *ClickTracker) Track(code model.Code, click model.ClickRecord) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.closed {
		return false
	}

	select {
	case t.queues[t.shard(code)] <- clickJob{code: code, click: click}:
		return true
	default:
		t.logger.Warn("click queue is full, click dropped", zap.String("code", string(code)))
		return false
	}
}

// shard выбирает очередь по FNV-1a хешу кода
func (t *ClickTracker) shard(code model.Code) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(code))
	return int(h.Sum32() % uint32(len(t.queues)))
}

// Stop закрывает очереди и ждет, пока воркеры обработают оставшиеся клики
func (t *ClickTracker) Stop() {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return
	}
	t.closed = true
	for _, queue := range t.queues {
		close(queue)
	}
	started := t.started
	t.mu.Unlock()

	if !started {
		// Воркеры не запускались, дочитываем очереди здесь
		for _, queue := range t.queues {
			for job := range queue {
				t.record(job)
			}
		}
		return
	}

	t.wg.Wait()
}

func (t *ClickTracker) worker(workerID int, queue <-chan clickJob) {
	defer t.wg.Done()

	for job := range queue {
		t.record(job)
	}

	t.logger.Debug("click worker stopped", zap.Int("worker_id", workerID))
}
func (t *ClickTracker) record(job clickJob) {
	defer func() {
		if r := recover(); r != nil {
			t.logger.Error("panic while recording click",
				zap.String("code", string(job.code)),
				zap.Any("panic", r),
			)
		}
	}()

	if err := t.recorder.RecordClick(job.code, job.click); err != nil {
		t.logger.Warn("failed to record click",
			zap.String("code", string(job.code)),
			zap.Error(err),
		)
		return
	}

	t.logger.Debug("click recorded",
		zap.String("code", string(job.code)),
		zap.String("source", job.click.Source),
		zap.String("location", job.click.Location),
	)
}
