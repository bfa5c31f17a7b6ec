package password

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/gochat-dev/gochat/errors"
	"github.com/gochat-dev/gochat/logger"
)

const meterName = "github.com/gochat-dev/gochat/auth/password"

type jobOp string

const (
	opHash   jobOp = "hash"
	opVerify jobOp = "verify"
)

type jobResult struct {
	encoded string
	match   bool
	err     error
}

type job struct {
	id        string
	op        jobOp
	plaintext string
	encoded   string
	// done is buffered (capacity 1) so a worker can always deliver its
	// result even if the submitter has already given up on the request.
	done chan jobResult
}

// Pool executes hash and verify jobs on a bounded set of worker goroutines,
// keeping argon2 work off the goroutines that multiplex request I/O.
//
// Submitters block until a worker delivers the result over a one-shot
// channel, or until their context is canceled. A canceled submitter does not
// interrupt the in-flight computation; the worker runs it to completion and
// the result is discarded.
type Pool struct {
	hasher Hasher
	jobs   chan job
	wg     sync.WaitGroup
	log    *logger.Logger

	ops      metric.Int64Counter
	duration metric.Float64Histogram
}

// NewPool creates the worker pool and starts its workers.
// Call Close when no more jobs will be submitted.
func NewPool(cfg PoolConfig, hasher Hasher, log *logger.Logger) *Pool {
	cfg.ApplyDefaults()
	if log == nil {
		log = logger.Nop()
	}

	meter := otel.Meter(meterName)
	ops, _ := meter.Int64Counter("gochat.password.operations",
		metric.WithDescription("Password hash/verify operations executed by the pool"))
	duration, _ := meter.Float64Histogram("gochat.password.duration",
		metric.WithDescription("Password operation duration"),
		metric.WithUnit("ms"))

	p := &Pool{
		hasher:   hasher,
		jobs:     make(chan job, cfg.QueueSize),
		log:      log.WithComponent("password-pool"),
		ops:      ops,
		duration: duration,
	}

	for i := 0; i < cfg.Workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
	return p
}

// Hash runs Hasher.Hash on a pool worker and returns its result.
func (p *Pool) Hash(ctx context.Context, plaintext string) (string, error) {
	res, err := p.submit(ctx, job{op: opHash, plaintext: plaintext})
	if err != nil {
		return "", err
	}
	return res.encoded, res.err
}

// Verify runs Hasher.Verify on a pool worker and returns its result.
func (p *Pool) Verify(ctx context.Context, plaintext, encoded string) (bool, error) {
	res, err := p.submit(ctx, job{op: opVerify, plaintext: plaintext, encoded: encoded})
	if err != nil {
		return false, err
	}
	return res.match, res.err
}

// Close stops accepting jobs and waits for in-flight work to finish.
// It must not be called concurrently with Hash or Verify.
func (p *Pool) Close() {
	close(p.jobs)
	p.wg.Wait()
}

func (p *Pool) submit(ctx context.Context, j job) (jobResult, error) {
	if err := ctx.Err(); err != nil {
		return jobResult{}, errors.Canceled(err)
	}

	j.id = uuid.NewString()
	j.done = make(chan jobResult, 1)

	select {
	case p.jobs <- j:
	case <-ctx.Done():
		p.log.Debug("job rejected before enqueue",
			logger.Fields(logger.FieldJobID, j.id, logger.FieldOperation, string(j.op)))
		return jobResult{}, errors.Canceled(ctx.Err())
	}

	select {
	case res := <-j.done:
		return res, nil
	case <-ctx.Done():
		// The worker will still finish the computation and deliver into the
		// buffered channel; the result is simply never read.
		p.log.Debug("job abandoned by canceled request",
			logger.Fields(logger.FieldJobID, j.id, logger.FieldOperation, string(j.op)))
		return jobResult{}, errors.Canceled(ctx.Err())
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for j := range p.jobs {
		start := time.Now()

		var res jobResult
		switch j.op {
		case opHash:
			res.encoded, res.err = p.hasher.Hash(j.plaintext)
		case opVerify:
			res.match, res.err = p.hasher.Verify(j.plaintext, j.encoded)
		}

		elapsed := time.Since(start)
		p.record(j.op, res.err, elapsed)
		if res.err != nil {
			p.log.WithError(res.err).Warn("password operation failed",
				logger.Fields(logger.FieldJobID, j.id, logger.FieldOperation, string(j.op)))
		} else {
			p.log.Trace("password operation completed",
				logger.Fields(logger.FieldJobID, j.id, logger.FieldOperation, string(j.op),
					logger.FieldDuration, elapsed.Milliseconds()))
		}

		j.done <- res
	}
}

func (p *Pool) record(op jobOp, err error, elapsed time.Duration) {
	status := "ok"
	if err != nil {
		status = string(errors.Code(err))
	}
	attrs := metric.WithAttributes(
		attribute.String("operation", string(op)),
		attribute.String("status", status),
	)
	ctx := context.Background()
	p.ops.Add(ctx, 1, attrs)
	p.duration.Record(ctx, float64(elapsed.Milliseconds()), attrs)
}
