// Package processing serializes commands to a single-owner session.
package processing

import (
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-fenwick-go/internal/types"
)

// Runner executes one command line. session.Session implements it.
type Runner interface {
	Exec(line string) (string, error)
}

type Request struct {
	RequestID uint64
	Line      string
	resp      chan Response
}

type Response struct {
	RequestID uint64
	Output    string
	Err       error
}

// Processor owns a Runner and executes submitted commands one at a time on
// its own goroutine, in submission order.
type Processor struct {
	runner    Runner
	logger    *slog.Logger
	requestID uint64
	reqChan   chan Request
	stopChan  chan struct{}
	wg        sync.WaitGroup

	// mu guards stopped and the closing of reqChan against Submit.
	mu      sync.RWMutex
	stopped bool
}

type ProcessorOptional struct {
	// Size of the buffer for incoming requests.
	RequestBufferSize int
}

// NewProcessor creates a new Processor and starts its loop. Optional
// parameters are set via ProcessorOptional.
func NewProcessor(runner Runner, logger *slog.Logger, opt *ProcessorOptional) *Processor {
	bufSize := 100
	if opt != nil && opt.RequestBufferSize > 0 {
		bufSize = opt.RequestBufferSize
	}
	if logger == nil {
		logger = slog.Default()
	}

	p := &Processor{
		runner:   runner,
		logger:   logger,
		reqChan:  make(chan Request, bufSize),
		stopChan: make(chan struct{}),
	}
	p.wg.Add(1)
	go p.run()
	p.logger.Info("[Processor] Started", "buffer", bufSize)
	return p
}

func (p *Processor) run() {
	defer p.wg.Done()
	for {
		// Shutdown wins over queued requests.
		select {
		case <-p.stopChan:
			p.drain()
			return
		default:
		}

		select {
		case req, ok := <-p.reqChan:
			if !ok {
				p.drain()
				return
			}
			out, err := p.runner.Exec(req.Line)
			req.resp <- Response{RequestID: req.RequestID, Output: out, Err: err}
		case <-p.stopChan:
			p.drain()
			return
		}
	}
}

// drain cancels everything still buffered. Stop has closed reqChan.
func (p *Processor) drain() {
	n := 0
	for req := range p.reqChan {
		req.resp <- Response{RequestID: req.RequestID, Err: types.ErrShuttingDown}
		n++
	}
	p.logger.Info("[Processor] Shutdown", "cancelled", n)
}

// Submit queues a command and returns a channel that receives its response.
// After Stop the response is types.ErrShuttingDown.
func (p *Processor) Submit(line string) <-chan Response {
	reqID := atomic.AddUint64(&p.requestID, 1)
	resp := make(chan Response, 1)

	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.stopped {
		resp <- Response{RequestID: reqID, Err: types.ErrShuttingDown}
		return resp
	}
	p.reqChan <- Request{RequestID: reqID, Line: line, resp: resp}
	return resp
}

// Exec submits a command and waits for its result.
func (p *Processor) Exec(line string) (string, error) {
	r := <-p.Submit(line)
	return r.Output, r.Err
}

// Stop rejects new commands, cancels queued ones and waits for the loop to
// exit. A command already running completes.
func (p *Processor) Stop() {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return
	}
	p.stopped = true
	close(p.stopChan)
	close(p.reqChan)
	p.mu.Unlock()

	p.wg.Wait()
}
