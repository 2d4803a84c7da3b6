// Package ptydriver runs a child process under a pseudo-terminal and
// exposes its output as a blocking byte stream, coordinating three
// cooperating goroutines: the caller's own (the parsing loop, reading
// PTY output), a dedicated writer goroutine (owns the PTY master
// writer, so device-report write-back can never deadlock the parsing
// loop), and an optional timeout goroutine that kills the child and
// lets the parsing loop wind down naturally.
package ptydriver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/creack/pty"
	"github.com/rs/zerolog"
)

// State is the run's lifecycle stage.
type State int32

const (
	StateStarting State = iota
	StateFeeding
	StateFinished
	StateTimedOut
)

func (s State) String() string {
	switch s {
	case StateStarting:
		return "starting"
	case StateFeeding:
		return "feeding"
	case StateFinished:
		return "finished"
	case StateTimedOut:
		return "timed-out"
	default:
		return "unknown"
	}
}

// Config describes the child process to run.
type Config struct {
	Command string
	Args    []string
	Env     []string
	Dir     string
	Cols    int
	Rows    int
	Timeout time.Duration // zero disables the timeout goroutine
	Log     zerolog.Logger
}

// writeMsg is one entry in the writer goroutine's bounded queue.
type writeMsg struct {
	data  []byte
	flush bool
}

// Driver owns a running child's PTY master, its write queue, and the
// goroutines coordinating timeout and shutdown.
type Driver struct {
	ptmx *os.File
	cmd  *exec.Cmd
	log  zerolog.Logger

	writeCh chan writeMsg

	sinkMu sync.Mutex
	sink   io.Writer // swapped to io.Discard on detach

	state     atomic.Int32
	detached  atomic.Bool
	stopTimer chan struct{}

	writerDone chan struct{}
}

// queueCapacity bounds the writer's message queue; a full queue makes
// Write block, which is the back-pressure the spec calls for.
const queueCapacity = 256

// Start spawns cfg.Command under a new PTY of size cfg.Cols x cfg.Rows
// and begins the writer (and, if cfg.Timeout is set, the timeout)
// goroutine. The caller drives the parsing loop itself via Run.
func Start(cfg Config) (*Driver, error) {
	cmd := exec.Command(cfg.Command, cfg.Args...)
	if cfg.Env != nil {
		cmd.Env = cfg.Env
	}
	if cfg.Dir != "" {
		cmd.Dir = cfg.Dir
	}

	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{
		Rows: uint16(cfg.Rows),
		Cols: uint16(cfg.Cols),
	})
	if err != nil {
		return nil, fmt.Errorf("ptydriver: start: %w", err)
	}

	d := &Driver{
		ptmx:       ptmx,
		cmd:        cmd,
		log:        cfg.Log,
		writeCh:    make(chan writeMsg, queueCapacity),
		sink:       ptmx,
		stopTimer:  make(chan struct{}),
		writerDone: make(chan struct{}),
	}
	d.state.Store(int32(StateStarting))

	go d.writerLoop()
	if cfg.Timeout > 0 {
		go d.timeoutLoop(cfg.Timeout)
	}

	d.state.Store(int32(StateFeeding))
	return d, nil
}

// State reports the driver's current lifecycle stage.
func (d *Driver) State() State { return State(d.state.Load()) }

// Write enqueues data for the writer goroutine. It blocks once the
// queue is full rather than dropping data, giving the caller implicit
// back-pressure against a child that isn't reading.
func (d *Driver) Write(data []byte) {
	cp := make([]byte, len(data))
	copy(cp, data)
	d.writeCh <- writeMsg{data: cp}
}

// Flush enqueues a flush marker; the writer goroutine syncs the
// underlying sink, if it supports Sync, when it reaches this entry.
func (d *Driver) Flush() {
	d.writeCh <- writeMsg{flush: true}
}

// Resize changes the PTY window size.
func (d *Driver) Resize(cols, rows int) error {
	return pty.Setsize(d.ptmx, &pty.Winsize{Rows: uint16(rows), Cols: uint16(cols)})
}

// Run is the parsing loop: it blocks reading PTY output, calling onData
// for every chunk read, until EOF, a fatal read error, or ctx is
// cancelled. It returns nil on a clean EOF (including the EOF produced
// by draining after a timeout kill). EIO, which a Linux PTY master
// reports once the child side has closed, counts as EOF.
func (d *Driver) Run(ctx context.Context, onData func([]byte) error) error {
	buf := make([]byte, 4096)
	for {
		if err := ctx.Err(); err != nil {
			d.shutdown()
			return err
		}

		n, err := d.ptmx.Read(buf)
		if n > 0 {
			if cbErr := onData(buf[:n]); cbErr != nil {
				d.shutdown()
				return cbErr
			}
		}
		if err == nil {
			continue
		}
		if errors.Is(err, io.EOF) || errors.Is(err, syscall.EIO) {
			d.shutdown()
			return nil
		}
		if d.detached.Load() && isBenignAfterDetach(err) {
			d.shutdown()
			return nil
		}
		d.shutdown()
		return fmt.Errorf("ptydriver: read: %w", err)
	}
}

// shutdown reaps the child, stops the writer and timeout goroutines,
// detaches the writer sink, and closes the PTY handle. Safe to call
// more than once.
func (d *Driver) shutdown() {
	if d.detached.Load() {
		return // already shut down
	}
	if d.state.Load() != int32(StateTimedOut) {
		d.state.Store(int32(StateFinished))
	}

	select {
	case <-d.stopTimer:
	default:
		close(d.stopTimer)
	}

	d.detach()

	close(d.writeCh)
	<-d.writerDone

	_ = d.cmd.Wait()
	_ = d.ptmx.Close()
}

// detach redirects future writes to a sink, so pending or in-flight
// writes after the child is gone are silently discarded instead of
// erroring.
func (d *Driver) detach() {
	d.detached.Store(true)
	d.sinkMu.Lock()
	d.sink = io.Discard
	d.sinkMu.Unlock()
}

func (d *Driver) writerLoop() {
	defer close(d.writerDone)
	for msg := range d.writeCh {
		d.sinkMu.Lock()
		sink := d.sink
		d.sinkMu.Unlock()

		if msg.flush {
			if f, ok := sink.(interface{ Sync() error }); ok {
				_ = f.Sync()
			}
			continue
		}
		if _, err := sink.Write(msg.data); err != nil {
			d.log.Debug().Err(err).Msg("ptydriver: write to detached sink ignored")
		}
	}
}

func (d *Driver) timeoutLoop(timeout time.Duration) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case <-timer.C:
		d.state.Store(int32(StateTimedOut))
		d.log.Warn().Dur("timeout", timeout).Msg("ptydriver: child timed out, killing")
		if d.cmd.Process != nil {
			_ = d.cmd.Process.Kill()
		}
	case <-d.stopTimer:
	}
}

func isBenignAfterDetach(err error) bool {
	if errors.Is(err, os.ErrClosed) {
		return true
	}
	var pe *os.PathError
	if errors.As(err, &pe) {
		return true
	}
	return false
}
