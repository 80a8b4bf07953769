package player

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"sync"

	"github.com/custodia-labs/clipseek/internal/core/domain"
	"github.com/custodia-labs/clipseek/internal/core/ports/driven"
	"github.com/custodia-labs/clipseek/internal/logger"
)

// Verify interface compliance.
var _ driven.Player = (*ProcessPlayer)(nil)

// StartFailureCode is reported when the player process could not start.
const StartFailureCode = -1

const eventBuffer = 8

// ProcessPlayer plays one video at a time in an external process.
// A process that exits on its own reports Ended (exit status 0) or Error
// (any other status). A process replaced by Load or killed by Destroy
// reports nothing.
type ProcessPlayer struct {
	command string
	args    []string
	events  chan domain.PlayerEvent

	mu      sync.Mutex
	current *process
}

type process struct {
	cmd     *exec.Cmd
	videoID string
	stop    chan struct{}
}

// NewProcessPlayer creates a player from the player section of the app config.
func NewProcessPlayer(cfg domain.PlayerConfig) *ProcessPlayer {
	command := cfg.Command
	if command == "" {
		command = domain.DefaultPlayerCommand
	}
	return &ProcessPlayer{
		command: command,
		args:    append([]string(nil), cfg.Args...),
		events:  make(chan domain.PlayerEvent, eventBuffer),
	}
}

// Load starts the player for videoID, killing any running process first.
// It fails only when the player command cannot be found; a process that
// fails to start is reported as an Error event so autoplay can skip it.
func (p *ProcessPlayer) Load(ctx context.Context, videoID string) error {
	if videoID == "" {
		return fmt.Errorf("%w: empty video id", domain.ErrInvalidInput)
	}
	path, err := exec.LookPath(p.command)
	if err != nil {
		return fmt.Errorf("player command %q: %w", p.command, err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopLocked()

	args := append(append([]string(nil), p.args...), domain.Video{ID: videoID}.WatchURL())
	proc := &process{
		cmd:     exec.Command(path, args...),
		videoID: videoID,
		stop:    make(chan struct{}),
	}
	p.current = proc

	logger.Debug("player: starting %s for %s", p.command, videoID)

	if err := proc.cmd.Start(); err != nil {
		logger.Warn("player: start %s: %v", p.command, err)
		go p.emit(proc, domain.PlayerEvent{Kind: domain.PlayerError, VideoID: videoID, Code: StartFailureCode})
		return nil
	}

	go p.run(proc)
	return nil
}

// Destroy kills the running process, if any.
func (p *ProcessPlayer) Destroy() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopLocked()
	return nil
}

// Events delivers lifecycle events of the loaded video.
func (p *ProcessPlayer) Events() <-chan domain.PlayerEvent {
	return p.events
}

// stopLocked silences and kills the current process. Caller holds mu.
func (p *ProcessPlayer) stopLocked() {
	proc := p.current
	if proc == nil {
		return
	}
	p.current = nil
	close(proc.stop)

	if proc.cmd.Process != nil {
		if err := proc.cmd.Process.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
			logger.Debug("player: kill %s: %v", proc.videoID, err)
		}
	}
}

// run reports Ready, then waits for the process to exit.
func (p *ProcessPlayer) run(proc *process) {
	p.emit(proc, domain.PlayerEvent{Kind: domain.PlayerReady, VideoID: proc.videoID})

	err := proc.cmd.Wait()

	ev := domain.PlayerEvent{Kind: domain.PlayerEnded, VideoID: proc.videoID}
	if err != nil {
		ev.Kind = domain.PlayerError
		ev.Code = StartFailureCode
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			ev.Code = exitErr.ExitCode()
		}
	}

	p.mu.Lock()
	live := p.current == proc
	if live {
		p.current = nil
	}
	p.mu.Unlock()

	if !live {
		return
	}
	logger.Debug("player: %s exited: %s code=%d", proc.videoID, ev.Kind, ev.Code)
	p.emit(proc, ev)
}

// emit delivers ev unless the process has been replaced or destroyed.
// An exited process is no longer current, so its stop channel is left open
// and the event is delivered once a reader is ready.
func (p *ProcessPlayer) emit(proc *process, ev domain.PlayerEvent) {
	select {
	case <-proc.stop:
	case p.events <- ev:
	}
}
