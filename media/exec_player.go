package media

import (
	"fmt"
	"log"
	"os"
	"os/exec"
	"sync"

	"github.com/lixenwraith/brain-splash/core"
)

// ExecPlayer plays the intro through an external video player process
type ExecPlayer struct {
	command PlayerCommand

	mu  sync.Mutex
	cmd *exec.Cmd
	gen uint64 // Bumped by Play and Stop, a monitor only reports its own generation
	wg  sync.WaitGroup
}

// NewExecPlayer creates a player for a detected command
func NewExecPlayer(command PlayerCommand) *ExecPlayer {
	return &ExecPlayer{command: command}
}

func (p *ExecPlayer) Name() string {
	return p.command.Name
}

// Play starts the player process, a running one is stopped first
func (p *ExecPlayer) Play(path string, onEnded func()) error {
	if path == "" {
		return ErrNoIntro
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("intro %s: %w", path, err)
	}

	p.Stop()

	p.mu.Lock()
	defer p.mu.Unlock()

	args := append(append([]string(nil), p.command.Args...), path)
	cmd := exec.Command(p.command.Path, args...)
	// The terminal belongs to the splash, player output goes nowhere
	cmd.Stdin, cmd.Stdout, cmd.Stderr = nil, nil, nil

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", p.command.Name, err)
	}

	p.gen++
	p.cmd = cmd
	p.wg.Add(1)
	gen := p.gen
	core.Go(func() { p.monitorProcess(cmd, gen, onEnded) })
	return nil
}

// monitorProcess watches for player exit
func (p *ExecPlayer) monitorProcess(cmd *exec.Cmd, gen uint64, onEnded func()) {
	defer p.wg.Done()

	err := cmd.Wait()

	p.mu.Lock()
	current := gen == p.gen
	if current {
		p.cmd = nil
	}
	p.mu.Unlock()

	if !current {
		return
	}
	if err != nil {
		log.Printf("[media] %s exited: %v", p.command.Name, err)
	}
	if onEnded != nil {
		onEnded()
	}
}

// Stop kills a running player and waits for its monitor
func (p *ExecPlayer) Stop() {
	p.mu.Lock()
	p.gen++
	cmd := p.cmd
	p.cmd = nil
	p.mu.Unlock()

	if cmd != nil && cmd.Process != nil {
		if err := cmd.Process.Kill(); err != nil {
			log.Printf("[media] kill %s: %v", p.command.Name, err)
		}
	}
	p.wg.Wait()
}
