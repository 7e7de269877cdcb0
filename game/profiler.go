package game

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime/pprof"
	"sync"
	"time"
)

// Profiler captures a short CPU profile when the frame rate collapses,
// so slow ticks can be diagnosed after the fact.
type Profiler struct {
	mu          sync.Mutex
	capturing   bool
	lastCapture time.Time
	cooldown    time.Duration
	dir         string
	duration    time.Duration
}

// NewProfiler creates a profiler writing into ./profiles
func NewProfiler() *Profiler {
	dir := "profiles"
	os.MkdirAll(dir, 0755)
	return &Profiler{
		cooldown: 10 * time.Second,
		dir:      dir,
		duration: 5 * time.Second,
	}
}

// Capture starts an asynchronous CPU profile capture tagged with reason.
// Returns an error when a capture is already running or on cooldown.
func (p *Profiler) Capture(reason string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.capturing {
		return fmt.Errorf("already capturing")
	}
	if time.Since(p.lastCapture) < p.cooldown {
		return fmt.Errorf("capture on cooldown")
	}
	p.capturing = true
	p.lastCapture = time.Now()

	name := fmt.Sprintf("slowdown-%s-%s.pprof", time.Now().Format("20060102-150405"), reason)
	path := filepath.Join(p.dir, name)

	go func() {
		defer func() {
			p.mu.Lock()
			p.capturing = false
			p.mu.Unlock()
		}()

		f, err := os.Create(path)
		if err != nil {
			fmt.Printf("profiler: %v\n", err)
			return
		}
		defer f.Close()

		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Printf("profiler: %v\n", err)
			return
		}
		time.Sleep(p.duration)
		pprof.StopCPUProfile()
		fmt.Printf("profiler: wrote %s\n", path)
	}()
	return nil
}
