package export

import (
	"fmt"
	"path/filepath"
)

// Planner generates deterministic relative output paths, numbering
// collisions so repeated base names never overwrite each other.
type Planner struct {
	used map[string]int
}

// NewPlanner creates a path planner with collision tracking.
func NewPlanner() *Planner {
	return &Planner{used: make(map[string]int)}
}

// Next returns the next unique relative file path for the base name. The
// base is expected to be file-safe already; ext includes the dot.
func (p *Planner) Next(dir, base, ext string) string {
	key := dir + "\x00" + base + ext

	p.used[key]++
	count := p.used[key]

	filename := base
	if count > 1 {
		filename = fmt.Sprintf("%s-%d", base, count-1)
	}
	filename += ext

	if dir == "" {
		return filename
	}

	return filepath.Join(dir, filename)
}
