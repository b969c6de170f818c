package config

import "fmt"

// Model is the unified, format-agnostic representation of the entire
// application configuration: every wave the run should execute.
type Model struct {
	Waves []*Wave
}

// Wave is the format-agnostic representation of a `wave` block.
type Wave struct {
	Name   string
	Rows   int
	Cols   int
	Rounds int
	// Expect is the optional per-round result to check against; nil means
	// the wave runs unchecked.
	Expect *int
}

// Validate checks the model for problems that loading alone cannot catch:
// duplicate wave names and out-of-range numbers. It reports the first
// problem found.
func (m *Model) Validate() error {
	seen := make(map[string]struct{}, len(m.Waves))
	for _, wave := range m.Waves {
		if wave.Name == "" {
			return fmt.Errorf("config: wave with empty name")
		}
		if _, dup := seen[wave.Name]; dup {
			return fmt.Errorf("config: duplicate wave name %q", wave.Name)
		}
		seen[wave.Name] = struct{}{}

		if wave.Rows < 1 || wave.Cols < 1 {
			return fmt.Errorf("config: wave %q: dimensions must be positive, got %dx%d", wave.Name, wave.Rows, wave.Cols)
		}
		if wave.Rounds < 0 {
			return fmt.Errorf("config: wave %q: rounds must be non-negative, got %d", wave.Name, wave.Rounds)
		}
	}
	return nil
}
