package ui

// AppMode represents the top-level application mode.
type AppMode int

const (
	ModeGrid AppMode = iota
	ModeMonitors
)

func (m AppMode) String() string {
	switch m {
	case ModeGrid:
		return "Grid"
	case ModeMonitors:
		return "Monitors"
	default:
		return "Unknown"
	}
}
