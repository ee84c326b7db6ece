package floatlabel

// ActivationState is the visual mode of the label and border.
type ActivationState int

const (
	Inactive ActivationState = iota
	Active
)

func (s ActivationState) String() string {
	switch s {
	case Inactive:
		return "Inactive"
	case Active:
		return "Active"
	default:
		return "Unknown"
	}
}

// target is the animation progress that renders s.
func (s ActivationState) target() float64 {
	if s == Active {
		return 1
	}
	return 0
}

func stateFor(value string) ActivationState {
	if value != "" {
		return Active
	}
	return Inactive
}
