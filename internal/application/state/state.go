// Package state defines the closed set of top-level screens the shell can be in.
package state

// ID identifies which top-level screen is active.
type ID int

const (
	Menu ID = iota
	Options
	Playing
	Exit
)

// String returns the string representation of the state
func (s ID) String() string {
	switch s {
	case Menu:
		return "Menu"
	case Options:
		return "Options"
	case Playing:
		return "Playing"
	case Exit:
		return "Exit"
	default:
		return "Unknown"
	}
}

// Valid reports whether s is one of the declared states.
func (s ID) Valid() bool {
	return s >= Menu && s <= Exit
}
