package domain

import "fmt"

// Difficulty labels a puzzle by its given-cell count.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Hard:
		return "hard"
	default:
		return "medium"
	}
}

// MarshalText encodes the difficulty as its lowercase label.
func (d Difficulty) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText decodes a lowercase difficulty label.
func (d *Difficulty) UnmarshalText(text []byte) error {
	switch string(text) {
	case "easy":
		*d = Easy
	case "medium":
		*d = Medium
	case "hard":
		*d = Hard
	default:
		return fmt.Errorf("unknown difficulty %q", text)
	}
	return nil
}
