package weather

import (
	"fmt"
	"strings"
)

// Condition is the reported weather condition group and its human-readable
// description, for example "Rain" / "light rain".
type Condition struct {
	main        string
	description string
}

// NewCondition creates a Condition. Neither field may be blank.
func NewCondition(main, description string) (Condition, error) {
	if strings.TrimSpace(main) == "" {
		return Condition{}, fmt.Errorf("condition main must not be blank")
	}
	if strings.TrimSpace(description) == "" {
		return Condition{}, fmt.Errorf("condition description must not be blank")
	}
	return Condition{main: main, description: description}, nil
}

// Main returns the condition group, for example "Clouds".
func (c Condition) Main() string {
	return c.main
}

// Description returns the condition description, for example "broken clouds".
func (c Condition) Description() string {
	return c.description
}

func (c Condition) String() string {
	return c.main + ": " + c.description
}
