package prompts

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrMissingSlot is matched by every MissingSlotError.
var ErrMissingSlot = errors.New("missing template slot")

// MissingSlotError lists declared slots that were not supplied.
type MissingSlotError struct {
	Template string
	Slots    []string
}

func (e *MissingSlotError) Error() string {
	return fmt.Sprintf("template %s: missing slot(s): %s", e.Template, strings.Join(e.Slots, ", "))
}

func (e *MissingSlotError) Is(target error) bool {
	return target == ErrMissingSlot
}

// UnexpectedSlotError lists supplied values the template does not declare.
type UnexpectedSlotError struct {
	Template string
	Slots    []string
}

func (e *UnexpectedSlotError) Error() string {
	return fmt.Sprintf("template %s: unexpected slot(s): %s", e.Template, strings.Join(e.Slots, ", "))
}

// Template is fixed instruction text with {slot} placeholders.
type Template struct {
	Name  string
	Slots []string
	Text  string
}

// Render substitutes values into the template. Every declared slot must be
// present and no undeclared key is accepted. Values are inserted verbatim.
func (t Template) Render(values map[string]string) (string, error) {
	declared := make(map[string]struct{}, len(t.Slots))
	var missing []string
	for _, slot := range t.Slots {
		declared[slot] = struct{}{}
		if _, ok := values[slot]; !ok {
			missing = append(missing, slot)
		}
	}
	if len(missing) > 0 {
		return "", &MissingSlotError{Template: t.Name, Slots: missing}
	}
	var unexpected []string
	for key := range values {
		if _, ok := declared[key]; !ok {
			unexpected = append(unexpected, key)
		}
	}
	if len(unexpected) > 0 {
		sort.Strings(unexpected)
		return "", &UnexpectedSlotError{Template: t.Name, Slots: unexpected}
	}

	pairs := make([]string, 0, 2*len(t.Slots))
	for _, slot := range t.Slots {
		pairs = append(pairs, "{"+slot+"}", values[slot])
	}
	return strings.NewReplacer(pairs...).Replace(t.Text), nil
}
