package checkout

import "errors"

// ErrInvalidTransition is returned for any step/event pair the wizard
// does not permit, including anything after confirmation (terminal).
var ErrInvalidTransition = errors.New("invalid checkout transition")

type event int

const (
	eventSubmitShipping event = iota
	eventSubmitPayment
	eventBack
)

// transition is the single place checkout step movement is decided. All
// guards live here rather than being scattered across handlers.
func transition(s Step, e event) (Step, error) {
	switch s {
	case StepShipping:
		if e == eventSubmitShipping {
			return StepPayment, nil
		}
	case StepPayment:
		switch e {
		case eventSubmitPayment:
			return StepConfirmation, nil
		case eventBack:
			return StepShipping, nil
		}
	case StepConfirmation:
		// terminal: the only available action is navigating away
	}
	return s, ErrInvalidTransition
}
