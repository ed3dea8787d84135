package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransitionTable(t *testing.T) {
	cases := []struct {
		name    string
		from    Step
		event   event
		want    Step
		wantErr bool
	}{
		{"shipping submit advances", StepShipping, eventSubmitShipping, StepPayment, false},
		{"shipping cannot submit payment", StepShipping, eventSubmitPayment, StepShipping, true},
		{"shipping cannot go back", StepShipping, eventBack, StepShipping, true},
		{"payment submit advances", StepPayment, eventSubmitPayment, StepConfirmation, false},
		{"payment back returns to shipping", StepPayment, eventBack, StepShipping, false},
		{"payment cannot resubmit shipping", StepPayment, eventSubmitShipping, StepPayment, true},
		{"confirmation is terminal for shipping", StepConfirmation, eventSubmitShipping, StepConfirmation, true},
		{"confirmation is terminal for payment", StepConfirmation, eventSubmitPayment, StepConfirmation, true},
		{"confirmation is terminal for back", StepConfirmation, eventBack, StepConfirmation, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := transition(tc.from, tc.event)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTransition)
				assert.Equal(t, tc.from, got, "failed transitions must not move the step")
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.want, got)
			}
		})
	}
}
