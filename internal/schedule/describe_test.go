package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribe(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"daily", "every day"},
		{"every 3 days", "every 3 days"},
		{"weekly", "every week"},
		{"every other week", "every 2 weeks"},
		{"monthly", "every month"},
		{"every weekday", "every weekday"},
		{"FREQ=WEEKLY;BYDAY=SU,SA", "every weekend"},
		{"every monday", "every Monday"},
		{"FREQ=WEEKLY;BYDAY=TU,TH", "every Tuesday, Thursday"},
		{"FREQ=WEEKLY;INTERVAL=2;BYDAY=FR", "every 2 weeks on Friday"},
		{"FREQ=YEARLY", "every year"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			r, err := ParseRecurrence(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, Describe(r))
		})
	}
}
