package safety

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	c := New()

	tests := []struct {
		name          string
		input         string
		wantSensitive bool
		wantUrgent    bool
	}{
		{
			name:          "no place to stay tonight is urgent only",
			input:         "no place to stay tonight",
			wantSensitive: false,
			wantUrgent:    true,
		},
		{
			name:          "self harm is sensitive",
			input:         "I want to hurt myself",
			wantSensitive: true,
			wantUrgent:    false,
		},
		{
			name:          "chinese self harm",
			input:         "我不想活了",
			wantSensitive: true,
			wantUrgent:    false,
		},
		{
			name:          "chinese homelessness",
			input:         "我无家可归",
			wantSensitive: false,
			wantUrgent:    true,
		},
		{
			name:          "both signals set both flags",
			input:         "I was evicted and I want to end my life",
			wantSensitive: true,
			wantUrgent:    true,
		},
		{
			name:          "case insensitive",
			input:         "HOMELESS tonight",
			wantSensitive: false,
			wantUrgent:    true,
		},
		{
			name:          "ordinary query matches nothing",
			input:         "chas clinic subsidy",
			wantSensitive: false,
			wantUrgent:    false,
		},
		{
			name:          "empty input matches nothing",
			input:         "",
			wantSensitive: false,
			wantUrgent:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := c.Classify(tt.input)
			assert.Equal(t, tt.wantSensitive, got.Sensitive, "sensitive")
			assert.Equal(t, tt.wantUrgent, got.Urgent, "urgent")
		})
	}
}
