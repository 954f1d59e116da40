package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTaskStatus(t *testing.T) {
	tests := []struct {
		raw     string
		want    TaskStatus
		wantErr bool
	}{
		{raw: "0", want: StatusPlanned},
		{raw: "3", want: StatusArchived},
		{raw: "Planned", want: StatusPlanned},
		{raw: "in_progress", want: StatusInProgress},
		{raw: "In Progress", want: StatusInProgress},
		{raw: "inprogress", want: StatusInProgress},
		{raw: " COMPLETED ", want: StatusCompleted},
		{raw: "archived", want: StatusArchived},
		{raw: "4", wantErr: true},
		{raw: "-1", wantErr: true},
		{raw: "done", wantErr: true},
		{raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseTaskStatus(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTaskStatus_StringAndOpen(t *testing.T) {
	assert.Equal(t, "InProgress", StatusInProgress.String())
	assert.Equal(t, "TaskStatus(9)", TaskStatus(9).String())

	for _, s := range AllStatuses {
		assert.True(t, s.IsValid())
		parsed, err := ParseTaskStatus(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}
	assert.True(t, StatusPlanned.IsOpen())
	assert.True(t, StatusInProgress.IsOpen())
	assert.False(t, StatusCompleted.IsOpen())
	assert.False(t, StatusArchived.IsOpen())
}
