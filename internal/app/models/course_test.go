package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCourseStatusNormalizesVariants(t *testing.T) {
	cases := map[string]CourseStatus{
		"NOT_STARTED": StatusNotStarted,
		"not-started": StatusNotStarted,
		"not_started": StatusNotStarted,
		"In-Progress": StatusInProgress,
		"IN_PROGRESS": StatusInProgress,
		"completed":   StatusCompleted,
		"COMPLETED":   StatusCompleted,
	}

	for input, want := range cases {
		got, ok := ParseCourseStatus(input)
		assert.True(t, ok, "input %q", input)
		assert.Equal(t, want, got, "input %q", input)
	}
}

func TestParseCourseStatusRejectsUnknownValues(t *testing.T) {
	for _, input := range []string{"", "done", "PAUSED", "100"} {
		_, ok := ParseCourseStatus(input)
		assert.False(t, ok, "input %q", input)
	}
}
