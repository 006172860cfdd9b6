package transcripts

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestErrorsSurviveWrapping(t *testing.T) {
	notFound := errors.Wrap(&NotFound{Missing: MissingStudent, Student: "7"}, "Failed to load transcript")
	require.True(t, IsNotFound(notFound))
	require.False(t, IsConflict(notFound))
	require.Equal(t, "Failed to load transcript: unknown student 7", notFound.Error())

	conflict := errors.Wrap(&Conflict{Student: "7", Course: "CS101", Existing: 95}, "Failed to add grade")
	require.True(t, IsConflict(conflict))
	require.False(t, IsNotFound(conflict))
	require.Equal(t, `Failed to add grade: student 7 already has grade 95 for course "CS101"`, conflict.Error())
}

func TestNotFoundMessages(t *testing.T) {
	require.Equal(t, `student 7 has no grade for course "CS101"`,
		(&NotFound{Missing: MissingGrade, Student: "7", Course: "CS101"}).Error())
	require.False(t, IsNotFound(nil))
}
