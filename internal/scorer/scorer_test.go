package scorer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gopkg.in/yaml.v2"

	"github.com/bigredeye/transcripts/internal/config"
	"github.com/bigredeye/transcripts/internal/models"
	"github.com/bigredeye/transcripts/internal/transcripts"
)

const someGradeBook = `
- name: blair
  grades:
    - course: CS101
      grade: 95
    - course: MATH200
      grade: 55
- name: corey
  grades:
    - course: CS101
      grade: 70
- name: del
  grades: []
- name: blair
  grades:
    - course: HIST110
      grade: 80
    - course: CS101
      grade: 70
`

type gradeBook = []struct {
	Name   string
	Grades []models.CourseGrade
}

func loadGradeBook(t *testing.T, data string) (*transcripts.Store, []models.StudentID) {
	book := gradeBook{}
	if err := yaml.Unmarshal([]byte(data), &book); err != nil {
		t.Fatal("Failed to parse grade book:", err)
	}

	store := transcripts.New(transcripts.WithLogger(zaptest.NewLogger(t)))
	ids := make([]models.StudentID, 0, len(book))
	for _, student := range book {
		id := store.AddStudent(student.Name)
		for _, grade := range student.Grades {
			require.NoError(t, store.AddGrade(id, grade.Course, grade))
		}
		ids = append(ids, id)
	}
	return store, ids
}

func newTestScorer(t *testing.T, store TranscriptSource) *Scorer {
	s := NewScorer(config.Default(), store, zaptest.NewLogger(t))
	t.Cleanup(s.Close)
	return s
}

func TestStudentScores(t *testing.T) {
	store, ids := loadGradeBook(t, someGradeBook)
	s := newTestScorer(t, store)

	scores, err := s.StudentScores(ids[0])
	require.NoError(t, err)

	expected := &StudentScores{
		User: User{ID: ids[0], Name: "blair", Handle: "blair"},
		Courses: []ScoredCourse{
			{Course: "CS101", Grade: 95, Status: CourseStatusPassed},
			{Course: "MATH200", Grade: 55, Status: CourseStatusFailed},
		},
		Total:   150,
		Average: 75,
		Passed:  1,
	}
	if diff := cmp.Diff(expected, scores); diff != "" {
		t.Fatalf("Unexpected scores (-want +got):\n%s", diff)
	}
}

func TestStudentScoresEmptyTranscript(t *testing.T) {
	store, ids := loadGradeBook(t, someGradeBook)
	s := newTestScorer(t, store)

	scores, err := s.StudentScores(ids[2])
	require.NoError(t, err)
	require.Empty(t, scores.Courses)
	require.Zero(t, scores.Average)
	require.Zero(t, scores.Total)
}

func TestStudentScoresUnknownStudent(t *testing.T) {
	store, _ := loadGradeBook(t, someGradeBook)
	s := newTestScorer(t, store)

	_, err := s.StudentScores("100500")
	require.Error(t, err)
	require.True(t, transcripts.IsNotFound(err))
}

func TestStudentScoresSeesNewGrades(t *testing.T) {
	store, ids := loadGradeBook(t, someGradeBook)
	s := newTestScorer(t, store)

	before, err := s.StudentScores(ids[1])
	require.NoError(t, err)
	require.Equal(t, 70.0, before.Average)

	require.NoError(t, store.AddGrade(ids[1], "MATH200", models.CourseGrade{Course: "MATH200", Grade: 90}))

	after, err := s.StudentScores(ids[1])
	require.NoError(t, err)
	require.Equal(t, 80.0, after.Average)
	require.Len(t, after.Courses, 2)
}

func TestStudentScoresAreCopies(t *testing.T) {
	store, ids := loadGradeBook(t, someGradeBook)
	s := newTestScorer(t, store)

	first, err := s.StudentScores(ids[0])
	require.NoError(t, err)
	first.Courses[0].Grade = 0
	first.Total = 0

	second, err := s.StudentScores(ids[0])
	require.NoError(t, err)
	require.Equal(t, 95, second.Courses[0].Grade)
	require.Equal(t, 150, second.Total)
}

func TestStandings(t *testing.T) {
	store, ids := loadGradeBook(t, someGradeBook)
	s := newTestScorer(t, store)

	standings, err := s.Standings()
	require.NoError(t, err)

	order := make([]models.StudentID, 0, len(standings.Students))
	for _, scores := range standings.Students {
		order = append(order, scores.User.ID)
	}
	// Both blairs average 75 and keep registration order.
	require.Equal(t, []models.StudentID{ids[0], ids[3], ids[1], ids[2]}, order)
}

func TestStandingsEmptyStore(t *testing.T) {
	s := newTestScorer(t, transcripts.New())

	standings, err := s.Standings()
	require.NoError(t, err)
	require.Empty(t, standings.Students)
}

func TestMakeHandle(t *testing.T) {
	s := newTestScorer(t, transcripts.New())

	require.Equal(t, "blair", s.MakeHandle("blair"))
	require.Equal(t, "blair-oneil", s.MakeHandle("  Blair O'Neil "))
	require.Equal(t, "mary-jane-watson", s.MakeHandle("Mary-Jane   Watson"))
	require.Equal(t, "", s.MakeHandle(""))

	for _, r := range s.MakeHandle("Алексей Zoë") {
		require.Less(t, r, rune(128))
	}
}
