package scorer

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/alexsergivan/transliterator"
	"github.com/karlseguin/ccache/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/exp/slices"

	"github.com/bigredeye/transcripts/internal/config"
	lf "github.com/bigredeye/transcripts/internal/logfield"
	"github.com/bigredeye/transcripts/internal/models"
)

type TranscriptSource interface {
	GetTranscript(id models.StudentID) (*models.Transcript, error)
	ListStudents() []models.Student
}

type Scorer struct {
	conf     *config.Config
	store    TranscriptSource
	cache    *ccache.Cache
	translit *transliterator.Transliterator
	logger   *zap.Logger
}

func NewScorer(conf *config.Config, store TranscriptSource, logger *zap.Logger) *Scorer {
	return &Scorer{
		conf:     conf,
		store:    store,
		cache:    ccache.New(ccache.Configure().MaxSize(conf.Scoring.CacheSize)),
		translit: transliterator.NewTransliterator(nil),
		logger:   logger.With(lf.Module("scorer")),
	}
}

func (s *Scorer) Close() {
	s.cache.Stop()
}

// Transcripts only grow, so the number of grades identifies a version.
func cacheKey(transcript *models.Transcript) string {
	return fmt.Sprintf("%d:%s", len(transcript.Grades), transcript.Student.ID)
}

func (s *Scorer) StudentScores(id models.StudentID) (*StudentScores, error) {
	transcript, err := s.store.GetTranscript(id)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to load transcript")
	}

	item, err := s.cache.Fetch(cacheKey(transcript), s.conf.Scoring.CacheTTL, func() (interface{}, error) {
		s.logger.Debug("Scoring transcript", lf.StudentID(id), zap.Int("num_grades", len(transcript.Grades)))
		return s.score(transcript), nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "Failed to score transcript")
	}

	scores := *item.Value().(*StudentScores)
	scores.Courses = slices.Clone(scores.Courses)
	return &scores, nil
}

func (s *Scorer) score(transcript *models.Transcript) *StudentScores {
	scores := &StudentScores{
		User: User{
			ID:     transcript.Student.ID,
			Name:   transcript.Student.Name,
			Handle: s.MakeHandle(transcript.Student.Name),
		},
		Courses: make([]ScoredCourse, 0, len(transcript.Grades)),
	}

	for _, grade := range transcript.Grades {
		course := ScoredCourse{
			Course: grade.Course,
			Grade:  grade.Grade,
			Status: CourseStatusFailed,
		}
		if grade.Grade >= s.conf.Scoring.PassingGrade {
			course.Status = CourseStatusPassed
			scores.Passed++
		}
		scores.Courses = append(scores.Courses, course)
		scores.Total += grade.Grade
	}

	if len(scores.Courses) > 0 {
		scores.Average = float64(scores.Total) / float64(len(scores.Courses))
	}
	return scores
}

func (s *Scorer) Standings() (*Standings, error) {
	students := s.store.ListStudents()

	scores := make([]*StudentScores, len(students))
	for i, student := range students {
		studentScores, err := s.StudentScores(student.ID)
		if err != nil {
			return nil, err
		}
		scores[i] = studentScores
	}

	sort.SliceStable(scores, func(i, j int) bool {
		if scores[i].Average != scores[j].Average {
			return scores[i].Average > scores[j].Average
		}
		return scores[i].User.Name < scores[j].User.Name
	})

	return &Standings{Students: scores}, nil
}

// MakeHandle turns a free-form name into a lowercase ASCII slug.
func (s *Scorer) MakeHandle(name string) string {
	transliterated := s.translit.Transliterate(name, "en")

	var b strings.Builder
	dash := false
	for _, r := range transliterated {
		switch {
		case r == '\'':
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			dash = false
			b.WriteRune(unicode.ToLower(r))
		default:
			dash = true
		}
	}
	return b.String()
}
