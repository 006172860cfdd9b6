package transcripts

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/exp/slices"

	"github.com/bigredeye/transcripts/internal/config"
	lf "github.com/bigredeye/transcripts/internal/logfield"
	"github.com/bigredeye/transcripts/internal/models"
)

// maxIDAttempts bounds how many times AddStudent redraws an identity that
// the source has already issued.
const maxIDAttempts = 16

type record struct {
	student models.Student
	grades  []models.CourseGrade
	courses map[string]int
}

// Store keeps students and their transcripts in memory. All methods are safe
// for concurrent use.
type Store struct {
	mu sync.RWMutex

	ids    IDSource
	logger *zap.Logger

	students map[models.StudentID]*record
	order    []models.StudentID
	byName   map[string][]models.StudentID
}

type Option interface {
	apply(s *Store)
}

type optionFunc func(s *Store)

func (f optionFunc) apply(s *Store) {
	f(s)
}

func WithIDSource(ids IDSource) Option {
	return optionFunc(func(s *Store) {
		s.ids = ids
	})
}

func WithLogger(logger *zap.Logger) Option {
	return optionFunc(func(s *Store) {
		s.logger = logger
	})
}

func New(options ...Option) *Store {
	s := &Store{
		ids:      &Sequential{},
		logger:   zap.NewNop(),
		students: make(map[models.StudentID]*record),
		order:    make([]models.StudentID, 0),
		byName:   make(map[string][]models.StudentID),
	}
	for _, option := range options {
		option.apply(s)
	}
	s.logger = s.logger.With(lf.Module("transcripts"))
	return s
}

func NewFromConfig(conf *config.Config, logger *zap.Logger) (*Store, error) {
	ids, err := NewIDSource(conf.Store.IDs)
	if err != nil {
		return nil, err
	}
	return New(WithIDSource(ids), WithLogger(logger)), nil
}

func (s *Store) AddStudent(name string) models.StudentID {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID()
	s.students[id] = &record{
		student: models.Student{ID: id, Name: name},
		grades:  make([]models.CourseGrade, 0),
		courses: make(map[string]int),
	}
	s.order = append(s.order, id)
	s.byName[name] = append(s.byName[name], id)

	s.logger.Debug("Registered student", lf.StudentID(id), lf.StudentName(name))
	return id
}

func (s *Store) nextID() models.StudentID {
	for i := 0; i < maxIDAttempts; i++ {
		id := s.ids.Next()
		if _, taken := s.students[id]; !taken {
			return id
		}
		s.logger.Warn("ID source returned an issued identity", lf.StudentID(id))
	}
	panic(fmt.Sprintf("id source returned issued identities %d times in a row", maxIDAttempts))
}

// FindStudentsByName returns identities registered under exactly this name,
// oldest first.
func (s *Store) FindStudentsByName(name string) []models.StudentID {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.byName[name]
	if ids == nil {
		return make([]models.StudentID, 0)
	}
	return slices.Clone(ids)
}

func (s *Store) ListStudents() []models.Student {
	s.mu.RLock()
	defer s.mu.RUnlock()

	students := make([]models.Student, 0, len(s.order))
	for _, id := range s.order {
		students = append(students, s.students[id].student)
	}
	return students
}

func (s *Store) GetTranscript(id models.StudentID) (*models.Transcript, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, found := s.students[id]
	if !found {
		return nil, &NotFound{Missing: MissingStudent, Student: id}
	}
	return &models.Transcript{
		Student: rec.student,
		Grades:  slices.Clone(rec.grades),
	}, nil
}

func (s *Store) GetGrade(id models.StudentID, course string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, found := s.students[id]
	if !found {
		return 0, &NotFound{Missing: MissingStudent, Student: id}
	}
	idx, found := rec.courses[course]
	if !found {
		return 0, &NotFound{Missing: MissingGrade, Student: id, Course: course}
	}
	return rec.grades[idx].Grade, nil
}

// AddGrade records the student's grade for course. A course can be graded
// only once; later attempts fail with *Conflict and leave the first grade
// in place. The recorded grade always carries course as its identifier,
// whatever grade.Course says.
func (s *Store) AddGrade(id models.StudentID, course string, grade models.CourseGrade) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	log := s.logger.With(lf.StudentID(id), lf.Course(course), lf.Grade(grade.Grade))

	rec, found := s.students[id]
	if !found {
		log.Warn("Rejected grade for unknown student")
		return &NotFound{Missing: MissingStudent, Student: id}
	}
	if idx, graded := rec.courses[course]; graded {
		log.Warn("Rejected duplicate grade")
		return &Conflict{Student: id, Course: course, Existing: rec.grades[idx].Grade}
	}

	rec.courses[course] = len(rec.grades)
	rec.grades = append(rec.grades, models.CourseGrade{Course: course, Grade: grade.Grade})

	log.Debug("Recorded grade")
	return nil
}
