package shell

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	lf "github.com/bigredeye/transcripts/internal/logfield"
	"github.com/bigredeye/transcripts/internal/models"
	"github.com/bigredeye/transcripts/internal/scorer"
	"github.com/bigredeye/transcripts/internal/transcripts"
)

var ErrQuit = errors.New("quit")

type command struct {
	usage   string
	minArgs int
	maxArgs int
	run     func(i *Interpreter, args []string) error
}

var commands map[string]command

var commandOrder = []string{"add", "find", "grade", "get", "transcript", "summary", "standings", "help", "quit"}

// Filled in init: help reads commands, so a package-level literal would be an
// initialization cycle.
func init() {
	commands = map[string]command{
		"add":        {"add <name...>", 1, -1, (*Interpreter).add},
		"find":       {"find <name...>", 1, -1, (*Interpreter).find},
		"grade":      {"grade <id> <course> <score>", 3, 3, (*Interpreter).grade},
		"get":        {"get <id> <course>", 2, 2, (*Interpreter).get},
		"transcript": {"transcript <id>", 1, 1, (*Interpreter).transcript},
		"summary":    {"summary <id>", 1, 1, (*Interpreter).summary},
		"standings":  {"standings", 0, 0, (*Interpreter).standings},
		"help":       {"help", 0, 0, (*Interpreter).help},
		"quit":       {"quit", 0, 0, func(*Interpreter, []string) error { return ErrQuit }},
	}
}

type Interpreter struct {
	store  *transcripts.Store
	scorer *scorer.Scorer
	out    io.Writer
	logger *zap.Logger
}

func NewInterpreter(store *transcripts.Store, scorer *scorer.Scorer, out io.Writer, logger *zap.Logger) *Interpreter {
	return &Interpreter{
		store:  store,
		scorer: scorer,
		out:    out,
		logger: logger.With(lf.Module("shell")),
	}
}

// Run executes commands line by line until EOF or quit. Command failures are
// reported to the output and do not stop the session.
func (i *Interpreter) Run(in io.Reader, prompt string) error {
	reader := bufio.NewReader(in)
	for {
		if len(prompt) > 0 {
			fmt.Fprint(i.out, prompt)
		}

		line, readErr := reader.ReadString('\n')
		if len(line) > 0 {
			err := i.Execute(strings.TrimRight(line, "\r\n"))
			if errors.Is(err, ErrQuit) {
				return nil
			}
			if err != nil {
				fmt.Fprintf(i.out, "error: %s\n", err)
			}
		}

		if readErr == io.EOF {
			return nil
		}
		if readErr != nil {
			return errors.Wrap(readErr, "Failed to read commands")
		}
	}
}

func (i *Interpreter) Execute(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return nil
	}

	name, args := fields[0], fields[1:]
	cmd, found := commands[name]
	if !found {
		return fmt.Errorf("unknown command %q, try help", name)
	}
	if len(args) < cmd.minArgs || (cmd.maxArgs >= 0 && len(args) > cmd.maxArgs) {
		return fmt.Errorf("usage: %s", cmd.usage)
	}

	i.logger.Debug("Running command", lf.Command(name), zap.Strings("args", args))
	return cmd.run(i, args)
}

// Names spanning several words are joined back with single spaces.
func (i *Interpreter) add(args []string) error {
	id := i.store.AddStudent(strings.Join(args, " "))
	fmt.Fprintln(i.out, id)
	return nil
}

func (i *Interpreter) find(args []string) error {
	ids := i.store.FindStudentsByName(strings.Join(args, " "))
	if len(ids) == 0 {
		fmt.Fprintln(i.out, "no students")
		return nil
	}
	for _, id := range ids {
		fmt.Fprintln(i.out, id)
	}
	return nil
}

func (i *Interpreter) grade(args []string) error {
	id, course := models.StudentID(args[0]), args[1]
	score, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("score must be an integer, got %q", args[2])
	}

	err = i.store.AddGrade(id, course, models.CourseGrade{Course: course, Grade: score})
	if err != nil {
		return err
	}
	fmt.Fprintln(i.out, "ok")
	return nil
}

func (i *Interpreter) get(args []string) error {
	grade, err := i.store.GetGrade(models.StudentID(args[0]), args[1])
	if err != nil {
		return err
	}
	fmt.Fprintln(i.out, grade)
	return nil
}

func (i *Interpreter) transcript(args []string) error {
	transcript, err := i.store.GetTranscript(models.StudentID(args[0]))
	if err != nil {
		return err
	}

	fmt.Fprintf(i.out, "%s\t%s\n", transcript.Student.ID, transcript.Student.Name)
	for _, grade := range transcript.Grades {
		fmt.Fprintf(i.out, "\t%s\t%d\n", grade.Course, grade.Grade)
	}
	return nil
}

func (i *Interpreter) summary(args []string) error {
	scores, err := i.scorer.StudentScores(models.StudentID(args[0]))
	if err != nil {
		return err
	}

	fmt.Fprintf(i.out, "%s\t%s\t@%s\n", scores.User.ID, scores.User.Name, scores.User.Handle)
	for _, course := range scores.Courses {
		fmt.Fprintf(i.out, "\t%s\t%d\t%s\n", course.Course, course.Grade, course.Status)
	}
	fmt.Fprintf(i.out, "\ttotal %d, average %.2f, passed %d/%d\n",
		scores.Total, scores.Average, scores.Passed, len(scores.Courses))
	return nil
}

func (i *Interpreter) standings(args []string) error {
	standings, err := i.scorer.Standings()
	if err != nil {
		return err
	}

	for place, scores := range standings.Students {
		fmt.Fprintf(i.out, "%d\t%s\t%s\t%.2f\n", place+1, scores.User.ID, scores.User.Name, scores.Average)
	}
	return nil
}

func (i *Interpreter) help(args []string) error {
	for _, name := range commandOrder {
		fmt.Fprintln(i.out, commands[name].usage)
	}
	return nil
}
