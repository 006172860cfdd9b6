package transcripts

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"go.uber.org/atomic"

	"github.com/bigredeye/transcripts/internal/config"
	"github.com/bigredeye/transcripts/internal/models"
)

// IDSource hands out student identities. Implementations must be safe for
// concurrent use.
type IDSource interface {
	Next() models.StudentID
}

// Sequential issues "1", "2", "3", ...
type Sequential struct {
	last atomic.Uint64
}

func (s *Sequential) Next() models.StudentID {
	return models.StudentID(strconv.FormatUint(s.last.Inc(), 10))
}

type RandomUUID struct{}

func (RandomUUID) Next() models.StudentID {
	return models.StudentID(uuid.New().String())
}

func NewIDSource(kind string) (IDSource, error) {
	switch kind {
	case "", config.IDsSequential:
		return &Sequential{}, nil
	case config.IDsUUID:
		return RandomUUID{}, nil
	default:
		return nil, fmt.Errorf("unknown id source %q", kind)
	}
}
