package usecase

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"leave-calendar-sync/internal/leave"
	"leave-calendar-sync/internal/leave/parser"
	"leave-calendar-sync/internal/leave/repository"
	pkgLog "leave-calendar-sync/pkg/log"
)

// DefaultHistoryLimit is how many recent messages a pass reads.
const DefaultHistoryLimit = 10

// Options tunes a UseCase.
type Options struct {
	DuplicateKey leave.DuplicateKey
	HistoryLimit int
	// Notifier is optional; nil disables pass summaries.
	Notifier leave.Notifier
}

type implUseCase struct {
	l        pkgLog.Logger
	records  repository.RecordRepository
	messages repository.MessageRepository
	parser   *parser.Parser
	notifier leave.Notifier

	dupKey       leave.DuplicateKey
	historyLimit int

	// mu serializes passes started by the scheduler, HTTP and Slack.
	mu       sync.Mutex
	now      func() time.Time
	newRunID func() string
}

// New creates a new leave UseCase instance.
func New(
	l pkgLog.Logger,
	records repository.RecordRepository,
	messages repository.MessageRepository,
	p *parser.Parser,
	opt Options,
) leave.UseCase {
	if opt.DuplicateKey == "" {
		opt.DuplicateKey = leave.DuplicateKeyPersonDateKind
	}
	if opt.HistoryLimit <= 0 {
		opt.HistoryLimit = DefaultHistoryLimit
	}
	return &implUseCase{
		l:            l,
		records:      records,
		messages:     messages,
		parser:       p,
		notifier:     opt.Notifier,
		dupKey:       opt.DuplicateKey,
		historyLimit: opt.HistoryLimit,
		now:          time.Now,
		newRunID:     uuid.NewString,
	}
}
