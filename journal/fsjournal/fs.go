package fsjournal

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	logging "github.com/ipfs/go-log/v2"
	"github.com/mitchellh/go-homedir"
	"golang.org/x/xerrors"

	"github.com/konnect-labs/konnect/build"
	"github.com/konnect-labs/konnect/journal"
	"github.com/konnect-labs/konnect/node/repo"
)

var log = logging.Logger("fsjournal")

const RFC3339nocolon = "2006-01-02T150405Z0700"

const (
	filePrefix  = "konnect-journal"
	fileSuffix  = ".ndjson"
	currentFile = filePrefix + fileSuffix
)

// fsJournal is a basic journal backed by files on a filesystem.
type fsJournal struct {
	journal.EventTypeRegistry

	dir        string
	sizeLimit  int64
	maxBackups int

	fi    *os.File
	fSize int64

	incoming chan *journal.Event

	closing chan struct{}
	closed  chan struct{}
}

type Option func(*fsJournal)

// WithMaxSize sets the size at which the current file is rolled.
func WithMaxSize(n int64) Option {
	return func(f *fsJournal) {
		if n > 0 {
			f.sizeLimit = n
		}
	}
}

// WithMaxBackups sets how many rolled files are kept. A negative value keeps
// all of them.
func WithMaxBackups(n int) Option {
	return func(f *fsJournal) {
		f.maxBackups = n
	}
}

// OpenFSJournal constructs a rolling filesystem journal in the journal
// directory of the repo. Size and backup limits default to
// KONNECT_JOURNAL_MAX_SIZE and KONNECT_JOURNAL_MAX_BACKUPS.
func OpenFSJournal(lr repo.LockedRepo, disabled journal.DisabledEvents, opts ...Option) (journal.Journal, error) {
	return OpenFSJournalPath(lr.Path(), disabled, opts...)
}

func OpenFSJournalPath(path string, disabled journal.DisabledEvents, opts ...Option) (journal.Journal, error) {
	path, err := homedir.Expand(path)
	if err != nil {
		return nil, xerrors.Errorf("failed to expand repo path: %w", err)
	}

	dir := filepath.Join(path, "journal")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to mk directory %s for file journal: %w", dir, err)
	}

	f := &fsJournal{
		EventTypeRegistry: journal.NewEventTypeRegistry(disabled),
		dir:               dir,
		sizeLimit:         journal.EnvMaxSize,
		maxBackups:        int(journal.EnvMaxBackups),
		incoming:          make(chan *journal.Event, 32),
		closing:           make(chan struct{}),
		closed:            make(chan struct{}),
	}
	for _, opt := range opts {
		opt(f)
	}

	if err := f.rollJournalFile(); err != nil {
		return nil, err
	}

	go f.runLoop()

	return f, nil
}

func (f *fsJournal) RecordEvent(evtType journal.EventType, supplier func() interface{}) {
	defer func() {
		if r := recover(); r != nil {
			log.Warnf("recovered from panic while recording journal event; type=%s, err=%v", evtType, r)
		}
	}()

	if !evtType.Enabled() {
		return
	}

	je := &journal.Event{
		EventType: evtType,
		Timestamp: build.Clock.Now(),
		Data:      supplier(),
	}
	select {
	case f.incoming <- je:
	case <-f.closing:
		log.Warnw("journal closed but tried to log event", "event", je)
	}
}

// Close drains pending events and closes the current file.
func (f *fsJournal) Close() error {
	close(f.closing)
	<-f.closed
	return nil
}

func (f *fsJournal) putEvent(evt *journal.Event) error {
	b, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	n, err := f.fi.Write(append(b, '\n'))
	if err != nil {
		return err
	}

	f.fSize += int64(n)

	if f.fSize >= f.sizeLimit {
		if err := f.rollJournalFile(); err != nil {
			log.Errorw("failed to roll journal file", "err", err)
		}
	}

	return nil
}

func (f *fsJournal) rollJournalFile() error {
	if f.fi != nil {
		_ = f.fi.Close()
	}
	current := filepath.Join(f.dir, currentFile)

	// check if journal file exists
	if fi, err := os.Stat(current); err == nil && !fi.IsDir() && fi.Size() > 0 {
		rolled, err := f.rolledName()
		if err != nil {
			return err
		}
		if err := os.Rename(current, rolled); err != nil {
			return xerrors.Errorf("failed to roll journal file: %w", err)
		}
	}

	nfi, err := os.Create(current)
	if err != nil {
		return xerrors.Errorf("failed to create journal file: %w", err)
	}

	f.fi = nfi
	f.fSize = 0

	return f.pruneBackups()
}

// rolledName returns a free name for a rolled file. Names carry the UTC roll
// time and a sequence number, so they sort in roll order.
func (f *fsJournal) rolledName() (string, error) {
	ts := build.Clock.Now().UTC().Format(RFC3339nocolon)
	for seq := 0; seq < 1000; seq++ {
		name := filepath.Join(f.dir, fmt.Sprintf("%s-%s-%03d%s", filePrefix, ts, seq, fileSuffix))
		if _, err := os.Stat(name); os.IsNotExist(err) {
			return name, nil
		}
	}
	return "", xerrors.Errorf("too many journal files rolled at %s", ts)
}

// pruneBackups removes the oldest rolled files beyond maxBackups. Rolled file
// names sort by their timestamp.
func (f *fsJournal) pruneBackups() error {
	if f.maxBackups < 0 {
		return nil
	}

	entries, err := os.ReadDir(f.dir)
	if err != nil {
		return xerrors.Errorf("listing journal dir: %w", err)
	}

	var rolled []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || name == currentFile {
			continue
		}
		if strings.HasPrefix(name, filePrefix+"-") && strings.HasSuffix(name, fileSuffix) {
			rolled = append(rolled, name)
		}
	}
	if len(rolled) <= f.maxBackups {
		return nil
	}

	sort.Strings(rolled)
	for _, name := range rolled[:len(rolled)-f.maxBackups] {
		if err := os.Remove(filepath.Join(f.dir, name)); err != nil {
			return xerrors.Errorf("removing old journal file: %w", err)
		}
		log.Debugw("pruned journal file", "file", name)
	}
	return nil
}

func (f *fsJournal) runLoop() {
	defer close(f.closed)

	for {
		select {
		case je := <-f.incoming:
			if err := f.putEvent(je); err != nil {
				log.Errorw("failed to write out journal event", "event", je, "err", err)
			}
		case <-f.closing:
			for {
				select {
				case je := <-f.incoming:
					if err := f.putEvent(je); err != nil {
						log.Errorw("failed to write out journal event", "event", je, "err", err)
					}
				default:
					_ = f.fi.Close()
					return
				}
			}
		}
	}
}
