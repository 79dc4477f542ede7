package persist

import (
	"io"
	"os"
	"sync"

	"github.com/pkg/errors"
)

// DefaultPageSize is the size of one EEPROM page on the ornament.
const DefaultPageSize = 512

// FileStore is a slot log kept in a file. Every save appends a record; once
// the file would grow past one page it is erased and restarted with the
// latest record only.
type FileStore struct {
	mu       sync.Mutex
	file     *os.File
	pageSize int
	slots    int // number of slots written
}

var _ Store = (*FileStore)(nil)

// OpenFileStore opens or creates the slot file at path. A pageSize of zero
// means DefaultPageSize.
func OpenFileStore(path string, pageSize int) (*FileStore, error) {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageSize < RecordSize {
		return nil, errors.Errorf("page size %d is smaller than a record", pageSize)
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open selection file")
	}

	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, errors.Wrap(err, "failed to stat selection file")
	}

	return &FileStore{
		file:     f,
		pageSize: pageSize,
		slots:    int(stat.Size()) / RecordSize,
	}, nil
}

// Load implements Store. It scans every slot; corrupt and erased slots are
// skipped.
func (s *FileStore) Load() (Record, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.file.Seek(0, io.SeekStart); err != nil {
		return Record{}, false, errors.Wrap(err, "failed to seek selection file")
	}

	var (
		latest Record
		found  bool
		slot   [RecordSize]byte
	)
	for {
		_, err := io.ReadFull(s.file, slot[:])
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				break
			}
			return Record{}, false, errors.Wrap(err, "failed to read selection file")
		}
		if isErased(slot[:]) {
			continue
		}

		var r Record
		if err := r.UnmarshalBinary(slot[:]); err != nil {
			continue
		}
		latest, found = r, true
	}

	return latest, found, nil
}

// Save implements Store.
func (s *FileStore) Save(r Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, _ := r.MarshalBinary()

	if (s.slots+1)*RecordSize > s.pageSize {
		if err := s.file.Truncate(0); err != nil {
			return errors.Wrap(err, "failed to erase selection file")
		}
		s.slots = 0
	}

	if _, err := s.file.WriteAt(b, int64(s.slots*RecordSize)); err != nil {
		return errors.Wrap(err, "failed to write selection")
	}
	s.slots++

	return errors.Wrap(s.file.Sync(), "failed to sync selection file")
}

// Close implements Store.
func (s *FileStore) Close() error {
	return s.file.Close()
}
