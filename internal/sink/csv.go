package sink

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"sync"

	"OchiqMuloqot/entity"
)

// CSVLog is the durable append-only log: one UTF-8 CSV file, header row
// written on creation, one appended row per registration. Appends are
// serialized so concurrent submissions cannot interleave.
type CSVLog struct {
	path string
	mu   sync.Mutex
}

func NewCSVLog(path string) *CSVLog {
	return &CSVLog{path: path}
}

func (c *CSVLog) Append(ctx context.Context, rec *entity.Registration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	_, statErr := os.Stat(c.path)
	writeHeader := errors.Is(statErr, os.ErrNotExist)

	f, err := os.OpenFile(c.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", c.path, err)
	}

	w := csv.NewWriter(f)
	if writeHeader {
		w.Write(entity.RecordColumns())
	}
	w.Write(rec.Row())
	w.Flush()

	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", c.path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", c.path, err)
	}
	return nil
}

// Path returns the log file location.
func (c *CSVLog) Path() string {
	return c.path
}
