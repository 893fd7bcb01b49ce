package flatfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

func (uow *UnitOfWork) path(name string) string {
	return filepath.Join(uow.dir, name)
}

// writeTemp writes records to a new temporary file next to name and returns its path.
func writeTemp(dir, name string, records [][]string) (string, error) {
	f, err := os.CreateTemp(dir, name+".*.tmp")
	if err != nil {
		return "", fmt.Errorf("write %s: %w", name, err)
	}

	w := csv.NewWriter(f)
	writeErr := w.WriteAll(records)
	closeErr := f.Close()
	if err := errors.Join(writeErr, closeErr); err != nil {
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("write %s: %w", name, err)
	}
	return f.Name(), nil
}

// readFile returns no records when the file does not exist yet.
func readFile(path string, fields int) ([][]string, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = fields
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	return records, nil
}

func lineError(name string, line int, err error) error {
	return fmt.Errorf("%s line %d: %w", name, line+1, err)
}
