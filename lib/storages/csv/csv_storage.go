// Package csv stores the measured sizes of each revision in a directory of
// CSV files, one per revision, so historical revisions are only built once.
package csv

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/pescuma/codesize/lib/model"
	"github.com/pescuma/codesize/lib/utils"
)

const (
	header    = "file, text, data, bss, TOTAL"
	separator = ", "
)

type Storage struct {
	dir string
}

func NewStorage(dir string) (*Storage, error) {
	dir, err := utils.PathAbs(dir)
	if err != nil {
		return nil, err
	}

	err = os.MkdirAll(dir, 0o755)
	if err != nil {
		return nil, errors.Wrapf(err, "error creating records directory %v", dir)
	}

	return &Storage{
		dir: dir,
	}, nil
}

func (s *Storage) Dir() string {
	return s.dir
}

func (s *Storage) Path(revision string) string {
	return filepath.Join(s.dir, revision+".csv")
}

func (s *Storage) Exists(revision string) bool {
	return utils.IsFile(s.Path(revision))
}

// Write creates or overwrites the file of sizes.Revision.
func (s *Storage) Write(sizes *model.RevisionSizes) error {
	path := s.Path(sizes.Revision)

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "error creating %v", path)
	}
	defer f.Close()

	w := bufio.NewWriter(f)

	fmt.Fprintf(w, "%v\n", header)
	for _, lib := range sizes.Libraries() {
		fmt.Fprintf(w, "%v\n", lib.Name)
		lib.ForEach(func(name string, size model.Size) {
			fmt.Fprintf(w, "%v, %v, %v, %v, %v\n", name, size.Text, size.Data, size.Bss, size.Total)
		})
		fmt.Fprintf(w, "\n")
	}

	err = w.Flush()
	if err != nil {
		return errors.Wrapf(err, "error writing %v", path)
	}

	return f.Close()
}

func (s *Storage) Read(revision string) (*model.RevisionSizes, error) {
	path := s.Path(revision)

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "error opening %v", path)
	}
	defer f.Close()

	result := model.NewRevisionSizes(revision)

	var lib *model.LibrarySizes

	scanner := bufio.NewScanner(f)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		switch {
		case lineNum == 1:
			if line != header {
				return nil, errors.Errorf("%v: unexpected header '%v'", path, line)
			}

		case line == "":
			lib = nil

		case !strings.Contains(line, separator):
			lib = result.GetOrCreate(line)

		case lib == nil:
			return nil, errors.Errorf("%v:%v: row outside of a library section", path, lineNum)

		default:
			name, size, err := parseRow(line)
			if err != nil {
				return nil, errors.Wrapf(err, "%v:%v", path, lineNum)
			}

			lib.Set(name, size)
		}
	}

	err = scanner.Err()
	if err != nil {
		return nil, errors.Wrapf(err, "error reading %v", path)
	}

	return result, nil
}

func parseRow(line string) (string, model.Size, error) {
	fields := strings.Split(line, separator)
	if len(fields) != 5 {
		return "", model.Size{}, errors.Errorf("expected 5 columns but got %v: '%v'", len(fields), line)
	}

	var values [4]int64
	for i := range values {
		v, err := strconv.ParseInt(strings.TrimSpace(fields[i+1]), 10, 64)
		if err != nil {
			return "", model.Size{}, errors.Errorf("column %v is not a number: '%v'", i+2, line)
		}
		values[i] = v
	}

	return fields[0], model.NewSize(values[0], values[1], values[2], values[3]), nil
}
