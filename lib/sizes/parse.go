package sizes

import (
	"bufio"
	"bytes"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/pescuma/codesize/lib/model"
)

// Columns of `size -t` (Berkeley format): text data bss dec hex filename.
const (
	colText = iota
	colData
	colBss
	colTotal
	colHex
	colName

	minColumns
)

// Parse converts the output of `size -t` into one entry per object. The first
// line is the column header and is skipped. Any other line that does not have
// the expected columns makes the whole parse fail.
func Parse(library string, output []byte) (*model.LibrarySizes, error) {
	result := model.NewLibrarySizes(library)

	scanner := bufio.NewScanner(bytes.NewReader(output))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		if lineNum == 1 {
			continue
		}

		line := scanner.Text()

		name, size, err := parseLine(line)
		if err != nil {
			return nil, errors.Wrapf(err, "%v: invalid size output at line %v", library, lineNum)
		}

		result.Set(name, size)
	}

	err := scanner.Err()
	if err != nil {
		return nil, errors.Wrapf(err, "%v: error reading size output", library)
	}

	return result, nil
}

func parseLine(line string) (string, model.Size, error) {
	fields := strings.Fields(line)
	if len(fields) < minColumns {
		return "", model.Size{}, errors.Errorf("expected at least %v columns but got %v: '%v'", minColumns, len(fields), line)
	}

	var values [colHex]int64
	for i := range values {
		v, err := strconv.ParseInt(fields[i], 10, 64)
		if err != nil {
			return "", model.Size{}, errors.Errorf("column %v is not a number: '%v'", i+1, line)
		}
		values[i] = v
	}

	size := model.NewSize(values[colText], values[colData], values[colBss], values[colTotal])

	return fields[colName], size, nil
}
