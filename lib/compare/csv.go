package compare

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/pescuma/codesize/lib/model"
)

const header = "file_name, this_size, old_size, change, change %"

func FileName(oldRevision, newRevision string) string {
	return "compare-" + oldRevision + "-" + newRevision + ".csv"
}

// WriteCSVFile writes the comparison into dir and returns the file path.
func WriteCSVFile(dir string, c *model.Comparison) (string, error) {
	path := filepath.Join(dir, FileName(c.OldRevision, c.NewRevision))

	f, err := os.Create(path)
	if err != nil {
		return "", errors.Wrapf(err, "error creating %v", path)
	}
	defer f.Close()

	err = WriteCSV(f, c)
	if err != nil {
		return "", errors.Wrapf(err, "error writing %v", path)
	}

	err = f.Close()
	if err != nil {
		return "", errors.Wrapf(err, "error writing %v", path)
	}

	return path, nil
}

func WriteCSV(out io.Writer, c *model.Comparison) error {
	w := bufio.NewWriter(out)

	fmt.Fprintf(w, "%v\n", header)
	for _, lib := range c.Libraries {
		fmt.Fprintf(w, "%v\n", lib.Name)
		for _, row := range lib.Rows {
			fmt.Fprintf(w, "%v\n", FormatRow(row))
		}
		fmt.Fprintf(w, "\n")
	}

	return w.Flush()
}

func FormatRow(row *model.ComparisonRow) string {
	if !row.HasOld {
		return fmt.Sprintf("%v, %v", row.Name, row.NewSize)
	}

	return fmt.Sprintf("%v, %v, %v, %v, %v", row.Name, row.NewSize, row.OldSize, row.Change, FormatPercent(row.ChangeRatio))
}
