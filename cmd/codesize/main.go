package main

import (
	"github.com/alecthomas/kong"
	"github.com/pkg/errors"

	"github.com/pescuma/codesize/lib/utils"
)

const description = `Compare the size of the library files built from two different Git revisions.

The result of the comparison is written as csv to the result directory. Must be
run from the library root.`

func main() {
	var cli CompareCmd

	ctx := kong.Parse(&cli,
		kong.Name("codesize"),
		kong.Description(description),
		kong.ShortUsageOnError(),
		kong.Configuration(kong.JSON, ".codesize.json", "~/.codesize.json"),
	)

	err := validateResultDir(cli.ResultDir)
	if err != nil {
		ctx.Fatalf("%v", err)
	}

	err = cli.Run()
	ctx.FatalIfErrorf(err)
}

func validateResultDir(dir string) error {
	if utils.IsFile(dir) {
		return errors.Errorf("%v is not a directory", dir)
	}
	return nil
}
