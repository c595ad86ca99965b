package workspace

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/pescuma/codesize/lib/builder"
	"github.com/pescuma/codesize/lib/compare"
	"github.com/pescuma/codesize/lib/consoles"
	"github.com/pescuma/codesize/lib/executor"
	"github.com/pescuma/codesize/lib/git"
	"github.com/pescuma/codesize/lib/model"
	"github.com/pescuma/codesize/lib/sizes"
	"github.com/pescuma/codesize/lib/storages"
	"github.com/pescuma/codesize/lib/storages/csv"
	"github.com/pescuma/codesize/lib/storages/orm"
	"github.com/pescuma/codesize/lib/utils"
)

type Options struct {
	RepoDir    string
	ResultDir  string
	RecordsDir string

	GitCommand  string
	MakeCommand string
	SizeCommand string

	ShowProgress bool

	// HistoryFile is a sqlite database where the overall result of each
	// comparison is recorded. Empty disables it.
	HistoryFile string
}

type Workspace struct {
	console   consoles.Console
	repoDir   string
	resultDir string

	worktrees *git.Worktrees
	builder   *builder.Builder
	reporter  *sizes.Reporter
	records   *csv.Storage
	history   storages.History
}

func NewWorkspace(console consoles.Console, runner executor.Runner, opts *Options) (*Workspace, error) {
	repoDir, err := utils.PathAbs(orDefault(opts.RepoDir, "."))
	if err != nil {
		return nil, err
	}

	err = git.CheckRepoPath(repoDir)
	if err != nil {
		return nil, err
	}

	resultDir, err := resolveDir(repoDir, orDefault(opts.ResultDir, "comparison"))
	if err != nil {
		return nil, err
	}

	if utils.IsFile(resultDir) {
		return nil, errors.Errorf("%v is not a directory", resultDir)
	}

	err = os.MkdirAll(resultDir, 0o755)
	if err != nil {
		return nil, errors.Wrapf(err, "error creating result directory %v", resultDir)
	}

	recordsDir, err := resolveDir(repoDir, orDefault(opts.RecordsDir, "code_size_records"))
	if err != nil {
		return nil, err
	}

	records, err := csv.NewStorage(recordsDir)
	if err != nil {
		return nil, err
	}

	var history storages.History
	if opts.HistoryFile != "" {
		history, err = openHistory(console, opts.HistoryFile)
		if err != nil {
			return nil, err
		}
	}

	return &Workspace{
		console:   console,
		repoDir:   repoDir,
		resultDir: resultDir,
		worktrees: git.NewWorktrees(console, runner, &git.WorktreeOptions{
			RepoDir:    repoDir,
			GitCommand: opts.GitCommand,
		}),
		builder: builder.NewBuilder(console, runner, &builder.Options{
			MakeCommand: opts.MakeCommand,
		}),
		reporter: sizes.NewReporter(console, runner, &sizes.Options{
			SizeCommand:  opts.SizeCommand,
			ShowProgress: opts.ShowProgress,
		}),
		records: records,
		history: history,
	}, nil
}

func orDefault(value, def string) string {
	return lo.Ternary(value == "", def, value)
}

// resolveDir makes relative paths relative to the repository root.
func resolveDir(base string, dir string) (string, error) {
	if !filepath.IsAbs(dir) && !strings.HasPrefix(filepath.ToSlash(dir), "~/") {
		dir = filepath.Join(base, dir)
	}

	return utils.PathAbs(dir)
}

func openHistory(console consoles.Console, file string) (storages.History, error) {
	file, err := utils.PathAbs(file)
	if err != nil {
		return nil, err
	}

	err = os.MkdirAll(filepath.Dir(file), 0o700)
	if err != nil {
		return nil, errors.Wrapf(err, "error creating history directory for %v", file)
	}

	return orm.NewGormStorage(orm.WithSqlite(file), console)
}

func (w *Workspace) Close() error {
	if w.history == nil {
		return nil
	}

	return w.history.Close()
}

func (w *Workspace) ResultDir() string {
	return w.resultDir
}

func (w *Workspace) RecordsDir() string {
	return w.records.Dir()
}

// comparisonRun carries the state of one comparison between the pipeline
// stages.
type comparisonRun struct {
	oldRev string
	newRev string

	oldSizes *model.RevisionSizes
	newSizes *model.RevisionSizes

	result     *model.Comparison
	resultFile string
}

// Compare measures both revisions, building them only when needed, and writes
// the comparison CSV to the result directory.
func (w *Workspace) Compare(oldRev, newRev string) (*model.Comparison, error) {
	run := &comparisonRun{
		oldRev: oldRev,
		newRev: newRev,
	}

	err := w.measure(run)
	if err != nil {
		return nil, err
	}

	err = w.compare(run)
	if err != nil {
		return nil, err
	}

	err = w.record(run)
	if err != nil {
		return nil, err
	}

	return run.result, nil
}

func (w *Workspace) measure(run *comparisonRun) error {
	var err error

	run.oldSizes, err = w.getCodeSizeForRev(run.oldRev)
	if err != nil {
		return err
	}

	run.newSizes, err = w.getCodeSizeForRev(run.newRev)
	if err != nil {
		return err
	}

	return nil
}

// getCodeSizeForRev returns the sizes of revision, always as read back from its
// CSV record, so cached and freshly built revisions are compared the same way.
func (w *Workspace) getCodeSizeForRev(revision string) (*model.RevisionSizes, error) {
	if !model.IsCurrent(revision) && w.records.Exists(revision) {
		w.console.Printf("Code size csv file for %v already exists.\n", revision)
	} else {
		err := w.generateCodeSize(revision)
		if err != nil {
			return nil, err
		}
	}

	return w.records.Read(revision)
}

func (w *Workspace) generateCodeSize(revision string) error {
	dir, err := w.worktrees.Create(revision)
	if err != nil {
		return err
	}

	err = w.buildAndMeasure(revision, dir)
	if err != nil {
		rmErr := w.worktrees.Remove(dir)
		if rmErr != nil {
			w.console.Printf("Could not remove worktree %v: %v\n", dir, rmErr)
		}

		return err
	}

	return w.worktrees.Remove(dir)
}

func (w *Workspace) buildAndMeasure(revision string, dir string) error {
	err := w.builder.Build(dir)
	if err != nil {
		return err
	}

	revSizes, err := w.reporter.Report(revision, dir)
	if err != nil {
		return err
	}

	return w.records.Write(revSizes)
}

func (w *Workspace) compare(run *comparisonRun) error {
	w.console.Printf("Generating comparison results.\n")

	var err error

	run.result, err = compare.Compare(run.oldSizes, run.newSizes)
	if err != nil {
		return err
	}

	run.resultFile, err = compare.WriteCSVFile(w.resultDir, run.result)
	if err != nil {
		return err
	}

	w.console.Printf("Comparison written to %v\n", run.resultFile)

	w.printSummary(run.result)

	return nil
}

func (w *Workspace) record(run *comparisonRun) error {
	if w.history == nil {
		return nil
	}

	err := w.history.WriteComparison(run.result)
	if err != nil {
		return err
	}

	return w.printHistory(run.result)
}
