package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/viktools/viktools/internal/progress"
	"github.com/viktools/viktools/internal/toolbox"
	"github.com/viktools/viktools/internal/walker"
)

var (
	hashAlgorithm string
	hashFile      string
	hashGlobs     []string
	hashExclude   []string
	hashRoot      string
	hashNoBar     bool
)

var hashCmd = &cobra.Command{
	Use:   "hash [text]",
	Short: "Compute a SHA digest of text or files",
	Long: `Computes a lowercase hex digest. Without --file or --glob the text argument
(or stdin) is hashed. --file hashes one file; --glob hashes every matching
file under --root and prints "digest  path" lines like sha256sum.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, logger, tb, err := setup(cmd)
		if err != nil {
			return err
		}
		alg := toolbox.HashAlgorithm(hashAlgorithm)

		switch {
		case hashFile != "" && len(hashGlobs) > 0:
			return errors.New("--file and --glob cannot be combined")
		case hashFile != "":
			info, err := os.Stat(hashFile)
			if err != nil {
				return err
			}
			files := []walker.FileInfo{{Path: hashFile, RelPath: hashFile, Size: info.Size()}}
			return hashFiles(cmd, tb, alg, files)
		case len(hashGlobs) > 0:
			files, err := walker.Match(walker.Config{RootDir: hashRoot, Include: hashGlobs, Exclude: hashExclude})
			if err != nil {
				return err
			}
			if len(files) == 0 {
				return fmt.Errorf("no files match %v", hashGlobs)
			}
			logger.Debug("hashing files", "count", len(files), "root", hashRoot)
			return hashFiles(cmd, tb, alg, files)
		}

		input, err := readInput(cmd, args)
		if err != nil {
			return err
		}
		res, err := tb.Hash(toolbox.HashRequest{Input: input, Algorithm: alg})
		return printResult(cmd, logger, res, err)
	},
}

// hashFiles streams every file through the digest, reporting progress in
// bytes across the whole set.
func hashFiles(cmd *cobra.Command, tb *toolbox.Toolbox, alg toolbox.HashAlgorithm, files []walker.FileInfo) error {
	var total int64
	for _, f := range files {
		total += f.Size
	}

	var rep progress.Reporter = nopReporter{}
	if !hashNoBar {
		rep = progress.NewReporter(cmd.ErrOrStderr())
	}
	label := filepath.Base(files[0].RelPath)
	if len(files) > 1 {
		label = fmt.Sprintf("%d files", len(files))
	}
	rep.Start(total, label)

	lines := make([]string, 0, len(files))
	for _, f := range files {
		digest, err := hashOne(cmd, tb, alg, f.Path, rep)
		if err != nil {
			rep.Finish()
			return fmt.Errorf("%s: %w", f.RelPath, err)
		}
		lines = append(lines, fmt.Sprintf("%s  %s", digest, f.RelPath))
	}
	rep.Finish()

	for _, line := range lines {
		fmt.Fprintln(cmd.OutOrStdout(), line)
	}
	return nil
}

func hashOne(cmd *cobra.Command, tb *toolbox.Toolbox, alg toolbox.HashAlgorithm, path string, rep progress.Reporter) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return tb.HashReader(cmd.Context(), alg, progress.Reader(f, rep))
}

type nopReporter struct{}

func (nopReporter) Start(int64, string) {}
func (nopReporter) Add(int)             {}
func (nopReporter) Finish()             {}

func init() {
	hashCmd.Flags().StringVarP(&hashAlgorithm, "algorithm", "a", "", "digest: sha1, sha256, sha512 (md5 is listed but unsupported; default from config)")
	hashCmd.Flags().StringVarP(&hashFile, "file", "f", "", "hash the contents of this file")
	hashCmd.Flags().StringSliceVarP(&hashGlobs, "glob", "g", nil, "hash files matching these patterns (supports **)")
	hashCmd.Flags().StringSliceVar(&hashExclude, "exclude", nil, "patterns to skip when using --glob")
	hashCmd.Flags().StringVar(&hashRoot, "root", ".", "directory searched by --glob")
	hashCmd.Flags().BoolVar(&hashNoBar, "no-progress", false, "disable the progress bar")
	rootCmd.AddCommand(hashCmd)
}
