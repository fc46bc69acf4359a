package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"uploadcheck/internal/application"
	"uploadcheck/internal/domain/entities"
	"uploadcheck/internal/ports/input"
	"uploadcheck/internal/ports/output"
)

var errInvalidFiles = errors.New("some files failed the checks")

func newCheckCmd() *cobra.Command {
	var (
		uploadContext string
		lang          string
	)
	cmd := &cobra.Command{
		Use:   "check FILE...",
		Short: "Run the upload checks on local files",
		Long: `Run the same checks the upload page applies (characters, name length,
extension and size) on local files and print one line per file.
Exits non-zero when any file fails.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := loadDeps()
			if err != nil {
				return err
			}
			if lang == "" {
				lang = d.cfg.DefaultLang
			}
			uc := application.NewUploadService(d.profiles)
			invalid, err := runCheck(cmd.OutOrStdout(), uc, d.catalog.For(lang), uploadContext, args)
			if err != nil {
				return err
			}
			if invalid > 0 {
				return errInvalidFiles
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&uploadContext, "context", "c", "ods", "upload context (ods, csv)")
	cmd.Flags().StringVarP(&lang, "lang", "l", "", "message language (default DEFAULT_LANG)")
	return cmd
}

// runCheck validates each path and writes "name: outcome[: message]" lines.
// It returns how many files failed.
func runCheck(w io.Writer, uc input.UploadUseCase, loc output.Localizer, uploadContext string, paths []string) (int, error) {
	invalid := 0
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return invalid, err
		}
		if info.IsDir() {
			return invalid, fmt.Errorf("%s is a directory", path)
		}

		v, err := uc.Validate(uploadContext, entities.Candidate{RawName: filepath.Base(path), Size: info.Size()})
		if err != nil {
			return invalid, err
		}
		if v.Outcome.Valid() {
			fmt.Fprintf(w, "%s: %s\n", v.FileName, v.Outcome)
			continue
		}
		invalid++
		fmt.Fprintf(w, "%s: %s: %s\n", v.FileName, v.Outcome, loc.Text(v.MessageKey, v.Args))
	}
	return invalid, nil
}
