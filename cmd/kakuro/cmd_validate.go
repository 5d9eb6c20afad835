package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"svw.info/kakuro/internal/domain"
	"svw.info/kakuro/internal/validator"
)

var validateCmd = &cobra.Command{
	Use:   "validate [files or directories]",
	Short: "Check puzzle files against the expected JSON shape",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	files, err := collectPuzzleFiles(args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no .json puzzle files found")
	}

	v := validator.New()
	results := make([]string, len(files))
	invalid := 0

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(runtime.NumCPU())
	for i, path := range files {
		g.Go(func() error {
			line, ok := checkFile(ctx, v, path)
			mu.Lock()
			results[i] = line
			if !ok {
				invalid++
			}
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, line := range results {
		cmd.Println(line)
	}
	if invalid > 0 {
		return fmt.Errorf("%d invalid puzzle file(s)", invalid)
	}
	return nil
}

func checkFile(ctx context.Context, v *validator.FormatValidator, path string) (string, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Sprintf("✗ %s is invalid: %v", path, err), false
	}
	var doc domain.PuzzleDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Sprintf("✗ %s is invalid: %v", path, err), false
	}
	ok, issues, _ := v.ValidateFormat(ctx, &doc)
	if !ok {
		return fmt.Sprintf("✗ %s is invalid: %s", path, issues[0].Reason), false
	}
	return fmt.Sprintf("✓ %s is valid", path), true
}

func collectPuzzleFiles(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, arg)
			continue
		}
		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && strings.HasSuffix(path, ".json") {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	sort.Strings(files)
	return files, nil
}
