package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/viant/afs"
	"github.com/viant/afs/url"
	"github.com/viant/classmerge/inspector/graph"
	"github.com/viant/classmerge/inspector/java"
	"github.com/viant/classmerge/inspector/repository"
	"github.com/viant/classmerge/merge"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	root       string
	configPath string
	outPath    string
	verbose    bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "classmerge",
	Short: "Generate a merge aspect for two Java classes",
	Long: `Reads the merge configuration, inspects classA and classB and writes
Merge<Name>.aj linking construction, redirecting fields of classB to classA
and overriding or chaining the configured methods.

Run without arguments to use src/input.json of the detected project.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		baseURL := root
		if baseURL == "" {
			var err error
			if baseURL, err = detectRoot(ctx); err != nil {
				return err
			}
		}
		return runMerge(ctx, afs.New(), logger, baseURL, configPath, outPath, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.Flags().StringVar(&root, "root", "", "project root (default: detected from working directory)")
	rootCmd.Flags().StringVar(&configPath, "config", "src/input.json", "merge configuration, relative to root")
	rootCmd.Flags().StringVar(&outPath, "out", "src", "aspect output folder, relative to root")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func detectRoot(ctx context.Context) (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	project, err := repository.New().DetectProject(ctx, wd)
	if err != nil {
		return "", fmt.Errorf("failed to detect project root: %w", err)
	}
	logger.Debug("detected project",
		zap.String("root", project.RootPath),
		zap.String("type", project.Type),
		zap.String("name", project.Name))
	return project.RootPath, nil
}

// runMerge loads configuration, inspects both classes, generates and writes the aspect.
// Nothing is written unless every step succeeds.
func runMerge(ctx context.Context, fs afs.Service, logger *zap.Logger, baseURL, configPath, outPath string, out io.Writer) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	cfg, err := merge.LoadConfig(ctx, fs, resolve(baseURL, configPath))
	if err != nil {
		return err
	}
	inspector := java.NewInspector(&graph.Config{IncludeUnexported: true})
	classA, err := inspectClass(ctx, fs, inspector, resolve(baseURL, cfg.ClassA))
	if err != nil {
		return err
	}
	classB, err := inspectClass(ctx, fs, inspector, resolve(baseURL, cfg.ClassB))
	if err != nil {
		return err
	}
	artifact, err := merge.NewEngine(merge.WithLogger(logger)).Generate(classA, classB, cfg)
	if err != nil {
		return err
	}
	written, err := merge.NewWriter(fs, logger).Write(ctx, resolve(baseURL, outPath), artifact)
	if err != nil {
		return err
	}
	logger.Debug("merge completed", zap.String("aspect", artifact.FileName()), zap.Bool("written", written))
	_, err = fmt.Fprintln(out, "done")
	return err
}

func inspectClass(ctx context.Context, fs afs.Service, inspector *java.Inspector, URL string) (*graph.File, error) {
	src, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to read class %s: %w", URL, err)
	}
	return inspector.InspectContent(ctx, src, URL)
}

func resolve(baseURL, location string) string {
	if filepath.IsAbs(location) || strings.Contains(location, "://") {
		return location
	}
	return url.Join(baseURL, location)
}
