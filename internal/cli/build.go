package cli

import (
	"fmt"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"invidx/internal/adapter/analyzer"
	"invidx/internal/adapter/fs"
	"invidx/internal/usecase"
)

var (
	buildDataset  string
	buildOutput   string
	buildStorage  string
	buildEncoding string
	buildQuiet    bool
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build an inverted index from a dataset and store it",
	Long: `Build reads a tab-separated dataset ("<doc_id>\t<text>" per line),
builds the inverted index, and dumps it to disk.

Examples:
  invidx build -d wikipedia_sample -o inverted.index
  invidx build -d "data/**/*.tsv" -o inverted.index --storage json`,
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().StringVarP(&buildDataset, "dataset", "d", "", "dataset path or glob (default from config)")
	buildCmd.Flags().StringVarP(&buildOutput, "output", "o", "", "path to store the index (default from config)")
	buildCmd.Flags().StringVar(&buildStorage, "storage", "", "storage policy: binary, json, or bolt (default from config)")
	buildCmd.Flags().StringVar(&buildEncoding, "encoding", "", "dataset encoding: utf-8 or cp1251 (default from config)")
	buildCmd.Flags().BoolVar(&buildQuiet, "quiet", false, "disable the progress bar")
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	dataset := cfg.Dataset.Path
	if buildDataset != "" {
		dataset = buildDataset
	}
	output := cfg.Index.Path
	if buildOutput != "" {
		output = buildOutput
	}
	storage := cfg.Index.Storage
	if buildStorage != "" {
		storage = buildStorage
	}
	encoding := cfg.Dataset.Encoding
	if buildEncoding != "" {
		encoding = buildEncoding
	}

	policy, err := newStoragePolicy(storage)
	if err != nil {
		return err
	}
	loader, err := fs.NewLoader(encoding)
	if err != nil {
		return err
	}

	buildUC := usecase.NewBuildUseCase(loader, analyzer.NewTokenizer(), policy)

	var bar *progressbar.ProgressBar
	progress := func(processed, total int) {
		if buildQuiet {
			return
		}
		if bar == nil {
			bar = progressbar.NewOptions(total,
				progressbar.OptionSetWidth(40),
				progressbar.OptionShowCount(),
				progressbar.OptionSetDescription("Indexing"),
				progressbar.OptionOnCompletion(func() {
					fmt.Println()
				}),
			)
		}
		bar.Set(processed)
	}

	result, err := buildUC.Run(dataset, output, progress)
	if err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	fmt.Printf("Indexed %d documents (%d distinct terms)\n", result.Documents, result.Terms)
	fmt.Printf("Index stored at: %s\n", result.IndexPath)
	return nil
}
