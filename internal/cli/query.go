package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"invidx/internal/adapter/fs"
	"invidx/internal/index"
	"invidx/internal/usecase"
)

var (
	queryIndexPath string
	queryTerms     []string
	queryFile      string
	queryEncoding  string
	queryStorage   string
	queryMissing   string
)

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Query an inverted index",
	Long: `Query loads a stored index and prints, for each query, the ids of
documents containing every requested word, comma-joined and ascending.

Queries come either from repeated -q flags (one query) or from a query file
with one whitespace-separated query per line. With no -q and no file, queries
are read from stdin.

Examples:
  invidx query -i inverted.index -q A_word -q B_word
  invidx query -i inverted.index --query-file queries.txt --encoding cp1251`,
	RunE: runQuery,
}

func init() {
	rootCmd.AddCommand(queryCmd)
	queryCmd.Flags().StringVarP(&queryIndexPath, "input", "i", "", "path of the stored index (default from config)")
	queryCmd.Flags().StringArrayVarP(&queryTerms, "query", "q", nil, "query word, repeatable for multi-term queries")
	queryCmd.Flags().StringVar(&queryFile, "query-file", "", "file with one query per line")
	queryCmd.Flags().StringVar(&queryEncoding, "encoding", "", "query file encoding: utf-8 or cp1251 (default from config)")
	queryCmd.Flags().StringVar(&queryStorage, "storage", "", "storage policy the index was written with (default from config)")
	queryCmd.Flags().StringVar(&queryMissing, "missing", "", "missing-term policy: strict or skip (default from config)")
}

func runQuery(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	indexPath := cfg.Index.Path
	if queryIndexPath != "" {
		indexPath = queryIndexPath
	}
	storage := cfg.Index.Storage
	if queryStorage != "" {
		storage = queryStorage
	}
	missing := cfg.Query.MissingTerm
	if queryMissing != "" {
		missing = queryMissing
	}
	encoding := cfg.Dataset.Encoding
	if queryEncoding != "" {
		encoding = queryEncoding
	}

	policy, err := newStoragePolicy(storage)
	if err != nil {
		return err
	}
	match, err := index.ParseMatchPolicy(missing)
	if err != nil {
		return err
	}

	queryUC, err := usecase.NewQueryUseCase(policy, indexPath, match)
	if err != nil {
		return fmt.Errorf("query failed: %w", err)
	}

	if len(queryTerms) > 0 {
		fmt.Println(usecase.FormatIDs(queryUC.Run(queryTerms)))
		return nil
	}

	var in io.Reader = os.Stdin
	if queryFile != "" {
		f, err := os.Open(queryFile)
		if err != nil {
			return fmt.Errorf("opening query file: %w", err)
		}
		defer f.Close()
		in = f
	}
	return runQueryStream(queryUC, in, encoding)
}

// runQueryStream evaluates one query per input line, skipping blank lines.
func runQueryStream(queryUC *usecase.QueryUseCase, in io.Reader, encoding string) error {
	scanner := bufio.NewScanner(fs.DecodedReader(in, encoding))
	for scanner.Scan() {
		terms := strings.Fields(scanner.Text())
		if len(terms) == 0 {
			continue
		}
		fmt.Println(usecase.FormatIDs(queryUC.Run(terms)))
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading queries: %w", err)
	}
	return nil
}
