package usecase

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"invidx/internal/adapter/analyzer"
	"invidx/internal/adapter/codec"
	"invidx/internal/adapter/fs"
	"invidx/internal/index"
)

const fixtureDataset = "123\tsame words A_word and nothing\n" +
	"2\tsame words B_word in this dataset\n" +
	"5\tfamous_phrases to be or not to be\n" +
	"37\tall words such as A_word and B_word are here\n"

func writeDataset(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dataset.tsv")
	if err := os.WriteFile(path, []byte(fixtureDataset), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestBuildThenQuery(t *testing.T) {
	datasetPath := writeDataset(t)
	indexPath := filepath.Join(t.TempDir(), "inverted.index")
	policy := codec.NewBinaryPolicy()

	loader, err := fs.NewLoader(fs.EncodingUTF8)
	if err != nil {
		t.Fatal(err)
	}

	var lastProcessed, lastTotal int
	buildUC := NewBuildUseCase(loader, analyzer.NewTokenizer(), policy)
	result, err := buildUC.Run(datasetPath, indexPath, func(processed, total int) {
		lastProcessed, lastTotal = processed, total
	})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if result.Documents != 4 {
		t.Errorf("Documents = %d, want 4", result.Documents)
	}
	if result.Terms == 0 {
		t.Error("Terms = 0, want indexed terms")
	}
	if lastProcessed != 4 || lastTotal != 4 {
		t.Errorf("progress ended at %d/%d, want 4/4", lastProcessed, lastTotal)
	}

	queryUC, err := NewQueryUseCase(policy, indexPath, index.MatchAllTerms)
	if err != nil {
		t.Fatalf("NewQueryUseCase() error: %v", err)
	}

	if diff := cmp.Diff([]int{37, 123}, queryUC.Run([]string{"A_word"})); diff != "" {
		t.Errorf("query A_word mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{37}, queryUC.Run([]string{"A_word", "B_word"})); diff != "" {
		t.Errorf("query A_word B_word mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{}, queryUC.Run([]string{"word_does_not_exist"})); diff != "" {
		t.Errorf("query unknown word mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild_MissingDataset(t *testing.T) {
	loader, _ := fs.NewLoader(fs.EncodingUTF8)
	buildUC := NewBuildUseCase(loader, analyzer.NewTokenizer(), codec.NewBinaryPolicy())

	_, err := buildUC.Run(filepath.Join(t.TempDir(), "absent"), filepath.Join(t.TempDir(), "out"), nil)
	if err == nil {
		t.Fatal("Run() with a missing dataset must fail")
	}
}

func TestQuery_MissingIndex(t *testing.T) {
	_, err := NewQueryUseCase(codec.NewBinaryPolicy(), filepath.Join(t.TempDir(), "absent"), index.MatchAllTerms)
	if err == nil {
		t.Fatal("NewQueryUseCase() with a missing index must fail")
	}
}

func TestFormatIDs(t *testing.T) {
	tests := []struct {
		ids  []int
		want string
	}{
		{[]int{37, 123}, "37,123"},
		{[]int{5}, "5"},
		{[]int{}, ""},
	}
	for _, tt := range tests {
		if got := FormatIDs(tt.ids); got != tt.want {
			t.Errorf("FormatIDs(%v) = %q, want %q", tt.ids, got, tt.want)
		}
	}
}
