package fs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"invidx/internal/domain"
)

func TestLoader_Read(t *testing.T) {
	loader, err := NewLoader(EncodingUTF8)
	if err != nil {
		t.Fatal(err)
	}

	input := "123\tsame words A_word and nothing\n" +
		"\n" +
		"2\t  same words B_word in this dataset  \n" +
		"5\tfamous_phrases to be or not to be\n"

	docs, err := loader.Read(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}

	want := []domain.Document{
		{ID: 123, Text: "same words A_word and nothing"},
		{ID: 2, Text: "same words B_word in this dataset"},
		{ID: 5, Text: "famous_phrases to be or not to be"},
	}
	if diff := cmp.Diff(want, docs); diff != "" {
		t.Fatalf("documents mismatch (-want +got):\n%s", diff)
	}
}

func TestLoader_ReadKeepsTabsInText(t *testing.T) {
	loader, _ := NewLoader(EncodingUTF8)
	docs, err := loader.Read(strings.NewReader("7\tleft\tright\n"))
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if len(docs) != 1 || docs[0].Text != "left\tright" {
		t.Fatalf("Read() = %+v, want text to keep inner tabs", docs)
	}
}

func TestLoader_ReadErrors(t *testing.T) {
	loader, _ := NewLoader(EncodingUTF8)

	tests := []struct {
		name  string
		input string
	}{
		{"no tab separator", "12 words without tab\n"},
		{"non-integer id", "abc\tsome text\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := loader.Read(strings.NewReader(tt.input)); err == nil {
				t.Error("Read() must fail")
			}
		})
	}
}

func TestLoader_CP1251(t *testing.T) {
	loader, err := NewLoader(EncodingCP1251)
	if err != nil {
		t.Fatal(err)
	}

	// "5\tслово\n" in cp1251 bytes.
	raw := []byte{'5', '\t', 0xf1, 0xeb, 0xee, 0xe2, 0xee, '\n'}
	docs, err := loader.Read(strings.NewReader(string(raw)))
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if len(docs) != 1 || docs[0].Text != "слово" {
		t.Fatalf("Read() = %+v, want cp1251 text decoded", docs)
	}
}

func TestNewLoader_UnknownEncoding(t *testing.T) {
	if _, err := NewLoader("koi8-r"); err == nil {
		t.Fatal("NewLoader() must reject unsupported encodings")
	}
}

func TestLoader_LoadGlob(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) {
		t.Helper()
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	write("b.tsv", "2\tsecond file\n")
	write("a.tsv", "1\tfirst file\n")
	write("skip.txt", "9\tnot matched\n")

	loader, _ := NewLoader(EncodingUTF8)
	docs, err := loader.Load(filepath.Join(dir, "*.tsv"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	want := []domain.Document{
		{ID: 1, Text: "first file"},
		{ID: 2, Text: "second file"},
	}
	if diff := cmp.Diff(want, docs); diff != "" {
		t.Fatalf("documents mismatch (-want +got):\n%s", diff)
	}
}

func TestLoader_LoadMissingFile(t *testing.T) {
	loader, _ := NewLoader(EncodingUTF8)
	if _, err := loader.Load(filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Fatal("Load() of a missing file must fail")
	}
	if _, err := loader.Load(filepath.Join(t.TempDir(), "*.none")); err == nil {
		t.Fatal("Load() of a glob with no matches must fail")
	}
}
