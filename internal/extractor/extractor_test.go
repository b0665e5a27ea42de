package extractor

import (
	"errors"
	"testing"
)

const jsMarker = "const js = `"

func TestExtract(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		marker  string
		want    string
		wantErr error
	}{
		{
			name:   "simple region",
			src:    "const js = `abc`;",
			marker: jsMarker,
			want:   "abc",
		},
		{
			name:   "empty region",
			src:    "const js = ``;",
			marker: jsMarker,
			want:   "",
		},
		{
			name:   "escaped backtick kept literally",
			src:    "const js = `a\\`b`;",
			marker: jsMarker,
			want:   "a\\`b",
		},
		{
			name:   "double backslash does not escape the delimiter",
			src:    "const js = `a\\\\`;",
			marker: jsMarker,
			want:   "a\\\\",
		},
		{
			name:   "triple backslash escapes the delimiter",
			src:    "const js = `a\\\\\\`b`;",
			marker: jsMarker,
			want:   "a\\\\\\`b",
		},
		{
			name:   "surrounding source ignored",
			src:    "import x from 'y';\nconst js = `body`;\nexport {};\n",
			marker: jsMarker,
			want:   "body",
		},
		{
			name:   "first marker occurrence wins",
			src:    "const js = `one`; const js = `two`;",
			marker: jsMarker,
			want:   "one",
		},
		{
			name:   "multibyte content passes through",
			src:    "const js = `héllo ⌘`;",
			marker: jsMarker,
			want:   "héllo ⌘",
		},
		{
			name:   "newlines inside region",
			src:    "const js = `line1\nline2\n`;",
			marker: jsMarker,
			want:   "line1\nline2\n",
		},
		{
			name:    "marker missing",
			src:     "let js = \"abc\";",
			marker:  jsMarker,
			wantErr: ErrMarkerNotFound,
		},
		{
			name:    "closing backtick missing",
			src:     "const js = `abc",
			marker:  jsMarker,
			wantErr: ErrDelimiterNotFound,
		},
		{
			name:    "marker at end of input",
			src:     "const js = `",
			marker:  jsMarker,
			wantErr: ErrDelimiterNotFound,
		},
		{
			name:    "only escaped backticks",
			src:     "const js = `a\\`",
			marker:  jsMarker,
			wantErr: ErrDelimiterNotFound,
		},
		{
			name:    "empty source",
			src:     "",
			marker:  jsMarker,
			wantErr: ErrMarkerNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Extract(tt.src, tt.marker)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected error %v, got %v", tt.wantErr, err)
				}
				if res != nil {
					t.Errorf("expected nil result on error, got %+v", res)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Content != tt.want {
				t.Errorf("expected content %q, got %q", tt.want, res.Content)
			}
		})
	}
}

func TestExtractOffsets(t *testing.T) {
	src := "prefix const js = `body` suffix"

	res, err := Extract(src, jsMarker)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := src[res.Start:res.End]; got != res.Content {
		t.Errorf("expected src[Start:End] = %q, got %q", res.Content, got)
	}
	if src[res.End] != '`' {
		t.Errorf("expected End to index the terminating backtick, got %q", src[res.End])
	}
	if res.Start != len("prefix ")+len(jsMarker) {
		t.Errorf("expected Start just past the marker, got %d", res.Start)
	}
}

func TestExtractDeterministic(t *testing.T) {
	src := "const js = `a\\`b\\\\` trailing `stuff`"

	first, err := Extract(src, jsMarker)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Extract(src, jsMarker)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if *first != *second {
		t.Errorf("expected identical results, got %+v and %+v", first, second)
	}
}
