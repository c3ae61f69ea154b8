package grapheme

import "testing"

func TestSplitAndCount_MultiRuneGraphemes(t *testing.T) {
	text := "a" + "e\u0301" + "\U0001F468\u200d\U0001F469\u200d\U0001F467" + "b"
	got := Split(text)
	if len(got) != 4 {
		t.Fatalf("split len=%d, want %d", len(got), 4)
	}
	if got[1] != "e\u0301" {
		t.Fatalf("split[1]=%q, want %q", got[1], "e\u0301")
	}
	if c := Count(text); c != 4 {
		t.Fatalf("count=%d, want %d", c, 4)
	}
}

func TestWidth_WideAndCombining(t *testing.T) {
	cases := []struct {
		text string
		want int
	}{
		{text: "", want: 0},
		{text: "abc", want: 3},
		{text: "e\u0301", want: 1},
		{text: "日本", want: 4},
	}
	for _, tc := range cases {
		if got := Width(tc.text); got != tc.want {
			t.Fatalf("Width(%q): got %d, want %d", tc.text, got, tc.want)
		}
	}
}

func TestTruncate_PadsSplitWideCluster(t *testing.T) {
	if got, want := Truncate("abcdef", 4), "abcd"; got != want {
		t.Fatalf("truncate ascii: got %q, want %q", got, want)
	}
	if got, want := Truncate("a日本", 2), "a "; got != want {
		t.Fatalf("truncate wide: got %q, want %q", got, want)
	}
	if got := Truncate("abc", 0); got != "" {
		t.Fatalf("truncate zero width: got %q, want empty", got)
	}
}

func TestSingleLine(t *testing.T) {
	if got, want := SingleLine("a\nb\tc\x01"), "a b c"; got != want {
		t.Fatalf("single line: got %q, want %q", got, want)
	}
}

func TestClassifiers(t *testing.T) {
	if !IsSpace("\t") {
		t.Fatalf("tab should be space")
	}
	if IsSpace("a") {
		t.Fatalf("letter should not be space")
	}
	if !IsWord("_") || !IsWord("é") || !IsWord("7") {
		t.Fatalf("identifier clusters should be word")
	}
	if IsWord(".") || IsWord(" ") {
		t.Fatalf("punctuation and space should not be word")
	}
}
