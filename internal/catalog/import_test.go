package catalog

import (
	"strings"
	"testing"
)

func TestParseImport_Valid(t *testing.T) {
	raw := []byte(`[
		{"id": "two-sum", "difficulty": "Easy", "topics": ["Arrays", "Hash Table"]},
		{"id": "coin-change", "difficulty": "Medium", "topics": ["DP"]}
	]`)

	questions, err := ParseImport(raw)
	if err != nil {
		t.Fatalf("ParseImport failed: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("got %d questions, want 2", len(questions))
	}
	if questions[0].ID != "two-sum" || questions[0].Difficulty != Easy {
		t.Errorf("unexpected first question: %+v", questions[0])
	}
	if len(questions[0].Topics) != 2 {
		t.Errorf("two-sum topics = %v, want 2 entries", questions[0].Topics)
	}
}

func TestParseImport_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		errPart string
	}{
		{"not json", `{{{`, "invalid catalog JSON"},
		{"not an array", `{"id": "x"}`, "schema validation"},
		{"missing topics", `[{"id": "x", "difficulty": "Easy"}]`, "schema validation"},
		{"empty topics", `[{"id": "x", "difficulty": "Easy", "topics": []}]`, "schema validation"},
		{"bad difficulty", `[{"id": "x", "difficulty": "Extreme", "topics": ["A"]}]`, "schema validation"},
		{"empty id", `[{"id": "", "difficulty": "Easy", "topics": ["A"]}]`, "schema validation"},
		{"extra field", `[{"id": "x", "difficulty": "Easy", "topics": ["A"], "url": "y"}]`, "schema validation"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseImport([]byte(tt.raw))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.errPart) {
				t.Errorf("error %q does not mention %q", err, tt.errPart)
			}
		})
	}
}

func TestParseImport_DuplicateID(t *testing.T) {
	raw := []byte(`[
		{"id": "two-sum", "difficulty": "Easy", "topics": ["Arrays"]},
		{"id": "two-sum", "difficulty": "Medium", "topics": ["DP"]}
	]`)

	_, err := ParseImport(raw)
	if err == nil || !strings.Contains(err.Error(), "duplicate question id") {
		t.Errorf("expected duplicate-id error, got %v", err)
	}
}

func TestParseDifficulty(t *testing.T) {
	for in, want := range map[string]Difficulty{
		"Easy": Easy, "easy": Easy, " MEDIUM ": Medium, "hard": Hard,
	} {
		got, err := ParseDifficulty(in)
		if err != nil || got != want {
			t.Errorf("ParseDifficulty(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := ParseDifficulty("extreme"); err == nil {
		t.Error("expected error for unknown difficulty")
	}
}

func TestDifficultyOrder(t *testing.T) {
	if !Hard.HarderThan(Medium) || !Medium.HarderThan(Easy) {
		t.Error("difficulty order broken")
	}
	if Easy.HarderThan(Easy) {
		t.Error("HarderThan must be strict")
	}
	if Difficulty("bogus").Rank() != 0 {
		t.Error("unknown difficulty must rank below Easy")
	}
}
