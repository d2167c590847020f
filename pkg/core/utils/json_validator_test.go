package utils

import "testing"

type recommendationStub struct {
	Headline string `json:"headline"`
	Action   string `json:"action"`
}

func TestSmartParse_StrictJSON(t *testing.T) {
	var rec recommendationStub
	raw := `{"headline": "Viable deal", "action": "proceed"}`

	out, err := SmartParse(raw, &rec)
	if err != nil {
		t.Fatalf("strict parse failed: %v", err)
	}
	if out != raw {
		t.Error("strict JSON should pass through unchanged")
	}
	if rec.Headline != "Viable deal" {
		t.Errorf("unexpected headline: %s", rec.Headline)
	}
}

func TestSmartParse_RepairsModelOutput(t *testing.T) {
	var rec recommendationStub
	// Fenced, single-quoted, trailing comma: typical model output.
	raw := "```json\n{'headline': 'Thin margin', 'action': 'renegotiate rent',}\n```"

	if _, err := SmartParse(raw, &rec); err != nil {
		t.Fatalf("repair path failed: %v", err)
	}
	if rec.Action != "renegotiate rent" {
		t.Errorf("unexpected action: %s", rec.Action)
	}
}

func TestSmartParse_HjsonFallback(t *testing.T) {
	var rec recommendationStub
	raw := `{
		# coach note
		headline: Strong economics
		action: proceed
	}`

	if _, err := SmartParse(raw, &rec); err != nil {
		t.Fatalf("hjson path failed: %v", err)
	}
	if rec.Headline != "Strong economics" {
		t.Errorf("unexpected headline: %s", rec.Headline)
	}
}

func TestSmartParse_Garbage(t *testing.T) {
	var rec recommendationStub
	if _, err := SmartParse("not even close []{", &rec); err == nil {
		t.Error("expected failure on unparseable input")
	}
}

func TestCleanMarkdown(t *testing.T) {
	fenced := "```markdown\n# Underwriting Report\n\nLooks viable.\n```"
	if got := CleanMarkdown(fenced); got != "# Underwriting Report\n\nLooks viable." {
		t.Errorf("unexpected cleaned output: %q", got)
	}

	plain := "# Already clean"
	if got := CleanMarkdown(plain); got != plain {
		t.Errorf("plain markdown should pass through, got %q", got)
	}
}

func TestValidateMarkdown(t *testing.T) {
	if !ValidateMarkdown("# Report\n\n- bullet\n") {
		t.Error("well-formed markdown should validate")
	}
}
