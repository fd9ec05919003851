package vision

import "testing"

func TestInterpretJSON(t *testing.T) {
	label, rationale := interpret(`{"category": "Glass", "rationale": "Transparent bottle."}`)

	if label != "Glass" {
		t.Errorf("label = %q, want Glass", label)
	}
	if rationale != "Transparent bottle." {
		t.Errorf("rationale = %q, want Transparent bottle.", rationale)
	}
}

func TestInterpretFencedJSON(t *testing.T) {
	text := "```json\n{\"category\": \"Metal\", \"rationale\": \"Aluminum can.\"}\n```"
	label, rationale := interpret(text)

	if label != "Metal" {
		t.Errorf("label = %q, want Metal", label)
	}
	if rationale != "Aluminum can." {
		t.Errorf("rationale = %q, want Aluminum can.", rationale)
	}
}

func TestInterpretRawText(t *testing.T) {
	text := "This looks like a plastic bottle."
	label, rationale := interpret(text)

	if label != text {
		t.Errorf("label = %q, want raw text passthrough", label)
	}
	if rationale != "" {
		t.Errorf("rationale = %q, want empty", rationale)
	}
}

func TestInterpretEmptyCategory(t *testing.T) {
	text := `{"rationale": "No category given."}`
	label, _ := interpret(text)

	if label != text {
		t.Errorf("label = %q, want raw text passthrough", label)
	}
}
