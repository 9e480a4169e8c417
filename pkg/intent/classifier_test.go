package intent

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    Verdict
	}{
		{"greeting", "Hello there", VerdictQuestion},
		{"casual opener", "hey, got a minute", VerdictQuestion},
		{"how are you", "How are you today?", VerdictQuestion},
		{"good morning", "good morning!", VerdictQuestion},
		{"how do question", "How do I change my bank account?", VerdictQuestion},
		{"what is question", "what is an SSM number", VerdictQuestion},
		{"can i question", "Can I upload a PDF here", VerdictQuestion},
		{"trailing question mark", "my delivery radius seems wrong?", VerdictQuestion},
		{"update imperative", "update my business name to Warung Baru", VerdictDataChange},
		{"change imperative", "change my company phone", VerdictDataChange},
		{"polite update", "please update my outlet address", VerdictDataChange},
		{"i want to edit", "I want to edit my bank info", VerdictDataChange},
		{"make my", "make my outlet name shorter", VerdictDataChange},
		{"quoted value", "set the account holder to 'Aisyah Binti Rahman'", VerdictDataChange},
		// Data-change patterns win over the trailing question mark.
		{"change with question mark", "update my business name to 'Warung Baru'?", VerdictDataChange},
		{"unmatched defaults to data change", "business name Warung Baru", VerdictDataChange},
		{"empty defaults to data change", "", VerdictDataChange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.message); got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.message, got, tt.want)
			}
		})
	}
}

func TestClassifyDeterministic(t *testing.T) {
	msg := "update my business name to 'X'?"
	first := Classify(msg)
	for i := 0; i < 10; i++ {
		if got := Classify(msg); got != first {
			t.Fatalf("Classify not deterministic: got %v then %v", first, got)
		}
	}
}
