package docstore

import "testing"

func TestSeedSnippetsAreWellFormed(t *testing.T) {
	if len(seedSnippets) == 0 {
		t.Fatal("no seed snippets")
	}
	valid := map[string]bool{"junior": true, "middle": true, "senior": true}
	for _, s := range seedSnippets {
		if s.Title == "" || s.TechStack == "" || s.CodeA == "" || s.CodeB == "" {
			t.Errorf("snippet %q missing required fields", s.Title)
		}
		if s.CorrectAnswer != 1 && s.CorrectAnswer != 2 {
			t.Errorf("snippet %q has answer %d", s.Title, s.CorrectAnswer)
		}
		if !valid[s.Difficulty] {
			t.Errorf("snippet %q has difficulty %q", s.Title, s.Difficulty)
		}
	}
}
