package data

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func TestMatchStoreEmptyBeforePublish(t *testing.T) {
	s := NewMatchStore()
	if _, ok := s.Read(); ok {
		t.Fatal("expected no snapshot before publish")
	}
}

func TestMatchStoreLastWriterWins(t *testing.T) {
	s := NewMatchStore()
	s.Publish([]Match{{"team1": "A", "team2": "B", "score": "1-0"}})
	s.Publish([]Match{{"team1": "C", "team2": "D", "score": "2-2"}, {"team1": "E", "team2": "F", "score": "0-0"}})

	got, ok := s.Read()
	if !ok {
		t.Fatal("expected snapshot after publish")
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(got))
	}
	if got[0]["team1"] != "C" || got[1]["team1"] != "E" {
		t.Errorf("expected only the last snapshot, got %v", got)
	}
}

func TestMatchStoreEmptyPublishIsStored(t *testing.T) {
	s := NewMatchStore()
	s.Publish(nil)

	got, ok := s.Read()
	if !ok {
		t.Fatal("empty publish should still count as published")
	}
	if len(got) != 0 {
		t.Errorf("expected empty snapshot, got %v", got)
	}
}

func TestMatchStorePublishCopiesInput(t *testing.T) {
	s := NewMatchStore()
	in := []Match{{"team1": "A"}}
	s.Publish(in)
	in[0] = Match{"team1": "mutated"}

	got, _ := s.Read()
	if got[0]["team1"] != "A" {
		t.Errorf("store should not alias caller slice, got %v", got[0])
	}
}

func TestMatchStoreConcurrentPublishNeverTorn(t *testing.T) {
	s := NewMatchStore()
	var wg sync.WaitGroup

	for i := range 20 {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			snapshot := make([]Match, 5)
			for j := range snapshot {
				snapshot[j] = Match{"publisher": n}
			}
			s.Publish(snapshot)
		}(i)
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, ok := s.Read()
			if !ok {
				return
			}
			for _, m := range got {
				if m["publisher"] != got[0]["publisher"] {
					t.Errorf("torn snapshot: %v", got)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestMatchStoreClear(t *testing.T) {
	s := NewMatchStore()
	s.Publish([]Match{{"team1": "A"}})
	s.Clear()
	if _, ok := s.Read(); ok {
		t.Error("expected no snapshot after clear")
	}
}

func TestStreamLinkStorePerKey(t *testing.T) {
	s := NewStreamLinkStore()
	s.Publish("abc", StreamLinks(`{"url":"http://a"}`))

	if _, ok := s.Read("xyz"); ok {
		t.Error("unpublished key should be absent")
	}
	got, ok := s.Read("abc")
	if !ok || string(got) != `{"url":"http://a"}` {
		t.Errorf("unexpected payload %q ok=%v", got, ok)
	}

	s.Publish("abc", StreamLinks(`{"url":"http://b"}`))
	got, _ = s.Read("abc")
	if string(got) != `{"url":"http://b"}` {
		t.Errorf("expected overwrite, got %q", got)
	}
}

func TestStreamLinkStoreKeysAndClear(t *testing.T) {
	s := NewStreamLinkStore()
	for _, k := range []string{"c", "a", "b"} {
		s.Publish(k, StreamLinks(fmt.Sprintf(`{"k":%q}`, k)))
	}

	keys := s.Keys()
	if len(keys) != 3 || keys[0] != "a" || keys[2] != "c" {
		t.Errorf("expected sorted keys, got %v", keys)
	}
	if n := s.Clear(); n != 3 {
		t.Errorf("expected 3 cleared, got %d", n)
	}
	if s.Len() != 0 {
		t.Errorf("expected empty store, got %d", s.Len())
	}
}

func TestLoadMatchesFile(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		file    string
		content string
		want    int
		wantErr bool
	}{
		{"object", "m.json", `{"matches":[{"team1":"A"},{"team1":"B"}]}`, 2, false},
		{"array", "m.json", `[{"team1":"A"}]`, 1, false},
		{"missing key", "m.json", `{}`, 0, false},
		{"jsonl", "m.jsonl", "{\"team1\":\"A\"}\n\n{\"team1\":\"B\"}\n", 2, false},
		{"bad jsonl", "m.jsonl", "{\"team1\":\"A\"}\nnot json\n", 0, true},
		{"bad json", "m.json", `{"matches":`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+"-"+tt.file)
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatalf("writing fixture: %v", err)
			}

			got, err := LoadMatchesFile(path)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != tt.want {
				t.Errorf("expected %d matches, got %d", tt.want, len(got))
			}
		})
	}
}
