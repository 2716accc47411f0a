package data

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// LoadMatchesFile reads a match snapshot from disk for publishing.
// ".jsonl" files hold one match object per line; any other file holds either
// a {"matches": [...]} object or a bare JSON array.
func LoadMatchesFile(path string) ([]Match, error) {
	if filepath.Ext(path) == ".jsonl" {
		return loadJSONL(path)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return DecodeMatches(raw)
}

// DecodeMatches accepts either a {"matches": [...]} object or a bare array.
func DecodeMatches(raw []byte) ([]Match, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var matches []Match
		if err := json.Unmarshal(trimmed, &matches); err != nil {
			return nil, fmt.Errorf("decoding match array: %w", err)
		}
		return matches, nil
	}

	var payload MatchesPayload
	if err := json.Unmarshal(trimmed, &payload); err != nil {
		return nil, fmt.Errorf("decoding matches payload: %w", err)
	}
	return payload.Matches, nil
}

func loadJSONL(path string) ([]Match, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var matches []Match
	scanner := bufio.NewScanner(file)

	// Increase buffer size for large lines
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}

		var m Match
		if err := json.Unmarshal(line, &m); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		matches = append(matches, m)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return matches, nil
}
