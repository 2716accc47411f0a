package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Task publishes the stream links stored in Path under WatchID.
type Task struct {
	WatchID string
	Path    string
}

func (t Task) String() string {
	return fmt.Sprintf("%s (%s)", t.WatchID, filepath.Base(t.Path))
}

type TaskResult struct {
	Task    Task
	Success bool
	Skipped bool
	Error   error
}

// TasksFromDir builds one task per "<watch_id>.json" file in dir, sorted by
// watch id. Subdirectories and other extensions are ignored.
func TasksFromDir(dir string) ([]Task, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", dir, err)
	}

	var tasks []Task
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}
		watchID := strings.TrimSuffix(e.Name(), ".json")
		if watchID == "" {
			continue
		}
		tasks = append(tasks, Task{WatchID: watchID, Path: filepath.Join(dir, e.Name())})
	}

	sort.Slice(tasks, func(i, j int) bool { return tasks[i].WatchID < tasks[j].WatchID })
	return tasks, nil
}
