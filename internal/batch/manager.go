// Package batch publishes many stream-link documents with a bounded worker
// pool.
package batch

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"

	"github.com/dgnsrekt/match-relay/internal/data"
)

// Publisher is the part of the relay client the manager needs.
type Publisher interface {
	PublishStreamLinks(ctx context.Context, watchID string, payload data.StreamLinks) (string, error)
}

type Manager struct {
	client  Publisher
	workers int
	logger  *zap.Logger
}

type BatchResult struct {
	Total   int
	Success int
	Skipped int
	Failed  int
	Errors  []string
}

func NewManager(client Publisher, workers int, logger *zap.Logger) *Manager {
	if workers < 1 {
		workers = 1
	}
	return &Manager{
		client:  client,
		workers: workers,
		logger:  logger,
	}
}

func (m *Manager) Execute(ctx context.Context, tasks []Task) (*BatchResult, error) {
	result := &BatchResult{Total: len(tasks)}

	if len(tasks) == 0 {
		return result, nil
	}

	jobs := make(chan Task, len(tasks))
	results := make(chan TaskResult, len(tasks))

	// Start workers
	var wg sync.WaitGroup
	for i := 0; i < m.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.worker(ctx, jobs, results)
		}()
	}

	// Send jobs
	go func() {
		defer close(jobs)
		for _, task := range tasks {
			select {
			case <-ctx.Done():
				return
			case jobs <- task:
			}
		}
	}()

	// Wait for workers and close results
	go func() {
		wg.Wait()
		close(results)
	}()

	// Collect results
	for r := range results {
		switch {
		case r.Skipped:
			result.Skipped++
		case r.Success:
			result.Success++
		default:
			result.Failed++
			if r.Error != nil {
				result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", r.Task, r.Error))
			}
		}
	}

	return result, ctx.Err()
}

func (m *Manager) worker(ctx context.Context, jobs <-chan Task, results chan<- TaskResult) {
	for task := range jobs {
		select {
		case <-ctx.Done():
			return
		default:
		}

		result := m.processTask(ctx, task)

		select {
		case <-ctx.Done():
			return
		case results <- result:
		}
	}
}

func (m *Manager) processTask(ctx context.Context, task Task) TaskResult {
	result := TaskResult{Task: task}

	raw, err := os.ReadFile(task.Path)
	if err != nil {
		result.Error = fmt.Errorf("reading file: %w", err)
		return result
	}

	if !json.Valid(raw) {
		m.logger.Warn("skipping invalid JSON", zap.String("task", task.String()))
		result.Skipped = true
		return result
	}

	if _, err := m.client.PublishStreamLinks(ctx, task.WatchID, data.StreamLinks(raw)); err != nil {
		result.Error = err
		return result
	}

	result.Success = true
	m.logger.Info("published", zap.String("watchID", task.WatchID), zap.Int("bytes", len(raw)))

	return result
}
