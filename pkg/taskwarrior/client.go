package taskwarrior

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os/exec"

	"github.com/harrisonrobin/lifestyle/pkg/logger"
)

type Client struct {
	// Binary is the task executable, "task" when empty.
	Binary string
}

func NewClient() *Client {
	return &Client{Binary: "task"}
}

// GetTasks runs `task <filter> export` and decodes its output.
func (c *Client) GetTasks(ctx context.Context, filter []string) ([]Task, error) {
	bin := c.Binary
	if bin == "" {
		bin = "task"
	}
	args := append(append([]string{}, filter...), "export", "rc.hooks=0")
	logger.Debug("running taskwarrior export", "bin", bin, "args", args)
	cmd := exec.CommandContext(ctx, bin, args...)

	output, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, fmt.Errorf("taskwarrior command failed: exit code %d, %s, stderr: %s",
				exitErr.ExitCode(), err, exitErr.Stderr)
		}
		return nil, fmt.Errorf("taskwarrior command failed: %w", err)
	}

	var tasks []Task
	if err := json.Unmarshal(output, &tasks); err != nil {
		return nil, fmt.Errorf("failed to unmarshal taskwarrior output: %w", err)
	}
	return tasks, nil
}

// ParseTask parses a single task JSON from an io.Reader
func (c *Client) ParseTask(r io.Reader) (Task, error) {
	var task Task
	if err := json.NewDecoder(r).Decode(&task); err != nil {
		return Task{}, fmt.Errorf("failed to decode task json: %w", err)
	}
	return task, nil
}

// ParseTasks reads either a JSON array, as written by `task export`, or a
// stream of task objects, one per line.
func (c *Client) ParseTasks(r io.Reader) ([]Task, error) {
	var tasks []Task
	decoder := json.NewDecoder(r)
	for {
		var raw json.RawMessage
		if err := decoder.Decode(&raw); err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("failed to decode task json: %w", err)
		}
		if len(raw) > 0 && raw[0] == '[' {
			var batch []Task
			if err := json.Unmarshal(raw, &batch); err != nil {
				return nil, fmt.Errorf("failed to decode task json: %w", err)
			}
			tasks = append(tasks, batch...)
			continue
		}
		var task Task
		if err := json.Unmarshal(raw, &task); err != nil {
			return nil, fmt.Errorf("failed to decode task json: %w", err)
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}
