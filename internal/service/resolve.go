package service

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/zeit/internal/domain"
	"github.com/alexanderramin/zeit/internal/repository"
	"github.com/alexanderramin/zeit/internal/tracker"
)

// minIDPrefix is the shortest id prefix accepted as a task reference.
const minIDPrefix = 4

// resolveTask finds a task by exact id, exact name, or unique id prefix.
func resolveTask(reg *tracker.Registry, ref string) (*domain.Task, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, domain.MissingArgument("task")
	}
	if t := reg.Find(ref); t != nil {
		return t, nil
	}
	if t := reg.FindByName(ref); t != nil {
		return t, nil
	}
	if len(ref) >= minIDPrefix {
		var match *domain.Task
		for _, t := range reg.Tasks() {
			if !strings.HasPrefix(t.ID, ref) {
				continue
			}
			if match != nil {
				return nil, fmt.Errorf("task reference %q is ambiguous", ref)
			}
			match = t
		}
		if match != nil {
			return match, nil
		}
	}
	return nil, fmt.Errorf("task %q: %w", ref, repository.ErrNotFound)
}
