// Package scheduler orders sheet evaluation for the tick loop. Sheets
// register with the names of the sheets whose outputs they consume; the
// schedule is the topological order of that graph, fixed at startup.
package scheduler

import (
	"time"

	"github.com/pkg/errors"
)

// Task is a named unit of per-tick work.
type Task struct {
	name string
	deps []string
	run  func(delta time.Duration)
}

// Scheduler collects tasks and resolves them into a fixed run order.
type Scheduler struct {
	tasks []Task
	order []int
}

func New() *Scheduler {
	return &Scheduler{}
}

// Register adds a task. deps name tasks that must run earlier in the tick.
// Registration order breaks ties between otherwise unordered tasks.
func (s *Scheduler) Register(name string, deps []string, run func(delta time.Duration)) {
	s.tasks = append(s.tasks, Task{name: name, deps: deps, run: run})
	s.order = nil
}

// Resolve validates the dependency graph and fixes the run order.
// It fails on duplicate names, unknown dependencies and cycles.
func (s *Scheduler) Resolve() error {
	index := make(map[string]int, len(s.tasks))
	for i, t := range s.tasks {
		if _, ok := index[t.name]; ok {
			return errors.New("duplicate task " + t.name)
		}
		index[t.name] = i
	}

	indegree := make([]int, len(s.tasks))
	dependents := make([][]int, len(s.tasks))
	for i, t := range s.tasks {
		for _, dep := range t.deps {
			j, ok := index[dep]
			if !ok {
				return errors.Errorf("task %s depends on unknown task %s", t.name, dep)
			}
			indegree[i]++
			dependents[j] = append(dependents[j], i)
		}
	}

	// Kahn's algorithm, always taking the earliest registered ready task
	// so the schedule is deterministic across runs.
	order := make([]int, 0, len(s.tasks))
	ready := make(map[int]bool)
	for i := range s.tasks {
		if indegree[i] == 0 {
			ready[i] = true
		}
	}
	for len(ready) > 0 {
		i := -1
		for j := range ready {
			if i < 0 || j < i {
				i = j
			}
		}
		delete(ready, i)
		order = append(order, i)
		for _, j := range dependents[i] {
			indegree[j]--
			if indegree[j] == 0 {
				ready[j] = true
			}
		}
	}

	if len(order) != len(s.tasks) {
		var stuck []string
		for i := range s.tasks {
			if indegree[i] > 0 {
				stuck = append(stuck, s.tasks[i].name)
			}
		}
		return errors.Errorf("dependency cycle involving %v", stuck)
	}

	s.order = order
	return nil
}

// Run executes every task once in the resolved order.
func (s *Scheduler) Run(delta time.Duration) error {
	if s.order == nil {
		return errors.New("schedule not resolved")
	}
	for _, i := range s.order {
		s.tasks[i].run(delta)
	}
	return nil
}

// Order returns the task names in resolved run order.
func (s *Scheduler) Order() []string {
	names := make([]string, len(s.order))
	for i, j := range s.order {
		names[i] = s.tasks[j].name
	}
	return names
}
