package services

import (
	"io"

	"task-tracker/internal/config"
	"task-tracker/internal/domain"
	"task-tracker/internal/errors"
	"task-tracker/internal/logging"
	"task-tracker/internal/validation"
)

// TaskManager exclusively owns an ordered collection of tasks and assigns
// their ids. Ids start at 1 and advance only on successful creation.
//
// A TaskManager is not safe for concurrent use; callers sharing one across
// goroutines must synchronize every call, including calls on handles.
type TaskManager struct {
	tasks  []domain.Task
	nextID int
	closed bool

	taskValidator *validation.TaskValidator
	reporting     ReportingService
	reportTitle   string
	reportWidth   int
	logger        *logging.Logger
}

// NewTaskManager creates an empty manager with default settings
func NewTaskManager() *TaskManager {
	return &TaskManager{
		nextID:        1,
		taskValidator: validation.NewTaskValidator(),
		reporting:     NewReportingService(),
		reportTitle:   DefaultReportTitle,
		reportWidth:   DefaultReportWidth,
		logger:        logging.Default().With("component", "task_manager"),
	}
}

// NewTaskManagerWithConfig creates an empty manager honoring cfg. A nil
// logger falls back to the package default.
func NewTaskManagerWithConfig(cfg *config.Config, logger *logging.Logger) *TaskManager {
	m := NewTaskManager()
	if cfg != nil {
		m.taskValidator = validation.NewTaskValidatorWithConfig(cfg)
		m.reportTitle = cfg.Report.Title
		m.reportWidth = cfg.Report.Width
	}
	if logger != nil {
		m.logger = logger.With("component", "task_manager")
	}
	return m
}

// AddFeature creates a Feature with the next id and returns that id.
// On failure nothing is added and the id counter is left unchanged.
func (m *TaskManager) AddFeature(title, epic string) (int, error) {
	if err := m.checkOpen(); err != nil {
		return 0, err
	}
	if err := m.validateTitle(title, "invalid feature", domain.KindFeature); err != nil {
		return 0, err
	}

	feature, err := domain.NewFeature(m.nextID, title, epic)
	if err != nil {
		return 0, err
	}
	return m.add(feature), nil
}

// AddBugFix creates a BugFix with the next id and returns that id. Pass the
// zero Priority (PriorityMedium) for the default level.
// On failure nothing is added and the id counter is left unchanged.
func (m *TaskManager) AddBugFix(title string, priority domain.Priority) (int, error) {
	if err := m.checkOpen(); err != nil {
		return 0, err
	}
	if err := m.validateTitle(title, "invalid bug fix", domain.KindBugFix); err != nil {
		return 0, err
	}

	bug, err := domain.NewBugFix(m.nextID, title, priority)
	if err != nil {
		return 0, err
	}
	return m.add(bug), nil
}

// FindTaskByID returns a handle to the task with the given id. The second
// result is false when no live task has that id.
func (m *TaskManager) FindTaskByID(id int) (*TaskHandle, bool) {
	if m.closed {
		return nil, false
	}
	for i, task := range m.tasks {
		if task.ID() == id {
			return m.handle(i), true
		}
	}
	return nil, false
}

// Tasks returns handles to every task in creation order
func (m *TaskManager) Tasks() []*TaskHandle {
	return m.FindTasks(domain.TaskFilter{})
}

// FindTasks returns handles to the tasks matching filter, in creation order
func (m *TaskManager) FindTasks(filter domain.TaskFilter) []*TaskHandle {
	var handles []*TaskHandle
	if m.closed {
		return handles
	}
	for i, task := range m.tasks {
		if filter.Matches(task) {
			handles = append(handles, m.handle(i))
		}
	}
	return handles
}

// Count returns the number of tasks owned by the manager
func (m *TaskManager) Count() int {
	return len(m.tasks)
}

// NextID returns the id the next successful creation will receive
func (m *TaskManager) NextID() int {
	return m.nextID
}

// GenerateReport returns the report of every task in creation order
func (m *TaskManager) GenerateReport() *Report {
	return m.reporting.BuildReport(m.reportTitle, m.tasks)
}

// GenerateFilteredReport returns the report of the tasks matching filter
func (m *TaskManager) GenerateFilteredReport(filter domain.TaskFilter) *Report {
	var selected []domain.Task
	for _, task := range m.tasks {
		if filter.Matches(task) {
			selected = append(selected, task)
		}
	}
	return m.reporting.BuildReport(m.reportTitle, selected)
}

// PrintReport writes the plain text report to w
func (m *TaskManager) PrintReport(w io.Writer) error {
	return m.GenerateReport().WriteText(w, m.reportWidth)
}

// Close releases every task. Handles obtained earlier become invalid.
// Closing an already closed manager is a no-op.
func (m *TaskManager) Close() error {
	if m.closed {
		return nil
	}
	released := len(m.tasks)
	m.tasks = nil
	m.closed = true
	m.logger.Debug("task manager released", "tasks", released)
	return nil
}

// Closed reports whether Close has been called
func (m *TaskManager) Closed() bool {
	return m.closed
}

// Scope runs fn with m and closes m when fn returns, whatever the outcome
func Scope(m *TaskManager, fn func(*TaskManager) error) error {
	defer m.Close()
	return fn(m)
}

// add appends task and advances the id counter
func (m *TaskManager) add(task domain.Task) int {
	m.tasks = append(m.tasks, task)
	m.nextID++
	m.logger.Debug("task created", "id", task.ID(), "kind", task.Kind().String(), "title", task.Title())
	return task.ID()
}

// validateTitle applies the configured title policy ahead of the domain check
func (m *TaskManager) validateTitle(title, message string, kind domain.Kind) error {
	if err := m.taskValidator.ValidateTitle(title); err != nil {
		return errors.NewValidationError(message, err).WithContext("kind", kind.String())
	}
	return nil
}

func (m *TaskManager) checkOpen() error {
	if m.closed {
		return errors.NewReleasedError("task manager", "closed")
	}
	return nil
}

func (m *TaskManager) handle(index int) *TaskHandle {
	return &TaskHandle{owner: m, index: index, id: m.tasks[index].ID()}
}
