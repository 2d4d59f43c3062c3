// Package mcp provides an MCP (Model Context Protocol) server that exposes
// task tracker operations as MCP tools for AI coding assistants.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AbinashGupta/task-manager/internal/core"
	"github.com/AbinashGupta/task-manager/pkg/models"
	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the task service and exposes it as MCP tools.
type Server struct {
	server       *gomcp.Server
	tasks        core.TaskService
	dueSoonHours int
}

// NewServer creates a new MCP server over the given task service.
func NewServer(tasks core.TaskService, dueSoonHours int, version string) *Server {
	if version == "" {
		version = "dev"
	}
	if dueSoonHours <= 0 {
		dueSoonHours = core.DefaultDueSoonHours
	}

	s := &Server{tasks: tasks, dueSoonHours: dueSoonHours}
	s.server = gomcp.NewServer(
		&gomcp.Implementation{Name: "taskman", Version: version},
		nil,
	)
	s.registerTools()
	return s
}

// Run starts the MCP server on stdio, blocking until the client disconnects
// or the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &gomcp.StdioTransport{})
}

// MCPServer returns the underlying mcp.Server for testing purposes.
func (s *Server) MCPServer() *gomcp.Server {
	return s.server
}

// --- Tool input/output types ---

type taskOutput struct {
	ID                 string   `json:"id"`
	Title              string   `json:"title"`
	Description        string   `json:"description,omitempty"`
	Note               string   `json:"note,omitempty"`
	Status             string   `json:"status"`
	Priority           string   `json:"priority"`
	DueDate            string   `json:"due_date,omitempty"`
	CreatedAt          string   `json:"created_at"`
	UpdatedAt          string   `json:"updated_at"`
	RecurringFrequency string   `json:"recurring_frequency"`
	RecurringEndDate   string   `json:"recurring_end_date,omitempty"`
	Tags               []string `json:"tags,omitempty"`
}

type getTaskInput struct {
	TaskID string `json:"task_id" jsonschema:"required,the unique task identifier (UUID)"`
}

type listTasksInput struct {
	Status    string `json:"status,omitempty" jsonschema:"filter by status (todo, in-progress, blocked, done)"`
	Priority  string `json:"priority,omitempty" jsonschema:"filter by priority (low, medium, high)"`
	DueBefore string `json:"due_before,omitempty" jsonschema:"inclusive RFC3339 upper bound on due date"`
	DueAfter  string `json:"due_after,omitempty" jsonschema:"inclusive RFC3339 lower bound on due date"`
	Tags      string `json:"tags,omitempty" jsonschema:"comma-separated tags, case-insensitive any-of match"`
}

type listTasksOutput struct {
	Tasks []taskOutput `json:"tasks"`
	Count int          `json:"count"`
}

type createTaskInput struct {
	Title              string   `json:"title" jsonschema:"required,task title (max 200 characters)"`
	Description        string   `json:"description,omitempty" jsonschema:"free-text description (max 2000 characters)"`
	Note               string   `json:"note,omitempty" jsonschema:"short note shown on the kanban tile (max 100 characters)"`
	Priority           string   `json:"priority,omitempty" jsonschema:"low, medium, or high (default medium)"`
	DueDate            string   `json:"due_date,omitempty" jsonschema:"RFC3339 due date"`
	RecurringFrequency string   `json:"recurring_frequency,omitempty" jsonschema:"none, daily, weekly, monthly, or yearly"`
	RecurringEndDate   string   `json:"recurring_end_date,omitempty" jsonschema:"RFC3339 last eligible occurrence (inclusive)"`
	Tags               []string `json:"tags,omitempty"`
}

type updateTaskInput struct {
	TaskID             string    `json:"task_id" jsonschema:"required,the unique task identifier (UUID)"`
	Title              *string   `json:"title,omitempty" jsonschema:"new title"`
	Description        *string   `json:"description,omitempty" jsonschema:"new description"`
	Note               *string   `json:"note,omitempty" jsonschema:"new note"`
	Status             *string   `json:"status,omitempty" jsonschema:"new status (todo, in-progress, blocked, done)"`
	Priority           *string   `json:"priority,omitempty" jsonschema:"new priority (low, medium, high)"`
	DueDate            *string   `json:"due_date,omitempty" jsonschema:"new RFC3339 due date; empty string clears it"`
	RecurringFrequency *string   `json:"recurring_frequency,omitempty" jsonschema:"new frequency (none, daily, weekly, monthly, yearly)"`
	RecurringEndDate   *string   `json:"recurring_end_date,omitempty" jsonschema:"new RFC3339 recurrence end date; empty string clears it"`
	Tags               *[]string `json:"tags,omitempty" jsonschema:"replacement tag list"`
}

type moveTaskInput struct {
	TaskID string `json:"task_id" jsonschema:"required,the unique task identifier (UUID)"`
	Status string `json:"status" jsonschema:"required,the new status (todo, in-progress, blocked, done)"`
}

type kanbanInput struct{}

type kanbanOutput struct {
	Columns map[string][]taskOutput `json:"columns"`
}

type calendarInput struct {
	View string `json:"view" jsonschema:"required,window size: daily, weekly, or monthly"`
	Date string `json:"date" jsonschema:"required,RFC3339 anchor date"`
}

type calendarInstance struct {
	taskOutput
	Virtual  bool   `json:"virtual"`
	ParentID string `json:"parent_id,omitempty"`
}

type calendarOutput struct {
	View      string             `json:"view"`
	StartDate string             `json:"start_date"`
	EndDate   string             `json:"end_date"`
	Instances []calendarInstance `json:"instances"`
	Count     int                `json:"count"`
}

type reminderCountsInput struct{}

type reminderCountsOutput struct {
	Overdue  int `json:"overdue"`
	DueToday int `json:"due_today"`
	DueSoon  int `json:"due_soon"`
}

// --- Tool registration ---

func (s *Server) registerTools() {
	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "get_task",
		Description: "Get task details by ID, including status, priority, due date, and recurrence settings.",
	}, s.handleGetTask)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "list_tasks",
		Description: "List tasks with optional filters on status, priority, due date range, and tags.",
	}, s.handleListTasks)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "create_task",
		Description: "Create a new task. Returns the created task with its assigned ID and timestamps.",
	}, s.handleCreateTask)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "update_task",
		Description: "Partially update a task. Only provided fields change; empty date strings clear the date.",
	}, s.handleUpdateTask)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "move_task",
		Description: "Change a task's status. Completing a recurring task automatically spawns its next occurrence.",
	}, s.handleMoveTask)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "kanban_columns",
		Description: "Group all tasks into the four kanban columns: todo, in-progress, blocked, done.",
	}, s.handleKanban)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "calendar",
		Description: "Expand all tasks, including recurring occurrences, over a daily, weekly, or monthly window.",
	}, s.handleCalendar)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "reminder_counts",
		Description: "Count overdue, due-today, and due-soon tasks.",
	}, s.handleReminderCounts)
}

// --- Tool handlers ---

func (s *Server) handleGetTask(_ context.Context, _ *gomcp.CallToolRequest, input getTaskInput) (*gomcp.CallToolResult, taskOutput, error) {
	if input.TaskID == "" {
		return errorResult("task_id is required"), taskOutput{}, nil
	}

	task, err := s.tasks.GetTask(input.TaskID)
	if err != nil {
		return errorResult(err.Error()), taskOutput{}, nil
	}
	return nil, taskToOutput(task), nil
}

func (s *Server) handleListTasks(_ context.Context, _ *gomcp.CallToolRequest, input listTasksInput) (*gomcp.CallToolResult, listTasksOutput, error) {
	filter := core.ListFilter{
		Status:   models.TaskStatus(input.Status),
		Priority: models.Priority(input.Priority),
	}
	if input.DueBefore != "" {
		t, err := time.Parse(time.RFC3339, input.DueBefore)
		if err != nil {
			return errorResult(fmt.Sprintf("parsing due_before: %s", err)), listTasksOutput{}, nil
		}
		filter.DueBefore = &t
	}
	if input.DueAfter != "" {
		t, err := time.Parse(time.RFC3339, input.DueAfter)
		if err != nil {
			return errorResult(fmt.Sprintf("parsing due_after: %s", err)), listTasksOutput{}, nil
		}
		filter.DueAfter = &t
	}
	if input.Tags != "" {
		filter.Tags = splitCommaList(input.Tags)
	}

	tasks, err := s.tasks.ListTasks(filter)
	if err != nil {
		return errorResult(err.Error()), listTasksOutput{}, nil
	}

	out := listTasksOutput{Tasks: make([]taskOutput, len(tasks)), Count: len(tasks)}
	for i, t := range tasks {
		out.Tasks[i] = taskToOutput(t)
	}
	return nil, out, nil
}

func (s *Server) handleCreateTask(_ context.Context, _ *gomcp.CallToolRequest, input createTaskInput) (*gomcp.CallToolResult, taskOutput, error) {
	in := core.CreateTaskInput{
		Title:              input.Title,
		Description:        input.Description,
		Note:               input.Note,
		Priority:           models.Priority(input.Priority),
		RecurringFrequency: models.Frequency(input.RecurringFrequency),
		Tags:               input.Tags,
	}
	if input.DueDate != "" {
		t, err := time.Parse(time.RFC3339, input.DueDate)
		if err != nil {
			return errorResult(fmt.Sprintf("parsing due_date: %s", err)), taskOutput{}, nil
		}
		in.DueDate = &t
	}
	if input.RecurringEndDate != "" {
		t, err := time.Parse(time.RFC3339, input.RecurringEndDate)
		if err != nil {
			return errorResult(fmt.Sprintf("parsing recurring_end_date: %s", err)), taskOutput{}, nil
		}
		in.RecurringEndDate = &t
	}

	task, err := s.tasks.CreateTask(in)
	if err != nil {
		return errorResult(err.Error()), taskOutput{}, nil
	}
	return nil, taskToOutput(task), nil
}

func (s *Server) handleUpdateTask(_ context.Context, _ *gomcp.CallToolRequest, input updateTaskInput) (*gomcp.CallToolResult, taskOutput, error) {
	if input.TaskID == "" {
		return errorResult("task_id is required"), taskOutput{}, nil
	}

	patch := core.TaskPatch{
		Title:       input.Title,
		Description: input.Description,
		Note:        input.Note,
	}
	if input.Status != nil {
		st := models.TaskStatus(*input.Status)
		patch.Status = &st
	}
	if input.Priority != nil {
		p := models.Priority(*input.Priority)
		patch.Priority = &p
	}
	if input.RecurringFrequency != nil {
		f := models.Frequency(*input.RecurringFrequency)
		patch.RecurringFrequency = &f
	}
	if input.Tags != nil {
		patch.Tags = input.Tags
	}
	if input.DueDate != nil {
		due, err := parseOptionalPatchTime(*input.DueDate)
		if err != nil {
			return errorResult(fmt.Sprintf("parsing due_date: %s", err)), taskOutput{}, nil
		}
		patch.DueDate = &due
	}
	if input.RecurringEndDate != nil {
		end, err := parseOptionalPatchTime(*input.RecurringEndDate)
		if err != nil {
			return errorResult(fmt.Sprintf("parsing recurring_end_date: %s", err)), taskOutput{}, nil
		}
		patch.RecurringEndDate = &end
	}

	task, err := s.tasks.UpdateTask(input.TaskID, patch)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return errorResult(fmt.Sprintf("task %s not found", input.TaskID)), taskOutput{}, nil
		}
		return errorResult(err.Error()), taskOutput{}, nil
	}
	return nil, taskToOutput(task), nil
}

func (s *Server) handleMoveTask(_ context.Context, _ *gomcp.CallToolRequest, input moveTaskInput) (*gomcp.CallToolResult, taskOutput, error) {
	if input.TaskID == "" {
		return errorResult("task_id is required"), taskOutput{}, nil
	}
	if input.Status == "" {
		return errorResult("status is required"), taskOutput{}, nil
	}

	task, err := s.tasks.MoveTask(input.TaskID, models.TaskStatus(input.Status))
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return errorResult(fmt.Sprintf("task %s not found", input.TaskID)), taskOutput{}, nil
		}
		return errorResult(err.Error()), taskOutput{}, nil
	}
	return nil, taskToOutput(task), nil
}

func (s *Server) handleKanban(_ context.Context, _ *gomcp.CallToolRequest, _ kanbanInput) (*gomcp.CallToolResult, kanbanOutput, error) {
	columns, err := s.tasks.KanbanColumns()
	if err != nil {
		return errorResult(err.Error()), kanbanOutput{}, nil
	}

	out := kanbanOutput{Columns: make(map[string][]taskOutput, len(columns))}
	for status, tasks := range columns {
		col := make([]taskOutput, len(tasks))
		for i, t := range tasks {
			col[i] = taskToOutput(t)
		}
		out.Columns[string(status)] = col
	}
	return nil, out, nil
}

func (s *Server) handleCalendar(_ context.Context, _ *gomcp.CallToolRequest, input calendarInput) (*gomcp.CallToolResult, calendarOutput, error) {
	view := core.CalendarView(input.View)
	switch view {
	case core.ViewDaily, core.ViewWeekly, core.ViewMonthly:
	default:
		return errorResult(fmt.Sprintf("invalid view %q: must be daily, weekly, or monthly", input.View)), calendarOutput{}, nil
	}

	date, err := time.Parse(time.RFC3339, input.Date)
	if err != nil {
		return errorResult(fmt.Sprintf("parsing date: %s", err)), calendarOutput{}, nil
	}

	start, end := core.WindowFor(view, date)
	instances, err := s.tasks.ExpandWindow(start, end)
	if err != nil {
		return errorResult(err.Error()), calendarOutput{}, nil
	}

	out := calendarOutput{
		View:      input.View,
		StartDate: start.Format(time.RFC3339),
		EndDate:   end.Format(time.RFC3339),
		Instances: make([]calendarInstance, len(instances)),
		Count:     len(instances),
	}
	for i, inst := range instances {
		ci := calendarInstance{taskOutput: taskToOutput(inst.Task), Virtual: inst.Virtual}
		ci.ID = inst.ID()
		if inst.Virtual {
			ci.ParentID = inst.ParentID
		}
		out.Instances[i] = ci
	}
	return nil, out, nil
}

func (s *Server) handleReminderCounts(_ context.Context, _ *gomcp.CallToolRequest, _ reminderCountsInput) (*gomcp.CallToolResult, reminderCountsOutput, error) {
	tasks, err := s.tasks.ListTasks(core.ListFilter{})
	if err != nil {
		return errorResult(err.Error()), reminderCountsOutput{}, nil
	}

	counts := core.CountReminders(tasks, time.Now().UTC(), s.dueSoonHours)
	return nil, reminderCountsOutput{
		Overdue:  counts.Overdue,
		DueToday: counts.DueToday,
		DueSoon:  counts.DueSoon,
	}, nil
}

// --- Helpers ---

func taskToOutput(t models.Task) taskOutput {
	out := taskOutput{
		ID:                 t.ID,
		Title:              t.Title,
		Description:        t.Description,
		Note:               t.Note,
		Status:             string(t.Status),
		Priority:           string(t.Priority),
		CreatedAt:          t.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          t.UpdatedAt.Format(time.RFC3339),
		RecurringFrequency: string(t.RecurringFrequency),
		Tags:               t.Tags,
	}
	if t.DueDate != nil {
		out.DueDate = t.DueDate.Format(time.RFC3339)
	}
	if t.RecurringEndDate != nil {
		out.RecurringEndDate = t.RecurringEndDate.Format(time.RFC3339)
	}
	return out
}

func errorResult(msg string) *gomcp.CallToolResult {
	return &gomcp.CallToolResult{
		Content: []gomcp.Content{&gomcp.TextContent{Text: msg}},
		IsError: true,
	}
}

// parseOptionalPatchTime treats an empty string as "clear the field".
func parseOptionalPatchTime(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func splitCommaList(s string) []string {
	var out []string
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == ',' {
			if part := s[start:i]; part != "" {
				out = append(out, part)
			}
			start = i + 1
		}
	}
	return out
}
