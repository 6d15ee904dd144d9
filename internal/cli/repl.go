package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/valter-silva-au/taskdeck/internal/core"
	"github.com/valter-silva-au/taskdeck/pkg/models"
)

// DriverState is the interactive loop state.
type DriverState int

const (
	StateRunning DriverState = iota
	StateStopped
)

// sortChoices maps the sort prompt's numeric answers to orderings.
var sortChoices = map[string]models.SortType{
	"1": models.SortByTitle,
	"2": models.SortByStatus,
	"3": models.SortByCreation,
}

// Driver runs the interactive read-eval-print loop against a
// TaskService. It starts Running and stops on the exit command or when
// the input stream ends; stopping on end of input keeps a closed stdin
// from spinning the loop.
type Driver struct {
	svc   core.TaskService
	in    *bufio.Scanner
	rend  *Renderer
	cfg   *models.Config
	state DriverState
}

// NewDriver creates a Driver reading commands from in and writing
// everything it renders to out.
func NewDriver(svc core.TaskService, in io.Reader, out io.Writer, cfg *models.Config) *Driver {
	return &Driver{
		svc:   svc,
		in:    bufio.NewScanner(in),
		rend:  NewRenderer(out, cfg),
		cfg:   cfg,
		state: StateRunning,
	}
}

// State returns the driver's current loop state.
func (d *Driver) State() DriverState {
	return d.state
}

// Run loops until the driver stops. Domain errors are rendered and
// swallowed at the dispatch boundary; nothing a command does is fatal.
func (d *Driver) Run() {
	for d.state == StateRunning {
		d.rend.Menu()
		d.rend.Prompt("> ")
		line, ok := d.readLine()
		if !ok {
			d.state = StateStopped
			break
		}
		d.dispatch(ParseCommand(line))
	}
}

// readLine reads one line of input. The second return is false at end
// of input.
func (d *Driver) readLine() (string, bool) {
	if !d.in.Scan() {
		return "", false
	}
	return d.in.Text(), true
}

// dispatch invokes the handler for one parsed command and renders any
// error it returns. Validation failures use the service's recorded
// reason; other domain errors use their own description; anything else
// is reported generically.
func (d *Driver) dispatch(cmd Command) {
	var err error
	switch cmd {
	case CmdAdd:
		err = d.doAdd()
	case CmdList:
		err = d.doList()
	case CmdComplete:
		err = d.doComplete()
	case CmdRemove:
		err = d.doRemove()
	case CmdSort:
		err = d.doSort()
	case CmdHelp:
		d.rend.Help()
	case CmdExit:
		d.state = StateStopped
		d.rend.Info("bye")
	default:
		d.rend.Error("unrecognized command, type 'help' for the menu")
	}
	if err != nil {
		d.rend.Error(d.describe(err))
	}
}

func (d *Driver) describe(err error) string {
	if d.svc.Status() == models.StatusError && d.svc.LastReason() != "" {
		return d.svc.LastReason()
	}
	var derr *models.DomainError
	if errors.As(err, &derr) {
		return derr.Error()
	}
	return fmt.Sprintf("unexpected error: %v", err)
}

func (d *Driver) doAdd() error {
	line, err := d.promptLine("Title: ")
	if err != nil {
		return err
	}
	task, err := d.svc.AddTask(line)
	if err != nil {
		return err
	}
	d.rend.Info(fmt.Sprintf("added %q (%s)", task.Title, d.rend.shortID(task.ID)))
	return nil
}

func (d *Driver) doList() error {
	tasks, err := d.svc.GetAllTasks()
	if err != nil {
		return err
	}
	d.rend.TaskList(tasks, true)
	return nil
}

func (d *Driver) doComplete() error {
	task, err := d.pickTask()
	if err != nil {
		return err
	}
	done, err := d.svc.CompleteTask(task.ID)
	if err != nil {
		return err
	}
	d.rend.Info(fmt.Sprintf("completed %q", done.Title))
	return nil
}

func (d *Driver) doRemove() error {
	task, err := d.pickTask()
	if err != nil {
		return err
	}
	if err := d.svc.RemoveTask(task.ID); err != nil {
		return err
	}
	d.rend.Info(fmt.Sprintf("removed %q", task.Title))
	return nil
}

func (d *Driver) doSort() error {
	choice, err := d.promptLine(fmt.Sprintf("Sort by (1 title, 2 status, 3 creation) [%s]: ", d.cfg.DefaultSort))
	if err != nil {
		return err
	}
	choice = strings.TrimSpace(choice)

	by := d.cfg.DefaultSort
	if choice != "" {
		var ok bool
		by, ok = sortChoices[choice]
		if !ok {
			return models.Errf(models.InvalidData, "sort choice must be 1, 2, or 3")
		}
	}

	tasks, err := d.svc.GetTasksSorted(by)
	if err != nil {
		return err
	}
	d.rend.TaskList(tasks, false)
	return nil
}

// pickTask lists the tasks, prompts for an identifier prefix, and
// returns the first task whose lowercase identifier starts with it.
func (d *Driver) pickTask() (models.Task, error) {
	if err := d.doList(); err != nil {
		return models.Task{}, err
	}

	prefix, err := d.promptLine("Task id prefix: ")
	if err != nil {
		return models.Task{}, err
	}
	prefix = strings.ToLower(strings.TrimSpace(prefix))
	if prefix == "" {
		return models.Task{}, models.Errf(models.InvalidData, "an id prefix is required")
	}

	tasks, err := d.svc.GetAllTasks()
	if err != nil {
		return models.Task{}, err
	}
	for _, t := range tasks {
		if strings.HasPrefix(strings.ToLower(t.ID), prefix) {
			return t, nil
		}
	}
	return models.Task{}, models.Errf(models.NotFound, "no task with id prefix %q", prefix)
}

// promptLine prints a prompt and reads the answer. End of input while a
// command is waiting for data stops the driver and fails the command.
func (d *Driver) promptLine(prompt string) (string, error) {
	d.rend.Prompt(prompt)
	line, ok := d.readLine()
	if !ok {
		d.state = StateStopped
		return "", models.Errf(models.InvalidData, "no input available")
	}
	return line, nil
}
