package app_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MariuszKam/Organizer/internal/adapters/storage/memory"
	"github.com/MariuszKam/Organizer/internal/app"
	"github.com/MariuszKam/Organizer/internal/ports"
)

type projectFixture struct {
	create  *app.CreateProjectService
	read    *app.ReadProjectService
	update  *app.UpdateProjectService
	del     *app.DeleteProjectService
	addTask *app.AddTaskToProjectService
	tasks   *app.CreateTaskService
}

func newProjectFixture(t *testing.T) projectFixture {
	t.Helper()
	projects := memory.NewProjectStore()
	tasks := memory.NewTaskStore()
	users := memory.NewUserStore()

	create, err := app.NewCreateProjectService(projects, memory.ProjectIDGenerator{}, nil)
	require.NoError(t, err)
	read, err := app.NewReadProjectService(projects, nil)
	require.NoError(t, err)
	update, err := app.NewUpdateProjectService(projects, nil)
	require.NoError(t, err)
	del, err := app.NewDeleteProjectService(projects, nil)
	require.NoError(t, err)
	addTask, err := app.NewAddTaskToProjectService(projects, tasks, nil)
	require.NoError(t, err)
	createTask, err := app.NewCreateTaskService(tasks, users, memory.TaskIDGenerator{}, nil)
	require.NoError(t, err)
	return projectFixture{create: create, read: read, update: update, del: del, addTask: addTask, tasks: createTask}
}

func TestCreateProject(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("starts empty", func(t *testing.T) {
		t.Parallel()
		f := newProjectFixture(t)

		id, err := f.create.Handle(ctx, &ports.CreateProjectCommand{Name: ptr("Apollo")})
		require.NoError(t, err)

		got, err := f.read.ByID(ctx, &ports.ReadProjectCommand{ID: ptr(id.String())})
		require.NoError(t, err)
		assert.Equal(t, "Apollo", got.Name().String())
		assert.Empty(t, got.Tasks())
	})

	t.Run("failure variants", func(t *testing.T) {
		t.Parallel()
		f := newProjectFixture(t)

		_, err := f.create.Handle(ctx, nil)
		assert.ErrorIs(t, err, app.ErrMissingCommand)
		_, err = f.create.Handle(ctx, &ports.CreateProjectCommand{})
		assert.ErrorIs(t, err, app.ErrMissingProjectName)
		_, err = f.create.Handle(ctx, &ports.CreateProjectCommand{Name: ptr("   ")})
		assert.ErrorIs(t, err, app.ErrInvalidProjectNameFormat)
	})
}

func TestUpdateProject(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("renames", func(t *testing.T) {
		t.Parallel()
		f := newProjectFixture(t)
		id, err := f.create.Handle(ctx, &ports.CreateProjectCommand{Name: ptr("Apollo")})
		require.NoError(t, err)

		_, err = f.update.Handle(ctx, &ports.UpdateProjectCommand{ID: ptr(id.String()), Name: ptr("Artemis")})
		require.NoError(t, err)

		got, err := f.read.ByID(ctx, &ports.ReadProjectCommand{ID: ptr(id.String())})
		require.NoError(t, err)
		assert.Equal(t, "Artemis", got.Name().String())
	})

	t.Run("failure variants", func(t *testing.T) {
		t.Parallel()
		f := newProjectFixture(t)
		id, err := f.create.Handle(ctx, &ports.CreateProjectCommand{Name: ptr("Apollo")})
		require.NoError(t, err)

		tests := []struct {
			name string
			cmd  *ports.UpdateProjectCommand
			want error
		}{
			{"nil command", nil, app.ErrMissingCommand},
			{"no fields checked before missing id", &ports.UpdateProjectCommand{}, app.ErrNoFieldsProvided},
			{"missing id", &ports.UpdateProjectCommand{Name: ptr("Artemis")}, app.ErrMissingProjectID},
			{"invalid id", &ports.UpdateProjectCommand{ID: ptr("nope"), Name: ptr("Artemis")}, app.ErrInvalidProjectIDFormat},
			{"unknown id", &ports.UpdateProjectCommand{ID: ptr("1b4e28ba-2fa1-11d2-883f-0016d3cca427"), Name: ptr("Artemis")}, app.ErrProjectNotFound},
			{"invalid name", &ports.UpdateProjectCommand{ID: ptr(id.String()), Name: ptr("")}, app.ErrInvalidProjectNameFormat},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := f.update.Handle(ctx, tt.cmd)
				assert.ErrorIs(t, err, tt.want)
			})
		}
	})
}

func TestDeleteProject(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newProjectFixture(t)

	id, err := f.create.Handle(ctx, &ports.CreateProjectCommand{Name: ptr("Apollo")})
	require.NoError(t, err)

	got, err := f.del.Handle(ctx, &ports.DeleteProjectCommand{ID: ptr(id.String())})
	require.NoError(t, err)
	assert.Equal(t, id, got)

	_, err = f.read.ByID(ctx, &ports.ReadProjectCommand{ID: ptr(id.String())})
	assert.ErrorIs(t, err, app.ErrProjectNotFound)

	_, err = f.del.Handle(ctx, &ports.DeleteProjectCommand{ID: ptr(id.String())})
	assert.ErrorIs(t, err, app.ErrProjectNotFound)
}

func TestAddTaskToProject(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	seed := func(t *testing.T) (projectFixture, string, string) {
		t.Helper()
		f := newProjectFixture(t)
		projectID, err := f.create.Handle(ctx, &ports.CreateProjectCommand{Name: ptr("Apollo")})
		require.NoError(t, err)
		taskID, err := f.tasks.HandleBasic(ctx, &ports.CreateBasicTaskCommand{Name: ptr("Write report"), Description: ptr("Quarterly numbers")})
		require.NoError(t, err)
		return f, projectID.String(), taskID.String()
	}

	t.Run("references the task in insertion order", func(t *testing.T) {
		t.Parallel()
		f, projectID, firstTask := seed(t)
		secondTask, err := f.tasks.HandleBasic(ctx, &ports.CreateBasicTaskCommand{Name: ptr("Review report"), Description: ptr("Second pass")})
		require.NoError(t, err)

		_, err = f.addTask.Handle(ctx, &ports.AddTaskToProjectCommand{ProjectID: ptr(projectID), TaskID: ptr(firstTask)})
		require.NoError(t, err)
		_, err = f.addTask.Handle(ctx, &ports.AddTaskToProjectCommand{ProjectID: ptr(projectID), TaskID: ptr(secondTask.String())})
		require.NoError(t, err)

		got, err := f.read.ByID(ctx, &ports.ReadProjectCommand{ID: ptr(projectID)})
		require.NoError(t, err)
		require.Len(t, got.Tasks(), 2)
		assert.Equal(t, firstTask, got.Tasks()[0].String())
		assert.Equal(t, secondTask.String(), got.Tasks()[1].String())
	})

	t.Run("rejects a duplicate reference", func(t *testing.T) {
		t.Parallel()
		f, projectID, taskID := seed(t)

		_, err := f.addTask.Handle(ctx, &ports.AddTaskToProjectCommand{ProjectID: ptr(projectID), TaskID: ptr(taskID)})
		require.NoError(t, err)
		_, err = f.addTask.Handle(ctx, &ports.AddTaskToProjectCommand{ProjectID: ptr(projectID), TaskID: ptr(taskID)})
		assert.ErrorIs(t, err, app.ErrTaskAlreadyInProject)

		got, err := f.read.ByID(ctx, &ports.ReadProjectCommand{ID: ptr(projectID)})
		require.NoError(t, err)
		assert.Len(t, got.Tasks(), 1)
	})

	t.Run("failure variants", func(t *testing.T) {
		t.Parallel()
		f, projectID, taskID := seed(t)
		unknown := "1b4e28ba-2fa1-11d2-883f-0016d3cca427"

		tests := []struct {
			name string
			cmd  *ports.AddTaskToProjectCommand
			want error
		}{
			{"nil command", nil, app.ErrMissingCommand},
			{"missing project id", &ports.AddTaskToProjectCommand{TaskID: ptr(taskID)}, app.ErrMissingProjectID},
			{"invalid project id", &ports.AddTaskToProjectCommand{ProjectID: ptr("nope"), TaskID: ptr(taskID)}, app.ErrInvalidProjectIDFormat},
			{"missing task id", &ports.AddTaskToProjectCommand{ProjectID: ptr(projectID)}, app.ErrMissingTaskID},
			{"invalid task id", &ports.AddTaskToProjectCommand{ProjectID: ptr(projectID), TaskID: ptr("nope")}, app.ErrInvalidTaskIDFormat},
			{"unknown project", &ports.AddTaskToProjectCommand{ProjectID: ptr(unknown), TaskID: ptr(taskID)}, app.ErrProjectNotFound},
			{"unknown task", &ports.AddTaskToProjectCommand{ProjectID: ptr(projectID), TaskID: ptr(unknown)}, app.ErrTaskNotFound},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := f.addTask.Handle(ctx, tt.cmd)
				assert.ErrorIs(t, err, tt.want)
			})
		}
	})
}

func TestListProjects(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newProjectFixture(t)

	for _, name := range []string{"Apollo", "Artemis"} {
		_, err := f.create.Handle(ctx, &ports.CreateProjectCommand{Name: ptr(name)})
		require.NoError(t, err)
	}

	all, err := f.read.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
