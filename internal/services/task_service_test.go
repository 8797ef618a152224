package services

import (
	"github.com/yukikurage/task-manager/internal/auth"
)

func (s *ServiceTestSuite) TestCreateTask_AuthorFromPrincipal() {
	author := s.register("t@x.com")
	executor := s.register("exec@x.com")
	status := s.status("New")
	bug := s.label("Bug")

	executorID := executor.ID
	task, err := s.tasks.CreateTask(s.ctx, s.principal(author), TaskInput{
		Name:         " Fix bug ",
		Description:  "Crash on start",
		TaskStatusID: status.ID,
		ExecutorID:   &executorID,
		LabelIDs:     []uint64{bug.ID, bug.ID},
	})
	s.Require().NoError(err)

	s.Equal("Fix bug", task.Name)
	s.Equal("t@x.com", task.Author.Email)
	s.Equal("New", task.TaskStatus.Name)
	s.Require().NotNil(task.Executor)
	s.Equal("exec@x.com", task.Executor.Email)
	s.Equal([]string{"Bug"}, labelNames(task.Labels))

	fetched, err := s.tasks.GetTask(s.ctx, task.ID)
	s.Require().NoError(err)
	s.Equal(task.Author.ID, fetched.Author.ID)
	s.Equal([]uint64{bug.ID}, fetched.LabelIDs())
}

func (s *ServiceTestSuite) TestCreateTask_UnresolvedReferencesWriteNothing() {
	author := s.register("t@x.com")
	status := s.status("New")
	bug := s.label("Bug")
	missing := uint64(4242)

	tests := []struct {
		name    string
		input   TaskInput
		wantErr error
	}{
		{"missing status", TaskInput{Name: "x", TaskStatusID: missing}, ErrTaskStatusNotFound},
		{"missing executor", TaskInput{Name: "x", TaskStatusID: status.ID, ExecutorID: &missing}, ErrExecutorNotFound},
		{"missing label", TaskInput{Name: "x", TaskStatusID: status.ID, LabelIDs: []uint64{bug.ID, missing}}, ErrLabelNotFound},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			before := s.taskCount()

			_, err := s.tasks.CreateTask(s.ctx, s.principal(author), tt.input)
			s.ErrorIs(err, ErrUnresolvedReference)
			s.ErrorIs(err, tt.wantErr)

			s.Equal(before, s.taskCount())
		})
	}

	var links int64
	s.Require().NoError(s.db.Table("task_labels").Count(&links).Error)
	s.Zero(links)
}

func (s *ServiceTestSuite) TestCreateTask_UnknownAuthor() {
	status := s.status("New")

	_, err := s.tasks.CreateTask(s.ctx, auth.Principal{UserID: 77, Email: "ghost@x.com"}, TaskInput{
		Name:         "Orphan",
		TaskStatusID: status.ID,
	})
	s.ErrorIs(err, ErrAuthorNotFound)
	s.NotErrorIs(err, ErrUnresolvedReference)
	s.Zero(s.taskCount())
}

func (s *ServiceTestSuite) TestCreateTask_BlankName() {
	author := s.register("t@x.com")
	status := s.status("New")

	_, err := s.tasks.CreateTask(s.ctx, s.principal(author), TaskInput{Name: "  ", TaskStatusID: status.ID})
	s.ErrorIs(err, ErrNameRequired)
}

func (s *ServiceTestSuite) TestUpdateTask_ReplacesReferences() {
	author := s.register("t@x.com")
	editor := s.register("editor@x.com")
	open := s.status("Open")
	done := s.status("Done")
	a := s.label("A")
	b := s.label("B")
	c := s.label("C")

	executorID := editor.ID
	created, err := s.tasks.CreateTask(s.ctx, s.principal(author), TaskInput{
		Name:         "Original",
		TaskStatusID: open.ID,
		ExecutorID:   &executorID,
		LabelIDs:     []uint64{a.ID, b.ID},
	})
	s.Require().NoError(err)

	updated, err := s.tasks.UpdateTask(s.ctx, created.ID, TaskInput{
		Name:         "Renamed",
		Description:  "now with C",
		TaskStatusID: done.ID,
		LabelIDs:     []uint64{c.ID},
	})
	s.Require().NoError(err)

	s.Equal("Renamed", updated.Name)
	s.Equal("Done", updated.TaskStatus.Name)
	s.Nil(updated.Executor)
	s.Equal([]string{"C"}, labelNames(updated.Labels))
	s.Equal("t@x.com", updated.Author.Email)

	updated, err = s.tasks.UpdateTask(s.ctx, created.ID, TaskInput{Name: "Renamed", TaskStatusID: done.ID})
	s.Require().NoError(err)
	s.Empty(updated.Labels)
}

func (s *ServiceTestSuite) TestUpdateTask_FailureKeepsPreviousState() {
	author := s.register("t@x.com")
	status := s.status("Open")
	a := s.label("A")
	task := s.task(author, "Stable", status.ID, a.ID)

	_, err := s.tasks.UpdateTask(s.ctx, task.ID, TaskInput{
		Name:         "Changed",
		TaskStatusID: status.ID,
		LabelIDs:     []uint64{9999},
	})
	s.ErrorIs(err, ErrUnresolvedReference)

	stored, err := s.tasks.GetTask(s.ctx, task.ID)
	s.Require().NoError(err)
	s.Equal("Stable", stored.Name)
	s.Equal([]string{"A"}, labelNames(stored.Labels))

	_, err = s.tasks.UpdateTask(s.ctx, 9999, TaskInput{Name: "x", TaskStatusID: status.ID})
	s.ErrorIs(err, ErrTaskNotFound)
}

func (s *ServiceTestSuite) TestDeleteTask() {
	author := s.register("t@x.com")
	other := s.register("other@x.com")
	status := s.status("Open")
	bug := s.label("Bug")
	task := s.task(author, "Mine", status.ID, bug.ID)

	s.ErrorIs(s.tasks.DeleteTask(s.ctx, s.principal(other), task.ID), auth.ErrForbidden)
	_, err := s.tasks.GetTask(s.ctx, task.ID)
	s.Require().NoError(err)

	s.Require().NoError(s.tasks.DeleteTask(s.ctx, s.principal(author), task.ID))
	_, err = s.tasks.GetTask(s.ctx, task.ID)
	s.ErrorIs(err, ErrTaskNotFound)

	// Not found is reported before ownership.
	s.ErrorIs(s.tasks.DeleteTask(s.ctx, s.principal(other), task.ID), ErrTaskNotFound)

	// The label is free once the task is gone.
	s.NoError(s.labels.DeleteLabel(s.ctx, bug.ID))
}

func (s *ServiceTestSuite) TestListTasks() {
	author := s.register("t@x.com")
	status := s.status("Open")
	s.task(author, "one", status.ID)
	s.task(author, "two", status.ID)

	tasks, err := s.tasks.ListTasks(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(tasks, 2)
	s.Equal("one", tasks[0].Name)
	s.Equal("t@x.com", tasks[1].Author.Email)
}
