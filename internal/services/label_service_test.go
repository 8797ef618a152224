package services

func (s *ServiceTestSuite) TestLabelCRUD() {
	created, err := s.labels.CreateLabel(s.ctx, "Bug")
	s.Require().NoError(err)

	_, err = s.labels.CreateLabel(s.ctx, " Bug ")
	s.ErrorIs(err, ErrLabelNameTaken)

	_, err = s.labels.CreateLabel(s.ctx, "")
	s.ErrorIs(err, ErrNameRequired)

	updated, err := s.labels.UpdateLabel(s.ctx, created.ID, "Defect")
	s.Require().NoError(err)
	s.Equal("Defect", updated.Name)

	_, err = s.labels.UpdateLabel(s.ctx, 999, "Nope")
	s.ErrorIs(err, ErrLabelNotFound)

	labels, err := s.labels.ListLabels(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"Defect"}, labelNames(labels))

	s.Require().NoError(s.labels.DeleteLabel(s.ctx, created.ID))
	_, err = s.labels.GetLabel(s.ctx, created.ID)
	s.ErrorIs(err, ErrLabelNotFound)
}

func (s *ServiceTestSuite) TestDeleteLabel_RejectedWhileAttached() {
	author := s.register("t@x.com")
	status := s.status("New")
	bug := s.label("Bug")
	s.task(author, "Tagged", status.ID, bug.ID)

	s.ErrorIs(s.labels.DeleteLabel(s.ctx, bug.ID), ErrLabelInUse)
}
