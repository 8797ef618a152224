package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func (s *ServiceTestSuite) TestResolveLabels() {
	a := s.label("A")
	b := s.label("B")
	resolver := NewResolver(s.store)

	labels, err := resolver.ResolveLabels(s.ctx, []uint64{b.ID, a.ID, b.ID})
	s.Require().NoError(err)
	s.Equal([]string{"A", "B"}, labelNames(labels))

	labels, err = resolver.ResolveLabels(s.ctx, nil)
	s.Require().NoError(err)
	s.NotNil(labels)
	s.Empty(labels)

	_, err = resolver.ResolveLabels(s.ctx, []uint64{a.ID, 500, 501})
	s.ErrorIs(err, ErrLabelNotFound)
	s.Contains(err.Error(), "[500 501]")
}

func (s *ServiceTestSuite) TestResolveExecutor() {
	user := s.register("exec@x.com")
	resolver := NewResolver(s.store)

	executor, err := resolver.ResolveExecutor(s.ctx, nil)
	s.Require().NoError(err)
	s.Nil(executor)

	executor, err = resolver.ResolveExecutor(s.ctx, &user.ID)
	s.Require().NoError(err)
	s.Equal("exec@x.com", executor.Email)
}

func (s *ServiceTestSuite) TestResolveAuthor() {
	s.register("t@x.com")
	resolver := NewResolver(s.store)

	_, err := resolver.ResolveAuthor(s.ctx, "t@x.com")
	s.Require().NoError(err)

	_, err = resolver.ResolveAuthor(s.ctx, "")
	s.ErrorIs(err, ErrAuthorNotFound)
}

func TestUniqueUint64(t *testing.T) {
	assert.Equal(t, []uint64{3, 1, 2}, uniqueUint64([]uint64{3, 1, 3, 2, 1}))
	assert.Empty(t, uniqueUint64(nil))
}
