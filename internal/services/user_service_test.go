package services

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/yukikurage/task-manager/internal/auth"
	"github.com/yukikurage/task-manager/internal/constants"
	"golang.org/x/crypto/bcrypt"
)

func (s *ServiceTestSuite) TestRegister_HashesPasswordAndAssignsRole() {
	user, err := s.users.Register(s.ctx, CreateUserInput{
		Email:     " t@x.com ",
		FirstName: "Test",
		LastName:  "Test",
		Password:  "test",
	})
	s.Require().NoError(err)

	s.Equal("t@x.com", user.Email)
	s.NotEqual("test", user.PasswordHash)
	s.NoError(bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("test")))

	stored, err := s.users.GetUser(s.ctx, user.ID)
	s.Require().NoError(err)
	s.True(stored.HasRole(constants.RoleUser))
	s.True(stored.Active)
}

func (s *ServiceTestSuite) TestRegister_DuplicateEmail() {
	s.register("dup@x.com")

	_, err := s.users.Register(s.ctx, CreateUserInput{Email: "dup@x.com", Password: "other"})
	s.ErrorIs(err, ErrEmailTaken)
}

func (s *ServiceTestSuite) TestRegister_PasswordLength() {
	for _, password := range []string{
		"ab",
		strings.Repeat("a", constants.MaxPasswordLength+1),
		strings.Repeat("a", 80),
		// 25 runes, 75 bytes
		strings.Repeat("日", 25),
	} {
		_, err := s.users.Register(s.ctx, CreateUserInput{Email: "p@x.com", Password: password})
		s.ErrorIs(err, ErrPasswordLength)
	}
}

func (s *ServiceTestSuite) TestRegister_PasswordAtByteLimit() {
	for i, password := range []string{
		strings.Repeat("a", constants.MaxPasswordLength),
		strings.Repeat("日", constants.MaxPasswordLength/3),
	} {
		user, err := s.users.Register(s.ctx, CreateUserInput{
			Email:    fmt.Sprintf("limit%d@x.com", i),
			Password: password,
		})
		s.Require().NoError(err)
		s.NoError(bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)))
	}
}

func (s *ServiceTestSuite) TestUpdateUser_PasswordTooLong() {
	user := s.register("long@x.com")

	_, err := s.users.UpdateUser(s.ctx, s.principal(user), user.ID, UpdateUserInput{
		Email:    "long@x.com",
		Password: strings.Repeat("a", constants.MaxPasswordLength+1),
	})
	s.ErrorIs(err, ErrPasswordLength)
}

func (s *ServiceTestSuite) TestRegister_ConcurrentSameEmailHasOneWinner() {
	const attempts = 8

	var wg sync.WaitGroup
	errs := make(chan error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.users.Register(s.ctx, CreateUserInput{Email: "race@x.com", Password: "secret"})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	winners := 0
	for err := range errs {
		if err == nil {
			winners++
			continue
		}
		s.ErrorIs(err, ErrEmailTaken)
	}
	s.Equal(1, winners)

	users, err := s.users.ListUsers(s.ctx)
	s.Require().NoError(err)
	s.Len(users, 1)
}

func (s *ServiceTestSuite) TestUpdateUser_KeepsPasswordWhenOmitted() {
	user := s.register("keep@x.com")
	oldHash := user.PasswordHash

	updated, err := s.users.UpdateUser(s.ctx, s.principal(user), user.ID, UpdateUserInput{
		Email:     "keep@x.com",
		FirstName: "New",
		LastName:  "Name",
	})
	s.Require().NoError(err)
	s.Equal("New", updated.FirstName)
	s.Equal(oldHash, updated.PasswordHash)

	updated, err = s.users.UpdateUser(s.ctx, s.principal(user), user.ID, UpdateUserInput{
		Email:    "keep@x.com",
		Password: "changed",
	})
	s.Require().NoError(err)
	s.NotEqual(oldHash, updated.PasswordHash)
	s.NoError(bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("changed")))
}

func (s *ServiceTestSuite) TestUpdateUser_RequiresOwner() {
	owner := s.register("owner@x.com")
	other := s.register("other@x.com")

	_, err := s.users.UpdateUser(s.ctx, s.principal(other), owner.ID, UpdateUserInput{Email: "owner@x.com"})
	s.ErrorIs(err, auth.ErrForbidden)

	_, err = s.users.UpdateUser(s.ctx, s.principal(other), 9999, UpdateUserInput{Email: "x@x.com"})
	s.ErrorIs(err, ErrUserNotFound)
}

func (s *ServiceTestSuite) TestUpdateUser_EmailTaken() {
	s.register("first@x.com")
	second := s.register("second@x.com")

	_, err := s.users.UpdateUser(s.ctx, s.principal(second), second.ID, UpdateUserInput{Email: "first@x.com"})
	s.ErrorIs(err, ErrEmailTaken)
}

func (s *ServiceTestSuite) TestDeleteUser() {
	user := s.register("gone@x.com")
	other := s.register("stay@x.com")

	s.ErrorIs(s.users.DeleteUser(s.ctx, s.principal(other), user.ID), auth.ErrForbidden)

	s.Require().NoError(s.users.DeleteUser(s.ctx, s.principal(user), user.ID))
	_, err := s.users.GetUser(s.ctx, user.ID)
	s.ErrorIs(err, ErrUserNotFound)

	// The email is free again after a hard delete.
	s.register("gone@x.com")
}

func (s *ServiceTestSuite) TestDeleteUser_RejectedWhileReferenced() {
	author := s.register("author@x.com")
	executor := s.register("executor@x.com")
	status := s.status("New")

	executorID := executor.ID
	_, err := s.tasks.CreateTask(s.ctx, s.principal(author), TaskInput{
		Name:         "Referenced",
		TaskStatusID: status.ID,
		ExecutorID:   &executorID,
	})
	s.Require().NoError(err)

	s.ErrorIs(s.users.DeleteUser(s.ctx, s.principal(author), author.ID), ErrUserInUse)
	s.ErrorIs(s.users.DeleteUser(s.ctx, s.principal(executor), executor.ID), ErrUserInUse)

	stored, err := s.users.GetUser(s.ctx, author.ID)
	s.Require().NoError(err)
	s.True(stored.HasRole(constants.RoleUser))
}

func (s *ServiceTestSuite) TestLogin() {
	s.register("login@x.com")
	tokens := auth.NewTokenService("secret", time.Hour, "test")
	svc := NewAuthService(s.store.Users(), tokens)

	token, err := svc.Login(s.ctx, LoginInput{Email: "login@x.com", Password: "secret"})
	s.Require().NoError(err)

	principal, err := svc.Authenticate(token)
	s.Require().NoError(err)
	s.Equal("login@x.com", principal.Email)

	tests := []LoginInput{
		{Email: "login@x.com", Password: "wrong"},
		{Email: "nobody@x.com", Password: "secret"},
		{Email: "login@x.com"},
		{Password: "secret"},
	}
	for _, in := range tests {
		_, err := svc.Login(s.ctx, in)
		s.True(errors.Is(err, ErrInvalidCredentials), "login %s", in.Email)
	}
}

func (s *ServiceTestSuite) TestLogin_InactiveUser() {
	user := s.register("inactive@x.com")
	s.Require().NoError(s.db.Model(user).Update("active", false).Error)

	svc := NewAuthService(s.store.Users(), auth.NewTokenService("secret", time.Hour, "test"))
	_, err := svc.Login(s.ctx, LoginInput{Email: "inactive@x.com", Password: "secret"})
	s.ErrorIs(err, ErrInvalidCredentials)
}
