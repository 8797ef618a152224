package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/task-manager/internal/auth"
	"github.com/yukikurage/task-manager/internal/config"
	"github.com/yukikurage/task-manager/internal/constants"
	"github.com/yukikurage/task-manager/internal/database"
	"github.com/yukikurage/task-manager/internal/models"
	"github.com/yukikurage/task-manager/internal/repository"
	"github.com/yukikurage/task-manager/internal/services"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB opens a migrated in-memory SQLite database
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dialector, err := database.Dialector(&config.Config{DBDriver: config.DriverSQLite, DBPath: ":memory:"})
	require.NoError(t, err)

	db, err := gorm.Open(dialector, database.NewGormConfig(logger.Discard))
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	require.NoError(t, database.Migrate(db))
	return db
}

// testServices wires the services over one test database
type testServices struct {
	store    *repository.GormStore
	users    *services.UserService
	tasks    *services.TaskService
	statuses *services.TaskStatusService
	labels   *services.LabelService
}

func newTestServices(db *gorm.DB) testServices {
	store := repository.NewStore(db)
	return testServices{
		store:    store,
		users:    services.NewUserService(store, bcrypt.MinCost),
		tasks:    services.NewTaskService(store),
		statuses: services.NewTaskStatusService(store),
		labels:   services.NewLabelService(store),
	}
}

func (s testServices) createUser(t *testing.T, email string) *models.User {
	t.Helper()
	user, err := s.users.Register(context.Background(), services.CreateUserInput{
		Email:     email,
		FirstName: "Test",
		LastName:  "User",
		Password:  "secret",
	})
	require.NoError(t, err)
	return user
}

func principalOf(user *models.User) auth.Principal {
	return auth.Principal{UserID: user.ID, Email: user.Email}
}

// newTestContext builds a gin context with an optional JSON body, principal and id param
func newTestContext(method, url string, body interface{}, principal *auth.Principal, id uint64) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()

	var buf *bytes.Reader
	switch b := body.(type) {
	case nil:
		buf = bytes.NewReader(nil)
	case string:
		buf = bytes.NewReader([]byte(b))
	default:
		raw, _ := json.Marshal(b)
		buf = bytes.NewReader(raw)
	}

	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, url, buf)
	c.Request.Header.Set("Content-Type", "application/json")
	if principal != nil {
		c.Set(constants.ContextKeyPrincipal, *principal)
	}
	if id != 0 {
		c.Params = gin.Params{{Key: "id", Value: strconv.FormatUint(id, 10)}}
	}
	return c, w
}
