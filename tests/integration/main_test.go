package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/linweiyu/bugtrack-go/internal/api/middleware"
	"github.com/linweiyu/bugtrack-go/internal/api/routes"
	"github.com/linweiyu/bugtrack-go/internal/application"
	"github.com/linweiyu/bugtrack-go/internal/config"
	"github.com/linweiyu/bugtrack-go/internal/config/db"
	"github.com/linweiyu/bugtrack-go/internal/repository"
	"github.com/linweiyu/bugtrack-go/internal/testutils"
	"github.com/stretchr/testify/require"

	_ "github.com/lib/pq"
)

var router *gin.Engine

// memStore stands in for the object store so attachment routes work
// without MinIO.
type memStore struct {
	mu      sync.Mutex
	objects map[string][]byte
	seq     int
}

func (s *memStore) Put(ctx context.Context, r io.Reader, size int64, filename string) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	ref := fmt.Sprintf("mem/%d/%s", s.seq, filename)
	s.objects[ref] = data
	return ref, nil
}

func (s *memStore) Get(ctx context.Context, ref string) (io.ReadCloser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.objects[ref]
	if !ok {
		return nil, fmt.Errorf("object %s not found", ref)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (s *memStore) Remove(ctx context.Context, ref string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, ref)
	return nil
}

func TestMain(m *testing.M) {
	gormDB, cleanup := testutils.SetupPostgresForIntegration()

	config.LoadConfig()
	middleware.Init()
	db.InitWithGormDB(gormDB)

	repos := repository.NewRepositories(gormDB)
	services := application.New(repos, &memStore{objects: make(map[string][]byte)}, application.CannedProvider{})

	gin.SetMode(gin.TestMode)
	router = gin.New()
	routes.RegisterRoutes(router, services)

	code := m.Run()
	cleanup()
	os.Exit(code)
}

// doRequest marshals the body to JSON, attaches the bearer token and
// asserts the response status when expectStatus is non-zero.
func doRequest(t *testing.T, method, path, token string, body interface{}, expectStatus int) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == nil {
		req = httptest.NewRequest(method, path, nil)
	} else {
		reqBody, err := json.Marshal(body)
		require.NoError(t, err)
		req = httptest.NewRequest(method, path, bytes.NewBuffer(reqBody))
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if expectStatus != 0 {
		require.Equal(t, expectStatus, w.Code,
			fmt.Sprintf("expected %d, got %d, body=%s", expectStatus, w.Code, w.Body.String()))
	}
	return w
}

func urlf(format string, args ...interface{}) string {
	return fmt.Sprintf(format, args...)
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

// registerAndLogin creates the user on first use and returns a bearer
// token either way.
func registerAndLogin(t *testing.T, username, password string) string {
	t.Helper()

	body := fmt.Sprintf(`{"username":%q,"password":%q}`, username, password)
	req := httptest.NewRequest("POST", "/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Contains(t, []int{http.StatusCreated, http.StatusBadRequest}, w.Code)

	w = doRequest(t, "POST", "/login", "", map[string]string{
		"username": username, "password": password,
	}, http.StatusOK)

	var resp struct {
		Token string `json:"token"`
	}
	decodeBody(t, w, &resp)
	require.NotEmpty(t, resp.Token)
	return resp.Token
}
