package tools

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"openapi-bridge/internal/config"
	"openapi-bridge/internal/openapi"
)

// newToolRegistry 注册指向给定后端地址的全部工具
func newToolRegistry(t *testing.T, baseURL string) *Registry {
	t.Helper()
	client := openapi.NewClient(config.BackendConfig{
		BaseURL:            baseURL,
		UserAgent:          "openapi-mcp/1.0",
		TimeoutSeconds:     5,
		InsecureSkipVerify: true,
	}, zap.NewNop())
	r := NewRegistry()
	require.NoError(t, RegisterOpenAPITools(r, client))
	return r
}

var allToolNames = []string{
	"issue_token",
	"department_list", "department_detail", "department_create", "department_update", "department_delete",
	"role_list", "role_get", "role_create", "role_update", "role_delete",
	"role_member_create", "role_member_delete",
	"user_list", "user_get", "user_create", "user_set_status", "user_update", "user_delete",
	"user_batch_get_id",
}

func TestRegisterOpenAPIToolsExposesFullSurface(t *testing.T) {
	r := newToolRegistry(t, "http://unused.invalid")

	require.Len(t, r.List(), len(allToolNames))
	for _, name := range allToolNames {
		tool, ok := r.Get(name)
		require.True(t, ok, "tool %s must be registered", name)
		require.NotEmpty(t, tool.Description())
		require.Equal(t, "object", tool.Schema().Type)
	}
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	r := newToolRegistry(t, "http://unused.invalid")
	client := openapi.NewClient(config.BackendConfig{BaseURL: "http://unused.invalid"}, zap.NewNop())

	err := RegisterOpenAPITools(r, client)
	require.ErrorContains(t, err, "already registered")
}

func TestToolArgumentErrorsNeverReachTheNetwork(t *testing.T) {
	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte(`{"code":0}`))
	}))
	defer srv.Close()
	r := newToolRegistry(t, srv.URL)

	cases := []struct {
		tool string
		args Args
	}{
		{"department_create", Args{"token": "tk", "name": "n"}},                   // parent_id 缺失
		{"user_list", Args{"token": "tk"}},                                        // department_id 缺失
		{"user_list", Args{"token": "tk", "department_id": "d", "recursive": 1}},  // recursive 非布尔
		{"role_member_create", Args{"token": "tk", "role_id": "r"}},               // user_ids 缺失
		{"user_set_status", Args{"token": "tk", "user_id": "u"}},                  // status 缺失
		{"department_update", Args{"token": "tk", "department_id": 5}},            // 类型错误
		{"issue_token", Args{"access_key_id": "ak"}},                              // secret 缺失
	}
	for _, tc := range cases {
		tool, ok := r.Get(tc.tool)
		require.True(t, ok)
		_, err := tool.Call(context.Background(), tc.args)
		require.Error(t, err, "tool %s must reject args %v", tc.tool, tc.args)
	}
	require.Zero(t, hits.Load(), "decode failures must not issue backend calls")
}

func TestToolForwardsEmptyRequiredString(t *testing.T) {
	// 必填字符串只校验存在性：显式空串不在本地拦截，照常发给后端
	var hits atomic.Int64
	var hadAuth bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, hadAuth = r.Header["Authorization"]
		w.Write([]byte(`{"code":40100,"message":"未授权"}`))
	}))
	defer srv.Close()
	r := newToolRegistry(t, srv.URL)
	tool, _ := r.Get("role_list")

	result, err := tool.Call(context.Background(), Args{"token": ""})
	require.NoError(t, err)
	require.Equal(t, int64(1), hits.Load())
	require.False(t, hadAuth, "empty token sends no Authorization header")
	require.Equal(t, float64(40100), result["code"], "backend verdict passes through")
}

func TestUserListToolCoercesRecursiveFlag(t *testing.T) {
	var recursive string
	var hasRecursive bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		recursive = q.Get("recursive")
		hasRecursive = q.Has("recursive")
		w.Write([]byte(`{"code":0}`))
	}))
	defer srv.Close()
	r := newToolRegistry(t, srv.URL)
	tool, _ := r.Get("user_list")

	_, err := tool.Call(context.Background(), Args{"token": "tk", "department_id": "d1", "recursive": true})
	require.NoError(t, err)
	require.Equal(t, "1", recursive)

	_, err = tool.Call(context.Background(), Args{"token": "tk", "department_id": "d1", "recursive": false})
	require.NoError(t, err)
	require.Equal(t, "0", recursive)

	_, err = tool.Call(context.Background(), Args{"token": "tk", "department_id": "d1"})
	require.NoError(t, err)
	require.False(t, hasRecursive)
}

func TestUserCreateToolAppliesDefaults(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body = map[string]any{}
		_ = json.NewDecoder(r.Body).Decode(&body)
		w.Write([]byte(`{"code":0}`))
	}))
	defer srv.Close()
	r := newToolRegistry(t, srv.URL)
	tool, _ := r.Get("user_create")

	_, err := tool.Call(context.Background(), Args{
		"token":         "tk",
		"username":      "zhangsan",
		"full_name":     "张三",
		"department_id": "d1",
	})
	require.NoError(t, err)
	require.Equal(t, float64(1), body["gender"])
	require.Equal(t, float64(1), body["status"])
	require.NotContains(t, body, "email")
}

func TestToolFailureEnvelopeIsRelayedNotRaised(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	deadURL := srv.URL
	srv.Close()
	r := newToolRegistry(t, deadURL)
	tool, _ := r.Get("role_list")

	result, err := tool.Call(context.Background(), Args{"token": "tk"})
	require.NoError(t, err, "transport failures surface in the envelope, not as errors")
	require.Equal(t, openapi.ActionAlert, result["action"])
	require.Equal(t, false, result["success"])
	require.NotEmpty(t, result["message"])
}
