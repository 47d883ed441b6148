package openapi

import (
	"crypto/tls"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"openapi-bridge/internal/config"
)

// Client OpenAPI 后端客户端。
// 无跨调用状态：每次调用新建一个 resty 客户端，调用结束即释放，
// 并发调用互不影响、各走各的连接。
type Client struct {
	baseURL   string
	userAgent string
	timeout   time.Duration
	insecure  bool
	logger    *zap.Logger
}

// NewClient 创建 OpenAPI 客户端
func NewClient(cfg config.BackendConfig, logger *zap.Logger) *Client {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:   cfg.BaseURL,
		userAgent: cfg.UserAgent,
		timeout:   timeout,
		insecure:  cfg.InsecureSkipVerify,
		logger:    logger,
	}
}

// newHTTPClient 构造单次调用专用的 HTTP 客户端。
// 后端使用自签证书，证书校验按约定关闭；无重试（由调用方决定是否重试）。
func (c *Client) newHTTPClient() *resty.Client {
	return resty.New().
		SetBaseURL(c.baseURL).
		SetTimeout(c.timeout).
		SetTLSClientConfig(&tls.Config{InsecureSkipVerify: c.insecure}).
		SetHeader("User-Agent", c.userAgent).
		SetHeader("Content-Type", "application/json")
}

// callParams 单次后端调用的请求参数
type callParams struct {
	method string
	path   string
	token  string
	query  map[string]string
	body   map[string]any
}

// call 执行一次后端调用并归一化结果。
// 成功的 JSON 回包原样透传；任何传输错误、非 2xx 状态或 JSON 解析失败
// 都返回统一的失败信封，绝不向调用方抛错。
func (c *Client) call(p callParams) map[string]any {
	req := c.newHTTPClient().R()
	if p.token != "" {
		// 后端约定：token 原样放入 Authorization，不加 Bearer 前缀
		req.SetHeader("Authorization", p.token)
	}
	if len(p.query) > 0 {
		req.SetQueryParams(p.query)
	}
	if p.body != nil {
		req.SetBody(p.body)
	}

	resp, err := req.Execute(p.method, p.path)
	if err != nil {
		c.logger.Warn("OpenAPI request failed",
			zap.String("method", p.method),
			zap.String("path", p.path),
			zap.Error(err),
		)
		return Failure(err.Error()).Map()
	}
	// 约定所有非 2xx 都算失败，包括 IsError() 不覆盖的 3xx
	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		c.logger.Warn("OpenAPI request returned error status",
			zap.String("method", p.method),
			zap.String("path", p.path),
			zap.Int("status_code", resp.StatusCode()),
		)
		return Failure(fmt.Sprintf("unexpected status %s for %s %s", resp.Status(), p.method, p.path)).Map()
	}

	var result map[string]any
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return Failure(fmt.Sprintf("failed to decode response body: %v", err)).Map()
	}
	return result
}

func (c *Client) get(path, token string, query map[string]string) map[string]any {
	return c.call(callParams{method: http.MethodGet, path: path, token: token, query: query})
}

func (c *Client) post(path, token string, body map[string]any) map[string]any {
	return c.call(callParams{method: http.MethodPost, path: path, token: token, body: body})
}
