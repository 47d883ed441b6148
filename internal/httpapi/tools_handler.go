package httpapi

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"openapi-bridge/internal/openapi"
	"openapi-bridge/internal/tools"
)

const toolPathPrefix = "/bridge/api/v1/tools/"

// ToolsHandler 工具调用面：列出已注册工具、按名称调用。
// 工具结果（含失败信封）一律以 200 透传，信封自身表达成败；
// 只有调用面本身的错误（未知工具、参数不合法）才用 4xx。
type ToolsHandler struct {
	registry *tools.Registry
	logger   *zap.Logger
}

func NewToolsHandler(registry *tools.Registry, logger *zap.Logger) *ToolsHandler {
	return &ToolsHandler{
		registry: registry,
		logger:   logger,
	}
}

// toolInfo 工具列表项
type toolInfo struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Schema      *tools.Schema `json:"schema"`
}

// ListTools GET /bridge/api/v1/tools
func (h *ToolsHandler) ListTools(w http.ResponseWriter, r *http.Request) {
	all := h.registry.List()
	infos := make([]toolInfo, 0, len(all))
	for _, t := range all {
		infos = append(infos, toolInfo{
			Name:        t.Name(),
			Description: t.Description(),
			Schema:      t.Schema(),
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"tools": infos})
}

// InvokeTool POST /bridge/api/v1/tools/{name}
// 请求体为 JSON 参数对象（空体等价于空对象）。
func (h *ToolsHandler) InvokeTool(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(r.URL.Path, toolPathPrefix)
	if name == "" || strings.Contains(name, "/") {
		writeEnvelope(w, http.StatusNotFound, openapi.Envelope{
			Code:    http.StatusNotFound,
			Action:  openapi.ActionAlert,
			Message: "tool not found",
			Success: false,
		})
		return
	}

	tool, ok := h.registry.Get(name)
	if !ok {
		writeEnvelope(w, http.StatusNotFound, openapi.Envelope{
			Code:    http.StatusNotFound,
			Action:  openapi.ActionAlert,
			Message: "unknown tool: " + name,
			Success: false,
		})
		return
	}

	args, err := decodeArgs(r.Body)
	if err != nil {
		writeEnvelope(w, http.StatusBadRequest, openapi.Envelope{
			Code:    http.StatusBadRequest,
			Action:  openapi.ActionAlert,
			Message: "invalid request body: " + err.Error(),
			Success: false,
		})
		return
	}

	requestID := uuid.NewString()
	w.Header().Set("X-Request-Id", requestID)
	start := time.Now()
	result, err := tool.Call(r.Context(), args)
	if err != nil {
		// 参数解码失败，未发起后端调用
		h.logger.Warn("tool invocation rejected",
			zap.String("tool", name),
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		writeEnvelope(w, http.StatusBadRequest, openapi.Envelope{
			Code:    http.StatusBadRequest,
			Action:  openapi.ActionAlert,
			Message: err.Error(),
			Success: false,
		})
		return
	}

	h.logger.Info("tool invoked",
		zap.String("tool", name),
		zap.String("request_id", requestID),
		zap.Duration("duration", time.Since(start)),
	)
	writeJSON(w, http.StatusOK, result)
}

// decodeArgs 解析参数对象；空请求体按空参数处理
func decodeArgs(body io.Reader) (tools.Args, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return tools.Args{}, nil
	}
	var args tools.Args
	if err := json.Unmarshal(data, &args); err != nil {
		return nil, err
	}
	if args == nil {
		args = tools.Args{}
	}
	return args, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeEnvelope(w http.ResponseWriter, status int, e openapi.Envelope) {
	writeJSON(w, status, e)
}
