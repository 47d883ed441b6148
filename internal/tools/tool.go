package tools

import (
	"context"
	"fmt"
)

// Tool 暴露给 agent runtime 的可调用能力。
// 参数和结果都是 JSON 兼容映射；失败以结果信封表达，error 只用于
// 参数解码失败（调用未到达网络边界）。
type Tool interface {
	// Name 工具唯一标识
	Name() string

	// Description 面向调用方的一句话说明
	Description() string

	// Schema 参数的 JSON Schema 描述
	Schema() *Schema

	// Call 以解码后的参数执行工具
	Call(ctx context.Context, args Args) (map[string]any, error)
}

// Schema 工具参数的 JSON Schema（object 形式）
type Schema struct {
	Type       string              `json:"type"`
	Properties map[string]Property `json:"properties"`
	Required   []string            `json:"required,omitempty"`
}

// Property 单个参数的描述
type Property struct {
	Type        string    `json:"type"`
	Description string    `json:"description,omitempty"`
	Items       *Property `json:"items,omitempty"`
	Default     any       `json:"default,omitempty"`
}

// Registry 工具注册表。启动时注册完毕后只读，可被并发调用。
type Registry struct {
	tools map[string]Tool
	order []string
}

// NewRegistry 创建空注册表
func NewRegistry() *Registry {
	return &Registry{tools: map[string]Tool{}}
}

// Register 注册工具，重名报错
func (r *Registry) Register(t Tool) error {
	name := t.Name()
	if _, exists := r.tools[name]; exists {
		return fmt.Errorf("tool %q already registered", name)
	}
	r.tools[name] = t
	r.order = append(r.order, name)
	return nil
}

// Get 按名称查找工具
func (r *Registry) Get(name string) (Tool, bool) {
	t, ok := r.tools[name]
	return t, ok
}

// List 按注册顺序返回全部工具
func (r *Registry) List() []Tool {
	out := make([]Tool, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.tools[name])
	}
	return out
}
