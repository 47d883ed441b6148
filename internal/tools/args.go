package tools

import (
	"fmt"
	"math"
)

// Args 工具调用的原始参数（JSON 对象解码产物）。
// 解码规则：必填缺失即报错；可选参数缺失返回 nil 指针，显式给出的
// 假值（0、""、false）照常传递。所有解码错误都发生在网络调用之前。
type Args map[string]any

func missingArg(key string) error {
	return fmt.Errorf("missing required argument %q", key)
}

// String 必填字符串
func (a Args) String(key string) (string, error) {
	v, ok := a[key]
	if !ok {
		return "", missingArg(key)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("argument %q must be a string", key)
	}
	return s, nil
}

// OptionalString 可选字符串，缺失返回 nil
func (a Args) OptionalString(key string) (*string, error) {
	v, ok := a[key]
	if !ok || v == nil {
		return nil, nil
	}
	s, ok := v.(string)
	if !ok {
		return nil, fmt.Errorf("argument %q must be a string", key)
	}
	return &s, nil
}

// OptionalInt 可选整数，缺失返回 nil。JSON 数值以 float64 到达，
// 带小数部分的值视为非法。
func (a Args) OptionalInt(key string) (*int, error) {
	v, ok := a[key]
	if !ok || v == nil {
		return nil, nil
	}
	i, err := toInt(key, v)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

// IntDefault 带默认值的整数
func (a Args) IntDefault(key string, def int) (int, error) {
	p, err := a.OptionalInt(key)
	if err != nil {
		return 0, err
	}
	if p == nil {
		return def, nil
	}
	return *p, nil
}

// OptionalBool 可选布尔，缺失返回 nil
func (a Args) OptionalBool(key string) (*bool, error) {
	v, ok := a[key]
	if !ok || v == nil {
		return nil, nil
	}
	b, ok := v.(bool)
	if !ok {
		return nil, fmt.Errorf("argument %q must be a boolean", key)
	}
	return &b, nil
}

// BoolDefault 带默认值的布尔
func (a Args) BoolDefault(key string, def bool) (bool, error) {
	p, err := a.OptionalBool(key)
	if err != nil {
		return false, err
	}
	if p == nil {
		return def, nil
	}
	return *p, nil
}

// StringSlice 必填字符串列表
func (a Args) StringSlice(key string) ([]string, error) {
	v, ok := a[key]
	if !ok {
		return nil, missingArg(key)
	}
	raw, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("argument %q must be an array of strings", key)
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("argument %q must be an array of strings", key)
		}
		out = append(out, s)
	}
	return out, nil
}

// OptionalStringSlice 可选字符串列表，缺失返回 nil
func (a Args) OptionalStringSlice(key string) ([]string, error) {
	if v, ok := a[key]; !ok || v == nil {
		return nil, nil
	}
	return a.StringSlice(key)
}

func toInt(key string, v any) (int, error) {
	switch n := v.(type) {
	case float64:
		if n != math.Trunc(n) {
			return 0, fmt.Errorf("argument %q must be an integer", key)
		}
		return int(n), nil
	case int:
		return n, nil
	}
	return 0, fmt.Errorf("argument %q must be an integer", key)
}
