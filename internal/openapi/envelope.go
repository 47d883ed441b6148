package openapi

// Envelope 统一的结果信封，与后端回包同构：
// - code: 0 表示后端业务成功，非 0 为业务错误
// - action: 前端动作提示，本地合成的失败固定为 "alert"
// - success: 仅在本地合成的信封中有权威含义（恒为 false）；
//   后端回包中的 success 原样透传，不做解释（约定以 code==0 判定成功）
type Envelope struct {
	Code    int    `json:"code"`
	Action  string `json:"action"`
	Message string `json:"message"`
	Data    any    `json:"data"`
	Success bool   `json:"success"`
}

// ActionAlert 本地合成失败信封的固定 action
const ActionAlert = "alert"

// Failure 合成传输/状态失败信封（网络错误、超时、非 2xx、JSON 解析失败一律同形）
func Failure(message string) Envelope {
	return Envelope{
		Code:    500,
		Action:  ActionAlert,
		Message: message,
		Data:    nil,
		Success: false,
	}
}

// Map 转为 JSON 兼容的映射，与操作结果的透传形态一致
func (e Envelope) Map() map[string]any {
	return map[string]any{
		"code":    e.Code,
		"action":  e.Action,
		"message": e.Message,
		"data":    e.Data,
		"success": e.Success,
	}
}

// resultCode 读取回包中的 code 字段；缺失或非数值时返回 (def, false)。
// JSON 数值解码为 float64，这里统一收敛为 int。
func resultCode(result map[string]any, def int) (int, bool) {
	switch v := result["code"].(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	}
	return def, false
}

// resultMessage 读取回包中的 message 字段，缺失时返回空串
func resultMessage(result map[string]any) string {
	if s, ok := result["message"].(string); ok {
		return s
	}
	return ""
}
