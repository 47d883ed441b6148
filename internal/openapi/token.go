package openapi

// IssueToken 获取 OpenAPI 访问令牌。
// 令牌本身是不透明字符串，本地不缓存。成功回包被整形为
// {success:true, data:{access_token, expires_in}}；传输失败的统一信封
// 与后端业务错误（code != 0）原样透传。
func (c *Client) IssueToken(accessKeyID, accessKeySecret string) map[string]any {
	result := c.post("/api/open/v1/token", "", map[string]any{
		"access_key_id":     accessKeyID,
		"access_key_secret": accessKeySecret,
	})

	if result["error"] != nil {
		errText := "Failed to get token"
		if s, ok := result["error"].(string); ok && s != "" {
			errText = s
		}
		return map[string]any{
			"success": false,
			"error":   errText,
		}
	}
	if code, ok := resultCode(result, 500); !ok || code != 0 {
		return result
	}

	data, _ := result["data"].(map[string]any)
	return map[string]any{
		"success": true,
		"data": map[string]any{
			"access_token": data["access_token"],
			"expires_in":   data["expires_in"],
		},
	}
}
