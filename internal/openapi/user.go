package openapi

import "fmt"

// deleteHint 删除结果的固定提示，追加在 message 末尾
const deleteHint = "。注意: 只能删除离职用户，可能需要等待一段时间才能删除。"

// CreateUserParams 添加用户的参数。
// Gender/Status 为带默认值的必发字段（调用侧默认 1/1），可选指针字段未提供时不发送。
type CreateUserParams struct {
	Username     string
	FullName     string
	DepartmentID string
	Email        *string
	Mobile       *string
	Password     *string
	Gender       int
	Status       int
}

// UpdateUserParams 更新用户的可选字段集合，nil 表示不改动（不发送）
type UpdateUserParams struct {
	FullName     *string
	Email        *string
	Mobile       *string
	DepartmentID *string
	RoleIDs      []string
	Status       *int
}

// UserList 获取部门成员。
// recursive 为三态：true→1、false→0、未提供→不发送该键。
func (c *Client) UserList(token, departmentID string, recursive *bool) map[string]any {
	query := map[string]string{"department_id": departmentID}
	if recursive != nil {
		if *recursive {
			query["recursive"] = "1"
		} else {
			query["recursive"] = "0"
		}
	}
	return c.get("/api/open/v1/user/list", token, query)
}

// UserGet 获取用户详情
func (c *Client) UserGet(token, userID string) map[string]any {
	return c.get("/api/open/v1/user/get", token, map[string]string{
		"id": userID,
	})
}

// UserCreate 添加单个用户
func (c *Client) UserCreate(token string, p CreateUserParams) map[string]any {
	body := map[string]any{
		"username":      p.Username,
		"full_name":     p.FullName,
		"department_id": p.DepartmentID,
		"gender":        p.Gender,
		"status":        p.Status,
	}
	if p.Email != nil {
		body["email"] = *p.Email
	}
	if p.Mobile != nil {
		body["mobile"] = *p.Mobile
	}
	if p.Password != nil {
		body["password"] = *p.Password
	}
	return c.post("/api/open/v1/user/create", token, body)
}

// UserUpdate 更新用户信息
func (c *Client) UserUpdate(token, userID string, p UpdateUserParams) map[string]any {
	body := map[string]any{"id": userID}
	if p.FullName != nil {
		body["full_name"] = *p.FullName
	}
	if p.Email != nil {
		body["email"] = *p.Email
	}
	if p.Mobile != nil {
		body["mobile"] = *p.Mobile
	}
	if p.DepartmentID != nil {
		body["department_id"] = *p.DepartmentID
	}
	if p.RoleIDs != nil {
		body["role_ids"] = p.RoleIDs
	}
	if p.Status != nil {
		body["status"] = *p.Status
	}
	return c.post("/api/open/v1/user/update", token, body)
}

// UserSetStatus 设置用户状态，是 UserUpdate 只改 status 字段的受限别名
func (c *Client) UserSetStatus(token, userID string, status int) map[string]any {
	return c.UserUpdate(token, userID, UpdateUserParams{Status: &status})
}

// UserDelete 删除用户。两步流水线，单步失败即中止：
//  1. setOfflineFirst 时先把用户置为离职（status=3），code != 0 则中止，
//     返回内嵌下层错误文案的 alert 信封；
//  2. 发出删除请求，结果 message 追加固定提示后返回。
func (c *Client) UserDelete(token, userID string, setOfflineFirst bool) map[string]any {
	if setOfflineFirst {
		statusResult := c.UserSetStatus(token, userID, UserStatusOffline)
		if code, ok := resultCode(statusResult, 500); !ok || code != 0 {
			return Envelope{
				Code:    code,
				Action:  ActionAlert,
				Message: fmt.Sprintf("设置用户为离职状态失败: %s", resultMessage(statusResult)),
				Data:    nil,
				Success: false,
			}.Map()
		}
	}

	result := c.post("/api/open/v1/user/delete", token, map[string]any{
		"id": userID,
	})
	result["message"] = resultMessage(result) + deleteHint
	return result
}

// UserBatchGetID 批量获取用户的 open id
func (c *Client) UserBatchGetID(token string, usernames []string) map[string]any {
	return c.post("/api/open/v1/user/batch_get_id", token, map[string]any{
		"usernames": usernames,
	})
}
