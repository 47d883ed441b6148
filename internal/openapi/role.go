package openapi

// RoleList 获取角色列表
func (c *Client) RoleList(token string) map[string]any {
	return c.get("/api/open/v1/role/list", token, nil)
}

// RoleGet 获取角色详情
func (c *Client) RoleGet(token, roleID string) map[string]any {
	return c.get("/api/open/v1/role/get", token, map[string]string{
		"id": roleID,
	})
}

// RoleCreate 创建角色；description 未提供时不发送该字段
func (c *Client) RoleCreate(token, name string, description *string) map[string]any {
	body := map[string]any{"name": name}
	if description != nil {
		body["description"] = *description
	}
	return c.post("/api/open/v1/role/create", token, body)
}

// RoleUpdate 更新角色基本信息；未提供的可选字段不发送
func (c *Client) RoleUpdate(token, roleID string, name, description *string) map[string]any {
	body := map[string]any{"id": roleID}
	if name != nil {
		body["name"] = *name
	}
	if description != nil {
		body["description"] = *description
	}
	return c.post("/api/open/v1/role/update", token, body)
}

// RoleDelete 删除角色
func (c *Client) RoleDelete(token, roleID string) map[string]any {
	return c.post("/api/open/v1/role/delete", token, map[string]any{
		"id": roleID,
	})
}

// RoleMemberCreate 添加角色成员
func (c *Client) RoleMemberCreate(token, roleID string, userIDs []string) map[string]any {
	return c.post("/api/open/v1/role/member/create", token, map[string]any{
		"role_id":  roleID,
		"user_ids": userIDs,
	})
}

// RoleMemberDelete 删除角色成员
func (c *Client) RoleMemberDelete(token, roleID string, userIDs []string) map[string]any {
	return c.post("/api/open/v1/role/member/delete", token, map[string]any{
		"role_id":  roleID,
		"user_ids": userIDs,
	})
}
