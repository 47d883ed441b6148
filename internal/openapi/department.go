package openapi

// DepartmentList 获取部门列表；departmentID 为空指针时获取根部门
func (c *Client) DepartmentList(token string, departmentID *string) map[string]any {
	query := map[string]string{}
	if departmentID != nil {
		query["id"] = *departmentID
	}
	return c.get("/api/open/v1/department/list", token, query)
}

// DepartmentDetail 获取单个部门详情。
// 后端的查询键是 param 而不是 id，契约如此，不可改。
func (c *Client) DepartmentDetail(token, departmentID string) map[string]any {
	return c.get("/api/open/v1/department/detail", token, map[string]string{
		"param": departmentID,
	})
}

// DepartmentCreate 创建单个部门；order 未提供时不发送该字段
func (c *Client) DepartmentCreate(token, name, parentID string, order *int) map[string]any {
	body := map[string]any{
		"name":      name,
		"parent_id": parentID,
	}
	if order != nil {
		body["order"] = *order
	}
	return c.post("/api/open/v1/department/create", token, body)
}

// DepartmentUpdate 更新部门信息；未提供的可选字段不发送
func (c *Client) DepartmentUpdate(token, departmentID string, name *string, order *int) map[string]any {
	body := map[string]any{"id": departmentID}
	if name != nil {
		body["name"] = *name
	}
	if order != nil {
		body["order"] = *order
	}
	return c.post("/api/open/v1/department/update", token, body)
}

// DepartmentDelete 删除部门
func (c *Client) DepartmentDelete(token, departmentID string) map[string]any {
	return c.post("/api/open/v1/department/delete", token, map[string]any{
		"id": departmentID,
	})
}
