package tools

import (
	"context"

	"openapi-bridge/internal/openapi"
)

// apiTool 把一个 OpenAPI 操作包装为 Tool：先解码参数，再调用客户端。
// 解码失败直接返回 error（不发起网络调用）；客户端本身从不返回 error。
type apiTool struct {
	name        string
	description string
	schema      *Schema
	run         func(args Args) (map[string]any, error)
}

func (t *apiTool) Name() string        { return t.name }
func (t *apiTool) Description() string { return t.description }
func (t *apiTool) Schema() *Schema     { return t.schema }

func (t *apiTool) Call(_ context.Context, args Args) (map[string]any, error) {
	return t.run(args)
}

func strProp(desc string) Property {
	return Property{Type: "string", Description: desc}
}

func intProp(desc string) Property {
	return Property{Type: "integer", Description: desc}
}

func intPropDefault(desc string, def int) Property {
	return Property{Type: "integer", Description: desc, Default: def}
}

func boolProp(desc string) Property {
	return Property{Type: "boolean", Description: desc}
}

func boolPropDefault(desc string, def bool) Property {
	return Property{Type: "boolean", Description: desc, Default: def}
}

func strListProp(desc string) Property {
	return Property{Type: "array", Description: desc, Items: &Property{Type: "string"}}
}

func objectSchema(props map[string]Property, required ...string) *Schema {
	return &Schema{Type: "object", Properties: props, Required: required}
}

// tokenProp 所有需鉴权操作共用的 token 参数
func tokenProp() Property {
	return strProp("OpenAPI 访问令牌")
}

// RegisterOpenAPITools 把全部 OpenAPI 操作注册为工具
func RegisterOpenAPITools(r *Registry, client *openapi.Client) error {
	all := []Tool{
		&apiTool{
			name:        "issue_token",
			description: "获取 OpenAPI 访问令牌",
			schema: objectSchema(map[string]Property{
				"access_key_id":     strProp("OpenAPI 访问密钥 ID"),
				"access_key_secret": strProp("OpenAPI 访问密钥密文"),
			}, "access_key_id", "access_key_secret"),
			run: func(args Args) (map[string]any, error) {
				keyID, err := args.String("access_key_id")
				if err != nil {
					return nil, err
				}
				keySecret, err := args.String("access_key_secret")
				if err != nil {
					return nil, err
				}
				return client.IssueToken(keyID, keySecret), nil
			},
		},
		&apiTool{
			name:        "department_list",
			description: "获取部门列表，不传部门ID则获取根部门",
			schema: objectSchema(map[string]Property{
				"token":         tokenProp(),
				"department_id": strProp("可选，部门ID"),
			}, "token"),
			run: func(args Args) (map[string]any, error) {
				token, err := args.String("token")
				if err != nil {
					return nil, err
				}
				departmentID, err := args.OptionalString("department_id")
				if err != nil {
					return nil, err
				}
				return client.DepartmentList(token, departmentID), nil
			},
		},
		&apiTool{
			name:        "department_detail",
			description: "获取单个部门详情",
			schema: objectSchema(map[string]Property{
				"token":         tokenProp(),
				"department_id": strProp("部门ID"),
			}, "token", "department_id"),
			run: func(args Args) (map[string]any, error) {
				token, err := args.String("token")
				if err != nil {
					return nil, err
				}
				departmentID, err := args.String("department_id")
				if err != nil {
					return nil, err
				}
				return client.DepartmentDetail(token, departmentID), nil
			},
		},
		&apiTool{
			name:        "department_create",
			description: "创建单个部门",
			schema: objectSchema(map[string]Property{
				"token":     tokenProp(),
				"name":      strProp("部门名称"),
				"parent_id": strProp("父部门ID"),
				"order":     intProp("可选，排序值"),
			}, "token", "name", "parent_id"),
			run: func(args Args) (map[string]any, error) {
				token, err := args.String("token")
				if err != nil {
					return nil, err
				}
				name, err := args.String("name")
				if err != nil {
					return nil, err
				}
				parentID, err := args.String("parent_id")
				if err != nil {
					return nil, err
				}
				order, err := args.OptionalInt("order")
				if err != nil {
					return nil, err
				}
				return client.DepartmentCreate(token, name, parentID, order), nil
			},
		},
		&apiTool{
			name:        "department_update",
			description: "更新部门信息",
			schema: objectSchema(map[string]Property{
				"token":         tokenProp(),
				"department_id": strProp("部门ID"),
				"name":          strProp("可选，部门名称"),
				"order":         intProp("可选，排序值"),
			}, "token", "department_id"),
			run: func(args Args) (map[string]any, error) {
				token, err := args.String("token")
				if err != nil {
					return nil, err
				}
				departmentID, err := args.String("department_id")
				if err != nil {
					return nil, err
				}
				name, err := args.OptionalString("name")
				if err != nil {
					return nil, err
				}
				order, err := args.OptionalInt("order")
				if err != nil {
					return nil, err
				}
				return client.DepartmentUpdate(token, departmentID, name, order), nil
			},
		},
		&apiTool{
			name:        "department_delete",
			description: "删除部门",
			schema: objectSchema(map[string]Property{
				"token":         tokenProp(),
				"department_id": strProp("部门ID"),
			}, "token", "department_id"),
			run: func(args Args) (map[string]any, error) {
				token, err := args.String("token")
				if err != nil {
					return nil, err
				}
				departmentID, err := args.String("department_id")
				if err != nil {
					return nil, err
				}
				return client.DepartmentDelete(token, departmentID), nil
			},
		},
		&apiTool{
			name:        "role_list",
			description: "获取角色列表",
			schema: objectSchema(map[string]Property{
				"token": tokenProp(),
			}, "token"),
			run: func(args Args) (map[string]any, error) {
				token, err := args.String("token")
				if err != nil {
					return nil, err
				}
				return client.RoleList(token), nil
			},
		},
		&apiTool{
			name:        "role_get",
			description: "获取角色详情",
			schema: objectSchema(map[string]Property{
				"token":   tokenProp(),
				"role_id": strProp("角色ID"),
			}, "token", "role_id"),
			run: func(args Args) (map[string]any, error) {
				token, err := args.String("token")
				if err != nil {
					return nil, err
				}
				roleID, err := args.String("role_id")
				if err != nil {
					return nil, err
				}
				return client.RoleGet(token, roleID), nil
			},
		},
		&apiTool{
			name:        "role_create",
			description: "创建角色",
			schema: objectSchema(map[string]Property{
				"token":       tokenProp(),
				"name":        strProp("角色名称"),
				"description": strProp("可选，角色描述"),
			}, "token", "name"),
			run: func(args Args) (map[string]any, error) {
				token, err := args.String("token")
				if err != nil {
					return nil, err
				}
				name, err := args.String("name")
				if err != nil {
					return nil, err
				}
				description, err := args.OptionalString("description")
				if err != nil {
					return nil, err
				}
				return client.RoleCreate(token, name, description), nil
			},
		},
		&apiTool{
			name:        "role_update",
			description: "更新角色基本信息",
			schema: objectSchema(map[string]Property{
				"token":       tokenProp(),
				"role_id":     strProp("角色ID"),
				"name":        strProp("可选，角色名称"),
				"description": strProp("可选，角色描述"),
			}, "token", "role_id"),
			run: func(args Args) (map[string]any, error) {
				token, err := args.String("token")
				if err != nil {
					return nil, err
				}
				roleID, err := args.String("role_id")
				if err != nil {
					return nil, err
				}
				name, err := args.OptionalString("name")
				if err != nil {
					return nil, err
				}
				description, err := args.OptionalString("description")
				if err != nil {
					return nil, err
				}
				return client.RoleUpdate(token, roleID, name, description), nil
			},
		},
		&apiTool{
			name:        "role_delete",
			description: "删除角色",
			schema: objectSchema(map[string]Property{
				"token":   tokenProp(),
				"role_id": strProp("角色ID"),
			}, "token", "role_id"),
			run: func(args Args) (map[string]any, error) {
				token, err := args.String("token")
				if err != nil {
					return nil, err
				}
				roleID, err := args.String("role_id")
				if err != nil {
					return nil, err
				}
				return client.RoleDelete(token, roleID), nil
			},
		},
		&apiTool{
			name:        "role_member_create",
			description: "添加角色成员",
			schema: objectSchema(map[string]Property{
				"token":    tokenProp(),
				"role_id":  strProp("角色ID"),
				"user_ids": strListProp("用户ID列表"),
			}, "token", "role_id", "user_ids"),
			run: func(args Args) (map[string]any, error) {
				token, err := args.String("token")
				if err != nil {
					return nil, err
				}
				roleID, err := args.String("role_id")
				if err != nil {
					return nil, err
				}
				userIDs, err := args.StringSlice("user_ids")
				if err != nil {
					return nil, err
				}
				return client.RoleMemberCreate(token, roleID, userIDs), nil
			},
		},
		&apiTool{
			name:        "role_member_delete",
			description: "删除角色成员",
			schema: objectSchema(map[string]Property{
				"token":    tokenProp(),
				"role_id":  strProp("角色ID"),
				"user_ids": strListProp("用户ID列表"),
			}, "token", "role_id", "user_ids"),
			run: func(args Args) (map[string]any, error) {
				token, err := args.String("token")
				if err != nil {
					return nil, err
				}
				roleID, err := args.String("role_id")
				if err != nil {
					return nil, err
				}
				userIDs, err := args.StringSlice("user_ids")
				if err != nil {
					return nil, err
				}
				return client.RoleMemberDelete(token, roleID, userIDs), nil
			},
		},
		&apiTool{
			name:        "user_list",
			description: "获取部门成员",
			schema: objectSchema(map[string]Property{
				"token":         tokenProp(),
				"department_id": strProp("部门ID"),
				"recursive":     boolProp("可选，是否递归获取子部门成员"),
			}, "token", "department_id"),
			run: func(args Args) (map[string]any, error) {
				token, err := args.String("token")
				if err != nil {
					return nil, err
				}
				departmentID, err := args.String("department_id")
				if err != nil {
					return nil, err
				}
				recursive, err := args.OptionalBool("recursive")
				if err != nil {
					return nil, err
				}
				return client.UserList(token, departmentID, recursive), nil
			},
		},
		&apiTool{
			name:        "user_get",
			description: "获取用户详情",
			schema: objectSchema(map[string]Property{
				"token":   tokenProp(),
				"user_id": strProp("用户ID"),
			}, "token", "user_id"),
			run: func(args Args) (map[string]any, error) {
				token, err := args.String("token")
				if err != nil {
					return nil, err
				}
				userID, err := args.String("user_id")
				if err != nil {
					return nil, err
				}
				return client.UserGet(token, userID), nil
			},
		},
		&apiTool{
			name:        "user_create",
			description: "添加单个用户",
			schema: objectSchema(map[string]Property{
				"token":         tokenProp(),
				"username":      strProp("用户名"),
				"full_name":     strProp("姓名"),
				"department_id": strProp("部门ID"),
				"email":         strProp("可选，邮箱"),
				"mobile":        strProp("可选，手机号"),
				"password":      strProp("可选，密码"),
				"gender":        intPropDefault("可选，性别，1男、2女", openapi.GenderMale),
				"status":        intPropDefault("可选，状态，1正常、2禁用", openapi.UserStatusActive),
			}, "token", "username", "full_name", "department_id"),
			run: func(args Args) (map[string]any, error) {
				token, err := args.String("token")
				if err != nil {
					return nil, err
				}
				username, err := args.String("username")
				if err != nil {
					return nil, err
				}
				fullName, err := args.String("full_name")
				if err != nil {
					return nil, err
				}
				departmentID, err := args.String("department_id")
				if err != nil {
					return nil, err
				}
				email, err := args.OptionalString("email")
				if err != nil {
					return nil, err
				}
				mobile, err := args.OptionalString("mobile")
				if err != nil {
					return nil, err
				}
				password, err := args.OptionalString("password")
				if err != nil {
					return nil, err
				}
				gender, err := args.IntDefault("gender", openapi.GenderMale)
				if err != nil {
					return nil, err
				}
				status, err := args.IntDefault("status", openapi.UserStatusActive)
				if err != nil {
					return nil, err
				}
				return client.UserCreate(token, openapi.CreateUserParams{
					Username:     username,
					FullName:     fullName,
					DepartmentID: departmentID,
					Email:        email,
					Mobile:       mobile,
					Password:     password,
					Gender:       gender,
					Status:       status,
				}), nil
			},
		},
		&apiTool{
			name:        "user_set_status",
			description: "设置用户状态（1=正常，2=禁用，3=离职，4=未激活）",
			schema: objectSchema(map[string]Property{
				"token":   tokenProp(),
				"user_id": strProp("用户ID"),
				"status":  intProp("状态（1=正常，2=禁用，3=离职，4=未激活）"),
			}, "token", "user_id", "status"),
			run: func(args Args) (map[string]any, error) {
				token, err := args.String("token")
				if err != nil {
					return nil, err
				}
				userID, err := args.String("user_id")
				if err != nil {
					return nil, err
				}
				status, err := args.OptionalInt("status")
				if err != nil {
					return nil, err
				}
				if status == nil {
					return nil, missingArg("status")
				}
				return client.UserSetStatus(token, userID, *status), nil
			},
		},
		&apiTool{
			name:        "user_update",
			description: "更新用户信息",
			schema: objectSchema(map[string]Property{
				"token":         tokenProp(),
				"user_id":       strProp("用户ID"),
				"full_name":     strProp("可选，姓名"),
				"email":         strProp("可选，邮箱"),
				"mobile":        strProp("可选，手机号"),
				"department_id": strProp("可选，部门ID"),
				"role_ids":      strListProp("可选，角色ID列表"),
				"status":        intProp("可选，用户状态（1=正常，2=禁用，3=离职，4=未激活）"),
			}, "token", "user_id"),
			run: func(args Args) (map[string]any, error) {
				token, err := args.String("token")
				if err != nil {
					return nil, err
				}
				userID, err := args.String("user_id")
				if err != nil {
					return nil, err
				}
				fullName, err := args.OptionalString("full_name")
				if err != nil {
					return nil, err
				}
				email, err := args.OptionalString("email")
				if err != nil {
					return nil, err
				}
				mobile, err := args.OptionalString("mobile")
				if err != nil {
					return nil, err
				}
				departmentID, err := args.OptionalString("department_id")
				if err != nil {
					return nil, err
				}
				roleIDs, err := args.OptionalStringSlice("role_ids")
				if err != nil {
					return nil, err
				}
				status, err := args.OptionalInt("status")
				if err != nil {
					return nil, err
				}
				return client.UserUpdate(token, userID, openapi.UpdateUserParams{
					FullName:     fullName,
					Email:        email,
					Mobile:       mobile,
					DepartmentID: departmentID,
					RoleIDs:      roleIDs,
					Status:       status,
				}), nil
			},
		},
		&apiTool{
			name:        "user_delete",
			description: "删除用户，默认先将用户设置为离职状态",
			schema: objectSchema(map[string]Property{
				"token":             tokenProp(),
				"user_id":           strProp("用户ID"),
				"set_offline_first": boolPropDefault("是否先将用户设置为离职状态", true),
			}, "token", "user_id"),
			run: func(args Args) (map[string]any, error) {
				token, err := args.String("token")
				if err != nil {
					return nil, err
				}
				userID, err := args.String("user_id")
				if err != nil {
					return nil, err
				}
				setOfflineFirst, err := args.BoolDefault("set_offline_first", true)
				if err != nil {
					return nil, err
				}
				return client.UserDelete(token, userID, setOfflineFirst), nil
			},
		},
		&apiTool{
			name:        "user_batch_get_id",
			description: "批量获取用户的 open id",
			schema: objectSchema(map[string]Property{
				"token":     tokenProp(),
				"usernames": strListProp("用户名列表"),
			}, "token", "usernames"),
			run: func(args Args) (map[string]any, error) {
				token, err := args.String("token")
				if err != nil {
					return nil, err
				}
				usernames, err := args.StringSlice("usernames")
				if err != nil {
					return nil, err
				}
				return client.UserBatchGetID(token, usernames), nil
			},
		},
	}

	for _, t := range all {
		if err := r.Register(t); err != nil {
			return err
		}
	}
	return nil
}
