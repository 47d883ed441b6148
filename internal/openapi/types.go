package openapi

// 目录实体均归后端所有，本服务只做请求/响应形状的透传，
// 不落库、不缓存、不做本地校验。

// Department 部门
type Department struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ParentID string `json:"parent_id"`
	Order    int    `json:"order"`
}

// Role 角色
type Role struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	UserIDs     []string `json:"user_ids"`
}

// User 用户
type User struct {
	ID           string   `json:"id"`
	Username     string   `json:"username"`
	FullName     string   `json:"full_name"`
	DepartmentID string   `json:"department_id"`
	Email        string   `json:"email"`
	Mobile       string   `json:"mobile"`
	Gender       int      `json:"gender"`
	Status       int      `json:"status"`
	RoleIDs      []string `json:"role_ids"`
}

// 用户状态枚举（后端定义，本地不校验取值范围）
const (
	UserStatusActive   = 1 // 正常
	UserStatusDisabled = 2 // 禁用
	UserStatusOffline  = 3 // 离职
	UserStatusInactive = 4 // 未激活
)

// 性别枚举
const (
	GenderMale   = 1
	GenderFemale = 2
)
