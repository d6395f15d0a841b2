// Package types 定义 HTTP 层与服务层共享的请求/响应结构体.
package types

import "strings"

// Role 表示请求方的角色（使用 iota 实现的枚举，数值越大权限越高）。
type Role int

const (
	RoleJobseeker Role = iota + 1
	RoleEmployer
	RoleAdmin
)

// String 返回角色的字符串表示。
func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "admin"
	case RoleEmployer:
		return "employer"
	case RoleJobseeker:
		fallthrough
	default:
		return "jobseeker"
	}
}

// ParseRole 从字符串解析角色，未知值降级为 jobseeker。
func ParseRole(s string) Role {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "admin":
		return RoleAdmin
	case "employer", "company":
		return RoleEmployer
	case "jobseeker", "user":
		fallthrough
	default:
		return RoleJobseeker
	}
}

// Principal 表示通过认证的请求方身份；零值（UserID 为空）表示匿名.
type Principal struct {
	UserID string `json:"user_id"`
	Role   Role   `json:"role"`
}

// Anonymous 判断是否匿名.
func (p Principal) Anonymous() bool {
	return p.UserID == ""
}

// IsAdmin 判断是否管理员.
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}
