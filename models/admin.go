package models

import "time"

// 后台权限分层：1~49 普通员工，50~99 发货管理员，100 目录管理员
const (
	PrivilegeShipping = 50
	PrivilegeCatalog  = 100
)

// Admin 后台账号
type Admin struct {
	ID        string    `gorm:"primaryKey;type:varchar(16);column:id" json:"id"`
	Pwd       string    `gorm:"type:varchar(128);not null;column:pwd" json:"-"`
	Privilege int       `gorm:"not null;column:privilege" json:"privilege"` // 1~100
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Admin) TableName() string {
	return "admins"
}
