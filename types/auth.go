package types

// RegisterRequest 顾客注册
type RegisterRequest struct {
	User       string `json:"user" binding:"required,min=3,max=16"`
	Password   string `json:"password" binding:"required,min=8,max=16"`
	RePassword string `json:"repassword" binding:"required,eqfield=Password"`
	Tel        string `json:"tel" binding:"required,len=11"`
	Name       string `json:"name" binding:"required,min=1,max=10"`
}

// AdminRegisterRequest 管理员注册，仅目录管理员可操作
type AdminRegisterRequest struct {
	User       string `json:"user" binding:"required,min=3,max=16"`
	Password   string `json:"password" binding:"required,min=8,max=16"`
	RePassword string `json:"repassword" binding:"required,eqfield=Password"`
	Privilege  int    `json:"privilege" binding:"required,min=1,max=100"`
}

// LoginRequest 登录，is_admin 区分前台/后台账号
type LoginRequest struct {
	User     string `json:"user" binding:"required"`
	Password string `json:"password" binding:"required"`
	IsAdmin  bool   `json:"is_admin"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
	Kind        string `json:"kind"`
	Privilege   int    `json:"privilege"`
}
