package service

import (
	"context"
	"testing"

	"minimall/types"

	"github.com/stretchr/testify/require"
)

func TestRegisterCustomerValidation(t *testing.T) {
	svc := &AuthService{}
	ctx := context.Background()

	cases := []struct {
		name string
		req  types.RegisterRequest
		want error
	}{
		{"用户名过短", types.RegisterRequest{User: "ab", Password: "password1", Tel: "13812345678", Name: "小明"}, ErrBadUsername},
		{"用户名含特殊字符", types.RegisterRequest{User: "user@name", Password: "password1", Tel: "13812345678", Name: "小明"}, ErrBadUsername},
		{"密码过短", types.RegisterRequest{User: "user1", Password: "short1", Tel: "13812345678", Name: "小明"}, ErrBadPassword},
		{"密码过长", types.RegisterRequest{User: "user1", Password: "verylongpassword1", Tel: "13812345678", Name: "小明"}, ErrBadPassword},
		{"手机号不合法", types.RegisterRequest{User: "user1", Password: "password1", Tel: "12012345678", Name: "小明"}, ErrBadTel},
		{"手机号位数不足", types.RegisterRequest{User: "user1", Password: "password1", Tel: "1381234567", Name: "小明"}, ErrBadTel},
		{"昵称为空", types.RegisterRequest{User: "user1", Password: "password1", Tel: "13812345678", Name: ""}, ErrBadNickname},
		{"昵称过长", types.RegisterRequest{User: "user1", Password: "password1", Tel: "13812345678", Name: "一二三四五六七八九十一"}, ErrBadNickname},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.RegisterCustomer(ctx, &tc.req)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestRegisterAdminValidation(t *testing.T) {
	svc := &AuthService{}
	ctx := context.Background()

	// 发货管理员无权开账号
	_, err := svc.RegisterAdmin(ctx, 50, &types.AdminRegisterRequest{User: "admin1", Password: "password1", Privilege: 50})
	require.ErrorIs(t, err, ErrLowPrivilege)

	_, err = svc.RegisterAdmin(ctx, 100, &types.AdminRegisterRequest{User: "a", Password: "password1", Privilege: 50})
	require.ErrorIs(t, err, ErrBadUsername)

	_, err = svc.RegisterAdmin(ctx, 100, &types.AdminRegisterRequest{User: "admin1", Password: "pw", Privilege: 50})
	require.ErrorIs(t, err, ErrBadPassword)

	_, err = svc.RegisterAdmin(ctx, 100, &types.AdminRegisterRequest{User: "admin1", Password: "password1", Privilege: 0})
	require.ErrorIs(t, err, ErrBadPrivilege)

	_, err = svc.RegisterAdmin(ctx, 100, &types.AdminRegisterRequest{User: "admin1", Password: "password1", Privilege: 101})
	require.ErrorIs(t, err, ErrBadPrivilege)
}
