package handler

import (
	"errors"
	"net/http"

	"minimall/pkg/response"
	"minimall/service"
)

// wrapErr 把 service 层的哨兵错误转成统一业务码，其余错误按 500 上抛
func wrapErr(err error) error {
	switch {
	case errors.Is(err, service.ErrOrderNotFound),
		errors.Is(err, service.ErrGoodsNotFound),
		errors.Is(err, service.ErrAddressNotFound),
		errors.Is(err, service.ErrCateNotFound),
		errors.Is(err, service.ErrBrandNotFound),
		errors.Is(err, service.ErrImageNotFound),
		errors.Is(err, service.ErrUserNotFound):
		return response.NewError(http.StatusNotFound, err.Error())

	case errors.Is(err, service.ErrForbidden),
		errors.Is(err, service.ErrLowPrivilege):
		return response.NewError(http.StatusForbidden, err.Error())

	case errors.Is(err, service.ErrInvalidState),
		errors.Is(err, service.ErrAlreadyClaimed),
		errors.Is(err, service.ErrAlreadyAppraised),
		errors.Is(err, service.ErrOutOfStock),
		errors.Is(err, service.ErrInsufficientStock),
		errors.Is(err, service.ErrGoodsDiscontinued),
		errors.Is(err, service.ErrNameExists),
		errors.Is(err, service.ErrUserExists),
		errors.Is(err, service.ErrStockUnderflow),
		errors.Is(err, service.ErrTooManyImages),
		errors.Is(err, service.ErrTooManyAddresses):
		return response.NewError(http.StatusConflict, err.Error())

	case errors.Is(err, service.ErrInvalidQuantity),
		errors.Is(err, service.ErrBadUsername),
		errors.Is(err, service.ErrBadPassword),
		errors.Is(err, service.ErrBadTel),
		errors.Is(err, service.ErrBadPrivilege),
		errors.Is(err, service.ErrBadNickname),
		errors.Is(err, service.ErrWrongPassword),
		errors.Is(err, service.ErrBadImage),
		errors.Is(err, service.ErrImageTooBig):
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	return response.NewError(http.StatusInternalServerError, err.Error())
}
