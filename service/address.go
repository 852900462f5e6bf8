package service

import (
	"context"
	"errors"

	"minimall/dao"
	"minimall/models"
)

var ErrTooManyAddresses = errors.New("收货地址数量已达上限")

const maxAddresses = 10

var _ IAddressService = (*AddressService)(nil)

type IAddressService interface {
	Add(ctx context.Context, customerID, addr string) (*models.Address, error)
	List(ctx context.Context, customerID string) ([]*models.Address, error)
	Delete(ctx context.Context, customerID string, addressID uint64) error
}

type AddressService struct {
	AddressDAO *dao.Address
}

func (s *AddressService) Add(ctx context.Context, customerID, addr string) (*models.Address, error) {
	existing, err := s.AddressDAO.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if len(existing) >= maxAddresses {
		return nil, ErrTooManyAddresses
	}

	address := &models.Address{CustomerID: customerID, Addr: addr}
	if err := s.AddressDAO.Create(ctx, address); err != nil {
		return nil, err
	}
	return address, nil
}

func (s *AddressService) List(ctx context.Context, customerID string) ([]*models.Address, error) {
	return s.AddressDAO.ListByCustomer(ctx, customerID)
}

// Delete 只删自己的地址，归属不符按不存在处理。历史订单上的
// 地址是下单时拷贝的文本，不受删除影响。
func (s *AddressService) Delete(ctx context.Context, customerID string, addressID uint64) error {
	ok, err := s.AddressDAO.DeleteOwned(ctx, addressID, customerID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrAddressNotFound
	}
	return nil
}
