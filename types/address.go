package types

type AddAddressRequest struct {
	Addr string `json:"addr" binding:"required,min=1,max=80"`
}
