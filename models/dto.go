package models

type RegisterRequest struct {
	Name     string `json:"name" form:"name" binding:"required,min=1,max=45"`
	Email    string `json:"email" form:"email" binding:"required,email,min=5,max=100"`
	Password string `json:"password" form:"password" binding:"required,min=3,max=45"`
	Active   *bool  `json:"active" form:"active" binding:"omitempty"`
	Admin    *bool  `json:"admin" form:"admin" binding:"omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required"`
}

type CreateOrderRequest struct {
	OwnerID int `json:"owner_id" binding:"required"`
}

type AddItemRequest struct {
	Quantity  int     `json:"quantity" binding:"required,min=1"`
	Flavor    string  `json:"flavor" binding:"required"`
	Size      string  `json:"size" binding:"required"`
	UnitPrice float64 `json:"unit_price" binding:"required,gt=0"`
}
