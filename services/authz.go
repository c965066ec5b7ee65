package services

import "food-order/models"

// Authorization is a pure policy decision over objects already fetched from
// storage; it never touches the token layer.

func IsOwner(user *models.User, order *models.Order) bool {
	return user.ID == order.UserID
}

func IsAdmin(user *models.User) bool {
	return user.Admin
}

// CanAccessOrder reports whether the actor may read or mutate the order.
func CanAccessOrder(user *models.User, order *models.Order) bool {
	return IsOwner(user, order) || IsAdmin(user)
}
