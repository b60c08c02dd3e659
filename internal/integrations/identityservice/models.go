package identityservice

// User модель пользователя из IdentityService
type User struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"` // "customer" или "staff"
}

// IsStaff возвращает true, если пользователь - сотрудник шоурума
func (u *User) IsStaff() bool {
	return u.Role == "staff"
}
