package model

// User is a credential record looked up by phone.
type User struct {
	ID       uint64  `json:"id" gorm:"primaryKey"`
	Name     *string `json:"name" gorm:"size:255"`
	Email    *string `json:"email" gorm:"size:255"`
	Phone    string  `json:"phone" gorm:"size:20;uniqueIndex;not null"`
	Password string  `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Role     *string `json:"role" gorm:"size:50;default:'user'"`
	IsActive *int    `json:"is_active" gorm:"default:1"`
}

// Active reports whether the user may log in. A NULL flag does not block.
func (u *User) Active() bool {
	return u.IsActive == nil || *u.IsActive == 1
}

// PublicUser is the sanitized user returned after a successful login.
type PublicUser struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Role  string `json:"role"`
}

// Public strips the password hash and renders NULL text columns as "".
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:    u.ID,
		Name:  deref(u.Name),
		Email: deref(u.Email),
		Phone: u.Phone,
		Role:  deref(u.Role),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
