package dto

import "github.com/jhoicas/catalogo-api/internal/domain/entity"

// UserResponse usuario sin el hash de password.
type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ToUserResponse convierte la entidad a DTO. El password nunca sale de aquí.
func ToUserResponse(u *entity.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{ID: u.ID, Name: u.Name, Email: u.Email}
}
