package admin

import "gorm.io/gorm"

type AdminContainer struct {
	Handler *Handler
	Repo    AdminRepository
}

func NewAdminContainer(db *gorm.DB) *AdminContainer {
	repo := NewRepository(db)

	return &AdminContainer{
		Handler: NewHandler(repo),
		Repo:    repo,
	}
}
