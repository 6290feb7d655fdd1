package user

import "gorm.io/gorm"

type UserContainer struct {
	Handler *Handler
	Service Service
	Repo    UserRepository
}

func NewUserContainer(db *gorm.DB) *UserContainer {
	repo := NewRepository(db)
	service := NewService(repo)
	handler := NewHandler(service, NewGoogleOAuthConfig())

	return &UserContainer{
		Handler: handler,
		Service: service,
		Repo:    repo,
	}
}
