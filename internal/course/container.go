package course

import "gorm.io/gorm"

type CourseContainer struct {
	Handler *Handler
	Service Service
	Repo    CourseRepository
}

func NewCourseContainer(db *gorm.DB) *CourseContainer {
	repo := NewRepository(db)
	service := NewService(repo)
	handler := NewHandler(service)

	return &CourseContainer{
		Handler: handler,
		Service: service,
		Repo:    repo,
	}
}
