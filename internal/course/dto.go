package course

type CreateCourseDTO struct {
	Name string `json:"name"`
	Year string `json:"year"`
}
