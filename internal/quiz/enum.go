package quiz

type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
)

var AllVisibilities = []Visibility{
	VisibilityPublic,
	VisibilityPrivate,
}

func (v Visibility) IsValid() bool {
	for _, candidate := range AllVisibilities {
		if v == candidate {
			return true
		}
	}
	return false
}
