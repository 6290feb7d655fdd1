package course

type Year string

const (
	YearOne   Year = "Y1"
	YearTwo   Year = "Y2"
	YearThree Year = "Y3"
)

var AllYears = []Year{
	YearOne,
	YearTwo,
	YearThree,
}

func (y Year) IsValid() bool {
	for _, v := range AllYears {
		if y == v {
			return true
		}
	}
	return false
}
