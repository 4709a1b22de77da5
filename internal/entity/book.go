package entity

const DefaultAvailability = "Available"

type Book struct {
	Title        string
	Subject      string
	Description  string
	Keywords     []string
	Availability string
}

func (b Book) HasKeyword(keyword string) bool {
	for _, k := range b.Keywords {
		if k == keyword {
			return true
		}
	}
	return false
}
