package domain

import "strconv"

// Option is a single entry of a dropdown: an entity id and its display name.
type Option struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
} // @name Option

func (o Option) Value() string {
	return strconv.FormatInt(o.ID, 10)
}

// ContainsOption reports whether id is one of the options.
func ContainsOption(options []Option, id int64) bool {
	for _, o := range options {
		if o.ID == id {
			return true
		}
	}
	return false
}
