package domain

type Country struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name" validate:"required,max=255"`
}

func (c *Country) Option() Option {
	return Option{ID: c.ID, Name: c.Name}
}
