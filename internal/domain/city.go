package domain

type City struct {
	ID       int64  `db:"id" json:"id"`
	RegionID int64  `db:"region_id" json:"region_id" validate:"required,gt=0"`
	Name     string `db:"name" json:"name" validate:"required,max=255"`
}

func (c *City) Option() Option {
	return Option{ID: c.ID, Name: c.Name}
}
