package domain

type Region struct {
	ID        int64  `db:"id" json:"id"`
	CountryID int64  `db:"country_id" json:"country_id" validate:"required,gt=0"`
	Name      string `db:"name" json:"name" validate:"required,max=255"`
}

func (r *Region) Option() Option {
	return Option{ID: r.ID, Name: r.Name}
}
