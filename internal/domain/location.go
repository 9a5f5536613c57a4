package domain

// Location references a city only. Its region and country are always
// derived through City.RegionID and Region.CountryID.
type Location struct {
	ID     int64 `db:"id" json:"id"`
	CityID int64 `db:"city_id" json:"city_id" validate:"required,gt=0"`
}

// LocationView is a location joined with the names of its hierarchy, as
// shown on the list page.
type LocationView struct {
	ID          int64  `db:"id" json:"id"`
	CountryName string `db:"country_name" json:"country"`
	RegionName  string `db:"region_name" json:"region"`
	CityName    string `db:"city_name" json:"city"`
}
