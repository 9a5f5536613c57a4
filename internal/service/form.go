package service

import (
	"context"
	"strconv"
	"strings"

	"github.com/cascade-admin/locations/internal/domain"
)

const (
	MessageInvalid = "This value is not valid."
	MessageBlank   = "This value should not be blank."
)

const (
	FieldCountry = "country"
	FieldRegion  = "region"
	FieldCity    = "city"
)

type FormStatus string

const (
	FormPopulated FormStatus = "populated"
	FormInvalid   FormStatus = "needs_correction"
	FormValid     FormStatus = "ready_to_persist"
)

// Field describes one dropdown of the location form: what is selected, what
// may be selected and what is wrong with the selection.
type Field struct {
	Name        string
	Placeholder string
	Value       string
	Options     []domain.Option
	Error       string
}

// ID is the HTML id of the field's select element.
func (f Field) ID() string {
	return "location_" + f.Name
}

func (f Field) Selected(option domain.Option) bool {
	return f.Value != "" && f.Value == option.Value()
}

func (f Field) HasError() bool {
	return f.Error != ""
}

type LocationForm struct {
	Country Field
	Region  Field
	City    Field
	Status  FormStatus
}

func (f *LocationForm) Fields() []Field {
	return []Field{f.Country, f.Region, f.City}
}

func (f *LocationForm) Valid() bool {
	return f.Status == FormValid
}

// Errors maps field names to their messages; fields without errors are left
// out.
func (f *LocationForm) Errors() map[string]string {
	errs := make(map[string]string)
	for _, field := range f.Fields() {
		if field.HasError() {
			errs[field.Name] = field.Error
		}
	}
	return errs
}

// Submission holds raw submitted ids; any of them may be empty or garbage.
type Submission struct {
	Country string `form:"country" json:"country"`
	Region  string `form:"region" json:"region"`
	City    string `form:"city" json:"city"`
}

type formService struct {
	cascade Cascade
}

func newFormService(cascade Cascade) *formService {
	return &formService{
		cascade: cascade,
	}
}

// Populate builds the form for a stored location, or a blank one when the
// location has no city yet. Region and city options are scoped to the stored
// country and region.
func (s *formService) Populate(ctx context.Context, location *domain.Location) (*LocationForm, error) {
	var cityID *int64
	if location != nil && location.CityID != 0 {
		id := location.CityID
		cityID = &id
	}

	hierarchy, err := s.cascade.ResolveFromCity(ctx, cityID)
	if err != nil {
		return nil, err
	}

	form, err := s.build(ctx, hierarchy.Country, hierarchy.Region)
	if err != nil {
		return nil, err
	}

	if hierarchy.City != nil {
		form.Country.Value = formatID(hierarchy.Country.ID)
		form.Region.Value = formatID(hierarchy.Region.ID)
		form.City.Value = formatID(hierarchy.City.ID)
	}
	form.Status = FormPopulated

	return form, nil
}

// Resolve rebuilds the form from a submission, scoping region options to the
// submitted country and city options to the submitted region, and validates
// every field against those options. When the form is valid the location's
// city is set to the submitted one.
func (s *formService) Resolve(ctx context.Context, location *domain.Location, submission Submission) (*LocationForm, error) {
	countryID := parseID(submission.Country)
	regionID := parseID(submission.Region)
	cityID := parseID(submission.City)

	country, region, err := s.cascade.ResolveFromSubmission(ctx, countryID, regionID)
	if err != nil {
		return nil, err
	}

	form, err := s.build(ctx, country, region)
	if err != nil {
		return nil, err
	}

	form.Country.Value = strings.TrimSpace(submission.Country)
	form.Region.Value = strings.TrimSpace(submission.Region)
	form.City.Value = strings.TrimSpace(submission.City)

	form.Country.Error = validateCountry(form.Country.Value, country)
	form.Region.Error = validateChoice(form.Region.Value, regionID, form.Region.Options)
	form.City.Error = validateChoice(form.City.Value, cityID, form.City.Options)

	if len(form.Errors()) > 0 {
		form.Status = FormInvalid
		return form, nil
	}

	location.CityID = *cityID
	form.Status = FormValid

	return form, nil
}

func (s *formService) build(ctx context.Context, country *domain.Country, region *domain.Region) (*LocationForm, error) {
	countries, err := s.cascade.OptionsForCountry(ctx)
	if err != nil {
		return nil, err
	}

	regions, err := s.cascade.OptionsForRegion(ctx, country)
	if err != nil {
		return nil, err
	}

	cities, err := s.cascade.OptionsForCity(ctx, region)
	if err != nil {
		return nil, err
	}

	return &LocationForm{
		Country: Field{Name: FieldCountry, Placeholder: "Select a country", Options: countries},
		Region:  Field{Name: FieldRegion, Placeholder: "Select a region", Options: regions},
		City:    Field{Name: FieldCity, Placeholder: "Select a city", Options: cities},
	}, nil
}

func validateCountry(raw string, country *domain.Country) string {
	if raw == "" {
		return MessageBlank
	}
	if country == nil {
		return MessageInvalid
	}
	return ""
}

func validateChoice(raw string, id *int64, options []domain.Option) string {
	if raw == "" {
		return MessageBlank
	}
	if id == nil || !domain.ContainsOption(options, *id) {
		return MessageInvalid
	}
	return ""
}

// parseID returns nil for anything that is not a positive integer.
func parseID(raw string) *int64 {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return nil
	}
	return &id
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
