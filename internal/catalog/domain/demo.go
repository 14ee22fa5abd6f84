package domain

import (
	"net/url"
	"strings"
	"time"
)

type DemoState string

const (
	DemoActive      DemoState = "active"
	DemoInactive    DemoState = "inactive"
	DemoMaintenance DemoState = "maintenance"
)

func ParseDemoState(s string) (DemoState, error) {
	switch st := DemoState(strings.ToLower(strings.TrimSpace(s))); st {
	case "":
		return DemoActive, nil
	case DemoActive, DemoInactive, DemoMaintenance:
		return st, nil
	}
	return "", Validationf("unknown demo state %q", s)
}

// Demo is a product demo listed in the catalog.
type Demo struct {
	ID           string
	Name         string
	Description  string
	Vertical     string
	Horizontal   string
	Keywords     string
	ProjectCode  string
	URL          string
	State        DemoState
	SalesName    string
	SalesContact string
	SalesPhoto   string
	CreatedBy    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (d Demo) Validate() error {
	if err := ValidateName(d.Name, 100); err != nil {
		return err
	}
	for _, f := range []struct {
		field, value string
		max          int
	}{
		{"vertical", d.Vertical, 50},
		{"horizontal", d.Horizontal, 50},
		{"project_code", d.ProjectCode, 6},
		{"sales_name", d.SalesName, 100},
		{"sales_contact", d.SalesContact, 20},
		{"sales_photo_url", d.SalesPhoto, 255},
	} {
		if len([]rune(f.value)) > f.max {
			return Validationf("%s must be at most %d characters", f.field, f.max)
		}
	}
	if _, err := ParseDemoState(string(d.State)); err != nil {
		return err
	}
	if d.URL != "" {
		u, err := url.Parse(d.URL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return Validationf("url must be an absolute http(s) URL")
		}
	}
	return nil
}

// DemoFilter narrows a demo listing. Empty fields match everything.
type DemoFilter struct {
	State      DemoState
	Vertical   string
	Horizontal string
}

func (f DemoFilter) Match(d Demo) bool {
	if f.State != "" && d.State != f.State {
		return false
	}
	if f.Vertical != "" && !strings.EqualFold(d.Vertical, f.Vertical) {
		return false
	}
	if f.Horizontal != "" && !strings.EqualFold(d.Horizontal, f.Horizontal) {
		return false
	}
	return true
}

// DemoPatch carries a partial demo update.
type DemoPatch struct {
	Name         *string
	Description  *string
	Vertical     *string
	Horizontal   *string
	Keywords     *string
	ProjectCode  *string
	URL          *string
	State        *DemoState
	SalesName    *string
	SalesContact *string
	SalesPhoto   *string
}

func (p DemoPatch) Apply(d Demo) Demo {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = strings.TrimSpace(*src)
		}
	}
	set(&d.Name, p.Name)
	set(&d.Description, p.Description)
	set(&d.Vertical, p.Vertical)
	set(&d.Horizontal, p.Horizontal)
	set(&d.Keywords, p.Keywords)
	set(&d.ProjectCode, p.ProjectCode)
	set(&d.URL, p.URL)
	set(&d.SalesName, p.SalesName)
	set(&d.SalesContact, p.SalesContact)
	set(&d.SalesPhoto, p.SalesPhoto)
	if p.State != nil {
		d.State = *p.State
	}
	return d
}
