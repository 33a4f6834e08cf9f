package domain

type LicenseType string

const (
	LicenseFloating   LicenseType = "floating"
	LicenseSite       LicenseType = "site"
	LicenseNodeLocked LicenseType = "node-locked"
)

type SoftwareLicense struct {
	ID                string      `json:"id"`
	Name              string      `json:"name"`
	Vendor            string      `json:"vendor"`
	Type              LicenseType `json:"type"`
	TotalLicenses     int         `json:"totalLicenses"`
	AvailableLicenses int         `json:"availableLicenses"`
	ExpiryDate        string      `json:"expiryDate"`
	Features          []string    `json:"features,omitempty"`
}
