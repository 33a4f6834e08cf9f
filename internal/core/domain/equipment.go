package domain

type EquipmentType string

const (
	TypeComputer          EquipmentType = "COMPUTER"
	TypeServer            EquipmentType = "SERVER"
	TypeNetworkDevice     EquipmentType = "NETWORK_DEVICE"
	TypeStorage           EquipmentType = "STORAGE"
	TypeHardwareComponent EquipmentType = "HARDWARE_COMPONENT"
	TypePeripheral        EquipmentType = "PERIPHERAL"
	TypeSoftwareLicense   EquipmentType = "SOFTWARE_LICENSE"
	TypeOther             EquipmentType = "OTHER"
)

type LabCategory string

const (
	CategoryProgramming LabCategory = "PROGRAMMING"
	CategoryNetworking  LabCategory = "NETWORKING"
	CategoryDatabase    LabCategory = "DATABASE"
	CategoryHardware    LabCategory = "HARDWARE"
	CategoryResearch    LabCategory = "RESEARCH"
	CategoryMultimedia  LabCategory = "MULTIMEDIA"
	CategoryGeneral     LabCategory = "GENERAL"
)

type EquipmentStatus string

// The student catalog marks a taken unit "booked" while the admin console
// marks it "in-use". Both remain legal values of the one status set.
const (
	EquipmentAvailable   EquipmentStatus = "available"
	EquipmentBooked      EquipmentStatus = "booked"
	EquipmentInUse       EquipmentStatus = "in-use"
	EquipmentMaintenance EquipmentStatus = "maintenance"
	EquipmentOutOfOrder  EquipmentStatus = "out-of-order"
)

type Equipment struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Type            EquipmentType     `json:"type"`
	Category        LabCategory       `json:"category,omitempty"`
	Description     string            `json:"description"`
	Status          EquipmentStatus   `json:"status"`
	ImageURL        string            `json:"imageUrl,omitempty"`
	Specifications  map[string]string `json:"specifications,omitempty"`
	Quantity        int               `json:"quantity"`
	Location        string            `json:"location"`
	Manufacturer    string            `json:"manufacturer,omitempty"`
	Model           string            `json:"model,omitempty"`
	SerialNumber    string            `json:"serialNumber,omitempty"`
	LastMaintenance string            `json:"lastMaintenance,omitempty"`
	NextMaintenance string            `json:"nextMaintenance,omitempty"`
	PurchaseDate    string            `json:"purchaseDate,omitempty"`
	WarrantyExpiry  string            `json:"warrantyExpiry,omitempty"`
}
