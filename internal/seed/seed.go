// Package seed holds the hard-coded sample data the portal runs on. The
// equipment catalog, notifications, software licenses, maintenance logs and
// lab usage stats are process-local and reset on restart; only bookings and
// complaints get a durable copy behind the list store.
package seed

import (
	"time"

	"github.com/AchilleasB/uni-labs/equipment-portal-service/internal/core/domain"
)

// Labs are the lab room numbers a student can file a complaint against.
func Labs() []string {
	return []string{"301", "302", "401", "404", "502", "503", "511", "311", "312", "317"}
}

// Users is the fixed demo credential list. In production this would be a
// proper identity backend.
func Users() []domain.User {
	return []domain.User{
		{
			ID:       "1",
			Name:     "Lab Administrator",
			Email:    "admin@university.edu",
			Role:     domain.RoleAdmin,
			Password: "admin123",
		},
		{
			ID:       "2",
			Name:     "Current Student",
			Email:    "student@university.edu",
			Role:     domain.RoleStudent,
			Password: "student123",
		},
	}
}

// Equipment is the static lab catalog.
func Equipment() []domain.Equipment {
	return []domain.Equipment{
		{
			ID:          "1",
			Name:        "Dell Precision Workstation",
			Type:        domain.TypeComputer,
			Category:    domain.CategoryProgramming,
			Description: "High-performance workstation for coding and virtualization",
			Status:      domain.EquipmentAvailable,
			Specifications: map[string]string{
				"processor": "Intel Xeon E5-2690 v4",
				"ram":       "64GB DDR4",
				"storage":   "1TB NVMe SSD + 2TB HDD",
				"gpu":       "NVIDIA Quadro RTX 5000",
			},
			Quantity:        20,
			Location:        "Programming Lab 301",
			Manufacturer:    "Dell",
			Model:           "Precision 7920",
			LastMaintenance: "2025-01-10",
			NextMaintenance: "2025-07-10",
		},
		{
			ID:          "2",
			Name:        "HP Z8 G4 Workstation",
			Type:        domain.TypeComputer,
			Category:    domain.CategoryHardware,
			Description: "Advanced workstation for design and simulation",
			Status:      domain.EquipmentInUse,
			Specifications: map[string]string{
				"processor": "Intel Xeon W-2295",
				"ram":       "128GB DDR4",
				"storage":   "2TB NVMe SSD",
				"gpu":       "NVIDIA RTX A6000",
			},
			Quantity:        10,
			Location:        "Hardware Lab 306",
			Manufacturer:    "HP",
			Model:           "Z8 G4",
			LastMaintenance: "2025-02-15",
			NextMaintenance: "2025-08-15",
		},
		{
			ID:          "3",
			Name:        "Dell OptiPlex Desktop",
			Type:        domain.TypeComputer,
			Category:    domain.CategoryGeneral,
			Description: "Reliable desktop for general-purpose computing",
			Status:      domain.EquipmentAvailable,
			Specifications: map[string]string{
				"processor": "Intel Core i7-13700",
				"ram":       "32GB DDR5",
				"storage":   "1TB SSD",
			},
			Quantity:        25,
			Location:        "General Lab 304",
			Manufacturer:    "Dell",
			Model:           "OptiPlex 7010",
			LastMaintenance: "2025-03-01",
			NextMaintenance: "2025-09-01",
		},
		{
			ID:          "4",
			Name:        "Logitech MX Keys",
			Type:        domain.TypePeripheral,
			Category:    domain.CategoryGeneral,
			Description: "Premium wireless keyboard for efficient typing",
			Status:      domain.EquipmentAvailable,
			Specifications: map[string]string{
				"connection": "Bluetooth/USB",
				"layout":     "QWERTY",
				"battery":    "Rechargeable",
			},
			Quantity:        50,
			Location:        "Storage Room A",
			Manufacturer:    "Logitech",
			Model:           "MX Keys",
			LastMaintenance: "2025-01-20",
			NextMaintenance: "N/A",
		},
		{
			ID:          "5",
			Name:        "Logitech MX Master Mouse",
			Type:        domain.TypePeripheral,
			Category:    domain.CategoryGeneral,
			Description: "Ergonomic wireless mouse for precise navigation",
			Status:      domain.EquipmentAvailable,
			Specifications: map[string]string{
				"connection": "Bluetooth/USB",
				"dpi":        "4000",
				"battery":    "Rechargeable",
			},
			Quantity:        50,
			Location:        "Storage Room A",
			Manufacturer:    "Logitech",
			Model:           "MX Master 3S",
			LastMaintenance: "2025-01-20",
			NextMaintenance: "N/A",
		},
		{
			ID:          "6",
			Name:        "HP EliteDesk CPU",
			Type:        domain.TypeComputer,
			Category:    domain.CategoryProgramming,
			Description: "Compact desktop for programming tasks",
			Status:      domain.EquipmentAvailable,
			Specifications: map[string]string{
				"processor": "Intel Core i5-13500",
				"ram":       "16GB DDR5",
				"storage":   "512GB SSD",
			},
			Quantity:        15,
			Location:        "Programming Lab 401",
			Manufacturer:    "HP",
			Model:           "EliteDesk 800 G9",
			LastMaintenance: "2025-02-10",
			NextMaintenance: "2025-08-10",
		},
		{
			ID:          "7",
			Name:        "Dell KB216 Keyboard",
			Type:        domain.TypePeripheral,
			Category:    domain.CategoryGeneral,
			Description: "Durable wired keyboard for lab use",
			Status:      domain.EquipmentAvailable,
			Specifications: map[string]string{
				"connection": "USB",
				"layout":     "QWERTY",
			},
			Quantity:        60,
			Location:        "Storage Room B",
			Manufacturer:    "Dell",
			Model:           "KB216",
			LastMaintenance: "2025-03-05",
			NextMaintenance: "N/A",
		},
		{
			ID:          "8",
			Name:        "Dell MS116 Mouse",
			Type:        domain.TypePeripheral,
			Category:    domain.CategoryGeneral,
			Description: "Simple wired mouse for everyday use",
			Status:      domain.EquipmentAvailable,
			Specifications: map[string]string{
				"connection": "USB",
				"dpi":        "1000",
			},
			Quantity:        60,
			Location:        "Storage Room B",
			Manufacturer:    "Dell",
			Model:           "MS116",
			LastMaintenance: "2025-03-05",
			NextMaintenance: "N/A",
		},
	}
}

func Notifications() []domain.Notification {
	return []domain.Notification{
		{
			ID:      "1",
			Title:   "Booking Approved",
			Message: "Your booking for Oscilloscope OSC-2000 has been approved",
			Date:    "2025-03-10T10:30:00",
			Read:    false,
			Icon:    domain.IconBell,
		},
		{
			ID:      "2",
			Title:   "Return Reminder",
			Message: "Dell Precision Workstation is due back tomorrow",
			Date:    "2025-03-12T09:00:00",
			Read:    false,
			Icon:    domain.IconClock,
		},
		{
			ID:      "3",
			Title:   "Maintenance Notice",
			Message: "Programming Lab 301 will be closed for maintenance on Friday",
			Date:    "2025-03-08T15:45:00",
			Read:    true,
			Icon:    domain.IconAlert,
		},
	}
}

func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }

// Complaints seeds the admin complaint box.
func Complaints() []domain.Complaint {
	return []domain.Complaint{
		{
			ID:            "1",
			StudentID:     "s12345",
			StudentName:   "Suman Shekhar",
			StudentEmail:  "john.doe@university.edu",
			EquipmentID:   strPtr("1"),
			EquipmentName: strPtr("Dell Precision Workstation"),
			ComplaintType: domain.ComplaintEquipment,
			Title:         "Keyboard not working",
			Description:   "The keyboard on workstation #5 in Programming Lab 101 is not responding. Several keys are stuck.",
			Status:        domain.ComplaintPending,
			CreatedAt:     time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			ID:            "2",
			StudentID:     "s67890",
			StudentName:   "Jahanvi",
			StudentEmail:  "jane.smith@university.edu",
			ComplaintType: domain.ComplaintFacility,
			Title:         "Air conditioning issue",
			Description:   "The air conditioning in Networking Lab 102 is not working properly. The room gets very hot during afternoon sessions.",
			Status:        domain.ComplaintInProgress,
			CreatedAt:     time.Date(2025, 3, 14, 14, 45, 0, 0, time.UTC),
			AdminComment:  strPtr("Technician scheduled for March 18"),
		},
		{
			ID:            "3",
			StudentID:     "s54321",
			StudentName:   "Divya",
			StudentEmail:  "alex.johnson@university.edu",
			EquipmentID:   strPtr("3"),
			EquipmentName: strPtr("HP Z8 G4 Workstation"),
			ComplaintType: domain.ComplaintEquipment,
			Title:         "Software installation request",
			Description:   "Need MATLAB installed on workstation #3 in Hardware Lab 103 for my final project.",
			Status:        domain.ComplaintResolved,
			CreatedAt:     time.Date(2025, 3, 10, 9, 15, 0, 0, time.UTC),
			ResolvedAt:    timePtr(time.Date(2025, 3, 12, 11, 20, 0, 0, time.UTC)),
			AdminComment:  strPtr("Software installed and tested"),
		},
		{
			ID:            "4",
			StudentID:     "s98765",
			StudentName:   "Amrutha",
			StudentEmail:  "sarah.williams@university.edu",
			ComplaintType: domain.ComplaintOther,
			Title:         "Noise disturbance",
			Description:   "Students from the adjacent lab are being too loud during our sessions, making it hard to concentrate.",
			Status:        domain.ComplaintPending,
			CreatedAt:     time.Date(2025, 3, 16, 16, 30, 0, 0, time.UTC),
		},
	}
}

func SoftwareLicenses() []domain.SoftwareLicense {
	return []domain.SoftwareLicense{
		{
			ID:                "1",
			Name:              "Visual Studio Enterprise",
			Vendor:            "Microsoft",
			Type:              domain.LicenseFloating,
			TotalLicenses:     100,
			AvailableLicenses: 85,
			ExpiryDate:        "2025-12-31",
			Features:          []string{"All IDE features", "Azure Credits", "Professional Tools"},
		},
		{
			ID:                "2",
			Name:              "MATLAB",
			Vendor:            "MathWorks",
			Type:              domain.LicenseSite,
			TotalLicenses:     500,
			AvailableLicenses: 500,
			ExpiryDate:        "2025-08-31",
			Features:          []string{"All Toolboxes", "Simulink", "Parallel Computing"},
		},
	}
}

func MaintenanceLogs() []domain.MaintenanceLog {
	return []domain.MaintenanceLog{
		{
			ID:          "1",
			EquipmentID: "1",
			Date:        "2025-02-15",
			Technician:  "John Smith",
			Description: "Routine maintenance and cleaning",
			Status:      domain.MaintenanceCompleted,
		},
		{
			ID:          "2",
			EquipmentID: "2",
			Date:        "2025-03-10",
			Technician:  "Sarah Johnson",
			Description: "Firmware update scheduled",
			Status:      domain.MaintenanceScheduled,
		},
	}
}

func Requests() []domain.Request {
	return []domain.Request{
		{
			ID:          "1",
			UserID:      "user123",
			EquipmentID: "1",
			Status:      domain.RequestPending,
			RequestDate: "2025-03-01",
			Duration:    7,
			Purpose:     "Software development project",
		},
		{
			ID:          "2",
			UserID:      "user456",
			EquipmentID: "2",
			Status:      domain.RequestApproved,
			RequestDate: "2025-02-28",
			Duration:    3,
			Purpose:     "Research lab assignment",
		},
	}
}

func LabStats() []domain.LabUsageStats {
	return []domain.LabUsageStats{
		{
			LabID:            "1",
			Category:         domain.CategoryProgramming,
			TotalEquipment:   50,
			ActiveBookings:   35,
			MaintenanceCount: 2,
			UtilizationRate:  0.85,
			PeakHours:        []string{"10:00", "14:00", "16:00"},
		},
		{
			LabID:            "2",
			Category:         domain.CategoryNetworking,
			TotalEquipment:   30,
			ActiveBookings:   20,
			MaintenanceCount: 1,
			UtilizationRate:  0.75,
			PeakHours:        []string{"11:00", "15:00"},
		},
	}
}
