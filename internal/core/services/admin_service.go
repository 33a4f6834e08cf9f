package services

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/AchilleasB/uni-labs/equipment-portal-service/internal/core/domain"
)

type AdminTab string

const (
	TabOverview    AdminTab = "overview"
	TabEquipment   AdminTab = "equipment"
	TabSoftware    AdminTab = "software"
	TabRequests    AdminTab = "requests"
	TabMaintenance AdminTab = "maintenance"
	TabReports     AdminTab = "reports"
	TabComplaints  AdminTab = "complain-box"
	TabSettings    AdminTab = "settings"
)

// NewEquipment is the admin add-form payload; the session assigns the id.
type NewEquipment struct {
	Name            string                 `json:"name"`
	Type            domain.EquipmentType   `json:"type"`
	Category        domain.LabCategory     `json:"category"`
	Description     string                 `json:"description"`
	Status          domain.EquipmentStatus `json:"status"`
	ImageURL        string                 `json:"imageUrl,omitempty"`
	Specifications  map[string]string      `json:"specifications,omitempty"`
	Quantity        int                    `json:"quantity"`
	Location        string                 `json:"location"`
	Manufacturer    string                 `json:"manufacturer,omitempty"`
	Model           string                 `json:"model,omitempty"`
	LastMaintenance string                 `json:"lastMaintenance,omitempty"`
	NextMaintenance string                 `json:"nextMaintenance,omitempty"`
}

// EquipmentPatch is the scratch object of a two-phase edit. Only defined
// fields are merged over the original on commit.
type EquipmentPatch struct {
	Name            *string                 `json:"name,omitempty"`
	Type            *domain.EquipmentType   `json:"type,omitempty"`
	Category        *domain.LabCategory     `json:"category,omitempty"`
	Description     *string                 `json:"description,omitempty"`
	Status          *domain.EquipmentStatus `json:"status,omitempty"`
	ImageURL        *string                 `json:"imageUrl,omitempty"`
	Specifications  *map[string]string      `json:"specifications,omitempty"`
	Quantity        *int                    `json:"quantity,omitempty"`
	Location        *string                 `json:"location,omitempty"`
	Manufacturer    *string                 `json:"manufacturer,omitempty"`
	Model           *string                 `json:"model,omitempty"`
	LastMaintenance *string                 `json:"lastMaintenance,omitempty"`
	NextMaintenance *string                 `json:"nextMaintenance,omitempty"`
}

// NewComplaint is the admin complaint form payload.
type NewComplaint struct {
	StudentID     string               `json:"studentId"`
	StudentName   string               `json:"studentName"`
	StudentEmail  string               `json:"studentEmail"`
	EquipmentID   *string              `json:"equipmentId,omitempty"`
	EquipmentName *string              `json:"equipmentName,omitempty"`
	ComplaintType domain.ComplaintType `json:"complaintType"`
	Title         string               `json:"title"`
	Description   string               `json:"description"`
}

// AdminSession is the administrative console's state: every collection is
// in-memory, seeded from sample data, and every mutation is synchronous
// local state surgery. Nothing here is persisted; a restart resets it all.
type AdminSession struct {
	mu sync.Mutex

	activeTab  AdminTab
	searchTerm string

	equipment       []domain.Equipment
	complaints      []domain.Complaint
	licenses        []domain.SoftwareLicense
	maintenanceLogs []domain.MaintenanceLog
	requests        []domain.Request
	labStats        []domain.LabUsageStats

	editingID string
	draft     EquipmentPatch

	now func() time.Time
}

// AdminSeed carries the sample arrays an admin session starts from.
type AdminSeed struct {
	Equipment       []domain.Equipment
	Complaints      []domain.Complaint
	Licenses        []domain.SoftwareLicense
	MaintenanceLogs []domain.MaintenanceLog
	Requests        []domain.Request
	LabStats        []domain.LabUsageStats
}

func NewAdminSession(seed AdminSeed) *AdminSession {
	return &AdminSession{
		activeTab:       TabOverview,
		equipment:       append([]domain.Equipment(nil), seed.Equipment...),
		complaints:      append([]domain.Complaint(nil), seed.Complaints...),
		licenses:        append([]domain.SoftwareLicense(nil), seed.Licenses...),
		maintenanceLogs: append([]domain.MaintenanceLog(nil), seed.MaintenanceLogs...),
		requests:        append([]domain.Request(nil), seed.Requests...),
		labStats:        append([]domain.LabUsageStats(nil), seed.LabStats...),
		now:             time.Now,
	}
}

func (a *AdminSession) SetTab(tab AdminTab) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.activeTab = tab
}

// SetSearch updates the one search input shared by the equipment and
// complaint tabs. Each tab recomputes its own filter from it.
func (a *AdminSession) SetSearch(term string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.searchTerm = term
}

// AddEquipment assigns the next id as max(existing numeric ids)+1 rendered
// back to a string, then appends the item. An empty catalog starts at "1";
// non-numeric ids are ignored when computing the max.
func (a *AdminSession) AddEquipment(in NewEquipment) domain.Equipment {
	a.mu.Lock()
	defer a.mu.Unlock()

	maxID := 0
	for _, e := range a.equipment {
		if n, err := strconv.Atoi(e.ID); err == nil && n > maxID {
			maxID = n
		}
	}

	item := domain.Equipment{
		ID:              strconv.Itoa(maxID + 1),
		Name:            in.Name,
		Type:            in.Type,
		Category:        in.Category,
		Description:     in.Description,
		Status:          in.Status,
		ImageURL:        in.ImageURL,
		Specifications:  in.Specifications,
		Quantity:        in.Quantity,
		Location:        in.Location,
		Manufacturer:    in.Manufacturer,
		Model:           in.Model,
		LastMaintenance: in.LastMaintenance,
		NextMaintenance: in.NextMaintenance,
	}
	if item.Specifications == nil {
		item.Specifications = map[string]string{}
	}
	a.equipment = append(a.equipment, item)
	return item
}

// BeginEdit enters edit mode for the item, starting from an empty scratch
// patch. Commit merges only the fields the admin actually changed.
func (a *AdminSession) BeginEdit(id string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, e := range a.equipment {
		if e.ID == id {
			a.editingID = id
			a.draft = EquipmentPatch{}
			return nil
		}
	}
	return ErrEquipmentNotFound
}

// SetDraft overlays newly edited fields onto the scratch patch.
func (a *AdminSession) SetDraft(patch EquipmentPatch) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.editingID == "" {
		return ErrNoEditInProgress
	}
	mergePatch(&a.draft, patch)
	return nil
}

// CommitEdit merges the scratch patch's defined fields over the original and
// leaves edit mode.
func (a *AdminSession) CommitEdit() (*domain.Equipment, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.editingID == "" {
		return nil, ErrNoEditInProgress
	}
	for i := range a.equipment {
		if a.equipment[i].ID == a.editingID {
			applyPatch(&a.equipment[i], a.draft)
			a.editingID = ""
			a.draft = EquipmentPatch{}
			updated := a.equipment[i]
			return &updated, nil
		}
	}
	a.editingID = ""
	a.draft = EquipmentPatch{}
	return nil, ErrEquipmentNotFound
}

func (a *AdminSession) CancelEdit() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.editingID = ""
	a.draft = EquipmentPatch{}
}

// DeleteEquipment removes the item by id. There is no confirmation and no
// cascade: bookings, complaints and maintenance logs referencing the id keep
// their dangling reference, and lookups elsewhere stay nil-safe.
func (a *AdminSession) DeleteEquipment(id string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	kept := a.equipment[:0]
	for _, e := range a.equipment {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	a.equipment = kept
	if a.editingID == id {
		a.editingID = ""
		a.draft = EquipmentPatch{}
	}
}

// UpdateComplaintStatus transitions a complaint. Any target status except
// pending requires a non-empty admin comment; without one the call rejects
// and nothing mutates. Resolving stamps the resolution time.
func (a *AdminSession) UpdateComplaintStatus(id string, status domain.ComplaintStatus, comment string) (*domain.Complaint, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if comment == "" && status != domain.ComplaintPending {
		return nil, ErrCommentRequired
	}

	for i := range a.complaints {
		if a.complaints[i].ID != id {
			continue
		}
		a.complaints[i].Status = status
		if status != domain.ComplaintPending {
			a.complaints[i].AdminComment = &comment
		}
		if status == domain.ComplaintResolved {
			resolvedAt := a.now()
			a.complaints[i].ResolvedAt = &resolvedAt
		}
		updated := a.complaints[i]
		return &updated, nil
	}
	return nil, ErrComplaintNotFound
}

// AddComplaint files a complaint from the admin form.
func (a *AdminSession) AddComplaint(in NewComplaint) domain.Complaint {
	a.mu.Lock()
	defer a.mu.Unlock()

	complaint := domain.Complaint{
		ID:            fmt.Sprintf("comp-%d", len(a.complaints)+1),
		StudentID:     in.StudentID,
		StudentName:   in.StudentName,
		StudentEmail:  in.StudentEmail,
		EquipmentID:   in.EquipmentID,
		EquipmentName: in.EquipmentName,
		ComplaintType: in.ComplaintType,
		Title:         in.Title,
		Description:   in.Description,
		Status:        domain.ComplaintPending,
		CreatedAt:     a.now(),
	}
	a.complaints = append(a.complaints, complaint)
	return complaint
}

// DeleteComplaint removes the complaint with no confirmation.
func (a *AdminSession) DeleteComplaint(id string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	kept := a.complaints[:0]
	for _, c := range a.complaints {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	a.complaints = kept
}

// FilteredEquipment applies the shared search term to name, type and
// description.
func (a *AdminSession) FilteredEquipment() []domain.Equipment {
	a.mu.Lock()
	defer a.mu.Unlock()
	term := strings.ToLower(a.searchTerm)
	var out []domain.Equipment
	for _, e := range a.equipment {
		if term == "" ||
			strings.Contains(strings.ToLower(e.Name), term) ||
			strings.Contains(strings.ToLower(string(e.Type)), term) ||
			strings.Contains(strings.ToLower(e.Description), term) {
			out = append(out, e)
		}
	}
	return out
}

// FilteredComplaints applies the shared search term to title, description,
// student name and equipment name.
func (a *AdminSession) FilteredComplaints() []domain.Complaint {
	a.mu.Lock()
	defer a.mu.Unlock()
	term := strings.ToLower(a.searchTerm)
	var out []domain.Complaint
	for _, c := range a.complaints {
		if term == "" ||
			strings.Contains(strings.ToLower(c.Title), term) ||
			strings.Contains(strings.ToLower(c.Description), term) ||
			strings.Contains(strings.ToLower(c.StudentName), term) ||
			(c.EquipmentName != nil && strings.Contains(strings.ToLower(*c.EquipmentName), term)) {
			out = append(out, c)
		}
	}
	return out
}

// AdminSnapshot is the console's render-ready projection: the mutable
// collections already filtered per the active tab's search, the read-only
// seeded collections as-is.
type AdminSnapshot struct {
	ActiveTab       AdminTab                 `json:"activeTab"`
	SearchTerm      string                   `json:"searchTerm"`
	Equipment       []domain.Equipment       `json:"equipment"`
	Complaints      []domain.Complaint       `json:"complaints"`
	Licenses        []domain.SoftwareLicense `json:"licenses"`
	MaintenanceLogs []domain.MaintenanceLog  `json:"maintenanceLogs"`
	Requests        []domain.Request         `json:"requests"`
	LabStats        []domain.LabUsageStats   `json:"labStats"`
	EditingID       string                   `json:"editingId,omitempty"`
	TotalUnits      int                      `json:"totalUnits"`
}

func (a *AdminSession) Snapshot() AdminSnapshot {
	equipment := a.FilteredEquipment()
	complaints := a.FilteredComplaints()

	a.mu.Lock()
	defer a.mu.Unlock()

	totalUnits := 0
	for _, e := range a.equipment {
		totalUnits += e.Quantity
	}

	return AdminSnapshot{
		ActiveTab:       a.activeTab,
		SearchTerm:      a.searchTerm,
		Equipment:       equipment,
		Complaints:      complaints,
		Licenses:        append([]domain.SoftwareLicense(nil), a.licenses...),
		MaintenanceLogs: append([]domain.MaintenanceLog(nil), a.maintenanceLogs...),
		Requests:        append([]domain.Request(nil), a.requests...),
		LabStats:        append([]domain.LabUsageStats(nil), a.labStats...),
		EditingID:       a.editingID,
		TotalUnits:      totalUnits,
	}
}

// AdminSessionManager hands out one console state per admin, keyed by user
// id. Each session starts from its own copy of the seed arrays, the same way
// every fresh browser tab did.
type AdminSessionManager struct {
	seed AdminSeed

	mu       sync.Mutex
	sessions map[string]*AdminSession
}

func NewAdminSessionManager(seed AdminSeed) *AdminSessionManager {
	return &AdminSessionManager{
		seed:     seed,
		sessions: make(map[string]*AdminSession),
	}
}

func (m *AdminSessionManager) Session(userID string) *AdminSession {
	m.mu.Lock()
	defer m.mu.Unlock()
	if session, ok := m.sessions[userID]; ok {
		return session
	}
	session := NewAdminSession(m.seed)
	m.sessions[userID] = session
	return session
}

func mergePatch(dst *EquipmentPatch, src EquipmentPatch) {
	if src.Name != nil {
		dst.Name = src.Name
	}
	if src.Type != nil {
		dst.Type = src.Type
	}
	if src.Category != nil {
		dst.Category = src.Category
	}
	if src.Description != nil {
		dst.Description = src.Description
	}
	if src.Status != nil {
		dst.Status = src.Status
	}
	if src.ImageURL != nil {
		dst.ImageURL = src.ImageURL
	}
	if src.Specifications != nil {
		dst.Specifications = src.Specifications
	}
	if src.Quantity != nil {
		dst.Quantity = src.Quantity
	}
	if src.Location != nil {
		dst.Location = src.Location
	}
	if src.Manufacturer != nil {
		dst.Manufacturer = src.Manufacturer
	}
	if src.Model != nil {
		dst.Model = src.Model
	}
	if src.LastMaintenance != nil {
		dst.LastMaintenance = src.LastMaintenance
	}
	if src.NextMaintenance != nil {
		dst.NextMaintenance = src.NextMaintenance
	}
}

func applyPatch(e *domain.Equipment, p EquipmentPatch) {
	if p.Name != nil {
		e.Name = *p.Name
	}
	if p.Type != nil {
		e.Type = *p.Type
	}
	if p.Category != nil {
		e.Category = *p.Category
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.Status != nil {
		e.Status = *p.Status
	}
	if p.ImageURL != nil {
		e.ImageURL = *p.ImageURL
	}
	if p.Specifications != nil {
		e.Specifications = *p.Specifications
	}
	if p.Quantity != nil {
		e.Quantity = *p.Quantity
	}
	if p.Location != nil {
		e.Location = *p.Location
	}
	if p.Manufacturer != nil {
		e.Manufacturer = *p.Manufacturer
	}
	if p.Model != nil {
		e.Model = *p.Model
	}
	if p.LastMaintenance != nil {
		e.LastMaintenance = *p.LastMaintenance
	}
	if p.NextMaintenance != nil {
		e.NextMaintenance = *p.NextMaintenance
	}
}
