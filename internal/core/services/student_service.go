package services

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/AchilleasB/uni-labs/equipment-portal-service/internal/core/domain"
	"github.com/AchilleasB/uni-labs/equipment-portal-service/internal/core/ports"
)

type View string

const (
	ViewDashboard     View = "dashboard"
	ViewEquipment     View = "equipment"
	ViewBookings      View = "bookings"
	ViewNotifications View = "notifications"
	ViewComplaints    View = "complaints"
)

// EquipmentPageSize is the fixed page size of the equipment list.
const EquipmentPageSize = 6

const noticeTTL = 3 * time.Second

type DashboardStats struct {
	ActiveBookings     int `json:"activeBookings"`
	AvailableEquipment int `json:"availableEquipment"`
	UpcomingReturns    int `json:"upcomingReturns"`
	PendingComplaints  int `json:"pendingComplaints"`
}

// Notice is a transient banner. Success notices self-clear after a fixed
// delay; failure notices stick until replaced.
type Notice struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// StudentSession owns the student dashboard's view state: per-view loaded
// collections, loading flags, filters, pagination and stats. Derived
// projections are recomputed on every snapshot, never stored.
type StudentSession struct {
	backend ports.LabBackend
	user    domain.User

	mu         sync.Mutex
	activeView View
	loading    map[View]bool
	submitting bool

	equipment     []domain.Equipment
	bookings      []domain.Booking
	complaints    []domain.StudentComplaint
	notifications []domain.Notification
	unreadCount   int
	stats         DashboardStats

	searchTerm          string
	filterType          string
	currentPage         int
	bookingStatusFilter string

	notice    *Notice
	noticeSeq int

	// noticeDelay is overridable in tests.
	noticeDelay time.Duration
	now         func() time.Time
}

func NewStudentSession(backend ports.LabBackend, user domain.User) *StudentSession {
	return &StudentSession{
		backend:             backend,
		user:                user,
		activeView:          ViewDashboard,
		loading:             make(map[View]bool),
		filterType:          "all",
		currentPage:         1,
		bookingStatusFilter: "all",
		noticeDelay:         noticeTTL,
		now:                 time.Now,
	}
}

func (s *StudentSession) User() domain.User { return s.user }

// ActivateView makes view current and runs exactly one load scoped to it.
// The load's latency is paid inside this call; concurrent snapshots observe
// the per-view loading flag while it runs.
func (s *StudentSession) ActivateView(ctx context.Context, view View) error {
	s.mu.Lock()
	s.activeView = view
	s.mu.Unlock()

	switch view {
	case ViewDashboard:
		return s.loadDashboard(ctx)
	case ViewEquipment:
		return s.loadEquipment(ctx)
	case ViewBookings:
		return s.loadBookings(ctx)
	case ViewNotifications:
		return s.loadNotifications(ctx)
	case ViewComplaints:
		return s.loadComplaints(ctx)
	}
	return nil
}

// loadDashboard aggregates equipment, bookings and complaints concurrently
// and recomputes the stat tiles. Stats are not reactive: mutations that
// affect counted fields adjust them explicitly.
func (s *StudentSession) loadDashboard(ctx context.Context) error {
	var (
		wg         sync.WaitGroup
		equipment  []domain.Equipment
		bookings   []domain.Booking
		complaints []domain.StudentComplaint
		errEq      error
		errBk      error
		errCp      error
	)
	wg.Add(3)
	go func() { defer wg.Done(); equipment, errEq = s.backend.FetchEquipment(ctx) }()
	go func() { defer wg.Done(); bookings, errBk = s.backend.FetchBookings(ctx) }()
	go func() { defer wg.Done(); complaints, errCp = s.backend.FetchComplaints(ctx) }()
	wg.Wait()

	for _, err := range []error{errEq, errBk, errCp} {
		if err != nil {
			return err
		}
	}

	stats := DashboardStats{}
	for _, b := range bookings {
		if b.Status != domain.BookingApproved {
			continue
		}
		stats.ActiveBookings++
		if end, err := time.Parse(domain.DateOnly, b.EndDate); err == nil && end.After(s.now()) {
			stats.UpcomingReturns++
		}
	}
	for _, e := range equipment {
		if e.Status == domain.EquipmentAvailable {
			stats.AvailableEquipment++
		}
	}
	for _, c := range complaints {
		if c.Status == domain.StudentComplaintPending {
			stats.PendingComplaints++
		}
	}

	// The dashboard only previews the first few catalog entries.
	if len(equipment) > 3 {
		equipment = equipment[:3]
	}

	s.mu.Lock()
	s.stats = stats
	s.equipment = equipment
	s.bookings = bookings
	s.complaints = complaints
	s.mu.Unlock()
	return nil
}

func (s *StudentSession) loadEquipment(ctx context.Context) error {
	defer s.setLoading(ViewEquipment, true)()
	equipment, err := s.backend.FetchEquipment(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.equipment = equipment
	s.mu.Unlock()
	return nil
}

func (s *StudentSession) loadBookings(ctx context.Context) error {
	defer s.setLoading(ViewBookings, true)()
	bookings, err := s.backend.FetchBookings(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.bookings = bookings
	s.mu.Unlock()
	return nil
}

func (s *StudentSession) loadComplaints(ctx context.Context) error {
	defer s.setLoading(ViewComplaints, true)()
	complaints, err := s.backend.FetchComplaints(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.complaints = complaints
	s.mu.Unlock()
	return nil
}

func (s *StudentSession) loadNotifications(ctx context.Context) error {
	defer s.setLoading(ViewNotifications, true)()
	notifications, err := s.backend.FetchNotifications(ctx)
	if err != nil {
		return err
	}
	unread := 0
	for _, n := range notifications {
		if !n.Read {
			unread++
		}
	}
	s.mu.Lock()
	s.notifications = notifications
	s.unreadCount = unread
	s.mu.Unlock()
	return nil
}

// setLoading flips the per-view loading flag and returns the cleanup that
// clears it again. The cleanup runs deferred so the flag can never get
// stuck regardless of how the load settles.
func (s *StudentSession) setLoading(view View, on bool) func() {
	s.mu.Lock()
	s.loading[view] = on
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		s.loading[view] = false
		s.mu.Unlock()
	}
}

// SetEquipmentFilter updates the search term and type filter for the
// equipment list. Matching is recomputed per snapshot.
func (s *StudentSession) SetEquipmentFilter(search, equipmentType string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchTerm = search
	if equipmentType == "" {
		equipmentType = "all"
	}
	s.filterType = equipmentType
}

// NextPage advances the equipment page; a request past the last page is a
// no-op.
func (s *StudentSession) NextPage() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentPage < totalPages(len(s.filteredEquipmentLocked())) {
		s.currentPage++
	}
}

// PrevPage steps back; a request before page one is a no-op.
func (s *StudentSession) PrevPage() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentPage > 1 {
		s.currentPage--
	}
}

func (s *StudentSession) SetBookingFilter(status string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if status == "" {
		status = "all"
	}
	s.bookingStatusFilter = status
}

// SubmitBooking creates a booking for the selected equipment and merges it
// optimistically: the new booking is prepended and the active-bookings stat
// incremented immediately, even though the backend files it as pending. The
// drift from the dashboard's approved-only definition is deliberate.
func (s *StudentSession) SubmitBooking(ctx context.Context, equipmentID string, dates domain.DateRange) (*domain.Booking, error) {
	if equipmentID == "" || dates.Start == "" || dates.End == "" {
		return nil, ErrValidation
	}

	booking, err := s.backend.CreateBooking(ctx, equipmentID, dates, s.user.Name)
	if err != nil {
		log.Printf("student session: create booking failed: %v", err)
		return nil, err
	}

	s.mu.Lock()
	s.bookings = append([]domain.Booking{*booking}, s.bookings...)
	s.stats.ActiveBookings++
	s.mu.Unlock()
	return booking, nil
}

// CancelBooking removes a booking after explicit confirmation. Declining the
// confirmation aborts with no side effect and no error.
func (s *StudentSession) CancelBooking(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return nil
	}

	if err := s.backend.CancelBooking(ctx, id); err != nil {
		log.Printf("student session: cancel booking failed: %v", err)
		return err
	}

	s.mu.Lock()
	kept := s.bookings[:0]
	for _, b := range s.bookings {
		if b.ID != id {
			kept = append(kept, b)
		}
	}
	s.bookings = kept
	if s.stats.ActiveBookings > 0 {
		s.stats.ActiveBookings--
	}
	s.mu.Unlock()
	return nil
}

// SubmitComplaint validates the required fields before any backend call,
// then files the complaint and shows a transient success banner. A failure
// banner has no auto-clear.
func (s *StudentSession) SubmitComplaint(ctx context.Context, draft domain.ComplaintDraft) (*domain.StudentComplaint, error) {
	if draft.Lab == "" || draft.Type == "" || draft.Description == "" {
		return nil, ErrValidation
	}

	s.mu.Lock()
	s.submitting = true
	s.notice = nil
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.submitting = false
		s.mu.Unlock()
	}()

	complaint, err := s.backend.SubmitComplaint(ctx, draft)
	if err != nil {
		log.Printf("student session: submit complaint failed: %v", err)
		s.showNotice(Notice{Success: false, Message: "Failed to submit complaint. Please try again."}, false)
		return nil, err
	}

	s.mu.Lock()
	s.complaints = append([]domain.StudentComplaint{*complaint}, s.complaints...)
	s.stats.PendingComplaints++
	s.mu.Unlock()

	s.showNotice(Notice{Success: true, Message: "Complaint submitted successfully!"}, true)
	return complaint, nil
}

// showNotice installs a banner. When autoClear is set, the banner clears
// itself after the notice delay unless a newer one replaced it first.
func (s *StudentSession) showNotice(n Notice, autoClear bool) {
	s.mu.Lock()
	s.noticeSeq++
	seq := s.noticeSeq
	s.notice = &n
	s.mu.Unlock()

	if !autoClear {
		return
	}
	time.AfterFunc(s.noticeDelay, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.noticeSeq == seq {
			s.notice = nil
		}
	})
}

// MarkNotificationRead flips the local read flag and decrements the unread
// counter, floored at zero. The backend call is fire-and-forget: its result
// never drives control flow.
func (s *StudentSession) MarkNotificationRead(ctx context.Context, id string) {
	s.mu.Lock()
	for i := range s.notifications {
		if s.notifications[i].ID == id && !s.notifications[i].Read {
			s.notifications[i].Read = true
			if s.unreadCount > 0 {
				s.unreadCount--
			}
			break
		}
	}
	s.mu.Unlock()

	go func() {
		if err := s.backend.MarkNotificationRead(context.WithoutCancel(ctx), id); err != nil {
			log.Printf("student session: mark notification read failed: %v", err)
		}
	}()
}

// StudentSnapshot is the render-ready projection of the session state.
type StudentSnapshot struct {
	ActiveView          View                      `json:"activeView"`
	Stats               DashboardStats            `json:"stats"`
	Equipment           []domain.Equipment        `json:"equipment"`
	TotalPages          int                       `json:"totalPages"`
	CurrentPage         int                       `json:"currentPage"`
	SearchTerm          string                    `json:"searchTerm"`
	FilterType          string                    `json:"filterType"`
	Bookings            []domain.Booking          `json:"bookings"`
	BookingStatusFilter string                    `json:"bookingStatusFilter"`
	Complaints          []domain.StudentComplaint `json:"complaints"`
	Notifications       []domain.Notification     `json:"notifications"`
	UnreadCount         int                       `json:"unreadCount"`
	Loading             map[View]bool             `json:"loading"`
	Submitting          bool                      `json:"submitting"`
	Notice              *Notice                   `json:"notice,omitempty"`
}

// Snapshot derives the filtered and paginated projections from the latest
// loaded collections.
func (s *StudentSession) Snapshot() StudentSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := s.filteredEquipmentLocked()
	pages := totalPages(len(filtered))
	page := s.currentPage
	start := (page - 1) * EquipmentPageSize
	end := min(start+EquipmentPageSize, len(filtered))
	var pageItems []domain.Equipment
	if start < len(filtered) {
		pageItems = append(pageItems, filtered[start:end]...)
	}

	var bookings []domain.Booking
	for _, b := range s.bookings {
		if s.bookingStatusFilter == "all" || string(b.Status) == s.bookingStatusFilter {
			bookings = append(bookings, b)
		}
	}

	loading := make(map[View]bool, len(s.loading))
	for k, v := range s.loading {
		loading[k] = v
	}

	return StudentSnapshot{
		ActiveView:          s.activeView,
		Stats:               s.stats,
		Equipment:           pageItems,
		TotalPages:          pages,
		CurrentPage:         page,
		SearchTerm:          s.searchTerm,
		FilterType:          s.filterType,
		Bookings:            bookings,
		BookingStatusFilter: s.bookingStatusFilter,
		Complaints:          append([]domain.StudentComplaint(nil), s.complaints...),
		Notifications:       append([]domain.Notification(nil), s.notifications...),
		UnreadCount:         s.unreadCount,
		Loading:             loading,
		Submitting:          s.submitting,
		Notice:              s.notice,
	}
}

// filteredEquipmentLocked applies the case-insensitive substring match on
// name/description and the exact type match. Callers hold the mutex.
func (s *StudentSession) filteredEquipmentLocked() []domain.Equipment {
	term := strings.ToLower(s.searchTerm)
	var out []domain.Equipment
	for _, e := range s.equipment {
		matchesSearch := term == "" ||
			strings.Contains(strings.ToLower(e.Name), term) ||
			strings.Contains(strings.ToLower(e.Description), term)
		matchesType := s.filterType == "all" ||
			strings.EqualFold(string(e.Type), s.filterType)
		if matchesSearch && matchesType {
			out = append(out, e)
		}
	}
	return out
}

func totalPages(count int) int {
	pages := (count + EquipmentPageSize - 1) / EquipmentPageSize
	if pages < 1 {
		pages = 1
	}
	return pages
}

// StudentSessionManager hands out one session per student, keyed by user id.
type StudentSessionManager struct {
	backend ports.LabBackend

	mu       sync.Mutex
	sessions map[string]*StudentSession
}

func NewStudentSessionManager(backend ports.LabBackend) *StudentSessionManager {
	return &StudentSessionManager{
		backend:  backend,
		sessions: make(map[string]*StudentSession),
	}
}

// Session returns the existing session for the user or creates one.
func (m *StudentSessionManager) Session(user domain.User) *StudentSession {
	m.mu.Lock()
	defer m.mu.Unlock()
	if session, ok := m.sessions[user.ID]; ok {
		return session
	}
	session := NewStudentSession(m.backend, user)
	m.sessions[user.ID] = session
	return session
}
