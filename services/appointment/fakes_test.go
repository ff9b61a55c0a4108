package appointment

import (
	"context"
	"time"

	"telecare/models"
	"telecare/services/calendar"

	"github.com/hibiken/asynq"
	"golang.org/x/oauth2"
)

// --- repository fakes ---

type fakeDoctorRepo struct {
	doctors map[string]*models.Doctor
}

func newFakeDoctorRepo(doctors ...*models.Doctor) *fakeDoctorRepo {
	m := make(map[string]*models.Doctor, len(doctors))
	for _, d := range doctors {
		m[d.ID] = d
	}
	return &fakeDoctorRepo{doctors: m}
}

func (f *fakeDoctorRepo) Create(d *models.Doctor) error { f.doctors[d.ID] = d; return nil }
func (f *fakeDoctorRepo) Update(d *models.Doctor) error { f.doctors[d.ID] = d; return nil }
func (f *fakeDoctorRepo) Delete(id string) error        { delete(f.doctors, id); return nil }

func (f *fakeDoctorRepo) GetByID(id string) (*models.Doctor, error) {
	return f.doctors[id], nil
}

func (f *fakeDoctorRepo) GetByUserID(userID string) (*models.Doctor, error) {
	for _, d := range f.doctors {
		if d.UserID == userID {
			return d, nil
		}
	}
	return nil, nil
}

func (f *fakeDoctorRepo) GetAll() ([]models.Doctor, error) {
	out := make([]models.Doctor, 0, len(f.doctors))
	for _, d := range f.doctors {
		out = append(out, *d)
	}
	return out, nil
}

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	m := make(map[string]*models.User, len(users))
	for _, u := range users {
		m[u.ID] = u
	}
	return &fakeUserRepo{users: m}
}

func (f *fakeUserRepo) Create(u *models.User) error { f.users[u.ID] = u; return nil }
func (f *fakeUserRepo) Update(u *models.User) error { f.users[u.ID] = u; return nil }
func (f *fakeUserRepo) Delete(id string) error      { delete(f.users, id); return nil }

func (f *fakeUserRepo) GetByID(id string) (*models.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

type fakeAppointmentRepo struct {
	appts map[string]*models.Appointment
}

func newFakeAppointmentRepo(appts ...*models.Appointment) *fakeAppointmentRepo {
	m := make(map[string]*models.Appointment, len(appts))
	for _, a := range appts {
		m[a.ID] = a
	}
	return &fakeAppointmentRepo{appts: m}
}

func (f *fakeAppointmentRepo) Create(a *models.Appointment) error {
	cp := *a
	f.appts[a.ID] = &cp
	return nil
}

func (f *fakeAppointmentRepo) Update(a *models.Appointment) error {
	cp := *a
	f.appts[a.ID] = &cp
	return nil
}

func (f *fakeAppointmentRepo) GetByID(id string) (*models.Appointment, error) {
	if a, ok := f.appts[id]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeAppointmentRepo) GetByUser(userID string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range f.appts {
		if a.UserID == userID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) GetByDoctor(doctorID string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range f.appts {
		if a.DoctorID == doctorID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) FindByDoctorAndStatus(doctorID string, statuses []string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range f.appts {
		if a.DoctorID == doctorID && contains(statuses, a.Status) {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) FindByDoctorAndStatusInRange(doctorID string, statuses []string, dayStart, dayEnd time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range f.appts {
		if a.DoctorID == doctorID && contains(statuses, a.Status) &&
			!a.StartTime.Before(dayStart) && !a.EndTime.After(dayEnd) {
			out = append(out, *a)
		}
	}
	return out, nil
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

// --- collaborator fakes ---

type notified struct {
	kind   string // "status", "confirmation", "reminder"
	status string
	apptID string
}

type fakeNotifier struct {
	calls []notified
}

func (f *fakeNotifier) SendAppointmentConfirmation(appt *models.Appointment, user *models.User, doctor *models.Doctor) error {
	f.calls = append(f.calls, notified{kind: "confirmation", apptID: appt.ID})
	return nil
}

func (f *fakeNotifier) SendAppointmentReminder(appt *models.Appointment, user *models.User, doctor *models.Doctor) error {
	f.calls = append(f.calls, notified{kind: "reminder", apptID: appt.ID})
	return nil
}

func (f *fakeNotifier) SendStatusUpdate(appt *models.Appointment, user *models.User, doctor *models.Doctor, status string) error {
	f.calls = append(f.calls, notified{kind: "status", status: status, apptID: appt.ID})
	return nil
}

type fakeCalendar struct {
	connected bool
	created   []string
	deleted   []string
}

func (f *fakeCalendar) AuthURL(state string) string { return "https://example.test/auth" }

func (f *fakeCalendar) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	f.connected = true
	return &oauth2.Token{}, nil
}

func (f *fakeCalendar) SetCredentials(token *oauth2.Token) { f.connected = true }
func (f *fakeCalendar) Connected() bool                    { return f.connected }

func (f *fakeCalendar) CreateEvent(ctx context.Context, appt *models.Appointment, doctorName, doctorEmail, userEmail string) (*calendar.EventResult, error) {
	f.created = append(f.created, appt.ID)
	return &calendar.EventResult{EventID: "evt-" + appt.ID, HTMLLink: "https://calendar.test/evt-" + appt.ID}, nil
}

func (f *fakeCalendar) UpdateEvent(ctx context.Context, eventID string, appt *models.Appointment, doctorName string) (*calendar.EventResult, error) {
	return &calendar.EventResult{EventID: eventID}, nil
}

func (f *fakeCalendar) DeleteEvent(ctx context.Context, eventID string) error {
	f.deleted = append(f.deleted, eventID)
	return nil
}

type fakePayments struct {
	result *models.PaymentResult
}

func (f *fakePayments) CreateCheckoutSession(appt *models.Appointment, userEmail, doctorName string) (*models.PaymentSession, error) {
	return &models.PaymentSession{SessionID: "cs_test_" + appt.ID, URL: "https://checkout.test/" + appt.ID}, nil
}

func (f *fakePayments) HandlePaymentSuccess(sessionID string) (*models.PaymentResult, error) {
	return f.result, nil
}

type fakeQueue struct {
	enqueued []*asynq.Task
}

func (f *fakeQueue) Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	f.enqueued = append(f.enqueued, task)
	return &asynq.TaskInfo{}, nil
}
