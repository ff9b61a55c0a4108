package scheduling

import (
	"time"

	"telecare/models"
)

// fakeDoctorRepo is an in-memory DoctorRepository for tests.
type fakeDoctorRepo struct {
	doctors map[string]*models.Doctor
	err     error
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
	if f.err != nil {
		return nil, f.err
	}
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

// fakeAppointmentRepo is an in-memory AppointmentRepository for tests. It
// applies the same status and day-range filtering the Mongo queries do.
type fakeAppointmentRepo struct {
	appts []models.Appointment
	err   error
}

func (f *fakeAppointmentRepo) Create(a *models.Appointment) error {
	f.appts = append(f.appts, *a)
	return nil
}

func (f *fakeAppointmentRepo) Update(a *models.Appointment) error {
	for i := range f.appts {
		if f.appts[i].ID == a.ID {
			f.appts[i] = *a
			return nil
		}
	}
	return nil
}

func (f *fakeAppointmentRepo) GetByID(id string) (*models.Appointment, error) {
	for i := range f.appts {
		if f.appts[i].ID == id {
			a := f.appts[i]
			return &a, nil
		}
	}
	return nil, nil
}

func (f *fakeAppointmentRepo) GetByUser(userID string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range f.appts {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) GetByDoctor(doctorID string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range f.appts {
		if a.DoctorID == doctorID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) FindByDoctorAndStatus(doctorID string, statuses []string) ([]models.Appointment, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Appointment
	for _, a := range f.appts {
		if a.DoctorID == doctorID && statusIn(a.Status, statuses) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) FindByDoctorAndStatusInRange(doctorID string, statuses []string, dayStart, dayEnd time.Time) ([]models.Appointment, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Appointment
	for _, a := range f.appts {
		if a.DoctorID == doctorID && statusIn(a.Status, statuses) &&
			!a.StartTime.Before(dayStart) && !a.EndTime.After(dayEnd) {
			out = append(out, a)
		}
	}
	return out, nil
}

func statusIn(status string, statuses []string) bool {
	for _, s := range statuses {
		if s == status {
			return true
		}
	}
	return false
}
