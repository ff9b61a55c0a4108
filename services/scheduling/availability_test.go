package scheduling

import (
	"errors"
	"testing"
	"time"

	"telecare/models"
)

func newTestService(doctors *fakeDoctorRepo, appts *fakeAppointmentRepo) *DefaultSchedulingService {
	return &DefaultSchedulingService{
		DoctorRepo:      doctors,
		AppointmentRepo: appts,
	}
}

func testDoctor() *models.Doctor {
	return &models.Doctor{ID: "doc1", UserID: "user-doc1", FullName: "Amina Hassan", IsAvailable: true}
}

func at(hour, min int) time.Time {
	return time.Date(2023, 10, 20, hour, min, 0, 0, time.UTC)
}

func TestCheckAvailability_NoAppointments(t *testing.T) {
	svc := newTestService(newFakeDoctorRepo(testDoctor()), &fakeAppointmentRepo{})

	res, err := svc.CheckAvailability("doc1", at(10, 0), at(11, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Available {
		t.Fatalf("expected available, got %+v", res)
	}
	if len(res.ConflictingAppointments) != 0 {
		t.Fatalf("expected no conflicts, got %d", len(res.ConflictingAppointments))
	}
}

func TestCheckAvailability_Conflict(t *testing.T) {
	appts := &fakeAppointmentRepo{appts: []models.Appointment{
		{ID: "appt1", DoctorID: "doc1", StartTime: at(10, 0), EndTime: at(11, 0), Status: models.StatusAccepted},
	}}
	svc := newTestService(newFakeDoctorRepo(testDoctor()), appts)

	res, err := svc.CheckAvailability("doc1", at(10, 30), at(10, 45))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Available {
		t.Fatal("expected unavailable")
	}
	if res.Message != "Doctor is not available during the requested time" {
		t.Fatalf("unexpected message %q", res.Message)
	}
	if len(res.ConflictingAppointments) != 1 || res.ConflictingAppointments[0].ID != "appt1" {
		t.Fatalf("expected appt1 in conflicts, got %+v", res.ConflictingAppointments)
	}
}

func TestCheckAvailability_BackToBack(t *testing.T) {
	appts := &fakeAppointmentRepo{appts: []models.Appointment{
		{ID: "appt1", DoctorID: "doc1", StartTime: at(9, 0), EndTime: at(10, 0), Status: models.StatusAccepted},
		{ID: "appt2", DoctorID: "doc1", StartTime: at(11, 0), EndTime: at(12, 0), Status: models.StatusPending},
	}}
	svc := newTestService(newFakeDoctorRepo(testDoctor()), appts)

	// Exactly between the two existing appointments: boundary touches on both
	// sides must not conflict.
	res, err := svc.CheckAvailability("doc1", at(10, 0), at(11, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Available {
		t.Fatalf("expected back-to-back request to be available, got %+v", res)
	}
}

func TestCheckAvailability_EnclosingAppointment(t *testing.T) {
	appts := &fakeAppointmentRepo{appts: []models.Appointment{
		{ID: "appt1", DoctorID: "doc1", StartTime: at(9, 0), EndTime: at(12, 0), Status: models.StatusAccepted},
	}}
	svc := newTestService(newFakeDoctorRepo(testDoctor()), appts)

	res, err := svc.CheckAvailability("doc1", at(10, 0), at(11, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Available {
		t.Fatal("expected enclosing appointment to conflict")
	}
}

func TestCheckAvailability_StatusFiltering(t *testing.T) {
	for _, status := range []string{models.StatusDeclined, models.StatusCancelled, models.StatusCompleted} {
		appts := &fakeAppointmentRepo{appts: []models.Appointment{
			{ID: "appt1", DoctorID: "doc1", StartTime: at(10, 0), EndTime: at(11, 0), Status: status},
		}}
		svc := newTestService(newFakeDoctorRepo(testDoctor()), appts)

		res, err := svc.CheckAvailability("doc1", at(10, 0), at(11, 0))
		if err != nil {
			t.Fatalf("status %s: unexpected error: %v", status, err)
		}
		if !res.Available {
			t.Fatalf("status %s should never block, got %+v", status, res)
		}
	}
}

func TestCheckAvailability_DoctorNotFound(t *testing.T) {
	svc := newTestService(newFakeDoctorRepo(), &fakeAppointmentRepo{})

	res, err := svc.CheckAvailability("ghost", at(10, 0), at(11, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Available {
		t.Fatal("unknown doctor must never be available")
	}
	if res.Message != "Doctor not found" {
		t.Fatalf("unexpected message %q", res.Message)
	}
}

func TestCheckAvailability_InvertedInterval(t *testing.T) {
	svc := newTestService(newFakeDoctorRepo(testDoctor()), &fakeAppointmentRepo{})

	_, err := svc.CheckAvailability("doc1", at(11, 0), at(10, 0))
	var invErr *InvalidIntervalError
	if !errors.As(err, &invErr) {
		t.Fatalf("expected InvalidIntervalError, got %v", err)
	}

	_, err = svc.CheckAvailability("doc1", at(10, 0), at(10, 0))
	if !errors.As(err, &invErr) {
		t.Fatalf("expected InvalidIntervalError for empty interval, got %v", err)
	}
}

func TestCheckAvailability_StorageErrorPropagates(t *testing.T) {
	storageErr := errors.New("connection reset")
	appts := &fakeAppointmentRepo{err: storageErr}
	svc := newTestService(newFakeDoctorRepo(testDoctor()), appts)

	_, err := svc.CheckAvailability("doc1", at(10, 0), at(11, 0))
	if !errors.Is(err, storageErr) {
		t.Fatalf("expected wrapped storage error, got %v", err)
	}
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name                       string
		aStart, aEnd, start, end   time.Time
		want                       bool
	}{
		{"starts inside", at(10, 30), at(11, 30), at(10, 0), at(11, 0), true},
		{"ends inside", at(9, 30), at(10, 30), at(10, 0), at(11, 0), true},
		{"encloses", at(9, 0), at(12, 0), at(10, 0), at(11, 0), true},
		{"identical", at(10, 0), at(11, 0), at(10, 0), at(11, 0), true},
		{"before, touching", at(9, 0), at(10, 0), at(10, 0), at(11, 0), false},
		{"after, touching", at(11, 0), at(12, 0), at(10, 0), at(11, 0), false},
		{"disjoint before", at(7, 0), at(8, 0), at(10, 0), at(11, 0), false},
		{"disjoint after", at(12, 0), at(13, 0), at(10, 0), at(11, 0), false},
	}
	for _, tc := range cases {
		if got := overlaps(tc.aStart, tc.aEnd, tc.start, tc.end); got != tc.want {
			t.Errorf("%s: overlaps = %v, want %v", tc.name, got, tc.want)
		}
	}
}
