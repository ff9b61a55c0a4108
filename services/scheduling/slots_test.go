package scheduling

import (
	"errors"
	"testing"
	"time"

	"telecare/models"
)

func slotStarts(slots []models.TimeSlot) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.Start.Format("15:04"))
	}
	return out
}

func TestGetAvailableTimeSlots_EmptyDay(t *testing.T) {
	svc := newTestService(newFakeDoctorRepo(testDoctor()), &fakeAppointmentRepo{})

	slots, err := svc.GetAvailableTimeSlots("doc1", "2023-10-20")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 8 {
		t.Fatalf("expected 8 default slots, got %d", len(slots))
	}
	if !slots[0].Start.Equal(at(9, 0)) || !slots[7].End.Equal(at(17, 0)) {
		t.Fatalf("slots outside working hours: first %s, last %s",
			slots[0].Start.Format(time.RFC3339), slots[7].End.Format(time.RFC3339))
	}
	for _, s := range slots {
		if s.End.Sub(s.Start) != time.Hour {
			t.Fatalf("slot %s has wrong duration %s", s.Start.Format("15:04"), s.End.Sub(s.Start))
		}
	}
}

func TestGetAvailableTimeSlots_ExcludesBooked(t *testing.T) {
	appts := &fakeAppointmentRepo{appts: []models.Appointment{
		{ID: "appt1", DoctorID: "doc1", StartTime: at(14, 0), EndTime: at(15, 0), Status: models.StatusAccepted},
	}}
	svc := newTestService(newFakeDoctorRepo(testDoctor()), appts)

	slots, err := svc.GetAvailableTimeSlots("doc1", "2023-10-20")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 7 {
		t.Fatalf("expected 7 slots, got %d (%v)", len(slots), slotStarts(slots))
	}
	for _, s := range slots {
		if s.Start.Equal(at(14, 0)) {
			t.Fatal("booked 14:00 slot must be excluded")
		}
	}
}

func TestGetAvailableTimeSlots_TwoBookings(t *testing.T) {
	appts := &fakeAppointmentRepo{appts: []models.Appointment{
		{ID: "appt1", DoctorID: "doc1", StartTime: at(9, 0), EndTime: at(10, 0), Status: models.StatusAccepted},
		{ID: "appt2", DoctorID: "doc1", StartTime: at(14, 0), EndTime: at(15, 0), Status: models.StatusAccepted},
	}}
	svc := newTestService(newFakeDoctorRepo(testDoctor()), appts)

	slots, err := svc.GetAvailableTimeSlots("doc1", "2023-10-20")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"10:00", "11:00", "12:00", "13:00", "15:00", "16:00"}
	got := slotStarts(slots)
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("slot %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestGetAvailableTimeSlots_Idempotent(t *testing.T) {
	appts := &fakeAppointmentRepo{appts: []models.Appointment{
		{ID: "appt1", DoctorID: "doc1", StartTime: at(11, 0), EndTime: at(12, 0), Status: models.StatusPending},
	}}
	svc := newTestService(newFakeDoctorRepo(testDoctor()), appts)

	first, err := svc.GetAvailableTimeSlots("doc1", "2023-10-20")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.GetAvailableTimeSlots("doc1", "2023-10-20")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("calls disagree: %d vs %d slots", len(first), len(second))
	}
	for i := range first {
		if !first[i].Start.Equal(second[i].Start) || !first[i].End.Equal(second[i].End) {
			t.Fatalf("slot %d differs between calls", i)
		}
	}
}

func TestGetAvailableTimeSlots_DoctorNotFound(t *testing.T) {
	svc := newTestService(newFakeDoctorRepo(), &fakeAppointmentRepo{})

	_, err := svc.GetAvailableTimeSlots("ghost", "2023-10-20")
	var nfErr *NotFoundError
	if !errors.As(err, &nfErr) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestGetAvailableTimeSlots_InvalidDate(t *testing.T) {
	svc := newTestService(newFakeDoctorRepo(testDoctor()), &fakeAppointmentRepo{})

	_, err := svc.GetAvailableTimeSlots("doc1", "20-10-2023")
	var dateErr *InvalidDateError
	if !errors.As(err, &dateErr) {
		t.Fatalf("expected InvalidDateError, got %v", err)
	}
}

func TestGetAvailableTimeSlots_DoctorWindow(t *testing.T) {
	// 2023-10-20 is a Friday.
	doctor := testDoctor()
	doctor.Availability = []models.AvailabilityWindow{
		{Day: "friday", StartTime: "10:00", EndTime: "13:00", IsAvailable: true},
	}
	svc := newTestService(newFakeDoctorRepo(doctor), &fakeAppointmentRepo{})

	slots, err := svc.GetAvailableTimeSlots("doc1", "2023-10-20")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"10:00", "11:00", "12:00"}
	got := slotStarts(slots)
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestGetAvailableTimeSlots_WeekdayUnavailable(t *testing.T) {
	doctor := testDoctor()
	doctor.Availability = []models.AvailabilityWindow{
		{Day: "friday", StartTime: "09:00", EndTime: "17:00", IsAvailable: false},
	}
	svc := newTestService(newFakeDoctorRepo(doctor), &fakeAppointmentRepo{})

	slots, err := svc.GetAvailableTimeSlots("doc1", "2023-10-20")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 0 {
		t.Fatalf("expected no slots on an unavailable day, got %v", slotStarts(slots))
	}
}

func TestGetAvailableTimeSlots_PausedDoctor(t *testing.T) {
	doctor := testDoctor()
	doctor.IsAvailable = false
	svc := newTestService(newFakeDoctorRepo(doctor), &fakeAppointmentRepo{})

	slots, err := svc.GetAvailableTimeSlots("doc1", "2023-10-20")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 0 {
		t.Fatalf("expected no slots for a paused doctor, got %v", slotStarts(slots))
	}
}

func TestGetAvailableTimeSlots_ExplicitLocation(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	svc := newTestService(newFakeDoctorRepo(testDoctor()), &fakeAppointmentRepo{})
	svc.Location = loc

	slots, err := svc.GetAvailableTimeSlots("doc1", "2023-10-20")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 8 {
		t.Fatalf("expected 8 slots, got %d", len(slots))
	}
	wantFirst := time.Date(2023, 10, 20, 9, 0, 0, 0, loc)
	if !slots[0].Start.Equal(wantFirst) {
		t.Fatalf("expected first slot at %s, got %s",
			wantFirst.Format(time.RFC3339), slots[0].Start.Format(time.RFC3339))
	}
}

func TestGetAvailableTimeSlots_StorageErrorPropagates(t *testing.T) {
	storageErr := errors.New("cursor timeout")
	svc := newTestService(newFakeDoctorRepo(testDoctor()), &fakeAppointmentRepo{err: storageErr})

	_, err := svc.GetAvailableTimeSlots("doc1", "2023-10-20")
	if !errors.Is(err, storageErr) {
		t.Fatalf("expected wrapped storage error, got %v", err)
	}
}
