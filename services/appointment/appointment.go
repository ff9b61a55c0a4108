package appointment

import (
	"context"
	"fmt"
	"time"

	appointmentRepo "telecare/database/repository/appointment"
	doctorRepo "telecare/database/repository/doctor"
	userRepo "telecare/database/repository/user"
	"telecare/models"
	"telecare/services/calendar"
	"telecare/services/notification"
	"telecare/services/payment"
	"telecare/services/scheduling"
	"telecare/services/tasks"
	"telecare/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultAppointmentService is the production implementation.
type DefaultAppointmentService struct {
	Repo       appointmentRepo.AppointmentRepository
	DoctorRepo doctorRepo.DoctorRepository
	UserRepo   userRepo.UserRepository

	Scheduler scheduling.SchedulingService
	Notifier  notification.NotificationService
	Calendar  calendar.CalendarService
	Payments  payment.PaymentService

	// ReminderQueue may be nil, in which case no reminders are scheduled.
	ReminderQueue ReminderQueue
	ReminderLead  time.Duration
}

// RequestAppointment creates a PENDING appointment after an advisory
// availability check. The check is a UX pre-filter only: two concurrent
// requests can both pass it, so the storage layer remains the authority on
// overlap conflicts.
func (s *DefaultAppointmentService) RequestAppointment(userID, doctorID string, input models.AppointmentRequestInput) (*models.Appointment, error) {
	doctor, err := s.DoctorRepo.GetByID(doctorID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up doctor %s: %w", doctorID, err)
	}
	if doctor == nil {
		return nil, &NotFoundError{Resource: "doctor", ID: doctorID}
	}

	res, err := s.Scheduler.CheckAvailability(doctorID, input.StartTime, input.EndTime)
	if err != nil {
		return nil, err
	}
	if !res.Available {
		return nil, &ConflictError{Result: res}
	}

	appt := models.Appointment{
		ID:        uuid.New().String(),
		UserID:    userID,
		DoctorID:  doctorID,
		StartTime: input.StartTime,
		EndTime:   input.EndTime,
		Status:    models.StatusPending,
		Message:   input.Message,
		Price:     doctor.ConsultationFee,
	}
	if err := s.Repo.Create(&appt); err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	utils.GetLogger().Info("appointment requested",
		zap.String("appointmentID", appt.ID),
		zap.String("doctorID", doctorID),
		zap.String("userID", userID))
	return &appt, nil
}

// AcceptAppointment moves a PENDING appointment to ACCEPTED, then runs the
// side effects: confirmation notification, calendar sync, reminder.
func (s *DefaultAppointmentService) AcceptAppointment(appointmentID string) (*models.Appointment, error) {
	appt, err := s.getForTransition(appointmentID, models.StatusAccepted)
	if err != nil {
		return nil, err
	}

	appt.Status = models.StatusAccepted
	if err := s.Repo.Update(appt); err != nil {
		return nil, fmt.Errorf("failed to accept appointment %s: %w", appointmentID, err)
	}

	user, doctor := s.participants(appt)
	if user != nil && doctor != nil {
		if err := s.Notifier.SendStatusUpdate(appt, user, doctor, models.StatusAccepted); err != nil {
			utils.GetLogger().Error("failed to send accept notification", zap.Error(err))
		}
		if err := s.Notifier.SendAppointmentConfirmation(appt, user, doctor); err != nil {
			utils.GetLogger().Error("failed to send confirmation", zap.Error(err))
		}
		s.syncCalendarCreate(appt, user, doctor)
		s.scheduleReminder(appt, user, doctor)
	}

	return appt, nil
}

// DeclineAppointment moves a PENDING appointment to DECLINED.
func (s *DefaultAppointmentService) DeclineAppointment(appointmentID string) (*models.Appointment, error) {
	return s.transition(appointmentID, models.StatusDeclined)
}

// CancelAppointment cancels an appointment and removes its calendar event.
func (s *DefaultAppointmentService) CancelAppointment(appointmentID string) (*models.Appointment, error) {
	appt, err := s.transition(appointmentID, models.StatusCancelled)
	if err != nil {
		return nil, err
	}

	if appt.CalendarEventID != "" && s.Calendar != nil && s.Calendar.Connected() {
		if err := s.Calendar.DeleteEvent(context.Background(), appt.CalendarEventID); err != nil {
			utils.GetLogger().Error("failed to delete calendar event",
				zap.String("eventID", appt.CalendarEventID), zap.Error(err))
		}
	}
	return appt, nil
}

// CompleteAppointment marks an ACCEPTED appointment as COMPLETED.
func (s *DefaultAppointmentService) CompleteAppointment(appointmentID string) (*models.Appointment, error) {
	return s.transition(appointmentID, models.StatusCompleted)
}

// UpdateAppointment reschedules or annotates an appointment. A time change
// re-runs the availability check, ignoring the appointment's own occupancy.
func (s *DefaultAppointmentService) UpdateAppointment(appointmentID string, input models.AppointmentUpdateInput) (*models.Appointment, error) {
	appt, err := s.GetAppointment(appointmentID)
	if err != nil {
		return nil, err
	}

	newStart := appt.StartTime
	newEnd := appt.EndTime
	if input.StartTime != nil {
		newStart = *input.StartTime
	}
	if input.EndTime != nil {
		newEnd = *input.EndTime
	}

	timeChanged := !newStart.Equal(appt.StartTime) || !newEnd.Equal(appt.EndTime)
	if timeChanged {
		res, err := s.Scheduler.CheckAvailability(appt.DoctorID, newStart, newEnd)
		if err != nil {
			return nil, err
		}
		if !res.Available {
			// The appointment being moved may itself be the conflict.
			others := res.ConflictingAppointments[:0]
			for _, c := range res.ConflictingAppointments {
				if c.ID != appt.ID {
					others = append(others, c)
				}
			}
			if len(others) > 0 {
				res.ConflictingAppointments = others
				return nil, &ConflictError{Result: res}
			}
		}
		appt.StartTime = newStart
		appt.EndTime = newEnd
	}
	if input.Message != nil {
		appt.Message = *input.Message
	}

	if err := s.Repo.Update(appt); err != nil {
		return nil, fmt.Errorf("failed to update appointment %s: %w", appointmentID, err)
	}

	if timeChanged && appt.CalendarEventID != "" && s.Calendar != nil && s.Calendar.Connected() {
		_, doctor := s.participants(appt)
		doctorName := ""
		if doctor != nil {
			doctorName = doctor.FullName
		}
		if _, err := s.Calendar.UpdateEvent(context.Background(), appt.CalendarEventID, appt, doctorName); err != nil {
			utils.GetLogger().Error("failed to update calendar event",
				zap.String("eventID", appt.CalendarEventID), zap.Error(err))
		}
	}

	return appt, nil
}

// GetAppointment fetches a single appointment.
func (s *DefaultAppointmentService) GetAppointment(id string) (*models.Appointment, error) {
	appt, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if appt == nil {
		return nil, &NotFoundError{Resource: "appointment", ID: id}
	}
	return appt, nil
}

// ListForUser returns a user's appointments.
func (s *DefaultAppointmentService) ListForUser(userID string) ([]models.Appointment, error) {
	return s.Repo.GetByUser(userID)
}

// ListForDoctor returns a doctor's appointments.
func (s *DefaultAppointmentService) ListForDoctor(doctorID string) ([]models.Appointment, error) {
	return s.Repo.GetByDoctor(doctorID)
}

// CreatePaymentSession opens a Stripe checkout for the appointment fee.
func (s *DefaultAppointmentService) CreatePaymentSession(appointmentID string) (*models.PaymentSession, error) {
	appt, err := s.GetAppointment(appointmentID)
	if err != nil {
		return nil, err
	}
	if appt.IsPaid {
		return nil, &AlreadyPaidError{AppointmentID: appointmentID}
	}

	user, doctor := s.participants(appt)
	if user == nil {
		return nil, &NotFoundError{Resource: "user", ID: appt.UserID}
	}
	doctorName := ""
	if doctor != nil {
		doctorName = doctor.FullName
	}

	return s.Payments.CreateCheckoutSession(appt, user.Email, doctorName)
}

// ConfirmPayment settles a completed checkout session against its appointment.
func (s *DefaultAppointmentService) ConfirmPayment(sessionID string) (*models.Appointment, error) {
	result, err := s.Payments.HandlePaymentSuccess(sessionID)
	if err != nil {
		return nil, err
	}

	appt, err := s.GetAppointment(result.AppointmentID)
	if err != nil {
		return nil, err
	}

	if result.Status == "paid" {
		now := time.Now()
		appt.IsPaid = true
		appt.PaymentID = result.PaymentID
		appt.PaymentDate = &now
		if err := s.Repo.Update(appt); err != nil {
			return nil, fmt.Errorf("failed to record payment on appointment %s: %w", appt.ID, err)
		}
	}
	return appt, nil
}

// --- internal helpers ---

var allowedTransitions = map[string][]string{
	models.StatusAccepted:  {models.StatusPending},
	models.StatusDeclined:  {models.StatusPending},
	models.StatusCancelled: {models.StatusPending, models.StatusAccepted},
	models.StatusCompleted: {models.StatusAccepted},
}

func (s *DefaultAppointmentService) getForTransition(appointmentID, to string) (*models.Appointment, error) {
	appt, err := s.GetAppointment(appointmentID)
	if err != nil {
		return nil, err
	}
	for _, from := range allowedTransitions[to] {
		if appt.Status == from {
			return appt, nil
		}
	}
	return nil, &InvalidTransitionError{From: appt.Status, To: to}
}

// transition applies a simple status change and sends the status update.
func (s *DefaultAppointmentService) transition(appointmentID, to string) (*models.Appointment, error) {
	appt, err := s.getForTransition(appointmentID, to)
	if err != nil {
		return nil, err
	}

	appt.Status = to
	if err := s.Repo.Update(appt); err != nil {
		return nil, fmt.Errorf("failed to update appointment %s: %w", appointmentID, err)
	}

	user, doctor := s.participants(appt)
	if user != nil && doctor != nil {
		if err := s.Notifier.SendStatusUpdate(appt, user, doctor, to); err != nil {
			utils.GetLogger().Error("failed to send status update", zap.Error(err))
		}
	}
	return appt, nil
}

// participants resolves the two sides of an appointment, returning nils on
// lookup failure.
func (s *DefaultAppointmentService) participants(appt *models.Appointment) (*models.User, *models.Doctor) {
	user, err := s.UserRepo.GetByID(appt.UserID)
	if err != nil {
		utils.GetLogger().Error("failed to fetch appointment user",
			zap.String("userID", appt.UserID), zap.Error(err))
	}
	doctor, err := s.DoctorRepo.GetByID(appt.DoctorID)
	if err != nil {
		utils.GetLogger().Error("failed to fetch appointment doctor",
			zap.String("doctorID", appt.DoctorID), zap.Error(err))
	}
	return user, doctor
}

// syncCalendarCreate creates the calendar event for an accepted appointment
// and stores its identity.
func (s *DefaultAppointmentService) syncCalendarCreate(appt *models.Appointment, user *models.User, doctor *models.Doctor) {
	if s.Calendar == nil || !s.Calendar.Connected() {
		return
	}
	res, err := s.Calendar.CreateEvent(context.Background(), appt, doctor.FullName, doctor.Email, user.Email)
	if err != nil {
		utils.GetLogger().Error("failed to create calendar event",
			zap.String("appointmentID", appt.ID), zap.Error(err))
		return
	}
	appt.CalendarEventID = res.EventID
	appt.CalendarLink = res.HTMLLink
	if err := s.Repo.Update(appt); err != nil {
		utils.GetLogger().Error("failed to store calendar event id",
			zap.String("appointmentID", appt.ID), zap.Error(err))
	}
}

// scheduleReminder enqueues the reminder task to fire before the start time.
func (s *DefaultAppointmentService) scheduleReminder(appt *models.Appointment, user *models.User, doctor *models.Doctor) {
	if s.ReminderQueue == nil {
		return
	}
	fireAt := appt.StartTime.Add(-s.ReminderLead)
	if !fireAt.After(time.Now()) {
		return
	}

	payload := models.ReminderPayload{
		AppointmentID: appt.ID,
		UserID:        user.ID,
		DoctorID:      doctor.ID,
		Title:         "Appointment Reminder",
		Body:          fmt.Sprintf("You have an appointment with Dr. %s at %s.", doctor.FullName, appt.StartTime.Format("15:04 MST")),
		FireDate:      fireAt.Format(time.RFC3339),
	}
	task, opts, err := tasks.NewReminderTask(payload, fireAt)
	if err != nil {
		utils.GetLogger().Error("failed to build reminder task", zap.Error(err))
		return
	}
	if _, err := s.ReminderQueue.Enqueue(task, opts...); err != nil {
		utils.GetLogger().Error("failed to enqueue reminder",
			zap.String("appointmentID", appt.ID), zap.Error(err))
	}
}
