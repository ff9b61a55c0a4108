package notification

import (
	"fmt"

	appointmentRepo "telecare/database/repository/appointment"
	"telecare/models"
	"telecare/utils"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"go.uber.org/zap"
)

// userTopic is the per-user broker topic appointment updates go to.
func userTopic(userID string) string {
	return fmt.Sprintf("/user/%s/appointments", userID)
}

// MQTTPublisher adapts the global paho client to the Publisher interface.
type MQTTPublisher struct {
	Client mqtt.Client
}

func (p *MQTTPublisher) Publish(topic, payload string) error {
	token := p.Client.Publish(topic, 1, false, payload)
	token.Wait()
	return token.Error()
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Publisher       Publisher
	Mailer          Mailer
	AppointmentRepo appointmentRepo.AppointmentRepository
}

// SendAppointmentConfirmation notifies the user that the appointment is
// confirmed and records the confirmation on the appointment.
func (s *DefaultNotificationService) SendAppointmentConfirmation(appt *models.Appointment, user *models.User, doctor *models.Doctor) error {
	msg := fmt.Sprintf("Your appointment with Dr. %s on %s has been confirmed.",
		doctor.FullName, appt.StartTime.Format("Jan 2, 2006 15:04 MST"))

	s.deliver(user, "Appointment Confirmation", msg)

	appt.ConfirmationSent = true
	if err := s.AppointmentRepo.Update(appt); err != nil {
		return fmt.Errorf("failed to record confirmation on appointment %s: %w", appt.ID, err)
	}
	return nil
}

// SendAppointmentReminder notifies the user of an upcoming appointment and
// records the reminder on the appointment.
func (s *DefaultNotificationService) SendAppointmentReminder(appt *models.Appointment, user *models.User, doctor *models.Doctor) error {
	msg := fmt.Sprintf("Reminder: You have an appointment with Dr. %s on %s.",
		doctor.FullName, appt.StartTime.Format("Jan 2, 2006 15:04 MST"))

	s.deliver(user, "Appointment Reminder", msg)

	appt.ReminderSent = true
	if err := s.AppointmentRepo.Update(appt); err != nil {
		return fmt.Errorf("failed to record reminder on appointment %s: %w", appt.ID, err)
	}
	return nil
}

// SendStatusUpdate notifies the user of a status transition.
func (s *DefaultNotificationService) SendStatusUpdate(appt *models.Appointment, user *models.User, doctor *models.Doctor, status string) error {
	subject, msg := statusMessage(appt, doctor, status)
	s.deliver(user, subject, msg)
	return nil
}

// deliver pushes over the broker and sends email, logging failures instead of
// surfacing them.
func (s *DefaultNotificationService) deliver(user *models.User, subject, msg string) {
	logger := utils.GetLogger()

	if err := s.Publisher.Publish(userTopic(user.ID), msg); err != nil {
		logger.Error("failed to publish notification",
			zap.String("userID", user.ID), zap.Error(err))
	}
	if err := s.Mailer.Send(user.Email, subject, msg); err != nil {
		logger.Error("failed to send notification email",
			zap.String("userID", user.ID), zap.Error(err))
	}
}

// statusMessage picks the subject and body for a status transition.
func statusMessage(appt *models.Appointment, doctor *models.Doctor, status string) (subject, msg string) {
	when := appt.StartTime.Format("Jan 2, 2006 15:04 MST")
	switch status {
	case models.StatusAccepted:
		return "Appointment Accepted",
			fmt.Sprintf("Your appointment with Dr. %s on %s has been accepted.", doctor.FullName, when)
	case models.StatusDeclined:
		return "Appointment Declined",
			fmt.Sprintf("Your appointment with Dr. %s on %s has been declined.", doctor.FullName, when)
	case models.StatusCancelled:
		return "Appointment Cancelled",
			fmt.Sprintf("Your appointment with Dr. %s on %s has been cancelled.", doctor.FullName, when)
	case models.StatusCompleted:
		return "Appointment Completed",
			fmt.Sprintf("Your appointment with Dr. %s on %s has been marked as completed.", doctor.FullName, when)
	default:
		return "Appointment Update",
			fmt.Sprintf("Your appointment with Dr. %s on %s has been updated.", doctor.FullName, when)
	}
}
