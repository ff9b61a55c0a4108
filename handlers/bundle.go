package handlers

import (
	appointmentSvc "telecare/services/appointment"
	calendarSvc "telecare/services/calendar"
	doctorSvc "telecare/services/doctor"
	schedulingSvc "telecare/services/scheduling"
	storageSvc "telecare/services/storage"
	userSvc "telecare/services/user"
)

// HandlerBundle groups the endpoint handlers and the services they delegate
// to. Handlers are methods on the bundle so routing stays declarative.
type HandlerBundle struct {
	Users        userSvc.UserService
	Doctors      doctorSvc.DoctorService
	Appointments appointmentSvc.AppointmentService
	Scheduler    schedulingSvc.SchedulingService
	Calendar     calendarSvc.CalendarService
	Storage      storageSvc.StorageService
}
