package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"telecare/config"
	"telecare/database"
	"telecare/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoAppointmentRepo implements AppointmentRepository using MongoDB.
type MongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo creates a new AppointmentRepository backed by MongoDB.
func NewMongoAppointmentRepo() AppointmentRepository {
	coll := database.MongoClient.Database(config.AppConfig.DatabaseName).Collection("appointments")
	repo := &MongoAppointmentRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create appointment indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoAppointmentRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "doctorId", Value: 1}, {Key: "status", Value: 1}, {Key: "startTime", Value: 1}}},
		{Keys: bson.D{{Key: "userId", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new appointment document.
func (r *MongoAppointmentRepo) Create(appt *models.Appointment) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	appt.CreatedAt = now
	appt.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, appt); err != nil {
		return fmt.Errorf("failed to create appointment: %w", err)
	}
	return nil
}

// Update modifies an existing appointment document.
func (r *MongoAppointmentRepo) Update(appt *models.Appointment) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	appt.UpdatedAt = time.Now()
	filter := bson.M{"id": appt.ID}
	update := bson.M{"$set": appt}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update appointment with id %s: %w", appt.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("appointment with id %s not found", appt.ID)
	}
	return nil
}

// GetByID retrieves an appointment by its unique ID. Returns (nil, nil) when
// no such appointment exists.
func (r *MongoAppointmentRepo) GetByID(id string) (*models.Appointment, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var appt models.Appointment
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&appt); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch appointment with id %s: %w", id, err)
	}
	return &appt, nil
}

// GetByUser retrieves all appointments booked by a user.
func (r *MongoAppointmentRepo) GetByUser(userID string) ([]models.Appointment, error) {
	return r.findAll(bson.M{"userId": userID}, options.Find().SetSort(bson.D{{Key: "startTime", Value: 1}}))
}

// GetByDoctor retrieves all appointments held with a doctor.
func (r *MongoAppointmentRepo) GetByDoctor(doctorID string) ([]models.Appointment, error) {
	return r.findAll(bson.M{"doctorId": doctorID}, options.Find().SetSort(bson.D{{Key: "startTime", Value: 1}}))
}

// FindByDoctorAndStatus retrieves a doctor's appointments in the given statuses.
func (r *MongoAppointmentRepo) FindByDoctorAndStatus(doctorID string, statuses []string) ([]models.Appointment, error) {
	filter := bson.M{
		"doctorId": doctorID,
		"status":   bson.M{"$in": statuses},
	}
	return r.findAll(filter, options.Find())
}

// FindByDoctorAndStatusInRange retrieves a doctor's appointments in the given
// statuses whose interval falls within [dayStart, dayEnd], sorted by startTime.
func (r *MongoAppointmentRepo) FindByDoctorAndStatusInRange(doctorID string, statuses []string, dayStart, dayEnd time.Time) ([]models.Appointment, error) {
	filter := bson.M{
		"doctorId":  doctorID,
		"status":    bson.M{"$in": statuses},
		"startTime": bson.M{"$gte": dayStart},
		"endTime":   bson.M{"$lte": dayEnd},
	}
	return r.findAll(filter, options.Find().SetSort(bson.D{{Key: "startTime", Value: 1}}))
}

func (r *MongoAppointmentRepo) findAll(filter bson.M, opts *options.FindOptions) ([]models.Appointment, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve appointments: %w", err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	for cursor.Next(ctx) {
		var a models.Appointment
		if err := cursor.Decode(&a); err != nil {
			return nil, fmt.Errorf("failed to decode appointment: %w", err)
		}
		appts = append(appts, a)
	}
	return appts, nil
}
