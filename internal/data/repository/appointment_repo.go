package repository

import (
	"context"
	"fmt"
	"time"

	"salon-booking/internal/data/entity"
	"salon-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type AppointmentRepository interface {
	// Create inserts one appointment row. Timestamps come back from the
	// store (insert-returning), everything else is written as given.
	Create(ctx context.Context, appointment *entity.Appointment) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error)
	// FindAll returns the full history, appointment_date descending then
	// appointment_time descending. No pagination.
	FindAll(ctx context.Context) ([]*entity.Appointment, error)
	// UpdateStatus writes status and updated_at by identity. No other
	// appointment field is ever changed after creation.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.AppointmentStatus, updatedAt time.Time) error
}

type appointmentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAppointmentRepository(db database.PgxIface, log *zap.Logger) AppointmentRepository {
	return &appointmentRepository{
		db:  db,
		log: log.With(zap.String("repository", "appointment")),
	}
}

const appointmentColumns = `id, service_id, customer_name, customer_phone, appointment_date,
	       appointment_time, status, payment_method, notes, created_at, updated_at`

func (r *appointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	query := `
		INSERT INTO appointments (id, service_id, customer_name, customer_phone,
		                          appointment_date, appointment_time, status,
		                          payment_method, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		appointment.ID,
		appointment.ServiceID,
		appointment.CustomerName,
		appointment.CustomerPhone,
		appointment.AppointmentDate,
		appointment.AppointmentTime,
		appointment.Status,
		appointment.PaymentMethod,
		appointment.Notes,
	).Scan(&appointment.CreatedAt, &appointment.UpdatedAt)

	if err != nil {
		r.log.Error("Failed to create appointment",
			zap.Error(err),
			zap.String("service_id", appointment.ServiceID.String()),
			zap.String("customer_name", appointment.CustomerName),
		)
		return fmt.Errorf("create appointment: %w", err)
	}

	return nil
}

func (r *appointmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	query := `
		SELECT ` + appointmentColumns + `
		FROM appointments
		WHERE id = $1
	`

	var appointment entity.Appointment
	err := r.db.QueryRow(ctx, query, id).Scan(
		&appointment.ID,
		&appointment.ServiceID,
		&appointment.CustomerName,
		&appointment.CustomerPhone,
		&appointment.AppointmentDate,
		&appointment.AppointmentTime,
		&appointment.Status,
		&appointment.PaymentMethod,
		&appointment.Notes,
		&appointment.CreatedAt,
		&appointment.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find appointment by ID",
			zap.Error(err),
			zap.String("appointment_id", id.String()),
		)
		return nil, fmt.Errorf("find appointment by ID %s: %w", id.String(), err)
	}

	return &appointment, nil
}

func (r *appointmentRepository) FindAll(ctx context.Context) ([]*entity.Appointment, error) {
	query := `
		SELECT ` + appointmentColumns + `
		FROM appointments
		ORDER BY appointment_date DESC, appointment_time DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all appointments", zap.Error(err))
		return nil, fmt.Errorf("find appointments: %w", err)
	}
	defer rows.Close()

	var appointments []*entity.Appointment
	for rows.Next() {
		var appointment entity.Appointment
		err := rows.Scan(
			&appointment.ID,
			&appointment.ServiceID,
			&appointment.CustomerName,
			&appointment.CustomerPhone,
			&appointment.AppointmentDate,
			&appointment.AppointmentTime,
			&appointment.Status,
			&appointment.PaymentMethod,
			&appointment.Notes,
			&appointment.CreatedAt,
			&appointment.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan appointment row", zap.Error(err))
			return nil, fmt.Errorf("scan appointment row: %w", err)
		}
		appointments = append(appointments, &appointment)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate appointment rows: %w", err)
	}

	r.log.Debug("Appointments found", zap.Int("count", len(appointments)))

	return appointments, nil
}

func (r *appointmentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.AppointmentStatus, updatedAt time.Time) error {
	query := `UPDATE appointments SET status = $2, updated_at = $3 WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, status, updatedAt)
	if err != nil {
		r.log.Error("Failed to update appointment status",
			zap.Error(err),
			zap.String("appointment_id", id.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update appointment %s status to %s: %w", id.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("appointment %s not found", id.String())
	}

	return nil
}
