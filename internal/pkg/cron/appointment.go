package cron

import (
	"context"
	"time"

	"github.com/Ipswich38/Kreativdentalplus-sub000/internal/domain/appointment"
)

const overdueSweepInterval = time.Minute

// RegisterAppointmentTasks wires the appointment maintenance work into the
// scheduler. The overdue sweep keeps the day's patient flow from leaving
// stale appointments behind when the front desk forgets to advance them.
func RegisterAppointmentTasks(s *Scheduler, appointmentService appointment.Service) {
	s.Register(Task{
		Name:  "expire_overdue_appointments",
		Every: overdueSweepInterval,
		Run: func(ctx context.Context) error {
			_, err := appointmentService.ExpireOverdue(ctx)
			return err
		},
	})
}
