package attendance

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/Ipswich38/Kreativdentalplus-sub000/internal/domain/appointment"
	"github.com/Ipswich38/Kreativdentalplus-sub000/internal/domain/attendance"
	"github.com/Ipswich38/Kreativdentalplus-sub000/internal/domain/staff"
)

type AttendanceServiceImpl struct {
	attendanceRepo  attendance.AttendanceRepository
	staffRepo       staff.StaffRepository
	appointmentRepo appointment.AppointmentRepository
	calc            *TimeCalculator
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	staffRepo staff.StaffRepository,
	appointmentRepo appointment.AppointmentRepository,
	calc *TimeCalculator,
) attendance.Service {
	return &AttendanceServiceImpl{
		attendanceRepo:  attendanceRepo,
		staffRepo:       staffRepo,
		appointmentRepo: appointmentRepo,
		calc:            calc,
	}
}

func (s *AttendanceServiceImpl) ClockIn(ctx context.Context, req attendance.ClockInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	member, err := s.staffRepo.GetByID(ctx, req.StaffID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	// One open record per staff member per date
	_, err = s.attendanceRepo.GetOpenByStaffAndDate(ctx, member.ID, date)
	if err == nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyClockedIn
	}
	if !errors.Is(err, attendance.ErrAttendanceNotFound) {
		return attendance.AttendanceResponse{}, err
	}

	clockIn := req.ClockIn
	record := attendance.Attendance{
		StaffID:      member.ID,
		Date:         date,
		ClockIn:      &clockIn,
		BreakMinutes: attendance.DefaultBreakMinutes,
	}

	created, err := s.attendanceRepo.Create(ctx, record)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return mapToAttendanceResponse(created), nil
}

func (s *AttendanceServiceImpl) ClockOut(ctx context.Context, req attendance.ClockOutRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	member, err := s.staffRepo.GetByID(ctx, req.StaffID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	open, err := s.attendanceRepo.GetOpenByStaffAndDate(ctx, member.ID, date)
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.AttendanceResponse{}, attendance.ErrNoOpenRecord
		}
		return attendance.AttendanceResponse{}, err
	}

	breakMinutes := open.BreakMinutes
	if req.BreakMinutes != nil {
		breakMinutes = *req.BreakMinutes
	}

	clockIn := ""
	if open.ClockIn != nil {
		clockIn = *open.ClockIn
	}
	hours := s.calc.HoursWorked(clockIn, req.ClockOut, breakMinutes)
	pay := s.calc.DailyPay(hours, member.EffectiveHourlyRate())

	closed, err := s.attendanceRepo.CloseOut(ctx, open.ID, req.ClockOut, breakMinutes, hours, pay)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return mapToAttendanceResponse(closed), nil
}

func (s *AttendanceServiceImpl) ListByStaff(ctx context.Context, staffID string, start, end time.Time) ([]attendance.AttendanceResponse, error) {
	records, err := s.attendanceRepo.ListByStaffAndRange(ctx, staffID, start, end)
	if err != nil {
		return nil, err
	}

	result := make([]attendance.AttendanceResponse, 0, len(records))
	for _, r := range records {
		result = append(result, mapToAttendanceResponse(r))
	}
	return result, nil
}

// ListByRange returns every staff member's attendance in the range, for the
// admin clinic-wide view.
func (s *AttendanceServiceImpl) ListByRange(ctx context.Context, start, end time.Time) ([]attendance.AttendanceResponse, error) {
	records, err := s.attendanceRepo.ListByRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	result := make([]attendance.AttendanceResponse, 0, len(records))
	for _, r := range records {
		result = append(result, mapToAttendanceResponse(r))
	}
	return result, nil
}

// BuildPeriodSummary aggregates manual clock records per staff member, then
// folds appointment-derived hours into each dentist's summary. Payroll reads
// only this merged view, never the raw pieces.
func (s *AttendanceServiceImpl) BuildPeriodSummary(ctx context.Context, start, end time.Time, staffID *string) ([]attendance.PeriodSummary, error) {
	members, err := s.staffInScope(ctx, staffID)
	if err != nil {
		return nil, err
	}

	summaries := make(map[string]*attendance.PeriodSummary)

	for _, member := range members {
		records, err := s.attendanceRepo.ListByStaffAndRange(ctx, member.ID, start, end)
		if err != nil {
			return nil, fmt.Errorf("failed to list attendance for staff %s: %w", member.ID, err)
		}

		totalHours := 0.0
		days := make(map[string]struct{})
		for _, r := range records {
			hours := r.TotalHours
			if hours == 0 && r.ClockIn != nil && r.ClockOut != nil {
				hours = s.calc.HoursWorked(*r.ClockIn, *r.ClockOut, r.BreakMinutes)
			}
			if hours > 0 {
				totalHours += hours
				days[r.Date.Format("2006-01-02")] = struct{}{}
			}
		}

		// Staff with no records in range are omitted, not zero-filled
		if totalHours == 0 {
			continue
		}

		summaries[member.ID] = &attendance.PeriodSummary{
			StaffID:    member.ID,
			StaffName:  member.FullName,
			Category:   member.Category,
			HourlyRate: member.EffectiveHourlyRate(),
			DaysWorked: len(days),
			TotalHours: totalHours,
		}
	}

	// Dentists do not clock in; their billable time is appointment time.
	dentists := members
	if staffID == nil {
		dentists, err = s.staffRepo.ListActiveByCategory(ctx, staff.CategoryDentist)
		if err != nil {
			return nil, err
		}
	}
	for _, member := range dentists {
		if member.Category != staff.CategoryDentist {
			continue
		}

		hours, days, err := s.appointmentHours(ctx, member.ID, start, end)
		if err != nil {
			return nil, err
		}
		if hours == 0 {
			continue
		}

		if existing, ok := summaries[member.ID]; ok {
			// Merge: add hours, take the max of the day counts so overlapping
			// days are not double-counted.
			existing.TotalHours += hours
			if days > existing.DaysWorked {
				existing.DaysWorked = days
			}
		} else {
			summaries[member.ID] = &attendance.PeriodSummary{
				StaffID:       member.ID,
				StaffName:     member.FullName,
				Category:      member.Category,
				HourlyRate:    member.EffectiveHourlyRate(),
				DaysWorked:    days,
				TotalHours:    hours,
				IsAutoTracked: true,
			}
		}
	}

	result := make([]attendance.PeriodSummary, 0, len(summaries))
	for _, summary := range summaries {
		summary.RegularHours, summary.OvertimeHours = s.calc.SplitHours(summary.TotalHours, summary.DaysWorked)
		summary.GrossPay = s.calc.GrossPay(summary.RegularHours, summary.OvertimeHours, summary.HourlyRate)
		result = append(result, *summary)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].StaffName < result[j].StaffName
	})

	return result, nil
}

func (s *AttendanceServiceImpl) staffInScope(ctx context.Context, staffID *string) ([]staff.StaffMember, error) {
	if staffID != nil {
		member, err := s.staffRepo.GetByID(ctx, *staffID)
		if err != nil {
			return nil, err
		}
		return []staff.StaffMember{member}, nil
	}
	return s.staffRepo.ListActive(ctx)
}

func (s *AttendanceServiceImpl) appointmentHours(ctx context.Context, dentistID string, start, end time.Time) (float64, int, error) {
	appointments, err := s.appointmentRepo.ListWorkedByDentist(ctx, dentistID, start, end)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to list worked appointments for dentist %s: %w", dentistID, err)
	}

	hours := 0.0
	days := make(map[string]struct{})
	for _, a := range appointments {
		hours += float64(a.EffectiveDurationMinutes()) / 60.0
		days[a.Date.Format("2006-01-02")] = struct{}{}
	}

	return hours, len(days), nil
}

func mapToAttendanceResponse(a attendance.Attendance) attendance.AttendanceResponse {
	return attendance.AttendanceResponse{
		ID:           a.ID,
		StaffID:      a.StaffID,
		StaffName:    a.StaffName,
		Date:         a.Date.Format("2006-01-02"),
		ClockIn:      a.ClockIn,
		ClockOut:     a.ClockOut,
		BreakMinutes: a.BreakMinutes,
		TotalHours:   a.TotalHours,
		DailyPay:     a.DailyPay,
	}
}
